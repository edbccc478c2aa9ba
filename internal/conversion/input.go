package conversion

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/louisbranch/cands-to-harn/internal/options"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
)

// GrowthMode selects the post-conversion stat growth.
type GrowthMode string

const (
	GrowthNone GrowthMode = "none"
	GrowthAdd  GrowthMode = "add"
	GrowthRoll GrowthMode = "roll"
)

var growthModes = []string{string(GrowthNone), string(GrowthAdd), string(GrowthRoll)}

// ParseGrowthMode parses a growth token. Blank means GrowthNone.
func ParseGrowthMode(value string) (GrowthMode, error) {
	token := strings.ToLower(strings.TrimSpace(value))
	switch GrowthMode(token) {
	case "", GrowthNone:
		return GrowthNone, nil
	case GrowthAdd, GrowthRoll:
		return GrowthMode(token), nil
	default:
		return "", malformedToken(FieldGrowth, value, growthModes)
	}
}

// Background tokens accepted by ParseForm.
const (
	BackgroundWellOff = "well"
	BackgroundCommon  = "common"
)

var backgrounds = []string{BackgroundWellOff, BackgroundCommon}

// ParseBackground reports whether a background token is well-off. Blank
// means common.
func ParseBackground(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case BackgroundWellOff:
		return true, nil
	case "", BackgroundCommon:
		return false, nil
	default:
		return false, malformedToken(FieldBackground, value, backgrounds)
	}
}

// Form field names read by ParseForm. Ability fields use the Ability value.
const (
	FieldName       = "name"
	FieldBackground = "background"
	FieldLevel      = "level"
	FieldHearing    = "hearing"
	FieldEyesight   = "eyesight"
	FieldGrowth     = "growth"
	FieldAuraBonus  = "aura_bonus"
	FieldRollExtras = "roll_extras"
	// FieldAbilities names the ability map in JSON input.
	FieldAbilities = "abilities"
)

// SourceCharacter is the raw input record for one conversion.
type SourceCharacter struct {
	Name       string              `json:"name"`
	Abilities  map[Ability]float64 `json:"abilities"`
	WellOff    bool                `json:"well_off"`
	Level      int                 `json:"level"`
	Hearing    string              `json:"hearing"`
	Eyesight   string              `json:"eyesight"`
	Growth     GrowthMode          `json:"growth"`
	AuraBonus  bool                `json:"aura_bonus"`
	RollExtras bool                `json:"roll_extras"`
}

// Validate checks that exactly the nine abilities are present and finite,
// the level is non-negative and the growth mode is known.
func (s SourceCharacter) Validate() error {
	if err := rejectUnknownAbilities(s.Abilities); err != nil {
		return err
	}
	for _, ability := range sourceAbilities {
		value, ok := s.Abilities[ability]
		if !ok {
			return malformed(string(ability), "", "is missing")
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return malformed(string(ability), strconv.FormatFloat(value, 'g', -1, 64), "is not a finite number")
		}
	}
	if s.Level < 0 {
		return malformed(FieldLevel, strconv.Itoa(s.Level), "must not be negative")
	}
	switch s.Growth {
	case "", GrowthNone, GrowthAdd, GrowthRoll:
	default:
		return malformedToken(FieldGrowth, string(s.Growth), growthModes)
	}
	return nil
}

// ParseForm extracts a SourceCharacter from submitted form fields.
//
// Every ability and the level are required numbers. Growth and background
// must be known tokens; blank means the default. Boolean fields accept
// true/false, 1/0 and on/off. Eyesight and hearing accept any token.
func ParseForm(values url.Values) (SourceCharacter, error) {
	src := SourceCharacter{
		Name:      strings.TrimSpace(values.Get(FieldName)),
		Abilities: make(map[Ability]float64, len(sourceAbilities)),
		Hearing:   strings.TrimSpace(values.Get(FieldHearing)),
		Eyesight:  strings.TrimSpace(values.Get(FieldEyesight)),
	}

	for _, ability := range sourceAbilities {
		value, err := parseNumber(string(ability), values.Get(string(ability)))
		if err != nil {
			return SourceCharacter{}, err
		}
		src.Abilities[ability] = value
	}

	levelText := strings.TrimSpace(values.Get(FieldLevel))
	if levelText == "" {
		return SourceCharacter{}, malformed(FieldLevel, "", "is missing")
	}
	level, err := strconv.Atoi(levelText)
	if err != nil {
		return SourceCharacter{}, malformedCause(FieldLevel, levelText, "is not a whole number", err)
	}
	src.Level = level

	if src.WellOff, err = ParseBackground(values.Get(FieldBackground)); err != nil {
		return SourceCharacter{}, err
	}
	if src.Growth, err = ParseGrowthMode(values.Get(FieldGrowth)); err != nil {
		return SourceCharacter{}, err
	}
	if src.AuraBonus, err = parseFlag(FieldAuraBonus, values.Get(FieldAuraBonus)); err != nil {
		return SourceCharacter{}, err
	}
	if src.RollExtras, err = parseFlag(FieldRollExtras, values.Get(FieldRollExtras)); err != nil {
		return SourceCharacter{}, err
	}

	if err := src.Validate(); err != nil {
		return SourceCharacter{}, err
	}
	return src, nil
}

func rejectUnknownAbilities(abilities map[Ability]float64) error {
	var unknown []string
	for ability := range abilities {
		if !isSourceAbility(ability) {
			unknown = append(unknown, string(ability))
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	names := make([]string, len(sourceAbilities))
	for i, ability := range sourceAbilities {
		names[i] = string(ability)
	}
	return malformedToken(FieldAbilities, unknown[0], names)
}

func isSourceAbility(ability Ability) bool {
	for _, known := range sourceAbilities {
		if ability == known {
			return true
		}
	}
	return false
}

func parseNumber(field, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, malformed(field, "", "is missing")
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, malformedCause(field, text, "is not a number", err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, malformed(field, text, "is not a finite number")
	}
	return value, nil
}

func parseFlag(field, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "off":
		return false, nil
	case "true", "1", "on":
		return true, nil
	default:
		return false, malformed(field, raw, "is not a boolean")
	}
}

func malformed(field, value, reason string) error {
	return apperrors.WithMetadata(apperrors.CodeMalformedInput,
		fmt.Sprintf("%s %s", field, reason),
		map[string]string{"Field": field, "Value": value})
}

func malformedCause(field, value, reason string, cause error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeMalformedInput,
		fmt.Sprintf("%s %s", field, reason),
		map[string]string{"Field": field, "Value": value}, cause)
}

func malformedToken(field, value string, known []string) error {
	metadata := map[string]string{"Field": field, "Value": value}
	message := fmt.Sprintf("%s %q is not one of %s", field, value, strings.Join(known, ", "))
	if suggestion := options.Closest(strings.ToLower(strings.TrimSpace(value)), known); suggestion != "" {
		metadata["Suggestion"] = suggestion
		message += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return apperrors.WithMetadata(apperrors.CodeMalformedInput, message, metadata)
}
