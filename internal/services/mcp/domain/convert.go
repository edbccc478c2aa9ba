package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/cands-to-harn/internal/conversion"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
	errori18n "github.com/louisbranch/cands-to-harn/internal/platform/errors/i18n"
	"github.com/louisbranch/cands-to-harn/internal/platform/i18n/catalog"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AbilitiesInput holds the nine source ability scores.
type AbilitiesInput struct {
	Dexterity    float64 `json:"dexterity" jsonschema:"dexterity score"`
	Constitution float64 `json:"constitution" jsonschema:"constitution score"`
	Strength     float64 `json:"strength" jsonschema:"strength score"`
	Wisdom       float64 `json:"wisdom" jsonschema:"wisdom score"`
	Intelligence float64 `json:"intelligence" jsonschema:"intelligence score"`
	BardicVoice  float64 `json:"bardic_voice" jsonschema:"bardic voice score"`
	Appearance   float64 `json:"appearance" jsonschema:"appearance score"`
	Fortitude    float64 `json:"fortitude" jsonschema:"fortitude score"`
	Discipline   float64 `json:"discipline" jsonschema:"discipline score, counted toward the cost basis only"`
}

func (a AbilitiesInput) toMap() map[conversion.Ability]float64 {
	return map[conversion.Ability]float64{
		conversion.AbilityDexterity:    a.Dexterity,
		conversion.AbilityConstitution: a.Constitution,
		conversion.AbilityStrength:     a.Strength,
		conversion.AbilityWisdom:       a.Wisdom,
		conversion.AbilityIntelligence: a.Intelligence,
		conversion.AbilityBardicVoice:  a.BardicVoice,
		conversion.AbilityAppearance:   a.Appearance,
		conversion.AbilityFortitude:    a.Fortitude,
		conversion.AbilityDiscipline:   a.Discipline,
	}
}

// ConvertCharacterInput represents the MCP tool input for a conversion.
type ConvertCharacterInput struct {
	Name       string         `json:"name,omitempty" jsonschema:"character name"`
	Abilities  AbilitiesInput `json:"abilities" jsonschema:"source ability scores"`
	WellOff    bool           `json:"well_off,omitempty" jsonschema:"whether the character has a well-off background"`
	Level      int            `json:"level" jsonschema:"experience level, zero or more"`
	Hearing    string         `json:"hearing,omitempty" jsonschema:"hearing option value, e.g. hear3"`
	Eyesight   string         `json:"eyesight,omitempty" jsonschema:"eyesight option value, e.g. eye1"`
	Growth     string         `json:"growth,omitempty" jsonschema:"stat growth mode: none, add or roll"`
	AuraBonus  bool           `json:"aura_bonus,omitempty" jsonschema:"add 3 to aura"`
	RollExtras bool           `json:"roll_extras,omitempty" jsonschema:"roll hearing, eyesight, smell and morality"`
	Seed       *int64         `json:"seed,omitempty" jsonschema:"optional seed for replayable dice"`
}

// CharacteristicsResult holds the converted Harnmaster characteristics.
type CharacteristicsResult struct {
	Agility      float64 `json:"agility" jsonschema:"dexterity or agility"`
	Stamina      float64 `json:"stamina" jsonschema:"stamina"`
	Strength     float64 `json:"strength" jsonschema:"strength"`
	Aura         float64 `json:"aura" jsonschema:"aura"`
	Intelligence float64 `json:"intelligence" jsonschema:"intelligence"`
	Voice        float64 `json:"voice" jsonschema:"voice"`
	Comeliness   float64 `json:"comeliness" jsonschema:"comeliness"`
	Will         float64 `json:"will" jsonschema:"will"`
}

func characteristicsResult(v conversion.Values) CharacteristicsResult {
	return CharacteristicsResult{
		Agility:      v.Get(conversion.CharacteristicAgility),
		Stamina:      v.Get(conversion.CharacteristicStamina),
		Strength:     v.Get(conversion.CharacteristicStrength),
		Aura:         v.Get(conversion.CharacteristicAura),
		Intelligence: v.Get(conversion.CharacteristicIntelligence),
		Voice:        v.Get(conversion.CharacteristicVoice),
		Comeliness:   v.Get(conversion.CharacteristicComeliness),
		Will:         v.Get(conversion.CharacteristicWill),
	}
}

// ExtrasResult holds the rolled extra stats.
type ExtrasResult struct {
	Hearing  int `json:"hearing" jsonschema:"rolled hearing"`
	Eyesight int `json:"eyesight" jsonschema:"rolled eyesight"`
	Smell    int `json:"smell" jsonschema:"rolled smell"`
	Morality int `json:"morality" jsonschema:"rolled morality"`
}

// WorksheetResult exposes the intermediate values of a conversion.
type WorksheetResult struct {
	TotalRaw      float64               `json:"total_raw" jsonschema:"sum of the nine raw ability scores"`
	AdjustedTotal float64               `json:"adjusted_total" jsonschema:"sum of the cost-adjusted ability scores"`
	Average       float64               `json:"average" jsonschema:"average the ratios are measured against"`
	Basis         string                `json:"basis" jsonschema:"average basis: adjusted or raw"`
	CSR           CharacteristicsResult `json:"csr" jsonschema:"characteristic score ratios"`
	Baseline      float64               `json:"baseline" jsonschema:"baseline the ratios are scaled by"`
	GrowthRolls   []int                 `json:"growth_rolls,omitempty" jsonschema:"growth die per characteristic in roll mode"`
}

// ConvertCharacterResult represents the MCP tool output for a conversion.
type ConvertCharacterResult struct {
	Name            string                `json:"name" jsonschema:"character name"`
	Characteristics CharacteristicsResult `json:"characteristics" jsonschema:"converted characteristics"`
	Hearing         string                `json:"hearing" jsonschema:"hearing modifier"`
	Eyesight        string                `json:"eyesight" jsonschema:"eyesight modifier or colorblind note"`
	VeteranPoints   int                   `json:"veteran_points" jsonschema:"veteran points for the level"`
	Extras          *ExtrasResult         `json:"extras,omitempty" jsonschema:"rolled extra stats, when requested"`
	Worksheet       WorksheetResult       `json:"worksheet" jsonschema:"intermediate values"`
	Seed            *int64                `json:"seed,omitempty" jsonschema:"seed the dice were drawn from"`
}

// ConvertCharacterTool defines the MCP tool schema for conversions.
func ConvertCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "harn_convert_character",
		Description: "Converts a C&S character's abilities into Harnmaster characteristics",
	}
}

// ConvertCharacterHandler runs a conversion.
func ConvertCharacterHandler(svc *converter.Service) mcp.ToolHandlerFor[ConvertCharacterInput, ConvertCharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ConvertCharacterInput) (*mcp.CallToolResult, ConvertCharacterResult, error) {
		growth, err := conversion.ParseGrowthMode(input.Growth)
		if err != nil {
			return nil, ConvertCharacterResult{}, toolError(err)
		}
		src := conversion.SourceCharacter{
			Name:       input.Name,
			Abilities:  input.Abilities.toMap(),
			WellOff:    input.WellOff,
			Level:      input.Level,
			Hearing:    input.Hearing,
			Eyesight:   input.Eyesight,
			Growth:     growth,
			AuraBonus:  input.AuraBonus,
			RollExtras: input.RollExtras,
		}

		outcome, err := svc.Convert(ctx, src, input.Seed)
		if err != nil {
			return nil, ConvertCharacterResult{}, toolError(err)
		}
		return nil, convertCharacterResult(outcome), nil
	}
}

func convertCharacterResult(outcome converter.Outcome) ConvertCharacterResult {
	result := outcome.Result
	sheet := result.Worksheet
	out := ConvertCharacterResult{
		Name:            result.Name,
		Characteristics: characteristicsResult(result.Characteristics),
		Hearing:         result.Metadata.Hearing,
		Eyesight:        result.Metadata.Eyesight,
		VeteranPoints:   result.Metadata.VeteranPoints,
		Worksheet: WorksheetResult{
			TotalRaw:      sheet.TotalRaw,
			AdjustedTotal: sheet.AdjustedTotal,
			Average:       sheet.Average,
			Basis:         string(sheet.Basis),
			CSR:           characteristicsResult(sheet.CSR),
			Baseline:      sheet.Baseline,
			GrowthRolls:   sheet.GrowthRolls,
		},
		Seed: outcome.Seed,
	}
	if extras := result.Extras; extras != nil {
		out.Extras = &ExtrasResult{
			Hearing:  extras.Hearing,
			Eyesight: extras.Eyesight,
			Smell:    extras.Smell,
			Morality: extras.Morality,
		}
	}
	return out
}

// toolError renders a domain error in the base locale, prefixed by its code.
func toolError(err error) error {
	message := apperrors.Localize(err, errori18n.GetCatalog(catalog.BaseLocale).Format)
	return fmt.Errorf("%s: %s", apperrors.CodeOf(err), message)
}
