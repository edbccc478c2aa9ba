// Package convert parses convert command flags and prints one conversion.
package convert

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/louisbranch/cands-to-harn/internal/conversion"
	platformcmd "github.com/louisbranch/cands-to-harn/internal/platform/cmd"
	"github.com/louisbranch/cands-to-harn/internal/random"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
)

// Settings holds the converter settings read from the environment.
type Settings struct {
	AverageBasis string `env:"HARN_AVERAGE_BASIS" envDefault:"adjusted"`
	OptionsFile  string `env:"HARN_OPTIONS_FILE"`
}

// Config holds the convert command configuration.
type Config struct {
	Settings

	// Input names a JSON character file. When set, field flags are ignored.
	Input string
	Seed  *int64
	JSON  bool
	// Fields holds the character given as per-field flags, keyed like the
	// web form.
	Fields url.Values
}

// ParseConfig parses environment and flags into a Config. A nil environ
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg.Settings, environ); err != nil {
		return Config{}, err
	}

	var seed string
	fs.StringVar(&cfg.AverageBasis, "average-basis", cfg.AverageBasis, "Average basis: adjusted or raw")
	fs.StringVar(&cfg.OptionsFile, "options", cfg.OptionsFile, "JSON file replacing the eyesight/hearing option lists")
	fs.StringVar(&cfg.Input, "input", "", "JSON character file (replaces the field flags)")
	fs.StringVar(&seed, "seed", "", "Dice seed for replayable rolls")
	fs.BoolVar(&cfg.JSON, "json", false, "Print the result as JSON")

	text := map[string]*string{
		conversion.FieldName:       fs.String(conversion.FieldName, "", "Character name"),
		conversion.FieldBackground: fs.String(conversion.FieldBackground, "", "Background: well or common"),
		conversion.FieldLevel:      fs.String(conversion.FieldLevel, "", "Character level"),
		conversion.FieldHearing:    fs.String(conversion.FieldHearing, "", "Hearing option value, e.g. hear2"),
		conversion.FieldEyesight:   fs.String(conversion.FieldEyesight, "", "Eyesight option value, e.g. eye1"),
		conversion.FieldGrowth:     fs.String(conversion.FieldGrowth, "", "Growth: none, add or roll"),
	}
	for _, ability := range conversion.SourceAbilities() {
		text[string(ability)] = fs.String(string(ability), "", "Source "+strings.ReplaceAll(string(ability), "_", " ")+" score")
	}
	flags := map[string]*bool{
		conversion.FieldAuraBonus:  fs.Bool(conversion.FieldAuraBonus, false, "Add the +3 aura bonus"),
		conversion.FieldRollExtras: fs.Bool(conversion.FieldRollExtras, false, "Roll hearing, eyesight, smell and morality"),
	}

	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	parsedSeed, err := random.ParseSeed(seed)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = parsedSeed

	cfg.Fields = url.Values{}
	for key, value := range text {
		if v := strings.TrimSpace(*value); v != "" {
			cfg.Fields.Set(key, v)
		}
	}
	for key, value := range flags {
		if *value {
			cfg.Fields.Set(key, "true")
		}
	}
	return cfg, nil
}

// Run converts the configured character and writes the result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output writer is required")
	}
	svc, err := converter.Build(converter.Setup{
		AverageBasis: cfg.AverageBasis,
		OptionsFile:  cfg.OptionsFile,
	})
	if err != nil {
		return fmt.Errorf("init converter: %w", err)
	}
	src, err := loadCharacter(cfg)
	if err != nil {
		return err
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceConvert, func(ctx context.Context) error {
		outcome, err := svc.Convert(ctx, src, cfg.Seed)
		if err != nil {
			return err
		}
		if cfg.JSON {
			return writeJSON(out, outcome)
		}
		return writeText(out, outcome)
	})
}

func loadCharacter(cfg Config) (conversion.SourceCharacter, error) {
	if strings.TrimSpace(cfg.Input) == "" {
		return conversion.ParseForm(cfg.Fields)
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return conversion.SourceCharacter{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return decodeCharacter(f)
}

func decodeCharacter(r io.Reader) (conversion.SourceCharacter, error) {
	var src conversion.SourceCharacter
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&src); err != nil {
		return conversion.SourceCharacter{}, fmt.Errorf("decode input: %w", err)
	}
	if err := src.Validate(); err != nil {
		return conversion.SourceCharacter{}, err
	}
	return src, nil
}

type jsonOutput struct {
	Result conversion.Result `json:"result"`
	Seed   *int64            `json:"seed,omitempty"`
}

func writeJSON(out io.Writer, outcome converter.Outcome) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonOutput{Result: outcome.Result, Seed: outcome.Seed})
}

var characteristicLabels = map[conversion.Characteristic]string{
	conversion.CharacteristicAgility:      "Agility",
	conversion.CharacteristicStamina:      "Stamina",
	conversion.CharacteristicStrength:     "Strength",
	conversion.CharacteristicAura:         "Aura",
	conversion.CharacteristicIntelligence: "Intelligence",
	conversion.CharacteristicVoice:        "Voice",
	conversion.CharacteristicComeliness:   "Comeliness",
	conversion.CharacteristicWill:         "Will",
}

// writeText prints the results sheet: characteristics in table order, the
// sensory lines (prefixed with the rolled value when extras were rolled)
// and veteran points.
func writeText(out io.Writer, outcome converter.Outcome) error {
	result := outcome.Result
	var b strings.Builder
	name := result.Name
	if name == "" {
		name = "Your character"
	} else {
		name += "'s"
	}
	fmt.Fprintf(&b, "%s Harnmaster stats are as follows:\n", name)
	for i, c := range conversion.Characteristics() {
		fmt.Fprintf(&b, "%s: %s\n", characteristicLabels[c], conversion.FormatValue(result.Characteristics[i]))
	}
	if extras := result.Extras; extras != nil {
		fmt.Fprintf(&b, "Hearing: %d %s\n", extras.Hearing, result.Metadata.Hearing)
		fmt.Fprintf(&b, "Eyesight: %d %s\n", extras.Eyesight, result.Metadata.Eyesight)
		fmt.Fprintf(&b, "Smell: %d\n", extras.Smell)
		fmt.Fprintf(&b, "Morality: %d\n", extras.Morality)
	} else {
		fmt.Fprintf(&b, "Hearing: %s\n", result.Metadata.Hearing)
		fmt.Fprintf(&b, "Eyesight: %s\n", result.Metadata.Eyesight)
	}
	fmt.Fprintf(&b, "Veteran Points: %d\n", result.Metadata.VeteranPoints)
	if outcome.Seed != nil {
		fmt.Fprintf(&b, "Seed: %d\n", *outcome.Seed)
	}
	_, err := io.WriteString(out, b.String())
	return err
}
