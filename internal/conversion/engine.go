package conversion

import (
	"fmt"
	"math"
	"strings"

	"github.com/louisbranch/cands-to-harn/internal/core/dice"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
)

// AverageBasis selects which per-ability average CSRs are measured against.
type AverageBasis string

const (
	// AverageAdjusted averages the cost-adjusted ability values.
	AverageAdjusted AverageBasis = "adjusted"
	// AverageRaw averages the raw ability values, as the legacy calculator did.
	AverageRaw AverageBasis = "raw"
)

var averageBases = []string{string(AverageAdjusted), string(AverageRaw)}

// ParseAverageBasis parses a basis token. Blank means AverageAdjusted.
func ParseAverageBasis(value string) (AverageBasis, error) {
	switch AverageBasis(strings.ToLower(strings.TrimSpace(value))) {
	case "", AverageAdjusted:
		return AverageAdjusted, nil
	case AverageRaw:
		return AverageRaw, nil
	default:
		return "", malformedToken("average_basis", value, averageBases)
	}
}

// DerivedMetadata holds the non-characteristic outputs of a conversion.
type DerivedMetadata struct {
	Eyesight      string `json:"eyesight"`
	Hearing       string `json:"hearing"`
	VeteranPoints int    `json:"veteran_points"`
}

// Worksheet records the intermediate values of one conversion.
type Worksheet struct {
	TotalRaw      float64      `json:"total_raw"`
	AdjustedTotal float64      `json:"adjusted_total"`
	Average       float64      `json:"average"`
	Basis         AverageBasis `json:"basis"`
	CSR           Values       `json:"csr"`
	Baseline      float64      `json:"baseline"`
	Unadjusted    Values       `json:"unadjusted"`
	GrowthRolls   []int        `json:"growth_rolls,omitempty"`
}

// Result is a complete conversion.
type Result struct {
	Name            string          `json:"name"`
	Characteristics Values          `json:"characteristics"`
	Metadata        DerivedMetadata `json:"metadata"`
	Extras          *RolledExtras   `json:"extras,omitempty"`
	Worksheet       Worksheet       `json:"worksheet"`
}

// Engine runs the conversion pipeline. The zero value uses AverageAdjusted.
type Engine struct {
	basis AverageBasis
}

// NewEngine returns an engine for the given average basis.
func NewEngine(basis AverageBasis) (Engine, error) {
	switch basis {
	case "":
		basis = AverageAdjusted
	case AverageAdjusted, AverageRaw:
	default:
		return Engine{}, malformedToken("average_basis", string(basis), averageBases)
	}
	return Engine{basis: basis}, nil
}

// Basis returns the configured average basis.
func (e Engine) Basis() AverageBasis {
	if e.basis == "" {
		return AverageAdjusted
	}
	return e.basis
}

// NeedsDice reports whether converting src draws from a roller.
func NeedsDice(src SourceCharacter) bool {
	return src.Growth == GrowthRoll || src.RollExtras
}

// Convert runs the full pipeline for one character. Either the result is
// complete or a single error is returned.
//
// roller may be nil when src neither rolls growth nor extras. Growth dice
// are drawn before the extras.
func (e Engine) Convert(src SourceCharacter, roller dice.Roller) (Result, error) {
	if err := src.Validate(); err != nil {
		return Result{}, err
	}
	if roller == nil && NeedsDice(src) {
		return Result{}, apperrors.New(apperrors.CodeDiceRollerMissing, "conversion needs dice but no roller was provided")
	}

	sheet := Worksheet{Basis: e.Basis()}
	for _, ability := range sourceAbilities {
		raw := src.Abilities[ability]
		sheet.TotalRaw += raw
		sheet.AdjustedTotal += AdjustedCost(raw)
	}
	switch sheet.Basis {
	case AverageRaw:
		sheet.Average = sheet.TotalRaw / float64(len(sourceAbilities))
	default:
		sheet.Average = sheet.AdjustedTotal / float64(len(sourceAbilities))
	}
	if sheet.Average <= 0 || math.IsNaN(sheet.Average) || math.IsInf(sheet.Average, 0) {
		return Result{}, apperrors.WithMetadata(apperrors.CodeDegenerateAverage,
			fmt.Sprintf("average ability cost %v is not positive", sheet.Average),
			map[string]string{"Average": fmt.Sprint(sheet.Average)})
	}

	mapped := make([]float64, len(conversionTable))
	for i, m := range conversionTable {
		mapped[i] = src.Abilities[m.Source]
	}
	csr, err := ValuesFromSlice(ComputeCSR(mapped, sheet.Average))
	if err != nil {
		return Result{}, err
	}
	sheet.CSR = csr
	sheet.Baseline = ComputeBaseline(sheet.TotalRaw, src.WellOff)

	built, err := ValuesFromSlice(BuildCharacteristics(csr.Slice(), sheet.Baseline))
	if err != nil {
		return Result{}, err
	}
	sheet.Unadjusted = built

	values, rolls, err := ApplyGrowth(built, src.Growth, roller)
	if err != nil {
		return Result{}, err
	}
	sheet.GrowthRolls = rolls
	if src.AuraBonus {
		values = ApplyAuraBonus(values)
	}

	result := Result{
		Name:            src.Name,
		Characteristics: values,
		Metadata: DerivedMetadata{
			Eyesight:      EyesightModifier(src.Eyesight),
			Hearing:       HearingModifier(src.Hearing),
			VeteranPoints: VeteranPoints(src.Level),
		},
		Worksheet: sheet,
	}
	if src.RollExtras {
		extras, err := RollExtras(roller)
		if err != nil {
			return Result{}, err
		}
		result.Extras = &extras
	}
	return result, nil
}
