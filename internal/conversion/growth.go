package conversion

import (
	"errors"
	"fmt"

	"github.com/louisbranch/cands-to-harn/internal/core/dice"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
)

const (
	// flatGrowthBonus is added to every characteristic in GrowthAdd mode;
	// it is the mean of a d6.
	flatGrowthBonus = 3.5
	// auraBonus is added to aura when AuraBonus is requested.
	auraBonus = 3
	// growthDieSides is the die rolled per characteristic in GrowthRoll mode.
	growthDieSides = 6
)

// ApplyGrowth returns values with the growth mode applied to every
// characteristic, plus the die rolled for each one in GrowthRoll mode.
func ApplyGrowth(values Values, mode GrowthMode, roller dice.Roller) (Values, []int, error) {
	switch mode {
	case "", GrowthNone:
		return values, nil, nil
	case GrowthAdd:
		for i := range values {
			values[i] += flatGrowthBonus
		}
		return values, nil, nil
	case GrowthRoll:
		rolls := make([]int, len(values))
		for i := range values {
			roll, err := dice.RollRange(roller, 1, growthDieSides)
			if err != nil {
				return Values{}, nil, diceError(err)
			}
			rolls[i] = roll
			values[i] += float64(roll)
		}
		return values, rolls, nil
	default:
		return Values{}, nil, malformedToken(FieldGrowth, string(mode), growthModes)
	}
}

// ApplyAuraBonus returns values with the fixed bonus added to aura.
func ApplyAuraBonus(values Values) Values {
	i, _ := characteristicIndex(CharacteristicAura)
	values[i] += auraBonus
	return values
}

// RolledExtras are the optional rolled sensory and morality stats.
type RolledExtras struct {
	Hearing  int `json:"hearing"`
	Eyesight int `json:"eyesight"`
	Smell    int `json:"smell"`
	Morality int `json:"morality"`
}

// RollExtras rolls hearing, eyesight, smell and morality in that order,
// each as 4d6 dropping the lowest die.
func RollExtras(roller dice.Roller) (RolledExtras, error) {
	var totals [4]int
	for i := range totals {
		roll, err := dice.RollDropLowest(roller, 4, 6)
		if err != nil {
			return RolledExtras{}, diceError(err)
		}
		totals[i] = roll.Total
	}
	return RolledExtras{
		Hearing:  totals[0],
		Eyesight: totals[1],
		Smell:    totals[2],
		Morality: totals[3],
	}, nil
}

func diceError(err error) error {
	code := apperrors.CodeDiceInvalidRange
	if errors.Is(err, dice.ErrMissingRoller) {
		code = apperrors.CodeDiceRollerMissing
	}
	return apperrors.Wrap(code, fmt.Sprintf("roll dice: %v", err), err)
}
