package conversion

import (
	"testing"

	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
	"github.com/louisbranch/cands-to-harn/internal/testkit/dicefakes"
)

func TestApplyGrowthLeavesInputUntouched(t *testing.T) {
	in := Values{1, 2, 3, 4, 5, 6, 7, 8}
	out, rolls, err := ApplyGrowth(in, GrowthAdd, nil)
	if err != nil {
		t.Fatalf("apply growth: %v", err)
	}
	if rolls != nil {
		t.Fatalf("rolls = %v, want nil", rolls)
	}
	if in[0] != 1 {
		t.Fatalf("input mutated: %v", in)
	}
	for i := range out {
		if out[i] != in[i]+3.5 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i]+3.5)
		}
	}
}

func TestApplyGrowthRollsOneDiePerCharacteristic(t *testing.T) {
	roller := dicefakes.Faces(6, 5, 4, 3, 2, 1, 6, 5)
	out, rolls, err := ApplyGrowth(Values{}, GrowthRoll, roller)
	if err != nil {
		t.Fatalf("apply growth: %v", err)
	}
	if len(rolls) != CharacteristicCount {
		t.Fatalf("rolls = %v", rolls)
	}
	for i, bound := range roller.Bounds {
		if bound != 6 {
			t.Fatalf("roll %d used bound %d, want 6", i, bound)
		}
		if out[i] != float64(rolls[i]) {
			t.Fatalf("out[%d] = %v, want %d", i, out[i], rolls[i])
		}
	}
}

func TestApplyGrowthNoneAndUnknown(t *testing.T) {
	in := Values{1, 2, 3, 4, 5, 6, 7, 8}
	out, _, err := ApplyGrowth(in, GrowthNone, nil)
	if err != nil || out != in {
		t.Fatalf("none: out = %v, err = %v", out, err)
	}
	_, _, err = ApplyGrowth(in, "triple", nil)
	if apperrors.CodeOf(err) != apperrors.CodeMalformedInput {
		t.Fatalf("code = %q, want %q", apperrors.CodeOf(err), apperrors.CodeMalformedInput)
	}
	_, _, err = ApplyGrowth(in, GrowthRoll, nil)
	if apperrors.CodeOf(err) != apperrors.CodeDiceRollerMissing {
		t.Fatalf("code = %q, want %q", apperrors.CodeOf(err), apperrors.CodeDiceRollerMissing)
	}
}

func TestApplyAuraBonusTargetsAura(t *testing.T) {
	out := ApplyAuraBonus(Values{})
	for _, c := range Characteristics() {
		want := 0.0
		if c == CharacteristicAura {
			want = 3
		}
		if got := out.Get(c); got != want {
			t.Fatalf("%s = %v, want %v", c, got, want)
		}
	}
}

func TestRollExtrasDropsLowest(t *testing.T) {
	roller := dicefakes.Faces(
		6, 6, 1, 3,
		1, 1, 2, 1,
		4, 4, 4, 4,
		3, 6, 5, 2,
	)
	got, err := RollExtras(roller)
	if err != nil {
		t.Fatalf("roll extras: %v", err)
	}
	want := RolledExtras{Hearing: 15, Eyesight: 4, Smell: 12, Morality: 14}
	if got != want {
		t.Fatalf("extras = %+v, want %+v", got, want)
	}
	if roller.Used() != 16 {
		t.Fatalf("rolls used = %d, want 16", roller.Used())
	}
}
