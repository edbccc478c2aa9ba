package conversion

import "testing"

func TestEyesightModifier(t *testing.T) {
	tests := map[string]string{
		"eye0": "+1",
		"eye1": "0",
		"eye2": "-1",
		"eye3": "-3",
		"eye4": "-5",
		"eye8": "+3",
		"eye5": ColorblindModifier,
		"eyeX": ColorblindModifier,
		"":     ColorblindModifier,
	}
	for token, want := range tests {
		if got := EyesightModifier(token); got != want {
			t.Fatalf("EyesightModifier(%q) = %q, want %q", token, got, want)
		}
	}
	if ColorblindModifier != "Colorblind stays, +2 to ANOTHER stat" {
		t.Fatalf("colorblind wording changed: %q", ColorblindModifier)
	}
}

func TestHearingModifier(t *testing.T) {
	tests := map[string]string{
		"hear0": "-2",
		"hear1": "-1",
		"hear2": "0",
		"hear3": "+1",
		"hear4": "+2",
		"loud":  "0",
	}
	for token, want := range tests {
		if got := HearingModifier(token); got != want {
			t.Fatalf("HearingModifier(%q) = %q, want %q", token, got, want)
		}
	}
}

func TestVeteranPoints(t *testing.T) {
	tests := []struct{ level, want int }{
		{0, 0},
		{1, 1},
		{8, 8},
		{9, 10},
		{12, 16},
	}
	for _, tt := range tests {
		if got := VeteranPoints(tt.level); got != tt.want {
			t.Fatalf("VeteranPoints(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
