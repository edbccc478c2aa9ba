package conversion

import (
	"net/url"
	"testing"

	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
)

func exampleForm() url.Values {
	return url.Values{
		FieldName:       {"Aldric"},
		FieldBackground: {"well"},
		FieldLevel:      {"12"},
		"dexterity":     {"12"},
		"constitution":  {"14"},
		"strength":      {"10"},
		"wisdom":        {"13"},
		"intelligence":  {"11"},
		"bardic_voice":  {"15"},
		"appearance":    {"9"},
		"fortitude":     {"16.5"},
		"discipline":    {"0"},
		FieldHearing:    {"hear4"},
		FieldEyesight:   {"eye8"},
		FieldGrowth:     {"roll"},
		FieldAuraBonus:  {"true"},
		FieldRollExtras: {"on"},
	}
}

func TestParseForm(t *testing.T) {
	src, err := ParseForm(exampleForm())
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	if src.Name != "Aldric" || !src.WellOff || src.Level != 12 {
		t.Fatalf("unexpected header fields: %+v", src)
	}
	if src.Abilities[AbilityFortitude] != 16.5 {
		t.Fatalf("fortitude = %v, want 16.5", src.Abilities[AbilityFortitude])
	}
	if len(src.Abilities) != len(sourceAbilities) {
		t.Fatalf("abilities = %d, want %d", len(src.Abilities), len(sourceAbilities))
	}
	if src.Hearing != "hear4" || src.Eyesight != "eye8" {
		t.Fatalf("sensory tokens = %q/%q", src.Hearing, src.Eyesight)
	}
	if src.Growth != GrowthRoll || !src.AuraBonus || !src.RollExtras {
		t.Fatalf("flags = %+v", src)
	}
}

func TestParseFormDefaults(t *testing.T) {
	form := exampleForm()
	form.Del(FieldBackground)
	form.Del(FieldGrowth)
	form.Del(FieldAuraBonus)
	form.Del(FieldRollExtras)

	src, err := ParseForm(form)
	if err != nil {
		t.Fatalf("parse form: %v", err)
	}
	if src.WellOff || src.Growth != GrowthNone || src.AuraBonus || src.RollExtras {
		t.Fatalf("defaults = %+v", src)
	}
}

func TestParseFormErrors(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		value      string
		suggestion string
	}{
		{name: "missing ability", field: "wisdom", value: ""},
		{name: "non-numeric ability", field: "strength", value: "strong"},
		{name: "nan ability", field: "strength", value: "NaN"},
		{name: "missing level", field: FieldLevel, value: ""},
		{name: "fractional level", field: FieldLevel, value: "3.5"},
		{name: "negative level", field: FieldLevel, value: "-2"},
		{name: "unknown growth", field: FieldGrowth, value: "rol", suggestion: "roll"},
		{name: "unknown background", field: FieldBackground, value: "wel", suggestion: "well"},
		{name: "bad flag", field: FieldAuraBonus, value: "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := exampleForm()
			form.Set(tt.field, tt.value)
			_, err := ParseForm(form)
			appErr, ok := apperrors.As(err)
			if !ok {
				t.Fatalf("expected domain error, got %v", err)
			}
			if appErr.Code != apperrors.CodeMalformedInput {
				t.Fatalf("code = %q, want %q", appErr.Code, apperrors.CodeMalformedInput)
			}
			if appErr.Metadata["Field"] != tt.field {
				t.Fatalf("field = %q, want %q", appErr.Metadata["Field"], tt.field)
			}
			if appErr.Metadata["Suggestion"] != tt.suggestion {
				t.Fatalf("suggestion = %q, want %q", appErr.Metadata["Suggestion"], tt.suggestion)
			}
		})
	}
}

func TestParseGrowthMode(t *testing.T) {
	tests := map[string]GrowthMode{
		"":      GrowthNone,
		"none":  GrowthNone,
		"Add":   GrowthAdd,
		" roll": GrowthRoll,
	}
	for in, want := range tests {
		got, err := ParseGrowthMode(in)
		if err != nil {
			t.Fatalf("ParseGrowthMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseGrowthMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateRejectsUnknownAbilities(t *testing.T) {
	tests := []struct {
		name       string
		extra      Ability
		value      string
		suggestion string
	}{
		{name: "unrelated ability", extra: "charisma", value: "charisma"},
		{name: "misspelled ability", extra: "dexterty", value: "dexterty", suggestion: "dexterity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := exampleCharacter()
			src.Abilities[tt.extra] = 99
			err := src.Validate()
			if apperrors.CodeOf(err) != apperrors.CodeMalformedInput {
				t.Fatalf("code = %q, want %q", apperrors.CodeOf(err), apperrors.CodeMalformedInput)
			}
			appErr, ok := apperrors.As(err)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			metadata := appErr.Metadata
			if metadata["Field"] != FieldAbilities || metadata["Value"] != tt.value {
				t.Fatalf("metadata = %v", metadata)
			}
			if metadata["Suggestion"] != tt.suggestion {
				t.Fatalf("suggestion = %q, want %q", metadata["Suggestion"], tt.suggestion)
			}
		})
	}
}
