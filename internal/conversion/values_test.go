package conversion

import (
	"encoding/json"
	"testing"
)

func TestValuesJSONKeepsTableOrder(t *testing.T) {
	v := Values{1, 2, 3, 4, 5, 6, 7, 8.5}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"agility":1,"stamina":2,"strength":3,"aura":4,"intelligence":5,"voice":6,"comeliness":7,"will":8.5}`
	if string(data) != want {
		t.Fatalf("json = %s, want %s", data, want)
	}

	var decoded Values
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != v {
		t.Fatalf("decoded = %v, want %v", decoded, v)
	}
	if err := json.Unmarshal([]byte(`{"luck":3}`), &decoded); err == nil {
		t.Fatal("expected error for unknown characteristic")
	}
}

func TestValuesFromSliceChecksLength(t *testing.T) {
	if _, err := ValuesFromSlice([]float64{1, 2}); err == nil {
		t.Fatal("expected length error")
	}
	v, err := ValuesFromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("values from slice: %v", err)
	}
	if v.Get(CharacteristicWill) != 8 || v.Get("luck") != 0 {
		t.Fatalf("unexpected values %v", v)
	}
}

func TestConversionTableMapsEveryCharacteristicOnce(t *testing.T) {
	seen := map[Characteristic]bool{}
	sources := map[Ability]bool{}
	for _, m := range ConversionTable() {
		if seen[m.Characteristic] || sources[m.Source] {
			t.Fatalf("duplicate mapping %+v", m)
		}
		seen[m.Characteristic] = true
		sources[m.Source] = true
	}
	if sources[AbilityDiscipline] {
		t.Fatal("discipline must not map to a characteristic")
	}
	if len(SourceAbilities()) != 9 {
		t.Fatalf("source abilities = %d, want 9", len(SourceAbilities()))
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		5.4:               "5.4",
		5.850000000000001: "5.85",
		7:                 "7",
		4.049999999999999: "4.05",
		-0.125:            "-0.13",
	}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Fatalf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}
