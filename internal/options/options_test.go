package options

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
)

func TestDefaultLoadsBothLists(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if len(set.Eyesight) != 7 {
		t.Fatalf("expected 7 eyesight options, got %d", len(set.Eyesight))
	}
	if len(set.Hearing) != 5 {
		t.Fatalf("expected 5 hearing options, got %d", len(set.Hearing))
	}
	if d, ok := set.Find(KindEyesight, "eye8"); !ok || d.Name != "Eagle-eyed" {
		t.Fatalf("Find(eye8) = %+v, %v", d, ok)
	}
	if _, ok := set.Find(KindHearing, "eye8"); ok {
		t.Fatal("expected eyesight token to be absent from hearing list")
	}
}

func TestLoadRejectsInvalidLists(t *testing.T) {
	tests := map[string]string{
		"not json":        `{`,
		"unknown field":   `{"eyesight": [], "hearing": [], "smell": []}`,
		"empty eyesight":  `{"eyesight": [], "hearing": [{"id":"a","value":"hear0","name":"x"}]}`,
		"missing name":    `{"eyesight": [{"id":"a","value":"eye0","name":""}], "hearing": [{"id":"b","value":"hear0","name":"x"}]}`,
		"duplicate value": `{"eyesight": [{"id":"a","value":"eye0","name":"x"},{"id":"b","value":"eye0","name":"y"}], "hearing": [{"id":"c","value":"hear0","name":"x"}]}`,
		"duplicate id":    `{"eyesight": [{"id":"a","value":"eye0","name":"x"},{"id":"a","value":"eye1","name":"y"}], "hearing": [{"id":"c","value":"hear0","name":"x"}]}`,
		"missing hearing": `{"eyesight": [{"id":"a","value":"eye0","name":"x"}]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, apperrors.New(apperrors.CodeOptionsInvalid, "")) {
				t.Fatalf("expected OPTIONS_INVALID, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"json/data.json": &fstest.MapFile{Data: []byte(`{
			"eyesight": [{"id": "e", "value": "eye1", "name": "Normal"}],
			"hearing": [{"id": "h", "value": "hear2", "name": "Normal"}]
		}`)},
	}
	set, err := LoadFile(fsys, "json/data.json")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(set.Eyesight) != 1 || set.Hearing[0].Value != "hear2" {
		t.Fatalf("unexpected set %+v", set)
	}
	if _, err := LoadFile(fsys, "missing.json"); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestSuggest(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	tests := []struct {
		kind  Kind
		value string
		want  string
	}{
		{kind: KindEyesight, value: "eye9", want: "eye0"},
		{kind: KindHearing, value: "HEAR4", want: "hear4"},
		{kind: KindHearing, value: "hera3", want: ""},
		{kind: KindHearing, value: "trumpet", want: ""},
		{kind: KindEyesight, value: "", want: ""},
	}
	for _, tt := range tests {
		if got := set.Suggest(tt.kind, tt.value); got != tt.want {
			t.Errorf("Suggest(%s, %q) = %q, want %q", tt.kind, tt.value, got, tt.want)
		}
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"none", "add", "roll"}
	if got := Closest("rol", candidates); got != "roll" {
		t.Fatalf("Closest(rol) = %q", got)
	}
	if got := Closest("ad", candidates); got != "add" {
		t.Fatalf("Closest(ad) = %q", got)
	}
	if got := Closest("double", candidates); got != "" {
		t.Fatalf("Closest(double) = %q", got)
	}
	if got := Closest("x", nil); got != "" {
		t.Fatalf("Closest with no candidates = %q", got)
	}
}
