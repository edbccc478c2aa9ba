package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	// Two identical 64-bit crypto seeds in a row would indicate a broken source.
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct seeds, got %d twice", first)
	}
}

func TestResolveSeed(t *testing.T) {
	requested := int64(42)
	got, err := ResolveSeed(&requested)
	if err != nil {
		t.Fatalf("ResolveSeed() error = %v", err)
	}
	if got != 42 {
		t.Fatalf("ResolveSeed() = %d, want 42", got)
	}
	if _, err := ResolveSeed(nil); err != nil {
		t.Fatalf("ResolveSeed(nil) error = %v", err)
	}
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed(" 1234 ")
	if err != nil || seed == nil || *seed != 1234 {
		t.Fatalf("ParseSeed(1234) = %v, %v", seed, err)
	}
	seed, err = ParseSeed("")
	if err != nil || seed != nil {
		t.Fatalf("ParseSeed(\"\") = %v, %v", seed, err)
	}
	if _, err := ParseSeed("abc"); err == nil {
		t.Fatal("expected parse error")
	}
}
