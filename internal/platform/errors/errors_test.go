package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeMalformedInput, "level is negative", map[string]string{"Field": "level"})
	wrapped := fmt.Errorf("convert: %w", err)

	if !stderrors.Is(wrapped, New(CodeMalformedInput, "")) {
		t.Fatal("expected wrapped error to match malformed input code")
	}
	if stderrors.Is(wrapped, New(CodeDegenerateAverage, "")) {
		t.Fatal("expected degenerate average code not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("strconv failure")
	err := Wrap(CodeMalformedInput, "parse dexterity", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "parse dexterity" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "domain", err: New(CodeDegenerateAverage, "zero"), want: CodeDegenerateAverage},
		{name: "wrapped", err: fmt.Errorf("x: %w", New(CodeDiceInvalidRange, "range")), want: CodeDiceInvalidRange},
		{name: "plain", err: stderrors.New("boom"), want: CodeUnknown},
		{name: "nil", err: nil, want: CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeMalformedInput, http.StatusBadRequest},
		{CodeDegenerateAverage, http.StatusUnprocessableEntity},
		{CodeDiceRollerMissing, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestLocalize(t *testing.T) {
	format := func(code string, metadata map[string]string) string {
		return code + ":" + metadata["Field"]
	}
	err := WithMetadata(CodeMalformedInput, "bad", map[string]string{"Field": "level"})
	if got := Localize(err, format); got != "MALFORMED_INPUT:level" {
		t.Fatalf("Localize() = %q", got)
	}
	if got := Localize(stderrors.New("x"), format); got != "UNKNOWN:" {
		t.Fatalf("Localize() = %q", got)
	}
}
