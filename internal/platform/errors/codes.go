// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Conversion errors
	CodeMalformedInput    Code = "MALFORMED_INPUT"
	CodeDegenerateAverage Code = "DEGENERATE_AVERAGE"

	// Dice errors
	CodeDiceInvalidRange  Code = "DICE_INVALID_RANGE"
	CodeDiceRollerMissing Code = "DICE_ROLLER_MISSING"

	// Options source errors
	CodeOptionsInvalid Code = "OPTIONS_INVALID"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad input from the caller
	case CodeMalformedInput:
		return http.StatusBadRequest

	// Well-formed input that cannot be converted
	case CodeDegenerateAverage:
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
