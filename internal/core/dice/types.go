// Package dice rolls dice over an injected random source.
package dice

import (
	"errors"
	"math/rand"
)

// Roller is the random capability dice rolls draw from. *rand.Rand
// satisfies it; tests substitute scripted sequences.
type Roller interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// ErrInvalidRange indicates a ranged roll whose maximum is below its minimum.
var ErrInvalidRange = errors.New("die range maximum must not be below minimum")

// ErrMissingRoller indicates a roll was requested without a random source.
var ErrMissingRoller = errors.New("a roller is required")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result captures the results from rolling multiple dice specs.
type Result struct {
	Rolls []Roll
	Total int
}

// NewSeededRoller returns a deterministic roller for seed.
func NewSeededRoller(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
