// Package random provides seed generation for the dice rollers.
//
// Seeds come from crypto/rand so that rolls are unpredictable, while the
// rollers built from them stay deterministic and replayable.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns requested when set, otherwise a fresh seed.
func ResolveSeed(requested *int64) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	return NewSeed()
}

// ParseSeed parses an optional decimal seed. Blank input yields nil.
func ParseSeed(value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse seed %q: %w", value, err)
	}
	return &seed, nil
}
