// Package dicefakes provides scripted dice rollers for tests.
package dicefakes

import "fmt"

// Sequence is a dice.Roller that replays scripted Intn results in order.
// It panics when the script runs out or a value does not fit the
// requested range, which surfaces miscounted rolls in tests.
type Sequence struct {
	values []int
	next   int
	// Bounds records the n passed to every Intn call.
	Bounds []int
}

// Faces scripts 1-based die faces: a face f is returned as Intn result f-1,
// so rolling a die (or a 1..max range) yields exactly f.
func Faces(faces ...int) *Sequence {
	values := make([]int, len(faces))
	for i, face := range faces {
		values[i] = face - 1
	}
	return &Sequence{values: values}
}

// Intn returns the next scripted value.
func (s *Sequence) Intn(n int) int {
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("dicefakes: sequence exhausted after %d rolls", s.next))
	}
	value := s.values[s.next]
	if value < 0 || value >= n {
		panic(fmt.Sprintf("dicefakes: scripted value %d outside [0, %d)", value, n))
	}
	s.next++
	s.Bounds = append(s.Bounds, n)
	return value
}

// Used reports how many scripted values have been consumed.
func (s *Sequence) Used() int {
	return s.next
}

// Remaining reports how many scripted values are left.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}
