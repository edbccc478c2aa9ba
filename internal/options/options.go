// Package options loads the sensory option lists offered to callers.
//
// The lists only drive selection surfaces; the conversion itself accepts
// any token and falls back to defaults for unknown ones.
package options

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/agnivade/levenshtein"
	apperrors "github.com/louisbranch/cands-to-harn/internal/platform/errors"
)

// Kind names one of the option lists.
type Kind string

const (
	KindEyesight Kind = "eyesight"
	KindHearing  Kind = "hearing"
)

// Descriptor is one selectable option.
type Descriptor struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Name  string `json:"name"`
}

// Set holds both option lists.
type Set struct {
	Eyesight []Descriptor `json:"eyesight"`
	Hearing  []Descriptor `json:"hearing"`
}

//go:embed data.json
var embeddedData []byte

// Default decodes the embedded option lists.
func Default() (Set, error) {
	return Load(bytes.NewReader(embeddedData))
}

// Load decodes and validates option lists from r.
func Load(r io.Reader) (Set, error) {
	var set Set
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return Set{}, apperrors.WrapWithMetadata(apperrors.CodeOptionsInvalid,
			"decode options", map[string]string{"Reason": err.Error()}, err)
	}
	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// LoadFile reads option lists from path within fsys.
func LoadFile(fsys fs.FS, path string) (Set, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open options %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks that both lists are present and well formed.
func (s Set) Validate() error {
	for _, kind := range []Kind{KindEyesight, KindHearing} {
		list := s.List(kind)
		if len(list) == 0 {
			return invalid(fmt.Sprintf("%s list is empty", kind))
		}
		ids := map[string]bool{}
		values := map[string]bool{}
		for i, d := range list {
			if strings.TrimSpace(d.Value) == "" || strings.TrimSpace(d.Name) == "" {
				return invalid(fmt.Sprintf("%s option %d needs a value and a name", kind, i))
			}
			if d.ID != "" && ids[d.ID] {
				return invalid(fmt.Sprintf("%s option id %q is duplicated", kind, d.ID))
			}
			if values[d.Value] {
				return invalid(fmt.Sprintf("%s option value %q is duplicated", kind, d.Value))
			}
			ids[d.ID] = true
			values[d.Value] = true
		}
	}
	return nil
}

// List returns the descriptors for kind.
func (s Set) List(kind Kind) []Descriptor {
	switch kind {
	case KindEyesight:
		return s.Eyesight
	case KindHearing:
		return s.Hearing
	default:
		return nil
	}
}

// Find returns the descriptor with the given value.
func (s Set) Find(kind Kind, value string) (Descriptor, bool) {
	for _, d := range s.List(kind) {
		if d.Value == value {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Suggest returns the closest known value to an unknown one, or "" when
// nothing is close enough to be a plausible typo.
func (s Set) Suggest(kind Kind, value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	candidates := make([]string, 0, len(s.List(kind)))
	for _, d := range s.List(kind) {
		candidates = append(candidates, d.Value)
	}
	return Closest(value, candidates)
}

// Closest returns the candidate with the smallest edit distance to value
// when that distance is at most a third of value's length (minimum one).
func Closest(value string, candidates []string) string {
	best, bestDistance := "", -1
	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(value, candidate)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	limit := len(value) / 3
	if limit < 1 {
		limit = 1
	}
	if bestDistance < 0 || bestDistance > limit {
		return ""
	}
	return best
}

func invalid(reason string) error {
	return apperrors.WithMetadata(apperrors.CodeOptionsInvalid, "invalid options: "+reason,
		map[string]string{"Reason": reason})
}
