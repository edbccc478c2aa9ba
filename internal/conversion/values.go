package conversion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Values holds one number per characteristic, in ConversionTable order.
// It is used for CSR vectors as well as converted characteristics.
type Values [CharacteristicCount]float64

// ValuesFromSlice copies an ordered sequence into Values.
func ValuesFromSlice(in []float64) (Values, error) {
	var out Values
	if len(in) != CharacteristicCount {
		return out, fmt.Errorf("expected %d values, got %d", CharacteristicCount, len(in))
	}
	copy(out[:], in)
	return out, nil
}

// Get returns the value for c. Unknown characteristics return 0.
func (v Values) Get(c Characteristic) float64 {
	i, ok := characteristicIndex(c)
	if !ok {
		return 0
	}
	return v[i]
}

// Slice returns the values as an ordered slice.
func (v Values) Slice() []float64 {
	out := make([]float64, len(v))
	copy(out, v[:])
	return out
}

// MarshalJSON renders the values as an object keyed by characteristic, in
// table order.
func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range conversionTable {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(string(m.Characteristic))
		value, err := json.Marshal(v[i])
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", m.Characteristic, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by characteristic. Missing keys stay
// zero; unknown keys are rejected.
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Values
	for key, value := range raw {
		i, ok := characteristicIndex(Characteristic(key))
		if !ok {
			return fmt.Errorf("unknown characteristic %q", key)
		}
		out[i] = value
	}
	*v = out
	return nil
}

// FormatValue renders a characteristic for display with at most two
// decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
