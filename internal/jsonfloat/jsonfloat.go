// Package jsonfloat encodes IEEE-754 doubles as JSON without losing the
// non-finite values. encoding/json refuses NaN and ±Inf; this package writes
// them as the strings "NaN", "+Inf" and "-Inf" and reads them back.
package jsonfloat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 that survives a JSON round trip even when non-finite.
type Float float64

const (
	nanToken    = `"NaN"`
	posInfToken = `"+Inf"`
	negInfToken = `"-Inf"`
)

// Append appends the JSON encoding of f to buf.
// Finite values use the shortest representation that round-trips exactly.
func Append(buf []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(buf, nanToken...)
	case math.IsInf(f, 1):
		return append(buf, posInfToken...)
	case math.IsInf(f, -1):
		return append(buf, negInfToken...)
	}
	return strconv.AppendFloat(buf, f, 'g', -1, 64)
}

// Parse decodes a JSON token produced by [Append] or any plain JSON number.
func Parse(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case nanToken, `"nan"`:
		return math.NaN(), nil
	case posInfToken, `"Inf"`, `"+inf"`, `"inf"`, `"Infinity"`:
		return math.Inf(1), nil
	case negInfToken, `"-inf"`, `"-Infinity"`:
		return math.Inf(-1), nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("jsonfloat: invalid number %s: %w", data, err)
	}
	return f, nil
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	return Append(nil, float64(f)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}
