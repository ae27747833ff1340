// Package units names the SI units reported by the electromagnetism tools and
// renders values with metric prefixes for human-readable output.
package units

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/leofalp/emcalc/internal/jsonfloat"
)

// Unit is the label attached to a tool result, e.g. "Newtons".
type Unit string

const (
	Newtons Unit = "Newtons"
	Tesla   Unit = "Tesla"
	Volts   Unit = "Volts"
	Hertz   Unit = "Hertz"
	Joules  Unit = "Joules"
	Weber   Unit = "Weber"
	Henry   Unit = "Henry"
	Seconds Unit = "Seconds"
)

var symbols = map[Unit]string{
	Newtons: "N",
	Tesla:   "T",
	Volts:   "V",
	Hertz:   "Hz",
	Joules:  "J",
	Weber:   "Wb",
	Henry:   "H",
	Seconds: "s",
}

// String returns the unit label.
func (u Unit) String() string {
	return string(u)
}

// Symbol returns the SI symbol, or the label itself for units not listed here.
func (u Unit) Symbol() string {
	if s, ok := symbols[u]; ok {
		return s
	}
	return string(u)
}

// FormatSI renders value with a metric prefix and the unit symbol, keeping
// four significant decimals: 2500 Hertz becomes "2.5 kHz". NaN and infinities
// are printed as-is.
func FormatSI(value float64, u Unit) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%v %s", value, u.Symbol())
	}
	return humanize.SIWithDigits(value, 4, u.Symbol())
}

// Summarize turns a tool's JSON output into a one-line reading such as
// "|force| = 8.988 GN" or "emf = -500 V". Vector results are summarized by
// their magnitude; scalar results by their only numeric field.
func Summarize(outputJSON string) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(outputJSON), &fields); err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	var unit Unit
	if raw, ok := fields["unit"]; ok {
		if err := json.Unmarshal(raw, &unit); err != nil {
			return "", fmt.Errorf("summarize: unit: %w", err)
		}
	}

	if raw, ok := fields["magnitude"]; ok {
		magnitude, err := jsonfloat.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("summarize: magnitude: %w", err)
		}
		name := "magnitude"
		for key := range fields {
			if key != "magnitude" && key != "unit" {
				name = "|" + key + "|"
				break
			}
		}
		return name + " = " + FormatSI(magnitude, unit), nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key != "unit" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, err := jsonfloat.Parse(fields[key])
		if err == nil {
			return key + " = " + FormatSI(value, unit), nil
		}
	}
	return "", fmt.Errorf("summarize: no numeric field in %s", outputJSON)
}
