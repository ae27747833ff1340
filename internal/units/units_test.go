package units

import (
	"math"
	"testing"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{Newtons, "N"},
		{Tesla, "T"},
		{Volts, "V"},
		{Hertz, "Hz"},
		{Joules, "J"},
		{Weber, "Wb"},
		{Henry, "H"},
		{Seconds, "s"},
		{Unit("Ohms"), "Ohms"},
	}
	for _, tc := range tests {
		if got := tc.unit.Symbol(); got != tc.want {
			t.Errorf("%s.Symbol() = %q, want %q", tc.unit, got, tc.want)
		}
	}
}

func TestFormatSI(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  Unit
		want  string
	}{
		{"kilo", 2500, Hertz, "2.5 kHz"},
		{"milli", 0.5, Joules, "500 mJ"},
		{"zero", 0, Newtons, "0 N"},
		{"nan", math.NaN(), Newtons, "NaN N"},
		{"positive infinity", math.Inf(1), Volts, "+Inf V"},
		{"negative infinity", math.Inf(-1), Volts, "-Inf V"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSI(tc.value, tc.unit); got != tc.want {
				t.Errorf("FormatSI(%v, %s) = %q, want %q", tc.value, tc.unit, got, tc.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "vector result",
			output: `{"force":{"x":2000,"y":0,"z":0},"magnitude":2000,"unit":"Newtons"}`,
			want:   "|force| = 2 kN",
		},
		{
			name:   "scalar result",
			output: `{"frequency":2500,"unit":"Hertz"}`,
			want:   "frequency = 2.5 kHz",
		},
		{
			name:   "non-finite scalar",
			output: `{"emf":"-Inf","unit":"Volts"}`,
			want:   "emf = -Inf V",
		},
		{
			name:   "nan magnitude",
			output: `{"field":{"x":"NaN","y":"NaN","z":"NaN"},"magnitude":"NaN","unit":"Tesla"}`,
			want:   "|field| = NaN T",
		},
		{name: "not json", output: `nope`, wantErr: true},
		{name: "no numbers", output: `{"unit":"Volts","note":"x"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Summarize(tc.output)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Summarize() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Summarize() = %q, want %q", got, tc.want)
			}
		})
	}
}
