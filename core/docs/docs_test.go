package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leofalp/emcalc/providers/tool"
	"github.com/leofalp/emcalc/providers/tool/electromagnetism"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"pdf", "", true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.input)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tc.input, got, err)
		}
	}
}

func TestRender_JSON(t *testing.T) {
	infos := electromagnetism.NewCatalog().Infos()

	out, err := Render(infos, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []tool.Info
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != len(electromagnetism.Operations()) {
		t.Fatalf("expected %d entries, got %d", len(electromagnetism.Operations()), len(decoded))
	}
	for _, info := range decoded {
		if info.Parameters == nil || info.Unit == "" {
			t.Errorf("%s: incomplete entry %+v", info.Name, info)
		}
	}
}

func TestRender_Markdown(t *testing.T) {
	out, err := Render(electromagnetism.NewCatalog().Infos(), FormatMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range electromagnetism.Operations() {
		if !strings.Contains(out, "## `"+name+"`") {
			t.Errorf("missing heading for %s", name)
		}
	}

	expected := []string{
		"# Operations",
		"Calculate the electrostatic force between two point charges using Coulomb's law",
		"`charge1` (number, required): First charge in Coulombs",
		"`position1` (vector {x, y, z}, required)",
		"`turns` (number): Number of turns in the coil (default 1)",
		"Result unit: **Henry**",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<code>") || strings.Contains(out, "&#39;") {
		t.Errorf("markdown should not contain raw HTML or entities:\n%s", out)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render(nil, Format("pdf")); err == nil {
		t.Error("expected error for unknown format")
	}
}
