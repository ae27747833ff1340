package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/emcalc/internal/jsonschema"
	"github.com/leofalp/emcalc/providers/tool"
)

// Format selects the documentation output.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps "json", "markdown" or "md" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown documentation format %q", s)
	}
}

// Render documents infos in the requested format.
func Render(infos []tool.Info, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return "", fmt.Errorf("docs: encode catalog: %w", err)
		}
		return string(data) + "\n", nil
	case FormatMarkdown:
		return renderMarkdown(infos)
	default:
		return "", fmt.Errorf("docs: unsupported format %q", format)
	}
}

type page struct {
	Tools []toolPage
}

type toolPage struct {
	Name        string
	Description string
	Unit        string
	Params      []paramPage
	Outputs     []paramPage
}

type paramPage struct {
	Name        string
	Type        string
	Required    bool
	Description string
}

var pageTemplate = template.Must(template.New("catalog").Parse(`<html><body>
<h1>Operations</h1>
{{range .Tools}}
<h2><code>{{.Name}}</code></h2>
<p>{{.Description}}</p>
{{if .Unit}}<p>Result unit: <strong>{{.Unit}}</strong></p>{{end}}
<h3>Parameters</h3>
<ul>
{{range .Params}}<li><code>{{.Name}}</code> ({{.Type}}{{if .Required}}, required{{end}}){{if .Description}}: {{.Description}}{{end}}</li>
{{end}}</ul>
{{if .Outputs}}<h3>Result</h3>
<ul>
{{range .Outputs}}<li><code>{{.Name}}</code> ({{.Type}}){{if .Description}}: {{.Description}}{{end}}</li>
{{end}}</ul>{{end}}
{{end}}
</body></html>`))

func renderMarkdown(infos []tool.Info) (string, error) {
	p := page{Tools: make([]toolPage, 0, len(infos))}
	for _, info := range infos {
		p.Tools = append(p.Tools, toolPage{
			Name:        info.Name,
			Description: info.Description,
			Unit:        info.Unit,
			Params:      properties(info.Parameters),
			Outputs:     properties(info.Output),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("docs: render html: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("docs: convert to markdown: %w", err)
	}
	return strings.TrimSpace(markdown) + "\n", nil
}

// properties lists the top-level properties of schema, required ones first
// in declaration order, then optional ones by name.
func properties(schema *jsonschema.Schema) []paramPage {
	if schema == nil || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var optional []string
	for name := range schema.Properties {
		if !required[name] {
			optional = append(optional, name)
		}
	}
	sort.Strings(optional)

	params := make([]paramPage, 0, len(schema.Properties))
	for _, name := range append(append([]string{}, schema.Required...), optional...) {
		prop, ok := schema.Properties[name]
		if !ok {
			continue
		}
		params = append(params, paramPage{
			Name:        name,
			Type:        typeName(prop),
			Required:    required[name],
			Description: prop.Description,
		})
	}
	return params
}

func typeName(schema *jsonschema.Schema) string {
	if schema.Type == "object" && len(schema.Properties) == 3 &&
		schema.Properties["x"] != nil && schema.Properties["y"] != nil && schema.Properties["z"] != nil {
		return "vector {x, y, z}"
	}
	if len(schema.Enum) == 1 {
		return fmt.Sprintf("%s %q", schema.Type, schema.Enum[0])
	}
	if schema.Type == "" {
		return "any"
	}
	return schema.Type
}
