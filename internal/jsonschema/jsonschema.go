package jsonschema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema used to describe tool parameters and
// tool outputs.
type Schema struct {
	// Type is the JSON type: "object", "array", "string", "number", "integer" or "boolean".
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	// Items describes array elements.
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties describes map values.
	AdditionalProperties any   `json:"additionalProperties,omitempty"`
	Default              any   `json:"default,omitempty"`
	Enum                 []any `json:"enum,omitempty"`
	// Ref points into Defs for self-referencing types.
	Ref  string             `json:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// GenerateJSONSchema returns the schema for T. Pointer types describe their
// element type.
func GenerateJSONSchema[T any]() *Schema {
	g := &generator{
		visited: make(map[reflect.Type]string),
		defs:    make(map[string]*Schema),
	}

	schema := g.schemaFor(reflect.TypeFor[T](), true)
	if len(g.defs) > 0 {
		schema.Defs = g.defs
	}
	return schema
}

type generator struct {
	visited map[reflect.Type]string // recursive struct types -> def name
	defs    map[string]*Schema
}

func (g *generator) schemaFor(t reflect.Type, isRoot bool) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return g.schemaFor(t.Elem(), isRoot)
	case reflect.Struct:
		return g.structSchema(t, isRoot)
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: g.schemaFor(t.Elem(), false)}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: g.schemaFor(t.Elem(), false)}
	default:
		return &Schema{Type: primitiveType(t.Kind())}
	}
}

func primitiveType(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	default:
		return "object"
	}
}

func (g *generator) structSchema(t reflect.Type, isRoot bool) *Schema {
	if defName, ok := g.visited[t]; ok {
		return &Schema{Ref: "#/$defs/" + defName}
	}

	recursive := isRecursive(t)
	defName := defNameFor(t)
	if recursive {
		g.visited[t] = defName
	}

	schema := &Schema{Type: "object", Properties: make(map[string]*Schema)}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := parseJSONTag(field)
		if skip {
			continue
		}

		fieldSchema := g.schemaFor(field.Type, false)
		schema.Properties[name] = fieldSchema

		requiredByTag := false
		if fieldSchema.Ref == "" {
			var err error
			requiredByTag, err = applyTag(field.Type, field.Tag.Get("jsonschema"), fieldSchema)
			if err != nil {
				slog.Error("invalid jsonschema tag", "type", t.String(), "field", name, "error", err)
			}
		}

		if (field.Type.Kind() != reflect.Ptr && !omitEmpty) || requiredByTag {
			schema.Required = append(schema.Required, name)
		}
	}

	if !recursive {
		return schema
	}

	g.defs[defName] = schema
	if isRoot {
		return schema
	}
	return &Schema{Ref: "#/$defs/" + defName}
}

// parseJSONTag returns the property name for field and whether it carries
// omitempty. skip is true for json:"-".
func parseJSONTag(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	tagName, options, _ := strings.Cut(tag, ",")
	if tagName != "" {
		name = tagName
	}
	for _, opt := range strings.Split(options, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// applyTag copies jsonschema tag settings onto schema and reports whether the
// tag marks the field as required.
//
// Supported keys: description=..., enum=... (repeatable, converted to the
// field kind), default=... and the bare flag required. A segment that is
// neither a known key nor a flag continues the previous description, so
// descriptions may contain commas.
func applyTag(fieldType reflect.Type, tag string, schema *Schema) (bool, error) {
	if tag == "" {
		return false, nil
	}
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	required := false
	lastKey := ""
	for _, part := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(part, "=")
		switch {
		case !hasValue && strings.TrimSpace(part) == "required":
			required = true
			lastKey = "required"
		case hasValue && key == "description":
			schema.Description = value
			lastKey = key
		case hasValue && key == "enum":
			v, err := convertTagValue(fieldType, value)
			if err != nil {
				return required, fmt.Errorf("enum %q: %w", value, err)
			}
			schema.Enum = append(schema.Enum, v)
			lastKey = key
		case hasValue && key == "default":
			v, err := convertTagValue(fieldType, value)
			if err != nil {
				return required, fmt.Errorf("default %q: %w", value, err)
			}
			schema.Default = v
			lastKey = key
		case lastKey == "description":
			schema.Description += "," + part
		default:
			return required, fmt.Errorf("unknown jsonschema tag segment %q", part)
		}
	}
	return required, nil
}

func convertTagValue(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Bool:
		return strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("unsupported field type %v", fieldType)
	}
}

// isRecursive reports whether t can reach itself through its exported fields.
func isRecursive(t reflect.Type) bool {
	seen := map[reflect.Type]bool{t: true}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.IsExported() && refersTo(t, field.Type, seen) {
			return true
		}
	}
	return false
}

func refersTo(target, t reflect.Type, seen map[reflect.Type]bool) bool {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
		t = t.Elem()
	}
	if t == target {
		return true
	}
	if t.Kind() != reflect.Struct || seen[t] {
		return false
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.IsExported() && refersTo(target, field.Type, seen) {
			return true
		}
	}
	return false
}

func defNameFor(t reflect.Type) string {
	if t.Name() != "" {
		return strings.ToLower(t.Name())
	}
	return "anonymousStruct"
}

// JSONString returns the schema as JSON, indented when indent is true.
func (s *Schema) JSONString(indent bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = json.Marshal(s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(data), nil
}

// String returns the compact JSON form of the schema.
func (s *Schema) String() string {
	out, err := s.JSONString(false)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out
}

// RequiredPaths lists every required property path, descending into inline
// nested objects. Nested paths are joined with dots, e.g. "position1.x".
func (s *Schema) RequiredPaths() []string {
	if s == nil {
		return nil
	}
	var paths []string
	for _, name := range s.Required {
		paths = append(paths, name)
		if child, ok := s.Properties[name]; ok && child.Type == "object" {
			for _, nested := range child.RequiredPaths() {
				paths = append(paths, name+"."+nested)
			}
		}
	}
	return paths
}
