package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/leofalp/emcalc/core/parse"
	"github.com/leofalp/emcalc/internal/jsonschema"
	"github.com/leofalp/emcalc/providers/observability"
)

// Tool binds a name, description and unit label to a strongly-typed Go
// function. JSON schemas for the input (I) and output (O) types are derived
// by reflection. Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	// Unit labels the physical quantity the tool returns, e.g. "Newtons".
	Unit       string
	Parameters *jsonschema.Schema
	Output     *jsonschema.Schema
	Function   func(ctx context.Context, input I) (O, error)
}

// Info is the catalog entry advertised for a tool.
type Info struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Unit        string             `json:"unit,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters"`
	Output      *jsonschema.Schema `json:"output,omitempty"`
}

// GenericTool abstracts over the type parameters of [Tool] so tools can be
// stored, dispatched and described without knowing their concrete types.
type GenericTool interface {
	// ToolInfo returns the name, description, unit and schemas of the tool.
	ToolInfo() Info

	// Call invokes the tool with a JSON-encoded input and returns the
	// JSON-encoded output.
	Call(ctx context.Context, inputJSON string) (string, error)
}

type funcToolOptions struct {
	Description string
	Unit        string
}

// WithDescription sets a human-readable description for the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// WithUnit sets the unit label of the tool's result.
func WithUnit(unit string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Unit = unit
	}
}

// NewTool constructs a [Tool] with the given name and handler function.
//
// Example:
//
//	rc := tool.NewTool("rc_time_constant", rcFunc,
//	    tool.WithDescription("Calculate the time constant of an RC circuit"),
//	    tool.WithUnit("Seconds"),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Unit:        toolOptions.Unit,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
	}
}

// ToolInfo returns the catalog entry for this tool.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Unit:        t.Unit,
		Parameters:  t.Parameters,
		Output:      t.Output,
	}
}

// Call decodes inputJSON into I, runs the function and returns the output as
// JSON.
//
// The input is parsed leniently (unquoted keys, trailing commas and code
// fences are repaired). Every property the parameter schema marks as
// required, including nested vector components, must be present and non-null;
// otherwise Call fails with [ErrMissingArgument] before the function runs.
// Type mismatches fail with [ErrInvalidArguments]. Span events are emitted
// when a span is present in ctx.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, observability.TruncateString(inputJSON, 0)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	input, err := t.decode(inputJSON)
	if err != nil {
		if span != nil {
			span.AddEvent(observability.EventArgumentsRejected, observability.Error(err))
			span.SetAttributes(observability.String(observability.AttrToolError, err.Error()))
		}
		return "", err
	}

	start := time.Now()
	output, err := t.Function(ctx, input)
	duration := time.Since(start)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return "", fmt.Errorf("tool %s: encode output: %w", t.Name, err)
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, observability.TruncateString(string(outputBytes), 0)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}
	return string(outputBytes), nil
}

func (t *Tool[I, O]) decode(inputJSON string) (I, error) {
	var input I

	if strings.TrimSpace(inputJSON) == "" {
		inputJSON = "{}"
	}

	raw, err := parse.ParseStringAs[map[string]any](inputJSON)
	if err != nil {
		return input, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, t.Name, err)
	}

	if missing := missingPaths(raw, t.Parameters.RequiredPaths()); len(missing) > 0 {
		return input, fmt.Errorf("%w: %s: %s", ErrMissingArgument, t.Name, strings.Join(missing, ", "))
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return input, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, t.Name, err)
	}
	if err := json.Unmarshal(normalized, &input); err != nil {
		return input, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, t.Name, err)
	}
	return input, nil
}

// missingPaths returns the dotted paths absent from raw. Paths must list
// parents before children; children of a missing parent are not reported.
func missingPaths(raw map[string]any, paths []string) []string {
	var missing []string

	for _, path := range paths {
		parts := strings.Split(path, ".")
		current := raw
		found := true
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				// Absent parents were already reported; mismatched types are
				// left to decoding.
				found = false
				break
			}
			current = next
		}
		if !found {
			continue
		}
		if value, ok := current[parts[len(parts)-1]]; !ok || value == nil {
			missing = append(missing, path)
		}
	}
	return missing
}
