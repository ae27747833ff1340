package observability

// Span names.
const (
	SpanToolDispatch = "tool.dispatch"
)

// Span events.
const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"
	EventArgumentsRejected  = "tool.arguments.rejected"
)

// Attribute keys for tool dispatch.
const (
	// AttrCallID identifies a single dispatch.
	AttrCallID = "tool.call_id"

	AttrToolName     = "tool.name"
	AttrToolUnit     = "tool.unit"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolDuration = "tool.duration"
	AttrToolError    = "tool.error"

	// AttrStrictInputs records whether degenerate inputs are rejected.
	AttrStrictInputs = "tool.strict_inputs"
)

// Generic attribute keys.
const (
	AttrError             = "error"
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
)

// Metric names.
const (
	MetricToolCalls      = "tool.calls"
	MetricToolErrors     = "tool.errors"
	MetricToolDurationMs = "tool.duration_ms"
)
