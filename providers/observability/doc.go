// Package observability defines the tracing, metrics and logging interfaces
// used by the tool dispatcher, together with the attribute keys and span
// names it records.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into one injectable
// dependency. The active [Span] travels through a [context.Context] via
// [ContextWithSpan] and [SpanFromContext] so tools can add events without
// knowing which backend is configured. The slogobs subpackage provides a
// log/slog backed implementation.
package observability
