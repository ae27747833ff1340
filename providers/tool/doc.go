// Package tool turns typed Go functions into named, self-describing
// operations that can be called with JSON arguments.
//
// [NewTool] wraps a func(ctx, I) (O, error) and derives JSON schemas for I and
// O by reflection. [WithDescription] and [WithUnit] attach the text and unit
// label advertised in [Info]. Every tool satisfies [GenericTool], which is
// what the thread-safe [Catalog] stores.
//
// [Dispatcher] is the single entry point used by the CLI and the MCP server:
// it resolves an operation name against a catalog, rejects unknown names with
// [ErrUnknownTool], and lets the tool reject missing or malformed arguments
// with [ErrMissingArgument] or [ErrInvalidArguments] before any calculation
// runs. Attach an [observability.Provider] with [WithObserver] to get a span,
// counters and a duration histogram per call.
package tool
