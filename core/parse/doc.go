// Package parse turns loosely formatted argument payloads into typed Go
// values. Tool arguments arrive from shells, MCP clients and language models,
// so they are often not quite JSON: single quotes, bare keys, trailing
// commas, markdown code fences, or values wrapped in schema-like
// {"type": ..., "value": ...} envelopes.
//
// [ParseStringAs] handles primitives with strconv and composite types with
// encoding/json, falling back to jsonrepair and envelope unwrapping before
// giving up with an error.
package parse
