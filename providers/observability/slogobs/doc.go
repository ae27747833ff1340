// Package slogobs implements [observability.Provider] on top of log/slog.
//
// Spans, counters and histograms are rendered as structured log records, so a
// CLI or MCP server gets usable tracing without an external collector. The
// [Handler] supports the formats listed under [Format]; colors are enabled
// automatically when the output is a terminal.
//
// Configuration comes from functional options or, by default, from the
// environment: EMCALC_LOG_FORMAT (or LOG_FORMAT) and EMCALC_LOG_LEVEL (or
// LOG_LEVEL). Records go to stderr unless [WithOutput] says otherwise, which
// keeps stdout free for tool results and MCP framing.
package slogobs
