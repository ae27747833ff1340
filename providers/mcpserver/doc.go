// Package mcpserver exposes a tool catalog as a Model Context Protocol server over
// stdio, built on mark3labs/mcp-go.
//
// Every catalog entry becomes an MCP tool whose input schema is the tool's
// generated parameter schema. Calls are routed through a [tool.Dispatcher];
// a successful result is returned as a single text content item holding the
// tool's JSON output. Failures are reported as MCP error results rather than
// protocol errors: "Unknown tool: <name>" for names outside the catalog and
// "Calculation error: <message>" for everything else.
package mcpserver
