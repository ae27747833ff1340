package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leofalp/emcalc/providers/tool"
)

// Server is an MCP server backed by a dispatcher.
type Server struct {
	mcp        *server.MCPServer
	dispatcher *tool.Dispatcher
	tools      []string
}

// NewServer registers every tool of dispatcher's catalog on a new MCP server.
func NewServer(name, version string, dispatcher *tool.Dispatcher) (*Server, error) {
	s := &Server{
		mcp:        server.NewMCPServer(name, version, server.WithToolCapabilities(false)),
		dispatcher: dispatcher,
	}

	for _, info := range dispatcher.Catalog().Infos() {
		schema, err := info.Parameters.JSONString(false)
		if err != nil {
			return nil, fmt.Errorf("mcp: schema for %s: %w", info.Name, err)
		}
		s.mcp.AddTool(mcp.NewToolWithRawSchema(info.Name, info.Description, json.RawMessage(schema)), s.Handle)
		s.tools = append(s.tools, info.Name)
	}
	return s, nil
}

// Tools returns the names of the registered tools.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// Handle serves a tools/call request.
func (s *Server) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.Params.Name

	args, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Calculation error: %v", err)), nil
	}
	if string(args) == "null" {
		args = []byte("{}")
	}

	output, err := s.dispatcher.Dispatch(ctx, name, string(args))
	switch {
	case errors.Is(err, tool.ErrUnknownTool):
		return mcp.NewToolResultError("Unknown tool: " + name), nil
	case err != nil:
		return mcp.NewToolResultError("Calculation error: " + err.Error()), nil
	}
	return mcp.NewToolResultText(output), nil
}

// Serve speaks MCP over in and out until ctx is done or in is closed.
// Transport errors are written to errLog.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer, errLog *log.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	if errLog != nil {
		stdio.SetErrorLogger(errLog)
	}
	return stdio.Listen(ctx, in, out)
}
