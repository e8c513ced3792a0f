// Package server hosts the FluentCRM tool catalogue behind the Model
// Context Protocol, over stdio for single-user use and over HTTP for
// multi-tenant use.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"fluentcrm-mcp/internal/fluentcrm"
	"fluentcrm-mcp/internal/i18n"
)

const (
	serverName    = "fluentcrm-mcp"
	serverVersion = "1.0.0"
)

const instructions = `FluentCRM management server. Tools cover contacts, tags, lists,
campaigns, email templates, automations (funnels), webhooks and Smart Links.
Smart Link tools may report the feature as unavailable on older FluentCRM
installations; that response is informational, not an error.`

// Server is one MCP server instance bound to a single FluentCRM client.
// Credentials are fixed at construction time; the HTTP transport creates
// one Server per session so tenants never share a client.
type Server struct {
	mcp      *mcpsrv.MCPServer
	client   *fluentcrm.Client
	logger   *slog.Logger
	registry map[string]toolDef
}

// New builds a Server with the full tool catalogue registered, descriptions
// resolved through tr.
func New(client *fluentcrm.Client, tr *i18n.Translator, logger *slog.Logger) *Server {
	s := &Server{
		mcp: mcpsrv.NewMCPServer(serverName, serverVersion,
			mcpsrv.WithToolCapabilities(true),
			mcpsrv.WithInstructions(instructions),
		),
		client:   client,
		logger:   logger,
		registry: make(map[string]toolDef, len(catalogue)),
	}
	for _, def := range catalogue {
		s.registry[def.name] = def
		s.mcp.AddTool(buildTool(def, tr), s.handleCall)
	}
	return s
}

// handleCall is the single handler behind every registered tool; routing by
// name happens in dispatch so unknown-tool handling has one code path.
func (s *Server) handleCall(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return s.dispatch(ctx, req.Params.Name, req.GetArguments()), nil
}

// ServeStdio runs the protocol loop over stdin/stdout until EOF or ctx
// cancellation, both of which are a normal shutdown.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.InfoContext(ctx, "serving MCP over stdio")
	err := mcpsrv.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// HandleMessage feeds one raw JSON-RPC message to the protocol engine.
// A nil return means the message was a notification and has no reply.
func (s *Server) HandleMessage(ctx context.Context, raw []byte) mcplib.JSONRPCMessage {
	return s.mcp.HandleMessage(ctx, raw)
}
