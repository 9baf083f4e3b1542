package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/averycrespi/exprlab/internal/tools"
	"github.com/averycrespi/exprlab/pkg/project"
	"github.com/averycrespi/exprlab/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &ExprServer{}

// ExprServer represents the exprlab MCP server
type ExprServer struct {
	mcpServer *server.MCPServer
	config    types.Config
}

// NewExprServer creates a new exprlab MCP server with all tools registered
func NewExprServer(config types.Config) *ExprServer {
	s := &ExprServer{
		mcpServer: server.NewMCPServer(project.Name, project.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		config: config,
	}
	s.registerTools()
	return s
}

// Start serves the MCP tools over stdio until the client disconnects
func (s *ExprServer) Start(ctx context.Context) error {
	slog.Info("Starting exprlab MCP server", "log_file", s.config.LogFile)

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

// MCPServer returns the underlying MCP server
func (s *ExprServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *ExprServer) registerTools() {
	listTool := tools.NewListEvaluatorsTool()
	s.mcpServer.AddTool(listTool.GetTool(), listTool.Handle)

	evaluateTool := tools.NewEvaluateTool(s.config)
	s.mcpServer.AddTool(evaluateTool.GetTool(), evaluateTool.Handle)

	shuffleTool := tools.NewShuffleTool()
	s.mcpServer.AddTool(shuffleTool.GetTool(), shuffleTool.Handle)
}
