// ABOUTME: MCP server setup for the BMI calculator.
// ABOUTME: Registers calculator tools and guide resources on a stdio server.
package mcp

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server. Handlers are stateless calls into the core.
type Server struct {
	mcpServer *mcp.Server
	logger    *log.Logger
}

// NewServer creates a new MCP server. A nil logger discards debug output.
func NewServer(logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "bmi",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		logger:    logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("mcp server starting", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
