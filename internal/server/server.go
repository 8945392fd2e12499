// Package server exposes snapshot parsing as Model Context Protocol tools.
package server

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	Version   string
	Parse     uiparse.Config
}

// Server wraps the MCP server with the parse configuration its tools use.
type Server struct {
	cfg Config
	mcp *mcpserver.MCPServer
}

// New creates an MCP server with the parse_snapshot, find_text and
// list_components tools registered.
func New(cfg Config) *Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		cfg: cfg,
		mcp: mcpserver.NewMCPServer("eve-ui-reader", version, mcpserver.WithToolCapabilities(false)),
	}
	s.mcp.AddTools(s.tools()...)
	return s
}

// Serve runs the server on the configured transport until it stops.
func (s *Server) Serve() error {
	cfg := s.cfg
	switch cfg.Transport {
	case "", "stdio":
		log.Info("mcp server", "transport", "stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info("mcp server", "transport", cfg.Transport, "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}
