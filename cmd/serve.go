package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/api"
	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/server"
	"github.com/mj1618/eve-ui-reader/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve snapshot parsing to agents and other programs",
	Long: `Start a server that parses snapshots on request.

Supported transports:
  stdio             MCP over standard I/O (default, for MCP clients)
  streamable-http   MCP over streamable HTTP (for remote agents)
  http              JSON API: POST /api/parse, /api/components, /api/find

Examples:
  eve-ui-reader serve
  eve-ui-reader serve --transport streamable-http --port 8080
  eve-ui-reader serve --transport http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http, http")
	serveCmd.Flags().Int("port", 8080, "Port for the HTTP transports")
	serveCmd.Flags().String("body-limit", api.DefaultBodyLimit, "Largest accepted request body for --transport http")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	bodyLimit, _ := cmd.Flags().GetString("body-limit")

	if transport != "http" {
		srv := server.New(server.Config{Transport: transport, Port: port, Version: version.Version, Parse: parseConfig})
		if err := srv.Serve(); err != nil {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	}

	e := api.NewServer(&api.Dependencies{Parse: parseConfig, Version: version.Version, BodyLimit: bodyLimit})
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("http api", "addr", addr)
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
