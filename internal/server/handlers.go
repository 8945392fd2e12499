package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/search"
	"github.com/mj1618/eve-ui-reader/internal/snapshot"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

var errNoSnapshot = errors.New("either path or snapshot is required")

func (s *Server) tools() []mcpserver.ServerTool {
	source := []mcp.ToolOption{
		mcp.WithString("path", mcp.Description("Path of a snapshot JSON file written by the memory reader")),
		mcp.WithString("snapshot", mcp.Description("Snapshot JSON text, used when path is empty")),
		mcp.WithString("format", mcp.Description("Result format: yaml (default), json or text")),
	}
	with := func(opts ...mcp.ToolOption) []mcp.ToolOption {
		return append(append([]mcp.ToolOption{}, source...), opts...)
	}

	return []mcpserver.ServerTool{
		{
			Tool: mcp.NewTool("parse_snapshot", with(
				mcp.WithDescription("Parse an EVE Online UI tree snapshot and summarise the ship, targets, overview, drones, inventories and open windows. Text that could not be read is listed under errors."),
				mcp.WithBoolean("components", mcp.Description("Also list every recognised component with its region")),
			)...),
			Handler: s.handleParse,
		},
		{
			Tool: mcp.NewTool("find_text", with(
				mcp.WithDescription("Find nodes in a snapshot by their display text. Each match carries its region and the component that holds it."),
				mcp.WithString("text", mcp.Description("Text to look for; case and markup are ignored"), mcp.Required()),
				mcp.WithBoolean("exact", mcp.Description("Require the whole text to match")),
				mcp.WithBoolean("fuzzy", mcp.Description("Also accept similar texts")),
				mcp.WithNumber("threshold", mcp.Description("Lowest similarity for fuzzy matches, 0 to 1")),
				mcp.WithString("types", mcp.Description("Comma separated node type names to search")),
				mcp.WithNumber("limit", mcp.Description("Max matches (0 = unlimited)")),
			)...),
			Handler: s.handleFind,
		},
		{
			Tool: mcp.NewTool("list_components", with(
				mcp.WithDescription("List recognised components with IDs, kinds, regions and paths"),
				mcp.WithString("kind", mcp.Description("Only list components of this kind, e.g. ModuleButton")),
			)...),
			Handler: s.handleComponents,
		},
	}
}

// load parses the snapshot named by the path or snapshot argument.
func (s *Server) load(params map[string]any) (*uiparse.UserInterface, string, error) {
	if path := stringParam(params, "path", ""); path != "" {
		ui, err := snapshot.Load(path, s.cfg.Parse)
		return ui, path, err
	}
	if text := stringParam(params, "snapshot", ""); text != "" {
		raw, err := uitree.DecodeSnapshot(strings.NewReader(text))
		if err != nil {
			return nil, "", err
		}
		return uiparse.Parse(raw, s.cfg.Parse), "", nil
	}
	return nil, "", errNoSnapshot
}

// resultText serializes v in the format argument for an MCP response.
func resultText(params map[string]any, v any) (*mcp.CallToolResult, error) {
	format, err := output.ParseFormat(stringParam(params, "format", "yaml"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if format == output.FormatMsgpack {
		return mcp.NewToolResultError("msgpack is not available over MCP"), nil
	}
	var buf bytes.Buffer
	if err := output.Write(&buf, format, v); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleParse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ui, source, err := s.load(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	report := output.Summarize(ui, source)
	if boolParam(params, "components", false) {
		report = report.WithComponents(ui)
	}
	log.Debug("parse_snapshot", "source", source, "errors", len(report.Errors))
	return resultText(params, report)
}

func (s *Server) handleFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ui, _, err := s.load(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	matches, err := search.Find(ui, search.Options{
		Text:      stringParam(params, "text", ""),
		Exact:     boolParam(params, "exact", false),
		Fuzzy:     boolParam(params, "fuzzy", false),
		Threshold: floatParam(params, "threshold", 0),
		Types:     listParam(params, "types"),
		Limit:     intParam(params, "limit", 0),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultText(params, matches)
}

func (s *Server) handleComponents(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ui, _, err := s.load(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	components := output.Components(ui)
	if kind := stringParam(params, "kind", ""); kind != "" {
		filtered := []output.Component{}
		for _, c := range components {
			if strings.EqualFold(c.Kind, kind) {
				filtered = append(filtered, c)
			}
		}
		components = filtered
	}
	return resultText(params, components)
}

// Parameter extraction helpers for tool arguments

func stringParam(params map[string]any, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]any, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func floatParam(params map[string]any, key string, defaultVal float64) float64 {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]any, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// listParam reads a comma separated string or an array of strings.
func listParam(params map[string]any, key string) []string {
	var items []string
	switch v := params[key].(type) {
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
	case []any:
		for _, s := range v {
			if str, ok := s.(string); ok && str != "" {
				items = append(items, str)
			}
		}
	}
	return items
}
