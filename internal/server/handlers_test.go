package server

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/search"
	"github.com/mj1618/eve-ui-reader/internal/testutil"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

func newTestServer() *Server {
	return New(Config{Parse: uiparse.DefaultConfig()})
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text, res.IsError
}

func TestTools(t *testing.T) {
	var names []string
	for _, tool := range newTestServer().tools() {
		names = append(names, tool.Tool.Name)
		assert.NotEmpty(t, tool.Tool.Description)
		assert.NotNil(t, tool.Handler)
	}
	assert.Equal(t, []string{"parse_snapshot", "find_text", "list_components"}, names)
}

func TestHandleParse_Path(t *testing.T) {
	s := newTestServer()
	path := testutil.WriteSample(t, t.TempDir(), "sample.json")

	text, isErr := call(t, s.handleParse, map[string]any{"path": path})
	require.False(t, isErr, text)

	var report output.Report
	require.NoError(t, yaml.Unmarshal([]byte(text), &report))
	assert.Equal(t, path, report.Source)
	assert.Equal(t, 52, report.Nodes)
	assert.Contains(t, report.Windows, "OverviewWindow")
	assert.Len(t, report.Overview, 2)
	assert.Len(t, report.Errors, 1)
	assert.Empty(t, report.Components)
}

func TestHandleParse_SnapshotTextWithComponents(t *testing.T) {
	s := newTestServer()
	text, isErr := call(t, s.handleParse, map[string]any{
		"snapshot":   string(testutil.SampleJSON(t)),
		"components": true,
		"format":     "json",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, `"p":"OverviewWindow > Entry"`)
}

func TestHandleParse_Errors(t *testing.T) {
	s := newTestServer()

	text, isErr := call(t, s.handleParse, map[string]any{})
	assert.True(t, isErr)
	assert.Equal(t, errNoSnapshot.Error(), text)

	text, isErr = call(t, s.handleParse, map[string]any{"snapshot": "{"})
	assert.True(t, isErr)
	assert.Contains(t, text, "decode snapshot")

	_, isErr = call(t, s.handleParse, map[string]any{"snapshot": string(testutil.SampleJSON(t)), "format": "msgpack"})
	assert.True(t, isErr)

	text, isErr = call(t, s.handleParse, map[string]any{"snapshot": string(testutil.SampleJSON(t)), "format": "xml"})
	assert.True(t, isErr)
	assert.Contains(t, text, "unknown output format")
}

func TestHandleFind(t *testing.T) {
	s := newTestServer()
	text, isErr := call(t, s.handleFind, map[string]any{
		"snapshot": string(testutil.SampleJSON(t)),
		"text":     "venture",
		"exact":    true,
		"limit":    float64(1),
	})
	require.False(t, isErr, text)

	var matches search.Matches
	require.NoError(t, yaml.Unmarshal([]byte(text), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "Venture", matches[0].Text)
	assert.Equal(t, "OverviewWindow > Entry", matches[0].Component)

	text, isErr = call(t, s.handleFind, map[string]any{"snapshot": string(testutil.SampleJSON(t))})
	assert.True(t, isErr)
	assert.Equal(t, search.ErrEmptyQuery.Error(), text)
}

func TestHandleComponents_Kind(t *testing.T) {
	s := newTestServer()
	text, isErr := call(t, s.handleComponents, map[string]any{
		"snapshot": string(testutil.SampleJSON(t)),
		"kind":     "item",
		"format":   "text",
	})
	require.False(t, isErr, text)

	var components []output.Component
	require.NoError(t, yaml.Unmarshal([]byte(text), &components))
	require.Len(t, components, 2)
	assert.Equal(t, "InventoryWindow > Item", components[0].Path)
}

func TestListParam(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, listParam(map[string]any{"k": " a, ,b"}, "k"))
	assert.Equal(t, []string{"a"}, listParam(map[string]any{"k": []any{"a", 1, ""}}, "k"))
	assert.Nil(t, listParam(map[string]any{}, "k"))
}
