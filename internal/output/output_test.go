package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/eve-ui-reader/internal/testutil"
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

func sampleUI() *uiparse.UserInterface {
	return uiparse.Parse(testutil.Sample(), uiparse.DefaultConfig())
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	t.Cleanup(func() { Stdout = old })
	return &buf
}

func TestSummarize(t *testing.T) {
	r := Summarize(sampleUI(), "sample.json")

	assert.Equal(t, "sample.json", r.Source)
	assert.Equal(t, []string{"ContextMenu", "OverviewWindow", "InventoryWindow", "Neocom", "MessageBox"}, r.Windows)
	assert.Greater(t, r.Nodes, 40)
	assert.Nil(t, r.Ship)
	assert.Nil(t, r.Drones)

	require.Len(t, r.Overview, 2)
	assert.Equal(t, "Venture", r.Overview[0].Name)
	assert.Equal(t, "Mining Frigate", r.Overview[0].Type)
	require.NotNil(t, r.Overview[0].Distance)
	assert.Equal(t, 2500, *r.Overview[0].Distance)
	assert.Nil(t, r.Overview[1].Distance)

	require.Len(t, r.Errors, 1)
	assert.True(t, strings.HasPrefix(r.Errors[0], "overview[1].distance: parse distance \"far\""), r.Errors[0])

	require.Len(t, r.Inventories, 1)
	inv := r.Inventories[0]
	assert.Equal(t, "Venture > Cargo Hold", inv.Caption)
	assert.Equal(t, 2, inv.Items)
	assert.True(t, inv.ListView)
	require.NotNil(t, inv.Capacity)
	assert.Equal(t, 1234, inv.Capacity.Used)

	require.NotNil(t, r.Clock)
	assert.Equal(t, uiparse.ClockTime{Hour: 12, Minute: 34}, *r.Clock)
	assert.Equal(t, [][]string{{"Approach", "Orbit"}}, r.ContextMenus)
	assert.Equal(t, [][]string{{"OK"}}, r.MessageBoxes)
	assert.Empty(t, r.Components)
}

func TestSummarize_EmptyTree(t *testing.T) {
	r := Summarize(uiparse.Parse(testutil.Root(), uiparse.DefaultConfig()), "")
	assert.Equal(t, 1, r.Nodes)
	assert.Equal(t, []string{}, r.Windows)
	assert.Empty(t, r.Errors)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"source", "ship", "overview", "errors", "components"} {
		_, ok := m[key]
		assert.False(t, ok, "%s should be omitted", key)
	}
	assert.Contains(t, m, "windows")
	assert.Contains(t, m, "nodes")
}

func TestComponents(t *testing.T) {
	components := Components(sampleUI())

	paths := make([]string, len(components))
	for i, c := range components {
		assert.Equal(t, i+1, c.ID)
		paths[i] = c.Path
	}
	assert.Equal(t, []string{
		"ContextMenu",
		"ContextMenu > Entry",
		"ContextMenu > Entry",
		"OverviewWindow",
		"OverviewWindow > Entry",
		"OverviewWindow > Entry",
		"InventoryWindow",
		"InventoryWindow > TreeEntry",
		"InventoryWindow > TreeEntry > TreeEntry",
		"InventoryWindow > TreeEntry",
		"InventoryWindow > Item",
		"InventoryWindow > Item",
		"Neocom",
		"Neocom > InventoryIcon",
		"Neocom > Clock",
		"MessageBox",
		"MessageBox > Button",
	}, paths)

	assert.Equal(t, "Approach", components[1].Text)
	assert.Equal(t, uitree.Region{X: 1200, Y: 100, Width: 600, Height: 400}, components[3].Region)
	assert.Equal(t, "Venture", components[4].Text)
	assert.Equal(t, "Cargo Hold", components[8].Text)
	assert.Equal(t, "12:34", components[14].Text)
	assert.NotEmpty(t, components[0].Address)
}

func TestDiffComponents(t *testing.T) {
	prev := []Component{
		{ID: 1, Kind: "OverviewWindow", Path: "OverviewWindow"},
		{ID: 2, Kind: "Entry", Path: "OverviewWindow > Entry", Text: "Venture"},
		{ID: 3, Kind: "Entry", Path: "OverviewWindow > Entry", Text: "Jita IV"},
		{ID: 4, Kind: "MessageBox", Path: "MessageBox"},
	}
	curr := []Component{
		{ID: 1, Kind: "OverviewWindow", Path: "OverviewWindow", Region: uitree.Region{X: 10}},
		{ID: 2, Kind: "Entry", Path: "OverviewWindow > Entry", Text: "Venture"},
		{ID: 3, Kind: "Entry", Path: "OverviewWindow > Entry", Text: "Amarr"},
		{ID: 4, Kind: "Entry", Path: "OverviewWindow > Entry", Text: "Dodixie"},
	}

	changes := DiffComponents(prev, curr)
	require.Len(t, changes, 4)

	assert.Equal(t, ChangeChanged, changes[0].Type)
	assert.Contains(t, changes[0].Changes, "b")

	assert.Equal(t, ChangeChanged, changes[1].Type)
	assert.Equal(t, [2]string{"Jita IV", "Amarr"}, changes[1].Changes["t"])

	assert.Equal(t, ChangeAdded, changes[2].Type)
	require.NotNil(t, changes[2].Component)
	assert.Equal(t, "Dodixie", changes[2].Component.Text)

	assert.Equal(t, ChangeRemoved, changes[3].Type)
	assert.Equal(t, "MessageBox", changes[3].Path)

	assert.Empty(t, DiffComponents(curr, curr))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"yaml", FormatYAML},
		{"YML", FormatYAML},
		{" json ", FormatJSON},
		{"msgpack", FormatMsgpack},
		{"text", FormatText},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPrint_JSON(t *testing.T) {
	buf := captureStdout(t)
	OutputFormat, PrettyOutput = FormatJSON, false
	t.Cleanup(func() { OutputFormat, PrettyOutput = FormatYAML, false })

	require.NoError(t, Print(Summarize(sampleUI(), "a.json")))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "compact output should be a single line")
	assert.Contains(t, out, `"source":"a.json"`)

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "a.json", decoded.Source)
	assert.Len(t, decoded.Overview, 2)
	assert.False(t, decoded.Overview[0].Targeting)

	buf.Reset()
	PrettyOutput = true
	require.NoError(t, Print(Summarize(sampleUI(), "a.json")))
	assert.Greater(t, strings.Count(buf.String(), "\n"), 1)
}

func TestPrint_YAML(t *testing.T) {
	buf := captureStdout(t)
	require.NoError(t, Print(Summarize(sampleUI(), "b.json")))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "b.json", decoded.Source)
	require.Len(t, decoded.Inventories, 1)
	assert.Equal(t, 2, decoded.Inventories[0].Items)
	assert.Contains(t, buf.String(), "targeting: false", "indications are inlined")
}

func TestWrite_Msgpack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMsgpack, Summarize(sampleUI(), "c.json")))

	var decoded map[string]any
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "c.json", decoded["source"])
	assert.Contains(t, decoded, "overview")
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, Reports{Summarize(sampleUI(), "d.json")}))
	out := buf.String()
	assert.Contains(t, out, "d.json:")
	assert.Contains(t, out, "windows: ContextMenu, OverviewWindow")
	assert.Contains(t, out, "2,500 m")
	assert.Contains(t, out, "2 items, 1,234/5,000 m³")
	assert.Contains(t, out, "clock: 12:34")
	assert.Contains(t, out, "error: overview[1].distance")

	buf.Reset()
	require.NoError(t, Write(&buf, FormatText, map[string]int{"a": 1}))
	assert.Equal(t, "a: 1\n", buf.String(), "values without a text form fall back to YAML")

	buf.Reset()
	require.NoError(t, Write(&buf, FormatText, Changes{}))
	assert.Equal(t, "no changes\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), 1)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, "250 m", Distance(250))
	assert.Equal(t, "9,999 m", Distance(9999))
	assert.Equal(t, "15 km", Distance(15000))
	assert.Equal(t, "1,234.5 km", Distance(1234500))
}

func TestIsOutputPiped_Buffer(t *testing.T) {
	captureStdout(t)
	assert.True(t, IsOutputPiped())
}
