package uitree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/eve-ui-reader/internal/testutil"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

func TestRegion_Area(t *testing.T) {
	tests := []struct {
		name   string
		region uitree.Region
		want   int
		ok     bool
	}{
		{"positive", uitree.Region{Width: 4, Height: 5}, 20, true},
		{"zero width", uitree.Region{Width: 0, Height: 5}, 0, true},
		{"negative width", uitree.Region{Width: -1, Height: 5}, 0, false},
		{"negative height", uitree.Region{Width: 4, Height: -5}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.region.Area()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegion_CenterAndCorners(t *testing.T) {
	r := uitree.Region{X: 10, Y: 20, Width: 31, Height: 11}
	assert.Equal(t, uitree.Point{X: 25, Y: 25}, r.Center())
	assert.Equal(t, 25, r.VerticalCenter())
	assert.Equal(t, uitree.Point{X: 41, Y: 20}, r.UpperRight())
	assert.Equal(t, [4]int{10, 20, 31, 11}, r.Bounds())
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		name string
		opts []testutil.Option
		want string
		ok   bool
	}{
		{"none", nil, "", false},
		{"text only", []testutil.Option{testutil.Text("abc")}, "abc", true},
		{"set text only", []testutil.Option{testutil.SetText("abc")}, "abc", true},
		{"longer text wins", []testutil.Option{testutil.SetText("ab"), testutil.Text("abc")}, "abc", true},
		{"longer set text wins", []testutil.Option{testutil.SetText("abcd"), testutil.Text("abc")}, "abcd", true},
		{"tie goes to set text", []testutil.Option{testutil.SetText("xyz"), testutil.Text("abc")}, "xyz", true},
		{"wrong shape ignored", []testutil.Option{testutil.Prop("_text", uitree.Int(3))}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := uitree.DisplayText(testutil.NoRegion("Label", tt.opts...))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllDisplayTexts_IncludesNodesWithoutRegion(t *testing.T) {
	raw := testutil.Node("Window", 0, 0, 10, 10, testutil.Text("title"),
		testutil.Children(
			testutil.NoRegion("Label", testutil.Text("hidden")),
			testutil.Node("Label", 0, 0, 1, 1, testutil.Text("shown")),
		),
	)
	assert.Equal(t, []string{"title", "hidden", "shown"}, uitree.AllDisplayTexts(raw))

	root := testutil.Annotated(raw)
	window, ok := root.First(uitree.OfType("Window"))
	require.True(t, ok)
	var texts []string
	for _, tw := range uitree.AllDisplayTextsWithRegion(window) {
		texts = append(texts, tw.Text)
	}
	assert.Equal(t, []string{"title", "shown"}, texts)
}

func TestAllDisplayTextsWithRegion_SkipsEmptyTexts(t *testing.T) {
	root := testutil.Annotated(
		testutil.Node("Label", 0, 0, 1, 1, testutil.Text("")),
		testutil.Node("Label", 0, 0, 1, 1, testutil.Text("x")),
	)
	texts := uitree.AllDisplayTextsWithRegion(root)
	require.Len(t, texts, 1)
	assert.Equal(t, "x", texts[0].Text)
}

func TestColorPercentOf(t *testing.T) {
	c, ok := uitree.ColorPercentOf(testutil.NoRegion("Sprite", testutil.Color(50, 10, 20, 30)))
	require.True(t, ok)
	assert.Equal(t, uitree.ColorPercent{A: 50, R: 10, G: 20, B: 30}, c)

	partial := testutil.NoRegion("Sprite", testutil.Prop("_color", uitree.Object(map[string]uitree.Value{
		"aPercent": uitree.Int(50),
		"rPercent": uitree.Int(10),
		"gPercent": uitree.String("green"),
		"bPercent": uitree.Int(30),
	})))
	_, ok = uitree.ColorPercentOf(partial)
	assert.False(t, ok)

	_, ok = uitree.ColorPercentOf(testutil.NoRegion("Sprite"))
	assert.False(t, ok)
}

func TestScalarProps(t *testing.T) {
	n := testutil.NoRegion("Gauge",
		testutil.Name("shieldGauge"),
		testutil.Hint("Shield"),
		testutil.Texture("res:/ui/icon.png"),
		testutil.Rotation(1.25),
		testutil.Prop("_lastValue", uitree.Int(1)),
		testutil.BoolProp("ramp_active", true),
		testutil.Prop("_displayX", uitree.Float(12.5)),
		testutil.Prop("_width", uitree.Int(40)),
		testutil.Prop("_displayY", uitree.Float(-0.5)),
	)
	name, _ := uitree.Name(n)
	hint, _ := uitree.Hint(n)
	path, _ := uitree.TexturePath(n)
	rotation, _ := uitree.Rotation(n)
	last, ok := uitree.LastValue(n)
	require.True(t, ok)
	active, ok := uitree.BoolProp(n, "ramp_active")
	require.True(t, ok)

	assert.Equal(t, "shieldGauge", name)
	assert.Equal(t, "Shield", hint)
	assert.Equal(t, "res:/ui/icon.png", path)
	assert.InDelta(t, 1.25, rotation, 1e-9)
	assert.InDelta(t, 1.0, last, 1e-9)
	assert.True(t, active)

	ow, ok := uitree.HorizontalOffsetAndWidth(n)
	require.True(t, ok)
	assert.Equal(t, uitree.OffsetWidth{Offset: 13, Width: 40}, ow)
	y, ok := uitree.VerticalOffset(n)
	require.True(t, ok)
	assert.Equal(t, 0, y)

	_, ok = uitree.BoolProp(n, "_name")
	assert.False(t, ok)
}

func TestMostPopulousDescendant(t *testing.T) {
	raw := testutil.Root(
		testutil.Node("Panel", 0, 0, 1, 1, testutil.Name("small")),
		testutil.Node("Panel", 0, 0, 1, 1, testutil.Name("big"),
			testutil.Children(testutil.NoRegion("X"), testutil.NoRegion("Y")),
		),
		testutil.Node("Panel", 0, 0, 1, 1, testutil.Name("tie"),
			testutil.Children(testutil.NoRegion("X"), testutil.NoRegion("Y")),
		),
	)
	best, ok := raw.MostPopulousDescendant(func(n *uitree.RawNode) bool { return n.TypeName == "Panel" })
	require.True(t, ok)
	name, _ := uitree.Name(best)
	assert.Equal(t, "big", name)

	_, ok = raw.MostPopulousDescendant(func(n *uitree.RawNode) bool { return false })
	assert.False(t, ok)
}
