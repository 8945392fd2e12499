package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// Label builds a medium label with a _text property.
func Label(x, y, w, h int, text string) *uitree.RawNode {
	return Node("EveLabelMedium", x, y, w, h, Text(text))
}

// Sample builds a snapshot with a context menu, an overview with one good
// and one unreadable distance, an inventory window, the neocom clock and a
// message box.
func Sample() *uitree.RawNode {
	return Root(
		Node("LayerCore", 0, 0, 1920, 1080, Name("l_menu"), Children(
			Node("ContextMenu", 300, 300, 200, 60, Children(
				Node("MenuEntryView", 0, 20, 200, 20, Children(Label(5, 2, 100, 16, "Approach"))),
				Node("MenuEntryView", 0, 40, 200, 20, Children(Label(5, 2, 100, 16, "Orbit"))),
			)),
		)),
		Node("OverView", 1200, 100, 600, 400, Children(
			Node("BasicDynamicScroll", 0, 0, 600, 400, Children(
				Node("SortHeaders", 0, 0, 600, 20, Children(
					Label(0, 0, 100, 20, "Distance"),
					Label(100, 0, 200, 20, "Name"),
					Label(300, 0, 200, 20, "Type"),
				)),
				Node("OverviewScrollEntry", 0, 20, 600, 20, Children(
					Label(10, 0, 50, 20, "2,500 m"),
					Label(110, 0, 80, 20, "Venture"),
					Label(310, 0, 80, 20, "Mining Frigate"),
				)),
				Node("OverviewScrollEntry", 0, 40, 600, 20, Children(
					Label(10, 0, 50, 20, "far"),
					Label(110, 0, 80, 20, "Jita IV - Moon 4"),
					Label(310, 0, 80, 20, "Station"),
				)),
			)),
		)),
		Node("InventoryPrimary", 100, 200, 800, 600, Children(
			Node("InvContCapacityGauge", 400, 0, 300, 20, Children(
				Label(0, 0, 300, 20, "(12.5) 1,234.5/5,000.0 m³"),
			)),
			inventoryTreeEntry(30, "Venture", inventoryTreeEntry(20, "Cargo Hold")),
			inventoryTreeEntry(150, "Item Hangar"),
			Node("Container", 200, 30, 600, 570, Name("rightCont"), Children(
				Node("EveLabelMedium", 0, 0, 200, 20, Name("subCaptionLabel"), Text("Venture > Cargo Hold")),
				Node("ButtonIcon", 500, 0, 16, 16, Texture("res:/ui/texture/icons/38_16_190.png")),
				Node("ShipCargo", 0, 40, 600, 500, Children(
					Node("Item", 0, 0, 600, 20, Children(Label(0, 0, 200, 20, "Veldspar"))),
					Node("Item", 0, 20, 600, 20, Children(Label(0, 0, 200, 20, "Scordite"))),
				)),
			)),
		)),
		Node("Neocom", 0, 0, 40, 1080, Children(
			Node("ButtonInventory", 0, 100, 40, 40, Texture("res:/ui/Texture/WindowIcons/items.png")),
			Node("InGameClock", 0, 1000, 40, 20, Children(Label(0, 0, 40, 20, "12:34"))),
		)),
		Node("MessageBox", 800, 400, 300, 150, Children(
			Label(10, 10, 280, 60, "Are you sure you want to quit the game?"),
			Node("Button", 100, 100, 80, 30, Children(Label(0, 0, 80, 30, "OK"))),
		)),
	)
}

func inventoryTreeEntry(y int, text string, children ...*uitree.RawNode) *uitree.RawNode {
	all := append([]*uitree.RawNode{
		Node("Container", 0, 0, 200, 20, Name("topCont_"+text), Children(
			Node("Sprite", 0, 0, 10, 10, Name("toggleBtn")),
			Label(20, 0, 150, 20, text),
		)),
	}, children...)
	return Node("TreeViewEntryInventory", 0, y, 200, 100, Children(all...))
}

// SampleJSON is Sample in the memory reader's JSON format.
func SampleJSON(tb testing.TB) []byte {
	tb.Helper()
	var buf bytes.Buffer
	if err := uitree.EncodeSnapshot(&buf, Sample()); err != nil {
		tb.Fatalf("encode sample: %v", err)
	}
	return buf.Bytes()
}

// WriteSample writes SampleJSON to dir/name and returns the path.
func WriteSample(tb testing.TB, dir, name string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, SampleJSON(tb), 0o644); err != nil {
		tb.Fatalf("write sample: %v", err)
	}
	return path
}
