package uiparse

import (
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

type InventoryWindow struct {
	Node                           *uitree.Node
	LeftTreeEntries                []InventoryWindowLeftTreeEntry
	SubCaptionLabelText            *string
	SelectedContainerCapacityGauge *Parsed[CapacityGauge]
	SelectedContainerInventory     *Inventory
	ButtonToSwitchToListView       *uitree.Node
}

// InventoryWindowLeftTreeEntry is one location in the tree on the left of
// the inventory window.
type InventoryWindowLeftTreeEntry struct {
	Node         *uitree.Node
	ToggleButton *uitree.Node
	SelectRegion *uitree.Node
	Text         string
	Children     []InventoryWindowLeftTreeEntry
}

type Inventory struct {
	Node           *uitree.Node
	ItemsView      *InventoryItemsView
	ScrollControls *ScrollControls
}

// InventoryItemsView is the items of the selected container and whether the
// window shows them as a list or as icons.
type InventoryItemsView struct {
	ListView bool
	Items    []*uitree.Node
}

var inventoryWindowTypes = []string{"InventoryPrimary", "ActiveShipCargo"}

var selectedInventoryTypes = []string{
	"ShipCargo",
	"ShipDroneBay",
	"ShipGeneralMiningHold",
	"StationItems",
	"ShipFleetHangar",
	"StructureItemHangar",
}

func ParseInventoryWindows(root *uitree.Node) []InventoryWindow {
	var windows []InventoryWindow
	for _, n := range root.Find(uitree.OfAnyType(inventoryWindowTypes...)) {
		windows = append(windows, parseInventoryWindow(n))
	}
	return windows
}

func parseInventoryWindow(window *uitree.Node) InventoryWindow {
	w := InventoryWindow{Node: window}

	if gauge, ok := window.First(uitree.TypeContains("CapacityGauge")); ok {
		var texts []string
		for _, d := range gauge.Raw.Descendants() {
			if t, ok := uitree.DisplayText(d); ok {
				texts = append(texts, t)
			}
		}
		if text, ok := longestText(texts); ok {
			p := parsed[CapacityGauge](ParseCapacityGaugeText(text))
			w.SelectedContainerCapacityGauge = &p
		}
	}

	for _, n := range treeViewEntryRoots(window) {
		w.LeftTreeEntries = append(w.LeftTreeEntries, parseInventoryWindowTreeViewEntry(n))
	}

	right, ok := window.First(func(n *uitree.Node) bool {
		name, _ := uitree.Name(n.Raw)
		return n.TypeName() == "Container" && strings.Contains(name, "right")
	})
	if !ok {
		return w
	}
	var captionTexts []string
	for _, label := range right.Find(uitree.NameHasPrefix("subCaptionLabel")) {
		captionTexts = append(captionTexts, uitree.AllDisplayTexts(label.Raw)...)
	}
	if len(captionTexts) > 0 {
		w.SubCaptionLabelText = &captionTexts[0]
	}
	if n, ok := right.First(uitree.OfAnyType(selectedInventoryTypes...)); ok {
		w.SelectedContainerInventory = parseInventory(n)
	}
	w.ButtonToSwitchToListView = findFirst(right, uitree.All(uitree.TypeContains("ButtonIcon"), uitree.TexturePathEndsWith("38_16_190.png")))
	return w
}

func parseInventory(n *uitree.Node) *Inventory {
	inv := &Inventory{Node: n, ScrollControls: scrollControlsIn(n)}
	if items := n.Find(uitree.OfType("Item")); len(items) > 0 {
		inv.ItemsView = &InventoryItemsView{ListView: true, Items: items}
	} else if items := n.Find(uitree.TypeContains("InvItem")); len(items) > 0 {
		inv.ItemsView = &InventoryItemsView{ListView: false, Items: items}
	}
	return inv
}

// treeViewEntryRoots returns the tree entries below parent that are not
// nested inside another tree entry below parent.
func treeViewEntryRoots(parent *uitree.Node) []*uitree.Node {
	all := parent.Find(uitree.TypeHasPrefix("TreeViewEntry"))
	var roots []*uitree.Node
	for _, candidate := range all {
		nested := false
		for _, other := range all {
			if other != candidate && other.Contains(candidate) {
				nested = true
				break
			}
		}
		if !nested {
			roots = append(roots, candidate)
		}
	}
	return roots
}

func parseInventoryWindowTreeViewEntry(n *uitree.Node) InventoryWindowLeftTreeEntry {
	e := InventoryWindowLeftTreeEntry{Node: n}
	if top, ok := firstSortedBy(n.Find(uitree.NameHasPrefix("topCont_")), uitree.ByTotalY); ok {
		e.SelectRegion = top
		e.ToggleButton = findFirst(top, uitree.Named("toggleBtn"))
		if texts := textsSortedBy(top, textByTotalY); len(texts) > 0 {
			e.Text = texts[0]
		}
	}
	for _, child := range treeViewEntryRoots(n) {
		e.Children = append(e.Children, parseInventoryWindowTreeViewEntry(child))
	}
	return e
}
