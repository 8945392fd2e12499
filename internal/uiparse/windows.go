package uiparse

import (
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

type SelectedItemWindow struct {
	Node        *uitree.Node
	OrbitButton *uitree.Node
}

type FittingWindow struct{ Node *uitree.Node }

type MarketOrdersWindow struct{ Node *uitree.Node }

type AgentConversationWindow struct{ Node *uitree.Node }

type SurveyScanWindow struct {
	Node        *uitree.Node
	ScanEntries []*uitree.Node
}

type BookmarkLocationWindow struct {
	Node         *uitree.Node
	SubmitButton *uitree.Node
	CancelButton *uitree.Node
}

type RepairShopWindow struct {
	Node              *uitree.Node
	Items             []*uitree.Node
	RepairItemButton  *uitree.Node
	PickNewItemButton *uitree.Node
	RepairAllButton   *uitree.Node
}

type CharacterSheetWindow struct {
	Node        *uitree.Node
	SkillGroups []*uitree.Node
}

type FleetWindow struct {
	Node         *uitree.Node
	FleetMembers []*uitree.Node
}

type WatchListPanel struct {
	Node    *uitree.Node
	Entries []*uitree.Node
}

type StandaloneBookmarkWindow struct {
	Node    *uitree.Node
	Entries []*uitree.Node
}

type KeyActivationWindow struct {
	Node           *uitree.Node
	ActivateButton *uitree.Node
}

type MessageBox struct {
	Node    *uitree.Node
	Buttons []MessageBoxButton
}

type MessageBoxButton struct {
	Node     *uitree.Node
	Maintext *string
}

func ParseSelectedItemWindow(root *uitree.Node) *SelectedItemWindow {
	window, ok := root.First(uitree.OfType("ActiveItem"))
	if !ok {
		return nil
	}
	return &SelectedItemWindow{
		Node: window,
		OrbitButton: findFirst(window, func(n *uitree.Node) bool {
			path, ok := uitree.TexturePath(n.Raw)
			return ok && strings.HasSuffix(strings.ToLower(path), "44_32_21.png")
		}),
	}
}

func ParseFittingWindow(root *uitree.Node) *FittingWindow {
	if n, ok := root.First(uitree.OfType("FittingWindow")); ok {
		return &FittingWindow{Node: n}
	}
	return nil
}

func ParseMarketOrdersWindow(root *uitree.Node) *MarketOrdersWindow {
	if n, ok := root.First(uitree.OfType("MarketOrdersWnd")); ok {
		return &MarketOrdersWindow{Node: n}
	}
	return nil
}

func ParseAgentConversationWindows(root *uitree.Node) []AgentConversationWindow {
	var windows []AgentConversationWindow
	for _, n := range root.Find(uitree.OfType("AgentDialogueWindow")) {
		windows = append(windows, AgentConversationWindow{Node: n})
	}
	return windows
}

func ParseSurveyScanWindow(root *uitree.Node) *SurveyScanWindow {
	n, ok := root.First(uitree.OfType("SurveyScanView"))
	if !ok {
		return nil
	}
	return &SurveyScanWindow{Node: n, ScanEntries: n.Find(uitree.OfType("SurveyScanEntry"))}
}

func ParseBookmarkLocationWindow(root *uitree.Node) *BookmarkLocationWindow {
	n, ok := root.First(uitree.OfType("BookmarkLocationWindow"))
	if !ok {
		return nil
	}
	return &BookmarkLocationWindow{
		Node:         n,
		SubmitButton: buttonWithLabel(n, "submit"),
		CancelButton: buttonWithLabel(n, "cancel"),
	}
}

func ParseRepairShopWindow(root *uitree.Node) *RepairShopWindow {
	n, ok := root.First(uitree.OfType("RepairShopWindow"))
	if !ok {
		return nil
	}
	return &RepairShopWindow{
		Node:              n,
		Items:             n.Find(uitree.OfType("Item")),
		RepairItemButton:  buttonWithLabel(n, "repair item"),
		PickNewItemButton: buttonWithLabel(n, "pick new item"),
		RepairAllButton:   buttonWithLabel(n, "repair all"),
	}
}

func ParseCharacterSheetWindow(root *uitree.Node) *CharacterSheetWindow {
	n, ok := root.First(uitree.OfType("CharacterSheetWindow"))
	if !ok {
		return nil
	}
	return &CharacterSheetWindow{Node: n, SkillGroups: n.Find(uitree.TypeContains("SkillGroupGauge"))}
}

func ParseFleetWindow(root *uitree.Node) *FleetWindow {
	n, ok := root.First(uitree.OfType("FleetWindow"))
	if !ok {
		return nil
	}
	return &FleetWindow{Node: n, FleetMembers: n.Find(uitree.OfType("FleetMember"))}
}

func ParseWatchListPanel(root *uitree.Node) *WatchListPanel {
	n, ok := root.First(uitree.OfType("WatchListPanel"))
	if !ok {
		return nil
	}
	return &WatchListPanel{Node: n, Entries: n.Find(uitree.OfType("WatchListEntry"))}
}

func ParseStandaloneBookmarkWindow(root *uitree.Node) *StandaloneBookmarkWindow {
	n, ok := root.First(uitree.OfType("StandaloneBookmarkWnd"))
	if !ok {
		return nil
	}
	return &StandaloneBookmarkWindow{Node: n, Entries: n.Find(uitree.OfType("PlaceEntry"))}
}

func ParseKeyActivationWindow(root *uitree.Node) *KeyActivationWindow {
	n, ok := root.First(uitree.OfType("KeyActivationWindow"))
	if !ok {
		return nil
	}
	return &KeyActivationWindow{Node: n, ActivateButton: findFirst(n, uitree.OfType("ActivateButton"))}
}

func ParseMessageBoxes(root *uitree.Node) []MessageBox {
	var boxes []MessageBox
	for _, n := range root.Find(uitree.OfType("MessageBox")) {
		box := MessageBox{Node: n}
		for _, b := range n.Find(uitree.OfType("Button")) {
			box.Buttons = append(box.Buttons, MessageBoxButton{Node: b, Maintext: optString(smallestText(b))})
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// ParseLayerAbovemain finds the layer drawn above the main UI, which hosts
// modal overlays.
func ParseLayerAbovemain(root *uitree.Node) *uitree.Node {
	return findFirst(root, uitree.Named("l_abovemain"))
}
