// Package uiparse turns an annotated UI tree into typed views of the game
// client's windows. Every extractor is a pure function of the tree it is
// given; a window that is not open is simply absent from the result.
package uiparse

import (
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// UserInterface is everything recognised in one snapshot.
type UserInterface struct {
	UITree                   *uitree.Node
	ContextMenus             []ContextMenu
	ShipUI                   *ShipUI
	Targets                  []Target
	InfoPanelContainer       *InfoPanelContainer
	OverviewWindow           *OverviewWindow
	SelectedItemWindow       *SelectedItemWindow
	DronesWindow             *DronesWindow
	FittingWindow            *FittingWindow
	ProbeScannerWindow       *ProbeScannerWindow
	DirectionalScannerWindow *DirectionalScannerWindow
	StationWindow            *StationWindow
	InventoryWindows         []InventoryWindow
	ChatWindowStacks         []ChatWindowStack
	AgentConversationWindows []AgentConversationWindow
	MarketOrdersWindow       *MarketOrdersWindow
	SurveyScanWindow         *SurveyScanWindow
	BookmarkLocationWindow   *BookmarkLocationWindow
	RepairShopWindow         *RepairShopWindow
	CharacterSheetWindow     *CharacterSheetWindow
	FleetWindow              *FleetWindow
	WatchListPanel           *WatchListPanel
	StandaloneBookmarkWindow *StandaloneBookmarkWindow
	ModuleButtonTooltip      *ModuleButtonTooltip
	Neocom                   *Neocom
	MessageBoxes             []MessageBox
	LayerAbovemain           *uitree.Node
	KeyActivationWindow      *KeyActivationWindow
}

// ParseUserInterface runs every extractor over root.
func ParseUserInterface(root *uitree.Node, cfg Config) *UserInterface {
	return &UserInterface{
		UITree:                   root,
		ContextMenus:             ParseContextMenus(root),
		ShipUI:                   ParseShipUI(root, cfg),
		Targets:                  ParseTargets(root),
		InfoPanelContainer:       ParseInfoPanelContainer(root),
		OverviewWindow:           ParseOverviewWindow(root),
		SelectedItemWindow:       ParseSelectedItemWindow(root),
		DronesWindow:             ParseDronesWindow(root),
		FittingWindow:            ParseFittingWindow(root),
		ProbeScannerWindow:       ParseProbeScannerWindow(root),
		DirectionalScannerWindow: ParseDirectionalScannerWindow(root),
		StationWindow:            ParseStationWindow(root),
		InventoryWindows:         ParseInventoryWindows(root),
		ChatWindowStacks:         ParseChatWindowStacks(root),
		AgentConversationWindows: ParseAgentConversationWindows(root),
		MarketOrdersWindow:       ParseMarketOrdersWindow(root),
		SurveyScanWindow:         ParseSurveyScanWindow(root),
		BookmarkLocationWindow:   ParseBookmarkLocationWindow(root),
		RepairShopWindow:         ParseRepairShopWindow(root),
		CharacterSheetWindow:     ParseCharacterSheetWindow(root),
		FleetWindow:              ParseFleetWindow(root),
		WatchListPanel:           ParseWatchListPanel(root),
		StandaloneBookmarkWindow: ParseStandaloneBookmarkWindow(root),
		ModuleButtonTooltip:      ParseModuleButtonTooltip(root, cfg),
		Neocom:                   ParseNeocom(root),
		MessageBoxes:             ParseMessageBoxes(root),
		LayerAbovemain:           ParseLayerAbovemain(root),
		KeyActivationWindow:      ParseKeyActivationWindow(root),
	}
}

// Parse annotates raw and parses the result.
func Parse(raw *uitree.RawNode, cfg Config) *UserInterface {
	return ParseUserInterface(uitree.Annotate(raw), cfg)
}
