package output

import (
	"github.com/mj1618/eve-ui-reader/internal/uiparse"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// Component is a recognised part of the interface with a path breadcrumb
// showing where it sits among the other components.
type Component struct {
	ID     int           `yaml:"i"           json:"i"`
	Kind   string        `yaml:"k"           json:"k"`
	Text   string        `yaml:"t,omitempty" json:"t,omitempty"`
	Region uitree.Region `yaml:"b"           json:"b"`
	Path   string        `yaml:"p"           json:"p"`
	// Address is the client's object address of the node.
	Address string `yaml:"a,omitempty" json:"a,omitempty"`
}

// Components flattens ui into a list of its recognised components in the
// order the aggregator lists them. Each component gets a path of component
// kinds joined with " > ".
func Components(ui *uiparse.UserInterface) []Component {
	f := &flattener{}

	for _, m := range ui.ContextMenus {
		p := f.add("", "ContextMenu", m.Node, "")
		for _, e := range m.Entries {
			f.add(p, "Entry", e.Node, e.Text)
		}
	}
	if ship := ui.ShipUI; ship != nil {
		p := f.add("", "ShipUI", ship.Node, "")
		f.add(p, "Capacitor", ship.Capacitor.Node, "")
		if ship.Indication != nil {
			f.add(p, "Indication", ship.Indication.Node, "")
		}
		for _, m := range ship.ModuleButtons {
			f.add(p, "ModuleButton", m.SlotNode, "")
		}
		f.add(p, "StopButton", ship.StopButton, "")
		f.add(p, "MaxSpeedButton", ship.MaxSpeedButton, "")
	}
	for _, t := range ui.Targets {
		text := ""
		if len(t.TextsTopToBottom) > 0 {
			text = t.TextsTopToBottom[0]
		}
		f.add("", "Target", t.Node, text)
	}
	if c := ui.InfoPanelContainer; c != nil {
		p := f.add("", "InfoPanelContainer", c.Node, "")
		if c.LocationInfo != nil {
			f.add(p, "LocationInfo", c.LocationInfo.Node, deref(c.LocationInfo.CurrentSolarSystemName))
		}
		if c.Route != nil {
			f.add(p, "Route", c.Route.Node, "")
		}
		if c.AgentMissions != nil {
			f.add(p, "AgentMissions", c.AgentMissions.Node, "")
		}
	}
	if w := ui.OverviewWindow; w != nil {
		p := f.add("", "OverviewWindow", w.Node, "")
		for _, e := range w.Entries {
			f.add(p, "Entry", e.Node, deref(e.ObjectName))
		}
	}
	if w := ui.SelectedItemWindow; w != nil {
		p := f.add("", "SelectedItemWindow", w.Node, "")
		f.add(p, "OrbitButton", w.OrbitButton, "")
	}
	if w := ui.DronesWindow; w != nil {
		p := f.add("", "DronesWindow", w.Node, "")
		for _, g := range w.DroneGroups {
			f.droneGroup(p, g)
		}
	}
	if w := ui.FittingWindow; w != nil {
		f.add("", "FittingWindow", w.Node, "")
	}
	if w := ui.ProbeScannerWindow; w != nil {
		p := f.add("", "ProbeScannerWindow", w.Node, "")
		for _, r := range w.ScanResults {
			f.add(p, "ScanResult", r.Node, "")
		}
	}
	if w := ui.DirectionalScannerWindow; w != nil {
		p := f.add("", "DirectionalScannerWindow", w.Node, "")
		for _, r := range w.ScanResults {
			f.add(p, "ScanResult", r, "")
		}
	}
	if w := ui.StationWindow; w != nil {
		p := f.add("", "StationWindow", w.Node, "")
		f.add(p, "UndockButton", w.UndockButton, "")
		f.add(p, "AbortUndockButton", w.AbortUndockButton, "")
	}
	for _, w := range ui.InventoryWindows {
		p := f.add("", "InventoryWindow", w.Node, deref(w.SubCaptionLabelText))
		for _, e := range w.LeftTreeEntries {
			f.treeEntry(p, e)
		}
		if inv := w.SelectedContainerInventory; inv != nil && inv.ItemsView != nil {
			for _, item := range inv.ItemsView.Items {
				f.add(p, "Item", item, "")
			}
		}
	}
	for _, s := range ui.ChatWindowStacks {
		text := ""
		if s.ChatWindow != nil {
			text = deref(s.ChatWindow.Name)
		}
		f.add("", "ChatWindowStack", s.Node, text)
	}
	for _, w := range ui.AgentConversationWindows {
		f.add("", "AgentConversationWindow", w.Node, "")
	}
	if w := ui.MarketOrdersWindow; w != nil {
		f.add("", "MarketOrdersWindow", w.Node, "")
	}
	if w := ui.SurveyScanWindow; w != nil {
		p := f.add("", "SurveyScanWindow", w.Node, "")
		for _, e := range w.ScanEntries {
			f.add(p, "Entry", e, "")
		}
	}
	if w := ui.BookmarkLocationWindow; w != nil {
		p := f.add("", "BookmarkLocationWindow", w.Node, "")
		f.add(p, "SubmitButton", w.SubmitButton, "")
		f.add(p, "CancelButton", w.CancelButton, "")
	}
	if w := ui.RepairShopWindow; w != nil {
		p := f.add("", "RepairShopWindow", w.Node, "")
		for _, item := range w.Items {
			f.add(p, "Item", item, "")
		}
		f.add(p, "RepairItemButton", w.RepairItemButton, "")
		f.add(p, "PickNewItemButton", w.PickNewItemButton, "")
		f.add(p, "RepairAllButton", w.RepairAllButton, "")
	}
	if w := ui.CharacterSheetWindow; w != nil {
		p := f.add("", "CharacterSheetWindow", w.Node, "")
		for _, g := range w.SkillGroups {
			f.add(p, "SkillGroup", g, "")
		}
	}
	if w := ui.FleetWindow; w != nil {
		p := f.add("", "FleetWindow", w.Node, "")
		for _, m := range w.FleetMembers {
			f.add(p, "Member", m, "")
		}
	}
	if w := ui.WatchListPanel; w != nil {
		p := f.add("", "WatchListPanel", w.Node, "")
		for _, e := range w.Entries {
			f.add(p, "Entry", e, "")
		}
	}
	if w := ui.StandaloneBookmarkWindow; w != nil {
		p := f.add("", "StandaloneBookmarkWindow", w.Node, "")
		for _, e := range w.Entries {
			f.add(p, "Entry", e, "")
		}
	}
	if t := ui.ModuleButtonTooltip; t != nil {
		text := ""
		if t.Shortcut != nil {
			text = t.Shortcut.Text
		}
		f.add("", "ModuleButtonTooltip", t.Node, text)
	}
	if n := ui.Neocom; n != nil {
		p := f.add("", "Neocom", n.Node, "")
		f.add(p, "InventoryIcon", n.IconInventory, "")
		if n.Clock != nil {
			f.add(p, "Clock", n.Clock.Node, n.Clock.Text)
		}
	}
	for _, m := range ui.MessageBoxes {
		p := f.add("", "MessageBox", m.Node, "")
		for _, b := range m.Buttons {
			f.add(p, "Button", b.Node, deref(b.Maintext))
		}
	}
	f.add("", "LayerAbovemain", ui.LayerAbovemain, "")
	if w := ui.KeyActivationWindow; w != nil {
		p := f.add("", "KeyActivationWindow", w.Node, "")
		f.add(p, "ActivateButton", w.ActivateButton, "")
	}
	return f.result
}

type flattener struct {
	result []Component
}

// add appends n under parentPath and returns its own path. A nil node adds
// nothing.
func (f *flattener) add(parentPath, kind string, n *uitree.Node, text string) string {
	path := kind
	if parentPath != "" {
		path = parentPath + " > " + kind
	}
	if n == nil {
		return path
	}
	f.result = append(f.result, Component{
		ID:      len(f.result) + 1,
		Kind:    kind,
		Text:    text,
		Region:  n.Total,
		Path:    path,
		Address: n.Raw.Address,
	})
	return path
}

func (f *flattener) droneGroup(parentPath string, g *uiparse.DronesWindowGroup) {
	p := f.add(parentPath, "DroneGroup", g.Header.Node, deref(g.Header.Maintext))
	for _, child := range g.Children {
		switch c := child.(type) {
		case *uiparse.DronesWindowGroup:
			f.droneGroup(p, c)
		case *uiparse.DronesWindowDrone:
			f.add(p, "Drone", c.Node, deref(c.Maintext))
		}
	}
}

func (f *flattener) treeEntry(parentPath string, e uiparse.InventoryWindowLeftTreeEntry) {
	p := f.add(parentPath, "TreeEntry", e.Node, e.Text)
	for _, child := range e.Children {
		f.treeEntry(p, child)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
