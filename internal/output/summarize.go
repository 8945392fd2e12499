package output

import (
	"fmt"

	"github.com/mj1618/eve-ui-reader/internal/uiparse"
)

// Report is the serialisable summary of one parsed snapshot. The full
// UserInterface references tree nodes everywhere and is not meant to be
// printed as is.
type Report struct {
	Source       string             `yaml:"source,omitempty"       json:"source,omitempty"`
	Nodes        int                `yaml:"nodes"                  json:"nodes"`
	Windows      []string           `yaml:"windows"                json:"windows"`
	Ship         *ShipReport        `yaml:"ship,omitempty"         json:"ship,omitempty"`
	Targets      []TargetReport     `yaml:"targets,omitempty"      json:"targets,omitempty"`
	Location     *LocationReport    `yaml:"location,omitempty"     json:"location,omitempty"`
	Overview     []OverviewRow      `yaml:"overview,omitempty"     json:"overview,omitempty"`
	Drones       *DronesReport      `yaml:"drones,omitempty"       json:"drones,omitempty"`
	Inventories  []InventoryReport  `yaml:"inventories,omitempty"  json:"inventories,omitempty"`
	Tooltip      *TooltipReport     `yaml:"tooltip,omitempty"      json:"tooltip,omitempty"`
	Clock        *uiparse.ClockTime `yaml:"clock,omitempty"        json:"clock,omitempty"`
	ContextMenus [][]string         `yaml:"contextMenus,omitempty" json:"contextMenus,omitempty"`
	MessageBoxes [][]string         `yaml:"messageBoxes,omitempty" json:"messageBoxes,omitempty"`
	// Errors lists every text that was found but did not decode.
	Errors []string `yaml:"errors,omitempty" json:"errors,omitempty"`
	// Components is filled only on request; see WithComponents.
	Components []Component `yaml:"components,omitempty" json:"components,omitempty"`
}

type ShipReport struct {
	CapacitorPercent *int              `yaml:"capacitorPercent,omitempty" json:"capacitorPercent,omitempty"`
	Hitpoints        uiparse.Hitpoints `yaml:"hitpoints"                  json:"hitpoints"`
	Maneuver         string            `yaml:"maneuver,omitempty"         json:"maneuver,omitempty"`
	Modules          ModuleCounts      `yaml:"modules"                    json:"modules"`
	ActiveModules    int               `yaml:"activeModules"              json:"activeModules"`
	OffensiveBuffs   []string          `yaml:"offensiveBuffs,omitempty"   json:"offensiveBuffs,omitempty"`
	Squadrons        int               `yaml:"squadrons,omitempty"        json:"squadrons,omitempty"`
}

type ModuleCounts struct {
	Top    int `yaml:"top"    json:"top"`
	Middle int `yaml:"middle" json:"middle"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

type TargetReport struct {
	Texts  []string `yaml:"texts"            json:"texts"`
	Active bool     `yaml:"active,omitempty" json:"active,omitempty"`
}

type LocationReport struct {
	SolarSystem    string `yaml:"solarSystem,omitempty"    json:"solarSystem,omitempty"`
	SecurityStatus *int   `yaml:"securityStatus,omitempty" json:"securityStatus,omitempty"`
	Station        string `yaml:"station,omitempty"        json:"station,omitempty"`
	RouteMarkers   int    `yaml:"routeMarkers,omitempty"   json:"routeMarkers,omitempty"`
}

type OverviewRow struct {
	Name     string `yaml:"name,omitempty"     json:"name,omitempty"`
	Type     string `yaml:"type,omitempty"     json:"type,omitempty"`
	Distance *int   `yaml:"distance,omitempty" json:"distance,omitempty"`

	uiparse.OverviewWindowEntryCommonIndications `yaml:",inline"`
}

type DronesReport struct {
	InBay        *DroneGroupReport  `yaml:"inBay,omitempty"        json:"inBay,omitempty"`
	InLocalSpace *DroneGroupReport  `yaml:"inLocalSpace,omitempty" json:"inLocalSpace,omitempty"`
	Groups       []DroneGroupReport `yaml:"groups,omitempty"       json:"groups,omitempty"`
}

type DroneGroupReport struct {
	Title    string   `yaml:"title"              json:"title"`
	Quantity *int     `yaml:"quantity,omitempty" json:"quantity,omitempty"`
	Drones   []string `yaml:"drones,omitempty"   json:"drones,omitempty"`
}

type InventoryReport struct {
	Caption  string                 `yaml:"caption,omitempty"  json:"caption,omitempty"`
	Capacity *uiparse.CapacityGauge `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Items    int                    `yaml:"items"              json:"items"`
	ListView bool                   `yaml:"listView,omitempty" json:"listView,omitempty"`
}

type TooltipReport struct {
	Shortcut     []string `yaml:"shortcut,omitempty"     json:"shortcut,omitempty"`
	OptimalRange *int     `yaml:"optimalRange,omitempty" json:"optimalRange,omitempty"`
}

// Reports is the result of parsing several snapshots.
type Reports []Report

// Summarize builds the report for ui. source names the snapshot and may be
// empty.
func Summarize(ui *uiparse.UserInterface, source string) Report {
	s := &summarizer{}
	r := Report{
		Source:  source,
		Windows: windowKinds(ui),
	}
	if ui.UITree != nil {
		r.Nodes = len(ui.UITree.Descendants()) + 1
	}
	r.Ship = s.ship(ui.ShipUI)
	for _, t := range ui.Targets {
		r.Targets = append(r.Targets, TargetReport{Texts: t.TextsTopToBottom, Active: t.IsActiveTarget})
	}
	r.Location = location(ui.InfoPanelContainer)
	if ui.OverviewWindow != nil {
		for i, e := range ui.OverviewWindow.Entries {
			r.Overview = append(r.Overview, s.overviewRow(i, e))
		}
	}
	r.Drones = s.drones(ui.DronesWindow)
	for i, w := range ui.InventoryWindows {
		r.Inventories = append(r.Inventories, s.inventory(i, w))
	}
	r.Tooltip = s.tooltip(ui.ModuleButtonTooltip)
	if ui.Neocom != nil && ui.Neocom.Clock != nil {
		if s.ok("neocom.clock", ui.Neocom.Clock.ParsedText.Err) {
			c := ui.Neocom.Clock.ParsedText.Value
			r.Clock = &c
		}
	}
	for _, m := range ui.ContextMenus {
		texts := make([]string, 0, len(m.Entries))
		for _, e := range m.Entries {
			texts = append(texts, e.Text)
		}
		r.ContextMenus = append(r.ContextMenus, texts)
	}
	for _, m := range ui.MessageBoxes {
		texts := make([]string, 0, len(m.Buttons))
		for _, b := range m.Buttons {
			if b.Maintext != nil {
				texts = append(texts, *b.Maintext)
			}
		}
		r.MessageBoxes = append(r.MessageBoxes, texts)
	}
	r.Errors = s.errors
	return r
}

// WithComponents returns r with the flattened component list attached.
func (r Report) WithComponents(ui *uiparse.UserInterface) Report {
	r.Components = Components(ui)
	return r
}

type summarizer struct {
	errors []string
}

// ok records err under where and reports whether there was none.
func (s *summarizer) ok(where string, err error) bool {
	if err == nil {
		return true
	}
	s.errors = append(s.errors, fmt.Sprintf("%s: %v", where, err))
	return false
}

func (s *summarizer) ship(ship *uiparse.ShipUI) *ShipReport {
	if ship == nil {
		return nil
	}
	r := &ShipReport{
		CapacitorPercent: ship.Capacitor.LevelFromPmarksPercent,
		Hitpoints:        ship.HitpointsPercent,
		Modules: ModuleCounts{
			Top:    len(ship.ModuleButtonsRows.Top),
			Middle: len(ship.ModuleButtonsRows.Middle),
			Bottom: len(ship.ModuleButtonsRows.Bottom),
		},
		OffensiveBuffs: ship.OffensiveBuffButtonNames,
	}
	if ship.Indication != nil && ship.Indication.ManeuverType != nil {
		r.Maneuver = string(*ship.Indication.ManeuverType)
	}
	for _, m := range ship.ModuleButtons {
		if m.IsActive != nil && *m.IsActive {
			r.ActiveModules++
		}
	}
	if ship.SquadronsUI != nil {
		r.Squadrons = len(ship.SquadronsUI.Squadrons)
	}
	return r
}

func location(c *uiparse.InfoPanelContainer) *LocationReport {
	if c == nil || (c.LocationInfo == nil && c.Route == nil) {
		return nil
	}
	r := &LocationReport{}
	if info := c.LocationInfo; info != nil {
		if info.CurrentSolarSystemName != nil {
			r.SolarSystem = *info.CurrentSolarSystemName
		}
		r.SecurityStatus = info.SecurityStatusPercent
		if info.ExpandedContent != nil && info.ExpandedContent.CurrentStationName != nil {
			r.Station = *info.ExpandedContent.CurrentStationName
		}
	}
	if c.Route != nil {
		r.RouteMarkers = len(c.Route.RouteElementMarkers)
	}
	return r
}

func (s *summarizer) overviewRow(i int, e uiparse.OverviewWindowEntry) OverviewRow {
	row := OverviewRow{OverviewWindowEntryCommonIndications: e.CommonIndications}
	if e.ObjectName != nil {
		row.Name = *e.ObjectName
	}
	if e.ObjectType != nil {
		row.Type = *e.ObjectType
	}
	// A row without a distance column is common and not worth reporting.
	if e.ObjectDistance != nil {
		if s.ok(fmt.Sprintf("overview[%d].distance", i), e.ObjectDistanceInMeters.Err) {
			d := e.ObjectDistanceInMeters.Value
			row.Distance = &d
		}
	}
	return row
}

func (s *summarizer) drones(w *uiparse.DronesWindow) *DronesReport {
	if w == nil {
		return nil
	}
	r := &DronesReport{
		InBay:        s.droneGroup(w.DroneGroupInBay),
		InLocalSpace: s.droneGroup(w.DroneGroupInLocalSpace),
	}
	for _, g := range w.DroneGroups {
		r.Groups = append(r.Groups, *s.droneGroup(g))
	}
	return r
}

func (s *summarizer) droneGroup(g *uiparse.DronesWindowGroup) *DroneGroupReport {
	if g == nil {
		return nil
	}
	r := &DroneGroupReport{}
	if g.Header.Maintext != nil {
		r.Title = *g.Header.Maintext
	}
	if s.ok("drones."+r.Title, g.Header.QuantityFromTitle.Err) {
		r.Quantity = g.Header.QuantityFromTitle.Value
	}
	for _, d := range uiparse.EnumerateAllDrones(g) {
		if d.Maintext != nil {
			r.Drones = append(r.Drones, *d.Maintext)
		}
	}
	return r
}

func (s *summarizer) inventory(i int, w uiparse.InventoryWindow) InventoryReport {
	r := InventoryReport{}
	if w.SubCaptionLabelText != nil {
		r.Caption = *w.SubCaptionLabelText
	}
	if g := w.SelectedContainerCapacityGauge; g != nil {
		if s.ok(fmt.Sprintf("inventories[%d].capacity", i), g.Err) {
			v := g.Value
			r.Capacity = &v
		}
	}
	if inv := w.SelectedContainerInventory; inv != nil && inv.ItemsView != nil {
		r.Items = len(inv.ItemsView.Items)
		r.ListView = inv.ItemsView.ListView
	}
	return r
}

func (s *summarizer) tooltip(t *uiparse.ModuleButtonTooltip) *TooltipReport {
	if t == nil {
		return nil
	}
	r := &TooltipReport{}
	if t.Shortcut != nil {
		if s.ok("tooltip.shortcut", t.Shortcut.Keys.Err) {
			for _, k := range t.Shortcut.Keys.Value {
				r.Shortcut = append(r.Shortcut, k.String())
			}
		}
	}
	if t.OptimalRange != nil {
		if s.ok("tooltip.optimalRange", t.OptimalRange.InMeters.Err) {
			v := t.OptimalRange.InMeters.Value
			r.OptimalRange = &v
		}
	}
	return r
}

// windowKinds names the top-level components present in ui, in the order
// the aggregator lists them.
func windowKinds(ui *uiparse.UserInterface) []string {
	kinds := []string{}
	add := func(present bool, kind string) {
		if present {
			kinds = append(kinds, kind)
		}
	}
	add(len(ui.ContextMenus) > 0, "ContextMenu")
	add(ui.ShipUI != nil, "ShipUI")
	add(len(ui.Targets) > 0, "Targets")
	add(ui.InfoPanelContainer != nil, "InfoPanelContainer")
	add(ui.OverviewWindow != nil, "OverviewWindow")
	add(ui.SelectedItemWindow != nil, "SelectedItemWindow")
	add(ui.DronesWindow != nil, "DronesWindow")
	add(ui.FittingWindow != nil, "FittingWindow")
	add(ui.ProbeScannerWindow != nil, "ProbeScannerWindow")
	add(ui.DirectionalScannerWindow != nil, "DirectionalScannerWindow")
	add(ui.StationWindow != nil, "StationWindow")
	add(len(ui.InventoryWindows) > 0, "InventoryWindow")
	add(len(ui.ChatWindowStacks) > 0, "ChatWindowStack")
	add(len(ui.AgentConversationWindows) > 0, "AgentConversationWindow")
	add(ui.MarketOrdersWindow != nil, "MarketOrdersWindow")
	add(ui.SurveyScanWindow != nil, "SurveyScanWindow")
	add(ui.BookmarkLocationWindow != nil, "BookmarkLocationWindow")
	add(ui.RepairShopWindow != nil, "RepairShopWindow")
	add(ui.CharacterSheetWindow != nil, "CharacterSheetWindow")
	add(ui.FleetWindow != nil, "FleetWindow")
	add(ui.WatchListPanel != nil, "WatchListPanel")
	add(ui.StandaloneBookmarkWindow != nil, "StandaloneBookmarkWindow")
	add(ui.ModuleButtonTooltip != nil, "ModuleButtonTooltip")
	add(ui.Neocom != nil, "Neocom")
	add(len(ui.MessageBoxes) > 0, "MessageBox")
	add(ui.LayerAbovemain != nil, "LayerAbovemain")
	add(ui.KeyActivationWindow != nil, "KeyActivationWindow")
	return kinds
}
