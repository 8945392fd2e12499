package uiparse

import (
	"math"
	"strconv"
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// ShipUI is the HUD around the capacitor at the bottom center of the screen.
type ShipUI struct {
	Node                     *uitree.Node
	Capacitor                ShipUICapacitor
	HitpointsPercent         Hitpoints
	Indication               *ShipUIIndication
	ModuleButtons            []ShipUIModuleButton
	ModuleButtonsRows        ModuleRows
	OffensiveBuffButtonNames []string
	SquadronsUI              *SquadronsUI
	StopButton               *uitree.Node
	MaxSpeedButton           *uitree.Node
}

// Hitpoints are structure, armor and shield in percent.
type Hitpoints struct {
	Structure int `yaml:"structure" json:"structure" msgpack:"structure"`
	Armor     int `yaml:"armor" json:"armor" msgpack:"armor"`
	Shield    int `yaml:"shield" json:"shield" msgpack:"shield"`
}

type ShipUICapacitor struct {
	Node   *uitree.Node
	Pmarks []ShipUICapacitorPmark
	// LevelFromPmarksPercent is nil when there are no marks or any mark's
	// color did not decode.
	LevelFromPmarksPercent *int
}

type ShipUICapacitorPmark struct {
	Node         *uitree.Node
	ColorPercent *uitree.ColorPercent
}

type ShipUIIndication struct {
	Node         *uitree.Node
	ManeuverType *ManeuverType
}

type ShipUIModuleButton struct {
	Node              *uitree.Node
	SlotNode          *uitree.Node
	IsActive          *bool
	IsHiliteVisible   bool
	RampRotationMilli *int
}

// ModuleRows groups module buttons by their position around the capacitor.
type ModuleRows struct {
	Top    []ShipUIModuleButton
	Middle []ShipUIModuleButton
	Bottom []ShipUIModuleButton
}

type SquadronsUI struct {
	Node      *uitree.Node
	Squadrons []SquadronUI
}

type SquadronUI struct {
	Node        *uitree.Node
	Abilities   []SquadronAbilityIcon
	ActionLabel *uitree.Node
}

type SquadronAbilityIcon struct {
	Node       *uitree.Node
	Quantity   *int
	RampActive *bool
}

// pmarkEmptyAlphaPercent is the alpha below which a capacitor mark is drawn
// as discharged.
const pmarkEmptyAlphaPercent = 20

// ParseShipUI reads the ship HUD. It is absent unless the capacitor and all
// three hitpoint gauges are present.
func ParseShipUI(root *uitree.Node, cfg Config) *ShipUI {
	shipUI, ok := root.First(uitree.OfType("ShipUI"))
	if !ok {
		return nil
	}
	capacitorNode, ok := shipUI.First(uitree.OfType("CapacitorContainer"))
	if !ok {
		return nil
	}
	hitpoints, ok := parseHitpointsGauges(shipUI)
	if !ok {
		return nil
	}

	capacitor := ParseShipUICapacitor(capacitorNode)

	var indication *ShipUIIndication
	if n, ok := shipUI.First(uitree.NameContainsFold("indicationcontainer")); ok {
		indication = parseShipUIIndication(n, cfg)
	}

	var modules []ShipUIModuleButton
	for _, slot := range shipUI.Find(uitree.OfType("ShipSlot")) {
		if button, ok := slot.First(uitree.OfType("ModuleButton")); ok {
			modules = append(modules, parseShipUIModuleButton(slot, button))
		}
	}

	var buffNames []string
	for _, b := range shipUI.Find(uitree.OfType("OffensiveBuffButton")) {
		if name, ok := uitree.Name(b.Raw); ok {
			buffNames = append(buffNames, name)
		}
	}

	var squadrons *SquadronsUI
	if n, ok := shipUI.First(uitree.OfType("SquadronsUI")); ok {
		squadrons = parseSquadronsUI(n)
	}

	return &ShipUI{
		Node:                     shipUI,
		Capacitor:                capacitor,
		HitpointsPercent:         hitpoints,
		Indication:               indication,
		ModuleButtons:            modules,
		ModuleButtonsRows:        GroupModulesIntoRows(capacitor.Node, modules, cfg.ModuleRowThreshold),
		OffensiveBuffButtonNames: buffNames,
		SquadronsUI:              squadrons,
		StopButton:               findFirst(shipUI, uitree.OfType("StopButton")),
		MaxSpeedButton:           findFirst(shipUI, uitree.OfType("MaxSpeedButton")),
	}
}

func parseHitpointsGauges(shipUI *uitree.Node) (Hitpoints, bool) {
	percent := func(gaugeName string) (int, bool) {
		gauge, ok := shipUI.First(uitree.Named(gaugeName))
		if !ok {
			return 0, false
		}
		v, ok := uitree.LastValue(gauge.Raw)
		if !ok {
			return 0, false
		}
		return uitree.Round(v * 100), true
	}
	structure, ok := percent("structureGauge")
	if !ok {
		return Hitpoints{}, false
	}
	armor, ok := percent("armorGauge")
	if !ok {
		return Hitpoints{}, false
	}
	shield, ok := percent("shieldGauge")
	if !ok {
		return Hitpoints{}, false
	}
	return Hitpoints{Structure: structure, Armor: armor, Shield: shield}, true
}

// ParseShipUICapacitor estimates the charge level from the pmark tick marks.
// Empty marks are the ones drawn nearly transparent.
func ParseShipUICapacitor(capacitor *uitree.Node) ShipUICapacitor {
	c := ShipUICapacitor{Node: capacitor}
	allDecoded := true
	empty := 0
	for _, n := range capacitor.Find(uitree.Named("pmark")) {
		mark := ShipUICapacitorPmark{Node: n}
		if color, ok := uitree.ColorPercentOf(n.Raw); ok {
			mark.ColorPercent = &color
			if color.A < pmarkEmptyAlphaPercent {
				empty++
			}
		} else {
			allDecoded = false
		}
		c.Pmarks = append(c.Pmarks, mark)
	}
	if allDecoded && len(c.Pmarks) > 0 {
		c.LevelFromPmarksPercent = ptr(empty * 100 / len(c.Pmarks))
	}
	return c
}

// GroupModulesIntoRows sorts modules into the rows above, beside and below
// the capacitor, comparing vertical centers. Input order is kept per row.
func GroupModulesIntoRows(capacitor *uitree.Node, modules []ShipUIModuleButton, threshold int) ModuleRows {
	var rows ModuleRows
	center := capacitor.Total.VerticalCenter()
	for _, m := range modules {
		switch c := m.Node.Total.VerticalCenter(); {
		case c < center-threshold:
			rows.Top = append(rows.Top, m)
		case c > center+threshold:
			rows.Bottom = append(rows.Bottom, m)
		default:
			rows.Middle = append(rows.Middle, m)
		}
	}
	return rows
}

func parseShipUIIndication(n *uitree.Node, cfg Config) *ShipUIIndication {
	indication := &ShipUIIndication{Node: n}
	if m, ok := cfg.maneuverFromTexts(uitree.AllDisplayTexts(n.Raw)); ok {
		indication.ManeuverType = &m
	}
	return indication
}

func parseShipUIModuleButton(slot, button *uitree.Node) ShipUIModuleButton {
	m := ShipUIModuleButton{Node: button, SlotNode: slot}
	if active, ok := uitree.BoolProp(button.Raw, "ramp_active"); ok {
		m.IsActive = &active
	}
	m.IsHiliteVisible = len(slot.Find(uitree.All(uitree.OfType("Sprite"), uitree.Named("hilite")))) > 0
	m.RampRotationMilli = rampRotationMilli(slot)
	return m
}

// rampRotationMilli converts the rotation of the two ramp halves drawn while
// a module cycles into progress through the cycle, 0 to 1000.
func rampRotationMilli(slot *uitree.Node) *int {
	rotation := func(rampName string) (float64, bool) {
		for _, n := range slot.Find(uitree.Named(rampName)) {
			if r, ok := uitree.Rotation(n.Raw); ok {
				return r, true
			}
		}
		return 0, false
	}
	left, ok := rotation("leftRamp")
	if !ok {
		return nil
	}
	right, ok := rotation("rightRamp")
	if !ok {
		return nil
	}
	outOfRange := func(r float64) bool { return r < 0 || math.Pi*2.01 < r }
	if outOfRange(left) || outOfRange(right) {
		return nil
	}
	milli := uitree.Round(1000 - ((left+right)*500)/math.Pi)
	return ptr(max(0, min(1000, milli)))
}

func parseSquadronsUI(n *uitree.Node) *SquadronsUI {
	s := &SquadronsUI{Node: n}
	for _, sq := range n.Find(uitree.OfType("SquadronUI")) {
		squadron := SquadronUI{Node: sq, ActionLabel: findFirst(sq, uitree.OfType("SquadronActionLabel"))}
		for _, icon := range sq.Find(uitree.OfType("AbilityIcon")) {
			squadron.Abilities = append(squadron.Abilities, parseSquadronAbilityIcon(icon))
		}
		s.Squadrons = append(s.Squadrons, squadron)
	}
	return s
}

func parseSquadronAbilityIcon(n *uitree.Node) SquadronAbilityIcon {
	icon := SquadronAbilityIcon{Node: n}
	var texts []string
	for _, q := range n.Find(uitree.NameContainsFold("quantity")) {
		texts = append(texts, uitree.AllDisplayTexts(q.Raw)...)
	}
	if len(texts) > 0 {
		if quantity, err := strconv.Atoi(strings.TrimSpace(texts[0])); err == nil {
			icon.Quantity = &quantity
		}
	}
	if active, ok := uitree.BoolProp(n.Raw, "ramp_active"); ok {
		icon.RampActive = &active
	}
	return icon
}
