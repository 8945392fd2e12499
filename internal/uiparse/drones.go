package uiparse

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// DronesWindow lists the drones in the bay and in space, grouped the way
// the window's tree view shows them.
type DronesWindow struct {
	Node                   *uitree.Node
	DroneGroups            []*DronesWindowGroup
	DroneGroupInBay        *DronesWindowGroup
	DroneGroupInLocalSpace *DronesWindowGroup
}

// DronesWindowEntry is either a *DronesWindowGroup or a *DronesWindowDrone.
type DronesWindowEntry interface {
	verticalOffset() int
}

type DronesWindowGroup struct {
	Header   DronesWindowGroupHeader
	Children []DronesWindowEntry
}

type DronesWindowGroupHeader struct {
	Node              *uitree.Node
	Maintext          *string
	Expander          Expander
	QuantityFromTitle Parsed[*int]
}

type DronesWindowDrone struct {
	Node             *uitree.Node
	Maintext         *string
	HitpointsPercent *Hitpoints
}

func (g *DronesWindowGroup) verticalOffset() int { return g.Header.Node.Total.Y }
func (d *DronesWindowDrone) verticalOffset() int { return d.Node.Total.Y }

func ParseDronesWindow(root *uitree.Node) *DronesWindow {
	window, ok := root.First(uitree.OfType("DroneView"))
	if !ok {
		return nil
	}
	var flat []DronesWindowEntry
	for _, n := range window.Find(uitree.OfType("DroneEntry")) {
		flat = append(flat, parseDronesWindowDrone(n))
	}
	for _, n := range window.Find(uitree.TypeContains("Group")) {
		if header, ok := parseDronesWindowGroupHeader(n); ok {
			flat = append(flat, &DronesWindowGroup{Header: header})
		}
	}
	groups := DroneGroupTreesFromFlatList(flat)
	return &DronesWindow{
		Node:                   window,
		DroneGroups:            groups,
		DroneGroupInBay:        droneGroupFromHeaderTextPart(groups, "in bay"),
		DroneGroupInLocalSpace: droneGroupFromHeaderTextPart(groups, "in local space"),
	}
}

// droneGroupFromHeaderTextPart picks the group with the shortest title
// containing part.
func droneGroupFromHeaderTextPart(groups []*DronesWindowGroup, part string) *DronesWindowGroup {
	var matching []*DronesWindowGroup
	for _, g := range groups {
		if g.Header.Maintext != nil && strings.Contains(strings.ToLower(*g.Header.Maintext), part) {
			matching = append(matching, g)
		}
	}
	if len(matching) == 0 {
		return nil
	}
	titleLength := func(g *DronesWindowGroup) int {
		if g.Header.Maintext == nil {
			return 999
		}
		return utf8.RuneCountInString(*g.Header.Maintext)
	}
	sort.SliceStable(matching, func(i, j int) bool { return titleLength(matching[i]) < titleLength(matching[j]) })
	return matching[0]
}

// expanderIndent is how far right, in pixels, a group's expander has to sit
// relative to another group's to count as nested inside it.
const expanderIndent = 3

// DroneGroupTreesFromFlatList rebuilds the group tree from entries that the
// window renders as a flat, indented list. Group headers nest only through
// the horizontal position of their expander.
func DroneGroupTreesFromFlatList(entries []DronesWindowEntry) []*DronesWindowGroup {
	ordered := append([]DronesWindowEntry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].verticalOffset() < ordered[j].verticalOffset() })

	var topmost *DronesWindowGroup
	for _, e := range ordered {
		if g, ok := e.(*DronesWindowGroup); ok {
			topmost = g
			break
		}
	}
	if topmost == nil {
		return nil
	}

	topmostY := topmost.verticalOffset()
	topmostX := topmost.Header.Expander.Node.Total.X
	var upToSibling []DronesWindowEntry
	for _, e := range dropWhileAtOrAbove(ordered, topmostY) {
		if g, ok := e.(*DronesWindowGroup); ok && !(topmostX < g.Header.Expander.Node.Total.X-expanderIndent) {
			break
		}
		upToSibling = append(upToSibling, e)
	}

	var children []DronesWindowEntry
	for _, e := range upToSibling {
		if _, ok := e.(*DronesWindowDrone); !ok {
			break
		}
		children = append(children, e)
	}
	for _, g := range DroneGroupTreesFromFlatList(upToSibling) {
		children = append(children, g)
	}
	sort.SliceStable(children, func(i, j int) bool { return children[i].verticalOffset() < children[j].verticalOffset() })

	tree := &DronesWindowGroup{Header: topmost.Header, Children: children}

	bottommost := topmostY
	if descendants := EnumerateDescendants(tree); len(descendants) > 0 {
		bottommost = descendants[0].verticalOffset()
		for _, d := range descendants[1:] {
			bottommost = max(bottommost, d.verticalOffset())
		}
	}
	return append([]*DronesWindowGroup{tree}, DroneGroupTreesFromFlatList(dropWhileAtOrAbove(ordered, bottommost))...)
}

// dropWhileAtOrAbove skips the leading entries of a vertically ordered list
// whose offset is at most y.
func dropWhileAtOrAbove(ordered []DronesWindowEntry, y int) []DronesWindowEntry {
	i := 0
	for i < len(ordered) && ordered[i].verticalOffset() <= y {
		i++
	}
	return ordered[i:]
}

// EnumerateDescendants flattens a group tree in display order, groups
// before their children.
func EnumerateDescendants(g *DronesWindowGroup) []DronesWindowEntry {
	var result []DronesWindowEntry
	for _, child := range g.Children {
		result = append(result, child)
		if sub, ok := child.(*DronesWindowGroup); ok {
			result = append(result, EnumerateDescendants(sub)...)
		}
	}
	return result
}

// EnumerateAllDrones lists every drone below g at any depth.
func EnumerateAllDrones(g *DronesWindowGroup) []*DronesWindowDrone {
	var drones []*DronesWindowDrone
	for _, e := range EnumerateDescendants(g) {
		if d, ok := e.(*DronesWindowDrone); ok {
			drones = append(drones, d)
		}
	}
	return drones
}

// parseDronesWindowGroupHeader accepts only nodes with exactly one expander
// below them; outer containers whose type also says "Group" hold several.
func parseDronesWindowGroupHeader(n *uitree.Node) (DronesWindowGroupHeader, bool) {
	expanders := n.Find(uitree.NameContainsFold("expander"))
	if len(expanders) != 1 {
		return DronesWindowGroupHeader{}, false
	}
	h := DronesWindowGroupHeader{
		Node:     n,
		Maintext: optString(smallestText(n)),
		Expander: parseExpander(expanders[0]),
	}
	if h.Maintext != nil {
		h.QuantityFromTitle = parsed[*int](ParseQuantityFromDroneGroupTitle(*h.Maintext))
	}
	return h, true
}

func parseDronesWindowDrone(n *uitree.Node) *DronesWindowDrone {
	d := &DronesWindowDrone{Node: n, Maintext: optString(smallestText(n))}
	gaugePercent := func(containerName string) (int, bool) {
		gauge, ok := n.First(uitree.Named(containerName))
		if !ok {
			return 0, false
		}
		bar, ok := gauge.First(uitree.Named("droneGaugeBar"))
		if !ok {
			return 0, false
		}
		damage, ok := gauge.First(uitree.Named("droneGaugeBarDmg"))
		if !ok || bar.Total.Width == 0 {
			return 0, false
		}
		return (bar.Total.Width - damage.Total.Width) * 100 / bar.Total.Width, true
	}
	shield, ok := gaugePercent("gauge_shield")
	if !ok {
		return d
	}
	armor, ok := gaugePercent("gauge_armor")
	if !ok {
		return d
	}
	structure, ok := gaugePercent("gauge_struct")
	if !ok {
		return d
	}
	d.HitpointsPercent = &Hitpoints{Structure: structure, Armor: armor, Shield: shield}
	return d
}
