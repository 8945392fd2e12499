package uiparse

import (
	"errors"
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// OverviewWindow is the table of objects in space.
type OverviewWindow struct {
	Node           *uitree.Node
	EntriesHeaders []uitree.TextWithNode
	Entries        []OverviewWindowEntry
	ScrollControls *ScrollControls
}

type OverviewWindowEntry struct {
	Node             *uitree.Node
	TextsLeftToRight []string
	// CellsTexts maps header labels to the text in that column.
	CellsTexts             map[string]string
	ObjectDistance         *string
	ObjectDistanceInMeters Parsed[int]
	ObjectName             *string
	ObjectType             *string
	ObjectAlliance         *string
	IconSpriteColorPercent *uitree.ColorPercent
	// NamesUnderSpaceObjectIcon includes nodes without a region.
	NamesUnderSpaceObjectIcon map[string]struct{}
	BgColorFillsPercent       []uitree.ColorPercent
	RightAlignedIconsHints    []string
	CommonIndications         OverviewWindowEntryCommonIndications
}

type OverviewWindowEntryCommonIndications struct {
	Targeting          bool `yaml:"targeting" json:"targeting" msgpack:"targeting"`
	TargetedByMe       bool `yaml:"targetedByMe" json:"targetedByMe" msgpack:"targetedByMe"`
	IsJammingMe        bool `yaml:"isJammingMe" json:"isJammingMe" msgpack:"isJammingMe"`
	IsWarpDisruptingMe bool `yaml:"isWarpDisruptingMe" json:"isWarpDisruptingMe" msgpack:"isWarpDisruptingMe"`
}

var errNoDistanceCell = errors.New("did not find the 'Distance' cell text")

func ParseOverviewWindow(root *uitree.Node) *OverviewWindow {
	window, ok := root.First(uitree.OfType("OverView"))
	if !ok {
		return nil
	}
	w := &OverviewWindow{Node: window}
	if scroll, ok := window.First(uitree.TypeContainsFold("scroll")); ok {
		w.ScrollControls = scrollControlsIn(scroll)
		if headers, ok := scroll.First(uitree.TypeContainsFold("headers")); ok {
			w.EntriesHeaders = uitree.AllDisplayTextsWithRegion(headers)
		}
	}
	for _, n := range window.Find(uitree.OfType("OverviewScrollEntry")) {
		w.Entries = append(w.Entries, parseOverviewWindowEntry(w.EntriesHeaders, n))
	}
	return w
}

// cellsTexts assigns each text of entry to the header column containing the
// text's horizontal middle. Texts outside every column are left out; a later
// text in the same column replaces an earlier one.
func cellsTexts(headers []uitree.TextWithNode, entry *uitree.Node) map[string]string {
	cells := make(map[string]string)
	for _, cell := range uitree.AllDisplayTextsWithRegion(entry) {
		middle := cell.Node.Total.X + cell.Node.Total.Width/2
		for _, h := range headers {
			r := h.Node.Total
			if r.X < middle+1 && middle < r.X+r.Width-1 {
				cells[h.Text] = cell.Text
				break
			}
		}
	}
	return cells
}

func cell(cells map[string]string, header string) *string {
	if t, ok := cells[header]; ok {
		return &t
	}
	return nil
}

func parseOverviewWindowEntry(headers []uitree.TextWithNode, n *uitree.Node) OverviewWindowEntry {
	cells := cellsTexts(headers, n)
	e := OverviewWindowEntry{
		Node:                      n,
		TextsLeftToRight:          textsSortedBy(n, textByTotalX),
		CellsTexts:                cells,
		ObjectDistance:            cell(cells, "Distance"),
		ObjectName:                cell(cells, "Name"),
		ObjectType:                cell(cells, "Type"),
		ObjectAlliance:            cell(cells, "Alliance"),
		NamesUnderSpaceObjectIcon: make(map[string]struct{}),
	}
	if e.ObjectDistance != nil {
		e.ObjectDistanceInMeters = parsed[int](ParseDistanceInMeters(*e.ObjectDistance))
	} else {
		e.ObjectDistanceInMeters = Parsed[int]{Err: errNoDistanceCell}
	}

	if icon, ok := n.First(uitree.OfType("SpaceObjectIcon")); ok {
		if sprite, ok := icon.First(uitree.Named("iconSprite")); ok {
			if color, ok := uitree.ColorPercentOf(sprite.Raw); ok {
				e.IconSpriteColorPercent = &color
			}
		}
		for _, d := range icon.Raw.Descendants() {
			if name, ok := uitree.Name(d); ok {
				e.NamesUnderSpaceObjectIcon[name] = struct{}{}
			}
		}
	}

	for _, fill := range n.Find(uitree.All(uitree.OfType("Fill"), uitree.Named("bgColor"))) {
		if color, ok := uitree.ColorPercentOf(fill.Raw); ok {
			e.BgColorFillsPercent = append(e.BgColorFillsPercent, color)
		}
	}

	for _, container := range n.Find(uitree.Named("rightAlignedIconContainer")) {
		for _, d := range container.Descendants() {
			if hint, ok := uitree.Hint(d.Raw); ok {
				e.RightAlignedIconsHints = append(e.RightAlignedIconsHints, hint)
			}
		}
	}

	_, targeting := e.NamesUnderSpaceObjectIcon["targeting"]
	_, targetedByMe := e.NamesUnderSpaceObjectIcon["targetedByMeIndicator"]
	e.CommonIndications = OverviewWindowEntryCommonIndications{
		Targeting:          targeting,
		TargetedByMe:       targetedByMe,
		IsJammingMe:        anyContainsFold(e.RightAlignedIconsHints, "is jamming me"),
		IsWarpDisruptingMe: anyContainsFold(e.RightAlignedIconsHints, "is warp disrupting me"),
	}
	return e
}

func anyContainsFold(texts []string, sub string) bool {
	sub = strings.ToLower(sub)
	for _, t := range texts {
		if strings.Contains(strings.ToLower(t), sub) {
			return true
		}
	}
	return false
}
