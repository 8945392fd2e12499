package uiparse

import (
	"sort"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// ModuleButtonTooltip is the tooltip shown while hovering a module button.
type ModuleButtonTooltip struct {
	Node         *uitree.Node
	Shortcut     *ModuleButtonTooltipShortcut
	OptimalRange *ModuleButtonTooltipOptimalRange
}

type ModuleButtonTooltipShortcut struct {
	Text string
	Keys Parsed[[]KeyCode]
}

type ModuleButtonTooltipOptimalRange struct {
	Text     string
	InMeters Parsed[int]
}

// shortcutMaxDistanceSquared bounds how far, squared in pixels, the shortcut
// label may sit from the tooltip's upper right corner.
const shortcutMaxDistanceSquared = 1000

func ParseModuleButtonTooltip(root *uitree.Node, cfg Config) *ModuleButtonTooltip {
	tooltip, ok := root.First(uitree.OfType("ModuleButtonTooltip"))
	if !ok {
		return nil
	}
	t := &ModuleButtonTooltip{Node: tooltip}

	corner := tooltip.Total.UpperRight()
	distanceSquared := func(n *uitree.Node) int {
		p := n.Total.UpperRight()
		dx, dy := p.X-corner.X, p.Y-corner.Y
		return dx*dx + dy*dy
	}
	texts := uitree.AllDisplayTextsWithRegion(tooltip)
	sort.SliceStable(texts, func(i, j int) bool { return distanceSquared(texts[i].Node) < distanceSquared(texts[j].Node) })
	if len(texts) > 0 && distanceSquared(texts[0].Node) < shortcutMaxDistanceSquared {
		t.Shortcut = &ModuleButtonTooltipShortcut{
			Text: texts[0].Text,
			Keys: parsed[[]KeyCode](ParseShortcutKeys(texts[0].Text, cfg.KeyCodes)),
		}
	}

	for _, text := range uitree.AllDisplayTexts(tooltip.Raw) {
		if rangeText, ok := optimalRangeText(text); ok {
			t.OptimalRange = &ModuleButtonTooltipOptimalRange{
				Text:     rangeText,
				InMeters: parsed[int](ParseDistanceInMeters(rangeText)),
			}
			break
		}
	}
	return t
}
