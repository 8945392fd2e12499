package uiparse

import (
	"strings"
	"unicode/utf8"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// first is the only way extractors pick one node out of a match list. An
// empty list is "not found", never a panic.
func first(nodes []*uitree.Node) (*uitree.Node, bool) {
	if len(nodes) == 0 {
		return nil, false
	}
	return nodes[0], true
}

// firstSortedBy sorts a copy of nodes by key and returns the lowest.
func firstSortedBy(nodes []*uitree.Node, key func(*uitree.Node) int) (*uitree.Node, bool) {
	sorted := append([]*uitree.Node(nil), nodes...)
	uitree.SortNodes(sorted, key)
	return first(sorted)
}

// findFirst searches the descendants of n.
func findFirst(n *uitree.Node, match uitree.Matcher) *uitree.Node {
	found, _ := n.First(match)
	return found
}

// textsSortedBy orders the texts of n by key and returns the strings.
func textsSortedBy(n *uitree.Node, key func(uitree.TextWithNode) int) []string {
	texts := uitree.AllDisplayTextsWithRegion(n)
	uitree.SortTexts(texts, key)
	result := make([]string, len(texts))
	for i, t := range texts {
		result[i] = t.Text
	}
	return result
}

func textByTotalY(t uitree.TextWithNode) int { return t.Node.Total.Y }
func textByTotalX(t uitree.TextWithNode) int { return t.Node.Total.X }
func textByArea(t uitree.TextWithNode) int   { return t.Node.Total.AreaOrZero() }

// smallestText is the label of the smallest node carrying text, which is
// how buttons and list rows expose their caption.
func smallestText(n *uitree.Node) (string, bool) {
	texts := textsSortedBy(n, textByArea)
	if len(texts) == 0 {
		return "", false
	}
	return texts[0], true
}

// longestText returns the longest of texts, the first on ties.
func longestText(texts []string) (string, bool) {
	if len(texts) == 0 {
		return "", false
	}
	best := texts[0]
	for _, t := range texts[1:] {
		if utf8.RuneCountInString(t) > utf8.RuneCountInString(best) {
			best = t
		}
	}
	return best, true
}

func normalizedTexts(n *uitree.Node) []string {
	texts := uitree.AllDisplayTexts(n.Raw)
	for i, t := range texts {
		texts[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return texts
}

// buttonWithLabel finds the smallest node whose type contains "Button" and
// that carries label as one of its texts.
func buttonWithLabel(window *uitree.Node, label string) *uitree.Node {
	label = strings.ToLower(label)
	var candidates []*uitree.Node
	for _, b := range window.Find(uitree.TypeContains("Button")) {
		for _, t := range normalizedTexts(b) {
			if t == label {
				candidates = append(candidates, b)
				break
			}
		}
	}
	found, _ := firstSortedBy(candidates, uitree.ByArea)
	return found
}

// ScrollControls is the scrollbar of a list.
type ScrollControls struct {
	Node         *uitree.Node
	ScrollHandle *uitree.Node
}

func parseScrollControls(n *uitree.Node) *ScrollControls {
	return &ScrollControls{
		Node:         n,
		ScrollHandle: findFirst(n, uitree.OfType("ScrollHandle")),
	}
}

func scrollControlsIn(n *uitree.Node) *ScrollControls {
	if sc, ok := n.First(uitree.TypeContains("ScrollControls")); ok {
		return parseScrollControls(sc)
	}
	return nil
}

// Expander is the arrow that opens or closes a tree entry.
type Expander struct {
	Node        *uitree.Node
	TexturePath *string
	IsExpanded  *bool
}

var expanderTextures = []struct {
	suffix   string
	expanded bool
}{
	{"38_16_228.png", false},
	{"38_16_229.png", true},
}

func parseExpander(n *uitree.Node) Expander {
	e := Expander{Node: n}
	path, ok := uitree.TexturePath(n.Raw)
	if !ok {
		return e
	}
	e.TexturePath = &path
	for _, t := range expanderTextures {
		if strings.HasSuffix(path, t.suffix) {
			expanded := t.expanded
			e.IsExpanded = &expanded
			break
		}
	}
	return e
}

func ptr[T any](v T) *T { return &v }

func optString(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}
