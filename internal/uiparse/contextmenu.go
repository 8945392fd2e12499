package uiparse

import (
	"strings"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// ContextMenu is one open right-click menu.
type ContextMenu struct {
	Node    *uitree.Node
	Entries []ContextMenuEntry
}

// ContextMenuEntry is one line of a context menu, sorted top to bottom.
type ContextMenuEntry struct {
	Node *uitree.Node
	Text string
}

// ParseContextMenus reads the menus open on the l_menu layer. Only direct
// children of the root are considered for the layer.
func ParseContextMenus(root *uitree.Node) []ContextMenu {
	var layer *uitree.Node
	for _, c := range root.Children {
		if name, ok := uitree.Name(c.Raw); ok && strings.ToLower(name) == "l_menu" {
			layer = c
			break
		}
	}
	if layer == nil {
		return nil
	}
	var menus []ContextMenu
	for _, c := range layer.Children {
		if strings.Contains(strings.ToLower(c.TypeName()), "menu") {
			menus = append(menus, parseContextMenu(c))
		}
	}
	return menus
}

func parseContextMenu(menu *uitree.Node) ContextMenu {
	nodes := menu.Find(uitree.TypeContainsFold("menuentry"))
	uitree.SortNodes(nodes, uitree.ByTotalY)
	entries := make([]ContextMenuEntry, len(nodes))
	for i, n := range nodes {
		var texts []string
		for _, d := range n.Descendants() {
			if t, ok := uitree.DisplayText(d.Raw); ok {
				texts = append(texts, t)
			}
		}
		text, _ := longestText(texts)
		entries[i] = ContextMenuEntry{Node: n, Text: text}
	}
	return ContextMenu{Node: menu, Entries: entries}
}
