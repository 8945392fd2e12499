package uiparse

import (
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// Target is one locked target in the target bar.
type Target struct {
	Node                  *uitree.Node
	BarAndImageCont       *uitree.Node
	TextsTopToBottom      []string
	IsActiveTarget        bool
	AssignedContainerNode *uitree.Node
	AssignedIcons         []*uitree.Node
}

// ParseTargets reads every TargetInBar in tree order.
func ParseTargets(root *uitree.Node) []Target {
	var targets []Target
	for _, n := range root.Find(uitree.OfType("TargetInBar")) {
		targets = append(targets, parseTarget(n))
	}
	return targets
}

func parseTarget(n *uitree.Node) Target {
	t := Target{
		Node:             n,
		BarAndImageCont:  findFirst(n, uitree.Named("barAndImageCont")),
		TextsTopToBottom: textsSortedBy(n, textByTotalY),
	}
	// The active marker has no region of its own.
	for _, d := range n.Raw.Descendants() {
		if d.TypeName == "ActiveTargetOnBracket" {
			t.IsActiveTarget = true
			break
		}
	}
	if assigned, ok := firstSortedBy(n.Find(uitree.NameContainsFold("assigned")), func(a *uitree.Node) int { return a.Total.Width }); ok {
		t.AssignedContainerNode = assigned
		t.AssignedIcons = assigned.Find(uitree.OfAnyType("Sprite", "Icon"))
	}
	return t
}
