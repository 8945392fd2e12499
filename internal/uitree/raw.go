package uitree

// RawNode is one UI object as read from the client's memory.
type RawNode struct {
	Address  string           `json:"address"`
	TypeName string           `json:"type"`
	Props    map[string]Value `json:"-"`
	// Children keeps the client's order. A nil entry is a child that could
	// not be read and is skipped by every traversal.
	Children []*RawNode `json:"-"`
}

// Prop returns the named property.
func (n *RawNode) Prop(name string) (Value, bool) {
	if n == nil || n.Props == nil {
		return Value{}, false
	}
	v, ok := n.Props[name]
	return v, ok
}

// Descendants lists every readable node below n in pre-order, excluding n.
func (n *RawNode) Descendants() []*RawNode {
	var result []*RawNode
	n.walk(func(d *RawNode) { result = append(result, d) })
	return result
}

// CountDescendants returns len(n.Descendants()) without building the list.
func (n *RawNode) CountDescendants() int {
	count := 0
	n.walk(func(*RawNode) { count++ })
	return count
}

func (n *RawNode) walk(visit func(*RawNode)) {
	if n == nil {
		return
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		visit(child)
		child.walk(visit)
	}
}

// MostPopulousDescendant returns the matching descendant with the most
// descendants of its own. Ties go to the one found first.
func (n *RawNode) MostPopulousDescendant(match func(*RawNode) bool) (*RawNode, bool) {
	var best *RawNode
	bestCount := -1
	for _, d := range n.Descendants() {
		if !match(d) {
			continue
		}
		if c := d.CountDescendants(); c > bestCount {
			best, bestCount = d, c
		}
	}
	return best, best != nil
}
