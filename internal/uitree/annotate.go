package uitree

// Node is a RawNode placed on screen. Self is the node's own declared
// region; Total is that region moved by the origin of every ancestor.
// Only children whose regions decode appear in Children.
type Node struct {
	Raw      *RawNode
	Self     Region
	Total    Region
	Children []*Node
}

// Annotate computes display regions for the whole tree. The root falls back
// to the zero region when its own properties do not decode.
func Annotate(root *RawNode) *Node {
	self, _ := RegionFromProps(root)
	return withRegions(root, self, self)
}

func withRegions(raw *RawNode, self, total Region) *Node {
	n := &Node{Raw: raw, Self: self, Total: total}
	offset := Point{X: total.X, Y: total.Y}
	for _, child := range raw.Children {
		if child == nil {
			continue
		}
		if annotated, ok := withInheritedOffset(offset, child); ok {
			n.Children = append(n.Children, annotated)
		}
	}
	return n
}

// withInheritedOffset drops a child with no decodable region, and with it
// the child's whole subtree.
func withInheritedOffset(offset Point, raw *RawNode) (*Node, bool) {
	self, ok := RegionFromProps(raw)
	if !ok {
		return nil, false
	}
	total := self
	total.X += offset.X
	total.Y += offset.Y
	return withRegions(raw, self, total), true
}

// TypeName is shorthand for n.Raw.TypeName.
func (n *Node) TypeName() string { return n.Raw.TypeName }

// Descendants lists the annotated nodes below n in pre-order, excluding n.
func (n *Node) Descendants() []*Node {
	var result []*Node
	n.walk(func(d *Node) { result = append(result, d) })
	return result
}

func (n *Node) walk(visit func(*Node)) {
	for _, child := range n.Children {
		visit(child)
		child.walk(visit)
	}
}

// Find returns the descendants of n that satisfy match, in pre-order.
func (n *Node) Find(match Matcher) []*Node {
	var result []*Node
	n.walk(func(d *Node) {
		if match(d) {
			result = append(result, d)
		}
	})
	return result
}

// First returns the first descendant, in pre-order, that satisfies match.
func (n *Node) First(match Matcher) (*Node, bool) {
	var found *Node
	n.firstWalk(match, &found)
	return found, found != nil
}

func (n *Node) firstWalk(match Matcher, found **Node) {
	for _, child := range n.Children {
		if *found != nil {
			return
		}
		if match(child) {
			*found = child
			return
		}
		child.firstWalk(match, found)
	}
}

// Contains reports whether d is n or one of its annotated descendants.
func (n *Node) Contains(d *Node) bool {
	if n == d {
		return true
	}
	for _, child := range n.Children {
		if child.Contains(d) {
			return true
		}
	}
	return false
}
