package uitree

import (
	"sort"
	"strings"
)

// Matcher selects annotated nodes during a search.
type Matcher func(*Node) bool

// OfType matches the declared type name exactly.
func OfType(typeName string) Matcher {
	return func(n *Node) bool { return n.Raw.TypeName == typeName }
}

// OfAnyType matches any of the given type names exactly.
func OfAnyType(typeNames ...string) Matcher {
	return func(n *Node) bool {
		for _, t := range typeNames {
			if n.Raw.TypeName == t {
				return true
			}
		}
		return false
	}
}

// TypeContains matches when the type name contains sub, case-sensitively.
func TypeContains(sub string) Matcher {
	return func(n *Node) bool { return strings.Contains(n.Raw.TypeName, sub) }
}

// TypeContainsFold matches when the lower-cased type name contains sub,
// which must already be lower case.
func TypeContainsFold(sub string) Matcher {
	return func(n *Node) bool { return strings.Contains(strings.ToLower(n.Raw.TypeName), sub) }
}

// TypeHasPrefix matches type names starting with prefix.
func TypeHasPrefix(prefix string) Matcher {
	return func(n *Node) bool { return strings.HasPrefix(n.Raw.TypeName, prefix) }
}

// Named matches _name exactly.
func Named(name string) Matcher {
	return func(n *Node) bool {
		got, ok := Name(n.Raw)
		return ok && got == name
	}
}

// NameContains matches when _name contains sub, case-sensitively.
func NameContains(sub string) Matcher {
	return func(n *Node) bool {
		got, ok := Name(n.Raw)
		return ok && strings.Contains(got, sub)
	}
}

// NameContainsFold matches when the lower-cased _name contains sub, which
// must already be lower case.
func NameContainsFold(sub string) Matcher {
	return func(n *Node) bool {
		got, ok := Name(n.Raw)
		return ok && strings.Contains(strings.ToLower(got), sub)
	}
}

// NameHasPrefix matches when _name starts with prefix.
func NameHasPrefix(prefix string) Matcher {
	return func(n *Node) bool {
		got, ok := Name(n.Raw)
		return ok && strings.HasPrefix(got, prefix)
	}
}

// TexturePathEndsWith matches nodes whose texture path ends with suffix.
func TexturePathEndsWith(suffix string) Matcher {
	return func(n *Node) bool {
		p, ok := TexturePath(n.Raw)
		return ok && strings.HasSuffix(p, suffix)
	}
}

// All matches when every matcher does.
func All(matchers ...Matcher) Matcher {
	return func(n *Node) bool {
		for _, m := range matchers {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// TextWithNode pairs a non-empty display text with the annotated node it
// was read from.
type TextWithNode struct {
	Text string
	Node *Node
}

// AllDisplayTextsWithRegion returns the non-empty display texts of n and
// its annotated descendants, in pre-order.
func AllDisplayTextsWithRegion(n *Node) []TextWithNode {
	var result []TextWithNode
	add := func(d *Node) {
		if t, ok := DisplayText(d.Raw); ok && t != "" {
			result = append(result, TextWithNode{Text: t, Node: d})
		}
	}
	add(n)
	n.walk(add)
	return result
}

// SortTexts orders texts by key, keeping the original order among equal keys.
func SortTexts(texts []TextWithNode, key func(TextWithNode) int) {
	sort.SliceStable(texts, func(i, j int) bool { return key(texts[i]) < key(texts[j]) })
}

// SortNodes orders nodes by key, keeping the original order among equal keys.
func SortNodes(nodes []*Node, key func(*Node) int) {
	sort.SliceStable(nodes, func(i, j int) bool { return key(nodes[i]) < key(nodes[j]) })
}

// ByTotalY, ByTotalX and ByArea are common sort keys.
func ByTotalY(n *Node) int { return n.Total.Y }
func ByTotalX(n *Node) int { return n.Total.X }
func ByArea(n *Node) int   { return n.Total.AreaOrZero() }
