// Package testutil builds small UI trees for tests.
package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

var addressCounter atomic.Int64

// Option customises a node built by Node or NoRegion.
type Option func(*uitree.RawNode)

// Node builds a raw node with a display region.
func Node(typeName string, x, y, w, h int, opts ...Option) *uitree.RawNode {
	n := NoRegion(typeName, opts...)
	n.Props["_displayX"] = uitree.Int(int64(x))
	n.Props["_displayY"] = uitree.Int(int64(y))
	n.Props["_displayWidth"] = uitree.Int(int64(w))
	n.Props["_displayHeight"] = uitree.Int(int64(h))
	return n
}

// NoRegion builds a raw node the annotator will prune.
func NoRegion(typeName string, opts ...Option) *uitree.RawNode {
	n := &uitree.RawNode{
		Address:  fmt.Sprintf("0x%x", addressCounter.Add(1)),
		TypeName: typeName,
		Props:    map[string]uitree.Value{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Prop sets an arbitrary property.
func Prop(name string, v uitree.Value) Option {
	return func(n *uitree.RawNode) { n.Props[name] = v }
}

func Name(name string) Option { return Prop("_name", uitree.String(name)) }
func Text(text string) Option { return Prop("_text", uitree.String(text)) }
func SetText(text string) Option { return Prop("_setText", uitree.String(text)) }
func Hint(hint string) Option { return Prop("_hint", uitree.String(hint)) }
func Texture(path string) Option { return Prop("texturePath", uitree.String(path)) }
func Rotation(r float64) Option { return Prop("_rotation", uitree.Float(r)) }
func LastValue(v float64) Option { return Prop("_lastValue", uitree.Float(v)) }
func BoolProp(name string, b bool) Option { return Prop(name, uitree.Bool(b)) }

// Color sets _color from percent channels.
func Color(a, r, g, b int) Option {
	return Prop("_color", uitree.Object(map[string]uitree.Value{
		"aPercent": uitree.Int(int64(a)),
		"rPercent": uitree.Int(int64(r)),
		"gPercent": uitree.Int(int64(g)),
		"bPercent": uitree.Int(int64(b)),
	}))
}

// Children appends children, nil entries included.
func Children(children ...*uitree.RawNode) Option {
	return func(n *uitree.RawNode) { n.Children = append(n.Children, children...) }
}

// Root wraps children in a full-screen root node at the origin.
func Root(children ...*uitree.RawNode) *uitree.RawNode {
	return Node("UIRoot", 0, 0, 1920, 1080, Children(children...))
}

// Annotated builds and annotates a root around children.
func Annotated(children ...*uitree.RawNode) *uitree.Node {
	return uitree.Annotate(Root(children...))
}
