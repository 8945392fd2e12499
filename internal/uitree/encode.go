package uitree

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// EncodeSnapshot writes root in the format DecodeSnapshot reads. Nil
// children are written as null. A float with an integral value comes back
// from DecodeSnapshot as an int.
func EncodeSnapshot(w io.Writer, root *RawNode) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toSnapshotNode(root)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func toSnapshotNode(n *RawNode) *snapshotNode {
	if n == nil {
		return nil
	}
	s := &snapshotNode{
		Address:  n.Address,
		TypeName: n.TypeName,
		Props:    make(map[string]any, len(n.Props)),
	}
	for k, v := range n.Props {
		s.Props[k] = v.toJSON()
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, toSnapshotNode(c))
	}
	return s
}

func (v Value) toJSON() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindObject:
		m := make(map[string]any, len(v.obj))
		for k, f := range v.obj {
			m[k] = f.toJSON()
		}
		return m
	case KindList:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.toJSON()
		}
		return items
	default:
		return nil
	}
}
