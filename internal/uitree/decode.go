package uitree

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// snapshotNode mirrors the JSON written by the memory reader.
type snapshotNode struct {
	Address  string          `json:"pythonObjectAddress"`
	TypeName string          `json:"pythonObjectTypeName"`
	Props    map[string]any  `json:"dictEntriesOfInterest"`
	Children []*snapshotNode `json:"children"`
}

// DecodeSnapshot reads one UI tree snapshot. Numbers keep their integer
// form when they have one, so "_displayX": 12 decodes as KindInt.
func DecodeSnapshot(r io.Reader) (*RawNode, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root snapshotNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return root.toRaw(), nil
}

// ReadSnapshotFile opens and decodes a snapshot file.
func ReadSnapshotFile(path string) (*RawNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	root, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func (s *snapshotNode) toRaw() *RawNode {
	if s == nil {
		return nil
	}
	n := &RawNode{
		Address:  s.Address,
		TypeName: s.TypeName,
		Props:    make(map[string]Value, len(s.Props)),
	}
	for k, v := range s.Props {
		n.Props[k] = valueFromJSON(v)
	}
	if len(s.Children) > 0 {
		n.Children = make([]*RawNode, len(s.Children))
		for i, c := range s.Children {
			n.Children[i] = c.toRaw()
		}
	}
	return n
}

func valueFromJSON(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}
		if f, err := t.Float64(); err == nil {
			return Float(f)
		}
		return String(t.String())
	case float64:
		return Float(t)
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, fv := range t {
			fields[k] = valueFromJSON(fv)
		}
		return Object(fields)
	case []any:
		items := make([]Value, len(t))
		for i, iv := range t {
			items[i] = valueFromJSON(iv)
		}
		return List(items)
	default:
		return Null()
	}
}
