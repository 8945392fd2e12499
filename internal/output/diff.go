package output

import (
	"fmt"
	"strconv"
)

// ChangeType represents the kind of change between two snapshots.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// Change is a single difference between the components of two snapshots.
type Change struct {
	Type      ChangeType           `yaml:"type"              json:"type"`
	Path      string               `yaml:"p"                 json:"p"`
	Component *Component           `yaml:"el,omitempty"      json:"el,omitempty"`      // added: the new component
	Text      string               `yaml:"t,omitempty"       json:"t,omitempty"`       // removed: last known text
	Changes   map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // changed: field diffs
}

// DiffComponents compares two component lists. Components are matched by
// path and by their position among components with the same path, so that
// the third overview entry is compared with the third overview entry.
func DiffComponents(prev, curr []Component) []Change {
	prevByKey := keyed(prev)
	currByKey := keyed(curr)

	var changes []Change
	for _, k := range componentKeys(curr) {
		c := currByKey[k]
		p, existed := prevByKey[k]
		if !existed {
			added := c
			changes = append(changes, Change{Type: ChangeAdded, Path: c.Path, Component: &added})
			continue
		}
		if diffs := diffComponent(p, c); len(diffs) > 0 {
			changes = append(changes, Change{Type: ChangeChanged, Path: c.Path, Changes: diffs})
		}
	}
	for _, k := range componentKeys(prev) {
		if _, exists := currByKey[k]; !exists {
			p := prevByKey[k]
			changes = append(changes, Change{Type: ChangeRemoved, Path: p.Path, Text: p.Text})
		}
	}
	return changes
}

func componentKeys(components []Component) []string {
	seen := make(map[string]int, len(components))
	keys := make([]string, len(components))
	for i, c := range components {
		keys[i] = c.Path + "#" + strconv.Itoa(seen[c.Path])
		seen[c.Path]++
	}
	return keys
}

func keyed(components []Component) map[string]Component {
	m := make(map[string]Component, len(components))
	for i, k := range componentKeys(components) {
		m[k] = components[i]
	}
	return m
}

// diffComponent compares two components and returns changed fields.
func diffComponent(prev, curr Component) map[string][2]string {
	diffs := make(map[string][2]string)
	if prev.Text != curr.Text {
		diffs["t"] = [2]string{prev.Text, curr.Text}
	}
	if prev.Region != curr.Region {
		diffs["b"] = [2]string{
			fmt.Sprintf("%v", prev.Region),
			fmt.Sprintf("%v", curr.Region),
		}
	}
	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
