package codemap

import (
	"errors"
	"fmt"
)

var ErrEmptySelection = errors.New("empty selection")

// Selection is the set of selected nodes of a map together with the filter
// applied to it. The first selected node is the lead selected node.
type Selection struct {
	m        *Map
	filter   *Filter
	selected []*Node
}

func NewSelection(m *Map, filter *Filter, ids ...string) (*Selection, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	sel := &Selection{m: m, filter: filter}
	seen := make(map[*Node]bool, len(ids))
	for _, id := range ids {
		n, ok := m.Node(id)
		if !ok {
			return nil, fmt.Errorf("select %s: %w", id, ErrNodeNotFound)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		sel.selected = append(sel.selected, n)
	}
	return sel, nil
}

func (s *Selection) Map() *Map         { return s.m }
func (s *Selection) Filter() *Filter   { return s.filter }
func (s *Selection) Selected() []*Node { return s.selected }

// Lead returns the lead selected node.
func (s *Selection) Lead() *Node { return s.selected[0] }

func (s *Selection) IsSelected(n *Node) bool {
	for _, sel := range s.selected {
		if sel == n {
			return true
		}
	}
	return false
}

// IsVisible reports whether n passes the filter and none of its ancestors
// is folded.
func (s *Selection) IsVisible(n *Node) bool {
	if !n.IsVisible(s.filter) {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		if p.folded {
			return false
		}
	}
	return true
}
