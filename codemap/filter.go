package codemap

import (
	"regexp"
	"strings"
)

// Condition decides whether a single node matches a filter.
type Condition interface {
	Matches(n *Node) bool
}

// ConditionFunc adapts a function to a Condition.
type ConditionFunc func(n *Node) bool

func (f ConditionFunc) Matches(n *Node) bool { return f(n) }

// IDMatches matches nodes whose id matches re.
func IDMatches(re *regexp.Regexp) Condition {
	return ConditionFunc(func(n *Node) bool { return re.MatchString(n.id) })
}

// TextContains matches nodes whose text contains s, ignoring case.
func TextContains(s string) Condition {
	s = strings.ToLower(s)
	return ConditionFunc(func(n *Node) bool { return strings.Contains(strings.ToLower(n.text), s) })
}

func Not(c Condition) Condition {
	return ConditionFunc(func(n *Node) bool { return !c.Matches(n) })
}

// Any matches nodes matched by at least one of conds.
func Any(conds ...Condition) Condition {
	return ConditionFunc(func(n *Node) bool {
		for _, c := range conds {
			if c.Matches(n) {
				return true
			}
		}
		return false
	})
}

type FilterOptions struct {
	ShowAncestors   bool
	ShowDescendants bool
}

// Filter hides the nodes that neither match its condition nor are related
// to a matching node through the enabled options.
type Filter struct {
	cond Condition
	opts FilterOptions
}

func NewFilter(cond Condition, opts FilterOptions) *Filter {
	return &Filter{cond: cond, opts: opts}
}

// Accepts reports whether n passes f. The root passes every filter and a
// nil filter accepts all nodes.
func (f *Filter) Accepts(n *Node) bool {
	if f == nil || f.cond == nil || n.IsRoot() {
		return true
	}
	if f.cond.Matches(n) {
		return true
	}
	if f.opts.ShowAncestors && f.anyDescendantMatches(n) {
		return true
	}
	if f.opts.ShowDescendants {
		for p := n.parent; p != nil && !p.IsRoot(); p = p.parent {
			if f.cond.Matches(p) {
				return true
			}
		}
	}
	return false
}

func (f *Filter) anyDescendantMatches(n *Node) bool {
	for _, c := range n.children {
		if f.cond.Matches(c) || f.anyDescendantMatches(c) {
			return true
		}
	}
	return false
}
