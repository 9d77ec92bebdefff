// Package codemap is the tree the dependency projection runs on: a root,
// package nodes, class group nodes and class nodes, with folding state.
package codemap

import (
	"github.com/CodMac/go-code-explorer/analysis"
)

type NodeKind int

const (
	RootNode NodeKind = iota
	PackageNode
	ClassesNode // the classes declared directly in one package
	ClassNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "root"
	case PackageNode:
		return "package"
	case ClassesNode:
		return "classes"
	case ClassNode:
		return "class"
	default:
		return "unknown"
	}
}

// ClassesNodeSuffix is appended to a package name to form the id of the
// node grouping that package's classes.
const ClassesNodeSuffix = ".package"

// ClassesNodeID returns the id of the class group node of packageName.
func ClassesNodeID(packageName string) string {
	return packageName + ClassesNodeSuffix
}

type Node struct {
	id       string
	text     string
	kind     NodeKind
	parent   *Node
	children []*Node
	depth    int
	folded   bool
	pkg      *analysis.Package
	classes  []*analysis.Class // every class this node stands for
}

func (n *Node) ID() string                 { return n.id }
func (n *Node) Text() string               { return n.text }
func (n *Node) Kind() NodeKind             { return n.kind }
func (n *Node) Parent() *Node              { return n.parent }
func (n *Node) Children() []*Node          { return n.children }
func (n *Node) Depth() int                 { return n.depth }
func (n *Node) IsRoot() bool               { return n.parent == nil }
func (n *Node) IsLeaf() bool               { return len(n.children) == 0 }
func (n *Node) IsFolded() bool             { return n.folded }
func (n *Node) Package() *analysis.Package { return n.pkg }

// Classes returns the analysis classes represented by n: a class and its
// nested classes, the classes of a package, or of a whole package tree.
func (n *Node) Classes() []*analysis.Class { return n.classes }

// IsDescendantOf reports whether ancestor is a proper ancestor of n.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	for p := n.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// IsVisible reports whether n passes filter. Folding is not considered;
// see Selection.IsVisible.
func (n *Node) IsVisible(filter *Filter) bool {
	return filter.Accepts(n)
}

// OutgoingDependenciesWithKnownTargets returns the dependencies leaving the
// classes of n.
func (n *Node) OutgoingDependenciesWithKnownTargets() []*analysis.Dependency {
	var deps []*analysis.Dependency
	for _, c := range n.classes {
		deps = append(deps, c.Outgoing()...)
	}
	return deps
}

// IncomingDependenciesWithKnownTargets returns the dependencies reaching the
// classes of n.
func (n *Node) IncomingDependenciesWithKnownTargets() []*analysis.Dependency {
	var deps []*analysis.Dependency
	for _, c := range n.classes {
		deps = append(deps, c.Incoming()...)
	}
	return deps
}

func (n *Node) String() string { return n.id }

// ReduceToAncestors drops every node that has an ancestor in nodes. The
// order of the remaining nodes is preserved.
func ReduceToAncestors(nodes []*Node) []*Node {
	set := make(map[*Node]bool, len(nodes))
	for _, n := range nodes {
		set[n] = true
	}
	reduced := make([]*Node, 0, len(nodes))
	seen := make(map[*Node]bool, len(nodes))
	for _, n := range nodes {
		if seen[n] || hasAncestorIn(n, set) {
			continue
		}
		seen[n] = true
		reduced = append(reduced, n)
	}
	return reduced
}

func hasAncestorIn(n *Node, set map[*Node]bool) bool {
	for p := n.parent; p != nil; p = p.parent {
		if set[p] {
			return true
		}
	}
	return false
}
