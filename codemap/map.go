package codemap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/CodMac/go-code-explorer/analysis"
)

var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrCannotFoldRoot = errors.New("the root node cannot be folded")
)

// Map is a code map built from an analysis graph. Folding changes node
// state in place; a Map must not be folded while a projection reads it.
type Map struct {
	root  *Node
	nodes map[string]*Node
	graph *analysis.Graph
}

// rootIDSuffix is appended to the project name when a package or class
// already uses it as id.
const rootIDSuffix = " (project)"

// Build creates the code map of g. Packages without classes and without
// siblings are merged into their only subpackage. The root id is the
// project name unless that name is also a package or class name.
func Build(g *analysis.Graph, projectName string) *Map {
	root := &Node{text: projectName, kind: RootNode, classes: g.Classes()}
	m := &Map{root: root, nodes: make(map[string]*Node), graph: g}

	rootPkg := g.RootPackage()
	for _, sub := range rootPkg.Subpackages() {
		m.addPackage(root, sub, "")
	}
	if len(rootPkg.Classes()) > 0 {
		m.addClasses(root, rootPkg)
	}
	root.id = projectName
	for {
		if _, taken := m.nodes[root.id]; !taken {
			break
		}
		root.id += rootIDSuffix
	}
	m.nodes[root.id] = root

	m.Walk(func(n *Node) bool {
		sort.Slice(n.children, func(i, j int) bool { return n.children[i].id < n.children[j].id })
		return true
	})
	return m
}

func (m *Map) addPackage(parent *Node, pkg *analysis.Package, parentPkgName string) {
	if !pkg.HasClasses() {
		return
	}
	subs := pkg.Subpackages()
	if len(pkg.Classes()) == 0 && len(subs) == 1 {
		m.addPackage(parent, subs[0], parentPkgName)
		return
	}

	text := pkg.Name()
	if parentPkgName != "" {
		text = strings.TrimPrefix(text, parentPkgName+".")
	}
	node := m.add(parent, &Node{id: pkg.Name(), text: text, kind: PackageNode, pkg: pkg, classes: pkg.AllClasses()})
	for _, sub := range subs {
		m.addPackage(node, sub, pkg.Name())
	}
	if len(pkg.Classes()) > 0 {
		m.addClasses(node, pkg)
	}
}

func (m *Map) addClasses(parent *Node, pkg *analysis.Package) {
	group := m.add(parent, &Node{
		id:      ClassesNodeID(pkg.Name()),
		text:    "classes",
		kind:    ClassesNode,
		pkg:     pkg,
		classes: pkg.Classes(),
	})

	nested := make(map[*analysis.Class][]*analysis.Class)
	for _, c := range pkg.Classes() {
		named := c.EnclosingNamedClass()
		nested[named] = append(nested[named], c)
	}
	for _, c := range pkg.TopLevelClasses() {
		m.add(group, &Node{id: c.Name(), text: c.SimpleName(), kind: ClassNode, pkg: pkg, classes: nested[c]})
	}
}

func (m *Map) add(parent, n *Node) *Node {
	n.parent = parent
	n.depth = parent.depth + 1
	parent.children = append(parent.children, n)
	m.nodes[n.id] = n
	return n
}

func (m *Map) Root() *Node            { return m.root }
func (m *Map) Graph() *analysis.Graph { return m.graph }

// Node returns the node with the given id.
func (m *Map) Node(id string) (*Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// Walk visits the nodes depth first, parents before children. Returning
// false from fn skips the children of the visited node.
func (m *Map) Walk(fn func(n *Node) bool) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if !fn(n) {
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(m.root)
}

func (m *Map) Fold(id string) error {
	n, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("fold %s: %w", id, ErrNodeNotFound)
	}
	if n.IsRoot() {
		return ErrCannotFoldRoot
	}
	n.folded = !n.IsLeaf()
	return nil
}

func (m *Map) Unfold(id string) error {
	n, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("unfold %s: %w", id, ErrNodeNotFound)
	}
	n.folded = false
	return nil
}

// FoldToDepth folds every non-leaf node at depth or deeper and unfolds the
// nodes above it. A depth below 1 unfolds everything.
func (m *Map) FoldToDepth(depth int) {
	m.Walk(func(n *Node) bool {
		n.folded = depth > 0 && n.depth >= depth && !n.IsLeaf() && !n.IsRoot()
		return true
	})
}
