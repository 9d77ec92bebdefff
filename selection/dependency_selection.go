// Package selection projects class dependencies onto the nodes of a code
// map that are currently visible, given what the user has selected.
package selection

import (
	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/codemap"
)

// MapSelection is the view of a selected, filtered and folded map the
// projection reads from. *codemap.Selection implements it.
type MapSelection interface {
	Map() *codemap.Map
	Filter() *codemap.Filter
	// Selected returns the selected nodes, lead selected node first.
	Selected() []*codemap.Node
	IsVisible(n *codemap.Node) bool
}

var _ MapSelection = (*codemap.Selection)(nil)

type Visibility int

const (
	Visible Visibility = iota
	HiddenByFilter
	HiddenByFolding
	Unknown
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case HiddenByFilter:
		return "hidden by filter"
	case HiddenByFolding:
		return "hidden by folding"
	default:
		return "unknown"
	}
}

// DependencySelection decides which dependencies are drawn between the
// visible nodes of a map. It reads the selection once at construction; build
// a new one whenever the view changes.
type DependencySelection struct {
	sel         MapSelection
	m           *codemap.Map
	filter      *codemap.Filter
	lead        *codemap.Node
	selected    map[*codemap.Node]bool
	reduced     []*codemap.Node
	showOutside bool
}

func New(sel MapSelection, showsOutsideDependencies bool) *DependencySelection {
	nodes := sel.Selected()
	ds := &DependencySelection{
		sel:         sel,
		m:           sel.Map(),
		filter:      sel.Filter(),
		selected:    make(map[*codemap.Node]bool, len(nodes)),
		reduced:     codemap.ReduceToAncestors(nodes),
		showOutside: showsOutsideDependencies,
	}
	if len(nodes) > 0 {
		ds.lead = nodes[0]
	}
	for _, n := range nodes {
		ds.selected[n] = true
	}
	return ds
}

func (ds *DependencySelection) ShowsOutsideDependencies() bool { return ds.showOutside }

// SelectedDependencies returns the dependencies of the selected subtrees that
// connect two different visible nodes, each (origin, target) pair once.
func (ds *DependencySelection) SelectedDependencies() []*analysis.Dependency {
	seen := make(map[analysis.DependencyKey]bool)
	var deps []*analysis.Dependency
	add := func(candidates []*analysis.Dependency) {
		for _, d := range candidates {
			if seen[d.Key()] || !ds.ConnectsDifferentElements(d) {
				continue
			}
			seen[d.Key()] = true
			deps = append(deps, d)
		}
	}
	for _, n := range ds.reduced {
		add(n.OutgoingDependenciesWithKnownTargets())
		add(n.IncomingDependenciesWithKnownTargets())
	}
	return deps
}

// SelectedClasses returns the origins of outgoing and the targets of
// incoming dependencies of the selected subtrees.
func (ds *DependencySelection) SelectedClasses() []*analysis.Class {
	seen := make(map[*analysis.Class]bool)
	var classes []*analysis.Class
	add := func(c *analysis.Class) {
		if !seen[c] {
			seen[c] = true
			classes = append(classes, c)
		}
	}
	for _, n := range ds.reduced {
		for _, d := range n.OutgoingDependenciesWithKnownTargets() {
			add(d.Origin)
		}
		for _, d := range n.IncomingDependenciesWithKnownTargets() {
			add(d.Target)
		}
	}
	return classes
}

// VisibleNodeID returns the id of the visible node standing for class c.
func (ds *DependencySelection) VisibleNodeID(c *analysis.Class) (string, bool) {
	return ds.nodeID(c, true)
}

// ExistingNodeID returns the id of the innermost node standing for class c,
// visible or not.
func (ds *DependencySelection) ExistingNodeID(c *analysis.Class) (string, bool) {
	return ds.nodeID(c, false)
}

func (ds *DependencySelection) ExistingNode(c *analysis.Class) (*codemap.Node, bool) {
	id, ok := ds.ExistingNodeID(c)
	if !ok {
		return nil, false
	}
	return ds.m.Node(id)
}

func (ds *DependencySelection) nodeID(c *analysis.Class, visibleOnly bool) (string, bool) {
	named := c.EnclosingNamedClass()
	pkg := named.Package()
	for _, id := range []string{named.Name(), codemap.ClassesNodeID(pkg.Name())} {
		if !visibleOnly {
			if _, ok := ds.m.Node(id); ok {
				return id, true
			}
			continue
		}
		switch ds.VisibilityOf(id) {
		case Visible:
			return id, true
		case HiddenByFilter:
			return "", false
		}
	}
	return ds.containingPackageID(pkg, visibleOnly)
}

func (ds *DependencySelection) containingPackageID(pkg *analysis.Package, visibleOnly bool) (string, bool) {
	for {
		if n, ok := ds.m.Node(pkg.Name()); ok {
			if !visibleOnly || ds.sel.IsVisible(n) {
				return n.ID(), true
			}
			if !n.IsVisible(ds.filter) {
				return "", false
			}
		}
		parent, ok := pkg.Parent()
		if !ok {
			return "", false
		}
		pkg = parent
	}
}

// VisibilityOf classifies the node with the given id.
func (ds *DependencySelection) VisibilityOf(id string) Visibility {
	n, ok := ds.m.Node(id)
	switch {
	case !ok:
		return Unknown
	case ds.sel.IsVisible(n):
		return Visible
	case !n.IsVisible(ds.filter):
		return HiddenByFilter
	default:
		return HiddenByFolding
	}
}

// ConnectsDifferentElements reports whether d is drawn between two different
// visible nodes under the current selection.
func (ds *DependencySelection) ConnectsDifferentElements(d *analysis.Dependency) bool {
	originID, ok := ds.VisibleNodeID(d.Origin)
	if !ok {
		return false
	}
	targetID, ok := ds.VisibleNodeID(d.Target)
	if !ok || originID == targetID {
		return false
	}
	if len(ds.selected) == 1 || ds.showOutside {
		return true
	}
	origin, _ := ds.m.Node(originID)
	selectedOrigin := ds.selectedAncestorOrSelf(origin)
	if selectedOrigin == nil {
		return false
	}
	target, _ := ds.m.Node(targetID)
	selectedTarget := ds.selectedAncestorOrSelf(target)
	return selectedTarget != nil && selectedTarget != selectedOrigin &&
		(!target.IsDescendantOf(selectedOrigin) || !origin.IsDescendantOf(selectedTarget))
}

// IsConnectorSelected reports whether the connector drawn from source to
// target belongs to the selection and should be highlighted.
func (ds *DependencySelection) IsConnectorSelected(source, target *codemap.Node) bool {
	onlyOne := len(ds.selected) == 1
	if onlyOne && ds.lead.IsRoot() {
		return false
	}
	selectedSource := ds.selectedAncestorOrSelf(source)
	outside := onlyOne || ds.showOutside
	if outside && selectedSource != nil {
		return !target.IsDescendantOf(selectedSource)
	}
	selectedTarget := ds.selectedAncestorOrSelf(target)
	if outside {
		return selectedTarget != nil && !source.IsDescendantOf(selectedTarget)
	}
	if selectedSource != nil && selectedTarget != nil {
		return selectedSource != selectedTarget
	}
	return false
}

// VisibleAncestorOrSelf returns n or its closest visible ancestor.
func (ds *DependencySelection) VisibleAncestorOrSelf(n *codemap.Node) *codemap.Node {
	for n != nil && !ds.sel.IsVisible(n) {
		n = n.Parent()
	}
	return n
}

func (ds *DependencySelection) selectedAncestorOrSelf(n *codemap.Node) *codemap.Node {
	for n != nil && !ds.selected[n] {
		n = n.Parent()
	}
	return n
}
