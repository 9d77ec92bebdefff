// Package analysis holds the static-analysis view of a code base: classes,
// their packages and the dependencies between them.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/CodMac/go-code-explorer/model"
)

var ErrUnknownClass = errors.New("unknown class")

// Package is a Java package. The root package has the empty name.
type Package struct {
	name        string
	parent      *Package
	subpackages map[string]*Package
	classes     []*Class
}

func (p *Package) Name() string { return p.name }

// Parent returns the enclosing package; the root package has none.
func (p *Package) Parent() (*Package, bool) {
	return p.parent, p.parent != nil
}

func (p *Package) IsRoot() bool { return p.parent == nil }

// Classes returns the classes declared directly in p, nested ones included.
func (p *Package) Classes() []*Class {
	return p.classes
}

// TopLevelClasses returns the named classes of p that have no enclosing class.
func (p *Package) TopLevelClasses() []*Class {
	var top []*Class
	for _, c := range p.classes {
		if c.enclosing == nil {
			top = append(top, c)
		}
	}
	return top
}

func (p *Package) Subpackages() []*Package {
	subs := make([]*Package, 0, len(p.subpackages))
	for _, s := range p.subpackages {
		subs = append(subs, s)
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].name < subs[j].name })
	return subs
}

// HasClasses reports whether p or one of its subpackages declares a class.
func (p *Package) HasClasses() bool {
	if len(p.classes) > 0 {
		return true
	}
	for _, s := range p.subpackages {
		if s.HasClasses() {
			return true
		}
	}
	return false
}

// AllClasses returns the classes of p and all its subpackages.
func (p *Package) AllClasses() []*Class {
	all := append([]*Class(nil), p.classes...)
	for _, s := range p.Subpackages() {
		all = append(all, s.AllClasses()...)
	}
	return all
}

// Class is an analyzed class-like type. Name is the binary name
// (com.example.Outer$Inner, com.example.Outer$1 for anonymous classes).
type Class struct {
	name      string
	pkg       *Package
	enclosing *Class
	anonymous bool
	kind      model.ElementKind
	outgoing  []*Dependency
	incoming  []*Dependency
}

func (c *Class) Name() string            { return c.name }
func (c *Class) Package() *Package       { return c.pkg }
func (c *Class) IsAnonymous() bool       { return c.anonymous }
func (c *Class) Kind() model.ElementKind { return c.kind }

func (c *Class) SimpleName() string {
	return c.name[strings.LastIndexAny(c.name, ".$")+1:]
}

// EnclosingClass returns the class c is declared in, if any.
func (c *Class) EnclosingClass() (*Class, bool) {
	return c.enclosing, c.enclosing != nil
}

// EnclosingNamedClass returns the outermost class containing c, or c itself
// for top-level classes. Nested and anonymous classes are represented by it
// in the code map.
func (c *Class) EnclosingNamedClass() *Class {
	for c.enclosing != nil {
		c = c.enclosing
	}
	return c
}

// Outgoing returns the dependencies originating in c.
func (c *Class) Outgoing() []*Dependency { return c.outgoing }

// Incoming returns the dependencies targeting c.
func (c *Class) Incoming() []*Dependency { return c.incoming }

func (c *Class) String() string { return c.name }

// DependencyKey identifies a dependency by its endpoints.
type DependencyKey struct {
	Origin string
	Target string
}

// Dependency is a directed edge between two analyzed classes.
type Dependency struct {
	Origin   *Class
	Target   *Class
	Type     model.DependencyType
	Location *model.Location
}

func (d *Dependency) Key() DependencyKey {
	return DependencyKey{Origin: d.Origin.name, Target: d.Target.name}
}

func (d *Dependency) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", d.Origin.name, d.Type, d.Target.name)
}

// Graph holds all analyzed classes. Every dependency in a Graph has a known
// origin and a known target.
type Graph struct {
	root         *Package
	packages     map[string]*Package
	classes      map[string]*Class
	dependencies []*Dependency
}

func NewGraph() *Graph {
	root := &Package{subpackages: make(map[string]*Package)}
	return &Graph{
		root:     root,
		packages: map[string]*Package{"": root},
		classes:  make(map[string]*Class),
	}
}

func (g *Graph) RootPackage() *Package { return g.root }

// AddPackage returns the package called name, creating it and its parents.
func (g *Graph) AddPackage(name string) *Package {
	if p, ok := g.packages[name]; ok {
		return p
	}
	parent := g.root
	if i := strings.LastIndex(name, "."); i >= 0 {
		parent = g.AddPackage(name[:i])
	}
	p := &Package{name: name, parent: parent, subpackages: make(map[string]*Package)}
	parent.subpackages[name] = p
	g.packages[name] = p
	return p
}

// ClassOption configures AddClass.
type ClassOption func(*Class)

// WithEnclosing declares the class as nested in enclosing; it then lives in
// the enclosing class's package.
func WithEnclosing(enclosing *Class) ClassOption {
	return func(c *Class) { c.enclosing = enclosing }
}

func Anonymous() ClassOption {
	return func(c *Class) { c.anonymous = true }
}

func WithKind(kind model.ElementKind) ClassOption {
	return func(c *Class) { c.kind = kind }
}

// AddClass registers a class under its binary name. Top-level classes are
// placed in the package derived from the name. Adding a known name returns
// the existing class.
func (g *Graph) AddClass(name string, opts ...ClassOption) *Class {
	if c, ok := g.classes[name]; ok {
		return c
	}
	c := &Class{name: name, kind: model.Class}
	for _, opt := range opts {
		opt(c)
	}
	if c.enclosing != nil {
		c.pkg = c.enclosing.pkg
	} else {
		pkgName := ""
		if i := strings.LastIndex(name, "."); i >= 0 {
			pkgName = name[:i]
		}
		c.pkg = g.AddPackage(pkgName)
	}
	classes := c.pkg.classes
	i := sort.Search(len(classes), func(i int) bool { return classes[i].name >= name })
	c.pkg.classes = append(classes[:i], append([]*Class{c}, classes[i:]...)...)
	g.classes[name] = c
	return c
}

// AddDependency adds an edge between two known classes.
func (g *Graph) AddDependency(origin, target string, depType model.DependencyType, loc *model.Location) (*Dependency, error) {
	o, ok := g.classes[origin]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, origin)
	}
	t, ok := g.classes[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, target)
	}
	d := &Dependency{Origin: o, Target: t, Type: depType, Location: loc}
	o.outgoing = append(o.outgoing, d)
	t.incoming = append(t.incoming, d)
	g.dependencies = append(g.dependencies, d)
	return d, nil
}

func (g *Graph) Class(name string) (*Class, bool) {
	c, ok := g.classes[name]
	return c, ok
}

func (g *Graph) Package(name string) (*Package, bool) {
	p, ok := g.packages[name]
	return p, ok
}

// Classes returns all classes ordered by name.
func (g *Graph) Classes() []*Class {
	classes := make([]*Class, 0, len(g.classes))
	for _, c := range g.classes {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].name < classes[j].name })
	return classes
}

func (g *Graph) Dependencies() []*Dependency { return g.dependencies }

// Outgoing returns the dependencies of c whose targets are known classes.
func (g *Graph) Outgoing(c *Class) []*Dependency { return c.outgoing }

// Incoming returns the dependencies targeting c whose origins are known classes.
func (g *Graph) Incoming(c *Class) []*Dependency { return c.incoming }
