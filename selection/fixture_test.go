package selection_test

import (
	"testing"

	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/codemap"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/stretchr/testify/require"
)

// buildFixture creates the map
//
//	acme
//	  org.acme
//	    a: Foo (Foo$Inner, Foo$1)
//	    b: Bar, Baz
//	      sub: Qux
//	    c: Cat
func buildFixture(t *testing.T) (*analysis.Graph, *codemap.Map) {
	t.Helper()
	g := analysis.NewGraph()
	foo := g.AddClass("org.acme.a.Foo")
	g.AddClass("org.acme.a.Foo$Inner", analysis.WithEnclosing(foo))
	g.AddClass("org.acme.a.Foo$1", analysis.WithEnclosing(foo), analysis.Anonymous())
	g.AddClass("org.acme.b.Bar")
	g.AddClass("org.acme.b.Baz")
	g.AddClass("org.acme.b.sub.Qux")
	g.AddClass("org.acme.c.Cat")

	deps := []struct {
		origin, target string
		typ            model.DependencyType
	}{
		{"org.acme.a.Foo", "org.acme.b.Bar", model.Use},
		{"org.acme.a.Foo$Inner", "org.acme.b.sub.Qux", model.Use},
		{"org.acme.a.Foo$1", "org.acme.c.Cat", model.Create},
		{"org.acme.b.Bar", "org.acme.a.Foo", model.Extend},
		{"org.acme.b.Baz", "org.acme.b.Bar", model.Use},
		{"org.acme.b.sub.Qux", "org.acme.c.Cat", model.Use},
		{"org.acme.c.Cat", "org.acme.a.Foo", model.Call},
		{"org.acme.a.Foo", "org.acme.a.Foo$Inner", model.Create},
	}
	for _, d := range deps {
		_, err := g.AddDependency(d.origin, d.target, d.typ, nil)
		require.NoError(t, err)
	}
	return g, codemap.Build(g, "acme")
}

func node(t *testing.T, m *codemap.Map, id string) *codemap.Node {
	t.Helper()
	n, ok := m.Node(id)
	require.True(t, ok, "no node %s", id)
	return n
}

func class(t *testing.T, g *analysis.Graph, name string) *analysis.Class {
	t.Helper()
	c, ok := g.Class(name)
	require.True(t, ok, "no class %s", name)
	return c
}

func selectNodes(t *testing.T, m *codemap.Map, filter *codemap.Filter, ids ...string) *codemap.Selection {
	t.Helper()
	sel, err := codemap.NewSelection(m, filter, ids...)
	require.NoError(t, err)
	return sel
}

func keys(deps []*analysis.Dependency) []analysis.DependencyKey {
	out := make([]analysis.DependencyKey, 0, len(deps))
	for _, d := range deps {
		out = append(out, d.Key())
	}
	return out
}

func key(origin, target string) analysis.DependencyKey {
	return analysis.DependencyKey{Origin: origin, Target: target}
}
