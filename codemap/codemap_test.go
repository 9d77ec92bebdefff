package codemap_test

import (
	"regexp"
	"testing"

	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/codemap"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph(t *testing.T) *analysis.Graph {
	t.Helper()
	g := analysis.NewGraph()
	foo := g.AddClass("org.acme.a.Foo")
	g.AddClass("org.acme.a.Foo$Inner", analysis.WithEnclosing(foo))
	g.AddClass("org.acme.b.Bar")
	g.AddClass("org.acme.b.Baz")
	g.AddClass("org.acme.b.sub.Qux")
	g.AddPackage("org.acme.empty")

	for _, d := range [][2]string{
		{"org.acme.a.Foo$Inner", "org.acme.b.Bar"},
		{"org.acme.b.Bar", "org.acme.a.Foo"},
		{"org.acme.b.Baz", "org.acme.b.Bar"},
		{"org.acme.b.sub.Qux", "org.acme.a.Foo"},
	} {
		_, err := g.AddDependency(d[0], d[1], model.Use, nil)
		require.NoError(t, err)
	}
	return g
}

func mustNode(t *testing.T, m *codemap.Map, id string) *codemap.Node {
	t.Helper()
	n, ok := m.Node(id)
	require.True(t, ok, "no node %s", id)
	return n
}

func childIDs(n *codemap.Node) []string {
	var ids []string
	for _, c := range n.Children() {
		ids = append(ids, c.ID())
	}
	return ids
}

func TestBuild(t *testing.T) {
	m := codemap.Build(testGraph(t), "acme")

	root := m.Root()
	assert.True(t, root.IsRoot())
	assert.Equal(t, codemap.RootNode, root.Kind())
	assert.Equal(t, []string{"org.acme"}, childIDs(root))

	t.Run("collapses package chains", func(t *testing.T) {
		n := mustNode(t, m, "org.acme")
		assert.Equal(t, "org.acme", n.Text())
		assert.Equal(t, codemap.PackageNode, n.Kind())
		assert.Equal(t, []string{"org.acme.a", "org.acme.b"}, childIDs(n))
		_, ok := m.Node("org")
		assert.False(t, ok)
		_, ok = m.Node("org.acme.empty")
		assert.False(t, ok, "packages without classes have no node")
	})

	t.Run("class group nodes", func(t *testing.T) {
		b := mustNode(t, m, "org.acme.b")
		assert.Equal(t, []string{"org.acme.b.package", "org.acme.b.sub"}, childIDs(b))
		assert.Equal(t, "sub", mustNode(t, m, "org.acme.b.sub").Text())

		group := mustNode(t, m, "org.acme.b.package")
		assert.Equal(t, codemap.ClassesNode, group.Kind())
		assert.Equal(t, []string{"org.acme.b.Bar", "org.acme.b.Baz"}, childIDs(group))
	})

	t.Run("nested classes belong to their top-level class node", func(t *testing.T) {
		foo := mustNode(t, m, "org.acme.a.Foo")
		assert.Equal(t, codemap.ClassNode, foo.Kind())
		assert.Equal(t, "Foo", foo.Text())
		assert.Equal(t, 4, foo.Depth())
		assert.Len(t, foo.Classes(), 2)
		_, ok := m.Node("org.acme.a.Foo$Inner")
		assert.False(t, ok)

		assert.Len(t, foo.OutgoingDependenciesWithKnownTargets(), 1)
		assert.Len(t, foo.IncomingDependenciesWithKnownTargets(), 2)
	})

	t.Run("aggregated dependencies", func(t *testing.T) {
		assert.Len(t, mustNode(t, m, "org.acme.b.package").OutgoingDependenciesWithKnownTargets(), 2)
		assert.Len(t, mustNode(t, m, "org.acme.b").OutgoingDependenciesWithKnownTargets(), 3)
		assert.Len(t, m.Root().OutgoingDependenciesWithKnownTargets(), 4)
	})
}

func TestBuild_DefaultPackage(t *testing.T) {
	g := analysis.NewGraph()
	g.AddClass("Main")
	g.AddClass("org.acme.App")
	m := codemap.Build(g, "demo")

	assert.Equal(t, []string{".package", "org.acme"}, childIDs(m.Root()))
	assert.Equal(t, []string{"Main"}, childIDs(mustNode(t, m, ".package")))
	assert.Equal(t, []string{"org.acme.package"}, childIDs(mustNode(t, m, "org.acme")))
}

func TestBuild_ProjectNamedLikePackage(t *testing.T) {
	g := analysis.NewGraph()
	g.AddClass("acme.X")
	g.AddClass("acme.api.Y")
	g.AddClass("other.Z")
	_, err := g.AddDependency("acme.X", "other.Z", model.Use, nil)
	require.NoError(t, err)
	m := codemap.Build(g, "acme")

	root := m.Root()
	assert.Equal(t, "acme (project)", root.ID())
	assert.Equal(t, "acme", root.Text())
	assert.Same(t, root, mustNode(t, m, root.ID()))

	pkg := mustNode(t, m, "acme")
	assert.Equal(t, codemap.PackageNode, pkg.Kind())
	assert.False(t, pkg.IsRoot())
	assert.Equal(t, []string{"acme", "other"}, childIDs(root))

	assert.ErrorIs(t, m.Fold(root.ID()), codemap.ErrCannotFoldRoot)
	require.NoError(t, m.Fold("acme"))
	assert.True(t, pkg.IsFolded())
}

func TestIsDescendantOf(t *testing.T) {
	m := codemap.Build(testGraph(t), "acme")
	qux := mustNode(t, m, "org.acme.b.sub.Qux")

	assert.True(t, qux.IsDescendantOf(mustNode(t, m, "org.acme.b")))
	assert.True(t, qux.IsDescendantOf(m.Root()))
	assert.False(t, qux.IsDescendantOf(qux))
	assert.False(t, qux.IsDescendantOf(mustNode(t, m, "org.acme.a")))
}

func TestFolding(t *testing.T) {
	m := codemap.Build(testGraph(t), "acme")

	assert.ErrorIs(t, m.Fold("acme"), codemap.ErrCannotFoldRoot)
	assert.ErrorIs(t, m.Fold("org.acme.x"), codemap.ErrNodeNotFound)
	assert.ErrorIs(t, m.Unfold("org.acme.x"), codemap.ErrNodeNotFound)

	require.NoError(t, m.Fold("org.acme.a.Foo"))
	assert.False(t, mustNode(t, m, "org.acme.a.Foo").IsFolded(), "leaves do not fold")

	require.NoError(t, m.Fold("org.acme.b"))
	assert.True(t, mustNode(t, m, "org.acme.b").IsFolded())
	require.NoError(t, m.Unfold("org.acme.b"))
	assert.False(t, mustNode(t, m, "org.acme.b").IsFolded())

	m.FoldToDepth(2)
	assert.False(t, mustNode(t, m, "org.acme").IsFolded())
	assert.True(t, mustNode(t, m, "org.acme.a").IsFolded())
	assert.True(t, mustNode(t, m, "org.acme.b.sub").IsFolded())

	m.FoldToDepth(0)
	m.Walk(func(n *codemap.Node) bool {
		assert.False(t, n.IsFolded(), n.ID())
		return true
	})
}

func TestFilter(t *testing.T) {
	m := codemap.Build(testGraph(t), "acme")
	b, bar, qux := mustNode(t, m, "org.acme.b"), mustNode(t, m, "org.acme.b.Bar"), mustNode(t, m, "org.acme.b.sub.Qux")

	var none *codemap.Filter
	assert.True(t, none.Accepts(bar))

	text := codemap.NewFilter(codemap.TextContains("BA"), codemap.FilterOptions{})
	assert.True(t, text.Accepts(bar))
	assert.False(t, text.Accepts(b))
	assert.True(t, text.Accepts(m.Root()), "the root always passes")

	withAncestors := codemap.NewFilter(codemap.TextContains("ba"), codemap.FilterOptions{ShowAncestors: true})
	assert.True(t, withAncestors.Accepts(b))
	assert.False(t, withAncestors.Accepts(qux))

	pkgB := codemap.IDMatches(regexp.MustCompile(`^org\.acme\.b$`))
	withDescendants := codemap.NewFilter(pkgB, codemap.FilterOptions{ShowDescendants: true})
	assert.True(t, withDescendants.Accepts(qux))
	assert.False(t, withDescendants.Accepts(mustNode(t, m, "org.acme.a.Foo")))

	assert.False(t, codemap.NewFilter(codemap.Not(pkgB), codemap.FilterOptions{}).Accepts(b))
	anyOf := codemap.NewFilter(codemap.Any(pkgB, codemap.TextContains("qux")), codemap.FilterOptions{})
	assert.True(t, anyOf.Accepts(b))
	assert.True(t, anyOf.Accepts(qux))
	assert.False(t, anyOf.Accepts(bar))
}

func TestSelection(t *testing.T) {
	m := codemap.Build(testGraph(t), "acme")

	_, err := codemap.NewSelection(m, nil)
	assert.ErrorIs(t, err, codemap.ErrEmptySelection)
	_, err = codemap.NewSelection(m, nil, "org.acme.b", "nope")
	assert.ErrorIs(t, err, codemap.ErrNodeNotFound)

	sel, err := codemap.NewSelection(m, nil, "org.acme.b", "org.acme.a", "org.acme.b")
	require.NoError(t, err)
	assert.Len(t, sel.Selected(), 2)
	assert.Equal(t, "org.acme.b", sel.Lead().ID())
	assert.True(t, sel.IsSelected(mustNode(t, m, "org.acme.a")))

	require.NoError(t, m.Fold("org.acme.b"))
	assert.True(t, sel.IsVisible(mustNode(t, m, "org.acme.b")))
	assert.False(t, sel.IsVisible(mustNode(t, m, "org.acme.b.Bar")))

	filtered, err := codemap.NewSelection(m, codemap.NewFilter(codemap.TextContains("foo"), codemap.FilterOptions{}), "acme")
	require.NoError(t, err)
	assert.False(t, filtered.IsVisible(mustNode(t, m, "org.acme.a")))
	assert.True(t, filtered.IsVisible(mustNode(t, m, "org.acme.a.Foo")))
}

func TestReduceToAncestors(t *testing.T) {
	m := codemap.Build(testGraph(t), "acme")
	ids := []string{"org.acme.a.Foo", "org.acme.b.sub", "org.acme.a", "org.acme.b.sub.Qux", "org.acme.b.Bar", "org.acme.a"}
	var nodes []*codemap.Node
	for _, id := range ids {
		nodes = append(nodes, mustNode(t, m, id))
	}

	reduced := codemap.ReduceToAncestors(nodes)

	var got []string
	for _, n := range reduced {
		got = append(got, n.ID())
	}
	assert.Equal(t, []string{"org.acme.b.sub", "org.acme.a", "org.acme.b.Bar"}, got)
	for _, x := range reduced {
		for _, y := range reduced {
			assert.False(t, x.IsDescendantOf(y), "%s is nested in %s", x, y)
		}
	}
}
