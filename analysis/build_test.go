package analysis_test

import (
	"testing"

	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func element(kind model.ElementKind, name, qn string) *model.CodeElement {
	return &model.CodeElement{Kind: kind, Name: name, QualifiedName: qn}
}

func TestFromContext(t *testing.T) {
	gc := core.NewGlobalContext(java.NewJavaSymbolResolver())
	fc := core.NewFileContext("Shop.java")
	fc.PackageName = "org.shop"
	shop := element(model.Class, "Shop", "org.shop.Shop")
	cart := element(model.Class, "Cart", "org.shop.Shop$Cart")
	item := element(model.Record, "Item", "org.shop.Item")
	fc.AddDefinition(shop, "")
	fc.AddDefinition(cart, "org.shop.Shop")
	fc.AddDefinition(item, "")
	gc.RegisterFileContext(fc)

	relations := []*model.DependencyRelation{
		{Type: model.Use, Source: cart, Target: item},
		{Type: model.Create, Source: shop, Target: cart},
		{Type: model.Use, Source: shop, Target: shop},
		{Type: model.Use, Source: shop, Target: element(model.Type, "List", "java.util.List")},
		{Type: model.Use, Source: shop, Target: element(model.Type, "Missing", "Missing")},
		{Type: model.Extend, Source: item, Target: nil},
	}

	g := analysis.FromContext(gc, relations, java.NewJavaNoiseFilter())

	require.Len(t, g.Classes(), 3)
	c, ok := g.Class("org.shop.Shop$Cart")
	require.True(t, ok)
	enclosing, ok := c.EnclosingClass()
	require.True(t, ok)
	assert.Equal(t, "org.shop.Shop", enclosing.Name())

	i, _ := g.Class("org.shop.Item")
	assert.Equal(t, model.Record, i.Kind())

	var keys []analysis.DependencyKey
	for _, d := range g.Dependencies() {
		keys = append(keys, d.Key())
	}
	assert.ElementsMatch(t, []analysis.DependencyKey{
		{Origin: "org.shop.Shop$Cart", Target: "org.shop.Item"},
		{Origin: "org.shop.Shop", Target: "org.shop.Shop$Cart"},
	}, keys)
}

func TestFromContext_DropsNoiseDefinitions(t *testing.T) {
	gc := core.NewGlobalContext(java.NewJavaSymbolResolver())
	fc := core.NewFileContext("List.java")
	fc.PackageName = "java.util"
	fc.AddDefinition(element(model.Interface, "List", "java.util.List"), "")
	gc.RegisterFileContext(fc)

	g := analysis.FromContext(gc, nil, java.NewJavaNoiseFilter())
	assert.Empty(t, g.Classes())
}
