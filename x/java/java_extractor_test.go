package java_test

import (
	"testing"

	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/x/java"
	"github.com/stretchr/testify/assert"
)

func TestJavaExtractor_UserService(t *testing.T) {
	gc := runPhase1Collection(t, testFiles)
	file := testFile("UserService.java")
	relations := runPhase2Extraction(t, gc, []string{file})

	const (
		service   = "com.example.service.UserService"
		anonymous = "com.example.service.UserService$1"
		user      = "com.example.model.User"
	)

	cases := []struct {
		name    string
		depType model.DependencyType
		source  string
		target  string
	}{
		{"wildcard import", model.Use, service, user},
		{"instantiation", model.Create, service, user},
		{"cast", model.Cast, service, "com.example.model.Entity"},
		{"annotation", model.Annotation, service, "com.example.service.Audited"},
		{"static call", model.Call, service, "com.example.service.Registry"},
		{"nested type import", model.Use, service, "com.example.model.User$Address"},
		{"unresolved interface", model.Implement, service, "Runnable"},
		{"anonymous class base", model.Extend, anonymous, "Runnable"},
		{"anonymous class body", model.Call, anonymous, "com.example.service.Registry"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, hasRelation(relations, tc.depType, tc.source, tc.target),
				"missing %s %s -> %s", tc.depType, tc.source, tc.target)
		})
	}

	t.Run("anonymous body is not attributed to the enclosing class", func(t *testing.T) {
		calls := 0
		for _, rel := range relations {
			if rel.Type == model.Call && rel.Source.QualifiedName == service && rel.Target.QualifiedName == "com.example.service.Registry" {
				calls++
			}
		}
		assert.Equal(t, 1, calls)
	})
}

func TestJavaExtractor_User(t *testing.T) {
	gc := runPhase1Collection(t, testFiles)
	relations := runPhase2Extraction(t, gc, []string{testFile("User.java")})

	assert.True(t, hasRelation(relations, model.Extend, "com.example.model.User", "com.example.model.Entity"))
	assert.True(t, hasRelation(relations, model.Implement, "com.example.model.User", "Comparable"))
	assert.True(t, hasRelation(relations, model.Use, "com.example.model.User", "com.example.model.User$Address"))
	assert.True(t, hasRelation(relations, model.Create, "com.example.model.User", "ArrayList"))
	assert.True(t, hasRelation(relations, model.Use, "com.example.model.User$Address", "String"))
}

func TestJavaExtractor_TypeParameters(t *testing.T) {
	gc := runPhase1Collection(t, testFiles)
	relations := runPhase2Extraction(t, gc, []string{testFile("Box.java")})

	assert.True(t, hasRelation(relations, model.Use, "com.example.model.Box", "com.example.model.Entity"))
	assert.True(t, hasRelation(relations, model.Use, "com.example.model.Box", "Comparable"))
	for _, rel := range relations {
		assert.NotContains(t, []string{"E", "R", "com.example.model.E", "com.example.model.R"}, rel.Target.QualifiedName)
	}
}

func TestJavaNoiseFilter(t *testing.T) {
	nf := java.NewJavaNoiseFilter()

	for _, qn := range []string{"int", "String", "java.util.List", "javax.inject.Inject", "org.slf4j.Logger"} {
		assert.True(t, nf.IsNoise(qn), qn)
	}
	for _, qn := range []string{"internal.Foo", "com.example.model.User", "Stringy"} {
		assert.False(t, nf.IsNoise(qn), qn)
	}
}
