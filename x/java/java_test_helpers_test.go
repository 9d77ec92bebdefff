package java_test

import (
	"path/filepath"
	"testing"

	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/parser"
	"github.com/CodMac/go-code-explorer/x/java"
	"github.com/stretchr/testify/require"
)

var testFiles = []string{
	filepath.Join("testdata", "com", "example", "model", "Box.java"),
	filepath.Join("testdata", "com", "example", "model", "Entity.java"),
	filepath.Join("testdata", "com", "example", "model", "User.java"),
	filepath.Join("testdata", "com", "example", "service", "Audited.java"),
	filepath.Join("testdata", "com", "example", "service", "Registry.java"),
	filepath.Join("testdata", "com", "example", "service", "UserService.java"),
}

func testFile(name string) string {
	for _, f := range testFiles {
		if filepath.Base(f) == name {
			return f
		}
	}
	return ""
}

// runPhase1Collection parses and collects the definitions of files.
func runPhase1Collection(t *testing.T, files []string) *core.GlobalContext {
	t.Helper()
	gc := core.NewGlobalContext(java.NewJavaSymbolResolver())
	javaParser, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer javaParser.Close()

	col := java.NewJavaCollector()
	for _, file := range files {
		tree, src, err := javaParser.ParseFile(file)
		require.NoError(t, err, file)

		fCtx, err := col.CollectDefinitions(tree.RootNode(), file, src)
		tree.Close()
		require.NoError(t, err, file)
		gc.RegisterFileContext(fCtx)
	}
	return gc
}

// runPhase2Extraction extracts the relations of files against gc.
func runPhase2Extraction(t *testing.T, gc *core.GlobalContext, files []string) []*model.DependencyRelation {
	t.Helper()
	javaParser, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer javaParser.Close()

	ext := java.NewJavaExtractor()
	var relations []*model.DependencyRelation
	for _, file := range files {
		tree, src, err := javaParser.ParseFile(file)
		require.NoError(t, err, file)

		rels, err := ext.Extract(tree.RootNode(), file, src, gc)
		tree.Close()
		require.NoError(t, err, file)
		relations = append(relations, rels...)
	}
	return relations
}

func hasRelation(relations []*model.DependencyRelation, depType model.DependencyType, source, target string) bool {
	for _, rel := range relations {
		if rel.Type == depType && rel.Source.QualifiedName == source && rel.Target.QualifiedName == target {
			return true
		}
	}
	return false
}
