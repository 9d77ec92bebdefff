package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/CodMac/go-code-explorer/x/java"
)

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Hello.java")
	require.NoError(t, os.WriteFile(path, []byte("package demo;\nclass Hello {}\n"), 0o644))

	p, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer p.Close()

	tree, src, err := p.ParseFile(path)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Kind())
	assert.Equal(t, uint(2), root.NamedChildCount())
	assert.Equal(t, "class_declaration", root.NamedChild(1).Kind())
	assert.NotEmpty(t, src)
}

func TestParseFile_Missing(t *testing.T) {
	p, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	defer p.Close()

	_, _, err = p.ParseFile(filepath.Join(t.TempDir(), "Nope.java"))
	assert.Error(t, err)
}

func TestNewParser_UnknownLanguage(t *testing.T) {
	_, err := parser.NewParser(model.Language("cobol"))
	assert.Error(t, err)
}
