package java

import (
	"strings"

	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Collector struct{}

func NewJavaCollector() *Collector {
	return &Collector{}
}

func (c *Collector) CollectDefinitions(rootNode *sitter.Node, filePath string, sourceBytes []byte) (*core.FileContext, error) {
	fCtx := core.NewFileContext(filePath)

	// package and imports first, type names depend on the package
	c.processTopLevelDeclarations(rootNode, fCtx, sourceBytes)

	walkTypes(rootNode, sourceBytes, fCtx.PackageName, func(decl *typeDecl) {
		fCtx.AddDefinition(&model.CodeElement{
			Kind:          decl.Kind,
			Name:          decl.Name,
			QualifiedName: decl.QN,
			Path:          filePath,
			Anonymous:     decl.Anonymous,
			Location:      nodeToLocation(decl.Node, filePath),
		}, decl.ParentQN)
	})

	return fCtx, nil
}

func (c *Collector) processTopLevelDeclarations(root *sitter.Node, fCtx *core.FileContext, sourceBytes []byte) {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		case "package_declaration":
			for j := uint(0); j < child.NamedChildCount(); j++ {
				sub := child.NamedChild(j)
				if sub.Kind() == "scoped_identifier" || sub.Kind() == "identifier" {
					fCtx.PackageName = sub.Utf8Text(sourceBytes)
					break
				}
			}
		case "import_declaration":
			c.handleImport(child, fCtx, sourceBytes)
		}
	}
}

func (c *Collector) handleImport(node *sitter.Node, fCtx *core.FileContext, sourceBytes []byte) {
	isStatic := false
	var pathParts []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "static":
			isStatic = true
		case "scoped_identifier", "identifier", "asterisk":
			pathParts = append(pathParts, child.Utf8Text(sourceBytes))
		}
	}

	if len(pathParts) == 0 {
		return
	}

	fullPath := strings.Join(pathParts, ".")
	entry := &core.ImportEntry{
		RawImportPath: fullPath,
		IsStatic:      isStatic,
		IsWildcard:    pathParts[len(pathParts)-1] == "*",
		Location:      nodeToLocation(node, fCtx.FilePath),
	}

	if entry.IsWildcard {
		entry.Alias = "*"
	} else {
		entry.Alias = fullPath[strings.LastIndex(fullPath, ".")+1:]
	}
	fCtx.AddImport(entry.Alias, entry)
}
