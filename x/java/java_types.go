package java

import (
	"strconv"

	"github.com/CodMac/go-code-explorer/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// typeDecl is a type declared in a file: a named class-like declaration or
// an anonymous class body.
type typeDecl struct {
	Node      *sitter.Node // declaration node, object_creation_expression for anonymous classes
	Body      *sitter.Node // class body of an anonymous class
	Name      string
	QN        string // binary name: pkg.Outer$Inner, pkg.Outer$1
	ParentQN  string
	Kind      model.ElementKind
	Anonymous bool
}

var typeDeclarationKinds = map[string]model.ElementKind{
	"class_declaration":           model.Class,
	"interface_declaration":       model.Interface,
	"enum_declaration":            model.Enum,
	"record_declaration":          model.Record,
	"annotation_type_declaration": model.KAnnotation,
}

// walkTypes visits the type declarations below root in source order.
// Collector and extractor both name types through it, so anonymous class
// numbering is identical in both phases.
func walkTypes(root *sitter.Node, source []byte, packageName string, visit func(*typeDecl)) {
	w := &typeWalker{source: source, pkg: packageName, visit: visit, anonymous: make(map[string]int)}
	w.walk(root, "")
}

type typeWalker struct {
	source    []byte
	pkg       string
	visit     func(*typeDecl)
	anonymous map[string]int // enclosing binary name -> anonymous classes seen
}

func (w *typeWalker) walk(node *sitter.Node, parentQN string) {
	if node == nil {
		return
	}

	if kind, ok := typeDeclarationKinds[node.Kind()]; ok {
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			return
		}
		name := nameNode.Utf8Text(w.source)
		decl := &typeDecl{
			Node:     node,
			Name:     name,
			QN:       w.binaryName(parentQN, name),
			ParentQN: parentQN,
			Kind:     kind,
		}
		w.visit(decl)
		w.walkChildren(node, decl.QN)
		return
	}

	if node.Kind() == "object_creation_expression" && parentQN != "" {
		if body := childOfKind(node, "class_body"); body != nil {
			w.anonymous[parentQN]++
			decl := &typeDecl{
				Node:      node,
				Body:      body,
				Name:      strconv.Itoa(w.anonymous[parentQN]),
				ParentQN:  parentQN,
				Kind:      model.Class,
				Anonymous: true,
			}
			decl.QN = parentQN + "$" + decl.Name
			for i := uint(0); i < node.NamedChildCount(); i++ {
				child := node.NamedChild(i)
				if child.Kind() != "class_body" {
					w.walk(child, parentQN)
				}
			}
			w.visit(decl)
			w.walkChildren(body, decl.QN)
			return
		}
	}

	w.walkChildren(node, parentQN)
}

func (w *typeWalker) walkChildren(node *sitter.Node, parentQN string) {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		w.walk(node.NamedChild(i), parentQN)
	}
}

func (w *typeWalker) binaryName(parentQN, name string) string {
	if parentQN != "" {
		return parentQN + "$" + name
	}
	if w.pkg == "" {
		return name
	}
	return w.pkg + "." + name
}

func childOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Kind() == b.Kind()
}

func nodeToLocation(n *sitter.Node, filePath string) *model.Location {
	if n == nil {
		return nil
	}
	return &model.Location{
		FilePath:    filePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}
