package java

import (
	"fmt"
	"unicode"

	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Extractor extracts class level dependencies: every type referenced from
// the body of a type declaration becomes a relation whose source is that
// type. Nested and anonymous types are sources of their own.
type Extractor struct{}

func NewJavaExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(rootNode *sitter.Node, filePath string, sourceBytes []byte, gc *core.GlobalContext) ([]*model.DependencyRelation, error) {
	gc.RLock()
	fCtx, ok := gc.FileContexts[filePath]
	gc.RUnlock()
	if !ok {
		return nil, fmt.Errorf("failed to get FileContext: %s", filePath)
	}

	relations := make([]*model.DependencyRelation, 0)
	walkTypes(rootNode, sourceBytes, fCtx.PackageName, func(decl *typeDecl) {
		s := &scope{
			gc:     gc,
			fc:     fCtx,
			source: sourceBytes,
			decl:   decl,
			element: &model.CodeElement{
				Kind:          decl.Kind,
				Name:          decl.Name,
				QualifiedName: decl.QN,
				Path:          filePath,
				Anonymous:     decl.Anonymous,
			},
		}
		if decl.Anonymous {
			// new Base() { ... } extends or implements Base
			if typeNode := decl.Node.ChildByFieldName("type"); typeNode != nil {
				s.reference(typeNode, typeName(typeNode, sourceBytes), model.Extend, "Anonymous Class")
			}
			s.collect(decl.Body)
		} else {
			s.collect(decl.Node)
		}
		relations = append(relations, s.relations...)
	})

	return relations, nil
}

// scope collects the references made by one type declaration.
type scope struct {
	gc        *core.GlobalContext
	fc        *core.FileContext
	source    []byte
	decl      *typeDecl
	element   *model.CodeElement
	relations []*model.DependencyRelation
}

func (s *scope) collect(node *sitter.Node) {
	if node == nil {
		return
	}
	kind := node.Kind()

	if _, isDecl := typeDeclarationKinds[kind]; isDecl && !sameNode(node, s.decl.Node) {
		return // nested type, has its own scope
	}

	switch kind {
	case "class_body":
		if parent := node.Parent(); parent != nil && parent.Kind() == "object_creation_expression" && !sameNode(node, s.decl.Body) {
			return // anonymous class body, has its own scope
		}

	case "type_identifier", "scoped_type_identifier":
		if kind == "type_identifier" && isTypeParameter(node, s.source) {
			return
		}
		s.reference(node, node.Utf8Text(s.source), classify(node), "")
		return

	case "marker_annotation", "annotation":
		if name := node.ChildByFieldName("name"); name != nil {
			s.reference(name, name.Utf8Text(s.source), model.Annotation, "")
		}
		if args := node.ChildByFieldName("arguments"); args != nil {
			s.collect(args)
		}
		return

	case "method_invocation":
		if object := node.ChildByFieldName("object"); object != nil && isTypeLikeName(object, s.source) {
			s.reference(object, object.Utf8Text(s.source), model.Call, "Static Call")
		}

	case "field_access":
		if object := node.ChildByFieldName("object"); object != nil && isTypeLikeName(object, s.source) {
			s.reference(object, object.Utf8Text(s.source), model.Use, "Static Field Access")
		}
	}

	for i := uint(0); i < node.NamedChildCount(); i++ {
		s.collect(node.NamedChild(i))
	}
}

// reference records a relation to the type named symbol. Unresolved symbols
// are kept with kind TYPE; the analysis graph drops them later.
func (s *scope) reference(node *sitter.Node, symbol string, depType model.DependencyType, details string) {
	target := &model.CodeElement{Kind: model.Type, Name: symbol, QualifiedName: symbol}
	if defs := s.gc.ResolveSymbol(s.fc, symbol); len(defs) > 0 {
		target = defs[0].Element
	}
	s.relations = append(s.relations, &model.DependencyRelation{
		Type:     depType,
		Source:   s.element,
		Target:   target,
		Location: nodeToLocation(node, s.fc.FilePath),
		Details:  details,
	})
}

// classify derives the dependency type from where a type reference sits.
func classify(node *sitter.Node) model.DependencyType {
	child := node
	parent := node.Parent()
	for parent != nil && (parent.Kind() == "generic_type" || parent.Kind() == "type_list") {
		child, parent = parent, parent.Parent()
	}
	if parent == nil {
		return model.Use
	}
	switch parent.Kind() {
	case "superclass":
		return model.Extend
	case "super_interfaces":
		return model.Implement
	case "extends_interfaces":
		return model.Extend
	case "object_creation_expression":
		if sameNode(parent.ChildByFieldName("type"), child) {
			return model.Create
		}
	case "cast_expression":
		if sameNode(parent.ChildByFieldName("type"), child) {
			return model.Cast
		}
	}
	return model.Use
}

// isTypeParameter reports whether node names a type variable declared by an
// enclosing generic type, method or constructor.
func isTypeParameter(node *sitter.Node, source []byte) bool {
	name := node.Utf8Text(source)
	for p := node.Parent(); p != nil; p = p.Parent() {
		switch p.Kind() {
		case "class_declaration", "interface_declaration", "record_declaration",
			"method_declaration", "constructor_declaration":
		default:
			continue
		}
		params := childOfKind(p, "type_parameters")
		if params == nil {
			continue
		}
		for i := uint(0); i < params.NamedChildCount(); i++ {
			param := params.NamedChild(i)
			if param.Kind() != "type_parameter" {
				continue
			}
			if id := childOfKind(param, "type_identifier"); id != nil && id.Utf8Text(source) == name {
				return true
			}
		}
	}
	return false
}

// isTypeLikeName reports whether an expression looks like a type name used as
// a qualifier (Foo.bar(), pkg.Foo.X): a plain or dotted identifier whose last
// segment starts with an upper case letter.
func isTypeLikeName(node *sitter.Node, source []byte) bool {
	switch node.Kind() {
	case "identifier":
		text := node.Utf8Text(source)
		return text != "" && unicode.IsUpper([]rune(text)[0])
	case "scoped_identifier":
		if name := node.ChildByFieldName("name"); name != nil {
			return isTypeLikeName(name, source)
		}
	}
	return false
}

func typeName(node *sitter.Node, source []byte) string {
	if node.Kind() == "generic_type" {
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child.Kind() == "type_identifier" || child.Kind() == "scoped_type_identifier" {
				return child.Utf8Text(source)
			}
		}
	}
	return node.Utf8Text(source)
}
