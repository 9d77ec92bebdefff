package parser

import (
	"fmt"
	"os"

	"github.com/CodMac/go-code-explorer/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Parser parses one source file into a tree-sitter syntax tree.
type Parser interface {
	// ParseFile returns the syntax tree and the source bytes of filePath.
	// The caller owns the tree and must Close it.
	ParseFile(filePath string) (*sitter.Tree, []byte, error)
	// ParseSource parses in-memory source.
	ParseSource(source []byte) (*sitter.Tree, error)
	Close()
}

// TreeSitterParser is a Parser for one language. It is not safe for
// concurrent use; create one per goroutine.
type TreeSitterParser struct {
	Language model.Language
	tsParser *sitter.Parser
}

// NewParser creates a parser for lang. The grammar must have been registered
// with model.RegisterLanguage.
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := model.GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
	}, nil
}

func (p *TreeSitterParser) ParseFile(filePath string) (*sitter.Tree, []byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	tree, err := p.ParseSource(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return tree, content, nil
}

func (p *TreeSitterParser) ParseSource(source []byte) (*sitter.Tree, error) {
	tree := p.tsParser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter failed to parse %s source", p.Language)
	}
	return tree, nil
}

// Close releases the tree-sitter parser.
func (p *TreeSitterParser) Close() {
	if p.tsParser != nil {
		p.tsParser.Close()
	}
}
