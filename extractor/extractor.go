package extractor

import (
	"fmt"

	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Extractor extracts the dependency relations of one file (phase 2). It needs
// the GlobalContext built by phase 1 to resolve names across files.
type Extractor interface {
	Extract(rootNode *sitter.Node, filePath string, sourceBytes []byte, gc *core.GlobalContext) ([]*model.DependencyRelation, error)
}

var extractorMap = make(map[model.Language]Extractor)

func RegisterExtractor(lang model.Language, extractor Extractor) {
	extractorMap[lang] = extractor
}

func GetExtractor(lang model.Language) (Extractor, error) {
	ext, ok := extractorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for language: %s", lang)
	}
	return ext, nil
}
