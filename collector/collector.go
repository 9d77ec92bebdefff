package collector

import (
	"fmt"

	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Collector collects the definitions of one file (phase 1).
type Collector interface {
	// CollectDefinitions walks the syntax tree and returns the file's FileContext.
	CollectDefinitions(rootNode *sitter.Node, filePath string, sourceBytes []byte) (*core.FileContext, error)
}

var collectorMap = make(map[model.Language]Collector)

func RegisterCollector(lang model.Language, collector Collector) {
	collectorMap[lang] = collector
}

func GetCollector(lang model.Language) (Collector, error) {
	collector, ok := collectorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no collector registered for language: %s", lang)
	}

	return collector, nil
}
