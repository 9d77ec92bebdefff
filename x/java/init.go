package java

import (
	"github.com/CodMac/go-code-explorer/collector"
	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/extractor"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/noisefilter"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

func init() {
	model.RegisterLanguage(model.LangJava, sitter.NewLanguage(tree_sitter_java.Language()))
	collector.RegisterCollector(model.LangJava, NewJavaCollector())
	extractor.RegisterExtractor(model.LangJava, NewJavaExtractor())
	noisefilter.RegisterNoiseFilter(model.LangJava, NewJavaNoiseFilter())
	core.RegisterSymbolResolver(model.LangJava, NewJavaSymbolResolver())
}
