package core

import (
	"fmt"

	"github.com/CodMac/go-code-explorer/model"
)

// SymbolResolver holds the language specific naming rules.
type SymbolResolver interface {
	// BuildQualifiedName joins a package or enclosing name with a short name.
	BuildQualifiedName(parentQN, name string) string

	// LookupNames returns every name a definition can be found under
	// (binary and canonical name for Java).
	LookupNames(entry *DefinitionEntry) []string

	// Resolve resolves a symbol seen in fc: local definitions, imports,
	// same package, wildcard imports, then fully qualified names.
	// Called without gc's lock held.
	Resolve(gc *GlobalContext, fc *FileContext, symbol string) []*DefinitionEntry

	// RegisterPackage registers packageName and its parents.
	// Called with gc's write lock held.
	RegisterPackage(gc *GlobalContext, packageName string)
}

var symbolResolverMap = make(map[model.Language]SymbolResolver)

func RegisterSymbolResolver(lang model.Language, resolver SymbolResolver) {
	symbolResolverMap[lang] = resolver
}

func GetSymbolResolver(lang model.Language) (SymbolResolver, error) {
	resolver, ok := symbolResolverMap[lang]
	if !ok {
		return nil, fmt.Errorf("no SymbolResolver for language: %s", lang)
	}

	return resolver, nil
}
