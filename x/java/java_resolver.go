package java

import (
	"strings"

	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
)

type SymbolResolver struct{}

func NewJavaSymbolResolver() *SymbolResolver {
	return &SymbolResolver{}
}

func (j *SymbolResolver) BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" || parentQN == "." {
		return name
	}
	return parentQN + "." + name
}

// LookupNames registers named types under their binary name and their
// canonical name (pkg.Outer.Inner).
func (j *SymbolResolver) LookupNames(entry *core.DefinitionEntry) []string {
	qn := entry.Element.QualifiedName
	if entry.Element.Anonymous || !strings.Contains(qn, "$") {
		return []string{qn}
	}
	return []string{qn, strings.ReplaceAll(qn, "$", ".")}
}

func (j *SymbolResolver) RegisterPackage(gc *core.GlobalContext, packageName string) {
	if packageName == "" {
		return
	}
	parts := strings.Split(packageName, ".")
	for i := range parts {
		pkgQN := strings.Join(parts[:i+1], ".")
		if _, ok := gc.Packages[pkgQN]; !ok {
			gc.Packages[pkgQN] = &model.CodeElement{Kind: model.Package, Name: parts[i], QualifiedName: pkgQN}
		}
	}
}

func (j *SymbolResolver) Resolve(gc *core.GlobalContext, fc *core.FileContext, symbol string) []*core.DefinitionEntry {
	gc.RLock()
	defer gc.RUnlock()

	head, rest, qualified := strings.Cut(symbol, ".")
	if !qualified {
		return j.resolveSimple(gc, fc, symbol)
	}

	// Outer.Inner: resolve the head as a type, the rest are member types
	for _, def := range j.resolveSimple(gc, fc, head) {
		nested := def.Element.QualifiedName + "$" + strings.ReplaceAll(rest, ".", "$")
		if defs := typesOnly(gc.DefinitionsByQN[nested]); len(defs) > 0 {
			return defs
		}
	}

	// fully qualified reference
	return typesOnly(gc.DefinitionsByQN[symbol])
}

func (j *SymbolResolver) resolveSimple(gc *core.GlobalContext, fc *core.FileContext, name string) []*core.DefinitionEntry {
	// 1. declared in this file
	if defs := typesOnly(fc.DefinitionsBySN[name]); len(defs) > 0 {
		return defs
	}

	// 2. single type import
	for _, imp := range fc.Imports[name] {
		if imp.IsStatic {
			continue
		}
		if defs := typesOnly(gc.DefinitionsByQN[imp.RawImportPath]); len(defs) > 0 {
			return defs
		}
	}

	// 3. same package
	if defs := typesOnly(gc.DefinitionsByQN[j.BuildQualifiedName(fc.PackageName, name)]); len(defs) > 0 {
		return defs
	}

	// 4. wildcard imports, static ones import member types
	for _, imp := range fc.Imports["*"] {
		basePath := strings.TrimSuffix(imp.RawImportPath, "*")
		if defs := typesOnly(gc.DefinitionsByQN[basePath+name]); len(defs) > 0 {
			return defs
		}
	}

	// 5. default package
	return typesOnly(gc.DefinitionsByQN[name])
}

func typesOnly(entries []*core.DefinitionEntry) []*core.DefinitionEntry {
	var types []*core.DefinitionEntry
	for _, e := range entries {
		if e.Element.Kind.IsType() {
			types = append(types, e)
		}
	}
	return types
}
