package core

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/CodMac/go-code-explorer/model"
)

type DefinitionEntry struct {
	Element  *model.CodeElement
	ParentQN string // binary name of the enclosing type, "" for top-level types
	Package  string
}

type ImportEntry struct {
	RawImportPath string          `json:"RawImportPath"`
	Alias         string          `json:"Alias"`
	IsStatic      bool            `json:"IsStatic"`
	IsWildcard    bool            `json:"IsWildcard"`
	Location      *model.Location `json:"Location,omitempty"`
}

// FileContext holds what phase 1 learned about a single file.
type FileContext struct {
	FilePath        string
	PackageName     string
	DefinitionsBySN map[string][]*DefinitionEntry // short name -> definitions
	Imports         map[string][]*ImportEntry     // alias -> imports, wildcard imports under "*"
	mutex           sync.RWMutex
}

func NewFileContext(filePath string) *FileContext {
	return &FileContext{
		FilePath:        filePath,
		DefinitionsBySN: make(map[string][]*DefinitionEntry),
		Imports:         make(map[string][]*ImportEntry),
	}
}

func (fc *FileContext) AddDefinition(elem *model.CodeElement, parentQN string) *DefinitionEntry {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()

	entry := &DefinitionEntry{Element: elem, ParentQN: parentQN, Package: fc.PackageName}
	fc.DefinitionsBySN[elem.Name] = append(fc.DefinitionsBySN[elem.Name], entry)
	return entry
}

func (fc *FileContext) AddImport(alias string, imp *ImportEntry) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.Imports[alias] = append(fc.Imports[alias], imp)
}

// Definitions returns every definition of the file ordered by qualified name.
func (fc *FileContext) Definitions() []*DefinitionEntry {
	fc.mutex.RLock()
	defer fc.mutex.RUnlock()

	var defs []*DefinitionEntry
	for _, entries := range fc.DefinitionsBySN {
		defs = append(defs, entries...)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Element.QualifiedName < defs[j].Element.QualifiedName
	})
	return defs
}

// GlobalContext merges all FileContexts for cross-file name resolution.
type GlobalContext struct {
	FileContexts    map[string]*FileContext
	DefinitionsByQN map[string][]*DefinitionEntry // binary and canonical names -> definitions
	Packages        map[string]*model.CodeElement
	resolver        SymbolResolver
	mutex           sync.RWMutex
}

func NewGlobalContext(resolver SymbolResolver) *GlobalContext {
	return &GlobalContext{
		FileContexts:    make(map[string]*FileContext),
		DefinitionsByQN: make(map[string][]*DefinitionEntry),
		Packages:        make(map[string]*model.CodeElement),
		resolver:        resolver,
	}
}

// RegisterFileContext adds fc and its definitions to the global tables.
func (gc *GlobalContext) RegisterFileContext(fc *FileContext) {
	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	gc.FileContexts[fc.FilePath] = fc

	gc.DefinitionsByQN[fc.FilePath] = []*DefinitionEntry{{Element: &model.CodeElement{
		Kind:          model.File,
		Name:          filepath.Base(fc.FilePath),
		QualifiedName: fc.FilePath,
		Path:          fc.FilePath,
	}}}

	gc.resolver.RegisterPackage(gc, fc.PackageName)

	for _, entries := range fc.DefinitionsBySN {
		for _, entry := range entries {
			for _, qn := range gc.resolver.LookupNames(entry) {
				gc.DefinitionsByQN[qn] = append(gc.DefinitionsByQN[qn], entry)
			}
		}
	}
}

// ResolveSymbol resolves symbol as seen from inside fc.
func (gc *GlobalContext) ResolveSymbol(fc *FileContext, symbol string) []*DefinitionEntry {
	return gc.resolver.Resolve(gc, fc, symbol)
}

func (gc *GlobalContext) BuildQualifiedName(parentQN, name string) string {
	return gc.resolver.BuildQualifiedName(parentQN, name)
}

// Lookup returns the definitions registered under qn.
func (gc *GlobalContext) Lookup(qn string) []*DefinitionEntry {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()
	return gc.DefinitionsByQN[qn]
}

// TypeDefinitions returns every collected type definition ordered by binary name.
func (gc *GlobalContext) TypeDefinitions() []*DefinitionEntry {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()

	seen := make(map[*DefinitionEntry]bool)
	var defs []*DefinitionEntry
	for _, entries := range gc.DefinitionsByQN {
		for _, entry := range entries {
			if entry.Element.Kind.IsType() && !seen[entry] {
				seen[entry] = true
				defs = append(defs, entry)
			}
		}
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Element.QualifiedName < defs[j].Element.QualifiedName
	})
	return defs
}

func (gc *GlobalContext) RLock() { gc.mutex.RLock() }

func (gc *GlobalContext) RUnlock() { gc.mutex.RUnlock() }
