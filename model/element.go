package model

// ElementKind is the kind of a code element.
type ElementKind string

const (
	File    ElementKind = "FILE"    // source file
	Package ElementKind = "PACKAGE" // Java package

	Class       ElementKind = "CLASS"      // class declaration
	Interface   ElementKind = "INTERFACE"  // interface declaration
	Enum        ElementKind = "ENUM"       // enum declaration
	Record      ElementKind = "RECORD"     // record declaration
	KAnnotation ElementKind = "ANNOTATION" // annotation type declaration

	Method ElementKind = "METHOD"
	Field  ElementKind = "FIELD"
	Type   ElementKind = "TYPE" // referenced type whose declaration kind is not known

	Unknown ElementKind = "UNKNOWN"
)

// IsType reports whether k declares a type (and therefore becomes an analysis class).
func (k ElementKind) IsType() bool {
	switch k {
	case Class, Interface, Enum, Record, KAnnotation:
		return true
	}
	return false
}

// Location describes where an element or a relation sits in a source file.
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

// CodeElement is an identifiable entity of the source (relation source or target).
type CodeElement struct {
	Kind          ElementKind `json:"Kind"`                // CLASS, INTERFACE, PACKAGE, ...
	Name          string      `json:"Name"`                // short name, e.g. "Inner"
	QualifiedName string      `json:"QualifiedName"`       // binary name, e.g. "com.example.Outer$Inner"
	Path          string      `json:"Path,omitempty"`      // file the element is declared in
	Anonymous     bool        `json:"Anonymous,omitempty"` // anonymous class body
	Location      *Location   `json:"Location,omitempty"`
}
