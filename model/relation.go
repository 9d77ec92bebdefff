package model

// DependencyType is the kind of a dependency relation.
type DependencyType string

const (
	Import     DependencyType = "IMPORT"     // Import: source file imports the target type.
	Extend     DependencyType = "EXTEND"     // Extend: class extends a base class, or interface extends interface.
	Implement  DependencyType = "IMPLEMENT"  // Implement: class implements interface.
	Create     DependencyType = "CREATE"     // Create: source instantiates the target type.
	Call       DependencyType = "CALL"       // Call: static call through the target type name.
	Cast       DependencyType = "CAST"       // Cast: explicit cast to the target type.
	Annotation DependencyType = "ANNOTATION" // Annotation: source is annotated with the target annotation type.
	Use        DependencyType = "USE"        // Use: any other reference (field, parameter, return, throws, generic argument).
)

// DependencyRelation describes one dependency between a Source and a Target element.
type DependencyRelation struct {
	Type     DependencyType `json:"Type"`
	Source   *CodeElement   `json:"Source"`
	Target   *CodeElement   `json:"Target"`
	Location *Location      `json:"Location"` // where the reference occurs
	Details  string         `json:"Details,omitempty"`
}
