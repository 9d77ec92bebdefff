package analysis

import (
	"github.com/CodMac/go-code-explorer/core"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/noisefilter"
)

// FromContext builds a Graph from the result of the analysis phases. Every
// collected type becomes a class; a relation becomes a dependency when both
// ends are collected classes, the target is not noise and the ends differ.
func FromContext(gc *core.GlobalContext, relations []*model.DependencyRelation, nf noisefilter.NoiseFilter) *Graph {
	if nf == nil {
		nf = &noisefilter.DefaultNoiseFilter{}
	}
	g := NewGraph()

	defs := make(map[string]*core.DefinitionEntry)
	for _, def := range gc.TypeDefinitions() {
		if !nf.IsNoise(def.Element.QualifiedName) {
			defs[def.Element.QualifiedName] = def
		}
	}

	var add func(qn string) *Class
	add = func(qn string) *Class {
		if c, ok := g.Class(qn); ok {
			return c
		}
		def := defs[qn]
		opts := []ClassOption{WithKind(def.Element.Kind)}
		if def.Element.Anonymous {
			opts = append(opts, Anonymous())
		}
		if def.ParentQN != "" {
			if _, ok := defs[def.ParentQN]; ok {
				opts = append(opts, WithEnclosing(add(def.ParentQN)))
			}
		}
		return g.AddClass(qn, opts...)
	}
	for qn := range defs {
		add(qn)
	}

	for _, rel := range relations {
		if rel.Source == nil || rel.Target == nil {
			continue
		}
		origin, target := rel.Source.QualifiedName, rel.Target.QualifiedName
		if origin == target || nf.IsNoise(target) {
			continue
		}
		if _, ok := g.Class(origin); !ok {
			continue
		}
		if _, ok := g.Class(target); !ok {
			continue
		}
		_, _ = g.AddDependency(origin, target, rel.Type, rel.Location) // both ends checked above
	}
	return g
}
