package output

import (
	"encoding/json"
	"io"

	"github.com/CodMac/go-code-explorer/analysis"
	"github.com/CodMac/go-code-explorer/codemap"
	"github.com/CodMac/go-code-explorer/model"
	"github.com/CodMac/go-code-explorer/selection"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		encoder: json.NewEncoder(w),
	}
}

func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

type classRecord struct {
	Record    string            `json:"record"`
	Name      string            `json:"name"`
	Package   string            `json:"package"`
	Kind      model.ElementKind `json:"kind"`
	Enclosing string            `json:"enclosing,omitempty"`
	Anonymous bool              `json:"anonymous,omitempty"`
}

type dependencyRecord struct {
	Record   string               `json:"record"`
	Origin   string               `json:"origin"`
	Target   string               `json:"target"`
	Type     model.DependencyType `json:"type"`
	Location *model.Location      `json:"location,omitempty"`
}

// ExportGraph writes every class of g followed by every dependency, one
// JSON document per line. It returns the number of lines written.
func ExportGraph(w io.Writer, g *analysis.Graph) (int, error) {
	writer := NewJSONLWriter(w)
	count := 0

	for _, c := range g.Classes() {
		rec := classRecord{
			Record:    "class",
			Name:      c.Name(),
			Package:   c.Package().Name(),
			Kind:      c.Kind(),
			Anonymous: c.IsAnonymous(),
		}
		if enclosing, ok := c.EnclosingClass(); ok {
			rec.Enclosing = enclosing.Name()
		}
		if err := writer.Write(rec); err != nil {
			return count, err
		}
		count++
	}

	for _, d := range g.Dependencies() {
		rec := dependencyRecord{
			Record:   "dependency",
			Origin:   d.Origin.Name(),
			Target:   d.Target.Name(),
			Type:     d.Type,
			Location: d.Location,
		}
		if err := writer.Write(rec); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// ProjectedEdge is a selected dependency together with the visible nodes it
// is drawn between.
type ProjectedEdge struct {
	Origin        string               `json:"origin"`
	Target        string               `json:"target"`
	Type          model.DependencyType `json:"type"`
	VisibleOrigin string               `json:"visible_origin"`
	VisibleTarget string               `json:"visible_target"`
	Selected      bool                 `json:"selected"`
}

// Project resolves the selected dependencies of ds to their visible
// endpoints.
func Project(ds *selection.DependencySelection, m *codemap.Map) []ProjectedEdge {
	var edges []ProjectedEdge
	for _, d := range ds.SelectedDependencies() {
		originID, ok := ds.VisibleNodeID(d.Origin)
		if !ok {
			continue
		}
		targetID, ok := ds.VisibleNodeID(d.Target)
		if !ok {
			continue
		}
		edge := ProjectedEdge{
			Origin:        d.Origin.Name(),
			Target:        d.Target.Name(),
			Type:          d.Type,
			VisibleOrigin: originID,
			VisibleTarget: targetID,
		}
		source, sok := m.Node(originID)
		target, tok := m.Node(targetID)
		edge.Selected = sok && tok && ds.IsConnectorSelected(source, target)
		edges = append(edges, edge)
	}
	sortEdges(edges)
	return edges
}

// ExportProjection writes one JSON document per projected edge.
func ExportProjection(w io.Writer, edges []ProjectedEdge) (int, error) {
	writer := NewJSONLWriter(w)
	for i, e := range edges {
		if err := writer.Write(e); err != nil {
			return i, err
		}
	}
	return len(edges), nil
}
