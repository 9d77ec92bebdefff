package output

import "sort"

func sortEdges(edges []ProjectedEdge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.VisibleOrigin != b.VisibleOrigin {
			return a.VisibleOrigin < b.VisibleOrigin
		}
		if a.VisibleTarget != b.VisibleTarget {
			return a.VisibleTarget < b.VisibleTarget
		}
		if a.Origin != b.Origin {
			return a.Origin < b.Origin
		}
		return a.Target < b.Target
	})
}

// connector is the line drawn between two visible nodes; several
// dependencies may share one.
type connector struct {
	source, target string
	selected       bool
	count          int
}

func connectors(edges []ProjectedEdge) []*connector {
	byKey := make(map[[2]string]*connector)
	var out []*connector
	for _, e := range edges {
		key := [2]string{e.VisibleOrigin, e.VisibleTarget}
		c, ok := byKey[key]
		if !ok {
			c = &connector{source: e.VisibleOrigin, target: e.VisibleTarget}
			byKey[key] = c
			out = append(out, c)
		}
		c.selected = c.selected || e.Selected
		c.count++
	}
	return out
}
