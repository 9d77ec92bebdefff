package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodMac/go-code-explorer/codemap"
)

// ExportMermaid writes the visible part of m and the projected edges as a
// Mermaid flowchart. Package nodes become subgraphs, the other visible nodes
// without visible children become boxes.
func ExportMermaid(w io.Writer, m *codemap.Map, sel *codemap.Selection, edges []ProjectedEdge) error {
	var b strings.Builder
	b.WriteString("graph LR\n")

	var write func(n *codemap.Node, indent string)
	write = func(n *codemap.Node, indent string) {
		var visibleChildren []*codemap.Node
		if !n.IsFolded() {
			for _, c := range n.Children() {
				if sel.IsVisible(c) {
					visibleChildren = append(visibleChildren, c)
				}
			}
		}
		switch {
		case n.IsRoot():
			for _, c := range visibleChildren {
				write(c, indent)
			}
		case len(visibleChildren) == 0:
			fmt.Fprintf(&b, "%s%s[\"%s\"]\n", indent, safeID(n.ID()), label(n))
		default:
			fmt.Fprintf(&b, "%ssubgraph %s[\"%s\"]\n", indent, safeID(n.ID()), label(n))
			for _, c := range visibleChildren {
				write(c, indent+"    ")
			}
			fmt.Fprintf(&b, "%send\n", indent)
		}
	}
	write(m.Root(), "    ")

	for _, c := range connectors(edges) {
		arrow := "-->"
		if c.selected {
			arrow = "==>"
		}
		if c.count > 1 {
			arrow = fmt.Sprintf("%s|%d|", arrow, c.count)
		}
		fmt.Fprintf(&b, "    %s %s %s\n", safeID(c.source), arrow, safeID(c.target))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ExportMermaidHTML wraps ExportMermaid in a page that renders it with
// Mermaid.js.
func ExportMermaidHTML(w io.Writer, m *codemap.Map, sel *codemap.Selection, edges []ProjectedEdge) error {
	if _, err := io.WriteString(w, htmlHead); err != nil {
		return err
	}
	if err := ExportMermaid(w, m, sel, edges); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlTail)
	return err
}

func label(n *codemap.Node) string {
	text := strings.ReplaceAll(n.Text(), "\"", "#quot;")
	if n.IsFolded() {
		return text + " +"
	}
	return text
}

// safeID makes a node id usable as a Mermaid id. ASCII letters and digits
// are kept, dots become "__" and every other rune becomes "_<hex>_", so
// distinct node ids never share a Mermaid id.
func safeID(id string) string {
	var b strings.Builder
	b.WriteString("n_")
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			b.WriteString("__")
		default:
			fmt.Fprintf(&b, "_%x_", r)
		}
	}
	return b.String()
}

const htmlHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Code Explorer Dependencies</title>
    <script src="https://cdn.jsdelivr.net/npm/mermaid/dist/mermaid.min.js"></script>
    <style>
        body { font-family: -apple-system, sans-serif; background: #f0f2f5; margin: 20px; }
        .mermaid { background: white; padding: 20px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.1); }
    </style>
</head>
<body>
    <div class="mermaid">
`

const htmlTail = `    </div>
    <script>
        mermaid.initialize({
            startOnLoad: true,
            maxTextSize: 100000,
            flowchart: { useMaxWidth: false, htmlLabels: true }
        });
    </script>
</body>
</html>
`
