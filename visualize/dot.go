package visualize

import (
	"fmt"
	"io"

	"github.com/katalvlaran/flowgraph/core"
)

func kindLabel(k core.VertexKind) string {
	switch k {
	case core.VertexSource:
		return "source"
	case core.VertexTransformer:
		return "transformer"
	case core.VertexEstimator:
		return "estimator"
	case core.VertexDelegatingTransformer:
		return "delegating"
	default:
		return "unknown"
	}
}

func kindShape(k core.VertexKind) string {
	switch k {
	case core.VertexSource:
		return "ellipse"
	case core.VertexEstimator:
		return "diamond"
	default:
		return "box"
	}
}

// WriteDOT renders snap as a Graphviz digraph, emitting vertices in
// order (typically dfs.TopologicalSort's result, for a deterministic
// top-to-bottom layout) and edges in snap.Edges()'s (From, To) order.
// Fit-dependency edges are drawn dashed; data-dependency edges solid.
func WriteDOT(w io.Writer, snap *core.Graph, order []string) error {
	vertices := make(map[string]*core.Vertex, len(order))
	for _, v := range snap.Vertices() {
		vertices[v.ID] = v
	}

	stats := snap.Stats()
	if _, err := fmt.Fprintf(w, "// vertices=%d edges=%d (data=%d fit=%d)\n",
		stats.VertexCount, stats.EdgeCount, stats.DataEdges, stats.FitEdges); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "digraph flowgraph {"); err != nil {
		return err
	}

	for _, id := range order {
		v, ok := vertices[id]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s (%s)", v.ID, kindLabel(v.Kind))
		if _, err := fmt.Fprintf(w, "\t%q [label=%q shape=%s];\n", id, label, kindShape(v.Kind)); err != nil {
			return err
		}
	}

	for _, e := range snap.Edges() {
		style := "solid"
		if e.Kind == core.EdgeFit {
			style = "dashed"
		}
		if _, err := fmt.Fprintf(w, "\t%q -> %q [style=%s];\n", e.From, e.To, style); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")

	return err
}
