package visualize

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/flowgraph/core"
	"github.com/katalvlaran/flowgraph/dfs"
	"github.com/katalvlaran/flowgraph/graph"
)

func nodeVertexID(n graph.NodeID) string { return "n" + strconv.FormatInt(int64(n), 10) }

func sourceVertexID(s graph.SourceID) string { return "s" + strconv.FormatInt(int64(s), 10) }

func refVertexID(r graph.Ref) string {
	if r.IsSource() {
		return sourceVertexID(r.Source)
	}

	return nodeVertexID(r.Node)
}

func vertexKind(k graph.NodeKind) core.VertexKind {
	switch k {
	case graph.KindTransformer:
		return core.VertexTransformer
	case graph.KindEstimator:
		return core.VertexEstimator
	case graph.KindDelegatingTransformer:
		return core.VertexDelegatingTransformer
	default:
		return core.VertexSource
	}
}

// Export snapshots the subgraph of g reachable from sink's data- and
// fit-dependency closure into a *core.Graph. Nodes not on that closure
// are not part of the rendering; a pipeline graph can legally contain
// nodes no sink reaches.
func Export(g *graph.Graph, sink graph.SinkID) (*core.Graph, error) {
	ref, err := g.GetSinkDependency(sink)
	if err != nil {
		return nil, err
	}

	snap := core.NewGraph()
	if err := visitRef(g, ref, snap, make(map[string]struct{})); err != nil {
		return nil, err
	}

	// Belt-and-suspenders check: the pipeline graph's own validate()
	// already forbids cycles (I8); this guards against a bug in the
	// walk above producing a malformed snapshot.
	cyclic, cycles, err := dfs.DetectCycles(snap)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, fmt.Errorf("visualize: export produced a cyclic snapshot: %v", cycles)
	}

	return snap, nil
}

func visitRef(g *graph.Graph, r graph.Ref, snap *core.Graph, visited map[string]struct{}) error {
	id := refVertexID(r)
	if _, seen := visited[id]; seen {
		return nil
	}
	visited[id] = struct{}{}

	if r.IsSource() {
		return snap.AddVertex(id, core.VertexSource)
	}

	node, err := g.GetOperator(r.Node)
	if err != nil {
		return err
	}
	if err := snap.AddVertex(id, vertexKind(node.Kind())); err != nil {
		return err
	}

	deps, err := g.GetDependencies(r.Node)
	if err != nil {
		return err
	}
	for _, d := range deps {
		if err := visitRef(g, d, snap, visited); err != nil {
			return err
		}
		if err := snap.AddEdge(id, refVertexID(d), core.EdgeData); err != nil {
			return err
		}
	}

	if est, ok := g.GetFitDependency(r.Node); ok {
		estRef := graph.NodeRef(est)
		if err := visitRef(g, estRef, snap, visited); err != nil {
			return err
		}
		if err := snap.AddEdge(id, refVertexID(estRef), core.EdgeFit); err != nil {
			return err
		}
	}

	return nil
}
