// File: api.go
// Role: thin, deterministic public facade exposing read-only summary
// getters on top of the Graph state defined in types.go/methods.go.
// Policy: no algorithms or hidden state here; every exported function
// documents its complexity and locking strategy.
package core

// GraphStats is an O(E) read-only summary of a snapshot graph's
// size; visualize.WriteDOT renders it as a header comment so a DOT
// file is self-describing without a separate vertex/edge count pass.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	DataEdges   int
	FitEdges    int
}

// Stats produces a GraphStats summary of the current graph.
// Complexity: O(E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := &GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.Kind == EdgeFit {
			stats.FitEdges++
		} else {
			stats.DataEdges++
		}
	}

	return stats
}
