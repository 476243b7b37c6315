// Package core: method implementations for vertex/edge insertion and
// neighbor lookup on the Graph type declared in types.go.
package core

import "sort"

// AddVertex inserts a new vertex with the given ID and kind.
// If the vertex already exists, this is a no-op (idempotent) — its Kind
// and Label are left untouched.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, kind VertexKind) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Label: id, Kind: kind}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates a directed edge from `from` to `to` tagged with kind.
// Both endpoints must already exist. The snapshot graph is simple: a
// second edge between the same ordered pair is rejected rather than
// silently merged or duplicated.
// Returns ErrEmptyVertexID, ErrVertexNotFound, or ErrDuplicateEdge.
// Complexity: O(d) to scan existing outgoing edges of from, where d is
// its out-degree.
func (g *Graph) AddEdge(from, to string, kind EdgeKind) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}

	for _, idx := range g.adjacency[from] {
		e := g.edges[idx]
		if e.To == to {
			return ErrDuplicateEdge
		}
	}

	idx := len(g.edges)
	g.edges = append(g.edges, &Edge{From: from, To: to, Kind: kind})
	g.adjacency[from] = append(g.adjacency[from], idx)

	return nil
}

// Neighbors returns the outgoing edges of vertex id, sorted by To.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	idxs := g.adjacency[id]
	out := make([]*Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = g.edges[idx]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}
