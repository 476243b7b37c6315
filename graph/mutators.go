package graph

// AddNode returns a new graph with a fresh node wrapping op and deps
// as its ordered data dependencies. fitDependency names the estimator
// node that a KindDelegatingTransformer node delegates to; pass nil for
// every other kind. Every entry in deps, and fitDependency itself if
// present, must already exist; the result must satisfy I1–I9 or the
// call is rejected and g is returned unchanged.
//
// Complexity: O(V+E) (clone) + O(len(deps)) (validation of new edges).
func (g *Graph) AddNode(op Node, deps []Ref, fitDependency *NodeID) (*Graph, NodeID, error) {
	ng := g.clone()
	id := ng.nodeIDs.Next()

	ng.operators[id] = op
	cp := make([]Ref, len(deps))
	copy(cp, deps)
	ng.dependencies[id] = cp
	if fitDependency != nil {
		ng.fitDependencies[id] = *fitDependency
	}

	if err := validate(ng); err != nil {
		return g, 0, err
	}

	return ng, id, nil
}

// AddSource returns a new graph with a fresh source id added to
// sources; the graph is otherwise unchanged.
//
// Complexity: O(V+E).
func (g *Graph) AddSource() (*Graph, SourceID, error) {
	ng := g.clone()
	id := ng.sourceIDs.Next()
	ng.sources[id] = struct{}{}

	if err := validate(ng); err != nil {
		return g, 0, err
	}

	return ng, id, nil
}

// AddSink returns a new graph with a fresh sink id whose dependency is
// ref, which must be an existing NodeID or SourceID.
//
// Complexity: O(V+E).
func (g *Graph) AddSink(ref Ref) (*Graph, SinkID, error) {
	ng := g.clone()
	id := ng.sinkIDs.Next()
	ng.sinkDependencies[id] = ref

	if err := validate(ng); err != nil {
		return g, 0, err
	}

	return ng, id, nil
}

// SetDependencies returns a new graph where node n's dependency
// sequence is replaced by deps. n must already exist; every entry in
// deps must already exist.
//
// Complexity: O(V+E).
func (g *Graph) SetDependencies(n NodeID, deps []Ref) (*Graph, error) {
	if !g.HasNode(n) {
		return g, invalidArgument("SetDependencies", ErrNodeNotFound)
	}

	ng := g.clone()
	cp := make([]Ref, len(deps))
	copy(cp, deps)
	ng.dependencies[n] = cp

	if err := validate(ng); err != nil {
		return g, err
	}

	return ng, nil
}

// SetOperator returns a new graph where node n's payload is replaced
// by op. n must already exist.
//
// Complexity: O(V+E).
func (g *Graph) SetOperator(n NodeID, op Node) (*Graph, error) {
	if !g.HasNode(n) {
		return g, invalidArgument("SetOperator", ErrNodeNotFound)
	}

	ng := g.clone()
	ng.operators[n] = op

	if err := validate(ng); err != nil {
		return g, err
	}

	return ng, nil
}

// SetSinkDependency returns a new graph where sink s's dependency is
// replaced by ref. s and ref must already exist.
//
// Complexity: O(V+E).
func (g *Graph) SetSinkDependency(s SinkID, ref Ref) (*Graph, error) {
	if !g.HasSink(s) {
		return g, invalidArgument("SetSinkDependency", ErrUnknownSink)
	}

	ng := g.clone()
	ng.sinkDependencies[s] = ref

	if err := validate(ng); err != nil {
		return g, err
	}

	return ng, nil
}

// RemoveSink returns a new graph with sink s removed from
// sinkDependencies. s must already exist.
//
// Complexity: O(V+E).
func (g *Graph) RemoveSink(s SinkID) (*Graph, error) {
	if !g.HasSink(s) {
		return g, invalidArgument("RemoveSink", ErrUnknownSink)
	}

	ng := g.clone()
	delete(ng.sinkDependencies, s)

	if err := validate(ng); err != nil {
		return g, err
	}

	return ng, nil
}

// RemoveSource returns a new graph with source s removed from
// sources. s must already exist. References to s left in other nodes'
// dependency lists or in sinkDependencies are NOT scrubbed — this
// mirrors the reference implementation's observed behavior; a caller
// that needs a consistent graph afterward should call
// ReplaceDependency first.
//
// Complexity: O(V+E).
func (g *Graph) RemoveSource(s SourceID) (*Graph, error) {
	if !g.HasSource(s) {
		return g, invalidArgument("RemoveSource", ErrSourceNotFound)
	}

	ng := g.clone()
	delete(ng.sources, s)

	// Validation is intentionally skipped here: removing a source is
	// expected to leave dangling references (I1 would then fail) until
	// the caller repairs them via ReplaceDependency.
	return ng, nil
}

// RemoveNode returns a new graph with node n removed from operators
// and its own dependencies entry removed. n must already exist.
// References to n left in other nodes' dependency lists, fit
// dependencies, or sinkDependencies are NOT scrubbed, matching
// RemoveSource's documented behavior.
//
// Complexity: O(V+E).
func (g *Graph) RemoveNode(n NodeID) (*Graph, error) {
	if !g.HasNode(n) {
		return g, invalidArgument("RemoveNode", ErrNodeNotFound)
	}

	ng := g.clone()
	delete(ng.operators, n)
	delete(ng.dependencies, n)
	delete(ng.fitDependencies, n)

	// See RemoveSource: validation is skipped, dangling refs are
	// expected until the caller calls ReplaceDependency/ReplaceNodes.
	return ng, nil
}

// ReplaceDependency returns a new graph where every occurrence of
// oldRef in every dependencies value and every sinkDependencies value
// is replaced by newRef. Order and multiplicity are preserved. Both
// oldRef and newRef must already exist; the node/source identified by
// oldRef itself is not removed.
//
// Complexity: O(V+E).
func (g *Graph) ReplaceDependency(oldRef, newRef Ref) (*Graph, error) {
	if !g.HasRef(oldRef) {
		return g, invalidArgument("ReplaceDependency", ErrUnknownRef)
	}
	if !g.HasRef(newRef) {
		return g, invalidArgument("ReplaceDependency", ErrUnknownRef)
	}

	ng := g.clone()
	replaceRefInPlace(ng, oldRef, newRef)

	if err := validate(ng); err != nil {
		return g, err
	}

	return ng, nil
}

// replaceRefInPlace mutates g directly (no clone, no validate),
// substituting every occurrence of oldRef in dependencies and
// sinkDependencies with newRef. Shared by ReplaceDependency and the
// composition operators in compose.go, which need to perform several
// such substitutions before a single validate() at the end.
func replaceRefInPlace(g *Graph, oldRef, newRef Ref) {
	for n, deps := range g.dependencies {
		changed := false
		cp := make([]Ref, len(deps))
		for i, r := range deps {
			if r == oldRef {
				cp[i] = newRef
				changed = true
			} else {
				cp[i] = r
			}
		}
		if changed {
			g.dependencies[n] = cp
		}
	}
	for s, r := range g.sinkDependencies {
		if r == oldRef {
			g.sinkDependencies[s] = newRef
		}
	}
}
