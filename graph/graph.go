// Package graph implements the immutable DAG algebra at the core of a
// pipeline: three disjoint identifier spaces (NodeID, SourceID,
// SinkID), four tagged node kinds, and a Graph value whose mutators
// are all pure — each returns a new Graph, never touching the
// receiver, validated against invariants I1–I9 on every construction
// and rewrite.
package graph

import "sort"

// Graph is the tuple (sources, operators, dependencies,
// sinkDependencies) plus, per node, an optional fit dependency used
// only by KindDelegatingTransformer nodes. Graph values are immutable:
// every mutating operator in this package returns a new Graph: the
// receiver is never modified. Treat a Graph as a value type despite
// its pointer representation.
type Graph struct {
	sources          map[SourceID]struct{}
	operators        map[NodeID]Node
	dependencies     map[NodeID][]Ref
	sinkDependencies map[SinkID]Ref
	fitDependencies  map[NodeID]NodeID

	nodeIDs   idAllocator[NodeID]
	sourceIDs idAllocator[SourceID]
	sinkIDs   idAllocator[SinkID]
}

// New constructs a Graph directly from its four defining collections
// plus the fit-dependency association, rejecting any violation of
// I1–I9 with an *InvalidArgumentError. fitDependencies may be nil.
//
// Complexity: O(V+E) where V = len(operators)+len(sources) and E is
// the total number of dependency entries.
func New(
	sources []SourceID,
	operators map[NodeID]Node,
	dependencies map[NodeID][]Ref,
	sinkDependencies map[SinkID]Ref,
	fitDependencies map[NodeID]NodeID,
) (*Graph, error) {
	g := &Graph{
		sources:          make(map[SourceID]struct{}, len(sources)),
		operators:        make(map[NodeID]Node, len(operators)),
		dependencies:     make(map[NodeID][]Ref, len(dependencies)),
		sinkDependencies: make(map[SinkID]Ref, len(sinkDependencies)),
		fitDependencies:  make(map[NodeID]NodeID, len(fitDependencies)),
	}

	var maxNode NodeID = -1
	var maxSource SourceID = -1
	var maxSink SinkID = -1

	for _, s := range sources {
		g.sources[s] = struct{}{}
		if s > maxSource {
			maxSource = s
		}
	}
	for n, op := range operators {
		g.operators[n] = op
		if n > maxNode {
			maxNode = n
		}
	}
	for n, deps := range dependencies {
		cp := make([]Ref, len(deps))
		copy(cp, deps)
		g.dependencies[n] = cp
	}
	for s, ref := range sinkDependencies {
		g.sinkDependencies[s] = ref
		if s > maxSink {
			maxSink = s
		}
	}
	for n, est := range fitDependencies {
		g.fitDependencies[n] = est
	}

	g.nodeIDs = newIDAllocator(maxNode)
	g.sourceIDs = newIDAllocator(maxSource)
	g.sinkIDs = newIDAllocator(maxSink)

	if err := validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// clone returns a deep copy of g, the substrate every mutator starts
// from before applying its own change — the copy-on-write discipline
// that makes every rewrite operator pure.
func (g *Graph) clone() *Graph {
	ng := &Graph{
		sources:          make(map[SourceID]struct{}, len(g.sources)),
		operators:        make(map[NodeID]Node, len(g.operators)),
		dependencies:     make(map[NodeID][]Ref, len(g.dependencies)),
		sinkDependencies: make(map[SinkID]Ref, len(g.sinkDependencies)),
		fitDependencies:  make(map[NodeID]NodeID, len(g.fitDependencies)),
		nodeIDs:          g.nodeIDs,
		sourceIDs:        g.sourceIDs,
		sinkIDs:          g.sinkIDs,
	}
	for s := range g.sources {
		ng.sources[s] = struct{}{}
	}
	for n, op := range g.operators {
		ng.operators[n] = op
	}
	for n, deps := range g.dependencies {
		cp := make([]Ref, len(deps))
		copy(cp, deps)
		ng.dependencies[n] = cp
	}
	for s, ref := range g.sinkDependencies {
		ng.sinkDependencies[s] = ref
	}
	for n, est := range g.fitDependencies {
		ng.fitDependencies[n] = est
	}

	return ng
}

// Nodes returns the set of NodeIds, i.e. the key set of operators,
// sorted for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.operators))
	for n := range g.operators {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Sources returns the set of SourceIds, sorted for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph) Sources() []SourceID {
	out := make([]SourceID, 0, len(g.sources))
	for s := range g.sources {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Sinks returns the set of SinkIds, i.e. the key set of
// sinkDependencies, sorted for deterministic iteration.
// Complexity: O(V log V).
func (g *Graph) Sinks() []SinkID {
	out := make([]SinkID, 0, len(g.sinkDependencies))
	for s := range g.sinkDependencies {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// GetDependencies returns the ordered dependency sequence of n.
// Fails with *NotFoundError if n is not in operators.
// Complexity: O(1).
func (g *Graph) GetDependencies(n NodeID) ([]Ref, error) {
	deps, ok := g.dependencies[n]
	if !ok {
		return nil, notFound("GetDependencies", ErrNodeNotFound)
	}
	out := make([]Ref, len(deps))
	copy(out, deps)

	return out, nil
}

// GetSinkDependency returns the single dependency of sink s.
// Fails with *NotFoundError if s is not in sinkDependencies.
// Complexity: O(1).
func (g *Graph) GetSinkDependency(s SinkID) (Ref, error) {
	ref, ok := g.sinkDependencies[s]
	if !ok {
		return Ref{}, notFound("GetSinkDependency", ErrUnknownSink)
	}

	return ref, nil
}

// GetOperator returns the node kind and payload at n.
// Fails with *NotFoundError if n is not in operators.
// Complexity: O(1).
func (g *Graph) GetOperator(n NodeID) (Node, error) {
	node, ok := g.operators[n]
	if !ok {
		return Node{}, notFound("GetOperator", ErrNodeNotFound)
	}

	return node, nil
}

// GetFitDependency returns the EstimatorNode that n's fit dependency
// names, and whether n has one at all (only KindDelegatingTransformer
// nodes do).
// Complexity: O(1).
func (g *Graph) GetFitDependency(n NodeID) (NodeID, bool) {
	est, ok := g.fitDependencies[n]

	return est, ok
}

// HasNode reports whether n is present in operators.
func (g *Graph) HasNode(n NodeID) bool {
	_, ok := g.operators[n]

	return ok
}

// HasSource reports whether s is present in sources.
func (g *Graph) HasSource(s SourceID) bool {
	_, ok := g.sources[s]

	return ok
}

// HasSink reports whether s is present in sinkDependencies.
func (g *Graph) HasSink(s SinkID) bool {
	_, ok := g.sinkDependencies[s]

	return ok
}

// HasRef reports whether r names an existing NodeID or SourceID (I1's
// existence test).
func (g *Graph) HasRef(r Ref) bool {
	if r.IsSource() {
		return g.HasSource(r.Source)
	}

	return g.HasNode(r.Node)
}
