package graph

// AddGraph copies other's contents into g with freshly minted ids
// throughout: every NodeID, SourceID, SinkID of other maps to a new id
// not present in g. sourceIDMap and sinkIDMap let callers refer to the
// copied elements. Dependencies inside the copied subgraph are
// rewritten to the new ids; the two subgraphs remain disconnected.
//
// Identifier freshness: each id space has its own allocator, so other's
// sources, nodes and sinks each receive a contiguous block, sized
// len(other.Sources()), len(other.Nodes()) and len(other.Sinks())
// respectively, and every copied id is strictly greater than any id of
// the same space already present in g.
//
// Complexity: O(V+E) of both graphs combined.
func (g *Graph) AddGraph(other *Graph) (*Graph, map[SourceID]SourceID, map[SinkID]SinkID, error) {
	ng, _, sourceIDMap, sinkIDMap, err := g.addGraph(other)
	if err != nil {
		return g, nil, nil, err
	}

	return ng, sourceIDMap, sinkIDMap, nil
}

// addGraph is AddGraph's implementation, additionally returning the
// NodeID→NodeID image so the other composition operators in this file
// can redirect dependencies onto the embedded replacement without
// reconstructing that map from scratch.
func (g *Graph) addGraph(other *Graph) (*Graph, map[NodeID]NodeID, map[SourceID]SourceID, map[SinkID]SinkID, error) {
	ng := g.clone()

	nodeIDMap := make(map[NodeID]NodeID, len(other.operators))
	sourceIDMap := make(map[SourceID]SourceID, len(other.sources))
	sinkIDMap := make(map[SinkID]SinkID, len(other.sinkDependencies))

	for _, s := range other.Sources() {
		sourceIDMap[s] = ng.sourceIDs.Next()
	}
	for _, n := range other.Nodes() {
		nodeIDMap[n] = ng.nodeIDs.Next()
	}
	for _, s := range other.Sinks() {
		sinkIDMap[s] = ng.sinkIDs.Next()
	}

	remapRef := func(r Ref) Ref {
		if r.IsSource() {
			return SourceRef(sourceIDMap[r.Source])
		}

		return NodeRef(nodeIDMap[r.Node])
	}

	for _, mapped := range sourceIDMap {
		ng.sources[mapped] = struct{}{}
	}
	for n, newN := range nodeIDMap {
		ng.operators[newN] = other.operators[n]

		deps := other.dependencies[n]
		cp := make([]Ref, len(deps))
		for i, r := range deps {
			cp[i] = remapRef(r)
		}
		ng.dependencies[newN] = cp

		if est, ok := other.fitDependencies[n]; ok {
			ng.fitDependencies[newN] = nodeIDMap[est]
		}
	}
	for s, newS := range sinkIDMap {
		ng.sinkDependencies[newS] = remapRef(other.sinkDependencies[s])
	}

	if err := validate(ng); err != nil {
		return g, nil, nil, nil, err
	}

	return ng, nodeIDMap, sourceIDMap, sinkIDMap, nil
}

// ConnectGraph embeds other into g (as AddGraph does) and then splices
// each (sourceOfOther, sinkOfThis) pair in spliceMap: the embedded
// image of sourceOfOther is replaced, wherever it appears as a
// dependency, by the ref that sinkOfThis points at in g; the consumed
// source is then removed from g', and sinkOfThis is removed from
// g'.sinkDependencies.
//
// Every key of spliceMap must be an actual source of other; every
// value must be an actual sink of g. A contract violation leaves both
// g and other unchanged and returns an *InvalidArgumentError.
//
// The returned sourceIDMap contains entries only for other's unspliced
// sources — spliced ones are consumed and do not appear in g'.sources.
// sinkIDMap maps every one of other's original sinks to its image in
// g'; only `this`-side sinks named in spliceMap's values are removed.
//
// Complexity: O(V+E) of both graphs combined.
func (g *Graph) ConnectGraph(other *Graph, spliceMap map[SourceID]SinkID) (*Graph, map[SourceID]SourceID, map[SinkID]SinkID, error) {
	for src := range spliceMap {
		if !other.HasSource(src) {
			return g, nil, nil, invalidArgument("ConnectGraph", ErrSpliceContract)
		}
	}
	for _, sink := range spliceMap {
		if !g.HasSink(sink) {
			return g, nil, nil, invalidArgument("ConnectGraph", ErrSpliceContract)
		}
	}

	ng, _, sourceIDMap, sinkIDMap, err := g.addGraph(other)
	if err != nil {
		return g, nil, nil, err
	}

	splicedSources := make(map[SourceID]struct{}, len(spliceMap))
	for srcOfOther, sinkOfThis := range spliceMap {
		embeddedSrc := sourceIDMap[srcOfOther]
		target := g.sinkDependencies[sinkOfThis]

		replaceRefInPlace(ng, SourceRef(embeddedSrc), target)
		delete(ng.sources, embeddedSrc)
		delete(ng.sinkDependencies, sinkOfThis)
		splicedSources[srcOfOther] = struct{}{}
	}

	finalSourceIDMap := make(map[SourceID]SourceID, len(sourceIDMap)-len(splicedSources))
	for src, mapped := range sourceIDMap {
		if _, spliced := splicedSources[src]; !spliced {
			finalSourceIDMap[src] = mapped
		}
	}

	if err := validate(ng); err != nil {
		return g, nil, nil, err
	}

	return ng, finalSourceIDMap, sinkIDMap, nil
}

// ReplaceNodes removes nodesToRemove from g and splices replacement in
// their place.
//
// replacementSourceSplice's key set must be exactly replacement's
// sources; each value must name a node/source that exists in g and is
// not itself in nodesToRemove.
//
// replacementSinkSplice's key set must be exactly nodesToRemove; each
// value must be a sink of replacement.
//
// Every remaining dependency (in g, not in nodesToRemove) on a removed
// node is redirected to the ref that replacementSinkSplice(removedNode)
// points at inside replacement, after embedding. Internal dependencies
// of replacement on its own sources are redirected to
// replacementSourceSplice(source).
//
// Complexity: O(V+E) of both graphs combined.
func (g *Graph) ReplaceNodes(
	nodesToRemove map[NodeID]struct{},
	replacement *Graph,
	replacementSourceSplice map[SourceID]Ref,
	replacementSinkSplice map[NodeID]SinkID,
) (*Graph, error) {
	replSources := replacement.Sources()
	if len(replacementSourceSplice) != len(replSources) {
		return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
	}
	for _, s := range replSources {
		target, ok := replacementSourceSplice[s]
		if !ok {
			return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
		}
		if !g.HasRef(target) {
			return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
		}
		if target.IsNode() {
			if _, removed := nodesToRemove[target.Node]; removed {
				return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
			}
		}
	}
	if len(replacementSinkSplice) != len(nodesToRemove) {
		return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
	}
	for n, sink := range replacementSinkSplice {
		if _, ok := nodesToRemove[n]; !ok {
			return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
		}
		if !replacement.HasSink(sink) {
			return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
		}
	}

	ng, nodeIDMap, sourceIDMap, _, err := g.addGraph(replacement)
	if err != nil {
		return g, err
	}

	// Redirect replacement's internal dependencies on its own sources.
	for src, mapped := range sourceIDMap {
		replaceRefInPlace(ng, SourceRef(mapped), replacementSourceSplice[src])
		delete(ng.sources, mapped)
	}

	// Redirect every remaining dependency on a removed node to the
	// embedded image of the ref that replacementSinkSplice names.
	for removed, sink := range replacementSinkSplice {
		target, terr := replacement.GetSinkDependency(sink)
		if terr != nil {
			return g, invalidArgument("ReplaceNodes", ErrSpliceContract)
		}
		replaceRefInPlace(ng, NodeRef(removed), remapToEmbedded(target, nodeIDMap, sourceIDMap))
	}

	for n := range nodesToRemove {
		delete(ng.operators, n)
		delete(ng.dependencies, n)
		delete(ng.fitDependencies, n)
	}

	if err := validate(ng); err != nil {
		return g, err
	}

	return ng, nil
}

// remapToEmbedded resolves target, a Ref inside replacement's own id
// space, to its image inside the already-embedded graph.
func remapToEmbedded(target Ref, nodeIDMap map[NodeID]NodeID, sourceIDMap map[SourceID]SourceID) Ref {
	if target.IsSource() {
		return SourceRef(sourceIDMap[target.Source])
	}

	return NodeRef(nodeIDMap[target.Node])
}
