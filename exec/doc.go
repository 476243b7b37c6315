// Package exec evaluates a flowgraph.Graph against a concrete external
// input, memoizing fitted estimators and dataset outputs for the
// lifetime of one Executor value.
//
// Two caches back every Executor: fitCache holds at most one fitted
// transformer per estimator node, populated on first use and reused
// thereafter; dataCache holds at most one dataset output per (node,
// input-dataset-identity) pair. Both are mutated in place under a
// single-threaded contract — an Executor is not safe for concurrent
// use without external synchronization.
//
// evaluateSingle and evaluateDataset both recurse over graph.NodeID,
// not graph.Ref: every dependency is resolved to either a real node or
// graph.SourceSentinel before recursing, so the dispatch switch in
// this package never needs a second case for "or maybe it's a source".
package exec
