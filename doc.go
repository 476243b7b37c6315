// Package flowgraph is an immutable DAG algebra and executor for
// building and running small ML pipelines: fit estimators once, apply
// transformers to single items or datasets, and cache both outcomes by
// node identity.
//
// What is flowgraph?
//
//	A dependency-light library assembled from:
//
//	  - graph/     — the immutable pipeline DAG: sources, transformers,
//	                 estimators, delegating transformers, and the
//	                 copy-on-write mutators that rewrite them
//	  - operator/  — the TransformerOp/EstimatorOp contracts a pipeline
//	                 node wraps, plus the Dataset boundary type
//	  - lazyexpr/  — generic, memoized lazy expressions threaded through
//	                 the executor
//	  - exec/      — the Executor: fit-once and evaluate-once caching
//	                 keyed by node identity and dataset reference
//	  - pipeline/  — the Pipeline façade and pluggable Optimizer
//	  - telemetry/ — structured logging for executor runs
//	  - visualize/ — DOT export of a pipeline's dependency graph
//
// Why this shape?
//
//   - Immutable, copy-on-write graph values — every mutator returns a
//     new Graph; nothing already built is invalidated out from under a
//     concurrent reader.
//   - Fit-once, evaluate-once semantics — an estimator's Fit result and
//     a node's dataset output are memoized by identity, not recomputed
//     per downstream consumer. Single-item results are not cached.
//   - Pure Go, minimal surface — core/ and dfs/ (adapted from a
//     general-purpose graph toolkit) supply cycle detection and
//     topological order to the diagnostic visualize/ package; the DAG
//     algebra's only third-party dependency is go.uber.org/multierr,
//     used to aggregate validation errors.
//
// An Executor, and so a Pipeline, is not safe for concurrent use
// without external synchronization.
package flowgraph
