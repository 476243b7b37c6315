// Package pipeline is the façade over graph.Graph and exec.Executor:
// a Pipeline bundles a validated graph, its distinguished sink, an
// executor, and an optimizer-result cache keyed by optimizer identity.
//
// Optimizer is defined here, not in a separate package, so that
// DefaultOptimizer and any caller-supplied strategy depend on
// Pipeline's concrete type without Pipeline needing to import back —
// the consumer-defines-the-interface idiom avoids what would otherwise
// be an import cycle.
package pipeline
