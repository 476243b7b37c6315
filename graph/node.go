package graph

import "github.com/katalvlaran/flowgraph/operator"

// NodeKind tags which of the four node variants a Node is. Go has no
// sum types, so Node is a single struct carrying a Kind tag plus
// kind-specific payload fields, with exhaustive switches on Kind at
// every dispatch site (construction, validation, execution) standing
// in for the "impossible-case arm" of a matched discriminated union.
type NodeKind uint8

const (
	// KindSource wraps a constant lazy dataset; supplies values
	// without depending on anything.
	KindSource NodeKind = iota

	// KindTransformer is a pure function from an ordered sequence of
	// input expressions to one output expression.
	KindTransformer

	// KindEstimator is a function from an ordered sequence of input
	// datasets to a TransformerOp (its fit result); cannot be
	// evaluated directly to produce data.
	KindEstimator

	// KindDelegatingTransformer is a transformer whose behavior is
	// supplied by the fit result of exactly one EstimatorNode; it has
	// data dependencies and a single fit dependency.
	KindDelegatingTransformer
)

// String renders k for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindSource:
		return "Source"
	case KindTransformer:
		return "Transformer"
	case KindEstimator:
		return "Estimator"
	case KindDelegatingTransformer:
		return "DelegatingTransformer"
	default:
		return "Unknown"
	}
}

// Node is a single vertex in the pipeline graph. Only the field(s)
// matching Kind are populated; the accessors below return the zero
// value for a field that does not apply to this Kind.
type Node struct {
	kind        NodeKind
	dataset     operator.Dataset
	transformer operator.TransformerOp
	estimator   operator.EstimatorOp
}

// Kind returns the node's variant tag.
func (n Node) Kind() NodeKind { return n.kind }

// Dataset returns the constant dataset wrapped by a KindSource node,
// or nil for any other kind.
func (n Node) Dataset() operator.Dataset { return n.dataset }

// Transformer returns the operator wrapped by a KindTransformer node,
// or nil for any other kind.
func (n Node) Transformer() operator.TransformerOp { return n.transformer }

// Estimator returns the operator wrapped by a KindEstimator node, or
// nil for any other kind.
func (n Node) Estimator() operator.EstimatorOp { return n.estimator }

// NewSourceNode constructs a KindSource node wrapping ds.
func NewSourceNode(ds operator.Dataset) Node {
	return Node{kind: KindSource, dataset: ds}
}

// NewTransformerNode constructs a KindTransformer node wrapping op.
func NewTransformerNode(op operator.TransformerOp) Node {
	return Node{kind: KindTransformer, transformer: op}
}

// NewEstimatorNode constructs a KindEstimator node wrapping op.
func NewEstimatorNode(op operator.EstimatorOp) Node {
	return Node{kind: KindEstimator, estimator: op}
}

// NewDelegatingTransformerNode constructs a KindDelegatingTransformer
// node. Its behavior comes from the fit result of the EstimatorNode
// named by the separate fit-dependency association (the
// fitDependencies argument of New, or AddNode's fitDependency); the
// node payload itself carries no operator.
func NewDelegatingTransformerNode() Node {
	return Node{kind: KindDelegatingTransformer}
}
