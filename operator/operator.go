package operator

import "github.com/katalvlaran/flowgraph/lazyexpr"

// Dataset is an opaque handle to a lazy, partitioned, immutable
// collection of records supplied by an external distributed-dataset
// runtime. flowgraph never inspects a Dataset's contents; it is passed
// through to operators and used, by its identity, as an executor cache
// key. See the package doc for the identity-equality contract.
type Dataset = interface{}

// DatumSeq is the input sequence delivered to a single-item operator
// call: one memoized Expression per data dependency, in dependency
// order.
type DatumSeq = []*lazyexpr.Expression[interface{}]

// DatasetSeq is the input sequence delivered to a dataset-mode operator
// call: one memoized Expression per data dependency, in dependency
// order.
type DatasetSeq = []*lazyexpr.Expression[Dataset]

// TransformerOp is a pure function from an ordered sequence of input
// expressions to one output expression, with one implementation for
// single-item input and one for dataset input.
//
// Operators are referentially transparent: given the same input-value
// identities, they must produce equivalent outputs, because the
// executor's memoization assumes this.
type TransformerOp interface {
	// ApplySingle computes one output value from inputs, an
	// input-exactly-once lazy sequence in dependency order.
	ApplySingle(inputs DatumSeq) (interface{}, error)

	// ApplyDataset computes one output dataset from inputs, an
	// input-exactly-once lazy sequence in dependency order.
	ApplyDataset(inputs DatasetSeq) (Dataset, error)
}

// EstimatorOp is a function from an ordered sequence of input datasets
// to a TransformerOp, its fit result. An EstimatorOp cannot be
// evaluated directly to produce data.
type EstimatorOp interface {
	// Fit consumes inputs, an input-exactly-once lazy sequence of
	// dataset expressions in dependency order, and returns the fitted
	// transformer.
	Fit(inputs DatasetSeq) (TransformerOp, error)
}
