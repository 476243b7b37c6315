package exec

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/flowgraph/graph"
	"github.com/katalvlaran/flowgraph/lazyexpr"
	"github.com/katalvlaran/flowgraph/operator"
	"github.com/katalvlaran/flowgraph/telemetry"
)

// datasetCacheKey is dataCache's key: a node plus the identity of the
// input dataset it was evaluated against. Dataset's identity-equality
// contract (see operator/doc.go) is what makes this struct usable as a
// map key at all — two structurally identical but distinct dataset
// handles never collide.
type datasetCacheKey struct {
	node graph.NodeID
	ds   operator.Dataset
}

// Executor evaluates one graph.Graph, memoizing fitted estimators in
// fitCache and dataset outputs in dataCache for its own lifetime. Not
// safe for concurrent use; see the package doc.
type Executor struct {
	g         *graph.Graph
	fitCache  map[graph.NodeID]operator.TransformerOp
	dataCache map[datasetCacheKey]operator.Dataset
	opts      options
}

// New constructs an Executor over g. g is expected to already satisfy
// I1–I9; the executor trusts it and does not re-validate.
func New(g *graph.Graph, opts ...Option) *Executor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Executor{
		g:         g,
		fitCache:  make(map[graph.NodeID]operator.TransformerOp),
		dataCache: make(map[datasetCacheKey]operator.Dataset),
		opts:      o,
	}
}

// ResolveRef substitutes graph.SourceSentinel for any Ref naming a
// SourceID, so every recursive evaluator below operates on a plain
// NodeID. Exported so pipeline can resolve a sink's Ref before calling
// EvaluateSingle/EvaluateDataset.
func ResolveRef(r graph.Ref) graph.NodeID {
	if r.IsSource() {
		return graph.SourceSentinel
	}

	return r.Node
}

func (e *Executor) checkCancelled() error {
	select {
	case <-e.opts.ctx.Done():
		return e.opts.ctx.Err()
	default:
		return nil
	}
}

// FitEstimator returns n's fitted transformer, computing and caching
// it on first use. Calling it on a node that is not a KindEstimator
// node is a *dag-error*.
func (e *Executor) FitEstimator(n graph.NodeID) (operator.TransformerOp, error) {
	if err := e.checkCancelled(); err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	e.opts.logger.Debug("fitEstimator",
		telemetry.CorrelationField(correlationID), telemetry.NodeField(int64(n)))

	if tr, ok := e.fitCache[n]; ok {
		return tr, nil
	}

	node, err := e.g.GetOperator(n)
	if err != nil {
		return nil, dagError("FitEstimator", ErrUnknownNode)
	}
	if node.Kind() != graph.KindEstimator {
		return nil, dagError("FitEstimator", ErrNotEstimator)
	}

	deps, err := e.g.GetDependencies(n)
	if err != nil {
		return nil, dagError("FitEstimator", ErrUnknownNode)
	}

	// Estimator fit runs with no top-level input in scope: a source
	// dependency resolves to nil here. An estimator fed directly from a
	// source (rather than a constant SourceNode) is expected to fail
	// inside its own Fit implementation.
	tr, fitErr := node.Estimator().Fit(e.buildDatasetSeq(deps, nil))
	if fitErr != nil {
		return nil, operatorError("FitEstimator", fitErr)
	}

	e.fitCache[n] = tr

	return tr, nil
}

// EvaluateDataset returns the dataset produced by n given inputDataset
// as the value of the pipeline's source, memoizing the result in
// dataCache keyed by (n, inputDataset identity).
func (e *Executor) EvaluateDataset(n graph.NodeID, inputDataset operator.Dataset) (operator.Dataset, error) {
	if err := e.checkCancelled(); err != nil {
		return nil, err
	}

	if n == graph.SourceSentinel {
		return inputDataset, nil
	}

	correlationID := uuid.NewString()
	e.opts.logger.Debug("evaluateDataset",
		telemetry.CorrelationField(correlationID), telemetry.NodeField(int64(n)))

	key := datasetCacheKey{node: n, ds: inputDataset}
	if v, ok := e.dataCache[key]; ok {
		return v, nil
	}

	node, err := e.g.GetOperator(n)
	if err != nil {
		return nil, dagError("EvaluateDataset", ErrUnknownNode)
	}

	var result operator.Dataset
	switch node.Kind() {
	case graph.KindSource:
		result = node.Dataset()

	case graph.KindTransformer:
		deps, derr := e.g.GetDependencies(n)
		if derr != nil {
			return nil, dagError("EvaluateDataset", ErrUnknownNode)
		}
		result, err = node.Transformer().ApplyDataset(e.buildDatasetSeq(deps, inputDataset))
		if err != nil {
			return nil, operatorError("EvaluateDataset", err)
		}

	case graph.KindDelegatingTransformer:
		fitDep, ok := e.g.GetFitDependency(n)
		if !ok {
			return nil, dagError("EvaluateDataset", ErrUnknownNode)
		}
		tr, fitErr := e.FitEstimator(fitDep)
		if fitErr != nil {
			return nil, fitErr
		}
		deps, derr := e.g.GetDependencies(n)
		if derr != nil {
			return nil, dagError("EvaluateDataset", ErrUnknownNode)
		}
		result, err = tr.ApplyDataset(e.buildDatasetSeq(deps, inputDataset))
		if err != nil {
			return nil, operatorError("EvaluateDataset", err)
		}

	case graph.KindEstimator:
		return nil, dagError("EvaluateDataset", ErrEstimatorNotEvaluable)

	default:
		return nil, dagError("EvaluateDataset", ErrUnknownNode)
	}

	e.dataCache[key] = result

	return result, nil
}

// EvaluateSingle returns the single-item output produced by n given
// inputValue as the value of the pipeline's source. Single-item
// results are never cached.
func (e *Executor) EvaluateSingle(n graph.NodeID, inputValue interface{}) (interface{}, error) {
	if err := e.checkCancelled(); err != nil {
		return nil, err
	}

	if n == graph.SourceSentinel {
		return inputValue, nil
	}

	correlationID := uuid.NewString()
	e.opts.logger.Debug("evaluateSingle",
		telemetry.CorrelationField(correlationID), telemetry.NodeField(int64(n)))

	node, err := e.g.GetOperator(n)
	if err != nil {
		return nil, dagError("EvaluateSingle", ErrUnknownNode)
	}

	switch node.Kind() {
	case graph.KindSource:
		return nil, dagError("EvaluateSingle", ErrSourceSingleItem)

	case graph.KindTransformer:
		deps, derr := e.g.GetDependencies(n)
		if derr != nil {
			return nil, dagError("EvaluateSingle", ErrUnknownNode)
		}
		out, aerr := node.Transformer().ApplySingle(e.buildDatumSeq(deps, inputValue))
		if aerr != nil {
			return nil, operatorError("EvaluateSingle", aerr)
		}

		return out, nil

	case graph.KindDelegatingTransformer:
		fitDep, ok := e.g.GetFitDependency(n)
		if !ok {
			return nil, dagError("EvaluateSingle", ErrUnknownNode)
		}
		tr, fitErr := e.FitEstimator(fitDep)
		if fitErr != nil {
			return nil, fitErr
		}
		deps, derr := e.g.GetDependencies(n)
		if derr != nil {
			return nil, dagError("EvaluateSingle", ErrUnknownNode)
		}
		out, aerr := tr.ApplySingle(e.buildDatumSeq(deps, inputValue))
		if aerr != nil {
			return nil, operatorError("EvaluateSingle", aerr)
		}

		return out, nil

	case graph.KindEstimator:
		return nil, dagError("EvaluateSingle", ErrEstimatorNotEvaluable)

	default:
		return nil, dagError("EvaluateSingle", ErrUnknownNode)
	}
}

// buildDatasetSeq builds the input-exactly-once lazy sequence passed
// to a dataset-mode operator call: one Expression per dependency, in
// dependency order, each forcing EvaluateDataset only if pulled.
func (e *Executor) buildDatasetSeq(deps []graph.Ref, inputDataset operator.Dataset) operator.DatasetSeq {
	seq := make(operator.DatasetSeq, len(deps))
	for i, d := range deps {
		d := d
		seq[i] = lazyexpr.NewExpression(func() (operator.Dataset, error) {
			return e.EvaluateDataset(ResolveRef(d), inputDataset)
		})
	}

	return seq
}

// buildDatumSeq is buildDatasetSeq's single-item counterpart.
func (e *Executor) buildDatumSeq(deps []graph.Ref, inputValue interface{}) operator.DatumSeq {
	seq := make(operator.DatumSeq, len(deps))
	for i, d := range deps {
		d := d
		seq[i] = lazyexpr.NewExpression(func() (interface{}, error) {
			return e.EvaluateSingle(ResolveRef(d), inputValue)
		})
	}

	return seq
}
