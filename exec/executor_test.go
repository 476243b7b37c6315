package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgraph/graph"
	"github.com/katalvlaran/flowgraph/operator"
)

// dataset is a pointer-shaped Dataset stand-in: distinct instances
// with equal contents must still be distinguished by the identity-keyed
// dataset cache.
type dataset struct{ tag string }

type countingEstimator struct {
	fitCalls int
	fitted   operator.TransformerOp
}

func (c *countingEstimator) Fit(_ operator.DatasetSeq) (operator.TransformerOp, error) {
	c.fitCalls++

	return c.fitted, nil
}

type countingTransformer struct {
	datasetCalls int
	singleCalls  int
}

func (c *countingTransformer) ApplySingle(inputs operator.DatumSeq) (interface{}, error) {
	c.singleCalls++
	if len(inputs) == 0 {
		return nil, nil
	}
	v, err := inputs[0].Get()

	return v, err
}

func (c *countingTransformer) ApplyDataset(_ operator.DatasetSeq) (operator.Dataset, error) {
	c.datasetCalls++

	return &dataset{tag: "fitted-output"}, nil
}

func buildDelegatingFixture(t *testing.T, fitted *countingTransformer) (*graph.Graph, *countingEstimator) {
	t.Helper()

	est := &countingEstimator{fitted: fitted}
	operators := map[graph.NodeID]graph.Node{
		0: graph.NewEstimatorNode(est),
		1: graph.NewDelegatingTransformerNode(),
	}
	dependencies := map[graph.NodeID][]graph.Ref{
		0: {graph.SourceRef(0)},
		1: {graph.SourceRef(0)},
	}
	fitDependencies := map[graph.NodeID]graph.NodeID{1: 0}
	sinkDependencies := map[graph.SinkID]graph.Ref{0: graph.NodeRef(1)}

	g, err := graph.New([]graph.SourceID{0}, operators, dependencies, sinkDependencies, fitDependencies)
	require.NoError(t, err)

	return g, est
}

func TestFitOnce_AcrossDifferentDatasetInputs(t *testing.T) {
	fitted := &countingTransformer{}
	g, est := buildDelegatingFixture(t, fitted)
	e := New(g)

	ds1 := &dataset{tag: "ds1"}
	ds2 := &dataset{tag: "ds2"}

	_, err := e.EvaluateDataset(1, ds1)
	require.NoError(t, err)
	_, err = e.EvaluateDataset(1, ds2)
	require.NoError(t, err)

	assert.Equal(t, 1, est.fitCalls, "fit must be invoked at most once across the executor's lifetime")
	assert.Equal(t, 2, fitted.datasetCalls, "distinct dataset identities must each be evaluated")
}

func TestDatasetMemoization_SameInputIdentityCachedOnce(t *testing.T) {
	fitted := &countingTransformer{}
	g, _ := buildDelegatingFixture(t, fitted)
	e := New(g)

	ds1 := &dataset{tag: "ds1"}

	_, err := e.EvaluateDataset(1, ds1)
	require.NoError(t, err)
	_, err = e.EvaluateDataset(1, ds1)
	require.NoError(t, err)

	assert.Equal(t, 1, fitted.datasetCalls, "repeated evaluateDataset(n, d) must invoke the operator at most once")
}

func TestSingleItemIndependence_NoCacheCrossContamination(t *testing.T) {
	op := &countingTransformer{}
	operators := map[graph.NodeID]graph.Node{
		0: graph.NewTransformerNode(op),
	}
	dependencies := map[graph.NodeID][]graph.Ref{
		0: {graph.SourceRef(0)},
	}
	g, err := graph.New([]graph.SourceID{0}, operators, dependencies, map[graph.SinkID]graph.Ref{0: graph.NodeRef(0)}, nil)
	require.NoError(t, err)

	e := New(g)

	out1, err := e.EvaluateSingle(0, "v1")
	require.NoError(t, err)
	out2, err := e.EvaluateSingle(0, "v2")
	require.NoError(t, err)

	assert.Equal(t, "v1", out1)
	assert.Equal(t, "v2", out2)
	assert.Equal(t, 2, op.singleCalls, "single-item calls must never be cached")
}

func TestEvaluateSingle_SourceNodeIsDagError(t *testing.T) {
	operators := map[graph.NodeID]graph.Node{
		0: graph.NewSourceNode(&dataset{tag: "const"}),
	}
	dependencies := map[graph.NodeID][]graph.Ref{0: {}}
	g, err := graph.New([]graph.SourceID{}, operators, dependencies, map[graph.SinkID]graph.Ref{0: graph.NodeRef(0)}, nil)
	require.NoError(t, err)

	e := New(g)
	_, err = e.EvaluateSingle(0, "ignored")
	var dagErr *DAGError
	require.ErrorAs(t, err, &dagErr)
	assert.ErrorIs(t, err, ErrSourceSingleItem)
}

func TestEvaluateDataset_EstimatorNodeIsDagError(t *testing.T) {
	est := &countingEstimator{fitted: &countingTransformer{}}
	operators := map[graph.NodeID]graph.Node{
		0: graph.NewEstimatorNode(est),
	}
	dependencies := map[graph.NodeID][]graph.Ref{0: {graph.SourceRef(0)}}
	g, err := graph.New([]graph.SourceID{0}, operators, dependencies, map[graph.SinkID]graph.Ref{0: graph.NodeRef(0)}, nil)
	require.Error(t, err) // I7: a sink resolving to an estimator is itself rejected at construction.
	_ = g

	// Build instead with a sink bypassing the estimator so construction
	// succeeds, then evaluate the estimator node directly.
	operators[1] = graph.NewTransformerNode(&countingTransformer{})
	dependencies[1] = []graph.Ref{graph.SourceRef(0)}
	g2, err := graph.New([]graph.SourceID{0}, operators, dependencies, map[graph.SinkID]graph.Ref{0: graph.NodeRef(1)}, nil)
	require.NoError(t, err)

	e := New(g2)
	_, err = e.EvaluateDataset(0, &dataset{tag: "x"})
	assert.ErrorIs(t, err, ErrEstimatorNotEvaluable)
}

func TestEvaluateDataset_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fitted := &countingTransformer{}
	g, _ := buildDelegatingFixture(t, fitted)
	e := New(g, WithContext(ctx))

	_, err := e.EvaluateDataset(1, &dataset{tag: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
