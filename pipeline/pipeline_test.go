package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgraph/graph"
	"github.com/katalvlaran/flowgraph/operator"
)

type doublingTransformer struct{}

func (doublingTransformer) ApplySingle(inputs operator.DatumSeq) (interface{}, error) {
	v, err := inputs[0].Get()
	if err != nil {
		return nil, err
	}

	return v.(int) * 2, nil
}

func (doublingTransformer) ApplyDataset(inputs operator.DatasetSeq) (operator.Dataset, error) {
	return inputs[0].Get()
}

func buildDoublingPipeline(t *testing.T) *Pipeline {
	t.Helper()

	operators := map[graph.NodeID]graph.Node{
		0: graph.NewTransformerNode(doublingTransformer{}),
	}
	dependencies := map[graph.NodeID][]graph.Ref{
		0: {graph.SourceRef(0)},
	}
	sinkDependencies := map[graph.SinkID]graph.Ref{0: graph.NodeRef(0)}

	g, err := graph.New([]graph.SourceID{0}, operators, dependencies, sinkDependencies, nil)
	require.NoError(t, err)

	p, err := NewPipeline(g, 0)
	require.NoError(t, err)

	return p
}

func TestApplySingle_Basic(t *testing.T) {
	p := buildDoublingPipeline(t)

	out, err := p.ApplySingle(21)
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestApplyDataset_Basic(t *testing.T) {
	p := buildDoublingPipeline(t)

	out, err := p.ApplyDataset("a-dataset")
	require.NoError(t, err)
	assert.Equal(t, "a-dataset", out)
}

func TestNewPipeline_RejectsUnknownSink(t *testing.T) {
	g := buildDoublingPipeline(t).g

	_, err := NewPipeline(g, 99)
	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
}

type countingOptimizer struct {
	calls *int
}

func (o countingOptimizer) Execute(p *Pipeline) (*Pipeline, error) {
	*o.calls++

	return p, nil
}

func TestOptimizerCache_MemoizesByIdentity(t *testing.T) {
	p := buildDoublingPipeline(t)
	calls := 0
	opt := countingOptimizer{calls: &calls}

	_, err := p.ApplySingleWithOptimizer(1, opt)
	require.NoError(t, err)
	_, err = p.ApplySingleWithOptimizer(2, opt)
	require.NoError(t, err)
	_, err = p.ApplySingleWithOptimizer(3, opt)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "repeated application with the same optimizer value must reuse the rewrite")
}

func TestDefaultOptimizer_IsIdentity(t *testing.T) {
	p := buildDoublingPipeline(t)

	optimized, err := DefaultOptimizer.Execute(p)
	require.NoError(t, err)
	assert.Same(t, p, optimized)
}
