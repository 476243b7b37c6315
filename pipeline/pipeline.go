package pipeline

import (
	"github.com/katalvlaran/flowgraph/exec"
	"github.com/katalvlaran/flowgraph/graph"
	"github.com/katalvlaran/flowgraph/operator"
)

// Pipeline bundles a validated graph, its distinguished sink, an
// executor, and an optimizer-result cache. The graph and sink are
// fixed for the Pipeline's lifetime; the executor's caches and the
// optimizer cache are mutated in place as Apply* calls accumulate.
type Pipeline struct {
	g        *graph.Graph
	sink     graph.SinkID
	executor *exec.Executor
	optCache map[Optimizer]*Pipeline
}

// NewPipeline constructs a Pipeline over g and sink. sink must already
// be a sink of g.
func NewPipeline(g *graph.Graph, sink graph.SinkID, opts ...exec.Option) (*Pipeline, error) {
	if !g.HasSink(sink) {
		return nil, &ConstructionError{Op: "NewPipeline", Err: ErrUnknownSink}
	}

	return &Pipeline{
		g:        g,
		sink:     sink,
		executor: exec.New(g, opts...),
		optCache: make(map[Optimizer]*Pipeline),
	}, nil
}

// ApplySingle evaluates the pipeline's sink for a single input value,
// using DefaultOptimizer.
func (p *Pipeline) ApplySingle(v interface{}) (interface{}, error) {
	return p.ApplySingleWithOptimizer(v, DefaultOptimizer)
}

// ApplyDataset evaluates the pipeline's sink for a dataset input,
// using DefaultOptimizer.
func (p *Pipeline) ApplyDataset(ds operator.Dataset) (operator.Dataset, error) {
	return p.ApplyDatasetWithOptimizer(ds, DefaultOptimizer)
}

// ApplySingleWithOptimizer looks opt up in the optimizer cache —
// running and storing opt.Execute(p) on a miss — then evaluates the
// resulting optimized pipeline's sink directly, without applying any
// optimizer a second time.
func (p *Pipeline) ApplySingleWithOptimizer(v interface{}, opt Optimizer) (interface{}, error) {
	optimized, err := p.resolveOptimized(opt)
	if err != nil {
		return nil, err
	}

	return optimized.evaluateSingleDirect(v)
}

// ApplyDatasetWithOptimizer is ApplySingleWithOptimizer's dataset
// counterpart.
func (p *Pipeline) ApplyDatasetWithOptimizer(ds operator.Dataset, opt Optimizer) (operator.Dataset, error) {
	optimized, err := p.resolveOptimized(opt)
	if err != nil {
		return nil, err
	}

	return optimized.evaluateDatasetDirect(ds)
}

// resolveOptimized returns the Pipeline opt rewrites p into, computing
// and caching it on first use. The cache is keyed by opt's identity,
// so reapplying the same Optimizer value reuses the prior rewrite.
func (p *Pipeline) resolveOptimized(opt Optimizer) (*Pipeline, error) {
	if cached, ok := p.optCache[opt]; ok {
		return cached, nil
	}

	optimized, err := opt.Execute(p)
	if err != nil {
		return nil, err
	}

	p.optCache[opt] = optimized

	return optimized, nil
}

func (p *Pipeline) evaluateSingleDirect(v interface{}) (interface{}, error) {
	ref, err := p.g.GetSinkDependency(p.sink)
	if err != nil {
		return nil, err
	}

	return p.executor.EvaluateSingle(exec.ResolveRef(ref), v)
}

func (p *Pipeline) evaluateDatasetDirect(ds operator.Dataset) (operator.Dataset, error) {
	ref, err := p.g.GetSinkDependency(p.sink)
	if err != nil {
		return nil, err
	}

	return p.executor.EvaluateDataset(exec.ResolveRef(ref), ds)
}
