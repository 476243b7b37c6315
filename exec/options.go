package exec

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowgraph/telemetry"
)

// Option configures an Executor at construction, in the same
// functional-option shape as dfs.TopoOption.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		logger: telemetry.NewNopLogger(),
	}
}

// WithContext sets the context checked at each recursive descent into
// evaluateSingle/evaluateDataset/fitEstimator. A cancelled context
// aborts the in-flight evaluation before any cache write, so caches
// never hold a partial result. Passing nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger used for per-call evaluation
// records. Passing nil has no effect; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
