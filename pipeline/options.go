package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowgraph/exec"
)

// Option configures the exec.Executor a Pipeline builds internally.
type Option = exec.Option

// WithContext forwards to exec.WithContext.
func WithContext(ctx context.Context) Option { return exec.WithContext(ctx) }

// WithLogger forwards to exec.WithLogger.
func WithLogger(logger *zap.Logger) Option { return exec.WithLogger(logger) }
