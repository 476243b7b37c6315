package telemetry

import (
	"go.uber.org/zap"
)

// NewNopLogger returns a logger that discards everything, the default
// used whenever a caller does not supply one via exec.WithLogger or
// pipeline.WithLogger.
func NewNopLogger() *zap.Logger {
	return zap.NewNop()
}

// NewProductionLogger returns a JSON-encoded, info-level logger suited
// to a running pipeline service. Construction failure (only possible
// from a misconfigured sink) falls back to a nop logger rather than
// panicking, since logging is never allowed to take down the caller.
func NewProductionLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// CorrelationField returns the zap.Field every executor log record
// carries. The executor mints a new ID for each EvaluateSingle,
// EvaluateDataset and FitEstimator invocation, including the recursive
// ones, so the records of one Apply* call do not share a single ID.
func CorrelationField(correlationID string) zap.Field {
	return zap.String("correlation_id", correlationID)
}

// NodeField returns the zap.Field identifying which graph node a log
// record describes.
func NodeField(nodeID int64) zap.Field {
	return zap.Int64("node_id", nodeID)
}
