package pipeline

import (
	"errors"
	"fmt"
)

// ErrUnknownSink indicates NewPipeline was given a SinkID absent from
// the graph.
var ErrUnknownSink = errors.New("pipeline: unknown sink")

// ConstructionError wraps a failure to build a Pipeline.
type ConstructionError struct {
	Op  string
	Err error
}

func (e *ConstructionError) Error() string { return fmt.Sprintf("pipeline: %s: %v", e.Op, e.Err) }

func (e *ConstructionError) Unwrap() error { return e.Err }
