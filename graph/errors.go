package graph

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Sentinel errors. Callers MUST use errors.Is to branch on semantics;
// these are never compared by message string.
var (
	// ErrUnknownRef indicates a dependency or splice reference names no
	// NodeID present in operators and no SourceID present in sources.
	ErrUnknownRef = errors.New("graph: unknown reference")

	// ErrUnknownSink indicates a SinkID not present in sinkDependencies.
	ErrUnknownSink = errors.New("graph: unknown sink")

	// ErrKindArity indicates a node's dependency/fit-dependency shape
	// violates I3–I7 for its kind (e.g. a SourceNode with dependencies,
	// an EstimatorNode with zero dependencies, a fit dependency that
	// doesn't name an EstimatorNode).
	ErrKindArity = errors.New("graph: invalid dependency arity for node kind")

	// ErrEstimatorAsData indicates a data dependency names an
	// EstimatorNode (I7: estimators do not produce data).
	ErrEstimatorAsData = errors.New("graph: estimator node used as a data dependency")

	// ErrCycle indicates the graph is not acyclic (I8).
	ErrCycle = errors.New("graph: cycle detected")

	// ErrSinkUnreachable indicates a sink does not resolve, possibly
	// transitively, to reachable sources only via data edges (I9).
	ErrSinkUnreachable = errors.New("graph: sink does not resolve to a source")

	// ErrKeySetMismatch indicates dependencies' key set does not equal
	// operators' key set (I2).
	ErrKeySetMismatch = errors.New("graph: dependencies key set does not match operators key set")

	// ErrSpliceContract indicates a connectGraph/replaceNodes splice map
	// violates its key-set or value-membership contract.
	ErrSpliceContract = errors.New("graph: splice contract violated")
)

// InvalidArgumentError is returned by constructors and mutators when
// one or more I1–I9 violations, or an API-misuse splice contract
// violation, are detected. Violations are aggregated with
// go.uber.org/multierr so a single call that triggers several
// violations reports all of them at once; errors.Is against any of the
// sentinels above still matches because multierr preserves the
// wrapped chain.
type InvalidArgumentError struct {
	Op  string
	Err error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("graph: %s: %v", e.Op, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

// invalidArgument builds an *InvalidArgumentError from one or more
// violations, returning nil if violations is empty.
func invalidArgument(op string, violations ...error) error {
	agg := multierr.Combine(violations...)
	if agg == nil {
		return nil
	}

	return &InvalidArgumentError{Op: op, Err: agg}
}

// NotFoundError is returned by accessors when the looked-up id is
// absent from the graph.
type NotFoundError struct {
	Op  string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("graph: %s: %v", e.Op, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func notFound(op string, sentinel error) error {
	return &NotFoundError{Op: op, Err: sentinel}
}

var (
	// ErrNodeNotFound indicates a NodeID absent from operators.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrSourceNotFound indicates a SourceID absent from sources.
	ErrSourceNotFound = errors.New("graph: source not found")
)
