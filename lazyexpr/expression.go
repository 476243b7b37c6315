// Package lazyexpr provides a generic, memoized lazy expression: a
// thunk whose first Get forces and stores the result, and whose
// subsequent calls return the stored value without recomputing it.
//
// Expression is the typed carrier threaded between the executor and
// the operator interfaces: an operator pulls each input position at
// most once, in order, and any input position it never pulls is never
// forced — so an operator that ignores an unused input skips its
// (possibly expensive) sub-evaluation entirely.
package lazyexpr

import "sync"

// Expression wraps a thunk producing a T, forcing it at most once.
//
// Concurrency: Get is safe for concurrent use via sync.Once, mirroring
// the defend-even-under-a-single-writer-contract posture the rest of
// this module follows for shared state (e.g. core.Graph's RWMutex)
// even though a single Expression is, in the single-threaded executor
// model, normally forced from one goroutine.
type Expression[T any] struct {
	once  sync.Once
	thunk func() (T, error)
	value T
	err   error
}

// NewExpression wraps thunk in an Expression that forces it at most once.
func NewExpression[T any](thunk func() (T, error)) *Expression[T] {
	return &Expression[T]{thunk: thunk}
}

// Ready returns an already-forced Expression holding value, useful when
// the executor already has the result in hand (e.g. a cache hit) and
// wants to present it through the same lazy-sequence interface.
func Ready[T any](value T) *Expression[T] {
	e := &Expression[T]{value: value}
	e.once.Do(func() {})

	return e
}

// Get forces the expression on first call and returns the stored
// result on every subsequent call.
func (e *Expression[T]) Get() (T, error) {
	e.once.Do(func() {
		e.value, e.err = e.thunk()
	})

	return e.value, e.err
}
