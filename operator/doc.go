// Package operator declares the contracts a pipeline node wraps:
// TransformerOp, EstimatorOp, and the opaque Dataset boundary type.
//
// None of these are implemented here — the catalog of concrete
// transformers and estimators (a scaler, an encoder, a gradient-boosted
// tree, and so on) is an external collaborator that honors these
// contracts; this package only fixes the shape of that boundary.
//
// Identity equality. The executor's dataset cache is keyed by
// (node, Dataset identity), using Go's native interface equality —
// which compares the dynamic type and, for pointer-shaped dynamic
// types, the pointer value. A concrete Dataset implementation MUST
// therefore be a pointer type (or otherwise carry reference semantics):
// two structurally identical datasets constructed separately are two
// distinct cache keys; only handing the same *Dataset value to two
// call sites makes the executor treat them as the same input.
package operator
