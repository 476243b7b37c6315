// Package core provides a small, directed, string-labeled graph used as the
// rendering target for pipeline visualization snapshots (see package
// visualize). It is a deliberately narrowed descendant of a general-purpose
// thread-safe graph primitive: no multi-edges, no self-loops, no mixed
// per-edge directedness, no weights — a pipeline snapshot is always a
// simple DAG, so those knobs have no caller here.
//
// Why use core.Graph for a snapshot instead of rendering a pipeline.Pipeline
// directly?
//
//   - It decouples visualize from the pipeline package's identifier spaces
//     (graph.NodeID/SourceID/SinkID) — the snapshot only needs string labels
//     and a kind tag, so core has no import on pipeline at all.
//   - Deterministic iteration — Vertices() and Edges() both return
//     lexicographically sorted results, so DOT output is stable across runs.
//   - A single RWMutex guards vertices and edges. A snapshot is normally
//     built once by one goroutine, but the lock keeps the type safe to share
//     across a long-lived diagnostics server without a second API surface.
//
// Core methods:
//
//	AddVertex(id string, kind VertexKind) error // O(1)
//	AddEdge(from, to string, kind EdgeKind) error // O(d), d = out-degree of from
//	Vertices() []*Vertex // O(V log V)
//	Edges() []*Edge      // O(E log E)
//	Neighbors(id string) ([]*Edge, error) // O(d log d), outgoing only (directed)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrDuplicateEdge  – an edge with the same (from, to) pair already exists
package core
