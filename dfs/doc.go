// Package dfs implements cycle detection and topological sort on a
// core.Graph, using three-color (White/Gray/Black) depth-first search.
//
// What:
//
//   - DetectCycles: enumerates all simple cycles using vertex coloring
//     with back-edge recording and canonical signature deduplication
//     (Booth's minimal-rotation algorithm), so a cycle and its reverse
//     or rotation are reported once.
//   - TopologicalSort: computes a linear ordering of vertices such that
//     every edge u→v places u before v, returning ErrCycleDetected if
//     the graph is not acyclic.
//
// Why:
//
//   - visualize.Export renders a pipeline's dependency graph as a
//     core.Graph snapshot and runs DetectCycles on it as a sanity check
//     (a validated pipeline graph is already acyclic, but the snapshot
//     step does not re-trust that). Export does not sort; a caller runs
//     TopologicalSort on the snapshot to get the stable vertex order it
//     passes to visualize.WriteDOT.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//
// Complexity:
//
//   - DetectCycles:    Time O(V+E+C·L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrCycleDetected        cycle discovered during TopologicalSort
//   - ErrNeighborFetch        neighbor lookup failed
//   - context.Canceled        traversal canceled via context
package dfs
