// Package visualize renders a pipeline graph as Graphviz DOT, for
// diagnostics only — nothing in graph/, exec/, or pipeline/ depends on
// this package.
//
// Export walks the data- and fit-dependency closure reachable from one
// sink and snapshots it into a core.Graph (a trimmed, string-labeled
// graph type). WriteDOT then emits that snapshot as Graphviz DOT text,
// written to its io.Writer one line at a time, styling fit-dependency edges
// distinctly from data-dependency edges.
package visualize
