// Package dfs implements cycle detection for core.Graph, a simple
// directed graph. DetectCycles enumerates all simple cycles using
// depth-first search with three-color marking and back-edge detection,
// producing canonical minimal rotations of each cycle via Booth's
// algorithm in O(L) time. The final cycle list is sorted for
// deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#vertices, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/flowgraph/core"
)

// DetectCycles inspects graph g for all simple cycles.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If a neighbor-fetch error occurs, returns (false, nil, error).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	seen := make(map[string]struct{}, len(verts))
	var cycles [][]string

	for _, v := range verts {
		if state[v.ID] == White {
			if err := dfsVisit(g, v.ID, state, &path, seen, &cycles); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycleSignature(cycles[i]) < cycleSignature(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from vertex 'id'. It records any
// back-edge Gray→Gray cycle it encounters and appends it to 'cycles'.
func dfsVisit(
	g *core.Graph,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) error {
	state[id] = Gray
	*path = append(*path, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}

	for _, e := range edges {
		nbr := e.To

		switch state[nbr] {
		case White:
			if err = dfsVisit(g, nbr, state, path, seen, cycles); err != nil {
				return err
			}
		case Gray:
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil
}

// recordCycle extracts the cycle ending at vertex 'start' out of the
// current DFS path stack ('path' holds [ ... start ... current ]),
// canonicalizes it, and appends it to 'cycles' unless an equivalent
// rotation was already recorded.
func recordCycle(
	start string,
	path []string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	idx := indexOfVertex(path, start)

	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonicalCycle(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonicalCycle picks, between a closed cycle's forward and reversed
// vertex sequence, the lexicographically smallest rotation (Booth's
// algorithm), so two DFS discoveries of the same cycle via different
// start vertices or traversal direction collapse to one entry.
// Returns the comma-joined signature of that rotation and the closed
// cycle slice [v0, v1, ..., v0] in canonical order.
func canonicalCycle(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := minimalRotation(base)
	rotB := minimalRotation(reversedVertices(base))

	picker := rotF
	if compareVertices(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])

	return cycleSignature(closed), closed
}

// indexOfVertex returns the first index of id in path, or -1 if path
// never visited it; path is always a DFS stack so id is always found
// when called from recordCycle.
func indexOfVertex(path []string, id string) int {
	for i, v := range path {
		if v == id {
			return i
		}
	}

	return -1
}

// reversedVertices returns a new slice holding vertices in the
// opposite order, leaving vertices untouched.
func reversedVertices(vertices []string) []string {
	out := make([]string, len(vertices))
	for i := range vertices {
		out[i] = vertices[len(vertices)-1-i]
	}

	return out
}

// compareVertices lexicographically compares two equal-length vertex
// ID slices, returning -1, 0, or 1 the way strings.Compare does for a
// single string.
func compareVertices(a, b []string) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// cycleSignature joins a closed cycle's vertex IDs into one string,
// used both as a dedup key and as the sort key that makes DetectCycles'
// output order deterministic.
func cycleSignature(vertices []string) string {
	return strings.Join(vertices, ",")
}

// minimalRotation finds vertices' lexicographically minimal rotation
// via Booth's algorithm, in O(n): duplicate the sequence to length 2n,
// scan with a KMP-style failure-link table tracking the best
// rotation-start candidate k, then slice out the n vertices from k.
func minimalRotation(vertices []string) []string {
	doubled := append(append([]string(nil), vertices...), vertices...)
	n := len(vertices)
	failure := make([]int, 2*n)
	for i := range failure {
		failure[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		i := failure[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = failure[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			failure[j-k] = -1
		} else {
			failure[j-k] = i + 1
		}
	}

	rotation := make([]string, n)
	copy(rotation, doubled[k:k+n])

	return rotation
}
