package graph

import "github.com/cellgraph/spreadsheet/position"

// WouldCycle implements spec.md §4.5: starting a breadth-first
// traversal from the union of seeds (a candidate formula's
// prospective referenced positions, not yet installed as edges),
// following each visited position's current out edges, reporting true
// if self is ever reached. The live graph is read-only here — the
// candidate's edges are never installed by this call, matching
// spec.md's "the live graph is not mutated by detection".
func (g *Graph) WouldCycle(self position.Position, seeds []position.Position) bool {
	if len(seeds) == 0 {
		return false
	}

	visited := make(map[position.Position]struct{})
	queue := make([]position.Position, len(seeds))
	copy(queue, seeds)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == self {
			return true
		}
		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		for next := range g.out[cur] {
			if _, seen := visited[next]; !seen {
				queue = append(queue, next)
			}
		}
	}

	return false
}
