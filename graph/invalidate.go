package graph

import "github.com/cellgraph/spreadsheet/position"

// TransitiveIn returns every position transitively reachable from self
// by following in edges (self's direct and indirect dependents), with
// a visited set bounding the walk even though shared dependents can be
// reached by more than one path (spec.md §4.6). self itself is not
// included; the caller clears self's own cache separately (spec.md
// §4.6: "the edited cell itself has its cache cleared ... before the
// traversal seeds its in set").
func (g *Graph) TransitiveIn(self position.Position) []position.Position {
	visited := make(map[position.Position]struct{})
	queue := keys(g.in[self])
	var order []position.Position

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}
		order = append(order, cur)

		for next := range g.in[cur] {
			if _, seen := visited[next]; !seen {
				queue = append(queue, next)
			}
		}
	}

	return order
}
