// Package graph implements the bidirectional dependency graph of
// spec.md §4.4: for each position, the set of positions it reads
// (out) and the set of positions that read it (in), plus the cycle
// detector (§4.5) and the cache-invalidation traversal (§4.6) that
// operate on that structure.
//
// Per the design note in spec.md §9, edges are keyed by
// position.Position rather than raw cell pointers — a lookup key into
// the sheet's map, not an owning reference — which is what
// vogtb-go-spreadsheet's DependencyGraph (graph.go) does with
// CellAddress, generalized here to a single implicit sheet (no
// worksheet ID) since cross-sheet references are a spec Non-goal.
package graph

import "github.com/cellgraph/spreadsheet/position"

// Graph tracks out/in edges between positions. The zero value is not
// usable; use New.
type Graph struct {
	out map[position.Position]map[position.Position]struct{}
	in  map[position.Position]map[position.Position]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		out: make(map[position.Position]map[position.Position]struct{}),
		in:  make(map[position.Position]map[position.Position]struct{}),
	}
}

// Out returns the positions self directly reads (its formula
// operands), in no particular order.
func (g *Graph) Out(self position.Position) []position.Position {
	return keys(g.out[self])
}

// In returns the positions that directly read self, in no particular order.
func (g *Graph) In(self position.Position) []position.Position {
	return keys(g.in[self])
}

// SetOut replaces self's outgoing edges with newOut, maintaining the
// in-set symmetry invariant (spec.md §3 invariant 1: x ∈ y.out ⇔ y ∈
// x.in) by detaching every old target first. This is graph.go's half
// of spec.md §4.4's commit step; materializing target cells in the
// sheet is the caller's responsibility (the graph doesn't know
// whether a position holds a real Cell).
func (g *Graph) SetOut(self position.Position, newOut []position.Position) {
	for target := range g.out[self] {
		g.detach(target, self)
	}
	delete(g.out, self)

	if len(newOut) == 0 {
		return
	}
	set := make(map[position.Position]struct{}, len(newOut))
	for _, target := range newOut {
		set[target] = struct{}{}
		g.attachIn(target, self)
	}
	g.out[self] = set
}

// Remove detaches self's outgoing side from the graph: its out edges
// (and their matching in back-edges) are cleared. Per spec.md §4.4, in
// edges pointing at self are intentionally left alone — an emptied
// cell that is still referenced must stay addressable.
func (g *Graph) Remove(self position.Position) {
	g.SetOut(self, nil)
}

func (g *Graph) detach(target, self position.Position) {
	if set, ok := g.in[target]; ok {
		delete(set, self)
		if len(set) == 0 {
			delete(g.in, target)
		}
	}
}

func (g *Graph) attachIn(target, self position.Position) {
	if g.in[target] == nil {
		g.in[target] = make(map[position.Position]struct{})
	}
	g.in[target][self] = struct{}{}
}

func keys(set map[position.Position]struct{}) []position.Position {
	out := make([]position.Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}
