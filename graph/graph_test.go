package graph

import (
	"reflect"
	"sort"
	"testing"

	"github.com/cellgraph/spreadsheet/position"
)

func pos(row, col int) position.Position { return position.New(row, col) }

func sortedPositions(ps []position.Position) []position.Position {
	out := append([]position.Position(nil), ps...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func TestSetOutMaintainsInSymmetry(t *testing.T) {
	g := New()
	a1, b1, c1 := pos(0, 0), pos(1, 0), pos(2, 0)

	g.SetOut(b1, []position.Position{a1})
	if got := sortedPositions(g.In(a1)); !reflect.DeepEqual(got, []position.Position{b1}) {
		t.Fatalf("In(A1) = %v, want [B1]", got)
	}
	if got := sortedPositions(g.Out(b1)); !reflect.DeepEqual(got, []position.Position{a1}) {
		t.Fatalf("Out(B1) = %v, want [A1]", got)
	}

	// re-point B1 at C1 instead: A1's in-edge from B1 must disappear.
	g.SetOut(b1, []position.Position{c1})
	if got := g.In(a1); len(got) != 0 {
		t.Fatalf("In(A1) = %v, want empty after repoint", got)
	}
	if got := sortedPositions(g.In(c1)); !reflect.DeepEqual(got, []position.Position{b1}) {
		t.Fatalf("In(C1) = %v, want [B1]", got)
	}
}

func TestRemoveKeepsIncomingEdges(t *testing.T) {
	g := New()
	a1, b1 := pos(0, 0), pos(1, 0)
	g.SetOut(b1, []position.Position{a1})

	// A1 itself has no formula (no out edges); clearing it must not
	// disturb B1's edge into it, per spec.md §4.4.
	g.Remove(a1)
	if got := sortedPositions(g.In(a1)); !reflect.DeepEqual(got, []position.Position{b1}) {
		t.Fatalf("In(A1) = %v, want [B1] preserved after Remove", got)
	}
}

func TestWouldCycleDirect(t *testing.T) {
	g := New()
	a1, b1 := pos(0, 0), pos(1, 0)
	g.SetOut(a1, []position.Position{b1}) // A1 = B1

	// B1 = A1 would close a 2-cycle.
	if !g.WouldCycle(b1, []position.Position{a1}) {
		t.Fatal("expected cycle B1->A1->B1 to be detected")
	}
}

func TestWouldCycleTransitive(t *testing.T) {
	g := New()
	a1, b1, c1 := pos(0, 0), pos(1, 0), pos(2, 0)
	g.SetOut(a1, []position.Position{b1}) // A1 = B1
	g.SetOut(b1, []position.Position{c1}) // B1 = C1

	// C1 = A1 would close A1->B1->C1->A1.
	if !g.WouldCycle(c1, []position.Position{a1}) {
		t.Fatal("expected transitive cycle to be detected")
	}
}

func TestWouldCycleFalseOnDiamond(t *testing.T) {
	g := New()
	a1, b1, c1, d1 := pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0)
	g.SetOut(b1, []position.Position{a1}) // B1 = A1
	g.SetOut(c1, []position.Position{a1}) // C1 = A1
	g.SetOut(d1, []position.Position{b1, c1})

	if g.WouldCycle(d1, []position.Position{b1, c1}) {
		t.Fatal("a diamond dependency is not a cycle")
	}
}

func TestTransitiveInVisitsOnceOnDiamond(t *testing.T) {
	g := New()
	a1, b1, c1, d1 := pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0)
	g.SetOut(b1, []position.Position{a1})
	g.SetOut(c1, []position.Position{a1})
	g.SetOut(d1, []position.Position{b1, c1})

	got := sortedPositions(g.TransitiveIn(a1))
	want := sortedPositions([]position.Position{b1, c1, d1})
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TransitiveIn(A1) = %v, want %v", got, want)
	}
}

func TestTransitiveInExcludesSelf(t *testing.T) {
	g := New()
	a1 := pos(0, 0)
	if got := g.TransitiveIn(a1); len(got) != 0 {
		t.Fatalf("TransitiveIn on isolated position = %v, want empty", got)
	}
}
