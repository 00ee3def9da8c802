// Package cell implements the cell state machine of spec.md §3/§4.3:
// a tagged variant over {empty, text, formula}, the formula variant
// owning its AST and a memoized value.
//
// Following the polymorphic-cell design note in spec.md §9, this is a
// single struct with a Kind discriminant rather than an interface with
// three implementations and type assertions — closer to
// vogtb-go-spreadsheet's CellType/CellValue split (cell.go) than to
// original_source's Cell::Impl/EmptyImpl/TextImpl/FormulaImpl hierarchy.
package cell

import (
	"github.com/cellgraph/spreadsheet/ast"
	"github.com/cellgraph/spreadsheet/formula"
	"github.com/cellgraph/spreadsheet/position"
)

// escapeSigil, at position 0 of a text cell, escapes the formula
// sigil: it is dropped from GetValue's display but retained in GetText.
const escapeSigil = '`'

// formulaSigil, at position 0 of a non-trivial text, marks formula content.
const formulaSigil = '='

// Kind discriminates the three cell variants.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindFormula
)

// Cell is one spreadsheet slot. The zero value is not meaningful;
// use Empty() or Build().
type Cell struct {
	kind Kind

	raw string // Text: the exact text passed to Build, escape included.

	tree                 ast.Node // Formula only.
	refs                 []position.Position
	canonicalFormulaText string // "=" + ast.Print(tree)
	cache                *ast.Value
}

// Empty returns a fresh empty cell.
func Empty() *Cell {
	return &Cell{kind: KindEmpty}
}

// Build classifies text per spec.md §4.3's rule (empty string -> Empty;
// length >= 2 with a leading '=' -> Formula; otherwise -> Text) and
// parses formula content, returning the *formula.ParseError unchanged
// on failure so callers can distinguish FormulaParse from other errors.
func Build(text string) (*Cell, error) {
	switch {
	case text == "":
		return Empty(), nil
	case len(text) >= 2 && text[0] == formulaSigil:
		tree, err := formula.Parse(text[1:])
		if err != nil {
			return nil, err
		}
		refs := ast.ReferencedCells(tree)
		return &Cell{
			kind:                 KindFormula,
			tree:                 tree,
			refs:                 refs,
			canonicalFormulaText: string(formulaSigil) + ast.Print(tree),
		}, nil
	default:
		return &Cell{kind: KindText, raw: text}, nil
	}
}

// Kind reports which of the three variants this cell currently is.
func (c *Cell) Kind() Kind { return c.kind }

// Text implements GetText: the raw text for Text cells (escape
// preserved), the canonical "=" + pretty-printed form for Formula
// cells, "" for Empty.
func (c *Cell) Text() string {
	switch c.kind {
	case KindText:
		return c.raw
	case KindFormula:
		return c.canonicalFormulaText
	default:
		return ""
	}
}

// DisplayText is the Text-cell value after stripping exactly one
// leading escape sigil, per spec.md §4.3/§9 (two escapes in a row
// display as one). It is meaningless for non-Text cells.
func (c *Cell) DisplayText() string {
	if c.kind != KindText {
		return c.raw
	}
	if len(c.raw) > 0 && c.raw[0] == escapeSigil {
		return c.raw[1:]
	}
	return c.raw
}

// ReferencedCells implements GetReferencedCells: the sorted,
// deduplicated positions a Formula cell's AST reads, nil otherwise.
func (c *Cell) ReferencedCells() []position.Position {
	return c.refs
}

// HasCache reports whether a Formula cell's memoized value is
// currently valid (present). Always false for non-Formula cells.
func (c *Cell) HasCache() bool {
	return c.kind == KindFormula && c.cache != nil
}

// ClearCache invalidates a Formula cell's memo; a no-op otherwise.
// Sheet.SetCell calls this on every cell graph.TransitiveIn reaches
// from an edit.
func (c *Cell) ClearCache() {
	if c.kind == KindFormula {
		c.cache = nil
	}
}

// Value implements GetValue: dispatches on kind, filling a Formula
// cell's memo on first access via r (spec.md §9's "fill cache if
// empty" operation — the only mutation GetValue performs).
func (c *Cell) Value(r ast.Resolver) Value {
	switch c.kind {
	case KindEmpty:
		return Value{Kind: ValueEmpty}
	case KindText:
		return Value{Kind: ValueString, Text: c.DisplayText()}
	case KindFormula:
		if c.cache == nil {
			v := c.tree.Eval(r)
			c.cache = &v
		}
		if c.cache.IsError() {
			return Value{Kind: ValueError, Err: c.cache.Err}
		}
		return Value{Kind: ValueNumber, Number: c.cache.Number}
	default:
		return Value{Kind: ValueEmpty}
	}
}
