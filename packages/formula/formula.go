// Package formula compiles arithmetic cell formulas and evaluates them
// against a cell lookup.
package formula

import (
	"github.com/vogtb/go-spreadsheet/packages/address"
)

// CellLookup resolves a referenced cell to a number. An error returned
// by NumberAt is propagated as the formula's result.
type CellLookup interface {
	NumberAt(pos address.Position) (float64, error)
}

// CellLookupFunc adapts a plain function to CellLookup.
type CellLookupFunc func(pos address.Position) (float64, error)

func (f CellLookupFunc) NumberAt(pos address.Position) (float64, error) {
	return f(pos)
}

// Formula is a compiled expression. It is immutable after Compile.
type Formula struct {
	root Node
	refs []address.Position
}

// Evaluate computes the formula. The returned error, when not nil, is
// always a *FormulaError.
func (f *Formula) Evaluate(lookup CellLookup) (float64, error) {
	value, err := f.root.Eval(lookup)
	if err != nil {
		return 0, AsFormulaError(err)
	}
	return value, nil
}

// Expression returns the canonical rendering, without the leading '='.
func (f *Formula) Expression() string {
	return f.root.ToString()
}

// ReferencedCells lists referenced positions in order of appearance.
// References outside the addressable range appear as address.None.
func (f *Formula) ReferencedCells() []address.Position {
	refs := make([]address.Position, len(f.refs))
	copy(refs, f.refs)
	return refs
}

// Root exposes the compiled tree.
func (f *Formula) Root() Node {
	return f.root
}
