package spreadsheet

import (
	"slices"

	"github.com/vogtb/go-spreadsheet/packages/address"
	"github.com/vogtb/go-spreadsheet/packages/formula"
)

const (
	FormulaSign = '='
	EscapeSign  = '\''
)

// CellKind represents the content variant of a cell
type CellKind uint8

const (
	CellKindEmpty   CellKind = 0
	CellKindText    CellKind = 1
	CellKindFormula CellKind = 2
)

// memo holds the cached result of a formula cell. it is the only mutable
// part of a Cell.
type memo struct {
	value float64
	valid bool
}

// Cell is the immutable content of one sheet slot. editing a cell means
// building a new one.
type Cell struct {
	kind    CellKind
	raw     string
	formula *formula.Formula
	refs    []address.Position // sorted, unique, may contain address.None
	cache   *memo
}

// NewCell classifies text and, for formulas, compiles it. text starting
// with FormulaSign and longer than one character is a formula.
func NewCell(text string) (*Cell, error) {
	if text == "" {
		return &Cell{kind: CellKindEmpty}, nil
	}

	if text[0] != FormulaSign || len(text) == 1 {
		return &Cell{kind: CellKindText, raw: text}, nil
	}

	compiled, err := formula.Compile(text[1:])
	if err != nil {
		return nil, err
	}

	refs := compiled.ReferencedCells()
	sortPositions(refs)

	return &Cell{
		kind:    CellKindFormula,
		raw:     text,
		formula: compiled,
		refs:    slices.Compact(refs),
		cache:   &memo{},
	}, nil
}

func (c *Cell) Kind() CellKind {
	return c.kind
}

// Text returns the edit text. for formulas this is the canonical
// rendering, not the source text.
func (c *Cell) Text() string {
	switch c.kind {
	case CellKindFormula:
		return string(FormulaSign) + c.formula.Expression()
	default:
		return c.raw
	}
}

// Value computes the cell's value, resolving references through lookup.
func (c *Cell) Value(lookup formula.CellLookup) CellValue {
	value, _ := c.value(lookup)
	return value
}

// value also reports whether a cached result was used
func (c *Cell) value(lookup formula.CellLookup) (CellValue, bool) {
	switch c.kind {
	case CellKindText:
		if c.raw[0] == EscapeSign {
			return TextValue(c.raw[1:]), false
		}
		return TextValue(c.raw), false
	case CellKindFormula:
		if c.cache.valid {
			return NumberValue(c.cache.value), true
		}
		if !c.IsValid() {
			return ErrorValue(formula.NewFormulaError(formula.ErrorCodeRef, "reference outside of the sheet")), false
		}
		number, err := c.formula.Evaluate(lookup)
		if err != nil {
			// errors are recomputed on every read
			return ErrorValue(formula.AsFormulaError(err)), false
		}
		c.cache.value = number
		c.cache.valid = true
		return NumberValue(number), false
	default:
		return TextValue(""), false
	}
}

// ReferencedCells returns the cells a formula reads, sorted and unique.
func (c *Cell) ReferencedCells() []address.Position {
	return slices.Clone(c.refs)
}

// edges are the referenced cells that can exist in the dependency index
func (c *Cell) edges() []address.Position {
	edges := make([]address.Position, 0, len(c.refs))
	for _, ref := range c.refs {
		if ref.IsValid() {
			edges = append(edges, ref)
		}
	}
	return edges
}

// InvalidateCache drops a cached formula result and reports whether
// there was one.
func (c *Cell) InvalidateCache() bool {
	if c.kind != CellKindFormula || !c.cache.valid {
		return false
	}
	c.cache.valid = false
	return true
}

func (c *Cell) IsCached() bool {
	return c.kind == CellKindFormula && c.cache.valid
}

// IsValid is false when the formula references a cell outside the sheet.
func (c *Cell) IsValid() bool {
	return !slices.Contains(c.refs, address.None)
}
