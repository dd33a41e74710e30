// Package spreadsheet implements a single in-memory sheet: sparse cell
// storage, dependency tracking between formula cells, cycle rejection and
// lazily cached formula results.
package spreadsheet

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/vogtb/go-spreadsheet/packages/address"
	"github.com/vogtb/go-spreadsheet/packages/formula"
)

// Option configures a Sheet
type Option func(*Sheet)

// WithStats injects the collector that receives cache events
func WithStats(stats Stats) Option {
	return func(s *Sheet) {
		if stats != nil {
			s.stats = stats
		}
	}
}

// Sheet combines cell storage, the dependency index and formula
// evaluation. it is not safe for concurrent use; reads may fill caches.
type Sheet struct {
	cells map[address.Position]*Cell
	graph *DependencyGraph
	rows  *lineCounter
	cols  *lineCounter
	stats Stats
}

// NewSheet creates an empty sheet
func NewSheet(opts ...Option) *Sheet {
	s := &Sheet{
		cells: make(map[address.Position]*Cell),
		graph: NewDependencyGraph(),
		rows:  newLineCounter(),
		cols:  newLineCounter(),
		stats: noopStats{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCell replaces the content of a cell. a formula that does not compile
// or that would close a reference cycle is rejected and the sheet is left
// unchanged. empty text clears the cell.
func (s *Sheet) SetCell(pos address.Position, text string) error {
	if !pos.IsValid() {
		return invalidPositionError(pos)
	}

	cell, err := NewCell(text)
	if err != nil {
		return formulaCompileError(pos, err)
	}
	if cell.Kind() == CellKindEmpty {
		return s.ClearCell(pos)
	}

	if cell.Kind() == CellKindFormula && cell.IsValid() {
		if DetectCycle(pos, cell.edges(), s.forwardEdges) {
			return circularDependencyError(pos)
		}
	}

	s.invalidate(pos)

	previous, exists := s.cells[pos]
	var previousEdges []address.Position
	if exists {
		previousEdges = previous.edges()
	}
	s.graph.ReplaceEdges(pos, previousEdges, cell.edges())

	if !exists {
		s.rows.inc(pos.Row)
		s.cols.inc(pos.Col)
	}
	s.cells[pos] = cell
	return nil
}

// GetCell returns the stored cell, or nil when the slot is empty
func (s *Sheet) GetCell(pos address.Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, invalidPositionError(pos)
	}
	return s.cells[pos], nil
}

// ClearCell empties a cell. clearing an empty cell is a no-op. formulas
// that read the cleared cell keep their edges to it.
func (s *Sheet) ClearCell(pos address.Position) error {
	if !pos.IsValid() {
		return invalidPositionError(pos)
	}

	cell, exists := s.cells[pos]
	if !exists {
		return nil
	}

	s.invalidate(pos)
	s.graph.ReplaceEdges(pos, cell.edges(), nil)
	delete(s.cells, pos)
	s.rows.dec(pos.Row)
	s.cols.dec(pos.Col)
	return nil
}

// GetPrintableSize returns the bounding box of populated cells
func (s *Sheet) GetPrintableSize() address.Size {
	return address.Size{
		Rows: s.rows.extent(),
		Cols: s.cols.extent(),
	}
}

// PrintValues writes the computed values as tab separated rows
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.print(w, func(pos address.Position, cell *Cell) string {
		return s.cellValue(pos, cell).String()
	})
}

// PrintTexts writes the edit texts as tab separated rows
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.print(w, func(_ address.Position, cell *Cell) string {
		return cell.Text()
	})
}

func (s *Sheet) print(w io.Writer, render func(address.Position, *Cell) string) error {
	size := s.GetPrintableSize()
	bw := bufio.NewWriter(w)
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				bw.WriteByte('\t')
			}
			pos := address.Position{Row: row, Col: col}
			if cell, exists := s.cells[pos]; exists {
				bw.WriteString(render(pos, cell))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Value returns the computed value of a cell; an empty cell is empty text
func (s *Sheet) Value(pos address.Position) (CellValue, error) {
	if !pos.IsValid() {
		return CellValue{}, invalidPositionError(pos)
	}
	cell, exists := s.cells[pos]
	if !exists {
		return TextValue(""), nil
	}
	return s.cellValue(pos, cell), nil
}

// Text returns the edit text of a cell; an empty cell is ""
func (s *Sheet) Text(pos address.Position) (string, error) {
	if !pos.IsValid() {
		return "", invalidPositionError(pos)
	}
	cell, exists := s.cells[pos]
	if !exists {
		return "", nil
	}
	return cell.Text(), nil
}

// NumberAt resolves a cell for formula evaluation. empty cells and empty
// text are 0, text must parse as a finite number, and formula errors
// propagate unchanged.
func (s *Sheet) NumberAt(pos address.Position) (float64, error) {
	if !pos.IsValid() {
		return 0, formula.NewFormulaError(formula.ErrorCodeRef, "reference outside of the sheet")
	}
	cell, exists := s.cells[pos]
	if !exists {
		return 0, nil
	}

	value := s.cellValue(pos, cell)
	switch value.Type {
	case ValueTypeNumber:
		return value.Number, nil
	case ValueTypeError:
		return 0, value.Error
	}

	if value.Text == "" {
		return 0, nil
	}
	number, err := strconv.ParseFloat(value.Text, 64)
	if err != nil || math.IsInf(number, 0) || math.IsNaN(number) {
		return 0, formula.NewFormulaError(formula.ErrorCodeValue, "cell "+pos.String()+" is not a number")
	}
	return number, nil
}

// Dependents returns the cells whose formulas directly read pos
func (s *Sheet) Dependents(pos address.Position) []address.Position {
	return s.graph.GetDependents(pos)
}

func (s *Sheet) cellValue(pos address.Position, cell *Cell) CellValue {
	value, hit := cell.value(s)
	if cell.Kind() == CellKindFormula {
		if hit {
			s.stats.CacheHit(pos)
		} else {
			s.stats.CacheMiss(pos)
		}
	}
	return value
}

// forwardEdges are the cells read when evaluating pos. a formula with a
// reference outside the sheet evaluates to #REF! without reading any.
func (s *Sheet) forwardEdges(pos address.Position) []address.Position {
	cell, exists := s.cells[pos]
	if !exists || !cell.IsValid() {
		return nil
	}
	return cell.edges()
}

// invalidate drops the cached results of pos and everything that
// transitively reads it
func (s *Sheet) invalidate(pos address.Position) {
	s.invalidateCell(pos)
	for _, dependent := range s.graph.GetAllDependents(pos) {
		s.invalidateCell(dependent)
	}
}

func (s *Sheet) invalidateCell(pos address.Position) {
	if cell, exists := s.cells[pos]; exists && cell.InvalidateCache() {
		s.stats.CacheInvalidated(pos)
	}
}

var _ formula.CellLookup = (*Sheet)(nil)
