package spreadsheet

import (
	"github.com/vogtb/go-spreadsheet/packages/formula"
)

// ValueType represents numeric constants for cell value types
type ValueType uint8

const (
	ValueTypeText   ValueType = 0
	ValueTypeNumber ValueType = 1
	ValueTypeError  ValueType = 2
)

// CellValue represents a computed cell value with type information. only
// the field matching Type is meaningful.
type CellValue struct {
	Type   ValueType
	Text   string
	Number float64
	Error  *formula.FormulaError
}

func TextValue(text string) CellValue {
	return CellValue{Type: ValueTypeText, Text: text}
}

func NumberValue(number float64) CellValue {
	return CellValue{Type: ValueTypeNumber, Number: number}
}

func ErrorValue(err *formula.FormulaError) CellValue {
	return CellValue{Type: ValueTypeError, Error: err}
}

func (v CellValue) IsError() bool {
	return v.Type == ValueTypeError
}

// String renders the value the way it is printed in a grid.
func (v CellValue) String() string {
	switch v.Type {
	case ValueTypeNumber:
		return formula.FormatNumber(v.Number)
	case ValueTypeError:
		return v.Error.String()
	default:
		return v.Text
	}
}
