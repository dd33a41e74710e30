package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

// RunnableSheet is a chainable wrapper around Sheet for scripted use. it
// tracks the first error internally and turns later calls into no-ops.
type RunnableSheet struct {
	sheet   *Sheet
	err     error
	printLn func(string)
}

// NewRunnableSheet creates a new RunnableSheet. printLn is required and
// will be used for all output (Log, Print*, Size, CheckError)
func NewRunnableSheet(printLn func(string), opts ...Option) *RunnableSheet {
	return &RunnableSheet{
		sheet:   NewSheet(opts...),
		err:     nil,
		printLn: printLn,
	}
}

func (r *RunnableSheet) position(cell string) (address.Position, bool) {
	pos := address.FromString(cell)
	if !pos.IsValid() {
		r.err = NewApplicationError(OutOfRange, fmt.Sprintf("%q is not a cell in the sheet", cell), ErrInvalidPosition)
		return pos, false
	}
	return pos, true
}

// Set sets a cell's text (chainable)
func (r *RunnableSheet) Set(cell string, text string) *RunnableSheet {
	if r.err != nil {
		return r // no-op if there's already an error
	}
	if pos, ok := r.position(cell); ok {
		r.err = r.sheet.SetCell(pos, text)
	}
	return r
}

// Clear empties a cell (chainable)
func (r *RunnableSheet) Clear(cell string) *RunnableSheet {
	if r.err != nil {
		return r // no-op if there's already an error
	}
	if pos, ok := r.position(cell); ok {
		r.err = r.sheet.ClearCell(pos)
	}
	return r
}

// Get retrieves a cell value (chainable)
func (r *RunnableSheet) Get(cell string) (*RunnableSheet, CellValue) {
	if r.err != nil {
		return r, CellValue{} // no-op if there's already an error
	}
	pos, ok := r.position(cell)
	if !ok {
		return r, CellValue{}
	}
	value, err := r.sheet.Value(pos)
	if err != nil {
		r.err = err
	}
	return r, value
}

// Log prints the value of a cell (chainable)
func (r *RunnableSheet) Log(cell string) *RunnableSheet {
	_, value := r.Get(cell)
	if r.err != nil {
		return r
	}
	r.printLn(fmt.Sprintf("%s: %s", cell, value))
	return r
}

// Size prints the printable size as "rows cols" (chainable)
func (r *RunnableSheet) Size() *RunnableSheet {
	if r.err != nil {
		return r
	}
	size := r.sheet.GetPrintableSize()
	r.printLn(fmt.Sprintf("%d %d", size.Rows, size.Cols))
	return r
}

// PrintValues prints the value grid, one printLn per row (chainable)
func (r *RunnableSheet) PrintValues() *RunnableSheet {
	return r.printGrid(r.sheet.PrintValues)
}

// PrintTexts prints the text grid, one printLn per row (chainable)
func (r *RunnableSheet) PrintTexts() *RunnableSheet {
	return r.printGrid(r.sheet.PrintTexts)
}

func (r *RunnableSheet) printGrid(write func(io.Writer) error) *RunnableSheet {
	if r.err != nil {
		return r
	}
	var sb strings.Builder
	if r.err = write(&sb); r.err != nil {
		return r
	}
	for _, line := range strings.SplitAfter(sb.String(), "\n") {
		if line != "" {
			r.printLn(strings.TrimSuffix(line, "\n"))
		}
	}
	return r
}

// Error returns the current error state
func (r *RunnableSheet) Error() error {
	return r.err
}

// CheckError logs the current error using the printLn function (chainable)
func (r *RunnableSheet) CheckError() *RunnableSheet {
	if r.err != nil {
		r.printLn(fmt.Sprintf("ERROR: %v", r.err))
	} else {
		r.printLn("No errors")
	}
	return r
}

// Sheet returns the underlying sheet. use with caution as it bypasses
// error tracking.
func (r *RunnableSheet) Sheet() *Sheet {
	return r.sheet
}

// Reset clears the error state (chainable)
func (r *RunnableSheet) Reset() *RunnableSheet {
	r.err = nil
	return r
}

// Then allows conditional execution based on current error state
func (r *RunnableSheet) Then(fn func(*RunnableSheet) *RunnableSheet) *RunnableSheet {
	if r.err != nil {
		return r // skip if there's an error
	}
	return fn(r)
}

// OnError allows error handling in the chain
func (r *RunnableSheet) OnError(fn func(error) error) *RunnableSheet {
	if r.err != nil {
		r.err = fn(r.err)
	}
	return r
}

// Must panics if there's an error (chainable). useful for ensuring
// critical operations succeed
func (r *RunnableSheet) Must() *RunnableSheet {
	if r.err != nil {
		panic(r.err)
	}
	return r
}
