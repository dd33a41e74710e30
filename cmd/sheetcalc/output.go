package main

import (
	"io"

	json "github.com/bytedance/sonic"

	"github.com/vogtb/go-spreadsheet/packages/address"
	"github.com/vogtb/go-spreadsheet/packages/spreadsheet"
)

// gridDocument is the JSON rendering of a sheet
type gridDocument struct {
	Rows  int                   `json:"rows"`
	Cols  int                   `json:"cols"`
	Cells [][]string            `json:"cells"`
	Stats *spreadsheet.Counters `json:"stats,omitempty"`
}

func writeGrid(w io.Writer, sheet *spreadsheet.Sheet, opts *runOptions, stats *spreadsheet.Counters) error {
	if opts.format == formatJSON {
		doc, err := buildDocument(sheet, opts.texts)
		if err != nil {
			return err
		}
		doc.Stats = stats

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}

	if opts.texts {
		return sheet.PrintTexts(w)
	}
	return sheet.PrintValues(w)
}

func buildDocument(sheet *spreadsheet.Sheet, texts bool) (*gridDocument, error) {
	size := sheet.GetPrintableSize()
	doc := &gridDocument{
		Rows:  size.Rows,
		Cols:  size.Cols,
		Cells: make([][]string, size.Rows),
	}

	for row := 0; row < size.Rows; row++ {
		doc.Cells[row] = make([]string, size.Cols)
		for col := 0; col < size.Cols; col++ {
			pos := address.Position{Row: row, Col: col}
			if texts {
				text, err := sheet.Text(pos)
				if err != nil {
					return nil, err
				}
				doc.Cells[row][col] = text
				continue
			}
			value, err := sheet.Value(pos)
			if err != nil {
				return nil, err
			}
			doc.Cells[row][col] = value.String()
		}
	}
	return doc, nil
}
