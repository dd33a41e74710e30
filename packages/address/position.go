// Package address implements the cell address space of a sheet: zero-based
// positions, their spreadsheet notation ("A1", "AB12") and the printable
// size of a populated area.
package address

import (
	"fmt"
	"strconv"
)

const (
	MaxRows = 16384
	MaxCols = 16384

	letters         = 26
	maxLetterCount  = 3 // "XFD" is the last column
	maxDigitCount   = 5 // "16384" is the last row
	maxStringLength = maxLetterCount + maxDigitCount
)

// Position is a zero-based cell coordinate.
type Position struct {
	Row int
	Col int
}

// None marks a reference that resolved outside of the addressable range.
var None = Position{Row: -1, Col: -1}

// IsValid reports whether p lies inside the addressable range.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < MaxRows && p.Col < MaxCols
}

// Less orders positions column-major: by column, then by row.
func (p Position) Less(other Position) bool {
	if p.Col == other.Col {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// String renders p in spreadsheet notation. invalid positions render as
// the empty string.
func (p Position) String() string {
	if !p.IsValid() {
		return ""
	}
	return ColumnName(p.Col) + strconv.Itoa(p.Row+1)
}

// GoString renders p for diagnostics, including invalid positions.
func (p Position) GoString() string {
	return fmt.Sprintf("Position{%d,%d}", p.Row, p.Col)
}

// ColumnName converts a zero-based column index to its bijective base-26
// letters: 0 -> "A", 25 -> "Z", 26 -> "AA".
func ColumnName(col int) string {
	if col < 0 {
		return ""
	}
	var buf [8]byte
	i := len(buf)
	for n := col + 1; n > 0; n = (n - 1) / letters {
		i--
		buf[i] = byte('A' + (n-1)%letters)
	}
	return string(buf[i:])
}

// FromString parses spreadsheet notation. malformed or out of range input
// yields None; callers check IsValid.
func FromString(s string) Position {
	if len(s) < 2 || len(s) > maxStringLength {
		return None
	}

	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	letterPart, digitPart := s[:i], s[i:]
	if len(letterPart) == 0 || len(letterPart) > maxLetterCount {
		return None
	}
	if len(digitPart) == 0 || len(digitPart) > maxDigitCount {
		return None
	}
	for j := 0; j < len(digitPart); j++ {
		if digitPart[j] < '0' || digitPart[j] > '9' {
			return None
		}
	}

	row, err := strconv.Atoi(digitPart)
	if err != nil {
		return None
	}

	col := 0
	for j := 0; j < len(letterPart); j++ {
		col = col*letters + int(letterPart[j]-'A'+1)
	}

	p := Position{Row: row - 1, Col: col - 1}
	if !p.IsValid() {
		return None
	}
	return p
}

// Size is the printable bounding box of a sheet, anchored at A1.
type Size struct {
	Rows int
	Cols int
}
