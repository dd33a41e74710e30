package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
		{MaxCols - 1, "XFD"},
		{-1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnName(tt.col), "ColumnName(%d)", tt.col)
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "A1", Position{Row: 0, Col: 0}.String())
	assert.Equal(t, "AB12", Position{Row: 11, Col: 27}.String())
	assert.Equal(t, "XFD16384", Position{Row: MaxRows - 1, Col: MaxCols - 1}.String())
	assert.Equal(t, "", None.String())
	assert.Equal(t, "", Position{Row: MaxRows, Col: 0}.String())
	assert.Equal(t, "Position{-1,-1}", None.GoString())
}

func TestFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Equal(t, Position{Row: 0, Col: 0}, FromString("A1"))
		assert.Equal(t, Position{Row: 11, Col: 27}, FromString("AB12"))
		assert.Equal(t, Position{Row: 99, Col: 26}, FromString("AA100"))
		assert.Equal(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}, FromString("XFD16384"))
	})

	t.Run("malformed", func(t *testing.T) {
		for _, input := range []string{
			"", "A", "1", "a1", "A-1", "1A", "A1B", "A 1", "$A$1", "A0", "A1.5",
			"XFE1", "A16385", "ABCD1", "A123456", "ZZZZ99999999",
		} {
			assert.Equal(t, None, FromString(input), "FromString(%q)", input)
		}
	})

	t.Run("round-trip", func(t *testing.T) {
		for row := 0; row < MaxRows; row += 97 {
			for col := 0; col < MaxCols; col += 89 {
				p := Position{Row: row, Col: col}
				assert.Equal(t, p, FromString(p.String()))
			}
		}
		for _, p := range []Position{
			{0, 0}, {0, 25}, {0, 26}, {0, 701}, {0, 702},
			{MaxRows - 1, MaxCols - 1}, {MaxRows - 1, 0}, {0, MaxCols - 1},
		} {
			assert.Equal(t, p, FromString(p.String()), p.GoString())
		}
	})
}

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, Position{}.IsValid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())
	assert.False(t, None.IsValid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
	assert.False(t, Position{Row: -1, Col: 3}.IsValid())
}

func TestPosition_Less(t *testing.T) {
	// column-major
	assert.True(t, Position{Row: 5, Col: 0}.Less(Position{Row: 0, Col: 1}))
	assert.True(t, Position{Row: 0, Col: 1}.Less(Position{Row: 1, Col: 1}))
	assert.False(t, Position{Row: 1, Col: 1}.Less(Position{Row: 1, Col: 1}))
	assert.True(t, None.Less(Position{}))
}
