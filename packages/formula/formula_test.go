package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

type lookupMock struct {
	mock.Mock
}

func (m *lookupMock) NumberAt(pos address.Position) (float64, error) {
	args := m.Called(pos)
	return args.Get(0).(float64), args.Error(1)
}

func newLookupMock(t *testing.T) *lookupMock {
	m := &lookupMock{}
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func pos(s string) address.Position {
	return address.FromString(s)
}

func mustCompile(t *testing.T, text string) *Formula {
	t.Helper()
	f, err := Compile(text)
	require.NoError(t, err, text)
	return f
}

func TestCompile_Expression(t *testing.T) {
	cases := map[string]string{
		"1+2":                 "1+2",
		" 1 +  A1 ":           "1+A1",
		"((22/(22+3))-(8*5))": "22/(22+3)-8*5",
		"1-(2-3)":             "1-(2-3)",
		"(1-2)-3":             "1-2-3",
		"1+(2+3)":             "1+2+3",
		"2/(3*4)":             "2/(3*4)",
		"(2/3)*4":             "2/3*4",
		"(1+2)*3":             "(1+2)*3",
		"-(1+2)":              "-(1+2)",
		"-A1*2":               "-A1*2",
		"+B7":                 "+B7",
		"1.50":                "1.5",
		"2e3":                 "2000",
		"0.25":                "0.25",
	}

	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, mustCompile(t, input).Expression())
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"1+",
		"(1",
		"a1",
		"SUM(A1)",
		`"text"`,
		"1 % 2",
		"1 == 2",
		"true",
		"A1 B1",
	}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			f, err := Compile(input)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestFormula_ReferencedCells(t *testing.T) {
	t.Run("order of appearance", func(t *testing.T) {
		f := mustCompile(t, "A1+B2*A1")
		assert.Equal(t, []address.Position{pos("A1"), pos("B2"), pos("A1")}, f.ReferencedCells())
	})

	t.Run("no references", func(t *testing.T) {
		assert.Empty(t, mustCompile(t, "1+2").ReferencedCells())
	})

	t.Run("out of range reference compiles to None", func(t *testing.T) {
		f := mustCompile(t, "ZZZZ1+A16385+C3")
		assert.Equal(t, []address.Position{address.None, address.None, pos("C3")}, f.ReferencedCells())
		assert.Equal(t, "ZZZZ1+A16385+C3", f.Expression())
	})

	t.Run("result is a copy", func(t *testing.T) {
		f := mustCompile(t, "A1")
		refs := f.ReferencedCells()
		refs[0] = pos("Z9")
		assert.Equal(t, []address.Position{pos("A1")}, f.ReferencedCells())
	})
}

func TestFormula_Evaluate(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		cases := map[string]float64{
			"1+2*3":   7,
			"(1+2)*3": 9,
			"10/4":    2.5,
			"-3*2":    -6,
			"8-2-1":   5,
			"+4":      4,
		}
		for input, expected := range cases {
			value, err := mustCompile(t, input).Evaluate(nil)
			assert.NoError(t, err, input)
			assert.Equal(t, expected, value, input)
		}
	})

	t.Run("references use the lookup", func(t *testing.T) {
		lookup := newLookupMock(t)
		lookup.On("NumberAt", pos("A1")).Return(2.0, nil)
		lookup.On("NumberAt", pos("B1")).Return(5.0, nil)

		value, err := mustCompile(t, "A1*B1+A1").Evaluate(lookup)
		assert.NoError(t, err)
		assert.Equal(t, 12.0, value)
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := mustCompile(t, "1/(2-2)").Evaluate(nil)
		assert.ErrorIs(t, err, DivisionByZero)
		assert.Equal(t, "#DIV/0!", AsFormulaError(err).String())
	})

	t.Run("non finite result", func(t *testing.T) {
		_, err := mustCompile(t, "1e308*10").Evaluate(nil)
		assert.ErrorIs(t, err, DivisionByZero)
	})

	t.Run("out of range reference skips lookup", func(t *testing.T) {
		lookup := newLookupMock(t)
		_, err := mustCompile(t, "ZZZZ1+1").Evaluate(lookup)
		assert.ErrorIs(t, err, InvalidRef)
		lookup.AssertNotCalled(t, "NumberAt", mock.Anything)
	})

	t.Run("lookup error propagates unchanged", func(t *testing.T) {
		lookup := newLookupMock(t)
		lookup.On("NumberAt", pos("A1")).Return(0.0, InvalidValue)

		_, err := mustCompile(t, "A1+1").Evaluate(lookup)
		assert.ErrorIs(t, err, InvalidValue)
	})

	t.Run("left operand error wins", func(t *testing.T) {
		lookup := newLookupMock(t)
		lookup.On("NumberAt", pos("A1")).Return(0.0, InvalidValue)

		_, err := mustCompile(t, "A1/0").Evaluate(lookup)
		assert.ErrorIs(t, err, InvalidValue)

		_, err = mustCompile(t, "1/0+A1").Evaluate(lookup)
		assert.ErrorIs(t, err, DivisionByZero)
	})

	t.Run("foreign lookup errors become value errors", func(t *testing.T) {
		lookup := CellLookupFunc(func(address.Position) (float64, error) {
			return 0, errors.New("boom")
		})
		_, err := mustCompile(t, "A1").Evaluate(lookup)
		assert.ErrorIs(t, err, InvalidValue)
	})
}

func TestFormulaError(t *testing.T) {
	err := NewFormulaError(ErrorCodeRef, "invalid cell reference ZZZZ1")

	assert.Equal(t, "#REF!", err.String())
	assert.Equal(t, "invalid cell reference ZZZZ1", err.Error())
	assert.True(t, errors.Is(err, InvalidRef))
	assert.False(t, errors.Is(err, InvalidValue))
	assert.Equal(t, "#VALUE!", InvalidValue.Error())
	assert.Nil(t, AsFormulaError(nil))
}
