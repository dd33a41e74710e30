package spreadsheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type printer struct {
	lines []string
}

func (p *printer) printLn(line string) {
	p.lines = append(p.lines, line)
}

func TestRunnableSheet(t *testing.T) {
	t.Run("chain", func(t *testing.T) {
		out := &printer{}
		r := NewRunnableSheet(out.printLn).
			Set("A1", "=1/0").
			Set("A2", "meow").
			Set("B2", "=1+2").
			Log("B2").
			Size().
			PrintValues().
			PrintTexts().
			CheckError()

		assert.NoError(t, r.Error())
		assert.Equal(t, []string{
			"B2: 3",
			"2 2",
			"#DIV/0!\t",
			"meow\t3",
			"=1/0\t",
			"meow\t=1+2",
			"No errors",
		}, out.lines)
	})

	t.Run("stops at first error", func(t *testing.T) {
		out := &printer{}
		r := NewRunnableSheet(out.printLn).
			Set("A1", "=A1").
			Set("B1", "5").
			Log("B1")

		assert.ErrorIs(t, r.Error(), ErrCircularDependency)
		assert.Empty(t, out.lines)

		r.CheckError()
		assert.Len(t, out.lines, 1)
		assert.Contains(t, out.lines[0], "ERROR:")

		r.Reset().Set("B1", "5").Log("B1")
		assert.NoError(t, r.Error())
		assert.Equal(t, "B1: 5", out.lines[1])
	})

	t.Run("bad cell name", func(t *testing.T) {
		r := NewRunnableSheet(func(string) {}).Set("a1", "1")
		assert.ErrorIs(t, r.Error(), ErrInvalidPosition)

		r.Reset().Clear("ZZZZ9")
		assert.ErrorIs(t, r.Error(), ErrInvalidPosition)
	})

	t.Run("then and on error", func(t *testing.T) {
		ran := false
		r := NewRunnableSheet(func(string) {}).
			Set("A1", "=1+").
			Then(func(r *RunnableSheet) *RunnableSheet {
				ran = true
				return r
			})
		assert.False(t, ran)
		assert.ErrorIs(t, r.Error(), ErrFormulaCompile)

		handled := errors.New("handled")
		r.OnError(func(error) error { return handled })
		assert.Equal(t, handled, r.Error())
		assert.Panics(t, func() { r.Must() })

		r.OnError(func(error) error { return nil })
		assert.NotPanics(t, func() { r.Must() })
	})

	t.Run("clear and get", func(t *testing.T) {
		r := NewRunnableSheet(func(string) {}).
			Set("C3", "'x").
			Clear("C3")
		_, value := r.Get("C3")
		assert.Equal(t, TextValue(""), value)
		assert.Equal(t, 0, r.Sheet().GetPrintableSize().Rows)
	})

	t.Run("stats", func(t *testing.T) {
		counters := &Counters{}
		NewRunnableSheet(func(string) {}, WithStats(counters)).
			Set("A1", "=2*3").
			Log("A1").
			Log("A1")
		assert.Equal(t, Counters{Hits: 1, Misses: 1}, *counters)
	})
}
