package spreadsheet

import (
	"github.com/google/btree"
)

type lineCount struct {
	index int
	count int
}

// lineCounter counts populated cells per row (or column), ordered by
// index so the last populated line is found in O(log n).
type lineCounter struct {
	tree *btree.BTreeG[lineCount]
}

func newLineCounter() *lineCounter {
	return &lineCounter{
		tree: btree.NewG(16, func(a, b lineCount) bool {
			return a.index < b.index
		}),
	}
}

func (c *lineCounter) inc(index int) {
	item, _ := c.tree.Get(lineCount{index: index})
	item.index = index
	item.count++
	c.tree.ReplaceOrInsert(item)
}

func (c *lineCounter) dec(index int) {
	item, exists := c.tree.Get(lineCount{index: index})
	if !exists {
		indexCorruption("no populated cells counted on line %d", index)
	}
	item.count--
	if item.count == 0 {
		c.tree.Delete(item)
		return
	}
	c.tree.ReplaceOrInsert(item)
}

// extent is one past the last populated line, 0 when nothing is counted
func (c *lineCounter) extent() int {
	last, ok := c.tree.Max()
	if !ok {
		return 0
	}
	return last.index + 1
}

func (c *lineCounter) count(index int) int {
	item, _ := c.tree.Get(lineCount{index: index})
	return item.count
}
