package spreadsheet

import (
	"slices"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

// DependencyGraph stores backward edges: for each referenced cell, the set
// of formula cells that read it. it is always the transpose of the stored
// cells' forward edges.
type DependencyGraph struct {
	dependents map[address.Position]map[address.Position]struct{}
}

// NewDependencyGraph creates a new dependency graph
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		dependents: make(map[address.Position]map[address.Position]struct{}),
	}
}

// AddEdge records that dependent reads dependency
func (dg *DependencyGraph) AddEdge(dependent, dependency address.Position) {
	set, exists := dg.dependents[dependency]
	if !exists {
		set = make(map[address.Position]struct{})
		dg.dependents[dependency] = set
	}
	set[dependent] = struct{}{}
}

// RemoveEdge removes an edge. removing an edge that was never added means
// the index is out of sync with the cells, and panics.
func (dg *DependencyGraph) RemoveEdge(dependent, dependency address.Position) {
	set, exists := dg.dependents[dependency]
	if !exists {
		indexCorruption("no dependents recorded for %s", dependency)
	}
	if _, exists := set[dependent]; !exists {
		indexCorruption("%s is not a dependent of %s", dependent, dependency)
	}

	delete(set, dependent)
	if len(set) == 0 {
		delete(dg.dependents, dependency)
	}
}

// ReplaceEdges swaps the forward edges of dependent from previous to next
func (dg *DependencyGraph) ReplaceEdges(dependent address.Position, previous, next []address.Position) {
	for _, dependency := range previous {
		dg.RemoveEdge(dependent, dependency)
	}
	for _, dependency := range next {
		dg.AddEdge(dependent, dependency)
	}
}

// GetDependents returns the direct dependents of a cell, sorted
func (dg *DependencyGraph) GetDependents(dependency address.Position) []address.Position {
	set := dg.dependents[dependency]
	result := make([]address.Position, 0, len(set))
	for pos := range set {
		result = append(result, pos)
	}
	sortPositions(result)
	return result
}

// GetAllDependents returns all cells that transitively depend on a cell
func (dg *DependencyGraph) GetAllDependents(dependency address.Position) []address.Position {
	visited := make(map[address.Position]struct{})
	var result []address.Position
	dg.collectDependents(dependency, visited, &result)
	return result
}

func (dg *DependencyGraph) collectDependents(pos address.Position, visited map[address.Position]struct{}, result *[]address.Position) {
	for dependent := range dg.dependents[pos] {
		if _, seen := visited[dependent]; seen {
			continue
		}
		visited[dependent] = struct{}{}
		*result = append(*result, dependent)
		dg.collectDependents(dependent, visited, result)
	}
}

// EdgeCount returns the number of distinct backward edges
func (dg *DependencyGraph) EdgeCount() int {
	count := 0
	for _, set := range dg.dependents {
		count += len(set)
	}
	return count
}

// DetectCycle reports whether placing a formula with the given forward
// edges at start would close a cycle. forward returns the edges of the
// cells already stored; start itself is never expanded through forward.
func DetectCycle(start address.Position, edges []address.Position, forward func(address.Position) []address.Position) bool {
	// three states: unvisited (not in map), visiting (false), visited (true)
	state := map[address.Position]bool{start: false}

	var visit func(pos address.Position) bool
	visit = func(pos address.Position) bool {
		if completed, exists := state[pos]; exists {
			// a cell still being visited closes a cycle
			return !completed
		}

		state[pos] = false
		for _, next := range forward(pos) {
			if visit(next) {
				return true
			}
		}
		state[pos] = true
		return false
	}

	for _, pos := range edges {
		if visit(pos) {
			return true
		}
	}
	return false
}

func sortPositions(positions []address.Position) {
	slices.SortFunc(positions, comparePositions)
}

func comparePositions(a, b address.Position) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
