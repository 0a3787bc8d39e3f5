package searcher

import (
	"errors"
	"math"

	"stones/game"
)

var (
	ErrInvalidDepth = errors.New("depth limit must not be negative")
	ErrNilState     = errors.New("no state to search")
	ErrRootTerminal = errors.New("root has no successors")
)

// FullDepth as a depth limit searches every line to the end of the game.
const FullDepth = 0

type Searcher interface {
	Run(state game.State, depth int) (Result, error)
}

// resolveDepth maps FullDepth to one ply more than any game of this size can last.
func resolveDepth(state game.State, depth int) int {
	if depth == FullDepth {
		return state.Size() + 1
	}
	return depth
}

func isMaximizing(state game.State) bool {
	available := 0
	for i := 1; i <= state.Size(); i++ {
		if state.Stone(i) {
			available++
		}
	}
	return (state.Size()-available)%2 == 0
}

// bestRecorded returns the index of the first extreme value in record, -1 when empty.
func bestRecorded(record []float64, maximizing bool) (int, float64) {
	best := -1
	value := math.Inf(-1)
	if !maximizing {
		value = math.Inf(1)
	}
	for i, v := range record {
		if (maximizing && v > value) || (!maximizing && v < value) {
			best = i
			value = v
		}
	}
	return best, value
}
