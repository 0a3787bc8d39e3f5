package searcher

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"stones/experiments/metrics"
	"stones/game"
)

// Result is what a search reports back to its caller.
type Result struct {
	Move            game.Move // game.NoMove when the root has no legal move
	Value           float64
	Maximizing      bool
	DepthLimit      int
	NodesVisited    int
	NodesEvaluated  int
	MaxDepthReached int
	Record          []float64 // running best value after each root child, in move order
	Metric          metrics.SearchMetric
}

func (r Result) HasMove() bool {
	return r.Move != game.NoMove
}

// EffectiveBranchingFactor is (visited-1)/(visited-evaluated). It is undefined
// when every visited node was evaluated, which only happens when the root itself
// is a leaf.
func (r Result) EffectiveBranchingFactor() (float64, error) {
	expanded := r.NodesVisited - r.NodesEvaluated
	if expanded <= 0 {
		return 0, fmt.Errorf("%w: %d nodes visited, %d evaluated", ErrRootTerminal, r.NodesVisited, r.NodesEvaluated)
	}
	return float64(r.NodesVisited-1) / float64(expanded), nil
}

// Report prints the search statistics block.
func (r Result) Report(w io.Writer) error {
	branching := "n/a"
	if ebf, err := r.EffectiveBranchingFactor(); err == nil {
		branching = strconv.FormatFloat(ebf, 'f', 1, 64)
	}
	_, err := fmt.Fprintf(w,
		"Move: %d\nValue: %s\nNumber of Nodes Visited: %d\nNumber of Nodes Evaluated: %d\nMax Depth Reached: %d\nAvg Effective Branching Factor: %s\n",
		r.Move, formatValue(r.Value), r.NodesVisited, r.NodesEvaluated, r.MaxDepthReached, branching)
	return err
}

// formatValue always keeps a fractional part, so 1 prints as 1.0.
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
