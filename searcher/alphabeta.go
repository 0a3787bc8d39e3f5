package searcher

import (
	"fmt"
	"math"

	"stones/experiments/metrics"
	"stones/game"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

var _ Searcher = (*AlphaBeta)(nil)

// AlphaBeta holds search configuration only. Every Run gets its own search
// context, so one AlphaBeta can serve concurrent or repeated searches.
type AlphaBeta struct {
	evaluate   game.Evaluate
	pruning    bool
	newMetrics func() metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

// WithPruning(false) turns the search into plain minimax with the same
// bookkeeping, which is useful to measure what pruning saves.
func WithPruning(pruning bool) Option {
	return func(ab *AlphaBeta) {
		ab.pruning = pruning
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.newMetrics = metrics.NewCollector
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		evaluate:   game.EvaluateStones,
		pruning:    true,
		newMetrics: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// search carries the per-run counters and the values recorded at the root.
type search struct {
	evaluate   game.Evaluate
	pruning    bool
	depthLimit int

	visited   int
	evaluated int
	maxDepth  int
	record    []float64
}

// Run searches state to the given depth (FullDepth searches to the end) and
// picks the root move from the values recorded while expanding the root.
func (ab *AlphaBeta) Run(state game.State, depth int) (Result, error) {
	if state == nil {
		return Result{}, ErrNilState
	}
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	maximizing := isMaximizing(state)
	s := &search{
		evaluate:   ab.evaluate,
		pruning:    ab.pruning,
		depthLimit: resolveDepth(state, depth),
	}

	collector := ab.newMetrics()
	collector.Start(state.Size(), s.depthLimit, s.pruning)
	log.Debug().Int("size", state.Size()).Int("depthLimit", s.depthLimit).Bool("maximizing", maximizing).Msg("starting search")

	value := s.alphabeta(state, s.depthLimit, math.Inf(-1), math.Inf(1), maximizing)

	result := Result{
		Move:            game.NoMove,
		Value:           value,
		Maximizing:      maximizing,
		DepthLimit:      s.depthLimit,
		NodesVisited:    s.visited,
		NodesEvaluated:  s.evaluated,
		MaxDepthReached: s.maxDepth,
		Record:          s.record,
	}
	if i, best := bestRecorded(s.record, maximizing); i >= 0 {
		result.Move = state.LegalMoves()[i]
		result.Value = best
	}
	result.Metric = collector.Complete(s.visited, s.evaluated, s.maxDepth)

	log.Debug().Int("move", int(result.Move)).Float64("value", result.Value).
		Int("visited", s.visited).Int("evaluated", s.evaluated).Msg("search complete")
	return result, nil
}

func (s *search) alphabeta(state game.State, depth int, alpha, beta float64, maximizing bool) float64 {
	s.visited++
	s.maxDepth = max(s.maxDepth, s.depthLimit-depth)

	successors := state.Successors()
	if len(successors) == 0 || depth == 0 {
		s.evaluated++
		return s.evaluate(state)
	}

	atRoot := s.depthLimit-depth == 0
	if maximizing {
		v := math.Inf(-1)
		for _, successor := range successors {
			v = max(v, s.alphabeta(successor, depth-1, alpha, beta, false))
			if s.pruning && v >= beta {
				return v // beta cutoff
			}
			alpha = max(alpha, v)
			if atRoot {
				s.record = append(s.record, v)
			}
		}
		return v
	}

	v := math.Inf(1)
	for _, successor := range successors {
		v = min(v, s.alphabeta(successor, depth-1, alpha, beta, true))
		if s.pruning && v <= alpha {
			return v // alpha cutoff
		}
		beta = min(beta, v)
		if atRoot {
			s.record = append(s.record, v)
		}
	}
	return v
}
