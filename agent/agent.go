package agent

import (
	"errors"
	"fmt"

	"stones/experiments/metrics"
	"stones/game"
	"stones/searcher"

	"golang.org/x/exp/rand"
)

var ErrNoMove = errors.New("no legal move")

type Agent interface {
	// FindMove returns the move to play and the metrics of the search that found it (if collected)
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
	String() string
}

type searchAgent struct {
	searcher *searcher.AlphaBeta
	depth    int
}

// NewSearchAgent returns an agent that plays the root move of a depth-limited alpha-beta search.
func NewSearchAgent(ab *searcher.AlphaBeta, depth int) Agent {
	return searchAgent{searcher: ab, depth: depth}
}

func (a searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	result, err := a.searcher.Run(state, a.depth)
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	if !result.HasMove() {
		return game.NoMove, result.Metric, ErrNoMove
	}
	return result.Move, result.Metric, nil
}

func (a searchAgent) String() string {
	if a.depth == searcher.FullDepth {
		return "AlphaBeta-full"
	}
	return fmt.Sprintf("AlphaBeta-%d", a.depth)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}

func (a *randomAgent) String() string { return "Random" }
