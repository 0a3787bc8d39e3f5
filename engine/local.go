package engine

import (
	"errors"
	"fmt"
	"time"

	"stones/agent"
	"stones/experiments/metrics"
	"stones/game"
	"stones/meta"

	"github.com/rs/zerolog/log"
)

var ErrAgents = errors.New("a game needs exactly two agents")

type Local struct {
	State    *game.GameState
	Agents   [2]agent.Agent // indexed by player - 1
	MaxTurns int
}

// LocalEngine sets up a game between two agents; agents[0] plays Player1.
func LocalEngine(state *game.GameState, agents ...agent.Agent) (*Local, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrAgents, len(agents))
	}
	return &Local{
		State:    state,
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		MaxTurns: meta.MAX_TURNS,
	}, nil
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Size:           e.State.Size(),
		StartingPlayer: int(e.State.Player()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting on %s", e.State.Player(), e.State)

	turn := 1
	for e.State.Winner() == game.NoPlayer && turn <= e.MaxTurns {
		player := e.State.Player()
		current := e.Agents[player-1]

		move, metric, err := current.FindMove(e.State)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%s (%s) failed to move: %w", player, current, err)
		}
		next, err := e.State.Apply(move)
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%s (%s) proposed a bad move: %w", player, current, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(player),
			Move:         int(move),
			SearchMetric: metric,
		})
		log.Debug().Msgf("turn %d: %s takes %d", turn, player, move)

		e.State = next
		turn++
	}

	winner := e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = winner.String()

	if winner != game.NoPlayer {
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Warn().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	}
	return winner, gameMetric, moveMetrics, nil
}
