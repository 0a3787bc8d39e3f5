package engine

import (
	"stones/experiments/metrics"
	"stones/game"
)

type Engine interface {
	// Run plays a game till a player is stuck or a max number of turns is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
