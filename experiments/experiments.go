package experiments

import (
	"fmt"

	"stones/agent"
	"stones/engine"
	"stones/experiments/metrics"
	"stones/game"
	"stones/searcher"

	"github.com/rs/zerolog/log"
)

// RunSweep searches the opening position of every configured size at every
// depth and pruning mode, and stores one record per search.
func RunSweep(c Config, sink metrics.Sink) error {
	records := []metrics.SearchRecord{}

	log.Info().Msgf("starting %s sweep...", c.Name)
	for _, size := range c.Sizes {
		for _, depth := range c.Depths {
			for _, pruning := range c.Pruning {
				state, err := game.NewGameState(size)
				if err != nil {
					return err
				}
				ab := searcher.NewAlphaBeta(searcher.WithPruning(pruning), searcher.WithMetrics())
				result, err := ab.Run(state, depth)
				if err != nil {
					return fmt.Errorf("size %d depth %d: %w", size, depth, err)
				}
				records = append(records, metrics.SearchRecord{
					ID:           len(records) + 1,
					Move:         int(result.Move),
					Value:        result.Value,
					SearchMetric: result.Metric,
				})
				log.Info().Msgf("size=%d depth=%d pruning=%t: move %d value %.1f after %d nodes",
					size, depth, pruning, result.Move, result.Value, result.NodesVisited)
			}
		}
	}
	log.Info().Msgf("completed %s sweep", c.Name)

	if err := sink.WriteSearchRecords(records); err != nil {
		return err
	}
	log.Info().Msg("stored search records")
	return nil
}

// RunSelfPlay plays the configured number of games and stores game and move records.
func RunSelfPlay(c Config, sink metrics.Sink) error {
	sp := c.SelfPlay
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %d self-play games on %d stones...", sp.Games, sp.Size)
	for i := 0; i < sp.Games; i++ {
		state, err := game.NewGameState(sp.Size)
		if err != nil {
			return err
		}
		first := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMetrics()), sp.Depth1)
		second := agent.NewSearchAgent(searcher.NewAlphaBeta(searcher.WithMetrics()), sp.Depth2)
		if sp.Random {
			second = agent.NewRandomAgent(sp.Seed + uint64(i))
		}
		e, err := engine.LocalEngine(state, first, second)
		if err != nil {
			return err
		}

		winner, gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     first.String(),
			Agent2:     second.String(),
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: mm})
		}
		log.Info().Msgf("completed game %d of %d with winner: %s", id, sp.Games, winner)
	}

	if err := sink.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := sink.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}
