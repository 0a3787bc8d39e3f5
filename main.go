package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"stones/agent"
	"stones/engine"
	"stones/experiments"
	"stones/game"
	"stones/meta"
	"stones/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", meta.DEFAULT_SIZE, "Number of stones")
	taken := flag.String("taken", "", "Comma separated stones already taken, in play order")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth (0 searches to the end)")
	prune := flag.Bool("prune", true, "Use alpha-beta pruning")
	debug := flag.Bool("debug", false, "Log search details")
	selfPlay := flag.Bool("selfplay", false, "Play a full game from the position instead of searching once")
	depth2 := flag.Int("depth2", meta.DEFAULT_DEPTH, "Search depth of Player2 in self-play")
	random := flag.Bool("random", false, "Player2 plays random moves in self-play")
	seed := flag.Uint64("seed", 1, "Seed of the random player")
	experiment := flag.String("experiment", "", "Run the experiment described by a TOML file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch {
	case *experiment != "":
		err = runExperiment(*experiment)
	case *selfPlay:
		err = runSelfPlay(*size, *taken, *depth, *depth2, *random, *seed)
	default:
		err = runSearch(*size, *taken, *depth, *prune)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("stones")
	}
}

func parseTaken(s string) ([]game.Move, error) {
	moves := []game.Move{}
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("bad stone %q: %w", field, err)
		}
		moves = append(moves, game.Move(n))
	}
	return moves, nil
}

func initialState(size int, taken string) (*game.GameState, error) {
	moves, err := parseTaken(taken)
	if err != nil {
		return nil, err
	}
	return game.FromTaken(size, moves)
}

func runSearch(size int, taken string, depth int, prune bool) error {
	state, err := initialState(size, taken)
	if err != nil {
		return err
	}
	result, err := searcher.NewAlphaBeta(searcher.WithPruning(prune)).Run(state, depth)
	if err != nil {
		return err
	}
	if !result.HasMove() {
		log.Warn().Msgf("no legal move from %s", state)
	}
	return result.Report(os.Stdout)
}

func runSelfPlay(size int, taken string, depth1, depth2 int, random bool, seed uint64) error {
	state, err := initialState(size, taken)
	if err != nil {
		return err
	}
	if depth1 < 0 || depth2 < 0 {
		return fmt.Errorf("%w: %d and %d", searcher.ErrInvalidDepth, depth1, depth2)
	}
	second := agent.NewSearchAgent(searcher.NewAlphaBeta(), depth2)
	if random {
		second = agent.NewRandomAgent(seed)
	}
	e, err := engine.LocalEngine(state, agent.NewSearchAgent(searcher.NewAlphaBeta(), depth1), second)
	if err != nil {
		return err
	}
	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}
	for _, mm := range moveMetrics {
		fmt.Printf("%d. %s takes %d\n", mm.Step, game.Player(mm.Player), mm.Move)
	}
	fmt.Printf("Winner: %s after %d moves (%s)\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func runExperiment(file string) error {
	c, err := experiments.Open(file)
	if err != nil {
		return err
	}
	sink, err := c.OpenSink(context.Background())
	if err != nil {
		return err
	}
	defer sink.Close()

	if len(c.Sizes) > 0 {
		if err := experiments.RunSweep(c, sink); err != nil {
			return err
		}
	}
	if c.SelfPlay.Games > 0 {
		return experiments.RunSelfPlay(c, sink)
	}
	return nil
}
