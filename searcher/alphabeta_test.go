package searcher

import (
	"math"
	"sync"
	"testing"

	"stones/game"

	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, size int, taken ...game.Move) *game.GameState {
	t.Helper()
	gs, err := game.FromTaken(size, taken)
	require.NoError(t, err)
	return gs
}

// minimax is an unpruned reference search.
func minimax(s game.State, depth int, maximizing bool) float64 {
	successors := s.Successors()
	if len(successors) == 0 || depth == 0 {
		return game.EvaluateStones(s)
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, child := range successors {
		v := minimax(child, depth-1, !maximizing)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func TestRunOnMockTree(t *testing.T) {
	// Max root over two min nodes: [3, 5] and [2, 9]
	tree := func() mockState {
		return node(0, node(1, leaf(3), leaf(5)), node(1, leaf(2), leaf(9)))
	}

	t.Run("pruning skips the refuted sibling", func(t *testing.T) {
		ab := NewAlphaBeta(WithEvaluationFn(evaluateMock))

		got, err := ab.Run(tree(), 2)

		require.NoError(t, err)
		require.Equal(t, game.Move(1), got.Move, "First child holds the best value")
		require.Equal(t, 3.0, got.Value)
		require.Equal(t, []float64{3, 3}, got.Record, "Record should hold the running maximum")
		require.Equal(t, 6, got.NodesVisited, "Leaf 9 should be pruned")
		require.Equal(t, 3, got.NodesEvaluated)
		require.Equal(t, 2, got.MaxDepthReached)
	})

	t.Run("without pruning every node is visited", func(t *testing.T) {
		ab := NewAlphaBeta(WithEvaluationFn(evaluateMock), WithPruning(false))

		got, err := ab.Run(tree(), 2)

		require.NoError(t, err)
		require.Equal(t, 3.0, got.Value)
		require.Equal(t, 7, got.NodesVisited)
		require.Equal(t, 4, got.NodesEvaluated)
	})

	t.Run("minimizing root picks the first minimum", func(t *testing.T) {
		root := node(1, node(2, leaf(0.5)), node(2, leaf(-0.5)), node(2, leaf(-0.5)))
		ab := NewAlphaBeta(WithEvaluationFn(evaluateMock))

		got, err := ab.Run(root, 2)

		require.NoError(t, err)
		require.False(t, got.Maximizing)
		require.Equal(t, game.Move(2), got.Move, "Ties go to the lower move")
		require.Equal(t, -0.5, got.Value)
	})

	t.Run("depth cutoff evaluates interior nodes", func(t *testing.T) {
		root := tree()
		root.children[0].value = 0.25
		root.children[1].value = 0.75
		ab := NewAlphaBeta(WithEvaluationFn(evaluateMock))

		got, err := ab.Run(root, 1)

		require.NoError(t, err)
		require.Equal(t, game.Move(2), got.Move)
		require.Equal(t, 0.75, got.Value)
		require.Equal(t, 3, got.NodesVisited)
		require.Equal(t, 2, got.NodesEvaluated)
		require.Equal(t, 1, got.MaxDepthReached)
	})
}

func TestRunOnStoneGame(t *testing.T) {
	for _, test := range []struct {
		size      int
		taken     []game.Move
		depth     int
		pruning   bool
		move      game.Move
		value     float64
		visited   int
		evaluated int
		maxDepth  int
		record    []float64
	}{
		{size: 3, depth: 0, pruning: true, move: 1, value: -1, visited: 4, evaluated: 2, maxDepth: 2, record: []float64{-1}},
		{size: 6, depth: 0, pruning: true, move: 1, value: -1, visited: 18, evaluated: 6, maxDepth: 5, record: []float64{-1}},
		{size: 6, depth: 0, pruning: false, move: 1, value: -1, visited: 19, evaluated: 7, maxDepth: 5, record: []float64{-1}},
		{size: 6, depth: 1, pruning: true, move: 1, value: -0.5, visited: 2, evaluated: 1, maxDepth: 1, record: []float64{-0.5}},
		{size: 7, depth: 0, pruning: true, move: 1, value: -1, visited: 44, evaluated: 17, maxDepth: 6, record: []float64{-1, -1}},
		{size: 7, depth: 0, pruning: false, move: 1, value: -1, visited: 50, evaluated: 23, maxDepth: 6, record: []float64{-1, -1}},
		{size: 7, depth: 2, pruning: true, move: 3, value: 0, visited: 11, evaluated: 8, maxDepth: 2, record: []float64{-1, 0}},
		{size: 10, depth: 0, pruning: true, move: 1, value: -1, visited: 194, evaluated: 73, maxDepth: 8, record: []float64{-1, -1}},
		{size: 10, depth: 0, pruning: false, move: 1, value: -1, visited: 314, evaluated: 133, maxDepth: 8, record: []float64{-1, -1}},
		{size: 10, depth: 3, pruning: true, move: 3, value: -0.5, visited: 40, evaluated: 26, maxDepth: 3, record: []float64{-1, -0.5}},
		{size: 7, taken: []game.Move{1}, depth: 0, pruning: true, move: 5, value: -1, visited: 18, evaluated: 7, maxDepth: 4, record: []float64{1, 1, 1, -1, -1, -1}},
		{size: 7, taken: []game.Move{1, 4}, depth: 0, pruning: true, move: 2, value: 1, visited: 4, evaluated: 1, maxDepth: 3, record: []float64{1}},
		{size: 10, taken: []game.Move{3, 6}, depth: 0, pruning: true, move: 2, value: 1, visited: 72, evaluated: 29, maxDepth: 6, record: []float64{-1, 1}},
		{size: 10, taken: []game.Move{3}, depth: 2, pruning: true, move: 9, value: -0.5, visited: 15, evaluated: 11, maxDepth: 2, record: []float64{1, 0, -0.5}},
		{size: 10, taken: []game.Move{1}, depth: 4, pruning: true, move: 7, value: -1, visited: 61, evaluated: 25, maxDepth: 4, record: []float64{1, 1, 0.6, 0.6, 0.6, -1, -1, -1, -1}},
		{size: 10, taken: []game.Move{1}, depth: 4, pruning: false, move: 7, value: -1, visited: 70, evaluated: 31, maxDepth: 4, record: []float64{1, 1, 0.6, 0.6, 0.6, -1, -1, -1, -1}},
	} {
		ab := NewAlphaBeta(WithPruning(test.pruning))
		got, err := ab.Run(newState(t, test.size, test.taken...), test.depth)

		require.NoError(t, err)
		require.Equal(t, test.move, got.Move, "move for %+v", test)
		require.Equal(t, test.value, got.Value, "value for %+v", test)
		require.Equal(t, test.visited, got.NodesVisited, "visited for %+v", test)
		require.Equal(t, test.evaluated, got.NodesEvaluated, "evaluated for %+v", test)
		require.Equal(t, test.maxDepth, got.MaxDepthReached, "max depth for %+v", test)
		require.Equal(t, test.record, got.Record, "record for %+v", test)
	}
}

func TestPruningKeepsMinimaxValue(t *testing.T) {
	pruned := NewAlphaBeta()
	full := NewAlphaBeta(WithPruning(false))

	for size := 1; size <= 12; size++ {
		for depth := 0; depth <= 4; depth++ {
			state := newState(t, size)

			a, err := pruned.Run(state, depth)
			require.NoError(t, err)
			b, err := full.Run(state, depth)
			require.NoError(t, err)

			limit := resolveDepth(state, depth)
			require.Equal(t, minimax(state, limit, true), b.Value, "size %d depth %d", size, depth)
			require.Equal(t, b.Value, a.Value, "size %d depth %d", size, depth)
			require.Equal(t, b.Move, a.Move, "size %d depth %d", size, depth)
			require.LessOrEqual(t, a.NodesVisited, b.NodesVisited)
			require.LessOrEqual(t, a.NodesEvaluated, a.NodesVisited)
			require.LessOrEqual(t, a.MaxDepthReached, a.DepthLimit)
		}
	}
}

func TestRunEdgeCases(t *testing.T) {
	t.Run("single stone game has no opening move", func(t *testing.T) {
		got, err := NewAlphaBeta().Run(newState(t, 1), 0)

		require.NoError(t, err)
		require.False(t, got.HasMove())
		require.Equal(t, game.NoMove, got.Move)
		require.Equal(t, 0.0, got.Value, "Stone 1 is still on the board")
		require.Equal(t, 1, got.NodesVisited)
		require.Equal(t, 1, got.NodesEvaluated)
		require.Equal(t, 0, got.MaxDepthReached)
		require.Empty(t, got.Record)

		_, err = got.EffectiveBranchingFactor()
		require.ErrorIs(t, err, ErrRootTerminal)
	})

	t.Run("full depth resolves to one more than the size", func(t *testing.T) {
		got, err := NewAlphaBeta().Run(newState(t, 6), FullDepth)

		require.NoError(t, err)
		require.Equal(t, 7, got.DepthLimit)
	})

	t.Run("one ply search scores the children directly", func(t *testing.T) {
		state := newState(t, 6)
		got, err := NewAlphaBeta().Run(state, 1)

		require.NoError(t, err)
		require.Equal(t, game.Move(1), got.Move)
		require.Equal(t, game.EvaluateStones(state.Play(1)), got.Value)
	})

	t.Run("rejects negative depth", func(t *testing.T) {
		_, err := NewAlphaBeta().Run(newState(t, 6), -1)
		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("rejects nil state", func(t *testing.T) {
		_, err := NewAlphaBeta().Run(nil, 0)
		require.ErrorIs(t, err, ErrNilState)
	})
}

func TestRunIsReentrant(t *testing.T) {
	ab := NewAlphaBeta()
	expected, err := ab.Run(newState(t, 10), 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gs, _ := game.NewGameState(10)
			results[i], _ = ab.Run(gs, 0)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, expected.Move, got.Move)
		require.Equal(t, expected.Value, got.Value)
		require.Equal(t, expected.NodesVisited, got.NodesVisited)
		require.Equal(t, expected.Record, got.Record)
	}
}

func TestWithMetrics(t *testing.T) {
	got, err := NewAlphaBeta(WithMetrics()).Run(newState(t, 7), 2)

	require.NoError(t, err)
	require.Equal(t, 7, got.Metric.Size)
	require.Equal(t, 2, got.Metric.DepthLimit)
	require.True(t, got.Metric.Pruning)
	require.Equal(t, got.NodesVisited, got.Metric.NodesVisited)
	require.Equal(t, got.NodesEvaluated, got.Metric.NodesEvaluated)
}
