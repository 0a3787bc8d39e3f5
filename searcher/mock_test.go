package searcher

import "stones/game"

// mockState is a hand-built game tree; leaves carry their evaluation.
type mockState struct {
	size     int
	taken    int
	last     game.Move
	value    float64
	children []mockState
}

func (m mockState) Size() int           { return m.size }
func (m mockState) Stone(i int) bool    { return i > m.taken && i <= m.size }
func (m mockState) Taken() int          { return m.taken }
func (m mockState) LastMove() game.Move { return m.last }
func (m mockState) Winner() game.Player { return game.NoPlayer }

func (m mockState) Player() game.Player {
	if m.taken%2 == 0 {
		return game.Player1
	}
	return game.Player2
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = game.Move(i + 1)
	}
	return moves
}

func (m mockState) Successors() []game.State {
	states := make([]game.State, len(m.children))
	for i, child := range m.children {
		states[i] = child
	}
	return states
}

func (m mockState) Play(move game.Move) game.State {
	return m.children[move-1]
}

func evaluateMock(s game.State) float64 {
	return s.(mockState).value
}

func leaf(value float64) mockState {
	return mockState{size: 10, value: value}
}

func node(taken int, children ...mockState) mockState {
	for i := range children {
		children[i].taken = taken + 1
		children[i].last = game.Move(i + 1)
	}
	return mockState{size: 10, taken: taken, children: children}
}
