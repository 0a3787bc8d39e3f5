package game

import (
	"fmt"
	"strings"
)

// GameState is one position of the stone-taking game. Stones are indexed from 1
// to Size; index 0 is never available.
type GameState struct {
	size     int
	stones   []bool // true while the stone is still available
	lastMove Move
}

// NewGameState returns the opening position with every stone available.
func NewGameState(size int) (*GameState, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	gs := &GameState{
		size:     size,
		stones:   make([]bool, size+1),
		lastMove: NoMove,
	}
	for i := 1; i <= size; i++ {
		gs.stones[i] = true
	}
	return gs, nil
}

// FromTaken builds a position in which the given stones have already been taken,
// in order. The last stone of the list becomes the last move. Legality of the
// sequence is not checked.
func FromTaken(size int, taken []Move) (*GameState, error) {
	gs, err := NewGameState(size)
	if err != nil {
		return nil, err
	}
	for _, m := range taken {
		if int(m) < 1 || int(m) > size {
			return nil, fmt.Errorf("%w: stone %d in a game of %d", ErrStoneOutOfRange, m, size)
		}
		if !gs.stones[m] {
			return nil, fmt.Errorf("%w: stone %d", ErrStoneTaken, m)
		}
		gs.take(m)
	}
	return gs, nil
}

// Copy returns a state with its own board.
func (gs *GameState) Copy() *GameState {
	stones := make([]bool, len(gs.stones))
	copy(stones, gs.stones)

	return &GameState{
		size:     gs.size,
		stones:   stones,
		lastMove: gs.lastMove,
	}
}

func (gs *GameState) take(m Move) {
	gs.stones[m] = false
	gs.lastMove = m
}

func (gs *GameState) Size() int      { return gs.size }
func (gs *GameState) LastMove() Move { return gs.lastMove }

func (gs *GameState) Stone(i int) bool {
	if i < 1 || i > gs.size {
		return false
	}
	return gs.stones[i]
}

// Taken counts the stones no longer available.
func (gs *GameState) Taken() int {
	taken := 0
	for i := 1; i <= gs.size; i++ {
		if !gs.stones[i] {
			taken++
		}
	}
	return taken
}

// Player returns the player to move. Player1 moves whenever an even number of
// stones has been taken.
func (gs *GameState) Player() Player {
	if gs.Taken()%2 == 0 {
		return Player1
	}
	return Player2
}

// LegalMoves lists the legal moves in ascending order. The opening move must be
// an odd stone below half of the size; afterwards a move must take an available
// divisor or multiple of the last move.
func (gs *GameState) LegalMoves() []Move {
	moves := []Move{}
	half := float64(gs.size) / 2.0
	for i := 1; i <= gs.size; i++ {
		if gs.lastMove == NoMove {
			if i%2 == 1 && float64(i) < half {
				moves = append(moves, Move(i))
			}
			continue
		}
		last := int(gs.lastMove)
		if gs.stones[i] && (i%last == 0 || last%i == 0) {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Successors expands one child per legal move, in LegalMoves order.
func (gs *GameState) Successors() []State {
	moves := gs.LegalMoves()
	children := make([]State, 0, len(moves))
	for _, m := range moves {
		children = append(children, gs.Play(m))
	}
	return children
}

// Play copies the state and takes stone m without checking legality.
func (gs *GameState) Play(m Move) State {
	if int(m) < 1 || int(m) > gs.size {
		panic(fmt.Sprintf("stone %d out of range 1..%d", m, gs.size))
	}
	child := gs.Copy()
	child.take(m)
	return child
}

// Apply plays m after checking that it is legal in this position.
func (gs *GameState) Apply(m Move) (*GameState, error) {
	for _, legal := range gs.LegalMoves() {
		if legal == m {
			return gs.Play(m).(*GameState), nil
		}
	}
	return nil, fmt.Errorf("%w: stone %d after %d", ErrIllegalMove, m, gs.lastMove)
}

// Winner reports who took the last stone once the player to move is stuck.
func (gs *GameState) Winner() Player {
	if len(gs.LegalMoves()) > 0 {
		return NoPlayer
	}
	if gs.Taken()%2 == 1 {
		return Player1
	}
	return Player2
}

func (gs *GameState) String() string {
	var b strings.Builder
	for i := 1; i <= gs.size; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		if gs.stones[i] {
			fmt.Fprintf(&b, "%d", i)
		} else {
			fmt.Fprintf(&b, "[%d]", i)
		}
	}
	return b.String()
}
