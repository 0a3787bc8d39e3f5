package game

import "errors"

// Move identifies the stone taken, by its 1-based index.
type Move int

// NoMove marks that no stone has been taken yet, or that a search found no move to play.
const NoMove Move = 0

type Player int

const (
	NoPlayer Player = iota
	Player1         // maximizer, moves when an even number of stones is taken
	Player2         // minimizer
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "none"
	}
}

var (
	ErrInvalidSize     = errors.New("game size must be positive")
	ErrStoneOutOfRange = errors.New("stone out of range")
	ErrStoneTaken      = errors.New("stone already taken")
	ErrIllegalMove     = errors.New("illegal move")
)

// State should be immutable - operations on State always return a new copy
type State interface {
	Size() int
	Stone(i int) bool
	Taken() int
	LastMove() Move
	Player() Player
	LegalMoves() []Move
	Successors() []State
	Play(Move) State
	Winner() Player
}

// Evaluates the game state to a score between -1 and 1, positive when the
// position favours Player1 and negative when it favours Player2.
type Evaluate func(State) float64
