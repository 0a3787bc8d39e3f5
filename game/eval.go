package game

const (
	lastMoveOneScore = 0.5
	primeScore       = 0.7
	compositeScore   = 0.6
	WinScore         = 1.0
	LossScore        = -WinScore
	UndecidedScore   = 0.0
)

// EvaluateStones is the static board evaluator of the stone game. Terminal
// positions score ±1 for the player who took the last stone; other positions
// score by the parity of the stones left to play around the last move.
func EvaluateStones(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return gs.Evaluate()
}

func (gs *GameState) Evaluate() float64 {
	// Nothing is decided while stone 1 is on the board
	if gs.stones[1] {
		return UndecidedScore
	}

	taken := gs.Taken()
	if taken == gs.size || len(gs.LegalMoves()) == 0 {
		if taken%2 == 1 {
			return WinScore
		}
		return LossScore
	}

	// Scores below are from Player1's point of view and flip on Player2's turn
	sign := 1.0
	if taken%2 == 1 {
		sign = -1.0
	}

	last := int(gs.lastMove)
	switch {
	case last == 1:
		return sign * parityScore(gs.size-taken, lastMoveOneScore)
	case IsPrime(last):
		return sign * parityScore(gs.countMultiples(last), primeScore)
	case last > 1:
		p := LargestPrimeFactor(last)
		return sign * parityScore(gs.countMultiples(p), compositeScore)
	}
	return UndecidedScore
}

// countMultiples counts the available stones among p, 2p, 3p, ... up to the size.
func (gs *GameState) countMultiples(p int) int {
	count := 0
	for i := 1; i*p <= gs.size; i++ {
		if gs.stones[i*p] {
			count++
		}
	}
	return count
}

func parityScore(n int, score float64) float64 {
	if n%2 == 1 {
		return score
	}
	return -score
}
