package tictactoe

const (
	// OutcomeNone - the game is undecided: no line is complete and empty
	// cells remain.
	OutcomeNone Outcome = ""

	// OutcomeDraw - every cell is marked and no line is complete.
	OutcomeDraw Outcome = "-"
)

// Outcome - the result of evaluating a board.
type Outcome string

// Win - the outcome where the given player completed a line.
func Win(player Player) Outcome {
	return Outcome(player)
}

func (that Outcome) IsNone() bool {
	return that == OutcomeNone
}

func (that Outcome) IsDraw() bool {
	return that == OutcomeDraw
}

func (that Outcome) IsWin() bool {
	return that != OutcomeNone && that != OutcomeDraw
}

// Winner - extracts the winning player from a win outcome. The second
// return is false for none and draw.
func (that Outcome) Winner() (Player, bool) {
	if !that.IsWin() {
		return "", false
	}
	return Player(that), true
}
