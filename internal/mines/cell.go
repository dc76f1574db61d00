package mines

import "strconv"

type CellState uint8

const (
	Hidden CellState = iota
	Flagged
	// Suspected is the question-mark state. It is only reachable when the
	// board is built with [WithQuestionMarks].
	Suspected
	Revealed
	Detonated
	// RevealedMine and WronglyFlagged are produced by the end-of-game
	// transform only.
	RevealedMine
	WronglyFlagged
)

var cellStateNames = [...]string{
	Hidden:         "Hidden",
	Flagged:        "Flagged",
	Suspected:      "Suspected",
	Revealed:       "Revealed",
	Detonated:      "Detonated",
	RevealedMine:   "RevealedMine",
	WronglyFlagged: "WronglyFlagged",
}

func (s CellState) String() string {
	if int(s) < len(cellStateNames) {
		return cellStateNames[s]
	}
	return "CellState(?)"
}

// Openable reports whether a reveal may act on a cell in state s.
func (s CellState) Openable() bool {
	return s == Hidden || s == Suspected
}

// Terminal reports whether s can only be left by rebuilding the board.
func (s CellState) Terminal() bool {
	switch s {
	case Revealed, Detonated, RevealedMine, WronglyFlagged:
		return true
	}
	return false
}

type cell struct {
	state    CellState
	mine     bool
	adjacent uint8
}

func (c *cell) adjacentMines() int { return int(c.adjacent) }

// open moves an openable cell to Revealed or Detonated and reports whether
// it held a mine. Non-openable cells are left alone.
func (c *cell) open() (changed, mine bool) {
	if !c.state.Openable() {
		return false, false
	}
	if c.mine {
		c.state = Detonated
		return true, true
	}
	c.state = Revealed
	return true, false
}

func (c *cell) toggleFlag(questionMarks bool) {
	switch c.state {
	case Hidden:
		c.state = Flagged
	case Flagged:
		if questionMarks {
			c.state = Suspected
		} else {
			c.state = Hidden
		}
	case Suspected:
		c.state = Hidden
	}
}

func (c *cell) gameOverReveal() {
	if c.mine && c.state.Openable() {
		c.state = RevealedMine
	} else if !c.mine && c.state == Flagged {
		c.state = WronglyFlagged
	}
}

// Glyph is the one-character face of a cell in text views.
func Glyph(s CellState, adjacent int) string {
	switch s {
	case Hidden:
		return "#"
	case Flagged:
		return "F"
	case Suspected:
		return "?"
	case Revealed:
		if adjacent == 0 {
			return "."
		}
		return strconv.Itoa(adjacent)
	case Detonated:
		return "X"
	case RevealedMine:
		return "*"
	case WronglyFlagged:
		return "x"
	default:
		return "!"
	}
}

func (c *cell) glyph() string {
	return Glyph(c.state, int(c.adjacent))
}
