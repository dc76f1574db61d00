package mines

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/gammazero/deque"
)

// Log receives debug events about mine placement and game ends.
var Log *slog.Logger = slog.Default()

// Option configures a [Board] at construction.
type Option func(*Board)

// WithQuestionMarks makes [Board.ToggleFlag] cycle Hidden, Flagged, Suspected.
func WithQuestionMarks() Option {
	return func(b *Board) {
		b.questionMarks = true
	}
}

// Board is the playing field of one game. It is not safe for concurrent use;
// a new Board is built for every restart.
type Board struct {
	difficulty    Difficulty
	cells         []cell /* row-major, y*Width + x */
	rng           RandomSource
	questionMarks bool

	revealed int
	fresh    bool
	over     bool
	won      bool
}

// NewBoard returns a fresh board with no mines placed yet. An invalid
// difficulty or a nil rng yields an error wrapping [ErrInvalidArgument].
func NewBoard(d Difficulty, rng RandomSource, opts ...Option) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid difficulty %s: %w", d, err)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required: %w", ErrInvalidArgument)
	}
	b := &Board{
		difficulty: d,
		cells:      make([]cell, d.TotalCells()),
		rng:        rng,
		fresh:      true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Board) Difficulty() Difficulty { return b.difficulty }

func (b *Board) Width() int { return b.difficulty.Width }

func (b *Board) Height() int { return b.difficulty.Height }

// IsFresh reports whether no cell has been revealed yet. Mines are not
// placed until the first reveal.
func (b *Board) IsFresh() bool { return b.fresh }

// IsGameOver reports whether the game ended, won or lost.
func (b *Board) IsGameOver() bool { return b.over }

// HasWon reports whether every safe cell was revealed.
func (b *Board) HasWon() bool { return b.won }

// Revealed returns the number of safe cells revealed so far.
func (b *Board) Revealed() int { return b.revealed }

func (b *Board) CellState(x, y int) (CellState, error) {
	i, err := b.index(x, y)
	if err != nil {
		return Hidden, err
	}
	return b.cells[i].state, nil
}

// AdjacentMineCount is meaningful once mines are placed; on a fresh board
// it is always 0.
func (b *Board) AdjacentMineCount(x, y int) (int, error) {
	i, err := b.index(x, y)
	if err != nil {
		return 0, err
	}
	return b.cells[i].adjacentMines(), nil
}

// RemainingMineEstimate is the mine count minus placed flags, never below 0.
func (b *Board) RemainingMineEstimate() int {
	flags := 0
	for i := range b.cells {
		if b.cells[i].state == Flagged {
			flags++
		}
	}
	return max(0, b.difficulty.MineCount-flags)
}

// Reveal opens the cell at x, y. The first reveal of a game places the mines
// and is never fatal. Revealing a non-openable cell or revealing after the
// game ended does nothing.
func (b *Board) Reveal(x, y int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	if b.over || !b.cells[i].state.Openable() {
		return nil
	}
	if b.fresh {
		if err := b.placeMines(i); err != nil {
			return err
		}
		b.fresh = false
	}
	b.reveal(i)
	return nil
}

// ChordReveal opens every unflagged neighbour of a revealed cell whose flag
// count matches its mine count. If one of them holds a mine, only that one
// is opened.
func (b *Board) ChordReveal(x, y int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	if b.over || b.cells[i].state != Revealed {
		return nil
	}

	flags := 0
	unflagged := make([]int, 0, 8)
	for j := range b.neighbors(i) {
		if b.cells[j].state == Flagged {
			flags++
		} else {
			unflagged = append(unflagged, j)
		}
	}
	if flags != b.cells[i].adjacentMines() {
		return nil
	}

	for _, j := range unflagged {
		if b.cells[j].mine {
			b.reveal(j)
			return nil
		}
	}
	for _, j := range unflagged {
		b.reveal(j)
	}
	return nil
}

// Click is the primary action on a cell: reveal when covered, chord when
// already revealed.
func (b *Board) Click(x, y int) error {
	state, err := b.CellState(x, y)
	if err != nil {
		return err
	}
	switch {
	case state.Openable():
		return b.Reveal(x, y)
	case state == Revealed:
		return b.ChordReveal(x, y)
	}
	return nil
}

// ToggleFlag cycles the flag on a covered cell. It does nothing on revealed
// cells and once the game is over.
func (b *Board) ToggleFlag(x, y int) error {
	i, err := b.index(x, y)
	if err != nil {
		return err
	}
	if b.over || b.cells[i].state.Terminal() {
		return nil
	}
	b.cells[i].toggleFlag(b.questionMarks)
	return nil
}

func (b *Board) index(x, y int) (int, error) {
	if !b.difficulty.Contains(x, y) {
		return 0, &OutOfRangeError{
			X: x, Y: y,
			Width: b.difficulty.Width, Height: b.difficulty.Height,
		}
	}
	return y*b.difficulty.Width + x, nil
}

// neighbors yields the in-bounds Chebyshev neighbours of i, i itself excluded.
func (b *Board) neighbors(i int) iter.Seq[int] {
	w, h := b.difficulty.Width, b.difficulty.Height
	x, y := i%w, i/w
	return func(yield func(int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := x+dx, y+dy
				if (dx == 0 && dy == 0) || xx < 0 || xx >= w || yy < 0 || yy >= h {
					continue
				}
				if !yield(yy*w + xx) {
					return
				}
			}
		}
	}
}

func (b *Board) placeMines(excluded int) error {
	picked, err := SelectIndicesExcluding(
		b.difficulty.TotalCells(), b.difficulty.MineCount, excluded, b.rng,
	)
	if err != nil {
		return fmt.Errorf("unable to place mines: %w", err)
	}
	b.layMines(picked)
	Log.Debug(
		"placed mines",
		slog.String("difficulty", b.difficulty.Seed()),
		slog.Int("excludedX", excluded%b.difficulty.Width),
		slog.Int("excludedY", excluded/b.difficulty.Width),
	)
	return nil
}

// layMines puts mines on exactly the given flat indices and recomputes
// every adjacency count.
func (b *Board) layMines(indices []int) {
	for i := range b.cells {
		b.cells[i].mine = false
	}
	for _, i := range indices {
		b.cells[i].mine = true
	}
	for i := range b.cells {
		n := uint8(0)
		for j := range b.neighbors(i) {
			if b.cells[j].mine {
				n++
			}
		}
		b.cells[i].adjacent = n
	}
}

// reveal opens i and, when it has no adjacent mines, the connected zero
// region around it. Cells are opened before they are queued, so none is
// queued twice.
func (b *Board) reveal(i int) {
	if b.over {
		return
	}
	changed, mine := b.cells[i].open()
	if !changed {
		return
	}
	if mine {
		b.endGame(false)
		return
	}
	b.revealed++

	var frontier deque.Deque[int]
	frontier.PushBack(i)
	for frontier.Len() != 0 {
		c := frontier.PopFront()
		if b.cells[c].adjacent != 0 {
			continue
		}
		for j := range b.neighbors(c) {
			changed, mine := b.cells[j].open()
			if !changed {
				continue
			}
			if mine {
				/* a zero cell cannot border a mine */
				b.endGame(false)
				return
			}
			b.revealed++
			frontier.PushBack(j)
		}
	}

	if b.revealed == b.difficulty.SafeCells() {
		b.endGame(true)
	}
}

func (b *Board) endGame(won bool) {
	b.over = true
	b.won = won
	for i := range b.cells {
		b.cells[i].gameOverReveal()
	}
	Log.Debug(
		"game over",
		slog.String("difficulty", b.difficulty.Seed()),
		slog.Bool("won", won),
		slog.Int("revealed", b.revealed),
	)
}

// MineLayout dumps the mine positions, one row per line: "*" for a mine and
// "-" for a safe cell.
func (b *Board) MineLayout() string {
	var sb strings.Builder
	for y := range b.difficulty.Height {
		for x := range b.difficulty.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if b.cells[y*b.difficulty.Width+x].mine {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String dumps the player's view, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.difficulty.Height {
		for x := range b.difficulty.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := &b.cells[y*b.difficulty.Width+x]
			sb.WriteString(c.glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
