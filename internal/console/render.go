package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

var (
	counterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("232")).Bold(true)
	faceStyle      = lipgloss.NewStyle().Bold(true)
	indexStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	hiddenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	flagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	detonatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	wrongFlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("94"))
	numStyles      = [...]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}

	winStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	loseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

const counterMax = 999

// counter formats n the way a three-digit LED counter would show it.
func counter(n int) string {
	return fmt.Sprintf("%03d", min(max(n, 0), counterMax))
}

func clock(elapsed time.Duration) string {
	return counter(int(elapsed / time.Second))
}

func cellStyle(state mines.CellState, adjacent int) lipgloss.Style {
	switch state {
	case mines.Flagged, mines.Suspected:
		return flagStyle
	case mines.Revealed:
		if adjacent > 0 && adjacent <= len(numStyles) {
			return numStyles[adjacent-1]
		}
		return emptyStyle
	case mines.Detonated:
		return detonatedStyle
	case mines.RevealedMine:
		return mineStyle
	case mines.WronglyFlagged:
		return wrongFlagStyle
	default:
		return hiddenStyle
	}
}

func statusLine(s *session.Session) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		counterStyle.Render(counter(s.Board().RemainingMineEstimate())),
		"  ",
		faceStyle.Render(s.Face().String()),
		"  ",
		counterStyle.Render(clock(s.Elapsed())),
	)
}

// renderBoard draws the board with column and row indices. The cell at
// cx, cy is highlighted; pass a point off the board for no cursor.
func renderBoard(board *mines.Board, cx, cy int) string {
	width, height := board.Width(), board.Height()
	colWidth := len(strconv.Itoa(width - 1))
	rowWidth := len(strconv.Itoa(height - 1))

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", rowWidth+1))
	for x := range width {
		fmt.Fprintf(&header, " %*d", colWidth, x)
	}

	rows := make([]string, 0, height+1)
	rows = append(rows, indexStyle.Render(header.String()))
	for y := range height {
		var row strings.Builder
		row.WriteString(indexStyle.Render(fmt.Sprintf("%*d ", rowWidth, y)))
		for x := range width {
			state, _ := board.CellState(x, y)
			adjacent, _ := board.AdjacentMineCount(x, y)
			glyph := fmt.Sprintf("%*s", colWidth, mines.Glyph(state, adjacent))

			style := cellStyle(state, adjacent)
			if x == cx && y == cy {
				style = cursorStyle
			}
			row.WriteByte(' ')
			row.WriteString(style.Render(glyph))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// Render draws the status line, the board and the end of game message
// without a cursor.
func Render(s *session.Session) string {
	return lipgloss.JoinVertical(lipgloss.Left, frame(s, -1, -1)...)
}

func frame(s *session.Session, cx, cy int) []string {
	board := s.Board()
	parts := []string{statusLine(s), renderBoard(board, cx, cy)}
	switch {
	case board.HasWon():
		parts = append(parts, winStyle.Render(
			fmt.Sprintf("You win! Time: %.2f seconds.", s.Elapsed().Seconds()),
		))
	case board.IsGameOver():
		parts = append(parts, loseStyle.Render("Game over. Press r to play again."))
	}
	return parts
}

const helpText = `commands:
  open x y      (o)  reveal a cell
  flag x y      (f)  toggle a flag
  chord x y     (c)  reveal the neighbours of a satisfied number
  click x y          open a covered cell or chord a revealed one
  new [level]   (n)  new game: beginner, intermediate, expert,
                     W:H:M, or width=W height=H mine_count=M
  restart       (r)  new game with the same difficulty
  help          (h)  show this help
  quit          (q)  leave`
