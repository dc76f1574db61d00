package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/session"
)

// tickMsg only triggers a redraw so the timer moves.
type tickMsg time.Time

// Console plays one session in the terminal. Moves are made either with
// the cursor keys or by typing a command after ":".
type Console struct {
	session *session.Session
	logger  *slog.Logger
	decoder *schema.Decoder

	keys  keyMap
	help  help.Model
	input textinput.Model

	cursorX, cursorY int
	message          string
	showCommands     bool
}

func New(s *session.Session, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = "open 3 4"
	return &Console{
		session: s,
		logger:  logger,
		decoder: newDecoder(),
		keys:    keys,
		help:    help.New(),
		input:   input,
	}
}

// NewProgram wires c to the given streams. The program stops when ctx is
// done.
func NewProgram(ctx context.Context, c *Console, in io.Reader, out io.Writer, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}, opts...)
	return tea.NewProgram(c, opts...)
}

// Sender is the part of [tea.Program] the clock needs.
type Sender interface {
	Send(msg tea.Msg)
}

// RunClock asks for a redraw every interval until ctx is done.
func RunClock(ctx context.Context, p Sender, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			p.Send(tickMsg(now))
		}
	}
}

func (c *Console) Init() tea.Cmd {
	return nil
}

func (c *Console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return c, nil
	case tea.WindowSizeMsg:
		c.help.Width = msg.Width
		return c, nil
	case tea.KeyMsg:
		if c.input.Focused() {
			return c.updateInput(msg)
		}
		return c.updateBoard(msg)
	}
	return c, nil
}

func (c *Console) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		line := c.input.Value()
		c.input.Reset()
		c.input.Blur()
		if c.Execute(line) {
			return c, tea.Quit
		}
		return c, nil
	case tea.KeyEsc:
		c.input.Reset()
		c.input.Blur()
		return c, nil
	case tea.KeyCtrlC:
		return c, tea.Quit
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Console) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := c.session.Board()
	c.message = ""
	c.showCommands = false

	var err error
	switch {
	case key.Matches(msg, c.keys.Up):
		c.cursorY = max(c.cursorY-1, 0)
	case key.Matches(msg, c.keys.Down):
		c.cursorY = min(c.cursorY+1, board.Height()-1)
	case key.Matches(msg, c.keys.Left):
		c.cursorX = max(c.cursorX-1, 0)
	case key.Matches(msg, c.keys.Right):
		c.cursorX = min(c.cursorX+1, board.Width()-1)
	case key.Matches(msg, c.keys.Click):
		err = c.session.Click(c.cursorX, c.cursorY)
	case key.Matches(msg, c.keys.Open):
		err = c.session.Open(c.cursorX, c.cursorY)
	case key.Matches(msg, c.keys.Flag):
		err = c.session.Flag(c.cursorX, c.cursorY)
	case key.Matches(msg, c.keys.Chord):
		err = c.session.Chord(c.cursorX, c.cursorY)
	case key.Matches(msg, c.keys.Restart):
		err = c.session.Restart()
	case key.Matches(msg, c.keys.Command):
		return c, c.input.Focus()
	case key.Matches(msg, c.keys.Help):
		c.help.ShowAll = !c.help.ShowAll
	case key.Matches(msg, c.keys.Quit):
		return c, tea.Quit
	}
	if err != nil {
		c.complain(err)
	}
	return c, nil
}

// Execute runs one typed command and reports whether the player asked to
// quit. Bad input ends up in the message line.
func (c *Console) Execute(line string) (quit bool) {
	c.message = ""
	c.showCommands = false

	cmd, err := ParseCommand(line)
	if err != nil {
		c.complain(err)
		return false
	}

	switch {
	case cmd.IsMove():
		p, err := decodePoint(c.decoder, cmd.Args)
		if err != nil {
			c.complain(err)
			return false
		}
		if err := c.move(cmd.Verb, p); err != nil {
			c.complain(err)
			return false
		}
		c.cursorX, c.cursorY = p.X, p.Y
	case cmd.Verb == New:
		if len(cmd.Args) == 0 {
			err = c.session.Restart()
		} else {
			d, derr := decodeDifficulty(c.decoder, cmd.Args)
			if derr != nil {
				c.complain(derr)
				return false
			}
			err = c.session.ChangeDifficulty(d)
		}
		if err != nil {
			c.complain(err)
		}
		c.clampCursor()
	case cmd.Verb == Restart:
		if err := c.session.Restart(); err != nil {
			c.complain(err)
		}
	case cmd.Verb == Help:
		c.showCommands = true
	case cmd.Verb == Quit:
		return true
	}
	return false
}

func (c *Console) move(verb Verb, p point) error {
	switch verb {
	case Open:
		return c.session.Open(p.X, p.Y)
	case Flag:
		return c.session.Flag(p.X, p.Y)
	case Chord:
		return c.session.Chord(p.X, p.Y)
	default:
		return c.session.Click(p.X, p.Y)
	}
}

func (c *Console) clampCursor() {
	board := c.session.Board()
	c.cursorX = min(c.cursorX, board.Width()-1)
	c.cursorY = min(c.cursorY, board.Height()-1)
}

func (c *Console) complain(reason error) {
	c.logger.Debug("bad input", slog.Any("error", reason))
	c.message = errorStyle.Render(fmt.Sprintf("error: %v", reason))
}

func (c *Console) View() string {
	parts := frame(c.session, c.cursorX, c.cursorY)
	if c.message != "" {
		parts = append(parts, c.message)
	}
	if c.showCommands {
		parts = append(parts, helpText)
	}
	if c.input.Focused() {
		parts = append(parts, c.input.View())
	}
	parts = append(parts, "", c.help.View(c.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
