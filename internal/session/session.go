package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Face uint8

const (
	Smile Face = iota
	Dead
	Cool
)

func (f Face) String() string {
	switch f {
	case Dead:
		return "x_x"
	case Cool:
		return "B-)"
	default:
		return ":-)"
	}
}

type Options struct {
	Logger *slog.Logger
	Rand   mines.RandomSource
	// Now defaults to time.Now.
	Now          func() time.Time
	BoardOptions []mines.Option
}

// Session owns the board of the game in progress and the clock around it.
// Restarting replaces the board; nothing is carried over from the old one.
type Session struct {
	ID    uuid.UUID
	board *mines.Board

	logger    *slog.Logger
	rng       mines.RandomSource
	now       func() time.Time
	boardOpts []mines.Option

	startedAt time.Time
	endedAt   time.Time
}

func New(d mines.Difficulty, opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Rand == nil {
		opts.Rand = mines.NewRandomSourceFromEntropy()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		logger:    opts.Logger,
		rng:       opts.Rand,
		now:       opts.Now,
		boardOpts: opts.BoardOptions,
	}
	if err := s.reset(d); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset(d mines.Difficulty) error {
	board, err := mines.NewBoard(d, s.rng, s.boardOpts...)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}
	s.ID = uuid.New()
	s.board = board
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.logger.Info(
		"new game",
		slog.String("session", s.ID.String()),
		slog.String("difficulty", d.Seed()),
	)
	return nil
}

// Board is the current board. It is replaced by [Session.Restart] and
// [Session.ChangeDifficulty], so callers should not hold on to it.
func (s *Session) Board() *mines.Board {
	return s.board
}

func (s *Session) Restart() error {
	return s.reset(s.board.Difficulty())
}

func (s *Session) ChangeDifficulty(d mines.Difficulty) error {
	return s.reset(d)
}

func (s *Session) Open(x, y int) error {
	return s.apply("open", x, y, s.board.Reveal)
}

func (s *Session) Chord(x, y int) error {
	return s.apply("chord", x, y, s.board.ChordReveal)
}

func (s *Session) Click(x, y int) error {
	return s.apply("click", x, y, s.board.Click)
}

func (s *Session) Flag(x, y int) error {
	return s.apply("flag", x, y, s.board.ToggleFlag)
}

func (s *Session) apply(move string, x, y int, fn func(x, y int) error) error {
	wasFresh, wasOver := s.board.IsFresh(), s.board.IsGameOver()

	if err := fn(x, y); err != nil {
		s.logger.Debug(
			"rejected move",
			slog.String("session", s.ID.String()),
			slog.String("move", move),
			slog.Any("error", err),
		)
		return err
	}

	if wasFresh && !s.board.IsFresh() {
		s.startedAt = s.now()
	}
	if !wasOver && s.board.IsGameOver() {
		s.endedAt = s.now()
		s.logger.Info(
			"game over",
			slog.String("session", s.ID.String()),
			slog.String("difficulty", s.board.Difficulty().Seed()),
			slog.Bool("won", s.board.HasWon()),
			slog.Duration("elapsed", s.Elapsed()),
		)
	}
	return nil
}

// Elapsed is zero before the first reveal and stops when the game ends.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.startedAt.IsZero():
		return 0
	case !s.endedAt.IsZero():
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.now().Sub(s.startedAt)
	}
}

func (s *Session) Face() Face {
	switch {
	case s.board.HasWon():
		return Cool
	case s.board.IsGameOver():
		return Dead
	default:
		return Smile
	}
}
