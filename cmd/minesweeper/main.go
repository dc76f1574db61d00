package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"golang.org/x/sync/errgroup"
)

func newLogger(w io.Writer) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(w, nil)
	if config.LogFormat() == "text" {
		handler = slog.NewTextHandler(w, nil)
	}
	if config.Development() {
		handler = tint.NewHandler(w, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

func main() {
	var logOut io.Writer = os.Stderr
	if path := config.LogFile(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("unable to open log file", slog.Any("error", err))
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	mines.Log = logger

	cfg, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read game config", slog.Any("error", err))
		os.Exit(1)
	}

	flag.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty,
		"beginner, intermediate, expert or custom")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width for custom difficulty")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height for custom difficulty")
	flag.IntVar(&cfg.MineCount, "mines", cfg.MineCount, "mine count for custom difficulty")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a random one")
	flag.BoolVar(&cfg.QuestionMarks, "marks", cfg.QuestionMarks, "allow question marks")
	flag.Parse()

	d, err := cfg.ResolveDifficulty()
	if err != nil {
		logger.Error("invalid difficulty", slog.Any("error", err))
		os.Exit(1)
	}

	var rng mines.RandomSource = mines.NewRandomSourceFromEntropy()
	if cfg.Seed != 0 {
		rng = mines.NewRandomSource(cfg.Seed, cfg.Seed)
	}

	s, err := session.New(d, session.Options{
		Logger:       logger,
		Rand:         rng,
		BoardOptions: cfg.BoardOptions(),
	})
	if err != nil {
		logger.Error("failed to start session", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	p := console.NewProgram(gCtx, console.New(s, logger), os.Stdin, os.Stdout, tea.WithAltScreen())
	g.Go(func() error {
		defer stop()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		return console.RunClock(gCtx, p, time.Second)
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		logger.Error("exit reason", slog.Any("error", err))
		os.Exit(1)
	}
}
