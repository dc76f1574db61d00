package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/vancomm/minesweeper/internal/mines"
)

const Custom = "custom"

// Game is the difficulty and randomness setup read from the environment.
type Game struct {
	Difficulty    string `env:"MINES_DIFFICULTY" envDefault:"expert"`
	Width         int    `env:"MINES_WIDTH"`
	Height        int    `env:"MINES_HEIGHT"`
	MineCount     int    `env:"MINES_COUNT"`
	Seed          uint64 `env:"MINES_SEED"`
	QuestionMarks bool   `env:"MINES_QUESTION_MARKS"`
}

func NewGame() (*Game, error) {
	var g Game
	if err := env.Parse(&g); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &g, nil
}

// ResolveDifficulty turns the named level, or the explicit dimensions when
// the level is "custom", into a validated difficulty.
func (g Game) ResolveDifficulty() (mines.Difficulty, error) {
	if g.Difficulty == Custom {
		d, err := mines.NewDifficulty(g.Width, g.Height, g.MineCount)
		if err != nil {
			return mines.Difficulty{}, fmt.Errorf("custom difficulty: %w", err)
		}
		return d, nil
	}
	level, err := mines.ParseLevel(g.Difficulty)
	if err != nil {
		return mines.Difficulty{}, err
	}
	return level.Difficulty(), nil
}

func (g Game) BoardOptions() []mines.Option {
	var opts []mines.Option
	if g.QuestionMarks {
		opts = append(opts, mines.WithQuestionMarks())
	}
	return opts
}
