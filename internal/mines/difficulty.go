package mines

import (
	"fmt"
	"math"
	"strings"
)

type Difficulty struct {
	Width, Height, MineCount int
}

var (
	Beginner     = Difficulty{Width: 8, Height: 8, MineCount: 10}
	Intermediate = Difficulty{Width: 16, Height: 16, MineCount: 40}
	Expert       = Difficulty{Width: 30, Height: 16, MineCount: 99}
)

// MaxCells bounds the area of a board.
const MaxCells = 1 << 24

// NewDifficulty returns a validated difficulty. Errors wrap [ErrInvalidArgument].
func NewDifficulty(width, height, mineCount int) (Difficulty, error) {
	d := Difficulty{Width: width, Height: height, MineCount: mineCount}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}

func (d Difficulty) Validate() error {
	switch {
	case d.Width <= 0:
		return fmt.Errorf("width must be positive, got %d: %w", d.Width, ErrInvalidArgument)
	case d.Height <= 0:
		return fmt.Errorf("height must be positive, got %d: %w", d.Height, ErrInvalidArgument)
	case d.Height > math.MaxInt/d.Width || d.TotalCells() > MaxCells:
		return fmt.Errorf(
			"board %dx%d is larger than %d cells: %w",
			d.Width, d.Height, MaxCells, ErrInvalidArgument,
		)
	case d.MineCount < 0:
		return fmt.Errorf("mine count must not be negative, got %d: %w", d.MineCount, ErrInvalidArgument)
	case d.MineCount >= d.TotalCells():
		return fmt.Errorf(
			"mine count %d must be less than %d cells: %w",
			d.MineCount, d.TotalCells(), ErrInvalidArgument,
		)
	}
	return nil
}

func (d Difficulty) TotalCells() int {
	return d.Width * d.Height
}

func (d Difficulty) SafeCells() int {
	return d.TotalCells() - d.MineCount
}

func (d Difficulty) Contains(x, y int) bool {
	return 0 <= x && x < d.Width && 0 <= y && y < d.Height
}

// Seed is the compact "W:H:M" form of d.
func (d Difficulty) Seed() string {
	return fmt.Sprintf("%d:%d:%d", d.Width, d.Height, d.MineCount)
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d(%d)", d.Width, d.Height, d.MineCount)
}

// ParseSeed is the inverse of [Difficulty.Seed]. The result is validated.
func ParseSeed(seed string) (Difficulty, error) {
	var d Difficulty
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &d.Width, &d.Height, &d.MineCount)
	if n != 3 || err != nil {
		return Difficulty{}, fmt.Errorf(
			`invalid difficulty seed %q (n = %d, err = %v): %w`,
			seed, n, err, ErrInvalidArgument,
		)
	}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}

type Level uint8

const (
	LevelBeginner Level = iota
	LevelIntermediate
	LevelExpert
)

var levelNames = [...]string{
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelExpert:       "expert",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", l)
}

func (l Level) Difficulty() Difficulty {
	switch l {
	case LevelBeginner:
		return Beginner
	case LevelIntermediate:
		return Intermediate
	default:
		return Expert
	}
}

func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf(
		"level must be one of %s, got %q: %w",
		strings.Join(levelNames[:], ", "), s, ErrInvalidArgument,
	)
}
