package console

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Verb uint8

const (
	Open Verb = iota + 1
	Flag
	Chord
	Click
	New
	Restart
	Help
	Quit
)

var ErrBadCommand = errors.New(`unknown command, type "help" for a list`)

type Command struct {
	Verb Verb
	Args []string
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrBadCommand
	}
	verb, err := decodeVerb(fields[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Verb: verb, Args: fields[1:]}, nil
}

func decodeVerb(s string) (verb Verb, err error) {
	switch strings.ToLower(s) {
	case "open", "o":
		verb = Open
	case "flag", "f":
		verb = Flag
	case "chord", "c":
		verb = Chord
	case "click":
		verb = Click
	case "new", "n":
		verb = New
	case "restart", "r":
		verb = Restart
	case "help", "h", "?":
		verb = Help
	case "quit", "q", "exit":
		verb = Quit
	default:
		err = ErrBadCommand
	}
	return
}

func (c Command) IsMove() bool {
	switch c.Verb {
	case Open, Flag, Chord, Click:
		return true
	}
	return false
}

type point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type customParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// toValues maps "key=value" arguments to their key and bare arguments to
// the positional names in order.
func toValues(args []string, positional ...string) url.Values {
	values := make(url.Values, len(args))
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok {
			values.Set(strings.ToLower(key), value)
		} else if len(positional) > 0 {
			values.Set(positional[0], arg)
			positional = positional[1:]
		}
	}
	return values
}

func decodePoint(dec *schema.Decoder, args []string) (point, error) {
	var p point
	if err := dec.Decode(&p, toValues(args, "x", "y")); err != nil {
		return point{}, fmt.Errorf("expected a point as \"x y\": %w", err)
	}
	return p, nil
}

// decodeDifficulty accepts a level name, a "W:H:M" seed, or
// width=W height=H mine_count=M.
func decodeDifficulty(dec *schema.Decoder, args []string) (mines.Difficulty, error) {
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		if strings.Contains(args[0], ":") {
			return mines.ParseSeed(args[0])
		}
		level, err := mines.ParseLevel(args[0])
		if err != nil {
			return mines.Difficulty{}, err
		}
		return level.Difficulty(), nil
	}

	var p customParams
	if err := dec.Decode(&p, toValues(args, "width", "height", "mine_count")); err != nil {
		return mines.Difficulty{}, fmt.Errorf("expected width, height and mine_count: %w", err)
	}
	return mines.NewDifficulty(p.Width, p.Height, p.MineCount)
}
