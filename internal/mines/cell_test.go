package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellOpen(t *testing.T) {
	tests := []struct {
		name        string
		given       cell
		wantState   CellState
		wantChanged bool
		wantMine    bool
	}{
		{name: "hidden safe", given: cell{state: Hidden}, wantState: Revealed, wantChanged: true},
		{name: "suspected safe", given: cell{state: Suspected}, wantState: Revealed, wantChanged: true},
		{name: "hidden mine", given: cell{state: Hidden, mine: true}, wantState: Detonated, wantChanged: true, wantMine: true},
		{name: "flagged", given: cell{state: Flagged, mine: true}, wantState: Flagged},
		{name: "revealed", given: cell{state: Revealed}, wantState: Revealed},
		{name: "detonated", given: cell{state: Detonated, mine: true}, wantState: Detonated},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := test.given
			changed, mine := c.open()
			assert.Equal(t, test.wantChanged, changed)
			assert.Equal(t, test.wantMine, mine)
			assert.Equal(t, test.wantState, c.state)
		})
	}
}

func TestCellGameOverReveal(t *testing.T) {
	tests := []struct {
		name  string
		given cell
		want  CellState
	}{
		{name: "hidden mine", given: cell{state: Hidden, mine: true}, want: RevealedMine},
		{name: "suspected mine", given: cell{state: Suspected, mine: true}, want: RevealedMine},
		{name: "flagged mine", given: cell{state: Flagged, mine: true}, want: Flagged},
		{name: "flagged safe", given: cell{state: Flagged}, want: WronglyFlagged},
		{name: "hidden safe", given: cell{state: Hidden}, want: Hidden},
		{name: "detonated", given: cell{state: Detonated, mine: true}, want: Detonated},
		{name: "revealed", given: cell{state: Revealed, adjacent: 3}, want: Revealed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := test.given
			c.gameOverReveal()
			assert.Equal(t, test.want, c.state)
			c.gameOverReveal()
			assert.Equal(t, test.want, c.state)
		})
	}
}

func TestCellStatePredicates(t *testing.T) {
	assert.True(t, Hidden.Openable())
	assert.True(t, Suspected.Openable())
	assert.False(t, Flagged.Openable())
	assert.False(t, Revealed.Openable())

	assert.True(t, Revealed.Terminal())
	assert.True(t, WronglyFlagged.Terminal())
	assert.False(t, Flagged.Terminal())

	assert.Equal(t, "RevealedMine", RevealedMine.String())
	assert.Equal(t, "CellState(?)", CellState(42).String())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "#", Glyph(Hidden, 0))
	assert.Equal(t, ".", Glyph(Revealed, 0))
	assert.Equal(t, "8", Glyph(Revealed, 8))
	assert.Equal(t, "X", Glyph(Detonated, 0))
	assert.Equal(t, "x", Glyph(WronglyFlagged, 2))
	assert.Equal(t, "?", Glyph(Suspected, 0))
}
