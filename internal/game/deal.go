package game

import (
	"golang.org/x/exp/rand"
)

// Board geometry. The grid is always 4x4; card (col, row) sits at
// (gridOrigin + gridPitch*col, gridOrigin + gridPitch*row).
const (
	Pairs = 8
	Cols  = 4
	Rows  = 4

	gridOrigin = 50
	gridPitch  = 120
)

// Deal returns the card values 1..Pairs, each twice, shuffled by seed.
// The same seed always yields the same order.
func Deal(seed uint64) []int {
	values := make([]int, 0, 2*Pairs)
	for v := 1; v <= Pairs; v++ {
		values = append(values, v, v)
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}

// layout places values row by row onto the grid.
func layout(values []int) []Card {
	cards := make([]Card, 0, len(values))
	for i, v := range values {
		col, row := i%Cols, i/Cols
		cards = append(cards, NewCard(
			float64(gridOrigin+gridPitch*col),
			float64(gridOrigin+gridPitch*row),
			v,
		))
	}
	return cards
}

// CellCenter returns the logical centre of grid cell (col, row).
func CellCenter(col, row int) Point {
	return Point{
		X: float64(gridOrigin+gridPitch*col) + CardSize/2,
		Y: float64(gridOrigin+gridPitch*row) + CardSize/2,
	}
}
