package screens

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

// Base holds a screen's widget rows and does the per-frame hit-testing.
type Base struct {
	rows [][]game.Widget
}

// Add appends w to the given row, growing the row list as needed.
func (b *Base) Add(w game.Widget, row int) {
	for len(b.rows) <= row {
		b.rows = append(b.rows, nil)
	}
	b.rows[row] = append(b.rows[row], w)
}

func (b *Base) Widgets() [][]game.Widget {
	return b.rows
}

// Cycle marks every widget under the mouse as selected and asks for the
// finger cursor when one of them would react to a click.
func (b *Base) Cycle(s *game.Session, in game.Input) {
	for _, row := range b.rows {
		for _, w := range row {
			hit := in.Mouse.In(w.Placement().Bounds(in.View))
			w.SetSelected(hit)
			if hit && w.Clickable(s) {
				s.RequestFinger()
			}
		}
	}
}

// cell is the top w x h cell of a vertical sprite strip. Lower rows are
// reached with Shifted.
func cell(loc resource.Location, w, h int) game.Appearance {
	r := image.Rect(0, 0, w, h)
	return game.Appearance{Region: &r, Resource: loc}
}
