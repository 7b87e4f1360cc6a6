package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/BurritoBandit28/Memory-Game/game"
)

var keys = map[ebiten.Key]game.Key{
	ebiten.KeyEscape: game.KeyEscape,
	ebiten.KeyF3:     game.KeyF3,
	ebiten.KeySpace:  game.KeySpace,
	ebiten.KeyEnter:  game.KeyEnter,
}

var buttons = map[ebiten.MouseButton]game.MouseButton{
	ebiten.MouseButtonLeft:   game.MouseLeft,
	ebiten.MouseButtonRight:  game.MouseRight,
	ebiten.MouseButtonMiddle: game.MouseMiddle,
}

// buttonOrder fixes the order of clicks arriving in the same frame.
var buttonOrder = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Snapshot is the raw ebiten input of one frame.
type Snapshot struct {
	Pressed []ebiten.Key
	Held    []ebiten.Key
	Clicked []ebiten.MouseButton
	Mouse   image.Point
}

// PollInput reads this frame's input from ebiten. Only valid inside Update.
func PollInput(view image.Point) game.Input {
	var s Snapshot
	s.Pressed = inpututil.AppendJustPressedKeys(s.Pressed)
	s.Held = inpututil.AppendPressedKeys(s.Held)
	s.Clicked = appendClicked(s.Clicked, inpututil.IsMouseButtonJustPressed)
	s.Mouse = image.Pt(ebiten.CursorPosition())
	return s.Translate(view)
}

// appendClicked appends the buttons reported as just pressed, in
// buttonOrder.
func appendClicked(clicked []ebiten.MouseButton, justPressed func(ebiten.MouseButton) bool) []ebiten.MouseButton {
	for _, b := range buttonOrder {
		if justPressed(b) {
			clicked = append(clicked, b)
		}
	}
	return clicked
}

// Translate maps the snapshot onto the game's input model. Keys the game
// does not know are dropped. Mouse clicks come after key presses.
func (s Snapshot) Translate(view image.Point) game.Input {
	in := game.Input{Mouse: s.Mouse, View: view}
	for _, k := range s.Pressed {
		if gk, ok := keys[k]; ok {
			in.Events = append(in.Events, game.KeyDown(gk))
		}
	}
	for _, k := range s.Held {
		if gk, ok := keys[k]; ok {
			in.Held = append(in.Held, gk)
		}
	}
	for _, b := range s.Clicked {
		if gb, ok := buttons[b]; ok {
			in.Events = append(in.Events, game.MouseDown(gb, s.Mouse.X, s.Mouse.Y))
		}
	}
	return in
}
