package game

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

// SoundPlayer plays a sound by location and returns immediately.
type SoundPlayer interface {
	Play(loc resource.Location)
}

type silence struct{}

func (silence) Play(resource.Location) {}

// Frame is the slice of session state an entity may touch during Tick. It is
// built fresh for every frame and must not be kept.
type Frame struct {
	s      *Session
	result *RoundResult
}

func (f *Frame) Input() Input {
	return f.s.input
}

func (f *Frame) Mouse() image.Point {
	return f.s.input.Mouse
}

func (f *Frame) View() image.Point {
	return f.s.input.View
}

// Camera returns the camera position, false when the scene has no camera.
func (f *Frame) Camera() (Vec, bool) {
	p, err := f.s.Player()
	if err != nil {
		return Vec{}, false
	}
	return p.Position(), true
}

// Result is the round verdict being delivered this frame, nil on every other
// frame.
func (f *Frame) Result() *RoundResult {
	return f.result
}

func (f *Frame) SelectedCount() int {
	return f.s.selectedCount
}

// Select records a pick for the current round. It refuses once two cards are
// held.
func (f *Frame) Select(c *CardEntity) bool {
	s := f.s
	if s.selectedCount >= 2 {
		return false
	}
	s.selected[s.selectedCount] = selection{card: c.card, entity: c.ID()}
	s.selectedCount++
	return true
}

func (f *Frame) Play(loc resource.Location) {
	f.s.PlaySound(loc)
}

// RequestFinger asks for the pointing-hand cursor this frame.
func (f *Frame) RequestFinger() {
	f.s.useFinger = true
}
