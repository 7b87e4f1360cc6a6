package game

import "image"

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF3
	KeySpace
	KeyEnter
)

// DebugKey toggles the debug overlay.
const DebugKey = KeyF3

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseDown
)

type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton
	X, Y   int
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

func MouseDown(b MouseButton, x, y int) Event {
	return Event{Kind: EventMouseDown, Button: b, X: x, Y: y}
}

// Input is the per-frame snapshot handed over by the platform layer. Mouse
// and View are in logical (unscaled) pixels.
type Input struct {
	Events []Event
	Held   []Key
	Mouse  image.Point
	View   image.Point
}

// LeftClicked reports whether a left button press arrived this frame.
func (in Input) LeftClicked() bool {
	for _, e := range in.Events {
		if e.Kind == EventMouseDown && e.Button == MouseLeft {
			return true
		}
	}
	return false
}
