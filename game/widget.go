package game

import "image"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignTop
	AlignBottom
	AlignCenter
)

// Placement anchors a widget to an edge of the view. X is measured from the
// anchored edge (or the centre line for Top, Bottom and Center), Y from the
// horizontal centre line, positive upwards, except for Top and Bottom which
// measure from their edge.
type Placement struct {
	Align  Alignment
	Offset image.Point
	Size   image.Point
}

// Resolve returns the top-left corner of the widget in logical pixels.
func (p Placement) Resolve(view image.Point) image.Point {
	cx, cy := view.X/2, view.Y/2
	switch p.Align {
	case AlignLeft:
		return image.Pt(p.Offset.X, cy-p.Offset.Y)
	case AlignRight:
		return image.Pt(view.X+p.Offset.X, cy-p.Offset.Y)
	case AlignTop:
		return image.Pt(cx+p.Offset.X, p.Offset.Y)
	case AlignBottom:
		return image.Pt(cx+p.Offset.X, view.Y+p.Offset.Y)
	}
	return image.Pt(cx+p.Offset.X, cy-p.Offset.Y)
}

func (p Placement) Bounds(view image.Point) image.Rectangle {
	at := p.Resolve(view)
	return image.Rectangle{Min: at, Max: at.Add(p.Size)}
}

// Widget is a UI control owned by a Screen. The screen's hit-testing sets
// Selected; the session calls OnClick for selected widgets on a left click.
type Widget interface {
	Placement() Placement
	Selected() bool
	SetSelected(bool)
	// Clickable reports whether a click would do anything right now. The
	// finger cursor is only shown over clickable widgets.
	Clickable(s *Session) bool
	Appearance(s *Session) Appearance
	OnClick(s *Session)
}

// Sprite is an extra image drawn with a widget.
type Sprite struct {
	At         image.Point
	Appearance Appearance
}

// Decorated widgets draw extra sprites relative to their own position.
type Decorated interface {
	Decorations(s *Session, at image.Point) []Sprite
}

// Screen is the active set of widgets.
type Screen interface {
	Widgets() [][]Widget
	// Cycle runs the screen's per-frame hit-testing.
	Cycle(s *Session, in Input)
}

// ClickMode decides what happens when more than one widget is selected when
// a left click arrives.
type ClickMode int

const (
	// ClickAll activates every selected widget.
	ClickAll ClickMode = iota
	// ClickFirst activates only the first selected clickable widget in row
	// order.
	ClickFirst
)

func (m ClickMode) String() string {
	if m == ClickFirst {
		return "first"
	}
	return "all"
}

func ParseClickMode(s string) (ClickMode, bool) {
	switch s {
	case "", "all":
		return ClickAll, true
	case "first":
		return ClickFirst, true
	}
	return ClickAll, false
}

// dispatchClick runs OnClick on the selected widgets of the current screen.
// In ClickFirst mode widgets that are not clickable do not take the click.
// The widget rows are captured up front because a click may swap screens.
func (s *Session) dispatchClick() int {
	if s.screen == nil {
		return 0
	}
	clicked := 0
	for _, row := range s.screen.Widgets() {
		for _, w := range row {
			if !w.Selected() {
				continue
			}
			if s.clickMode == ClickFirst && !w.Clickable(s) {
				continue
			}
			w.OnClick(s)
			clicked++
			if s.clickMode == ClickFirst {
				return clicked
			}
		}
	}
	return clicked
}
