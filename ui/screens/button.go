package screens

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

// Button is a two-state widget: the first strip row is drawn normally, the
// second while the mouse is over it. A button with a Visible check is hidden
// and inert until the check passes.
type Button struct {
	Name    string
	Visible func(s *game.Session) bool
	Click   func(s *game.Session)

	placement game.Placement
	normal    game.Appearance
	hovered   game.Appearance
	selected  bool
}

func NewButton(name string, align game.Alignment, x, y int, tex resource.Location, w, h int) *Button {
	return &Button{
		Name: name,
		placement: game.Placement{
			Align:  align,
			Offset: image.Pt(x, y),
			Size:   image.Pt(w, h),
		},
		normal:  cell(tex, w, h),
		hovered: cell(tex, w, h).Shifted(0, h),
	}
}

func (b *Button) Placement() game.Placement { return b.placement }
func (b *Button) Selected() bool            { return b.selected }
func (b *Button) SetSelected(v bool)        { b.selected = v }

func (b *Button) Clickable(s *game.Session) bool {
	return b.Visible == nil || b.Visible(s)
}

func (b *Button) Appearance(s *game.Session) game.Appearance {
	if !b.Clickable(s) {
		return game.Invisible()
	}
	if b.selected {
		return b.hovered
	}
	return b.normal
}

func (b *Button) OnClick(s *game.Session) {
	if !b.Clickable(s) || b.Click == nil {
		return
	}
	s.Logger().Debug().Str("widget", b.Name).Msg("clicked")
	b.Click(s)
}

// NewPlay deals a new board and switches to the HUD.
func NewPlay(align game.Alignment, x, y int) *Button {
	b := NewButton("play", align, x, y, resource.Game("gui/play_play.png"), 39, 23)
	b.Click = startMatch
	return b
}

// NewQuit stops the game.
func NewQuit(align game.Alignment, x, y int) *Button {
	b := NewButton("quit", align, x, y, resource.Game("gui/quit.png"), 39, 23)
	b.Click = (*game.Session).Quit
	return b
}

// NewPlayAgain redeals once the current match is over.
func NewPlayAgain(align game.Alignment, x, y int) *Button {
	b := NewButton("play_again", align, x, y, resource.Game("gui/play_again.png"), 93, 23)
	b.Visible = (*game.Session).MatchOver
	b.Click = func(s *game.Session) {
		s.Logger().Info().Msg("resetting and playing again")
		startMatch(s)
	}
	return b
}

// NewEndQuit is the quit button of the end screen, shown once the match is
// over.
func NewEndQuit(align game.Alignment, x, y int) *Button {
	b := NewButton("end_quit", align, x, y, resource.Game("gui/quit_endscreen.png"), 38, 24)
	b.Visible = (*game.Session).MatchOver
	b.Click = (*game.Session).Quit
	return b
}

func startMatch(s *game.Session) {
	if err := s.CreateMemoryGameScene(); err != nil {
		s.Logger().Error().Err(err).Msg("failed to deal")
		return
	}
	s.SetScreen(NewHUD())
}
