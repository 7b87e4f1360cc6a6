package screens

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

var pip = func() game.Appearance {
	r := image.Rect(0, 0, 16, 16)
	return game.Appearance{Region: &r, Resource: resource.Game("gui/score_indicator.png")}
}()

// PlayerBadge shows a player's name plate, lit while it is their turn, with
// one pip per pair found stacked underneath.
type PlayerBadge struct {
	Player game.Turn

	placement game.Placement
	lit       game.Appearance
	dim       game.Appearance
	selected  bool
}

func NewPlayerBadge(align game.Alignment, x, y int, player game.Turn) *PlayerBadge {
	tex := resource.Game("gui/player_1.png")
	if player == game.Player2 {
		tex = resource.Game("gui/player_2.png")
	}
	return &PlayerBadge{
		Player: player,
		placement: game.Placement{
			Align:  align,
			Offset: image.Pt(x, y),
			Size:   image.Pt(68, 21),
		},
		lit: cell(tex, 68, 21),
		dim: cell(tex, 68, 21).Shifted(0, 21),
	}
}

func (b *PlayerBadge) Placement() game.Placement    { return b.placement }
func (b *PlayerBadge) Selected() bool               { return b.selected }
func (b *PlayerBadge) SetSelected(v bool)           { b.selected = v }
func (b *PlayerBadge) Clickable(*game.Session) bool { return false }
func (b *PlayerBadge) OnClick(*game.Session)        {}

// Active reports whether the badge is lit. During the reveal pause the turn
// has already moved on after a miss, so the player who picked stays lit
// until the cards turn back over.
func (b *PlayerBadge) Active(s *game.Session) bool {
	turn := s.Turn()
	if s.WaitTimer() >= 0 && !s.PrevSuccess() {
		turn = turn.Toggle()
	}
	return turn == b.Player
}

func (b *PlayerBadge) Appearance(s *game.Session) game.Appearance {
	if b.Active(s) {
		return b.lit
	}
	return b.dim
}

func (b *PlayerBadge) Decorations(s *game.Session, at image.Point) []game.Sprite {
	score := s.Score(b.Player)
	pips := make([]game.Sprite, score)
	for i := range pips {
		pips[i] = game.Sprite{At: at.Add(image.Pt(26, 30+16*i)), Appearance: pip}
	}
	return pips
}

// Crown marks the winner once the match is over.
type Crown struct {
	Player game.Turn

	placement game.Placement
	selected  bool
}

var crown = func() game.Appearance {
	r := image.Rect(0, 0, 22, 20)
	return game.Appearance{Region: &r, Origin: image.Pt(11, 10), Resource: resource.Game("gui/crown.png")}
}()

func NewCrown(align game.Alignment, x, y int, player game.Turn) *Crown {
	return &Crown{
		Player: player,
		placement: game.Placement{
			Align:  align,
			Offset: image.Pt(x, y),
			Size:   image.Pt(22, 20),
		},
	}
}

func (c *Crown) Placement() game.Placement    { return c.placement }
func (c *Crown) Selected() bool               { return c.selected }
func (c *Crown) SetSelected(v bool)           { c.selected = v }
func (c *Crown) Clickable(*game.Session) bool { return false }
func (c *Crown) OnClick(*game.Session)        {}

func (c *Crown) Appearance(s *game.Session) game.Appearance {
	if winner, ok := s.Verdict().Winner(); ok && winner == c.Player {
		return crown
	}
	return game.Invisible()
}
