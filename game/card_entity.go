package game

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

const hoverLift = 8

var (
	FlipSound = resource.Game("sounds/flip.ogg")
	PopSound  = resource.Game("sounds/pop.ogg")
)

// CardEntity is one dealt card on the board.
type CardEntity struct {
	body
	card  Card
	front Appearance
	back  Appearance
	// base is where the card was dealt; pos animates around it.
	base Vec

	hover     bool
	prevHover bool
	selected  bool
	success   bool
}

func NewCardEntity(card Card, x, y float32) *CardEntity {
	base := Vec{x, y}
	return &CardEntity{
		body:  newBody(base, card.Data),
		card:  card,
		front: card.front(),
		back:  cardBack(),
		base:  base,
	}
}

func (c *CardEntity) Card() Card     { return c.card }
func (c *CardEntity) Base() Vec      { return c.base }
func (c *CardEntity) Hovered() bool  { return c.hover }
func (c *CardEntity) Selected() bool { return c.selected }
func (c *CardEntity) Resolved() bool { return c.success }

// hitBox is the clickable area around the projected position. A hovered card
// sits hoverLift pixels higher, so its box reaches further down to keep the
// hover from flickering at the lower edge.
func (c *CardEntity) hitBox(at image.Point) image.Rectangle {
	bottom := 34
	if c.hover {
		bottom = 34 + hoverLift
	}
	return image.Rect(at.X-23, at.Y-34, at.X+22, at.Y+bottom)
}

func (c *CardEntity) Tick(f *Frame, delta float32) {
	camera, ok := f.Camera()
	if !ok {
		return
	}
	at := Project(c.pos, camera, f.View())

	if r := f.Result(); r != nil {
		if c.selected && r.Outcome == Matched && r.Includes(c.id) {
			c.success = true
		}
		c.hover = false
		c.selected = false
	}
	if c.success {
		c.pos = c.base
		return
	}

	c.hover = f.Mouse().In(c.hitBox(at))
	if c.hover && !c.selected && f.Input().LeftClicked() {
		if f.Select(c) {
			c.selected = true
			f.Play(FlipSound)
		}
	}
	if c.selected {
		c.hover = true
	}
	if c.hover {
		c.pos = c.base.Add(Vec{0, -hoverLift})
		if !c.selected {
			f.RequestFinger()
		}
	} else {
		c.pos = c.base
	}
	if c.hover && !c.prevHover {
		f.Play(PopSound)
	}
	c.prevHover = c.hover
}

// Appearance shows the face once picked or resolved, the back otherwise.
func (c *CardEntity) Appearance() Appearance {
	if c.selected || c.success {
		return c.front
	}
	return c.back
}
