package game

import (
	"image"
	"testing"
)

func TestCardHover(t *testing.T) {
	s, sounds := newTestSession(t, "A", "B")
	c := cardsNamed(s, "A")[0]
	at := screenPos(c)

	tests := []struct {
		name  string
		mouse image.Point
		hover bool
	}{
		{"centre", at, true},
		{"left edge", at.Add(image.Pt(-23, 0)), true},
		{"right edge", at.Add(image.Pt(22, 0)), false},
		{"bottom edge", at.Add(image.Pt(0, 34)), false},
		{"top", at.Add(image.Pt(0, -34)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idle(s, 0)
			s.Cycle(0, Input{Mouse: tt.mouse, View: testView})
			if c.Hovered() != tt.hover {
				t.Fatalf("expected hover %v at %v", tt.hover, tt.mouse)
			}
			want := c.Base()
			if tt.hover {
				want.Y -= hoverLift
			}
			if c.Position() != want {
				t.Errorf("expected position %v, got %v", want, c.Position())
			}
			if s.UseFinger() != tt.hover {
				t.Errorf("expected finger %v", tt.hover)
			}
		})
	}

	// Once raised, the box reaches as low as the resting box did.
	idle(s, 0)
	s.Cycle(0, Input{Mouse: at, View: testView})
	s.Cycle(0, Input{Mouse: at.Add(image.Pt(0, 30)), View: testView})
	if !c.Hovered() {
		t.Error("raised card lost hover at its lower edge")
	}

	pops := sounds.count(PopSound)
	s.Cycle(0, Input{Mouse: at, View: testView})
	if sounds.count(PopSound) != pops {
		t.Error("pop must only play when the hover starts")
	}
}

func TestSelectedCardStaysRaised(t *testing.T) {
	s, _ := newTestSession(t, "A", "B")
	c := cardsNamed(s, "A")[0]
	click(s, c)
	if !c.Selected() {
		t.Fatal("card was not selected")
	}
	if s.UseFinger() {
		t.Error("finger shown over a selected card")
	}
	if c.Appearance() != c.card.front() {
		t.Error("selected card must show its face")
	}
	idle(s, 0)
	if !c.Hovered() || c.Position().Y != c.Base().Y-hoverLift {
		t.Error("selected card dropped when the mouse left")
	}

	// Clicking a selected card again does not pick it twice.
	click(s, c)
	if s.SelectedCount() != 1 {
		t.Errorf("expected 1 selected, got %d", s.SelectedCount())
	}
}

func TestCardAppearance(t *testing.T) {
	c := NewCardEntity(NewCard("A", EmptyCard().Data, EmptyCard().Texture), 0, 0)
	if c.Appearance().Resource != cardBack().Resource {
		t.Errorf("face-down card shows %v", c.Appearance().Resource)
	}
	c.success = true
	if c.Appearance().Resource != c.card.Texture {
		t.Errorf("resolved card shows %v", c.Appearance().Resource)
	}
}
