package deck

import (
	"errors"
	"reflect"
	"testing"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		deck *Deck
	}{
		{
			name: "cards",
			text: `deck "tiny"
			card apple { texture "cards/apple.png" data "other:apple.json" }
			# comment
			card "blood orange" { texture "cards/orange.png" }`,
			deck: &Deck{
				Name: "tiny",
				Cards: []game.Card{
					game.NewCard("apple", resource.New("other", "apple.json"), resource.Game("cards/apple.png")),
					game.NewCard("blood orange", resource.Game("cards/blood orange.json"), resource.Game("cards/orange.png")),
				},
				Textures: []resource.Location{resource.Game("cards/apple.png"), resource.Game("cards/orange.png")},
			},
		},
		{
			name: "assets",
			text: `deck "assets"
			card a { texture "cards/a.png" }
			texture "cards/a.png"
			texture "gui/crown.png"
			sound "sounds/flip.ogg"`,
			deck: &Deck{
				Name:     "assets",
				Cards:    []game.Card{game.NewCard("a", resource.Game("cards/a.json"), resource.Game("cards/a.png"))},
				Textures: []resource.Location{resource.Game("cards/a.png"), resource.Game("gui/crown.png")},
				Sounds:   []resource.Location{resource.Game("sounds/flip.ogg")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.name, tt.text)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}
			if !reflect.DeepEqual(d, tt.deck) {
				t.Errorf("got %+v, want %+v", d, tt.deck)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no header", `card a { texture "a.png" }`},
		{"no texture", `deck "x" card a { data "a.json" }`},
		{"bad location", `deck "x" card a { texture ":a.png" }`},
		{"unclosed", `deck "x" card a { texture "a.png"`},
		{"duplicate", `deck "x" card a { texture "a.png" } card a { texture "b.png" }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.name, tt.text); err == nil {
				t.Errorf("expected an error")
			}
		})
	}

	_, err := Parse("dup", `deck "x" card a { texture "a.png" } card a { texture "b.png" }`)
	if !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("expected ErrDuplicateCard, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("built-in deck does not parse: %v", err)
	}
	if len(d.Cards) != 9 {
		t.Errorf("expected 9 cards, got %d", len(d.Cards))
	}
	s := game.New(d.Cards, game.Options{})
	if err := s.CreateMemoryGameScene(); err != nil {
		t.Errorf("built-in deck does not deal: %v", err)
	}
	for _, want := range []resource.Location{game.FlipSound, game.PopSound} {
		found := false
		for _, loc := range d.Sounds {
			found = found || loc == want
		}
		if !found {
			t.Errorf("built-in deck is missing sound %s", want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.deck"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
