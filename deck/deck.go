package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

//go:embed default.deck
var defaultDeck string

var ErrDuplicateCard = errors.New("duplicate card")

// Deck is a validated deck: the card catalog plus every texture and sound
// the game should preload.
type Deck struct {
	Name     string
	Cards    []game.Card
	Textures []resource.Location
	Sounds   []resource.Location
}

// Default returns the deck compiled into the binary.
func Default() (*Deck, error) {
	return Parse("default.deck", defaultDeck)
}

// Load reads a deck file, or the built-in deck when path is empty.
func Load(path string) (*Deck, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return Parse(path, string(b))
}

func Parse(name, txt string) (*Deck, error) {
	f, err := NewParser().ParseString(name, txt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	return build(f)
}

func build(f *File) (*Deck, error) {
	d := &Deck{Name: f.Name}
	seen := map[string]bool{}
	textures := map[resource.Location]bool{}
	addTexture := func(loc resource.Location) {
		if !textures[loc] {
			textures[loc] = true
			d.Textures = append(d.Textures, loc)
		}
	}

	for _, e := range f.Entries {
		switch {
		case e.Card != nil:
			card, err := buildCard(e.Card)
			if err != nil {
				return nil, err
			}
			if seen[card.Name] {
				return nil, fmt.Errorf("%s: %w %q", e.Card.Pos, ErrDuplicateCard, card.Name)
			}
			seen[card.Name] = true
			d.Cards = append(d.Cards, card)
			addTexture(card.Texture)
		case e.Texture != nil:
			loc, err := resource.Parse(e.Texture.Location)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Texture.Pos, err)
			}
			addTexture(loc)
		case e.Sound != nil:
			loc, err := resource.Parse(e.Sound.Location)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Sound.Pos, err)
			}
			d.Sounds = append(d.Sounds, loc)
		}
	}
	return d, nil
}

func buildCard(def *CardDef) (game.Card, error) {
	var texture, data resource.Location
	for _, fld := range def.Fields {
		loc, err := resource.Parse(fld.Value)
		if err != nil {
			return game.Card{}, fmt.Errorf("%s: card %s: %w", fld.Pos, def.Name, err)
		}
		if fld.Key == "texture" {
			texture = loc
		} else {
			data = loc
		}
	}
	if texture.IsZero() {
		return game.Card{}, fmt.Errorf("%s: card %s has no texture", def.Pos, def.Name)
	}
	if data.IsZero() {
		data = resource.Game("cards/" + def.Name + ".json")
	}
	return game.NewCard(def.Name, data, texture), nil
}
