package game

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

const emptyCardName = "Blank Card"

// Card describes one logical card of the deck. Two cards match when their
// names are equal.
type Card struct {
	Name    string
	Data    resource.Location
	Texture resource.Location
}

func NewCard(name string, data, texture resource.Location) Card {
	return Card{Name: name, Data: data, Texture: texture}
}

// EmptyCard fills selection slots that hold no pick.
func EmptyCard() Card {
	return Card{
		Name:    emptyCardName,
		Texture: resource.Game("cards/card_base.png"),
	}
}

func (c Card) IsEmpty() bool {
	return c.Name == emptyCardName
}

func (c Card) Matches(other Card) bool {
	return c.Name == other.Name
}

// Face and back sprites share the same atlas cell.
var (
	cardRegion = image.Rect(0, 0, 45, 68)
	cardOrigin = image.Pt(23, 34)
)

func (c Card) front() Appearance {
	return Appearance{Region: &cardRegion, Origin: cardOrigin, Resource: c.Texture}
}

func cardBack() Appearance {
	return Appearance{Region: &cardRegion, Origin: cardOrigin, Resource: resource.Game("cards/card_reverse.png")}
}
