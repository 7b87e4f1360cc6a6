package game

import (
	"image"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

// Appearance is what the renderer needs to draw a sprite: an atlas region
// (nil for the whole image), the origin offset that centres the sprite on
// its position, and the source image.
type Appearance struct {
	Region   *image.Rectangle
	Origin   image.Point
	Resource resource.Location
}

// Invisible draws the transparent placeholder.
func Invisible() Appearance {
	return Appearance{Resource: resource.Empty()}
}

// Size of the drawn sprite, zero when the whole image is used.
func (a Appearance) Size() image.Point {
	if a.Region == nil {
		return image.Point{}
	}
	return a.Region.Size()
}

// Shifted returns the appearance drawn from another cell of the same atlas.
func (a Appearance) Shifted(dx, dy int) Appearance {
	if a.Region == nil {
		return a
	}
	r := a.Region.Add(image.Pt(dx, dy))
	a.Region = &r
	return a
}
