package game

import (
	"image"
	"math"

	"github.com/oklog/ulid/v2"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

type Vec struct {
	X, Y float32
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Entity is the per-frame contract shared by everything the session
// simulates. The unexported method keeps the set of variants closed to this
// package: cards and the camera proxy.
type Entity interface {
	ID() ulid.ULID
	// Index is the entity's position in the session's collection. It never
	// changes while the entity is alive.
	Index() int
	Position() Vec
	SetPosition(Vec)
	Velocity() Vec
	SetVelocity(Vec)
	Health() float32
	ChangeHealth(amount float32)
	Resource() resource.Location
	Tick(f *Frame, delta float32)
	Appearance() Appearance

	setIndex(int)
}

// body carries the state every entity variant has in common.
type body struct {
	id       ulid.ULID
	index    int
	pos      Vec
	velocity Vec
	health   float32
	res      resource.Location
}

func newBody(pos Vec, res resource.Location) body {
	return body{id: ulid.Make(), index: -1, pos: pos, res: res}
}

func (b *body) ID() ulid.ULID               { return b.id }
func (b *body) Index() int                  { return b.index }
func (b *body) setIndex(i int)              { b.index = i }
func (b *body) Position() Vec               { return b.pos }
func (b *body) SetPosition(p Vec)           { b.pos = p }
func (b *body) Velocity() Vec               { return b.velocity }
func (b *body) SetVelocity(v Vec)           { b.velocity = v }
func (b *body) Health() float32             { return b.health }
func (b *body) ChangeHealth(amount float32) { b.health += amount }
func (b *body) Resource() resource.Location { return b.res }

// Project maps a world position to logical screen pixels, with the camera at
// the centre of the view.
func Project(pos, camera Vec, view image.Point) image.Point {
	return image.Pt(
		int(math.Floor(float64(pos.X-camera.X)))+view.X/2,
		int(math.Floor(float64(pos.Y-camera.Y)))+view.Y/2,
	)
}
