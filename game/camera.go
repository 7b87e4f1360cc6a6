package game

import "github.com/BurritoBandit28/Memory-Game/resource"

// CameraEntity marks the viewpoint. It has no footprint and does nothing per
// frame.
type CameraEntity struct {
	body
}

func NewCameraEntity(pos Vec) *CameraEntity {
	return &CameraEntity{body: newBody(pos, resource.Empty())}
}

func (c *CameraEntity) Tick(f *Frame, delta float32) {}

func (c *CameraEntity) Appearance() Appearance {
	return Invisible()
}
