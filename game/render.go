package game

import (
	"fmt"
	"image"
)

// Renderer draws what the session asks for. Positions are logical pixels.
type Renderer interface {
	DrawLevel(camera Vec, debug bool)
	DrawSprite(at image.Point, a Appearance)
	DrawPointer(at image.Point, finger bool)
	DrawDebug(lines []string)
}

// Render draws one frame: the level, the entities in depth order, the
// active screen, then the pointer. It fails when a scene has entities but no
// camera, which means the scene was built incorrectly.
func (s *Session) Render(r Renderer) error {
	view := s.input.View
	if len(s.entities) > 0 {
		order := DepthOrder(s.entities)
		player, err := s.Player()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		camera := player.Position()
		r.DrawLevel(camera, s.debug)
		for _, i := range order {
			e := s.entities[i]
			r.DrawSprite(Project(e.Position(), camera, view), e.Appearance())
		}
	}
	if s.screen != nil {
		for _, row := range s.screen.Widgets() {
			for _, w := range row {
				at := w.Placement().Resolve(view)
				r.DrawSprite(at, w.Appearance(s))
				if d, ok := w.(Decorated); ok {
					for _, sp := range d.Decorations(s, at) {
						r.DrawSprite(sp.At, sp.Appearance)
					}
				}
			}
		}
	}
	if s.debug {
		r.DrawDebug(s.DebugLines())
	}
	if s.drawMouse {
		r.DrawPointer(s.input.Mouse, s.useFinger)
	}
	return nil
}

func (s *Session) DebugLines() []string {
	return []string{
		fmt.Sprintf("turn: %s", s.turn),
		fmt.Sprintf("score: %d - %d", s.player1Score, s.player2Score),
		fmt.Sprintf("selected: %d", s.selectedCount),
		fmt.Sprintf("wait: %.2f", s.waitTimer),
		fmt.Sprintf("entities: %d", len(s.entities)),
	}
}
