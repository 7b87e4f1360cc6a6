package ui

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/render"
)

// Program adapts a game session to ebiten's game loop.
type Program struct {
	Session  *game.Session
	Renderer *render.Renderer
	Width    int
	Height   int
	Log      zerolog.Logger

	err error
}

func (p *Program) Update() error {
	if p.err != nil {
		return p.err
	}
	if ebiten.IsWindowBeingClosed() {
		p.Session.Quit()
	}
	delta := 1 / float32(ebiten.TPS())
	p.Session.Cycle(delta, PollInput(image.Pt(p.Width, p.Height)))
	if !p.Session.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the session. A scene without a camera cannot be drawn and
// ends the loop on the next update.
func (p *Program) Draw(screen *ebiten.Image) {
	p.Renderer.Begin(screen)
	if err := p.Session.Render(p.Renderer); err != nil && p.err == nil {
		p.Log.Error().Err(err).Msg("failed to render")
		p.err = err
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}

// Run opens the window at the given pixel scale and blocks until the
// session stops.
func Run(p *Program, title string, scale int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(p.Width*scale, p.Height*scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
