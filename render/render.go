package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/BurritoBandit28/Memory-Game/game"
	"github.com/BurritoBandit28/Memory-Game/resource"
)

var (
	Level  = resource.Game("level/table.png")
	Cursor = resource.Game("gui/cursor.png")
	Finger = resource.Game("gui/finger.png")

	background = color.RGBA{0x1d, 0x2b, 0x53, 0xff}
	slotColor  = color.RGBA{0xff, 0x00, 0x4d, 0xff}
	missing    = color.RGBA{0xff, 0x00, 0xff, 0xff}
)

// The finger's tip is a few pixels into the image.
var fingerOrigin = image.Pt(5, 0)

type regionKey struct {
	loc    resource.Location
	region image.Rectangle
}

// Renderer draws the session onto an ebiten image. Call Begin with the
// frame's target before Session.Render.
type Renderer struct {
	target   *ebiten.Image
	textures map[resource.Location]*ebiten.Image
	regions  *lru.Cache[regionKey, *ebiten.Image]
	face     text.Face
	log      zerolog.Logger
	warned   map[resource.Location]bool
}

// Load decodes every texture in the catalog from files. Textures that fail
// to load are logged and drawn as a placeholder.
func Load(files fs.FS, textures []resource.Location, log zerolog.Logger) (*Renderer, error) {
	regions, err := lru.New[regionKey, *ebiten.Image](256)
	if err != nil {
		return nil, fmt.Errorf("failed to create region cache: %w", err)
	}
	r := &Renderer{
		textures: make(map[resource.Location]*ebiten.Image, len(textures)),
		regions:  regions,
		face:     text.NewGoXFace(basicfont.Face7x13),
		log:      log,
		warned:   make(map[resource.Location]bool),
	}
	for _, loc := range textures {
		if loc == resource.Empty() {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(files, loc.File())
		if err != nil {
			log.Warn().Err(err).Stringer("texture", loc).Msg("failed to load texture")
			continue
		}
		r.textures[loc] = img
	}
	log.Info().Int("textures", len(r.textures)).Msg("loaded textures")
	return r, nil
}

func (r *Renderer) Begin(target *ebiten.Image) {
	r.target = target
	target.Fill(background)
}

func (r *Renderer) view() image.Point {
	return r.target.Bounds().Size()
}

func (r *Renderer) texture(loc resource.Location) (*ebiten.Image, bool) {
	img, ok := r.textures[loc]
	if !ok && !r.warned[loc] {
		r.warned[loc] = true
		r.log.Warn().Stringer("texture", loc).Msg("texture not loaded")
	}
	return img, ok
}

func (r *Renderer) region(loc resource.Location, img *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	key := regionKey{loc, rect}
	if sub, ok := r.regions.Get(key); ok {
		return sub
	}
	sub := img.SubImage(rect).(*ebiten.Image)
	r.regions.Add(key, sub)
	return sub
}

// DrawLevel draws the table centred on the world origin. In debug mode the
// board slots are outlined.
func (r *Renderer) DrawLevel(camera game.Vec, debug bool) {
	view := r.view()
	centre := game.Project(game.Vec{}, camera, view)
	if img, ok := r.texture(Level); ok {
		size := img.Bounds().Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(centre.X-size.X/2), float64(centre.Y-size.Y/2))
		r.target.DrawImage(img, op)
	}
	if !debug {
		return
	}
	for _, p := range game.BoardPositions {
		at := game.Project(p, camera, view)
		vector.StrokeRect(r.target, float32(at.X-23), float32(at.Y-34), 45, 68, 1, slotColor, false)
	}
}

func (r *Renderer) DrawSprite(at image.Point, a game.Appearance) {
	if a.Resource == resource.Empty() {
		return
	}
	dst := Destination(at, a)
	img, ok := r.texture(a.Resource)
	if !ok {
		size := a.Size()
		if size == (image.Point{}) {
			size = image.Pt(8, 8)
		}
		vector.DrawFilledRect(r.target, float32(dst.X), float32(dst.Y), float32(size.X), float32(size.Y), missing, false)
		return
	}
	if a.Region != nil {
		img = r.region(a.Resource, img, *a.Region)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	r.target.DrawImage(img, op)
}

func (r *Renderer) DrawPointer(at image.Point, finger bool) {
	a := game.Appearance{Resource: Cursor}
	if finger {
		a = game.Appearance{Resource: Finger, Origin: fingerOrigin}
	}
	r.DrawSprite(at, a)
}

func (r *Renderer) DrawDebug(lines []string) {
	lines = append(lines, fmt.Sprintf("tps: %.1f", ebiten.ActualTPS()))
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.LineSpacing = 14
	text.Draw(r.target, strings.Join(lines, "\n"), r.face, op)
}

// Destination is the top-left corner a sprite is drawn at.
func Destination(at image.Point, a game.Appearance) image.Point {
	return at.Sub(a.Origin)
}
