package main

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matzehuels/periodix/internal/config"
	"github.com/matzehuels/periodix/pkg/dataset"
	"github.com/matzehuels/periodix/pkg/frame"
	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/render"
	"github.com/matzehuels/periodix/pkg/scene"
)

const (
	screenWidth  = 1280
	screenHeight = 800

	// Debug font glyph size in pixels.
	glyphWidth  = 6
	glyphHeight = 16

	orbitSpeed = 0.02 // radians per frame while an arrow key is held
)

// cardSize is the element card size in world units.
var cardSize = mgl64.Vec2{120, 160}

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorEdge       = color.RGBA{127, 255, 255, 200}
)

var layoutKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyT, layout.NameTable},
	{ebiten.KeyS, layout.NameSphere},
	{ebiten.KeyH, layout.NameHelix},
	{ebiten.KeyG, layout.NameGrid},
}

// game implements ebiten.Game. Ebiten calls Update and Draw from one
// goroutine, so the scene needs no locking.
type game struct {
	scene  *scene.Scene
	loop   *frame.Loop
	camera render.Camera
	base   time.Duration
	dt     time.Duration
	logger *log.Logger

	fills  []color.RGBA
	white  *ebiten.Image
	yaw    float64
	width  int
	height int
}

func newGame(cfg *config.Config, logger *log.Logger) (*game, error) {
	s, err := cfg.NewScene()
	if err != nil {
		return nil, err
	}
	if err := s.TransitionTo(cfg.Transition.Initial, cfg.Transition.Duration); err != nil {
		return nil, err
	}

	g := &game{
		scene:  s,
		loop:   frame.NewLoop(),
		camera: render.DefaultCamera(),
		base:   cfg.Transition.Duration,
		dt:     cfg.Frame.Interval(),
		logger: logger,
		fills:  cardFills(s.Len(), cfg.Transition.Seed),
		width:  screenWidth,
		height: screenHeight,
	}
	g.loop.Subscribe("input", func(time.Duration) { g.handleOrbit() })
	g.loop.Subscribe("scene", s.Tick)
	return g, nil
}

// cardFills gives every card a teal fill with an opacity between 0.25 and
// 0.75, as in the classic demo.
func cardFills(n int, seed uint64) []color.RGBA {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	fills := make([]color.RGBA, n)
	for i := range fills {
		a := 0.25 + rng.Float64()*0.5
		// Premultiplied alpha.
		fills[i] = color.RGBA{0, uint8(127 * a), uint8(127 * a), uint8(255 * a)}
	}
	return fills
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for _, k := range layoutKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			if err := g.scene.TransitionTo(k.name, g.base); err != nil {
				return err
			}
			g.logger.Debug("Transition", "layout", k.name, "base", g.base)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.yaw = 0
	}

	g.loop.Step(g.dt)
	return nil
}

func (g *game) handleOrbit() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.yaw -= orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.yaw += orbitSpeed
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if g.white == nil {
		g.white = ebiten.NewImage(3, 3)
		g.white.Fill(color.White)
	}
	src := g.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	elements := g.scene.Elements()
	positions := make([]mgl64.Vec3, len(elements))
	for i, el := range elements {
		positions[i] = el.Transform.Position
	}

	cam := g.camera.Orbit(g.yaw, 0)
	width, height := float64(g.width), float64(g.height)
	for _, p := range cam.ProjectAll(positions, width, height) {
		el := elements[p.Index]
		rot := layout.RotationMatrix(el.Transform.Rotation)
		corners, ok := cam.ProjectCard(el.Transform.Position, rot, cardSize, width, height)
		if !ok {
			continue
		}

		screen.DrawTriangles(cardVertices(corners, g.fills[p.Index]), cardIndices, src, nil)
		for i := range corners {
			a, b := corners[i], corners[(i+1)%len(corners)]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, colorEdge, false)
		}

		// Labels are drawn upright at the card centre's scale.
		w, h := cardSize.X()*p.Scale, cardSize.Y()*p.Scale
		x, y := p.X-w/2, p.Y-h/2
		sym := el.Record.Symbol
		ebitenutil.DebugPrintAt(screen, sym, int(p.X)-len(sym)*glyphWidth/2, int(p.Y)-glyphHeight/2)
		// Number and details only fit on cards close to the camera.
		if h >= 4*glyphHeight {
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(el.Index+1), int(x+w)-4*glyphWidth, int(y)+2)
			lines := detailLines(el.Record)
			for i, line := range lines {
				ly := int(y+h) - (len(lines)-i)*glyphHeight - 2
				ebitenutil.DebugPrintAt(screen, line, int(p.X)-len(line)*glyphWidth/2, ly)
			}
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s  %d tweens  TPS %.0f\nT table  S sphere  H helix  G grid  ←/→ orbit  R reset  Esc quit",
		g.scene.Current(), g.scene.Active(), ebiten.ActualTPS()))
}

// cardIndices splits a card quad into two triangles.
var cardIndices = []uint16{0, 1, 2, 0, 2, 3}

// cardVertices turns projected card corners into vertices tinted with the
// premultiplied fill colour.
func cardVertices(corners [4]render.Projection, fill color.RGBA) []ebiten.Vertex {
	r, g, b, a := float32(fill.R)/255, float32(fill.G)/255, float32(fill.B)/255, float32(fill.A)/255
	vs := make([]ebiten.Vertex, len(corners))
	for i, c := range corners {
		vs[i] = ebiten.Vertex{
			DstX: float32(c.X), DstY: float32(c.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	return vs
}

// detailLines returns the name and mass lines printed under the symbol.
func detailLines(r dataset.Record) []string {
	return strings.Split(r.Details(), "\n")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
