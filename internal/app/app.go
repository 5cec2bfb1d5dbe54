//go:build ebiten

package app

import (
	"time"

	"maze-viz/internal/render"
	"maze-viz/internal/search"
	"maze-viz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var kindKeys = []struct {
	key  ebiten.Key
	kind search.Kind
}{
	{ebiten.KeyDigit1, search.BFS},
	{ebiten.KeyDigit2, search.DFS},
	{ebiten.KeyDigit3, search.Dijkstra},
	{ebiten.KeyDigit4, search.AStar},
}

// Game adapts the Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	hud     *ui.HUD
	scale   int
}

// New constructs a Game for the provided configuration.
func New(cfg *Config, kind search.Kind) (*Game, error) {
	d, err := NewDriver(cfg, kind)
	if err != nil {
		return nil, err
	}
	return &Game{
		driver:  d,
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		hud:     ui.NewHUD(),
		scale:   cfg.Scale,
	}, nil
}

// Update handles input and advances any in-flight search. A quit mid-run
// unwinds immediately without path reconstruction.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kk := range kindKeys {
		if inpututil.IsKeyJustPressed(kk.key) {
			g.driver.Select(kk.kind)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.driver.Regenerate(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.driver.StartRun()
	}

	g.driver.Tick()
	return nil
}

// Draw renders the maze, overlays and HUD for the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.driver.Display(), render.Palette(g.driver.Kind()), g.scale)
	g.hud.Draw(screen, g.driver.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	gr := g.driver.Grid()
	return gr.W * g.scale, gr.H * g.scale
}
