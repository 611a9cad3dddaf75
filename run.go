package wheel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor Color
	ShowFPS    bool

	// UpdateFunc, if set, is called once per frame after the pickers update.
	UpdateFunc func() error
}

// game adapts one or more pickers to ebiten.Game.
type game struct {
	pickers []*Picker
	cfg     RunConfig
}

func (g *game) Update() error {
	for _, p := range g.pickers {
		p.Update()
	}
	if g.cfg.UpdateFunc != nil {
		return g.cfg.UpdateFunc()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.RGBA())
	for _, p := range g.pickers {
		p.Draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run builds the pickers, opens a window and runs the game loop until the
// window is closed or UpdateFunc returns an error. The tick rate is fixed to
// one update per FrameInterval.
func Run(cfg RunConfig, pickers ...*Picker) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("wheel: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	for _, p := range pickers {
		p.Build()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(ebiten.DefaultTPS)
	return ebiten.RunGame(&game{pickers: pickers, cfg: cfg})
}
