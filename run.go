package bramble

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ContentScale, if > 0, is passed to SetContentScaleFactor before the
	// game loop starts.
	ContentScale float64
	ShowFPS      bool
	Debug        bool
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene         *Scene
	width, height int
}

func (g *gameShell) Update() error { return g.scene.Update() }

func (g *gameShell) Draw(screen *ebiten.Image) { g.scene.Draw(screen) }

func (g *gameShell) Layout(_, _ int) (int, int) { return g.width, g.height }

// Run opens a window and drives scene until the window closes or an update
// returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.ContentScale > 0 {
		SetContentScaleFactor(cfg.ContentScale)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		w := NewFPSWidget()
		w.SetPosition(4, float64(cfg.Height-fpsWidgetH-4))
		scene.Root().AddChild(w)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&gameShell{scene: scene, width: cfg.Width, height: cfg.Height})
}
