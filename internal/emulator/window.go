//go:build cgo

package emulator

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/faizmokh/fuzzyclock/internal/clock"
	"github.com/faizmokh/fuzzyclock/internal/face"
	"github.com/faizmokh/fuzzyclock/internal/panel"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// Run opens a desktop window showing the panel at twice its size. It blocks
// until the window closes or ctx is done.
func Run(ctx context.Context, opts Options) error {
	g := newGame(ctx, opts)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(panel.Width*Scale, panel.Height*Scale)
	ebiten.SetTPS(opts.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	ctx     context.Context
	face    *face.Face
	clock   clock.Clock
	battery <-chan status.Battery
	link    <-chan bool

	canvas   *panel.Canvas
	renderer *panel.Renderer
	img      *ebiten.Image
}

func newGame(ctx context.Context, opts Options) *game {
	return &game{
		ctx:      ctx,
		face:     opts.Face,
		clock:    opts.Clock,
		battery:  opts.Battery,
		link:     opts.Link,
		canvas:   panel.NewCanvas(panel.Width, panel.Height),
		renderer: panel.NewRenderer(),
	}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	drainStatus(g.face, g.battery, g.link)

	now := g.clock.Now()
	g.face.Tick(now)
	g.face.Step(now)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(panel.Width, panel.Height)
	}
	if err := g.renderer.Draw(g.canvas, g.face.Frame()); err != nil {
		return
	}
	g.img.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return panel.Width, panel.Height
}
