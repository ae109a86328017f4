//go:build !tinygo && cgo

package hal

import (
	"context"
	"fmt"

	"lt24/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunWindow opens a desktop window showing the simulated panel and runs the
// bring-up against the simulator in the background. It blocks until the
// window closes or run fails.
func RunWindow(run func(context.Context, HAL) error, cfg HostConfig) error {
	h := NewHost(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, h) }()

	g := &hostGame{h: h, done: done, status: "waiting for display enable"}
	ebiten.SetWindowTitle("LT24 (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(panelDefaultWidth*2, panelDefaultHeight*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *Host
	done   chan error
	status string

	fbImg    *ebiten.Image
	fbW, fbH int
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		if err != nil {
			return err
		}
		c := g.h.Requests()
		g.status = fmt.Sprintf("running: %d commands, %d polls", c.Send, c.Polls)
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	img, ok := g.h.Image()
	if !ok {
		ebitenutil.DebugPrint(screen, g.status)
		return
	}

	b := img.Bounds()
	if g.fbImg == nil || g.fbW != b.Dx() || g.fbH != b.Dy() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbW, g.fbH = b.Dx(), b.Dy()
		g.fbImg = ebiten.NewImage(g.fbW, g.fbH)
	}
	g.fbImg.WritePixels(img.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(sw)/float64(g.fbW), float64(sh)/float64(g.fbH))
	screen.DrawImage(g.fbImg, &op)
	ebitenutil.DebugPrint(screen, g.status)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return panelDefaultWidth, panelDefaultHeight
}
