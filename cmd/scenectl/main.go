// Command scenectl drives a demo scene through the scenelink control
// surface: it registers a software render window and renderer, then
// issues the same handle-addressed operations a remote controller would.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/scenelink/scenelink"
	"github.com/scenelink/scenelink/event"
	"github.com/scenelink/scenelink/loop"
	"github.com/scenelink/scenelink/scene"
)

type config struct {
	Width  int `env:"SCENECTL_WIDTH" envDefault:"640"`
	Height int `env:"SCENECTL_HEIGHT" envDefault:"480"`
	Frames int `env:"SCENECTL_FRAMES" envDefault:"3"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		width       = flag.Int("width", cfg.Width, "Initial window width")
		height      = flag.Int("height", cfg.Height, "Initial window height")
		frames      = flag.Int("frames", cfg.Frames, "Frames to render before stopping the loop")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		scenelink.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*width, *height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*width, *height, *frames); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height, frames int) error {
	mgr := scene.NewManager()
	defer mgr.Close()

	win, ren, iren := newDemoScene(width, height)
	winID := mgr.Register(win)
	renID := mgr.Register(ren)

	fmt.Printf("Registered window id=%d, renderer id=%d\n", winID, renID)

	token := mgr.AddObserver(winID, string(event.RenderEvent), func(sender uint32, name string) {
		fmt.Printf("  event: sender=%d %s (frame %d)\n", sender, name, win.frames)
	})
	if token == 0 {
		return fmt.Errorf("attach observer to window %d", winID)
	}

	if !mgr.SetSize(winID, width, height) {
		return fmt.Errorf("resize window %d", winID)
	}
	if !mgr.ResetCamera(renID) {
		return fmt.Errorf("reset camera of renderer %d", renID)
	}

	// Queue the frames, then let the blocking loop dispatch them. The
	// last frame stops the loop from inside its own callback, which is
	// how a remote controller ends a StartEventLoop call.
	for i := 0; i < frames; i++ {
		last := i == frames-1
		iren.Post(func() {
			mgr.Render(winID)
			if last {
				mgr.StopEventLoop(winID)
			}
		})
	}

	fmt.Printf("Starting event loop for %d frame(s)...\n", frames)
	if !mgr.StartEventLoop(winID) {
		return fmt.Errorf("start event loop of window %d", winID)
	}
	fmt.Printf("Event loop stopped after %d frame(s) at %dx%d\n", win.frames, win.width, win.height)

	mgr.RemoveObserver(winID, token)
	return nil
}

// demoWindow is a software render surface: rendering just counts frames
// and fires RenderEvent for observers.
type demoWindow struct {
	event.Emitter
	width  int
	height int
	frames int
	iren   scenelink.Interactor
}

func (w *demoWindow) Render() {
	w.frames++
	w.Invoke(event.RenderEvent)
}

func (w *demoWindow) UpdateSize(width, height int) {
	w.width, w.height = width, height
}

func (w *demoWindow) Interactor() scenelink.Interactor { return w.iren }

func (w *demoWindow) Delete() { w.Emitter.Close() }

// demoRenderer owns a camera position that ResetCamera recenters.
type demoRenderer struct {
	camX, camY, camZ float64
	resets           int
}

func (r *demoRenderer) ResetCamera() {
	r.camX, r.camY, r.camZ = 0, 0, 1
	r.resets++
}

func newDemoScene(width, height int) (*demoWindow, *demoRenderer, *loop.Interactor) {
	iren := loop.New()
	win := &demoWindow{width: width, height: height, iren: iren}
	iren.SetSurface(win)
	return win, &demoRenderer{camX: 3, camY: 4, camZ: 5}, iren
}
