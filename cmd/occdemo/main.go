// occdemo is a terminal occlusion-culling visualizer: it flies a camera
// through a small scene and reports live render/cull statistics, and can
// dump the current w-buffer to a grayscale PNG on demand.
//
// Controls:
//
//	Esc / Ctrl+C  - Quit
//	P             - Write the current depth buffer to depth.png
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/wegiangb/occluder/pkg/math3d"
	"github.com/wegiangb/occluder/pkg/occlusion"
	"github.com/wegiangb/occluder/pkg/scene"
)

var (
	modelPath = flag.String("model", "", "Path to a GLB file to load as the occluder scene (synthetic scene used if omitted)")
	targetFPS = flag.Int("fps", 30, "Target frames per second")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	bufW, bufH := rasterSize(width, height)

	cam := scene.NewCamera()
	cam.SetAspectRatio(float64(bufW) / float64(bufH))
	cam.SetFOV(math.Pi / 3)
	cam.SetClipPlanes(0.1, 200)

	renderer, err := occlusion.New(bufW, bufH, cam)
	if err != nil {
		return fmt.Errorf("new renderer: %w", err)
	}

	sc := buildDemoScene()
	if *modelPath != "" {
		loaded, err := scene.LoadGLB(*modelPath)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		sc.occluders = append(sc.occluders, loaded)
	}

	occluders := make([]occlusion.Occluder, len(sc.occluders))
	for i, m := range sc.occluders {
		occluders[i] = scene.MeshOccluder{Mesh: m, Model: math3d.Identity()}
	}
	candidates := make([]occlusion.Candidate, len(sc.candidates))
	for i, m := range sc.candidates {
		candidates[i] = scene.MeshCandidate{Mesh: m, Model: math3d.Identity(), Mode: occlusion.CullAlways}
	}

	path := newFlightPath(*targetFPS, []math3d.Vec3{
		math3d.V3(-10, 0, 0),
		math3d.V3(10, 0, 0),
		math3d.V3(0, 6, 5),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	dumpRequested := false
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Resize(width, height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
					cancel()
					return
				case ev.MatchString("p"):
					dumpRequested = true
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()

		pos := path.step(0.5)
		cam.SetPosition(pos)
		cam.LookAt(math3d.V3(0, 0, -15))

		if err := renderer.Render(occluders); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		visible, err := renderer.Cull(candidates)
		if err != nil {
			return fmt.Errorf("cull: %w", err)
		}

		stats := renderer.CullStats()
		term.Erase()
		fmt.Fprintf(os.Stdout,
			"\x1b[H occdemo  camera=%.1f,%.1f,%.1f  tested=%d culled=%d visible=%d/%d  triangles=%d\r\n",
			pos.X, pos.Y, pos.Z,
			stats.CandidatesTested, stats.CandidatesCulled, len(visible), len(candidates),
			stats.TrianglesRasterized,
		)

		if dumpRequested {
			dumpRequested = false
			if err := dumpDepthPNG(renderer, "depth.png"); err != nil {
				fmt.Fprintf(os.Stderr, "dump depth: %v\r\n", err)
			}
		}

		if elapsed := time.Since(frameStart); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// rasterSize downsamples the terminal's character grid into a depth
// buffer resolution: full rows but half the columns, since terminal cells
// are roughly twice as tall as they are wide.
func rasterSize(cols, rows int) (int, int) {
	w := cols / 2
	if w < 1 {
		w = 1
	}
	if rows < 1 {
		rows = 1
	}
	return w, rows
}

func dumpDepthPNG(r *occlusion.Renderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.DepthToColor())
}
