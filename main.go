package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

var (
	sceneName = flag.String("scene", "default", "Built-in scene name, scene file ID or path to a .yaml scene")
	scenesDir = flag.String("scenes-dir", "", "Directory holding .yaml scenes (default: ./scenes or ../scenes)")
	width     = flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height    = flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	format    = flag.String("format", "ppm", "Output format: ppm or png")
	out       = flag.String("out", "", "Output file (default: stdout)")
	scale     = flag.Int("scale", 1, "Integer upscale factor for png output")
	workers   = flag.Int("workers", 0, "Rows rendered in parallel (0 = CPU count)")
	list      = flag.Bool("list", false, "List available scenes and exit")
	help      = flag.Bool("help", false, "Show help information")
)

// glogLogger adapts glog to core.Logger
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if *help {
		printHelp(os.Stdout)
		return
	}

	glog.Infof("flags:")
	glog.Infof("scene: %v", *sceneName)
	glog.Infof("scenes-dir: %v", *scenesDir)
	glog.Infof("width: %v", *width)
	glog.Infof("height: %v", *height)
	glog.Infof("format: %v", *format)
	glog.Infof("out: %v", *out)
	glog.Infof("scale: %v", *scale)
	glog.Infof("workers: %v", *workers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir := *scenesDir
	if dir == "" {
		dir = scene.FindScenesDir()
	}
	registry := scene.NewRegistry(dir, glogLogger{})
	registry.AllowPaths = true

	if *list {
		if err := listScenes(os.Stdout, registry); err != nil {
			glog.Exitf("Error: %v", err)
		}
		return
	}

	if err := do(ctx, registry); err != nil {
		glog.Exitf("Error: %v", err)
	}
}

func do(ctx context.Context, registry *scene.Registry) error {
	if err := validateOutput(*format, *scale); err != nil {
		return err
	}

	s, err := createScene(registry, *sceneName, *width, *height)
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	if *workers > 0 {
		config.Workers = *workers
	}
	config.LogRows = bool(glog.V(2))

	canvas, stats, err := renderer.NewRaytracer(s, config, glogLogger{}).Render(ctx)
	if err != nil {
		return xerrors.Errorf("while rendering %s: %w", s.Name, err)
	}
	glog.Infof("Render completed in %v", stats.Elapsed)

	if *out == "" {
		return writeOutput(os.Stdout, canvas, *format, *scale)
	}
	if *format == "png" {
		if err := renderer.SavePNG(*out, canvas, *scale); err != nil {
			return err
		}
	} else {
		f, err := os.Create(*out)
		if err != nil {
			return xerrors.Errorf("while creating output file: %w", err)
		}
		defer f.Close()
		if err := writeOutput(f, canvas, *format, *scale); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return xerrors.Errorf("while closing output file: %w", err)
		}
	}
	glog.Infof("Render saved as %s", *out)
	return nil
}

// createScene loads a scene and applies size overrides; zero keeps the scene's own size
func createScene(registry *scene.Registry, name string, width, height int) (*scene.Scene, error) {
	if width < 0 || height < 0 {
		return nil, xerrors.Errorf("image size must not be negative, got %dx%d", width, height)
	}

	s, err := registry.Load(name, geometry.NewIDAllocator())
	if err != nil {
		return nil, xerrors.Errorf("while loading scene: %w", err)
	}

	w, h := s.GetSize()
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	s.SetSize(w, h)
	return s, nil
}

func validateOutput(format string, scale int) error {
	if format != "ppm" && format != "png" {
		return xerrors.Errorf("unknown format %q, want ppm or png", format)
	}
	if scale < 1 {
		return xerrors.Errorf("scale must be at least 1, got %d", scale)
	}
	if scale > 1 && format != "png" {
		return xerrors.Errorf("scale applies to png output only")
	}
	return nil
}

func writeOutput(w io.Writer, canvas *renderer.Canvas, format string, scale int) error {
	if format == "png" {
		return renderer.WritePNG(w, canvas, scale)
	}
	return renderer.WritePPM(w, canvas)
}

func listScenes(w io.Writer, registry *scene.Registry) error {
	scenes, err := registry.List()
	if err != nil {
		return xerrors.Errorf("while listing scenes: %w", err)
	}
	for _, info := range scenes {
		fmt.Fprintf(w, "%-16s %-8s %s\n", info.ID, info.Type, info.Description)
	}
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Phong Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  raytracer -scene world > world.ppm")
	fmt.Fprintln(w, "  raytracer -scene scenes/three-spheres.yaml -format png -scale 2 -out spheres.png")
	fmt.Fprintln(w, "  raytracer -list")
}
