// Command gfxdemo rasterizes a scene file and writes it as PNG or as text.
//
// Usage:
//
//	gfxdemo [--scene scene.toml] [--out image.png | --out -] [--color "#33ccff"]
//	gfxdemo --live [--delay 200ms]
//
// Without --scene a built-in demo scene is drawn. --out - prints the canvas
// as rows of '#' and '.', colored with --color when the terminal supports
// it. --live draws the shapes one at a time in the terminal.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/buger/goterm"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/canvas"
	"github.com/gogpu/gfx/scene"
)

func main() {
	var (
		scenePath = pflag.StringP("scene", "s", "", "scene file (.toml, .yaml)")
		output    = pflag.StringP("out", "o", "-", "output PNG file, or - for text on stdout")
		color     = pflag.String("color", "", "color for set pixels in text output, e.g. \"#33ccff\"")
		live      = pflag.Bool("live", false, "draw shapes one by one in the terminal")
		delay     = pflag.Duration("delay", 200*time.Millisecond, "pause between shapes in --live mode")
		fontPath  = pflag.String("font", "", "TrueType/OpenType font for text shapes")
		verbose   = pflag.BoolP("verbose", "v", false, "log each rendered shape to stderr")
		version   = pflag.Bool("version", false, "print the version and exit")
	)
	pflag.Parse()

	if *version {
		fmt.Println("gfxdemo", gfx.Version)
		return
	}
	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s := demoScene()
	if *scenePath != "" {
		var err error
		if s, err = scene.Load(*scenePath); err != nil {
			log.Fatal(err)
		}
	}
	if *fontPath != "" {
		s.Font = *fontPath
	}

	if *live {
		if err := runLive(s, *color, *delay); err != nil {
			log.Fatal(err)
		}
		return
	}

	pm, dropped, err := s.Render()
	if err != nil {
		log.Fatal(err)
	}
	if dropped > 0 {
		log.Printf("%d pixels fell outside the %dx%d canvas", dropped, s.Width, s.Height)
	}

	if *output == "-" {
		printRows(termenv.NewOutput(os.Stdout), pm.Rows(), *color)
		return
	}
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d)\n", *output, s.Width, s.Height)
}

// runLive redraws the canvas in the terminal after each shape. A scene
// without a size takes the terminal's.
func runLive(s *scene.Scene, color string, delay time.Duration) error {
	if s.Width <= 0 || s.Height <= 0 {
		s.Width, s.Height = goterm.Width(), goterm.Height()-1
	}
	shapes, err := s.Build()
	if err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)
	pm := canvas.New(s.Width, s.Height)
	for i, shape := range shapes {
		if _, err := scene.Plot(pm, shape); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, shape.Kind(), err)
		}
		goterm.Clear()
		goterm.MoveCursor(1, 1)
		for _, row := range pm.Rows() {
			goterm.Println(colorize(out, row, color))
		}
		goterm.Printf("%d/%d %s", i+1, len(shapes), shape.Kind())
		goterm.Flush()
		time.Sleep(delay)
	}
	goterm.Println()
	goterm.Flush()
	return nil
}

func printRows(out *termenv.Output, rows []string, color string) {
	for _, row := range rows {
		fmt.Fprintln(out, colorize(out, row, color))
	}
}

// colorize paints runs of '#' in color. Rows are returned unchanged when no
// color is given or the terminal has no color support.
func colorize(out *termenv.Output, row, color string) string {
	if color == "" || out.Profile == termenv.Ascii {
		return row
	}
	c := out.Color(color)
	var b strings.Builder
	for len(row) > 0 {
		n := strings.IndexByte(row, '.')
		if n < 0 {
			n = len(row)
		}
		if n > 0 {
			b.WriteString(out.String(row[:n]).Foreground(c).String())
		}
		row = row[n:]
		m := strings.IndexByte(row, '#')
		if m < 0 {
			m = len(row)
		}
		b.WriteString(row[:m])
		row = row[m:]
	}
	return b.String()
}

func demoScene() *scene.Scene {
	return &scene.Scene{
		Width:  64,
		Height: 32,
		Shapes: []scene.ShapeSpec{
			{Kind: "rectangle", X: 0, Y: 0, Width: 64, Height: 32},
			{Kind: "circle", X: 3, Y: 3, Radius: 8, Filled: true},
			{Kind: "ellipse", X: 22, Y: 4, XRadius: 10, YRadius: 6},
			{Kind: "triangle", X: 46, Y: 2, Corners: [][]int{{0, 14}, {14, 14}, {7, 0}}, Filled: true},
			{Kind: "rectangle", X: 4, Y: 22, Width: 16, Height: 6},
			{Kind: "line", X: 24, Y: 28, To: []int{60, 20}},
			{Kind: "text", X: 24, Y: 17, Text: "gfx", Size: 10},
		},
	}
}
