// Command gcmap draws weighted great-circle arcs between coordinate pairs.
//
//	gcmap [flags] pairs.csv
//
// The input may be CSV, GeoJSON, KML or WKT. With -preview the pairs open
// in an interactive terminal view instead of being written to -o.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulgb/gcmap/internal/gcmap"
	"github.com/paulgb/gcmap/internal/geom"
	"github.com/paulgb/gcmap/internal/gradient"
	"github.com/paulgb/gcmap/internal/tui"
)

func main() {
	var (
		width      = flag.Int("width", gcmap.DefaultWidth, "image width in pixels")
		height     = flag.Int("height", 0, "image height in pixels (default width/2)")
		bg         = flag.String("bg", "#000000", "background color")
		grad       = flag.String("gradient", gradient.Default().String(), "color gradient as pos:#rrggbb[:alpha],...")
		lineWidth  = flag.Float64("line-width", gcmap.DefaultLineWidth, "arc stroke width in pixels")
		resolution = flag.Int("resolution", gcmap.DefaultResolution, "points per arc")
		proj       = flag.String("proj", geom.Equirectangular, fmt.Sprintf("projection, one of %v", geom.Projections()))
		out        = flag.String("o", "gcmap.png", "output image (.png, .tif, .tiff)")
		super      = flag.Int("supersample", 1, "render at this multiple of the size and scale down")
		workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "goroutines used to plan arcs")
		strict     = flag.Bool("strict", false, "fail on arcs that cannot be split at the antimeridian")
		verbose    = flag.Bool("v", false, "log progress to stderr")
		preview    = flag.Bool("preview", false, "open an interactive terminal preview")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] pairs-file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		gcmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	background, err := gradient.ParseColor(*bg)
	if err != nil {
		log.Fatalf("-bg: %v", err)
	}
	g, err := gradient.Parse(*grad)
	if err != nil {
		log.Fatalf("-gradient: %v", err)
	}
	opts := []gcmap.Option{
		gcmap.WithBackground(background),
		gcmap.WithGradient(g),
		gcmap.WithLineWidth(*lineWidth),
		gcmap.WithResolution(*resolution),
		gcmap.WithProjection(*proj),
		gcmap.WithSupersample(*super),
		gcmap.WithWorkers(max(1, *workers)),
		gcmap.WithStrict(*strict),
	}
	if *height > 0 {
		opts = append(opts, gcmap.WithHeight(*height))
	}
	cfg, err := gcmap.Configure(*width, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if *preview {
		var m tea.Model
		if flag.NArg() > 0 {
			m = tui.NewWithPath(cfg, flag.Arg(0))
		} else {
			m = tui.New(cfg)
		}
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if _, err := gcmap.FormatFor(*out); err != nil {
		log.Fatal(err)
	}
	set, err := geom.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	m, err := gcmap.NewMapper(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.SetData(set.Columns()); err != nil {
		log.Fatal(err)
	}
	img, err := m.Draw()
	if err != nil {
		log.Fatal(err)
	}
	if err := gcmap.Save(*out, img); err != nil {
		log.Fatal(err)
	}
}
