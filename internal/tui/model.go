// Package tui is a terminal preview of a gcmap render: arcs are planned by
// the same pipeline as the raster output and drawn in colored braille.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulgb/gcmap/internal/gcmap"
	"github.com/paulgb/gcmap/internal/geom"
)

// planWidth is the canvas width, in pixels, arcs are planned on before
// being scaled to the terminal.
const planWidth = 720

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Render settings; the preview follows cfg's projection and gradient.
	cfg gcmap.Config

	// Data
	set     geom.PairSet
	ds      *gcmap.Dataset
	strokes []gcmap.Stroke
	stats   gcmap.Stats
	proj    *geom.Projector
	planW   int
	planH   int

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
	hoverPair   int

	// pair table
	showAttrs bool
	tbl       table.Model
}

// New returns a preview without data that renders with cfg.
func New(cfg gcmap.Config) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "gcmap ready",
		cfg:         cfg,
		hoverPair:   -1,
	}
	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste one WKT LINESTRING per line. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(pairColumns))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a pair file at launch.
func NewWithPath(cfg gcmap.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
