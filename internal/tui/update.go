package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulgb/gcmap/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the geometry of the map area, shared by View and mouse
// handling.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	lo := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapW = max(10, lo.contentW-side-1)
	lo.mapH = lo.contentH
	return lo
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// While the list filters, keys belong to it.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		// The pair table scrolls instead of the map.
		if m.showAttrs && slices.Contains([]string{"up", "down", "pgup", "pgdown"}, msg.String()) {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "m":
			m.cycleProjection()
		case "e":
			m.export()
		case "i":
			m.inspect()
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY--
		case "down":
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		set, err := geom.ParseWKT(text)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		if err := m.setPairs(set); err != nil {
			m.status = "data error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.status = "rendered WKT  " + m.stats.String()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) cycleProjection() {
	names := geom.Projections()
	next := names[(slices.Index(names, m.cfg.Projection)+1)%len(names)]
	m.cfg.Projection = next
	if err := m.replan(); err != nil {
		m.status = "projection error: " + err.Error()
		return
	}
	m.status = "projection: " + next
}

// inspect opens a popup describing the loaded data and the hovered pair,
// or the heaviest pair when nothing is hovered.
func (m *Model) inspect() {
	if m.ds == nil {
		m.inspectPopup = "no data loaded"
		m.status = m.inspectPopup
		return
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	bb := m.set.BBox
	meta := []string{
		"name: " + name,
		fmt.Sprintf("bbox: [%.4f, %.4f, %.4f, %.4f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY),
		"projection: " + m.cfg.Projection,
		"gradient: " + m.cfg.Gradient.String(),
		m.stats.String(),
	}
	idx, label := m.hoverPair, "hovered"
	if idx < 0 {
		if s, ok := m.hottest(); ok {
			idx, label = s.Index, "heaviest"
		}
	}
	if idx >= 0 {
		p := m.ds.Pair(idx)
		meta = append(meta,
			fmt.Sprintf("%s pair #%d", label, idx),
			fmt.Sprintf("  from %.4f, %.4f", p.Lon1, p.Lat1),
			fmt.Sprintf("  to   %.4f, %.4f", p.Lon2, p.Lat2),
			fmt.Sprintf("  count=%g weight=%.4g", p.Count, m.ds.Weight(idx)),
		)
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// hover tracks the mouse over the map area: the position under it and the
// nearest arc vertex.
func (m *Model) hover(x, y int) {
	lo := m.layout()
	if x < lo.mapX || x >= lo.mapX+lo.mapW || y < lo.mapY || y >= lo.mapY+lo.mapH {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = x-lo.mapX, y-lo.mapY
	m.hoverLon, m.hoverLat, m.hoverHasGeo = m.cellToLonLat(m.hoverCellX, m.hoverCellY, lo.mapW, lo.mapH)
	m.hoverMicX, m.hoverMicY, m.hoverPair = m.nearestVertex(m.hoverCellX*2, m.hoverCellY*4, lo.mapW, lo.mapH)
}
