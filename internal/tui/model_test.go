package tui

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paulgb/gcmap/internal/gcmap"
	"github.com/paulgb/gcmap/internal/geom"
)

func testConfig(t *testing.T) gcmap.Config {
	t.Helper()
	cfg, err := gcmap.Configure(400)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.csv")
	data := "lon1,lat1,lon2,lat2,count\n0,0,10,0,1\n0,0,-40,20,5\n170,0,-170,0,2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewWithPath(t *testing.T) {
	m := NewWithPath(testConfig(t), writeCSV(t))
	if m.ds == nil || m.ds.Len() != 3 {
		t.Fatalf("dataset not loaded, status %q", m.status)
	}
	if m.stats.Split != 1 || len(m.strokes) != 3 {
		t.Errorf("stats = %v, strokes = %d", m.stats, len(m.strokes))
	}
	if m.planW != planWidth || m.planH != planWidth/2 {
		t.Errorf("plan canvas = %dx%d", m.planW, m.planH)
	}

	rows := m.buildPairRows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if got := rows[2][1]; got != "170.0000" {
		t.Errorf("row 2 lon1 = %q", got)
	}
}

func TestLoadPathError(t *testing.T) {
	m := NewWithPath(testConfig(t), filepath.Join(t.TempDir(), "missing.csv"))
	if m.ds != nil {
		t.Errorf("dataset loaded from a missing file")
	}
	if m.status == "" {
		t.Errorf("no status after a failed load")
	}
}

func TestCellToLonLatCenter(t *testing.T) {
	m := NewWithPath(testConfig(t), writeCSV(t))
	lon, lat, ok := m.cellToLonLat(40, 20, 81, 41)
	if !ok || math.Abs(lon) > 1e-9 || math.Abs(lat) > 1e-9 {
		t.Errorf("center cell = %v, %v, %v; want 0, 0", lon, lat, ok)
	}
	lon, _, ok = m.cellToLonLat(60, 20, 81, 41)
	if !ok || math.Abs(lon-90) > 1e-9 {
		t.Errorf("lon = %v, %v; want 90", lon, ok)
	}
}

func TestCycleProjection(t *testing.T) {
	m := NewWithPath(testConfig(t), writeCSV(t))
	next, _ := m.Update(key("m"))
	m = next.(Model)
	if m.cfg.Projection != geom.Mercator || m.proj.Name() != geom.Mercator {
		t.Errorf("projection = %q, want %q", m.cfg.Projection, geom.Mercator)
	}
	next, _ = m.Update(key("m"))
	m = next.(Model)
	if m.cfg.Projection != geom.Equirectangular {
		t.Errorf("projection = %q, want %q", m.cfg.Projection, geom.Equirectangular)
	}
}

func TestPasteWKT(t *testing.T) {
	m := New(testConfig(t))
	next, _ := m.Update(key("p"))
	m = next.(Model)
	if !m.pasteMode {
		t.Fatal("paste mode not entered")
	}
	m.ta.SetValue("LINESTRING (0 0, 30 10)")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.pasteMode || m.ds == nil || m.ds.Len() != 1 {
		t.Errorf("paste not applied: mode=%v status=%q", m.pasteMode, m.status)
	}
}

func TestExport(t *testing.T) {
	m := NewWithPath(testConfig(t), writeCSV(t))
	m.cwd = t.TempDir()
	m.export()
	if _, err := os.Stat(filepath.Join(m.cwd, "routes.png")); err != nil {
		t.Errorf("export did not write a file: %v (status %q)", err, m.status)
	}
}

func TestViewRenders(t *testing.T) {
	m := NewWithPath(testConfig(t), writeCSV(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if v := next.(Model).View(); v == "" {
		t.Error("empty view")
	}
}
