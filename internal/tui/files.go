package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/paulgb/gcmap/internal/gcmap"
	"github.com/paulgb/gcmap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(m.cwd, name),
		})
	}
	slices.SortStableFunc(items, func(a, b list.Item) int {
		return strings.Compare(a.(fileItem).title, b.(fileItem).title)
	})
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a pair file into the model.
func (m *Model) loadPath(p string) {
	set, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		gcmap.Logger().Warn("preview load failed", "path", p, "err", err)
		return
	}
	if err := m.setPairs(set); err != nil {
		m.status = "data error: " + err.Error()
		return
	}
	m.selPath = p
	m.status = fmt.Sprintf("loaded: %s  %s", filepath.Base(p), m.stats)
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// exportPath is the raster written by export: the loaded file's name with a
// .png extension, in the working directory.
func (m *Model) exportPath() string {
	base := "pasted"
	if m.selPath != "" {
		base = strings.TrimSuffix(filepath.Base(m.selPath), filepath.Ext(m.selPath))
	}
	return filepath.Join(m.cwd, base+".png")
}

// export renders the current data at the configured size and saves it.
func (m *Model) export() {
	if m.ds == nil {
		m.status = "export: " + gcmap.ErrNoData.Error()
		return
	}
	img, stats, err := gcmap.Draw(m.ds, m.cfg)
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	path := m.exportPath()
	if err := gcmap.Save(path, img); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("exported %s  %s", filepath.Base(path), stats)
}
