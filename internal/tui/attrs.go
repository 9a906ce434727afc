package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

var pairColumns = []table.Column{
	{Title: "#", Width: 5},
	{Title: "lon1", Width: 10},
	{Title: "lat1", Width: 9},
	{Title: "lon2", Width: 10},
	{Title: "lat2", Width: 9},
	{Title: "count", Width: 7},
	{Title: "weight", Width: 10},
	{Title: "rank", Width: 5},
}

// refreshAttrsFromCurrent fills the pair table from the current dataset,
// one row per pair in input order.
func (m *Model) refreshAttrsFromCurrent() {
	rows := m.buildPairRows()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no pairs loaded"
		return
	}
	// Clear rows first so the table never sees rows wider than its columns.
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(pairColumns)
	m.tbl.SetRows(rows)
}

func (m *Model) buildPairRows() []table.Row {
	if m.ds == nil {
		return nil
	}
	n := m.ds.Len()
	rank := make([]int, n)
	for r, idx := range m.ds.Order() {
		rank[idx] = r
	}
	rows := make([]table.Row, 0, n)
	for i := range n {
		p := m.ds.Pair(i)
		weight := "-"
		if !m.ds.IsDegenerate(i) {
			weight = strconv.FormatFloat(m.ds.Weight(i), 'g', 4, 64)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			fmtDeg(p.Lon1), fmtDeg(p.Lat1),
			fmtDeg(p.Lon2), fmtDeg(p.Lat2),
			strconv.FormatFloat(p.Count, 'g', 6, 64),
			weight,
			strconv.Itoa(rank[i]),
		})
	}
	return rows
}

func fmtDeg(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
