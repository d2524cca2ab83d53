package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/store"
)

type heatmapModel struct {
	store  *store.Store
	width  int
	height int

	days []stats.Day
}

func newHeatmapModel(s *store.Store) heatmapModel {
	return heatmapModel{store: s}
}

func (m *heatmapModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type heatmapDataMsg struct {
	records []session.Record
}

func (m heatmapModel) refresh() tea.Cmd {
	return func() tea.Msg {
		records, _ := m.store.ListSessions()
		return heatmapDataMsg{records: records}
	}
}

func (m heatmapModel) update(msg tea.Msg) (heatmapModel, tea.Cmd) {
	switch msg := msg.(type) {
	case heatmapDataMsg:
		m.days = stats.Heatmap(msg.records, time.Now(), "")
		return m, nil
	case workCompleteMsg:
		return m, m.refresh()
	}
	return m, nil
}

func (m heatmapModel) view() string {
	w := m.width - 4

	title := titleStyle.Render("Activity (last 6 months)")
	grid := m.renderGrid()
	legend := m.renderLegend()

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", grid, "", legend),
	)
}

// renderGrid lays days out calendar style: one row per weekday, one
// column per week, Monday on top.
func (m heatmapModel) renderGrid() string {
	if len(m.days) == 0 {
		return mutedStyle.Render("  No data")
	}

	// Pad the first column back to Monday so columns are whole weeks.
	lead := weekdayRow(m.days[0].Date)
	weeks := (lead + len(m.days) + 6) / 7

	// cells[row][col]
	cells := make([][]string, 7)
	for r := range cells {
		cells[r] = make([]string, weeks)
		for c := range cells[r] {
			cells[r][c] = " "
		}
	}

	monthLabels := make([]string, weeks)
	for i, d := range m.days {
		idx := lead + i
		col := idx / 7
		row := idx % 7
		cells[row][col] = heatTierStyles[d.Tier].Render("■")
		if d.Date.Day() == 1 {
			monthLabels[col] = d.Date.Format("Jan")
		}
	}

	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	var b strings.Builder
	b.WriteString("     ")
	for c := 0; c < weeks; c++ {
		label := monthLabels[c]
		if label != "" {
			b.WriteString(mutedStyle.Render(label))
			// A 3-char label spans this column and the next two.
			c += 2
			continue
		}
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for r := 0; r < 7; r++ {
		name := "   "
		if r%2 == 0 {
			name = dayNames[r]
		}
		b.WriteString(mutedStyle.Render(name) + "  ")
		b.WriteString(strings.Join(cells[r], ""))
		b.WriteString("\n")
	}
	return b.String()
}

func (m heatmapModel) renderLegend() string {
	var cells []string
	for _, style := range heatTierStyles {
		cells = append(cells, style.Render("■"))
	}
	return mutedStyle.Render("  Less ") + strings.Join(cells, "") + mutedStyle.Render(" More")
}

// weekdayRow maps a date onto its grid row, Monday first.
func weekdayRow(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}
