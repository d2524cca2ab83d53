package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/store"
)

type statsMode int

const (
	statsWeekly statsMode = iota
	statsMonthly
)

type statsModel struct {
	store  *store.Store
	width  int
	height int

	mode    statsMode
	records []session.Record
	tags    []string
	tagIdx  int // 0 = all tags, otherwise tags[tagIdx-1]

	chart barchart.Model
}

func newStatsModel(s *store.Store) statsModel {
	return statsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type statsDataMsg struct {
	records []session.Record
	tags    []string
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		records, _ := m.store.ListSessions()
		tags, _ := m.store.ListTags()
		return statsDataMsg{records: records, tags: tags}
	}
}

func (m statsModel) tagFilter() string {
	if m.tagIdx == 0 || m.tagIdx > len(m.tags) {
		return ""
	}
	return m.tags[m.tagIdx-1]
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		m.records = msg.records
		m.tags = msg.tags
		if m.tagIdx > len(m.tags) {
			m.tagIdx = 0
		}
		m.buildChart()
		return m, nil

	case workCompleteMsg:
		return m, m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			m.tagIdx--
			if m.tagIdx < 0 {
				m.tagIdx = len(m.tags)
			}
			m.buildChart()
			return m, nil
		case key.Matches(msg, keys.Right):
			m.tagIdx++
			if m.tagIdx > len(m.tags) {
				m.tagIdx = 0
			}
			m.buildChart()
			return m, nil
		case key.Matches(msg, keys.Enter):
			if m.mode == statsWeekly {
				m.mode = statsMonthly
			} else {
				m.mode = statsWeekly
			}
			m.buildChart()
			return m, nil
		}
	}
	return m, nil
}

func (m statsModel) buckets() []stats.Bucket {
	now := time.Now()
	if m.mode == statsMonthly {
		return stats.Monthly(m.records, now, m.tagFilter())
	}
	return stats.Weekly(m.records, now, m.tagFilter())
}

func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, b := range m.buckets() {
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if b.Seconds == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: b.Label,
			Values: []barchart.BarValue{
				{Name: b.Label, Value: barMinutes(b), Style: style},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

// barMinutes is the charted quantity: accumulated work time, in
// minutes.
func barMinutes(b stats.Bucket) float64 {
	return float64(b.Seconds) / 60
}

func (m statsModel) view() string {
	w := m.width - 4

	weeklyTab := inactiveTabStyle.Render("Weekly")
	monthlyTab := inactiveTabStyle.Render("Monthly")
	if m.mode == statsWeekly {
		weeklyTab = activeTabStyle.Render("Weekly")
	} else {
		monthlyTab = activeTabStyle.Render("Monthly")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, weeklyTab, monthlyTab)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ", modeTabs, "  ", m.renderTagPicker(),
	)

	chartView := m.chart.View()
	caption := mutedStyle.Render("  minutes of work")
	summary := m.renderSummary()
	nav := mutedStyle.Render("  ←/→: tag filter  enter: weekly/monthly")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, caption, "", summary, "", nav,
		),
	)
}

func (m statsModel) renderTagPicker() string {
	label := "All tags"
	if tag := m.tagFilter(); tag != "" {
		label = tag
	}
	return mutedStyle.Render("◀ ") + highlightStyle.Render(label) + mutedStyle.Render(" ▶")
}

func (m statsModel) renderSummary() string {
	count, seconds := stats.Totals(m.records, m.tagFilter())

	var windowCount int
	var windowSeconds int64
	for _, b := range m.buckets() {
		windowCount += b.Count
		windowSeconds += b.Seconds
	}

	windowLabel := "last 7 days"
	if m.mode == statsMonthly {
		windowLabel = "last 7 months"
	}

	rows := []string{
		fmt.Sprintf("  %-16s %6d sessions  %10s",
			windowLabel, windowCount, formatSeconds(windowSeconds)),
		fmt.Sprintf("  %-16s %6d sessions  %10s",
			"all time", count, formatSeconds(seconds)),
	}
	return mutedStyle.Render(strings.Join(rows, "\n"))
}
