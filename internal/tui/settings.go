package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	work       time.Duration
	brk        time.Duration
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	workMin  *string
	breakMin *string
}

func newSettingsModel(s *store.Store) settingsModel {
	wm, bm := "", ""
	return settingsModel{
		store:    s,
		workMin:  &wm,
		breakMin: &bm,
	}
}

func (m *settingsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type settingsDataMsg struct {
	work time.Duration
	brk  time.Duration
}

func (m settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		work, err := m.store.GetDuration(store.KeyWorkDuration)
		if err != nil {
			work = timer.DefaultWorkDuration
		}
		brk, err := m.store.GetDuration(store.KeyBreakDuration)
		if err != nil {
			brk = timer.DefaultBreakDuration
		}
		return settingsDataMsg{work: work, brk: brk}
	}
}

func (m settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		m.work = msg.work
		m.brk = msg.brk
		return m, nil

	case durationsChangedMsg:
		m.work = msg.work
		m.brk = msg.brk
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.NewTag):
			return m.showForm()
		}
	}
	return m, nil
}

func (m settingsModel) showForm() (settingsModel, tea.Cmd) {
	*m.workMin = strconv.Itoa(int(m.work.Minutes()))
	*m.breakMin = strconv.Itoa(int(m.brk.Minutes()))

	validateMinutes := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number of minutes")
		}
		if n < 1 {
			return fmt.Errorf("minimum is 1 minute")
		}
		return nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work duration (min)").Value(m.workMin).Validate(validateMinutes),
			huh.NewInput().Title("Break duration (min)").Value(m.breakMin).Validate(validateMinutes),
		).Title("Durations"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m, m.saveSettings()
	}

	return m, cmd
}

func (m settingsModel) saveSettings() tea.Cmd {
	workMin, _ := strconv.Atoi(*m.workMin)
	breakMin, _ := strconv.Atoi(*m.breakMin)
	work := time.Duration(workMin) * time.Minute
	brk := time.Duration(breakMin) * time.Minute

	return func() tea.Msg {
		if err := m.store.SetDuration(store.KeyWorkDuration, work); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		if err := m.store.SetDuration(store.KeyBreakDuration, brk); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return durationsChangedMsg{work: work, brk: brk}
	}
}

func (m settingsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit")

	rows := []string{
		title,
		"",
		fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(24).Render("Work duration"),
			highlightStyle.Render(fmt.Sprintf("%d min", int(m.work.Minutes())))),
		fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(24).Render("Break duration"),
			highlightStyle.Render(fmt.Sprintf("%d min", int(m.brk.Minutes())))),
		"",
		hint,
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
