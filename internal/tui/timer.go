package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/eventlog"
	"github.com/sadopc/pomo/internal/notify"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
)

type timerModel struct {
	timer  *timer.Timer
	store  *store.Store
	writer *store.Writer
	log    *eventlog.Logger

	width  int
	height int

	formActive    bool
	form          *huh.Form
	newTagName    *string
	confirmDelete bool
}

func newTimerModel(t *timer.Timer, s *store.Store, w *store.Writer, log *eventlog.Logger) timerModel {
	name := ""
	return timerModel{
		timer:      t,
		store:      s,
		writer:     w,
		log:        log,
		newTagName: &name,
	}
}

func (m *timerModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m.tick()

	case tea.KeyMsg:
		if m.confirmDelete {
			return m.updateDeleteConfirm(msg)
		}

		switch {
		case key.Matches(msg, keys.Start):
			if err := m.timer.Start(); err != nil {
				return m, status("Add a tag before starting (n)", true)
			}
			return m, status("Timer started", false)

		case key.Matches(msg, keys.Pause):
			switch m.timer.State() {
			case timer.Running:
				m.timer.Pause()
				return m, status("Paused", false)
			case timer.Paused:
				if err := m.timer.Start(); err != nil {
					return m, status("Add a tag before resuming (n)", true)
				}
				return m, status("Resumed", false)
			}
			return m, nil

		case key.Matches(msg, keys.Reset):
			m.timer.Reset()
			return m, status("Timer reset", false)

		case key.Matches(msg, keys.NextTag):
			m.timer.Tags().SelectNext()
			return m, m.persistSelectedTag()

		case key.Matches(msg, keys.PrevTag):
			m.timer.Tags().SelectPrev()
			return m, m.persistSelectedTag()

		case key.Matches(msg, keys.NewTag):
			return m.showTagForm()

		case key.Matches(msg, keys.DeleteTag):
			if m.timer.SelectedTag() != "" {
				m.confirmDelete = true
			}
			return m, nil

		case key.Matches(msg, keys.WorkPlus):
			return m.adjust(session.Work, 1)
		case key.Matches(msg, keys.WorkMinus):
			return m.adjust(session.Work, -1)
		case key.Matches(msg, keys.BreakPlus):
			return m.adjust(session.Break, 1)
		case key.Matches(msg, keys.BreakMinus):
			return m.adjust(session.Break, -1)
		}

	case durationsChangedMsg:
		// Settings form saved new durations; apply as deltas so the
		// running countdown keeps its own rules.
		workDelta := int((msg.work - m.timer.WorkDuration()) / time.Minute)
		brkDelta := int((msg.brk - m.timer.BreakDuration()) / time.Minute)
		if workDelta != 0 {
			m.timer.AdjustDuration(session.Work, workDelta)
		}
		if brkDelta != 0 {
			m.timer.AdjustDuration(session.Break, brkDelta)
		}
		return m, nil
	}
	return m, nil
}

func (m timerModel) tick() (timerModel, tea.Cmd) {
	rec, flipped := m.timer.Tick(time.Second)
	if !flipped {
		return m, nil
	}

	if rec != nil {
		saved := *rec
		return m, tea.Batch(
			m.persistSession(saved),
			func() tea.Msg {
				notify.WorkComplete(saved.Tag)
				return statusMsg{text: "Work session complete, break started"}
			},
		)
	}

	return m, func() tea.Msg {
		notify.BreakComplete()
		return statusMsg{text: "Break over, back to work"}
	}
}

func (m timerModel) persistSession(rec session.Record) tea.Cmd {
	return func() tea.Msg {
		m.log.Append(eventlog.Event{
			Event:    eventlog.EventSessionCompleted,
			Tag:      rec.Tag,
			Duration: rec.Duration,
		})
		if !m.writer.Enqueue(rec) {
			return statusMsg{text: "Session queue full, record dropped", isError: true}
		}
		return workCompleteMsg{record: rec}
	}
}

func (m timerModel) adjust(phase session.Phase, deltaMinutes int) (timerModel, tea.Cmd) {
	d := m.timer.AdjustDuration(phase, deltaMinutes)

	settingKey := store.KeyWorkDuration
	label := "Work"
	if phase == session.Break {
		settingKey = store.KeyBreakDuration
		label = "Break"
	}
	return m, func() tea.Msg {
		if err := m.store.SetDuration(settingKey, d); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return statusMsg{text: fmt.Sprintf("%s duration: %d min", label, int(d.Minutes()))}
	}
}

func (m timerModel) persistSelectedTag() tea.Cmd {
	tag := m.timer.SelectedTag()
	return func() tea.Msg {
		if err := m.store.SetSetting(store.KeySelectedTag, tag); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return nil
	}
}

// --- New tag form ---

func (m timerModel) showTagForm() (timerModel, tea.Cmd) {
	*m.newTagName = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("New tag").Value(m.newTagName),
		),
	).WithShowHelp(true).WithShowErrors(true)
	m.formActive = true
	return m, m.form.Init()
}

func (m timerModel) updateForm(msg tea.Msg) (timerModel, tea.Cmd) {
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
		m.form = nil
		return m, m.addTag(*m.newTagName)
	}
	return m, cmd
}

func (m timerModel) addTag(name string) tea.Cmd {
	if err := m.timer.AddTag(name); err != nil {
		if errors.Is(err, timer.ErrDuplicateTag) {
			return status(fmt.Sprintf("Tag %q already exists", name), true)
		}
		return status(fmt.Sprintf("Tag error: %v", err), true)
	}
	return func() tea.Msg {
		if err := m.store.AddTag(name); err != nil && !errors.Is(err, store.ErrTagExists) {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		m.log.Append(eventlog.Event{Event: eventlog.EventTagAdded, Tag: name})
		return statusMsg{text: fmt.Sprintf("Added tag %q", name)}
	}
}

// --- Delete confirmation ---

func (m timerModel) updateDeleteConfirm(msg tea.KeyMsg) (timerModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmDelete = false
		return m, m.deleteSelectedTagCmd()
	case "n", "N", "esc":
		m.confirmDelete = false
	}
	return m, nil
}

func (m timerModel) deleteSelectedTagCmd() tea.Cmd {
	name := m.timer.SelectedTag()
	if err := m.timer.RemoveTag(name); err != nil {
		if errors.Is(err, timer.ErrProtectedTag) {
			return status("Cannot delete the last tag while working", true)
		}
		return status(fmt.Sprintf("Delete error: %v", err), true)
	}
	return func() tea.Msg {
		if err := m.store.DeleteTag(name); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		m.log.Append(eventlog.Event{Event: eventlog.EventTagRemoved, Tag: name})
		return statusMsg{text: fmt.Sprintf("Deleted tag %q", name)}
	}
}

// --- View ---

func (m timerModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Tag")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	countdown := formatClock(m.timer.Remaining())
	var display, phaseLabel string
	switch {
	case m.timer.State() == timer.Paused:
		display = timerPausedStyle.Width(w - 6).Render(countdown)
		phaseLabel = warningStyle.Bold(true).Render("PAUSED")
	case m.timer.State() == timer.Idle:
		display = timerIdleStyle.Width(w - 6).Render(countdown)
		phaseLabel = mutedStyle.Render("Ready, press s to start")
	case m.timer.Phase() == session.Work:
		display = timerWorkStyle.Width(w - 6).Render(countdown)
		phaseLabel = accentStyle.Bold(true).Render("WORK")
	default:
		display = timerBreakStyle.Width(w - 6).Render(countdown)
		phaseLabel = successStyle.Bold(true).Render("BREAK")
	}

	tagRow := m.renderTags()

	durations := mutedStyle.Render(fmt.Sprintf(
		"work %dm (+/-)   break %dm ([/])",
		int(m.timer.WorkDuration().Minutes()),
		int(m.timer.BreakDuration().Minutes()),
	))

	var controls string
	if m.confirmDelete {
		controls = warningStyle.Render(fmt.Sprintf("Delete tag %q? (y/n)", m.timer.SelectedTag()))
	} else {
		controls = mutedStyle.Render("s: start  space: pause  r: reset  t/T: tag  n: new tag  d: delete tag")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Pomodoro"),
		"",
		display,
		phaseLabel,
		"",
		tagRow,
		durations,
		"",
		controls,
	)
	return panelStyle.Width(w).Render(content)
}

func (m timerModel) renderTags() string {
	names := m.timer.Tags().List()
	if len(names) == 0 {
		return errorStyle.Render("No tags. Press n to add one.")
	}

	selected := m.timer.SelectedTag()
	row := ""
	for i, name := range names {
		if i > 0 {
			row += "  "
		}
		if name == selected {
			row += selectedItemStyle.Render("[" + name + "]")
		} else {
			row += normalItemStyle.Render(name)
		}
	}
	return row
}

func status(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}
