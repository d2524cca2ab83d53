package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/eventlog"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/timer"
	"github.com/sadopc/pomo/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	var log *eventlog.Logger
	if logPath, err := store.DefaultLogPath(); err == nil {
		if l, err := eventlog.New(logPath); err == nil {
			log = l
		}
	}

	t, err := buildTimer(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}

	w := store.NewWriter(s, log)
	defer w.Close()

	app := tui.NewApp(s, t, w, log)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildTimer restores the countdown configuration persisted in the
// settings table.
func buildTimer(s *store.Store) (*timer.Timer, error) {
	work, err := s.GetDuration(store.KeyWorkDuration)
	if err != nil {
		return nil, err
	}
	brk, err := s.GetDuration(store.KeyBreakDuration)
	if err != nil {
		return nil, err
	}
	tags, err := s.ListTags()
	if err != nil {
		return nil, err
	}
	selected, err := s.GetSetting(store.KeySelectedTag)
	if err != nil {
		return nil, err
	}

	return timer.New(timer.Config{
		WorkDuration:  work,
		BreakDuration: brk,
		Tags:          tags,
		SelectedTag:   selected,
	}), nil
}
