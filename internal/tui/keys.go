package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start      key.Binding
	Pause      key.Binding
	Reset      key.Binding
	NextTag    key.Binding
	PrevTag    key.Binding
	NewTag     key.Binding
	DeleteTag  key.Binding
	WorkPlus   key.Binding
	WorkMinus  key.Binding
	BreakPlus  key.Binding
	BreakMinus key.Binding
	Export     key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	Tab        key.Binding
	Help       key.Binding
	Enter      key.Binding
	Back       key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	NextTag: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next tag"),
	),
	PrevTag: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "prev tag"),
	),
	NewTag: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new tag"),
	),
	DeleteTag: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete tag"),
	),
	WorkPlus: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "work +1m"),
	),
	WorkMinus: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "work -1m"),
	),
	BreakPlus: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "break +1m"),
	),
	BreakMinus: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "break -1m"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "timer"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "stats"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "heatmap"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Reset, k.NextTag, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Reset},
		{k.NextTag, k.PrevTag, k.NewTag, k.DeleteTag},
		{k.WorkPlus, k.WorkMinus, k.BreakPlus, k.BreakMinus},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Export, k.Quit},
	}
}
