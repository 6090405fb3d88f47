package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Filter     key.Binding
	Total      key.Binding
	Details    key.Binding
	FitDetails key.Binding
	CPUs       key.Binding
	Interval   key.Binding
	Sort       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Total: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "total"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "details"),
		),
		FitDetails: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "details if room"),
		),
		CPUs: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cpus"),
		),
		Interval: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "interval"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the one-line hint in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Sort, k.CPUs, k.Total, k.Details, k.Interval, k.Help, k.Quit}
}

// FullHelp backs the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Filter, k.Sort, k.CPUs},
		{k.Total, k.Details, k.FitDetails},
		{k.Interval, k.Help, k.Quit},
	}
}
