// Package ui is the interactive surface: a single bubbletea update loop
// owns the view policy, multiplexing the sample timer, keystrokes, and
// resize notifications. No other goroutine ever touches the policy.
package ui

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/irqtop/engine"
	"github.com/ftahirops/irqtop/model"
	"github.com/ftahirops/irqtop/util"
)

// inputMode is the command interpreter state. Idle treats single keys as
// commands; the other modes accumulate a line of text first.
type inputMode int

const (
	modeIdle inputMode = iota
	modeFilter
	modeCPUs
	modeInterval
	modeSort
)

// statusTTL is how long a transient status message stays in the footer.
const statusTTL = 3 * time.Second

type tickMsg struct {
	seq int
	t   time.Time
}

type sampleMsg struct {
	rows []model.RateRow
	cpus int
	err  error
}

// Model is the bubbletea model.
type Model struct {
	sampler *engine.Sampler
	pol     model.ViewPolicy

	// Startup CPU selection; a blank interactive CPU entry reverts to it.
	startupCPUs model.CPUSelection

	rows     []model.RateRow // most recent rate rows, unfiltered
	cpus     int             // CPU column count of the newest snapshot
	sampleAt time.Time
	width    int
	height   int

	mode  inputMode
	input textinput.Model

	status  string
	statusT time.Time

	// tickSeq invalidates in-flight ticks when the interval changes.
	tickSeq int

	keys     keyMap
	help     help.Model
	showHelp bool
}

// NewModel creates the TUI model with the startup policy.
func NewModel(sampler *engine.Sampler, pol model.ViewPolicy, startupCPUs model.CPUSelection) Model {
	ti := textinput.New()
	ti.CharLimit = 128
	return Model{
		sampler:     sampler,
		pol:         pol,
		startupCPUs: startupCPUs,
		input:       ti,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.sample())
}

func (m Model) tick() tea.Cmd {
	seq := m.tickSeq
	return tea.Tick(m.pol.Interval, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, t: t}
	})
}

func (m Model) sample() tea.Cmd {
	s := m.sampler
	return func() tea.Msg {
		rows, cpus, err := s.Tick()
		return sampleMsg{rows: rows, cpus: cpus, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Re-layout happens on the redraw this message triggers; no need
		// to wait for the next sample.
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if msg.seq != m.tickSeq {
			return m, nil // stale timer from a previous interval
		}
		return m, tea.Batch(m.tick(), m.sample())

	case sampleMsg:
		return m.handleSample(msg)
	}
	return m, nil
}

func (m Model) handleSample(msg sampleMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, engine.ErrInvalidInterval):
		// Pair discarded; the fresh snapshot became the new baseline and
		// the next tick resamples. Not worth alarming the user over.
	case msg.err != nil:
		m.setStatus(msg.err.Error())
	case msg.rows != nil:
		m.rows = msg.rows
		m.cpus = msg.cpus
		m.sampleAt = time.Now()
		if m.pol.Remaining > 0 {
			m.pol.Remaining--
			if m.pol.Remaining == 0 {
				return m, tea.Quit
			}
		}
	default:
		m.cpus = msg.cpus // baseline sample, no rates yet
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	switch m.mode {
	case modeIdle:
		return m.handleIdleKey(msg)
	case modeSort:
		return m.handleSortKey(msg)
	default:
		return m.handleEntryKey(msg)
	}
}

func (m Model) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "f":
		m.enterMode(modeFilter, "filter regex: ")
	case "c":
		m.enterMode(modeCPUs, "cpus (list, + all, - none, blank default): ")
	case "i":
		m.enterMode(modeInterval, "interval seconds: ")
	case "s":
		m.mode = modeSort
	case "t":
		m.pol.ShowTotal = !m.pol.ShowTotal
	case "d":
		m.pol.Device = m.pol.Device.Cycle()
	case "D":
		m.pol.Device = model.DeviceFitIfRoom
	case "?":
		m.showHelp = true
	}
	return m, nil
}

// handleSortKey interprets the single keystroke after `s`: the same
// one-letter specs the -sort flag takes, uppercase reversing the order.
func (m Model) handleSortKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeIdle
	switch msg.String() {
	case "esc", "ctrl+g":
		return m, nil
	case "t":
		m.pol.Sort, m.pol.SortDesc = model.SortTotal, true
	case "T":
		m.pol.Sort, m.pol.SortDesc = model.SortTotal, false
	case "n":
		m.pol.Sort, m.pol.SortDesc = model.SortName, false
	case "N":
		m.pol.Sort, m.pol.SortDesc = model.SortName, true
	case "d":
		m.pol.Sort, m.pol.SortDesc = model.SortDevice, false
	case "D":
		m.pol.Sort, m.pol.SortDesc = model.SortDevice, true
	default:
		m.setStatus("sort key must be one of: t T n N d D")
	}
	return m, nil
}

func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyCtrlG:
		// Cancel: drop the buffer, policy untouched.
		m.leaveEntry()
		return m, nil
	case tea.KeyEnter:
		return m.commitEntry()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) enterMode(mode inputMode, prompt string) {
	m.mode = mode
	m.input.Prompt = promptStyle.Render(prompt)
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) leaveEntry() {
	m.mode = modeIdle
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) commitEntry() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	mode := m.mode
	m.leaveEntry()
	switch mode {
	case modeFilter:
		m.commitFilter(text)
	case modeCPUs:
		m.commitCPUs(text)
	case modeInterval:
		return m.commitInterval(text)
	}
	return m, nil
}

func (m *Model) commitFilter(text string) {
	if text == "" {
		m.pol.Filter = nil
		m.setStatus("filter cleared")
		return
	}
	re, err := regexp.Compile(text)
	if err != nil {
		m.setStatus(fmt.Sprintf("bad filter: %v", err))
		return
	}
	m.pol.Filter = re
}

func (m *Model) commitCPUs(text string) {
	switch text {
	case "+":
		m.pol.CPUs = model.CPUSelection{Mode: model.CPUAll}
	case "-":
		m.pol.CPUs = model.CPUSelection{Mode: model.CPUNone}
	case "":
		m.pol.CPUs = m.startupCPUs
	default:
		idx, err := util.ParseCPUList(text)
		if err != nil {
			m.setStatus(err.Error())
			return
		}
		m.pol.CPUs = model.CPUSelection{Mode: model.CPUExplicit, Indices: idx}
	}
}

func (m Model) commitInterval(text string) (tea.Model, tea.Cmd) {
	iv, err := util.ParseInterval(text)
	if err != nil {
		m.setStatus(err.Error())
		return m, nil
	}
	m.pol.Interval = iv
	// Restart the timer on the new interval; the stale tick is ignored by
	// its sequence number. The commit itself does not force a sample.
	m.tickSeq++
	return m, m.tick()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusT = time.Now()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		m.help.ShowAll = true
		return titleStyle.Render("irqtop") + "\n\n" + m.help.View(m.keys)
	}
	if m.rows == nil {
		return m.titleLine() + "\nCollecting first sample...\n" + m.footer()
	}

	selected := engine.Select(m.rows, &m.pol)
	body := ""
	if len(selected) == 0 && m.pol.Filter != nil {
		body = dimStyle.Render("No IRQs matching filter")
	} else {
		plan := Layout(selected, &m.pol, m.width, m.height, m.cpus)
		body = RenderTable(plan)
	}
	return m.titleLine() + "\n" + body + "\n" + m.footer()
}

func (m Model) titleLine() string {
	line := titleStyle.Render("irqtop")
	if !m.sampleAt.IsZero() {
		line += "  " + m.sampleAt.Format("15:04:05")
	}
	line += dimStyle.Render(fmt.Sprintf("  %s  sort:%s", m.pol.Interval, sortLabel(m.pol)))
	if m.pol.Filter != nil {
		line += statusStyle.Render("  filter:" + m.pol.Filter.String())
	}
	if m.pol.Remaining > 0 {
		line += dimStyle.Render(fmt.Sprintf("  %d left", m.pol.Remaining))
	}
	return line
}

func (m Model) footer() string {
	switch m.mode {
	case modeSort:
		return promptStyle.Render("sort key (t T n N d D): ")
	case modeFilter, modeCPUs, modeInterval:
		return m.input.View()
	}
	if m.status != "" && time.Since(m.statusT) < statusTTL {
		return errorStyle.Render(m.status)
	}
	return m.help.View(m.keys)
}

func sortLabel(pol model.ViewPolicy) string {
	s := pol.Sort.String()
	if pol.SortDesc {
		return s + "-"
	}
	return s + "+"
}
