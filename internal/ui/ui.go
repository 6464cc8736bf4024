// Package ui implements the event inspector shown by `xwin inspect`.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/geom"
	"github.com/tesselslate/xwin/key"
)

const (
	historySize = 256 // Events kept in the history
	logSize     = 5   // Log lines shown below the history
)

// Model is the bubbletea model of the inspector.
type Model struct {
	history []entry
	count   int
	height  int

	title   string
	size    geom.Size
	pos     geom.Point
	pointer geom.Point
	state   event.WindowState
	mods    key.Mods
	inside  bool
	visible bool

	status     Status
	statusText string
	recentLog  []string
}

type entry struct {
	n   int
	evt event.Event
}

// NewModel creates an inspector for a window with the given title and size.
func NewModel(title string, size geom.Size) Model {
	return Model{
		history:    make([]entry, 0, historySize),
		height:     24,
		title:      title,
		size:       size,
		status:     StatusBusy,
		statusText: "waiting for events",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "c":
			m.history = m.history[:0]
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case MsgEvent:
		m.observe(msg)
	case MsgTitle:
		m.title = string(msg)
	case MsgLog:
		if len(m.recentLog) == logSize {
			m.recentLog = m.recentLog[1:]
		}
		m.recentLog = append(m.recentLog, string(msg))
	case MsgStatus:
		m.status = msg.Status
		m.statusText = msg.Text
	case MsgDone:
		if msg.Err != nil {
			m.status = StatusFail
			m.statusText = msg.Err.Error()
		} else {
			m.status = StatusOk
			m.statusText = "window closed"
		}
		return m, tea.Quit
	}
	return m, nil
}

// observe records an event and updates the window details it affects.
func (m *Model) observe(msg MsgEvent) {
	m.count++
	m.mods = msg.Mods
	if len(m.history) == historySize {
		copy(m.history, m.history[1:])
		m.history = m.history[:historySize-1]
	}
	m.history = append(m.history, entry{m.count, msg.Event})
	if m.status == StatusBusy {
		m.status = StatusOk
		m.statusText = ""
	}

	switch evt := msg.Event.(type) {
	case event.Resize:
		m.size = evt.Size
	case event.Move:
		m.pos = evt.Point
	case event.StateChange:
		m.state = evt.State
	case event.Show:
		m.visible = true
	case event.Hide:
		m.visible = false
	case event.Enter:
		m.inside = true
		m.pointer = evt.Point
	case event.Leave:
		m.inside = false
		m.pointer = evt.Point
	case event.MouseMove:
		m.pointer = evt.Point
	case event.MousePress:
		m.pointer = evt.Point
	case event.MouseRelease:
		m.pointer = evt.Point
	}
}

func (m Model) View() string {
	style := statusStyles[m.status]
	out := style.style.Render("\n  STATUS: " + style.title)
	if m.statusText != "" {
		out += style.style.Render(" | " + m.statusText)
	}
	out += "\n\n"

	details := []string{
		"Title", m.title,
		"Size", m.size.String(),
		"Position", m.pos.String(),
		"State", m.state.String(),
		"Mapped", strconv.FormatBool(m.visible),
		"Pointer", m.pointerString(),
		"Modifiers", m.mods.String(),
		"Events", strconv.Itoa(m.count),
	}
	for i := 0; i < len(details); i += 2 {
		out += cyanStyle.Render("  "+pad(details[i]+":", 11)) + details[i+1] + "\n"
	}

	out += "\n" + cyanStyle.Render("  #      Event") + "\n"
	for _, e := range m.visibleHistory() {
		line := "  " + pad(strconv.Itoa(e.n), 7) + e.evt.String()
		out += styleFor(e.evt).Render(line) + "\n"
	}
	out += grayStyle.Render("\n  q/ctrl+c: quit    c: clear\n")
	if len(m.recentLog) > 0 {
		out += cyanStyle.Render("\n  Log:") + "\n"
		for _, line := range m.recentLog {
			out += "  " + line + "\n"
		}
	}
	return out
}

// visibleHistory returns the most recent events which fit on screen.
func (m Model) visibleHistory() []entry {
	// Status, details, footer and log lines.
	rows := m.height - 18 - len(m.recentLog)
	if rows < 1 {
		rows = 1
	}
	if len(m.history) <= rows {
		return m.history
	}
	return m.history[len(m.history)-rows:]
}

func (m Model) pointerString() string {
	if !m.inside {
		return "outside"
	}
	return m.pointer.String()
}

// styleFor picks the style used to render an event line.
func styleFor(evt event.Event) gloss.Style {
	switch evt.(type) {
	case event.KeyPress, event.KeyRelease:
		return keyStyle
	case event.MousePress, event.MouseRelease, event.MouseMove, event.Enter, event.Leave:
		return mouseStyle
	case event.Close:
		return statusStyles[StatusFail].style
	}
	return windowStyle
}

func pad(str string, length int) string {
	if len(str) >= length {
		return str
	}
	return str + strings.Repeat(" ", length-len(str))
}

// Status describes the state of the event loop feeding the inspector.
type Status int

const (
	StatusUnknown Status = iota
	StatusBusy
	StatusOk
	StatusFail
)

// String implements Stringer.
func (s Status) String() string {
	if style, ok := statusStyles[s]; ok {
		return style.title
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type StatusStyle struct {
	title string
	style gloss.Style
}

var statusStyles = map[Status]StatusStyle{
	StatusUnknown: {
		title: "???",
		style: gloss.NewStyle().Foreground(gloss.Color("15")),
	},
	StatusBusy: {
		title: "busy",
		style: gloss.NewStyle().Foreground(gloss.Color("11")),
	},
	StatusOk: {
		title: "ok",
		style: gloss.NewStyle().Foreground(gloss.Color("10")),
	},
	StatusFail: {
		title: "fail",
		style: gloss.NewStyle().Foreground(gloss.Color("9")),
	},
}

var cyanStyle = gloss.NewStyle().Bold(true).Foreground(gloss.Color("14"))
var grayStyle = gloss.NewStyle().Foreground(gloss.Color("#aaaaaa"))
var keyStyle = gloss.NewStyle().Foreground(gloss.Color("13"))
var mouseStyle = gloss.NewStyle().Foreground(gloss.Color("12"))
var windowStyle = gloss.NewStyle()
