package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/key"
)

// MsgEvent reports an event received from the window along with the
// modifier keys held at that moment.
type MsgEvent struct {
	Event event.Event
	Mods  key.Mods
}

// MsgTitle reports a change of the window title.
type MsgTitle string

type MsgStatus struct {
	Status Status
	Text   string
}

// MsgDone reports that the event loop has stopped. Err is nil if the window
// was closed normally.
type MsgDone struct {
	Err error
}

// MsgLog carries one line of log output.
type MsgLog string

// LogWriter forwards log output to a running program as MsgLog messages.
type LogWriter struct {
	Program interface{ Send(tea.Msg) }
}

// Write implements io.Writer. Each line of p is sent as its own message.
func (w LogWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			w.Program.Send(MsgLog(line))
		}
	}
	return len(p), nil
}
