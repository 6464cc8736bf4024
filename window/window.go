// Package window creates a top-level X window and normalizes the events it
// receives into the event package's model.
package window

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/geom"
	"github.com/tesselslate/xwin/internal/keyboard"
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/key"
)

// Events selected on the window.
const eventMask uint32 = xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonMotion |
	xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange

// eventSource provides raw X events.
type eventSource interface {
	WaitForEvent() (xgb.Event, xgb.Error)
}

// Window is a top-level X window. WaitEvent must only be called from one
// goroutine at a time.
type Window struct {
	conn   *xgb.Conn
	id     xproto.Window
	screen int
	atoms  *AtomTable
	kb     *keyboard.Keyboard
	title  string

	src     eventSource
	pending []event.Event

	// Last reported geometry and state.
	size    geom.Size
	pos     geom.Point
	state   event.WindowState
	stateOf func() (event.WindowState, error)
}

// New opens a connection to the display named by $DISPLAY and creates a
// window on it.
func New(width, height uint16, title string) (*Window, error) {
	return NewDisplay("", width, height, title)
}

// NewDisplay opens a connection to the given display and creates a window on
// it. If the window cannot be created, the connection is closed.
func NewDisplay(display string, width, height uint16, title string) (*Window, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, &SetupError{OpConnect, err}
	}
	w, err := create(conn, width, height, title)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return w, nil
}

func create(conn *xgb.Conn, width, height uint16, title string) (*Window, error) {
	atoms, err := InternAtoms(conn)
	if err != nil {
		return nil, &SetupError{OpInternAtoms, err}
	}
	kb, err := keyboard.New(conn)
	if err != nil {
		return nil, &SetupError{OpKeyboard, err}
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	id, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, &SetupError{OpCreateWindow, err}
	}
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		id,
		screen.Root,
		0, 0,
		width, height,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.WhitePixel, eventMask},
	).Check()
	if err != nil {
		return nil, &SetupError{OpCreateWindow, err}
	}

	w := &Window{
		conn:   conn,
		id:     id,
		screen: conn.DefaultScreen,
		atoms:  atoms,
		kb:     kb,
		src:    conn,
		size:   geom.Size{W: int32(width), H: int32(height)},
	}
	w.stateOf = w.queryState

	protocols := make([]byte, 4)
	xgb.Put32(protocols, uint32(atoms.Get(AtomWMDeleteWindow)))
	err = xproto.ChangePropertyChecked(
		conn,
		xproto.PropModeReplace,
		id,
		atoms.Get(AtomWMProtocols),
		xproto.AtomAtom,
		32,
		1,
		protocols,
	).Check()
	if err != nil {
		return nil, &SetupError{OpSetProtocols, err}
	}
	if title != "" {
		if err := w.setTitle(title); err != nil {
			return nil, &SetupError{OpCreateWindow, err}
		}
	}
	if err := xproto.MapWindowChecked(conn, id).Check(); err != nil {
		return nil, &SetupError{OpMapWindow, err}
	}
	conn.Sync()
	log.Debug("Created window %d (%dx%d)", id, width, height)
	return w, nil
}

// Close destroys the window and closes the connection to the X server.
func (w *Window) Close() {
	xproto.DestroyWindow(w.conn, w.id)
	w.conn.Close()
}

// DefaultScreen returns the index of the screen the window was created on.
func (w *Window) DefaultScreen() int {
	return w.screen
}

// ID returns the X resource ID of the window.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Atoms returns the atoms interned for the window.
func (w *Window) Atoms() *AtomTable {
	return w.atoms
}

// Keyboard returns the keyboard used to translate key events.
func (w *Window) Keyboard() *keyboard.Keyboard {
	return w.kb
}

// Mods returns the modifier keys currently held.
func (w *Window) Mods() key.Mods {
	return w.kb.Mods()
}

// Title returns the current window title.
func (w *Window) Title() string {
	return w.title
}

// SetTitle changes the window title. Setting the current title again does
// nothing.
func (w *Window) SetTitle(title string) error {
	if title == w.title {
		return nil
	}
	if err := w.setTitle(title); err != nil {
		return err
	}
	w.conn.Sync()
	return nil
}

// setTitle sets WM_NAME and _NET_WM_NAME.
func (w *Window) setTitle(title string) error {
	err := xproto.ChangePropertyChecked(
		w.conn,
		xproto.PropModeReplace,
		w.id,
		xproto.AtomWmName,
		xproto.AtomString,
		8,
		uint32(len(title)),
		[]byte(title),
	).Check()
	if err != nil {
		return fmt.Errorf("set WM_NAME: %w", err)
	}
	err = xproto.ChangePropertyChecked(
		w.conn,
		xproto.PropModeReplace,
		w.id,
		w.atoms.Get(AtomNetWMName),
		w.atoms.Get(AtomUTF8String),
		8,
		uint32(len(title)),
		[]byte(title),
	).Check()
	if err != nil {
		return fmt.Errorf("set _NET_WM_NAME: %w", err)
	}
	w.title = title
	return nil
}

// WaitEvent blocks until the next semantic event is available. Raw events
// without a semantic counterpart are consumed while waiting.
func (w *Window) WaitEvent() (event.Event, error) {
	for len(w.pending) == 0 {
		evt, err := w.src.WaitForEvent()
		if evt == nil && err == nil {
			return nil, ErrConnectionDied
		}
		if err != nil {
			return nil, fmt.Errorf("wait for event: %w", err)
		}
		w.translate(evt)
	}
	evt := w.pending[0]
	w.pending = w.pending[1:]
	return evt, nil
}

// queryState reads the window manager state properties of the window.
func (w *Window) queryState() (event.WindowState, error) {
	wmState, err := w.getProperty(AtomWMState, xproto.GetPropertyTypeAny, 2)
	if err != nil {
		return event.StateNormal, fmt.Errorf("get WM_STATE: %w", err)
	}
	netState, err := w.getProperty(AtomNetWMState, xproto.AtomAtom, 64)
	if err != nil {
		return event.StateNormal, fmt.Errorf("get _NET_WM_STATE: %w", err)
	}
	return deriveState(w.atoms, wmState, netState), nil
}

// getProperty retrieves a raw window property. Missing properties yield an
// empty value.
func (w *Window) getProperty(name Atom, typ xproto.Atom, length uint32) ([]byte, error) {
	reply, err := xproto.GetProperty(
		w.conn,
		false,
		w.id,
		w.atoms.Get(name),
		typ,
		0,
		length,
	).Reply()
	if err != nil {
		return nil, err
	}
	if reply == nil || reply.Format == 0 {
		return nil, nil
	}
	return reply.Value, nil
}
