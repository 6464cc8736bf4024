// Package event defines the semantic events produced from the X event stream.
package event

import (
	"fmt"

	"github.com/tesselslate/xwin/geom"
	"github.com/tesselslate/xwin/key"
	"github.com/tesselslate/xwin/mouse"
)

// Event is one of the event types declared in this package.
type Event interface {
	fmt.Stringer
	event()
}

// WindowState describes how the window manager is presenting the window.
type WindowState int

const (
	StateNormal WindowState = iota
	StateMinimized
	StateMaximized
	StateFullscreen
	StateHidden
)

var stateNames = []string{"normal", "minimized", "maximized", "fullscreen", "hidden"}

// String implements Stringer.
func (s WindowState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("WindowState(%d)", int(s))
	}
	return stateNames[s]
}

// Show is emitted when the window is mapped.
type Show struct{}

// Hide is emitted when the window is unmapped.
type Hide struct{}

// Expose is emitted when the window contents need to be redrawn.
type Expose struct{}

// Close is emitted when the window manager asks the window to close.
type Close struct{}

// Resize is emitted when the window size changes.
type Resize struct {
	Size geom.Size
}

// Move is emitted when the window position changes.
type Move struct {
	Point geom.Point
}

// StateChange is emitted when the window manager state of the window changes.
type StateChange struct {
	State WindowState
}

// Enter is emitted when the pointer enters the window.
type Enter struct {
	Point geom.Point
}

// Leave is emitted when the pointer leaves the window.
type Leave struct {
	Point geom.Point
}

// Mouse holds the fields shared by pointer button and motion events. For
// presses and releases, Buttons contains the triggering button. For motion,
// Buttons contains every held button.
type Mouse struct {
	Point   geom.Point
	Buttons mouse.Buttons
	Mods    key.Mods
}

type MousePress struct{ Mouse }
type MouseRelease struct{ Mouse }
type MouseMove struct{ Mouse }

// KeyPress is emitted when a key is pressed. Text contains the UTF-8 text
// produced by the key, if any.
type KeyPress struct {
	Sym  key.Sym
	Code key.Code
	Text string
}

// KeyRelease is emitted when a key is released.
type KeyRelease struct {
	Sym  key.Sym
	Code key.Code
}

func (Show) event()         {}
func (Hide) event()         {}
func (Expose) event()       {}
func (Close) event()        {}
func (Resize) event()       {}
func (Move) event()         {}
func (StateChange) event()  {}
func (Enter) event()        {}
func (Leave) event()        {}
func (MousePress) event()   {}
func (MouseRelease) event() {}
func (MouseMove) event()    {}
func (KeyPress) event()     {}
func (KeyRelease) event()   {}

func (Show) String() string          { return "Show" }
func (Hide) String() string          { return "Hide" }
func (Expose) String() string        { return "Expose" }
func (Close) String() string         { return "Close" }
func (e Resize) String() string      { return "Resize " + e.Size.String() }
func (e Move) String() string        { return "Move " + e.Point.String() }
func (e StateChange) String() string { return "StateChange " + e.State.String() }
func (e Enter) String() string       { return "Enter " + e.Point.String() }
func (e Leave) String() string       { return "Leave " + e.Point.String() }

func (m Mouse) String() string {
	return fmt.Sprintf("%s buttons=%s mods=%s", m.Point, m.Buttons, m.Mods)
}

func (e MousePress) String() string   { return "MousePress " + e.Mouse.String() }
func (e MouseRelease) String() string { return "MouseRelease " + e.Mouse.String() }
func (e MouseMove) String() string    { return "MouseMove " + e.Mouse.String() }

func (e KeyPress) String() string {
	return fmt.Sprintf("KeyPress sym=%s code=%s text=%q", e.Sym, e.Code, e.Text)
}

func (e KeyRelease) String() string {
	return fmt.Sprintf("KeyRelease sym=%s code=%s", e.Sym, e.Code)
}
