package window

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/geom"
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/internal/xkb"
	"github.com/tesselslate/xwin/mouse"
)

// WM_STATE value of a minimized window.
const wmStateIconic = 3

// translate converts one raw X event into semantic events and queues them.
// Events without a semantic counterpart are consumed without queueing
// anything.
func (w *Window) translate(evt xgb.Event) {
	switch evt := evt.(type) {
	case xproto.KeyPressEvent:
		w.push(w.kb.Translate(evt.Detail, true))
	case xproto.KeyReleaseEvent:
		w.push(w.kb.Translate(evt.Detail, false))
	case xproto.ButtonPressEvent:
		w.push(event.MousePress{Mouse: w.mouse(evt.EventX, evt.EventY, button(evt.Detail))})
	case xproto.ButtonReleaseEvent:
		w.push(event.MouseRelease{Mouse: w.mouse(evt.EventX, evt.EventY, button(evt.Detail))})
	case xproto.MotionNotifyEvent:
		w.push(event.MouseMove{Mouse: w.mouse(evt.EventX, evt.EventY, heldButtons(evt.State))})
	case xproto.EnterNotifyEvent:
		w.push(event.Enter{Point: point(evt.EventX, evt.EventY)})
	case xproto.LeaveNotifyEvent:
		w.push(event.Leave{Point: point(evt.EventX, evt.EventY)})
	case xproto.ClientMessageEvent:
		if w.isDeleteRequest(evt) {
			w.push(event.Close{})
		}
	case xproto.MapNotifyEvent:
		w.push(event.Show{})
	case xproto.UnmapNotifyEvent:
		w.push(event.Hide{})
	case xproto.ExposeEvent:
		// Only the last event of an exposure series is reported.
		if evt.Count == 0 {
			w.push(event.Expose{})
		}
	case xproto.ConfigureNotifyEvent:
		size := geom.Size{W: int32(evt.Width), H: int32(evt.Height)}
		if size != w.size {
			w.size = size
			w.push(event.Resize{Size: size})
		}
		pos := point(evt.X, evt.Y)
		if pos != w.pos {
			w.pos = pos
			w.push(event.Move{Point: pos})
		}
	case xproto.PropertyNotifyEvent:
		if evt.Atom != w.atoms.Get(AtomWMState) && evt.Atom != w.atoms.Get(AtomNetWMState) {
			return
		}
		if w.stateOf == nil {
			return
		}
		state, err := w.stateOf()
		if err != nil {
			log.Warn("Failed to query window state: %s", err)
			return
		}
		if state != w.state {
			w.state = state
			w.push(event.StateChange{State: state})
		}
	case xproto.MappingNotifyEvent:
		if evt.Request == xproto.MappingKeyboard || evt.Request == xproto.MappingModifier {
			w.reloadKeymap()
		}
	case xkb.StateNotifyEvent:
		if evt.DeviceID != w.kb.DeviceID() {
			return
		}
		w.kb.UpdateState(
			evt.BaseMods, evt.LatchedMods, evt.LockedMods,
			evt.BaseGroup, evt.LatchedGroup, evt.LockedGroup,
		)
	case xkb.MapNotifyEvent:
		if evt.DeviceID == w.kb.DeviceID() {
			w.reloadKeymap()
		}
	case xkb.NewKeyboardNotifyEvent:
		if evt.DeviceID == w.kb.DeviceID() {
			w.reloadKeymap()
		}
	default:
		log.Verbose("Ignored event: %s", evt)
	}
}

// push queues a semantic event.
func (w *Window) push(evt event.Event) {
	w.pending = append(w.pending, evt)
}

// mouse builds the shared fields of a pointer event.
func (w *Window) mouse(x, y int16, buttons mouse.Buttons) event.Mouse {
	return event.Mouse{
		Point:   point(x, y),
		Buttons: buttons,
		Mods:    w.kb.Mods(),
	}
}

// isDeleteRequest returns whether a client message is a WM_DELETE_WINDOW
// request from the window manager.
func (w *Window) isDeleteRequest(evt xproto.ClientMessageEvent) bool {
	if evt.Type != w.atoms.Get(AtomWMProtocols) || evt.Format != 32 {
		return false
	}
	data := evt.Data.Data32
	return len(data) > 0 && xproto.Atom(data[0]) == w.atoms.Get(AtomWMDeleteWindow)
}

func (w *Window) reloadKeymap() {
	if err := w.kb.Reload(); err != nil {
		log.Warn("Failed to reload keymap: %s", err)
	}
}

func point(x, y int16) geom.Point {
	return geom.Point{X: int32(x), Y: int32(y)}
}

// button returns the button which triggered a press or release. Buttons
// other than the first three (such as the scroll wheel) map to no buttons.
func button(detail xproto.Button) mouse.Buttons {
	switch detail {
	case xproto.ButtonIndex1:
		return mouse.Left
	case xproto.ButtonIndex2:
		return mouse.Middle
	case xproto.ButtonIndex3:
		return mouse.Right
	}
	return 0
}

// heldButtons returns the buttons held according to an event state mask.
func heldButtons(state uint16) mouse.Buttons {
	var buttons mouse.Buttons
	if state&xproto.KeyButMaskButton1 != 0 {
		buttons |= mouse.Left
	}
	if state&xproto.KeyButMaskButton2 != 0 {
		buttons |= mouse.Middle
	}
	if state&xproto.KeyButMaskButton3 != 0 {
		buttons |= mouse.Right
	}
	return buttons
}

// deriveState computes the window state from the raw values of the WM_STATE
// and _NET_WM_STATE properties.
func deriveState(atoms *AtomTable, wmState, netState []byte) event.WindowState {
	if len(wmState) >= 4 && xgb.Get32(wmState) == wmStateIconic {
		return event.StateMinimized
	}
	var maxVert, maxHorz, hidden bool
	for i := 0; i+4 <= len(netState); i += 4 {
		switch xproto.Atom(xgb.Get32(netState[i:])) {
		case atoms.Get(AtomNetWMStateFullscreen):
			return event.StateFullscreen
		case atoms.Get(AtomNetWMStateHidden):
			hidden = true
		case atoms.Get(AtomNetWMStateMaximizedVert):
			maxVert = true
		case atoms.Get(AtomNetWMStateMaximizedHorz):
			maxHorz = true
		}
	}
	switch {
	case hidden:
		return event.StateHidden
	case maxVert && maxHorz:
		return event.StateMaximized
	}
	return event.StateNormal
}
