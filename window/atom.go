package window

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Atom identifies one of the atoms interned when a window is created.
type Atom int

// Interned atoms, in the order they are requested.
const (
	AtomUTF8String Atom = iota
	AtomWMProtocols
	AtomWMDeleteWindow
	AtomWMTransientFor
	AtomWMChangeState
	AtomWMState
	AtomNetWMState
	AtomNetWMStateModal
	AtomNetWMStateSticky
	AtomNetWMStateMaximizedVert
	AtomNetWMStateMaximizedHorz
	AtomNetWMStateShaded
	AtomNetWMStateSkipTaskbar
	AtomNetWMStateSkipPager
	AtomNetWMStateHidden
	AtomNetWMStateFullscreen
	AtomNetWMStateAbove
	AtomNetWMStateBelow
	AtomNetWMStateDemandsAttention
	AtomNetWMStateFocused
	AtomNetWMName

	atomCount
)

var atomNames = [atomCount]string{
	"UTF8_STRING",
	"WM_PROTOCOLS",
	"WM_DELETE_WINDOW",
	"WM_TRANSIENT_FOR",
	"WM_CHANGE_STATE",
	"WM_STATE",
	"_NET_WM_STATE",
	"_NET_WM_STATE_MODAL",
	"_NET_WM_STATE_STICKY",
	"_NET_WM_STATE_MAXIMIZED_VERT",
	"_NET_WM_STATE_MAXIMIZED_HORZ",
	"_NET_WM_STATE_SHADED",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_STATE_SKIP_PAGER",
	"_NET_WM_STATE_HIDDEN",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_BELOW",
	"_NET_WM_STATE_DEMANDS_ATTENTION",
	"_NET_WM_STATE_FOCUSED",
	"_NET_WM_NAME",
}

// String returns the X name of the atom.
func (a Atom) String() string {
	if a < 0 || a >= atomCount {
		return fmt.Sprintf("Atom(%d)", int(a))
	}
	return atomNames[a]
}

// AtomCount returns the number of interned atoms.
func AtomCount() int {
	return int(atomCount)
}

// Atoms returns every atom in request order.
func Atoms() []Atom {
	out := make([]Atom, atomCount)
	for i := range out {
		out[i] = Atom(i)
	}
	return out
}

// AtomTable maps each Atom to the value assigned by the X server. It is
// immutable once built.
type AtomTable struct {
	values [atomCount]xproto.Atom
}

// InternAtoms requests every atom from the X server. All requests are sent
// before any reply is read.
func InternAtoms(conn *xgb.Conn) (*AtomTable, error) {
	var cookies [atomCount]xproto.InternAtomCookie
	for i, name := range atomNames {
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}
	t := &AtomTable{}
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, &MissingAtomError{Name: atomNames[i], Err: err}
		}
		if reply == nil || reply.Atom == xproto.AtomNone {
			return nil, &MissingAtomError{Name: atomNames[i]}
		}
		t.values[i] = reply.Atom
	}
	return t, nil
}

// Get returns the server value of an atom.
func (t *AtomTable) Get(a Atom) xproto.Atom {
	return t.values[a]
}

// Name returns the X name of an atom.
func (t *AtomTable) Name(a Atom) string {
	return a.String()
}

// Lookup returns the Atom with the given server value.
func (t *AtomTable) Lookup(value xproto.Atom) (Atom, bool) {
	for i, v := range t.values {
		if v == value {
			return Atom(i), true
		}
	}
	return 0, false
}
