package window

import (
	"errors"
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/geom"
	"github.com/tesselslate/xwin/internal/keyboard"
	"github.com/tesselslate/xwin/internal/xkb"
	"github.com/tesselslate/xwin/key"
	"github.com/tesselslate/xwin/mouse"
)

const testDevice = 3

// fakeSource replays a fixed list of raw events, then reports a dead
// connection.
type fakeSource struct {
	events []xgb.Event
	err    xgb.Error
}

func (s *fakeSource) WaitForEvent() (xgb.Event, xgb.Error) {
	if s.err != nil {
		err := s.err
		s.err = nil
		return nil, err
	}
	if len(s.events) == 0 {
		return nil, nil
	}
	evt := s.events[0]
	s.events = s.events[1:]
	return evt, nil
}

type fakeError struct{}

func (fakeError) SequenceId() uint16 { return 1 }
func (fakeError) BadId() uint32      { return 2 }
func (fakeError) Error() string      { return "BadWindow" }

func testAtoms() *AtomTable {
	t := &AtomTable{}
	for i := range t.values {
		t.values[i] = xproto.Atom(100 + i)
	}
	return t
}

func testKeyboard() *keyboard.Keyboard {
	const per = 2
	keysyms := make([]xproto.Keysym, (256-8)*per)
	set := func(code int, syms ...xproto.Keysym) {
		copy(keysyms[(code-8)*per:], syms)
	}
	set(38, 'a', 'A')
	set(50, 0xffe1) // Shift_L
	set(37, 0xffe3) // Control_L
	modmap := []xproto.Keycode{50, 0, 37, 0, 0, 0, 0, 0}
	return keyboard.NewWithKeymap(testDevice, keyboard.CompileKeymap(8, per, keysyms, 1, modmap))
}

func testWindow(events ...xgb.Event) *Window {
	return &Window{
		atoms: testAtoms(),
		kb:    testKeyboard(),
		src:   &fakeSource{events: events},
		size:  geom.Size{W: 640, H: 480},
	}
}

func drain(t *testing.T, w *Window) []event.Event {
	t.Helper()
	var out []event.Event
	for {
		evt, err := w.WaitEvent()
		if err != nil {
			require.ErrorIs(t, err, ErrConnectionDied)
			return out
		}
		out = append(out, evt)
	}
}

func deleteMessage(atoms *AtomTable, format byte) xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: format,
		Type:   atoms.Get(AtomWMProtocols),
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(atoms.Get(AtomWMDeleteWindow)), 0, 0, 0, 0,
		}),
	}
}

func TestAtomOrder(t *testing.T) {
	require.Equal(t, 21, AtomCount())
	assert.Equal(t, "UTF8_STRING", AtomUTF8String.String())
	assert.Equal(t, "WM_DELETE_WINDOW", AtomWMDeleteWindow.String())
	assert.Equal(t, "_NET_WM_STATE_FULLSCREEN", AtomNetWMStateFullscreen.String())
	assert.Equal(t, "_NET_WM_NAME", AtomNetWMName.String())
	assert.Equal(t, "Atom(99)", Atom(99).String())

	atoms := testAtoms()
	for i, a := range Atoms() {
		assert.Equal(t, Atom(i), a)
		found, ok := atoms.Lookup(atoms.Get(a))
		assert.True(t, ok)
		assert.Equal(t, a, found)
	}
	_, ok := atoms.Lookup(1)
	assert.False(t, ok)
}

func TestClose(t *testing.T) {
	atoms := testAtoms()
	wrongType := deleteMessage(atoms, 32)
	wrongType.Type = atoms.Get(AtomWMState)
	w := testWindow(
		deleteMessage(atoms, 8),
		wrongType,
		deleteMessage(atoms, 32),
	)
	assert.Equal(t, []event.Event{event.Close{}}, drain(t, w))
}

func TestConsumedEvents(t *testing.T) {
	w := testWindow(
		xkb.StateNotifyEvent{DeviceID: testDevice},
		xproto.MappingNotifyEvent{Request: xproto.MappingPointer},
		xproto.ButtonPressEvent{Detail: xproto.ButtonIndex1, EventX: 4, EventY: 7},
	)
	evt, err := w.WaitEvent()
	require.NoError(t, err)
	assert.Equal(t, event.MousePress{Mouse: event.Mouse{
		Point:   geom.Point{X: 4, Y: 7},
		Buttons: mouse.Left,
	}}, evt)

	_, err = w.WaitEvent()
	assert.ErrorIs(t, err, ErrConnectionDied)
}

func TestWaitEventError(t *testing.T) {
	w := testWindow()
	w.src = &fakeSource{err: fakeError{}}
	_, err := w.WaitEvent()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrConnectionDied))
	assert.Contains(t, err.Error(), "BadWindow")
}

func TestKeyboardState(t *testing.T) {
	w := testWindow(
		xkb.StateNotifyEvent{DeviceID: testDevice + 1, BaseMods: 1},
		xproto.KeyPressEvent{Detail: 38},
		xkb.StateNotifyEvent{DeviceID: testDevice, BaseMods: 1},
		xproto.KeyPressEvent{Detail: 38},
		xproto.KeyPressEvent{Detail: 37},
		xproto.ButtonReleaseEvent{Detail: xproto.ButtonIndex3},
		xproto.KeyReleaseEvent{Detail: 37},
	)
	assert.Equal(t, []event.Event{
		event.KeyPress{Sym: key.SymA, Code: key.CodeA, Text: "a"},
		event.KeyPress{Sym: key.SymA, Code: key.CodeA, Text: "A"},
		event.KeyPress{Sym: key.SymLeftCtrl, Code: key.CodeLeftCtrl},
		event.MouseRelease{Mouse: event.Mouse{Buttons: mouse.Right, Mods: key.LeftCtrl}},
		event.KeyRelease{Sym: key.SymLeftCtrl, Code: key.CodeLeftCtrl},
	}, drain(t, w))
	assert.Equal(t, key.Mods(0), w.Mods())
}

func TestConfigure(t *testing.T) {
	w := testWindow(
		xproto.ConfigureNotifyEvent{X: 10, Y: 20, Width: 800, Height: 600},
		xproto.ConfigureNotifyEvent{X: 10, Y: 20, Width: 800, Height: 600},
		xproto.ConfigureNotifyEvent{X: 10, Y: 20, Width: 320, Height: 600},
		xproto.ConfigureNotifyEvent{X: 0, Y: 0, Width: 320, Height: 600},
	)
	assert.Equal(t, []event.Event{
		event.Resize{Size: geom.Size{W: 800, H: 600}},
		event.Move{Point: geom.Point{X: 10, Y: 20}},
		event.Resize{Size: geom.Size{W: 320, H: 600}},
		event.Move{Point: geom.Point{}},
	}, drain(t, w))
}

func TestMouse(t *testing.T) {
	w := testWindow(
		xproto.EnterNotifyEvent{EventX: 1, EventY: 2},
		xproto.MotionNotifyEvent{EventX: 3, EventY: 4, State: xproto.KeyButMaskButton1 | xproto.KeyButMaskButton3},
		xproto.ButtonPressEvent{Detail: 4},
		xproto.ButtonPressEvent{Detail: xproto.ButtonIndex2},
		xproto.LeaveNotifyEvent{EventX: -5, EventY: 6},
	)
	assert.Equal(t, []event.Event{
		event.Enter{Point: geom.Point{X: 1, Y: 2}},
		event.MouseMove{Mouse: event.Mouse{
			Point:   geom.Point{X: 3, Y: 4},
			Buttons: mouse.Left | mouse.Right,
		}},
		event.MousePress{},
		event.MousePress{Mouse: event.Mouse{Buttons: mouse.Middle}},
		event.Leave{Point: geom.Point{X: -5, Y: 6}},
	}, drain(t, w))
}

func TestVisibility(t *testing.T) {
	w := testWindow(
		xproto.MapNotifyEvent{},
		xproto.ExposeEvent{Count: 1},
		xproto.ExposeEvent{Count: 0},
		xproto.UnmapNotifyEvent{},
	)
	assert.Equal(t, []event.Event{
		event.Show{},
		event.Expose{},
		event.Hide{},
	}, drain(t, w))
}

func TestStateChange(t *testing.T) {
	atoms := testAtoms()
	states := []event.WindowState{
		event.StateMaximized,
		event.StateMaximized,
		event.StateNormal,
	}
	w := testWindow(
		xproto.PropertyNotifyEvent{Atom: atoms.Get(AtomNetWMState)},
		xproto.PropertyNotifyEvent{Atom: xproto.AtomWmName},
		xproto.PropertyNotifyEvent{Atom: atoms.Get(AtomNetWMState)},
		xproto.PropertyNotifyEvent{Atom: atoms.Get(AtomWMState)},
	)
	w.stateOf = func() (event.WindowState, error) {
		state := states[0]
		states = states[1:]
		return state, nil
	}
	assert.Equal(t, []event.Event{
		event.StateChange{State: event.StateMaximized},
		event.StateChange{State: event.StateNormal},
	}, drain(t, w))
	assert.Empty(t, states)
}

func TestDeriveState(t *testing.T) {
	atoms := testAtoms()
	wm := func(v uint32) []byte {
		buf := make([]byte, 8)
		xgb.Put32(buf, v)
		return buf
	}
	net := func(names ...Atom) []byte {
		buf := make([]byte, 4*len(names))
		for i, name := range names {
			xgb.Put32(buf[4*i:], uint32(atoms.Get(name)))
		}
		return buf
	}

	tests := []struct {
		wm   []byte
		net  []byte
		want event.WindowState
	}{
		{nil, nil, event.StateNormal},
		{wm(1), nil, event.StateNormal},
		{wm(wmStateIconic), net(AtomNetWMStateFullscreen), event.StateMinimized},
		{wm(1), net(AtomNetWMStateHidden, AtomNetWMStateFullscreen), event.StateFullscreen},
		{nil, net(AtomNetWMStateHidden, AtomNetWMStateMaximizedVert, AtomNetWMStateMaximizedHorz), event.StateHidden},
		{nil, net(AtomNetWMStateMaximizedHorz, AtomNetWMStateMaximizedVert), event.StateMaximized},
		{nil, net(AtomNetWMStateMaximizedVert), event.StateNormal},
		{nil, net(AtomNetWMStateFocused, AtomNetWMStateAbove), event.StateNormal},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.want, deriveState(atoms, tt.wm, tt.net), "case %d", i)
	}
}

func TestSetupError(t *testing.T) {
	inner := errors.New("no display")
	err := error(&SetupError{OpConnect, inner})
	assert.Equal(t, "connect: no display", err.Error())
	assert.ErrorIs(t, err, inner)

	var missing *MissingAtomError
	err = &SetupError{OpInternAtoms, &MissingAtomError{Name: "WM_STATE"}}
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "WM_STATE", missing.Name)
}
