// Package keyboard binds the X keyboard extension to the layout-independent
// key vocabulary. It tracks the server's modifier state, compiles the core
// keyboard mapping and translates raw keycodes into key events.
package keyboard

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/internal/xkb"
	"github.com/tesselslate/xwin/key"
)

// Keyboard events and map parts which are selected on the bound device.
const (
	selectedEvents = xkb.EventTypeNewKeyboardNotify |
		xkb.EventTypeMapNotify |
		xkb.EventTypeStateNotify

	selectedMapParts = xkb.MapPartKeyTypes |
		xkb.MapPartKeySyms |
		xkb.MapPartModifierMap |
		xkb.MapPartExplicitComponents |
		xkb.MapPartKeyActions |
		xkb.MapPartKeyBehaviors |
		xkb.MapPartVirtualMods |
		xkb.MapPartVirtualModMap
)

// UnsupportedError is returned when the X server does not provide a usable
// version of the keyboard extension.
type UnsupportedError struct {
	ServerMajor uint16
	ServerMinor uint16
	Err         error
}

func (e *UnsupportedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xkb %d.%d is not supported: %s", xkb.MajorVersion, xkb.MinorVersion, e.Err)
	}
	return fmt.Sprintf("xkb %d.%d is not supported (server has %d.%d)",
		xkb.MajorVersion, xkb.MinorVersion, e.ServerMajor, e.ServerMinor)
}

func (e *UnsupportedError) Unwrap() error {
	return e.Err
}

// Keyboard translates key events for the core keyboard device.
type Keyboard struct {
	conn     *xgb.Conn
	deviceID byte
	state    State

	// The current keymap. Replaced wholesale on reload.
	keymap *Keymap
	mu     sync.RWMutex

	// Modifier keys currently held, as tracked from key events.
	mods   key.Mods
	modsMu sync.Mutex
}

// New negotiates the keyboard extension, binds the core keyboard device and
// selects its notification events.
func New(conn *xgb.Conn) (*Keyboard, error) {
	if err := xkb.Init(conn); err != nil {
		return nil, &UnsupportedError{Err: err}
	}
	version, err := xkb.UseExtension(conn, xkb.MajorVersion, xkb.MinorVersion).Reply()
	if err != nil {
		return nil, fmt.Errorf("use xkb extension: %w", err)
	}
	if !version.Supported || version.ServerMajor < xkb.MajorVersion {
		return nil, &UnsupportedError{
			ServerMajor: version.ServerMajor,
			ServerMinor: version.ServerMinor,
		}
	}

	state, err := xkb.GetState(conn, xkb.IDUseCoreKbd).Reply()
	if err != nil {
		return nil, fmt.Errorf("get keyboard state: %w", err)
	}
	keymap, err := fetchKeymap(conn)
	if err != nil {
		return nil, err
	}
	err = xkb.SelectEventsChecked(
		conn,
		xkb.IDUseCoreKbd,
		selectedEvents,
		selectedMapParts,
		selectedMapParts,
	).Check()
	if err != nil {
		return nil, fmt.Errorf("select keyboard events: %w", err)
	}

	k := NewWithKeymap(state.DeviceID, keymap)
	k.conn = conn
	k.UpdateState(
		state.BaseMods, state.LatchedMods, state.LockedMods,
		state.BaseGroup, state.LatchedGroup, state.LockedGroup,
	)
	log.Debug("Bound keyboard device %d", state.DeviceID)
	return k, nil
}

// NewWithKeymap creates a Keyboard for the given device from an already
// compiled keymap. The returned Keyboard has no connection and Reload is a
// no-op.
func NewWithKeymap(deviceID byte, keymap *Keymap) *Keyboard {
	return &Keyboard{
		deviceID: deviceID,
		keymap:   keymap,
	}
}

// fetchKeymap retrieves and compiles the core keyboard mapping.
func fetchKeymap(conn *xgb.Conn) (*Keymap, error) {
	setup := xproto.Setup(conn)
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		return nil, fmt.Errorf("get keyboard mapping: %w", err)
	}
	modMapping, err := xproto.GetModifierMapping(conn).Reply()
	if err != nil {
		return nil, fmt.Errorf("get modifier mapping: %w", err)
	}
	return CompileKeymap(
		setup.MinKeycode,
		mapping.KeysymsPerKeycode,
		mapping.Keysyms,
		modMapping.KeycodesPerModifier,
		modMapping.Keycodes,
	), nil
}

// DeviceID returns the XKB device ID of the bound keyboard.
func (k *Keyboard) DeviceID() byte {
	return k.deviceID
}

// Keymap returns the current keymap.
func (k *Keyboard) Keymap() *Keymap {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keymap
}

// Mods returns the modifier keys currently held.
func (k *Keyboard) Mods() key.Mods {
	k.modsMu.Lock()
	defer k.modsMu.Unlock()
	return k.mods
}

// Reload fetches and compiles the keyboard mapping again. The modifier state
// and held modifier keys are kept.
func (k *Keyboard) Reload() error {
	if k.conn == nil {
		return nil
	}
	keymap, err := fetchKeymap(k.conn)
	if err != nil {
		return err
	}
	k.mu.Lock()
	k.keymap = keymap
	k.mu.Unlock()
	log.Debug("Reloaded keymap (%d keysyms per keycode)", keymap.perKeycode)
	return nil
}

// UpdateState applies a state notification for the bound device.
func (k *Keyboard) UpdateState(baseMods, latchedMods, lockedMods uint8, baseGroup, latchedGroup int16, lockedGroup uint8) {
	k.state.UpdateMask(baseMods, latchedMods, lockedMods, baseGroup, latchedGroup, lockedGroup)
}

// Translate converts a raw keycode into a KeyPress or KeyRelease event. The
// held modifier keys are updated when the keycode is one of the modifier
// key positions.
func (k *Keyboard) Translate(raw xproto.Keycode, press bool) event.Event {
	code := LookupCode(uint32(raw))
	mods, group := k.state.Effective()

	var xsym uint32
	if keymap := k.Keymap(); keymap != nil {
		xsym = keymap.Keysym(raw, mods, group)
	}
	sym := LookupSym(xsym)

	if mask := code.Mods(); mask != 0 {
		k.modsMu.Lock()
		if press {
			k.mods |= mask
		} else {
			k.mods &^= mask
		}
		k.modsMu.Unlock()
	}

	if !press {
		return event.KeyRelease{Sym: sym, Code: code}
	}
	return event.KeyPress{
		Sym:  sym,
		Code: code,
		Text: keysymText(xsym, mods&modControl != 0),
	}
}
