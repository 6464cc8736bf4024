// Package xkb is a client for the subset of the X keyboard extension needed
// to bind a keyboard device: version negotiation, event selection, state
// queries and the three keyboard notification events.
//
// The layout follows the extension packages of github.com/jezek/xgb, which
// does not ship XKEYBOARD bindings.
package xkb

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const extName = "XKEYBOARD"

// Minimum supported extension version.
const (
	MajorVersion = 1
	MinorVersion = 0
)

// Device specifiers
const (
	IDUseCoreKbd uint16 = 0x100
)

// Event type masks for SelectEvents
const (
	EventTypeNewKeyboardNotify uint16 = 1 << 0
	EventTypeMapNotify         uint16 = 1 << 1
	EventTypeStateNotify       uint16 = 1 << 2
)

// Map part masks for SelectEvents
const (
	MapPartKeyTypes           uint16 = 1 << 0
	MapPartKeySyms            uint16 = 1 << 1
	MapPartModifierMap        uint16 = 1 << 2
	MapPartExplicitComponents uint16 = 1 << 3
	MapPartKeyActions         uint16 = 1 << 4
	MapPartKeyBehaviors       uint16 = 1 << 5
	MapPartVirtualMods        uint16 = 1 << 6
	MapPartVirtualModMap      uint16 = 1 << 7
)

// Request opcodes
const (
	useExtensionOpcode = 0
	selectEventsOpcode = 1
	getStateOpcode     = 4
)

// Event subtypes, found in the second byte of every XKB event.
const (
	NewKeyboardNotify = 0
	MapNotify         = 1
	StateNotify       = 2
)

// Init must be called before using the XKEYBOARD extension. It registers the
// event and error constructors for the extension's base codes.
func Init(c *xgb.Conn) error {
	reply, err := xproto.QueryExtension(c, uint16(len(extName)), extName).Reply()
	switch {
	case err != nil:
		return err
	case !reply.Present:
		return xgb.Errorf("No extension named XKEYBOARD could be found on on the server.")
	}

	c.ExtLock.Lock()
	c.Extensions[extName] = reply.MajorOpcode
	c.ExtLock.Unlock()

	// All XKB events share a single event code and are told apart by their
	// subtype byte.
	xgb.NewEventFuncs[int(reply.FirstEvent)] = NewEvent
	xgb.NewErrorFuncs[int(reply.FirstError)] = newKeyboardError
	return nil
}

// opcode returns the major opcode of the extension.
func opcode(c *xgb.Conn) byte {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	op, ok := c.Extensions[extName]
	if !ok {
		panic("Cannot issue XKEYBOARD request using the uninitialized extension. xkb.Init(connObj) must be called first.")
	}
	return op
}

// UseExtensionCookie is a cookie used only for UseExtension requests.
type UseExtensionCookie struct {
	*xgb.Cookie
}

// UseExtensionReply represents the data returned from a UseExtension request.
type UseExtensionReply struct {
	Sequence    uint16
	Length      uint32
	Supported   bool
	ServerMajor uint16
	ServerMinor uint16
}

// UseExtension sends a checked request.
func UseExtension(c *xgb.Conn, wantedMajor, wantedMinor uint16) UseExtensionCookie {
	cookie := c.NewCookie(true, true)
	c.NewRequest(useExtensionRequest(opcode(c), wantedMajor, wantedMinor), cookie)
	return UseExtensionCookie{cookie}
}

// Reply blocks and returns the reply data for a UseExtension request.
func (cook UseExtensionCookie) Reply() (*UseExtensionReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return useExtensionReply(buf), nil
}

func useExtensionReply(buf []byte) *UseExtensionReply {
	v := new(UseExtensionReply)
	v.Supported = buf[1] != 0
	v.Sequence = xgb.Get16(buf[2:])
	v.Length = xgb.Get32(buf[4:])
	v.ServerMajor = xgb.Get16(buf[8:])
	v.ServerMinor = xgb.Get16(buf[10:])
	return v
}

func useExtensionRequest(op byte, wantedMajor, wantedMinor uint16) []byte {
	size := 8
	buf := make([]byte, size)
	buf[0] = op
	buf[1] = useExtensionOpcode
	xgb.Put16(buf[2:], uint16(size/4))
	xgb.Put16(buf[4:], wantedMajor)
	xgb.Put16(buf[6:], wantedMinor)
	return buf
}

// SelectEventsCookie is a cookie used only for SelectEvents requests.
type SelectEventsCookie struct {
	*xgb.Cookie
}

// SelectEventsChecked sends a checked request. Every event type in
// affectWhich is selected with all of its details, and the map parts in
// affectMap are selected according to mapParts.
func SelectEventsChecked(c *xgb.Conn, deviceSpec, affectWhich, affectMap, mapParts uint16) SelectEventsCookie {
	cookie := c.NewCookie(true, false)
	c.NewRequest(selectEventsRequest(opcode(c), deviceSpec, affectWhich, affectMap, mapParts), cookie)
	return SelectEventsCookie{cookie}
}

// Check returns an error if one occurred.
func (cook SelectEventsCookie) Check() error {
	return cook.Cookie.Check()
}

func selectEventsRequest(op byte, deviceSpec, affectWhich, affectMap, mapParts uint16) []byte {
	size := 16
	buf := make([]byte, size)
	buf[0] = op
	buf[1] = selectEventsOpcode
	xgb.Put16(buf[2:], uint16(size/4))
	xgb.Put16(buf[4:], deviceSpec)
	xgb.Put16(buf[6:], affectWhich)
	xgb.Put16(buf[8:], 0)           // clear
	xgb.Put16(buf[10:], affectWhich) // selectAll
	xgb.Put16(buf[12:], affectMap)
	xgb.Put16(buf[14:], mapParts)
	return buf
}

// GetStateCookie is a cookie used only for GetState requests.
type GetStateCookie struct {
	*xgb.Cookie
}

// GetStateReply represents the data returned from a GetState request.
type GetStateReply struct {
	Sequence     uint16
	Length       uint32
	DeviceID     byte
	Mods         byte
	BaseMods     byte
	LatchedMods  byte
	LockedMods   byte
	Group        byte
	LockedGroup  byte
	BaseGroup    int16
	LatchedGroup int16
}

// GetState sends a checked request.
func GetState(c *xgb.Conn, deviceSpec uint16) GetStateCookie {
	cookie := c.NewCookie(true, true)
	c.NewRequest(getStateRequest(opcode(c), deviceSpec), cookie)
	return GetStateCookie{cookie}
}

// Reply blocks and returns the reply data for a GetState request.
func (cook GetStateCookie) Reply() (*GetStateReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return getStateReply(buf), nil
}

func getStateReply(buf []byte) *GetStateReply {
	v := new(GetStateReply)
	v.DeviceID = buf[1]
	v.Sequence = xgb.Get16(buf[2:])
	v.Length = xgb.Get32(buf[4:])
	v.Mods = buf[8]
	v.BaseMods = buf[9]
	v.LatchedMods = buf[10]
	v.LockedMods = buf[11]
	v.Group = buf[12]
	v.LockedGroup = buf[13]
	v.BaseGroup = int16(xgb.Get16(buf[14:]))
	v.LatchedGroup = int16(xgb.Get16(buf[16:]))
	return v
}

func getStateRequest(op byte, deviceSpec uint16) []byte {
	size := 8
	buf := make([]byte, size)
	buf[0] = op
	buf[1] = getStateOpcode
	xgb.Put16(buf[2:], uint16(size/4))
	xgb.Put16(buf[4:], deviceSpec)
	return buf
}

// KeyboardError is the error reported by the server for invalid XKB
// requests.
type KeyboardError struct {
	Sequence uint16
	Value    uint32
	MinorOp  uint16
	MajorOp  byte
}

func newKeyboardError(buf []byte) xgb.Error {
	v := KeyboardError{}
	v.Sequence = xgb.Get16(buf[2:])
	v.Value = xgb.Get32(buf[4:])
	v.MinorOp = xgb.Get16(buf[8:])
	v.MajorOp = buf[10]
	return v
}

func (err KeyboardError) SequenceId() uint16 { return err.Sequence }
func (err KeyboardError) BadId() uint32      { return err.Value }

func (err KeyboardError) Error() string {
	return xgb.Sprintf("BadKeyboard {Sequence: %d, Value: %d, MinorOp: %d, MajorOp: %d}",
		err.Sequence, err.Value, err.MinorOp, err.MajorOp)
}
