package xkb

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// NewEvent decodes an XKB event. The subtype byte selects the concrete event;
// unknown subtypes are returned as UnknownEvent so that the event loop keeps
// running.
func NewEvent(buf []byte) xgb.Event {
	switch buf[1] {
	case NewKeyboardNotify:
		return newKeyboardNotifyEvent(buf)
	case MapNotify:
		return mapNotifyEvent(buf)
	case StateNotify:
		return stateNotifyEvent(buf)
	}
	return UnknownEvent{XkbType: buf[1], Sequence: xgb.Get16(buf[2:]), buf: buf}
}

// NewKeyboardNotifyEvent is sent when the keyboard device changes.
type NewKeyboardNotifyEvent struct {
	XkbType       byte
	Sequence      uint16
	Time          xproto.Timestamp
	DeviceID      byte
	OldDeviceID   byte
	MinKeycode    xproto.Keycode
	MaxKeycode    xproto.Keycode
	OldMinKeycode xproto.Keycode
	OldMaxKeycode xproto.Keycode
	RequestMajor  byte
	RequestMinor  byte
	Changed       uint16
	buf           []byte
}

func newKeyboardNotifyEvent(buf []byte) NewKeyboardNotifyEvent {
	v := NewKeyboardNotifyEvent{buf: buf}
	v.XkbType = buf[1]
	v.Sequence = xgb.Get16(buf[2:])
	v.Time = xproto.Timestamp(xgb.Get32(buf[4:]))
	v.DeviceID = buf[8]
	v.OldDeviceID = buf[9]
	v.MinKeycode = xproto.Keycode(buf[10])
	v.MaxKeycode = xproto.Keycode(buf[11])
	v.OldMinKeycode = xproto.Keycode(buf[12])
	v.OldMaxKeycode = xproto.Keycode(buf[13])
	v.RequestMajor = buf[14]
	v.RequestMinor = buf[15]
	v.Changed = xgb.Get16(buf[16:])
	return v
}

func (v NewKeyboardNotifyEvent) Bytes() []byte      { return v.buf }
func (v NewKeyboardNotifyEvent) SequenceId() uint16 { return v.Sequence }

func (v NewKeyboardNotifyEvent) String() string {
	return xgb.Sprintf("NewKeyboardNotify {Sequence: %d, DeviceID: %d, OldDeviceID: %d, MinKeycode: %d, MaxKeycode: %d, Changed: %d}",
		v.Sequence, v.DeviceID, v.OldDeviceID, v.MinKeycode, v.MaxKeycode, v.Changed)
}

// MapNotifyEvent is sent when the keyboard mapping of a device changes.
type MapNotifyEvent struct {
	XkbType       byte
	Sequence      uint16
	Time          xproto.Timestamp
	DeviceID      byte
	PtrBtnActions byte
	Changed       uint16
	MinKeycode    xproto.Keycode
	MaxKeycode    xproto.Keycode
	buf           []byte
}

func mapNotifyEvent(buf []byte) MapNotifyEvent {
	v := MapNotifyEvent{buf: buf}
	v.XkbType = buf[1]
	v.Sequence = xgb.Get16(buf[2:])
	v.Time = xproto.Timestamp(xgb.Get32(buf[4:]))
	v.DeviceID = buf[8]
	v.PtrBtnActions = buf[9]
	v.Changed = xgb.Get16(buf[10:])
	v.MinKeycode = xproto.Keycode(buf[12])
	v.MaxKeycode = xproto.Keycode(buf[13])
	return v
}

func (v MapNotifyEvent) Bytes() []byte      { return v.buf }
func (v MapNotifyEvent) SequenceId() uint16 { return v.Sequence }

func (v MapNotifyEvent) String() string {
	return xgb.Sprintf("MapNotify {Sequence: %d, DeviceID: %d, Changed: %d, MinKeycode: %d, MaxKeycode: %d}",
		v.Sequence, v.DeviceID, v.Changed, v.MinKeycode, v.MaxKeycode)
}

// StateNotifyEvent is sent when the modifier or group state of a device
// changes.
type StateNotifyEvent struct {
	XkbType          byte
	Sequence         uint16
	Time             xproto.Timestamp
	DeviceID         byte
	Mods             byte
	BaseMods         byte
	LatchedMods      byte
	LockedMods       byte
	Group            byte
	BaseGroup        int16
	LatchedGroup     int16
	LockedGroup      byte
	CompatState      byte
	GrabMods         byte
	CompatGrabMods   byte
	LookupMods       byte
	CompatLookupMods byte
	PtrBtnState      uint16
	Changed          uint16
	Keycode          xproto.Keycode
	EventType        byte
	RequestMajor     byte
	RequestMinor     byte
	buf              []byte
}

func stateNotifyEvent(buf []byte) StateNotifyEvent {
	v := StateNotifyEvent{buf: buf}
	v.XkbType = buf[1]
	v.Sequence = xgb.Get16(buf[2:])
	v.Time = xproto.Timestamp(xgb.Get32(buf[4:]))
	v.DeviceID = buf[8]
	v.Mods = buf[9]
	v.BaseMods = buf[10]
	v.LatchedMods = buf[11]
	v.LockedMods = buf[12]
	v.Group = buf[13]
	v.BaseGroup = int16(xgb.Get16(buf[14:]))
	v.LatchedGroup = int16(xgb.Get16(buf[16:]))
	v.LockedGroup = buf[18]
	v.CompatState = buf[19]
	v.GrabMods = buf[20]
	v.CompatGrabMods = buf[21]
	v.LookupMods = buf[22]
	v.CompatLookupMods = buf[23]
	v.PtrBtnState = xgb.Get16(buf[24:])
	v.Changed = xgb.Get16(buf[26:])
	v.Keycode = xproto.Keycode(buf[28])
	v.EventType = buf[29]
	v.RequestMajor = buf[30]
	v.RequestMinor = buf[31]
	return v
}

func (v StateNotifyEvent) Bytes() []byte      { return v.buf }
func (v StateNotifyEvent) SequenceId() uint16 { return v.Sequence }

func (v StateNotifyEvent) String() string {
	return xgb.Sprintf("StateNotify {Sequence: %d, DeviceID: %d, Mods: %d, BaseMods: %d, LatchedMods: %d, LockedMods: %d, Group: %d}",
		v.Sequence, v.DeviceID, v.Mods, v.BaseMods, v.LatchedMods, v.LockedMods, v.Group)
}

// UnknownEvent is an XKB event with a subtype this package does not decode.
type UnknownEvent struct {
	XkbType  byte
	Sequence uint16
	buf      []byte
}

func (v UnknownEvent) Bytes() []byte { return v.buf }

func (v UnknownEvent) String() string {
	return xgb.Sprintf("XkbUnknown {XkbType: %d, Sequence: %d}", v.XkbType, v.Sequence)
}
