package xkb

import (
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequests(t *testing.T) {
	buf := useExtensionRequest(130, 1, 0)
	assert.Equal(t, []byte{130, 0, 2, 0, 1, 0, 0, 0}, buf)

	buf = selectEventsRequest(130, IDUseCoreKbd, EventTypeStateNotify|EventTypeMapNotify, MapPartKeySyms, MapPartKeySyms)
	require.Len(t, buf, 16)
	assert.Equal(t, uint16(4), xgb.Get16(buf[2:]))
	assert.Equal(t, IDUseCoreKbd, xgb.Get16(buf[4:]))
	assert.Equal(t, uint16(6), xgb.Get16(buf[6:]))
	assert.Equal(t, uint16(0), xgb.Get16(buf[8:]))
	assert.Equal(t, uint16(6), xgb.Get16(buf[10:]))
	assert.Equal(t, MapPartKeySyms, xgb.Get16(buf[14:]))

	buf = getStateRequest(130, IDUseCoreKbd)
	assert.Equal(t, []byte{130, 4, 2, 0, 0, 1, 0, 0}, buf)
}

func TestGetStateReply(t *testing.T) {
	buf := make([]byte, 32)
	buf[0] = 1
	buf[1] = 3
	buf[8] = 0x05
	buf[9] = 0x01
	buf[11] = 0x04
	buf[12] = 1
	xgb.Put16(buf[14:], 0xffff)
	reply := getStateReply(buf)
	assert.Equal(t, byte(3), reply.DeviceID)
	assert.Equal(t, byte(0x05), reply.Mods)
	assert.Equal(t, byte(0x01), reply.BaseMods)
	assert.Equal(t, byte(0x04), reply.LockedMods)
	assert.Equal(t, byte(1), reply.Group)
	assert.Equal(t, int16(-1), reply.BaseGroup)
}

func TestStateNotify(t *testing.T) {
	buf := make([]byte, 32)
	buf[1] = StateNotify
	xgb.Put16(buf[2:], 77)
	buf[8] = 3
	buf[9] = 0x11
	buf[10] = 0x01
	buf[11] = 0x00
	buf[12] = 0x10
	xgb.Put16(buf[16:], 2)
	buf[18] = 1
	buf[28] = 50

	ev, ok := NewEvent(buf).(StateNotifyEvent)
	require.True(t, ok)
	assert.Equal(t, uint16(77), ev.Sequence)
	assert.Equal(t, byte(3), ev.DeviceID)
	assert.Equal(t, byte(0x11), ev.Mods)
	assert.Equal(t, byte(0x01), ev.BaseMods)
	assert.Equal(t, byte(0x10), ev.LockedMods)
	assert.Equal(t, int16(2), ev.LatchedGroup)
	assert.Equal(t, byte(1), ev.LockedGroup)
	assert.Equal(t, xproto.Keycode(50), ev.Keycode)
}

func TestOtherEvents(t *testing.T) {
	buf := make([]byte, 32)
	buf[1] = MapNotify
	buf[8] = 3
	xgb.Put16(buf[10:], MapPartKeySyms)
	buf[12] = 8
	buf[13] = 255
	mev, ok := NewEvent(buf).(MapNotifyEvent)
	require.True(t, ok)
	assert.Equal(t, byte(3), mev.DeviceID)
	assert.Equal(t, MapPartKeySyms, mev.Changed)
	assert.Equal(t, xproto.Keycode(8), mev.MinKeycode)
	assert.Equal(t, xproto.Keycode(255), mev.MaxKeycode)

	buf = make([]byte, 32)
	buf[1] = NewKeyboardNotify
	buf[8] = 4
	buf[9] = 3
	nev, ok := NewEvent(buf).(NewKeyboardNotifyEvent)
	require.True(t, ok)
	assert.Equal(t, byte(4), nev.DeviceID)
	assert.Equal(t, byte(3), nev.OldDeviceID)

	buf = make([]byte, 32)
	buf[1] = 9
	_, ok = NewEvent(buf).(UnknownEvent)
	assert.True(t, ok)
}
