package keyboard

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesselslate/xwin/event"
	"github.com/tesselslate/xwin/key"
)

// X modifier masks used by the test keymap.
const (
	testShift   = 0x01
	testLock    = 0x02
	testControl = 0x04
	testMod2    = 0x10
	testMod5    = 0x80
)

// testKeymap builds a US-like keymap for a handful of keycodes.
func testKeymap() *Keymap {
	const per = 6
	rows := map[xproto.Keycode][]uint32{
		10:  {'1', '!'},
		24:  {'q', 'Q'},
		38:  {'a', 'A', 0x6c6, 0x6e6}, // second group: Cyrillic ef
		37:  {xkControlL},
		50:  {xkShiftL},
		62:  {xkShiftR},
		64:  {xkAltL, xkMetaL},
		66:  {xkCapsLock},
		67:  {xkF1},
		77:  {xkNumLock},
		87:  {xkKPEnd, 0xffb1},
		105: {xkControlR},
		108: {xkISOLevel3Shift},
		133: {xkSuperL},
		134: {xkSuperR},
		26:  {'e', 'E', 'e', 'E', 0x20ac},
	}
	keysyms := make([]xproto.Keysym, (256-8)*per)
	for code, row := range rows {
		for i, sym := range row {
			keysyms[(int(code)-8)*per+i] = xproto.Keysym(sym)
		}
	}
	modmap := []xproto.Keycode{
		50, 62,   // shift
		66, 0,    // lock
		37, 105,  // control
		64, 0,    // mod1
		77, 0,    // mod2
		0, 0,     // mod3
		133, 134, // mod4
		108, 0,   // mod5
	}
	return CompileKeymap(8, per, keysyms, 2, modmap)
}

func TestKeycodeTable(t *testing.T) {
	for raw := uint32(0); raw < 256; raw++ {
		code := LookupCode(raw)
		assert.NotEmpty(t, code.String(), "keycode %d", raw)
	}
	assert.Equal(t, key.CodeUnknown, LookupCode(0))
	assert.Equal(t, key.CodeUnknown, LookupCode(256))
	assert.Equal(t, key.CodeUnknown, LookupCode(1000))

	known := map[uint32]key.Code{
		9:   key.CodeEscape,
		19:  key.CodeN0,
		36:  key.CodeEnter,
		38:  key.CodeA,
		65:  key.CodeSpace,
		91:  key.CodeKPPeriod,
		96:  key.CodeF12,
		108: key.CodeRightAlt,
		119: key.CodeDelete,
		133: key.CodeLeftSuper,
		134: key.CodeRightSuper,
		135: key.CodeMenu,
		146: key.CodeHelp,
		147: key.CodeUnknown,
	}
	for raw, code := range known {
		assert.Equal(t, code, LookupCode(raw), "keycode %d", raw)
	}
}

func TestLookupSym(t *testing.T) {
	for c := uint32('a'); c <= 'z'; c++ {
		assert.Equal(t, LookupSym(c-0x20), LookupSym(c))
		assert.Equal(t, key.SymA+key.Sym(c-'a'), LookupSym(c))
	}
	for n := uint32(0); n < 24; n++ {
		assert.Equal(t, key.SymF1+key.Sym(n), LookupSym(xkF1+n))
	}
	for d := uint32(0); d < 10; d++ {
		assert.Equal(t, key.SymKP0+key.Sym(d), LookupSym(xkKP0+d))
	}

	tests := map[uint32]key.Sym{
		' ':                key.SymSpace,
		'~':                key.SymAsciitilde,
		xkClear:            key.SymDelete,
		xkShiftLock:        key.SymShift,
		xkISOLevel3Shift:   key.SymRightAlt,
		xkPrior:            key.SymPageUp,
		xkSunSysReq:        key.SymSysRq,
		xkHPBackTab:        key.SymLeftTab,
		xkSunF36:           key.SymF11,
		xkDeadGrave:        key.SymDeadGrave,
		xkDeadCurrency:     key.SymDeadCurrency,
		xkDeadLowline:      key.SymDeadLowline,
		xkDeadSmallA:       key.SymDeadSmallA,
		xkDeadCapitalSchwa: key.SymDeadCapitalSchwa,
		xf86(0x32):         key.SymLaunchMedia,
		xf86(0x19):         key.SymLaunchMail,
		xf86(0x55):         key.SymClear,
		xf86(0x4f):         key.SymLaunchF,
		0x7f:               key.SymUnknown,
		0x12345:            key.SymUnknown,
	}
	for xsym, sym := range tests {
		assert.Equal(t, sym, LookupSym(xsym), "keysym %#x", xsym)
	}
}

func TestKeymapModifiers(t *testing.T) {
	km := testKeymap()
	assert.Equal(t, uint8(testMod2), km.numLock)
	assert.Equal(t, uint8(testMod5), km.level3)
	assert.Equal(t, uint8(0), km.modeSwitch)
	assert.Equal(t, lockCaps, km.lock)
}

func TestKeysymResolution(t *testing.T) {
	km := testKeymap()
	tests := []struct {
		code  xproto.Keycode
		mods  uint8
		group int
		want  uint32
	}{
		{38, 0, 0, 'a'},
		{38, testShift, 0, 'A'},
		{38, testLock, 0, 'A'},
		{38, testShift | testLock, 0, 'A'},
		{10, testLock, 0, '1'},
		{10, testShift, 0, '!'},
		{38, 0, 1, 0x6c6},
		{38, testShift, 1, 0x6e6},
		{87, 0, 0, xkKPEnd},
		{87, testMod2, 0, 0xffb1},
		{87, testMod2 | testShift, 0, xkKPEnd},
		{26, testMod5, 0, 0x20ac},
		{200, 0, 0, xkNoSymbol},
		{3, 0, 0, xkNoSymbol},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.Keysym(tt.code, tt.mods, tt.group), "keycode %d mods %#x group %d", tt.code, tt.mods, tt.group)
	}
}

func TestTranslate(t *testing.T) {
	kb := NewWithKeymap(3, testKeymap())
	assert.Equal(t, byte(3), kb.DeviceID())
	assert.Nil(t, kb.Reload())

	ev := kb.Translate(38, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymA, Code: key.CodeA, Text: "a"}, ev)
	ev = kb.Translate(38, false)
	assert.Equal(t, event.KeyRelease{Sym: key.SymA, Code: key.CodeA}, ev)

	kb.UpdateState(testShift, 0, 0, 0, 0, 0)
	ev = kb.Translate(38, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymA, Code: key.CodeA, Text: "A"}, ev)

	kb.UpdateState(0, 0, testControl, 0, 0, 0)
	ev = kb.Translate(38, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymA, Code: key.CodeA, Text: "\x01"}, ev)

	kb.UpdateState(0, 0, 0, 0, 0, 1)
	ev = kb.Translate(38, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymUnknown, Code: key.CodeA, Text: "ф"}, ev)

	kb.UpdateState(0, 0, 0, 0, 0, 0)
	ev = kb.Translate(67, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymF1, Code: key.CodeF1}, ev)
	ev = kb.Translate(87, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymKPEnd, Code: key.CodeKP1}, ev)
	kb.UpdateState(0, 0, testMod2, 0, 0, 0)
	ev = kb.Translate(87, true)
	assert.Equal(t, event.KeyPress{Sym: key.SymKP1, Code: key.CodeKP1, Text: "1"}, ev)
}

func TestModifierRoundTrip(t *testing.T) {
	kb := NewWithKeymap(3, testKeymap())
	require.Equal(t, key.Mods(0), kb.Mods())

	kb.Translate(37, true)
	assert.Equal(t, key.LeftCtrl, kb.Mods())
	kb.Translate(37, true)
	assert.Equal(t, key.LeftCtrl, kb.Mods())

	kb.Translate(62, true)
	assert.Equal(t, key.LeftCtrl|key.RightShift, kb.Mods())
	assert.True(t, kb.Mods().HasAll(key.ModCtrl|key.ModShift))

	kb.Translate(62, false)
	assert.Equal(t, key.LeftCtrl, kb.Mods())
	kb.Translate(37, false)
	assert.Equal(t, key.Mods(0), kb.Mods())

	for _, raw := range []xproto.Keycode{37, 50, 64, 133, 105, 62, 108, 134} {
		kb.Translate(raw, true)
		assert.NotZero(t, kb.Mods(), "keycode %d", raw)
		kb.Translate(raw, false)
		assert.Zero(t, kb.Mods(), "keycode %d", raw)
	}

	// Regular keys leave the held modifiers alone.
	kb.Translate(64, true)
	kb.Translate(38, true)
	kb.Translate(38, false)
	assert.Equal(t, key.LeftAlt, kb.Mods())
}

func TestText(t *testing.T) {
	tests := map[uint32]string{
		'a':                  "a",
		0xe9:                 "é",
		0x1a1:                "Ą",
		0x2a1:                "Ħ",
		0x3a2:                "ĸ",
		0x5c7:                "ا",
		0x6c1:                "а",
		0x7e1:                "α",
		0x7a1:                "",
		0xce0:                "א",
		xkEuroSign:           "€",
		0x01000000 | 0x263a: "☺",
		xkReturn:             "\r",
		xkEscape:             "\x1b",
		xkBackSpace:          "\b",
		xkDelete:             "\x7f",
		xkKP0 + 7:            "7",
		xkKPDivide:           "/",
		xkLeft:               "",
		xkShiftL:             "",
	}
	for sym, want := range tests {
		assert.Equal(t, want, keysymText(sym, false), "keysym %#x", sym)
	}

	ctrl := map[uint32]string{
		'a': "\x01",
		'[': "\x1b",
		' ': "\x00",
		'2': "\x00",
		'3': "\x1b",
		'7': "\x1f",
		'8': "\x7f",
		'/': "\x1f",
		'1': "1",
	}
	for sym, want := range ctrl {
		assert.Equal(t, want, keysymText(sym, true), "keysym %#x", sym)
	}
}

func TestConvertCase(t *testing.T) {
	lower, upper := convertCase('q')
	assert.Equal(t, uint32('q'), lower)
	assert.Equal(t, uint32('Q'), upper)

	lower, upper = convertCase(0xc9)
	assert.Equal(t, uint32(0xe9), lower)
	assert.Equal(t, uint32(0xc9), upper)

	lower, upper = convertCase(0x01000000 | 'ж')
	assert.Equal(t, uint32(0x01000000|'ж'), lower)
	assert.Equal(t, uint32(0x01000000|'Ж'), upper)

	lower, upper = convertCase(xkF1)
	assert.Equal(t, uint32(xkF1), lower)
	assert.Equal(t, uint32(xkF1), upper)
}
