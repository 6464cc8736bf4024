package keyboard

import (
	"unicode"

	"github.com/jezek/xgb/xproto"
)

// X core modifier bits.
const (
	modShift   uint8 = xproto.ModMaskShift
	modLock    uint8 = xproto.ModMaskLock
	modControl uint8 = xproto.ModMaskControl
)

// lockMode describes how the Lock modifier affects keysym selection.
type lockMode int

const (
	lockNone lockMode = iota
	lockCaps
	lockShift
)

// Keymap is a compiled core keyboard mapping. It is immutable once compiled
// and replaced wholesale when the server reports a mapping change.
type Keymap struct {
	minKeycode xproto.Keycode
	perKeycode int
	keysyms    []uint32

	// Modifier masks discovered from the modifier mapping.
	numLock    uint8
	modeSwitch uint8
	level3     uint8
	lock       lockMode
}

// CompileKeymap builds a Keymap from the replies of GetKeyboardMapping and
// GetModifierMapping.
func CompileKeymap(minKeycode xproto.Keycode, perKeycode byte, keysyms []xproto.Keysym, perModifier byte, modKeycodes []xproto.Keycode) *Keymap {
	km := &Keymap{
		minKeycode: minKeycode,
		perKeycode: int(perKeycode),
		keysyms:    make([]uint32, len(keysyms)),
	}
	for i, sym := range keysyms {
		km.keysyms[i] = uint32(sym)
	}

	per := int(perModifier)
	for mod := 0; mod < 8 && per > 0; mod++ {
		if (mod+1)*per > len(modKeycodes) {
			break
		}
		mask := uint8(1) << mod
		for _, code := range modKeycodes[mod*per : (mod+1)*per] {
			if code == 0 {
				continue
			}
			for _, sym := range km.row(code) {
				switch sym {
				case xkNumLock:
					km.numLock |= mask
				case xkModeSwitch:
					km.modeSwitch |= mask
				case xkISOLevel3Shift:
					km.level3 |= mask
				case xkCapsLock:
					if mask == modLock {
						km.lock = lockCaps
					}
				case xkShiftLock:
					if mask == modLock && km.lock != lockCaps {
						km.lock = lockShift
					}
				}
			}
		}
	}
	return km
}

// row returns the keysyms bound to a keycode.
func (km *Keymap) row(code xproto.Keycode) []uint32 {
	idx := int(code) - int(km.minKeycode)
	if idx < 0 || km.perKeycode == 0 {
		return nil
	}
	start := idx * km.perKeycode
	end := start + km.perKeycode
	if end > len(km.keysyms) {
		return nil
	}
	return km.keysyms[start:end]
}

// Keysyms returns a copy of the keysyms bound to a keycode.
func (km *Keymap) Keysyms(code xproto.Keycode) []uint32 {
	return append([]uint32(nil), km.row(code)...)
}

// Keysym resolves the keysym produced by a keycode under the given effective
// modifier mask and group, following the core protocol's rules for groups,
// Shift, Lock and NumLock.
func (km *Keymap) Keysym(code xproto.Keycode, mods uint8, group int) uint32 {
	syms := km.row(code)
	if len(syms) == 0 {
		return xkNoSymbol
	}

	// Select the pair of columns to use.
	base := 0
	if km.level3 != 0 && mods&km.level3 != 0 && len(syms) > 4 && syms[4] != xkNoSymbol {
		base = 4
	} else if (group&1 == 1 || mods&km.modeSwitch != 0 && km.modeSwitch != 0) && len(syms) > 2 && syms[2] != xkNoSymbol {
		base = 2
	}
	first := syms[base]
	second := uint32(xkNoSymbol)
	if len(syms) > base+1 {
		second = syms[base+1]
	}
	if second == xkNoSymbol {
		lower, upper := convertCase(first)
		first, second = lower, upper
	}

	shift := mods&modShift != 0
	lock := mods&modLock != 0
	if mods&km.numLock != 0 && km.numLock != 0 && isKeypad(second) {
		if shift || lock && km.lock == lockShift {
			return first
		}
		return second
	}
	switch {
	case !shift && !lock:
		return first
	case !shift && lock && km.lock == lockCaps:
		_, upper := convertCase(first)
		return upper
	case shift && lock && km.lock == lockCaps:
		_, upper := convertCase(second)
		return upper
	case shift || lock && km.lock == lockShift:
		return second
	}
	return first
}

// isKeypad returns whether a keysym belongs to the keypad.
func isKeypad(sym uint32) bool {
	return sym >= xkKPSpace && sym <= xkKPEqual || sym >= 0x11000000 && sym <= 0x1100ffff
}

// convertCase returns the lowercase and uppercase forms of a keysym. Keysyms
// without case are returned unchanged in both positions.
func convertCase(sym uint32) (lower, upper uint32) {
	lower, upper = sym, sym

	// Unicode keysyms
	if sym&0xff000000 == 0x01000000 {
		r := rune(sym & 0x00ffffff)
		return 0x01000000 | uint32(unicode.ToLower(r)), 0x01000000 | uint32(unicode.ToUpper(r))
	}

	switch sym >> 8 {
	case 0: // Latin-1
		switch {
		case sym >= 'A' && sym <= 'Z':
			lower += 'a' - 'A'
		case sym >= 'a' && sym <= 'z':
			upper -= 'a' - 'A'
		case sym >= 0xc0 && sym <= 0xde && sym != 0xd7:
			lower += 0x20
		case sym >= 0xe0 && sym <= 0xfe && sym != 0xf7:
			upper -= 0x20
		}
	case 6: // Cyrillic
		switch {
		case sym >= 0x6b1 && sym <= 0x6bf:
			lower -= 0x10
		case sym >= 0x6a1 && sym <= 0x6af:
			upper += 0x10
		case sym >= 0x6e0 && sym <= 0x6ff:
			lower -= 0x20
		case sym >= 0x6c0 && sym <= 0x6df:
			upper += 0x20
		}
	case 7: // Greek
		switch {
		case sym >= 0x7c1 && sym <= 0x7d9:
			lower += 0x20
		case sym >= 0x7e1 && sym <= 0x7f9 && sym != 0x7f3:
			upper -= 0x20
		}
	}
	return lower, upper
}
