package keyboard

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Legacy keysym sets whose low byte matches a single-byte character set.
var legacyCharsets = map[uint32]*charmap.Charmap{
	0x1: charmap.ISO8859_2, // Latin-2
	0x2: charmap.ISO8859_3, // Latin-3
	0x3: charmap.ISO8859_4, // Latin-4
	0x5: charmap.ISO8859_6, // Arabic
	0x6: charmap.KOI8U,     // Cyrillic
	0x7: charmap.ISO8859_7, // Greek
	0xc: charmap.ISO8859_8, // Hebrew
}

// Keypad keysyms which produce text.
var keypadRunes = map[uint32]rune{
	xkKPSpace:     ' ',
	xkKPTab:       '\t',
	xkKPEnter:     '\r',
	xkKPEqual:     '=',
	xkKPMultiply:  '*',
	xkKPAdd:       '+',
	xkKPSeparator: ',',
	xkKPSubtract:  '-',
	xkKPDecimal:   '.',
	xkKPDivide:    '/',
}

// keysymRune returns the character produced by a keysym.
func keysymRune(sym uint32) (rune, bool) {
	switch {
	case sym >= 0x20 && sym <= 0x7e, sym >= 0xa0 && sym <= 0xff:
		return rune(sym), true
	case sym&0xff000000 == 0x01000000:
		r := rune(sym & 0x00ffffff)
		return r, utf8.ValidRune(r)
	case sym == xkEuroSign:
		return '€', true
	case sym >= xkBackSpace && sym <= xkClear, sym == xkReturn, sym == xkEscape:
		return rune(sym & 0x7f), true
	case sym == xkDelete:
		return 0x7f, true
	case sym >= xkKP0 && sym <= xkKP9:
		return rune('0' + sym - xkKP0), true
	}
	if r, ok := keypadRunes[sym]; ok {
		return r, true
	}

	// Legacy sets. Greek accented capitals (0x7a1 - 0x7bb) do not follow the
	// ISO 8859-7 layout and are skipped.
	if cm, ok := legacyCharsets[sym>>8]; ok && sym&0xff >= 0xa0 {
		if sym>>8 == 0x7 && sym < 0x7c1 {
			return 0, false
		}
		r := cm.DecodeByte(byte(sym))
		return r, r != utf8.RuneError
	}
	return 0, false
}

// controlRune applies the Control transformation to a character.
func controlRune(r rune) rune {
	switch {
	case r >= '@' && r < '\x7f', r == ' ':
		return r & 0x1f
	case r == '2':
		return 0
	case r >= '3' && r <= '7':
		return r - ('3' - '\x1b')
	case r == '8':
		return 0x7f
	case r == '/':
		return 0x1f
	}
	return r
}

// keysymText returns the UTF-8 text produced by a keysym, or an empty string
// if it produces none.
func keysymText(sym uint32, ctrl bool) string {
	r, ok := keysymRune(sym)
	if !ok {
		return ""
	}
	if ctrl {
		r = controlRune(r)
	}
	return string(r)
}
