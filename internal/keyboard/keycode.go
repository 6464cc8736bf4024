package keyboard

import (
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/key"
)

// KeycodeTableVersion is bumped whenever an entry of the keycode table
// changes.
const KeycodeTableVersion = 2

// keycodeTable maps X keycodes (evdev scancode + 8) to physical key
// positions. Every entry not listed is CodeUnknown.
var keycodeTable = buildKeycodeTable()

func buildKeycodeTable() [256]key.Code {
	var t [256]key.Code
	for i := range t {
		t[i] = key.CodeUnknown
	}

	// Runs of consecutive keycodes.
	runs := []struct {
		first uint8
		codes []key.Code
	}{
		{9, []key.Code{
			key.CodeEscape,
			key.CodeN1, key.CodeN2, key.CodeN3, key.CodeN4, key.CodeN5,
			key.CodeN6, key.CodeN7, key.CodeN8, key.CodeN9, key.CodeN0,
			key.CodeMinus, key.CodeEquals, key.CodeBackspace, key.CodeTab,
			key.CodeQ, key.CodeW, key.CodeE, key.CodeR, key.CodeT,
			key.CodeY, key.CodeU, key.CodeI, key.CodeO, key.CodeP,
			key.CodeLeftBracket, key.CodeRightBracket, key.CodeEnter,
			key.CodeLeftCtrl,
			key.CodeA, key.CodeS, key.CodeD, key.CodeF, key.CodeG,
			key.CodeH, key.CodeJ, key.CodeK, key.CodeL,
			key.CodeSemicolon, key.CodeQuote, key.CodeGrave,
			key.CodeLeftShift, key.CodeUKHash,
			key.CodeZ, key.CodeX, key.CodeC, key.CodeV, key.CodeB,
			key.CodeN, key.CodeM,
			key.CodeComma, key.CodePeriod, key.CodeSlash,
			key.CodeRightShift, key.CodeKPMultiply, key.CodeLeftAlt,
			key.CodeSpace, key.CodeCapsLock,
			key.CodeF1, key.CodeF2, key.CodeF3, key.CodeF4, key.CodeF5,
			key.CodeF6, key.CodeF7, key.CodeF8, key.CodeF9, key.CodeF10,
			key.CodeKPNumLock, key.CodeScrollLock,
			key.CodeKP7, key.CodeKP8, key.CodeKP9, key.CodeKPSubtract,
			key.CodeKP4, key.CodeKP5, key.CodeKP6, key.CodeKPAdd,
			key.CodeKP1, key.CodeKP2, key.CodeKP3, key.CodeKP0,
			key.CodeKPPeriod,
		}},
		{94, []key.Code{key.CodeUKBackslash, key.CodeF11, key.CodeF12}},
		{98, []key.Code{key.CodeLang3, key.CodeLang4}},
		{104, []key.Code{
			key.CodeKPEnter, key.CodeRightCtrl, key.CodeKPDivide,
			key.CodePrintScreen, key.CodeRightAlt,
		}},
		{110, []key.Code{
			key.CodeHome, key.CodeUp, key.CodePageUp, key.CodeLeft,
			key.CodeRight, key.CodeEnd, key.CodeDown, key.CodePageDown,
			key.CodeInsert, key.CodeDelete,
		}},
		{121, []key.Code{key.CodeMute, key.CodeVolumeDown, key.CodeVolumeUp}},
		{125, []key.Code{key.CodeKPEqual, key.CodeKPPlusMinus, key.CodePause}},
		{129, []key.Code{key.CodeKPDecimal, key.CodeLang1, key.CodeLang2}},
		{133, []key.Code{key.CodeLeftSuper, key.CodeRightSuper, key.CodeMenu, key.CodeCancel, key.CodeAgain}},
	}
	for _, run := range runs {
		for i, code := range run.codes {
			t[int(run.first)+i] = code
		}
	}

	t[139] = key.CodeUndo
	t[141] = key.CodeCopy
	t[143] = key.CodePaste
	t[144] = key.CodeFind
	t[145] = key.CodeCut
	t[146] = key.CodeHelp
	return t
}

// LookupCode returns the physical key position for an X keycode. Keycodes
// outside of the table are logged and reported as CodeUnknown.
func LookupCode(raw uint32) key.Code {
	if raw >= uint32(len(keycodeTable)) {
		log.Warn("keycode %#x is out of bounds", raw)
		return key.CodeUnknown
	}
	return keycodeTable[raw]
}
