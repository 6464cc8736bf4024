package key

import "strings"

// Code identifies a physical key position. Values follow the USB HID usage
// table, so a Code describes where a key is and not what it produces.
type Code uint8

// Key codes
const (
	CodeNone           Code = 0
	CodeErrorRollOver  Code = 1
	CodePOSTFail       Code = 2
	CodeErrorUndefined Code = 3

	CodeA Code = iota
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ
	CodeN1
	CodeN2
	CodeN3
	CodeN4
	CodeN5
	CodeN6
	CodeN7
	CodeN8
	CodeN9
	CodeN0
	CodeEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpace
	CodeMinus
	CodeEquals
	CodeLeftBracket
	CodeRightBracket
	CodeBackslash
	CodeUKHash
	CodeSemicolon
	CodeQuote
	CodeGrave
	CodeComma
	CodePeriod
	CodeSlash
	CodeCapsLock
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodePrintScreen
	CodeScrollLock
	CodePause
	CodeInsert
	CodeHome
	CodePageUp
	CodeDelete
	CodeEnd
	CodePageDown
	CodeRight
	CodeLeft
	CodeDown
	CodeUp
	CodeKPNumLock
	CodeKPDivide
	CodeKPMultiply
	CodeKPSubtract
	CodeKPAdd
	CodeKPEnter
	CodeKP1
	CodeKP2
	CodeKP3
	CodeKP4
	CodeKP5
	CodeKP6
	CodeKP7
	CodeKP8
	CodeKP9
	CodeKP0
	CodeKPPeriod
	CodeUKBackslash
)

const (
	CodeKPEqual Code = 103 + iota
	CodeF13
	CodeF14
	CodeF15
	CodeF16
	CodeF17
	CodeF18
	CodeF19
	CodeF20
	CodeF21
	CodeF22
	CodeF23
	CodeF24
	CodeExecute
	CodeHelp
	CodeMenu
	CodeSelect
	CodeStop
	CodeAgain
	CodeUndo
	CodeCut
	CodeCopy
	CodePaste
	CodeFind
	CodeMute
	CodeVolumeUp
	CodeVolumeDown
	CodeLockingCapsLock
	CodeLockingNumLock
	CodeLockingScrollLock
	CodeKPComma
	CodeKPEqualSign
	CodeInternational1
	CodeInternational2
	CodeInternational3
	CodeInternational4
	CodeInternational5
	CodeInternational6
	CodeInternational7
	CodeInternational8
	CodeInternational9
	CodeLang1 // Hangul/English toggle
	CodeLang2 // Hanja conversion
	CodeLang3 // Katakana
	CodeLang4 // Hiragana
	CodeLang5 // Zenkaku/Hankaku
	CodeLang6
	CodeLang7
	CodeLang8
	CodeLang9
	CodeAltErase
	CodeSysReq
	CodeCancel
	CodeClear
	CodePrior
	CodeReturn
	CodeSeparator
	CodeOut
	CodeOper
	CodeClearAgain
	CodeCrSelProps
	CodeExSel
)

const (
	CodeKP00 Code = 176 + iota
	CodeKP000
	CodeThousandsSep
	CodeDecimalSep
	CodeCurrencyUnit
	CodeCurrencySubUnit
	CodeKPLeftParen
	CodeKPRightParen
	CodeKPLeftCurly
	CodeKPRightCurly
	CodeKPTab
	CodeKPBackspace
	CodeKPA
	CodeKPB
	CodeKPC
	CodeKPD
	CodeKPE
	CodeKPF
	CodeKPXor
	CodeKPPow
	CodeKPPercent
	CodeKPLeftAngle
	CodeKPRightAngle
	CodeKPBitAnd
	CodeKPLogicAnd
	CodeKPBitOr
	CodeKPLogicOr
	CodeKPColon
	CodeKPHash
	CodeKPSpace
	CodeKPAt
	CodeKPNot
	CodeKPMemStore
	CodeKPMemRecall
	CodeKPMemClear
	CodeKPMemAdd
	CodeKPMemSubtract
	CodeKPMemMultiply
	CodeKPMemDivide
	CodeKPPlusMinus
	CodeKPClear
	CodeKPClearEntry
	CodeKPBinary
	CodeKPOctal
	CodeKPDecimal
	CodeKPHexadecimal
)

const (
	CodeLeftCtrl Code = 224 + iota
	CodeLeftShift
	CodeLeftAlt
	CodeLeftSuper
	CodeRightCtrl
	CodeRightShift
	CodeRightAlt
	CodeRightSuper

	CodeUnknown Code = 255
)

// Names for each contiguous run of codes, in value order.
var (
	codeRunLow = []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
		"N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9", "N0",
		"Enter", "Escape", "Backspace", "Tab", "Space", "Minus", "Equals",
		"LeftBracket", "RightBracket", "Backslash", "UKHash", "Semicolon",
		"Quote", "Grave", "Comma", "Period", "Slash", "CapsLock",
		"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
		"PrintScreen", "ScrollLock", "Pause", "Insert", "Home", "PageUp",
		"Delete", "End", "PageDown", "Right", "Left", "Down", "Up",
		"KPNumLock", "KPDivide", "KPMultiply", "KPSubtract", "KPAdd", "KPEnter",
		"KP1", "KP2", "KP3", "KP4", "KP5", "KP6", "KP7", "KP8", "KP9", "KP0",
		"KPPeriod", "UKBackslash",
	}
	codeRunMid = []string{
		"KPEqual", "F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20",
		"F21", "F22", "F23", "F24", "Execute", "Help", "Menu", "Select",
		"Stop", "Again", "Undo", "Cut", "Copy", "Paste", "Find", "Mute",
		"VolumeUp", "VolumeDown", "LockingCapsLock", "LockingNumLock",
		"LockingScrollLock", "KPComma", "KPEqualSign",
		"International1", "International2", "International3",
		"International4", "International5", "International6",
		"International7", "International8", "International9",
		"Lang1", "Lang2", "Lang3", "Lang4", "Lang5", "Lang6", "Lang7",
		"Lang8", "Lang9", "AltErase", "SysReq", "Cancel", "Clear", "Prior",
		"Return", "Separator", "Out", "Oper", "ClearAgain", "CrSelProps",
		"ExSel",
	}
	codeRunKeypad = []string{
		"KP00", "KP000", "ThousandsSep", "DecimalSep", "CurrencyUnit",
		"CurrencySubUnit", "KPLeftParen", "KPRightParen", "KPLeftCurly",
		"KPRightCurly", "KPTab", "KPBackspace", "KPA", "KPB", "KPC", "KPD",
		"KPE", "KPF", "KPXor", "KPPow", "KPPercent", "KPLeftAngle",
		"KPRightAngle", "KPBitAnd", "KPLogicAnd", "KPBitOr", "KPLogicOr",
		"KPColon", "KPHash", "KPSpace", "KPAt", "KPNot", "KPMemStore",
		"KPMemRecall", "KPMemClear", "KPMemAdd", "KPMemSubtract",
		"KPMemMultiply", "KPMemDivide", "KPPlusMinus", "KPClear",
		"KPClearEntry", "KPBinary", "KPOctal", "KPDecimal", "KPHexadecimal",
	}
	codeRunMods = []string{
		"LeftCtrl", "LeftShift", "LeftAlt", "LeftSuper",
		"RightCtrl", "RightShift", "RightAlt", "RightSuper",
	}
)

// CodeName is an entry of the ordered code table.
type CodeName struct {
	Code Code
	Name string
}

var (
	codeTable  []CodeName
	codeByName map[string]Code
	codeNames  [256]string
)

func init() {
	add := func(c Code, name string) {
		codeTable = append(codeTable, CodeName{c, name})
	}
	add(CodeNone, "None")
	add(CodeErrorRollOver, "ErrorRollOver")
	add(CodePOSTFail, "POSTFail")
	add(CodeErrorUndefined, "ErrorUndefined")
	for i, name := range codeRunLow {
		add(CodeA+Code(i), name)
	}
	for i, name := range codeRunMid {
		add(CodeKPEqual+Code(i), name)
	}
	for i, name := range codeRunKeypad {
		add(CodeKP00+Code(i), name)
	}
	for i, name := range codeRunMods {
		add(CodeLeftCtrl+Code(i), name)
	}
	add(CodeUnknown, "Unknown")

	codeByName = make(map[string]Code, len(codeTable))
	for _, entry := range codeTable {
		codeNames[entry.Code] = entry.Name
		codeByName[strings.ToLower(entry.Name)] = entry.Code
	}
}

// Codes returns every named code in ascending order.
func Codes() []CodeName {
	out := make([]CodeName, len(codeTable))
	copy(out, codeTable)
	return out
}

// CodeCount returns the number of named codes.
func CodeCount() int {
	return len(codeTable)
}

// ParseCode returns the code with the given (case-insensitive) name.
func ParseCode(name string) (Code, bool) {
	c, ok := codeByName[strings.ToLower(name)]
	return c, ok
}

// String implements Stringer.
func (c Code) String() string {
	if name := codeNames[c]; name != "" {
		return name
	}
	return "Unknown"
}

// IsModifier returns whether the code is one of the eight modifier key
// positions.
func (c Code) IsModifier() bool {
	return c >= CodeLeftCtrl && c <= CodeRightSuper
}

// Mods returns the sided modifier bits associated with a modifier key
// position, or zero for any other code.
func (c Code) Mods() Mods {
	switch c {
	case CodeLeftCtrl:
		return LeftCtrl
	case CodeLeftShift:
		return LeftShift
	case CodeLeftAlt:
		return LeftAlt
	case CodeLeftSuper:
		return LeftSuper
	case CodeRightCtrl:
		return RightCtrl
	case CodeRightShift:
		return RightShift
	case CodeRightAlt:
		return RightAlt
	case CodeRightSuper:
		return RightSuper
	}
	return 0
}
