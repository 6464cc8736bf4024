package key

import (
	"fmt"
	"strings"
)

// Sym identifies the logical meaning of a key given the current layout and
// modifier state. The value space is split into disjoint ranges, tagged by
// the high bits, so that the category of a Sym can be read from its value.
type Sym uint32

// Range tags and modifier bits
const (
	SymControlMask Sym = 0x8000_0000
	SymKPMask      Sym = 0x4000_0000
	SymMediaMask   Sym = 0x2000_0000
	SymModsMask    Sym = 0x0080_0000

	SymCtrlMask  Sym = 0x0001_0000
	SymShiftMask Sym = 0x0002_0000
	SymMetaMask  Sym = 0x0004_0000
	SymAltMask   Sym = 0x0008_0000
	SymSuperMask Sym = 0x0010_0000
	SymLeftMask  Sym = 0x0020_0000
	SymRightMask Sym = 0x0040_0000

	SymLatin1SmallMask Sym = 0x0000_0020
)

const (
	SymNone    Sym = 0
	SymUnknown Sym = 0x0000_ffdf
)

// Control range
const (
	SymEscape Sym = SymControlMask | (iota + 1)
	SymTab
	SymLeftTab
	SymBackspace
	SymReturn
	SymDelete
	SymSysRq
	SymPause
	SymClear
	SymCapsLock
	SymNumLock
	SymScrollLock
	SymLeft
	SymUp
	SymRight
	SymDown
	SymPageUp
	SymPageDown
	SymHome
	SymEnd
	SymPrint
	SymInsert
	SymMenu
	SymHelp
	SymBreak
	SymF1
	SymF2
	SymF3
	SymF4
	SymF5
	SymF6
	SymF7
	SymF8
	SymF9
	SymF10
	SymF11
	SymF12
	SymF13
	SymF14
	SymF15
	SymF16
	SymF17
	SymF18
	SymF19
	SymF20
	SymF21
	SymF22
	SymF23
	SymF24
)

// Keypad range
const (
	SymKPEnter Sym = SymKPMask | (iota + 1)
	SymKPDelete
	SymKPHome
	SymKPBegin
	SymKPEnd
	SymKPPageUp
	SymKPPageDown
	SymKPUp
	SymKPDown
	SymKPLeft
	SymKPRight
	SymKPEqual
	SymKPMultiply
	SymKPAdd
	SymKPDivide
	SymKPSubtract
	SymKPDecimal
	SymKPSeparator
	SymKP0
	SymKP1
	SymKP2
	SymKP3
	SymKP4
	SymKP5
	SymKP6
	SymKP7
	SymKP8
	SymKP9
)

// Modifier range: dead keys and mode switch
const (
	SymDeadGrave Sym = SymModsMask | (iota + 1)
	SymDeadAcute
	SymDeadCircumflex
	SymDeadTilde
	SymDeadMacron
	SymDeadBreve
	SymDeadAbovedot
	SymDeadDiaeresis
	SymDeadAbovering
	SymDeadDoubleacute
	SymDeadCaron
	SymDeadCedilla
	SymDeadOgonek
	SymDeadIota
	SymDeadVoicedSound
	SymDeadSemivoicedSound
	SymDeadBelowdot
	SymDeadHook
	SymDeadHorn
	SymDeadStroke
	SymDeadAbovecomma
	SymDeadAbovereversedcomma
	SymDeadDoublegrave
	SymDeadBelowring
	SymDeadBelowmacron
	SymDeadBelowcircumflex
	SymDeadBelowtilde
	SymDeadBelowbreve
	SymDeadBelowdiaeresis
	SymDeadInvertedbreve
	SymDeadBelowcomma
	SymDeadCurrency
	SymDeadLowline
	SymDeadAboveverticalline
	SymDeadBelowverticalline
	SymDeadLongsolidusoverlay
	SymDeadSmallA
	SymDeadCapitalA
	SymDeadSmallE
	SymDeadCapitalE
	SymDeadSmallI
	SymDeadCapitalI
	SymDeadSmallO
	SymDeadCapitalO
	SymDeadSmallU
	SymDeadCapitalU
	SymDeadSmallSchwa
	SymDeadCapitalSchwa
	SymModeSwitch
)

// Modifier range: modifier keys
const (
	SymLeftCtrl   = SymCtrlMask | SymLeftMask | SymModsMask
	SymRightCtrl  = SymCtrlMask | SymRightMask | SymModsMask
	SymLeftShift  = SymShiftMask | SymLeftMask | SymModsMask
	SymRightShift = SymShiftMask | SymRightMask | SymModsMask
	SymLeftMeta   = SymMetaMask | SymLeftMask | SymModsMask
	SymRightMeta  = SymMetaMask | SymRightMask | SymModsMask
	SymLeftAlt    = SymAltMask | SymLeftMask | SymModsMask
	SymRightAlt   = SymAltMask | SymRightMask | SymModsMask
	SymLeftSuper  = SymSuperMask | SymLeftMask | SymModsMask
	SymRightSuper = SymSuperMask | SymRightMask | SymModsMask

	SymCtrl  = SymCtrlMask | SymLeftMask | SymRightMask | SymModsMask
	SymShift = SymShiftMask | SymLeftMask | SymRightMask | SymModsMask
	SymMeta  = SymMetaMask | SymLeftMask | SymRightMask | SymModsMask
	SymAlt   = SymAltMask | SymLeftMask | SymRightMask | SymModsMask
	SymSuper = SymSuperMask | SymLeftMask | SymRightMask | SymModsMask
)

// Latin-1 range. Letters only exist in their uppercase form; case is
// conveyed by modifier state and by the text of key press events.
const (
	SymSpace Sym = 0x20 + iota
	SymExclam
	SymQuotedbl
	SymNumbersign
	SymDollar
	SymPercent
	SymAmpersand
	SymApostrophe
	SymParenleft
	SymParenright
	SymAsterisk
	SymPlus
	SymComma
	SymMinus
	SymPeriod
	SymSlash
	SymD0
	SymD1
	SymD2
	SymD3
	SymD4
	SymD5
	SymD6
	SymD7
	SymD8
	SymD9
	SymColon
	SymSemicolon
	SymLess
	SymEqual
	SymGreater
	SymQuestion
	SymAt
	SymA
	SymB
	SymC
	SymD
	SymE
	SymF
	SymG
	SymH
	SymI
	SymJ
	SymK
	SymL
	SymM
	SymN
	SymO
	SymP
	SymQ
	SymR
	SymS
	SymT
	SymU
	SymV
	SymW
	SymX
	SymY
	SymZ
	SymBracketleft
	SymBackslash
	SymBracketright
	SymAsciicircum
	SymUnderscore
	SymGrave
)

const (
	SymBraceleft Sym = 0x7b + iota
	SymBar
	SymBraceright
	SymAsciitilde
)

// Media range
const (
	SymBack Sym = SymMediaMask | (iota + 1)
	SymForward
	SymStop
	SymRefresh
	SymVolumeDown
	SymVolumeMute
	SymVolumeUp
	SymBassBoost
	SymBassUp
	SymBassDown
	SymTrebleUp
	SymTrebleDown
	SymMediaPlay
	SymMediaStop
	SymMediaPrevious
	SymMediaNext
	SymMediaRecord
	SymMediaPause
	SymMediaTogglePlayPause
	SymHomePage
	SymFavorites
	SymSearch
	SymStandby
	SymOpenURL
	SymMyComputer
	SymLaunchMail
	SymLaunchMedia
	SymLaunch0
	SymLaunch1
	SymLaunch2
	SymLaunch3
	SymLaunch4
	SymLaunch5
	SymLaunch6
	SymLaunch7
	SymLaunch8
	SymLaunch9
	SymLaunchA
	SymLaunchB
	SymLaunchC
	SymLaunchD
	SymLaunchE
	SymLaunchF
	SymMonBrightnessUp
	SymMonBrightnessDown
	SymKeyboardLightOnOff
	SymKeyboardBrightnessUp
	SymKeyboardBrightnessDown
	SymPowerOff
	SymWakeUp
	SymEject
	SymScreenSaver
	SymWWW
	SymMemo
	SymLightBulb
	SymShop
	SymHistory
	SymAddFavorite
	SymHotLinks
	SymBrightnessAdjust
	SymFinance
	SymCommunity
	SymAudioRewind
	SymBackForward
	SymApplicationLeft
	SymApplicationRight
	SymBook
	SymCD
	SymCalculator
	SymToDoList
	SymClearGrab
	SymClose
	SymCopy
	SymCut
	SymDisplay
	SymDOS
	SymDocuments
	SymExcel
	SymExplorer
	SymGame
	SymGo
	SymITouch
	SymLogOff
	SymMarket
	SymMeeting
	SymMenuKB
	SymMenuPB
	SymMySites
	SymNews
	SymOfficeHome
	SymOption
	SymPaste
	SymPhone
	SymCalendar
	SymReply
	SymReload
	SymRotateWindows
	SymRotationPB
	SymRotationKB
	SymSave
	SymSend
	SymSpell
	SymSplitScreen
	SymSupport
	SymTaskPane
	SymTerminal
	SymTools
	SymTravel
	SymVideo
	SymWord
	SymXfer
	SymZoomIn
	SymZoomOut
	SymAway
	SymMessenger
	SymWebCam
	SymMailForward
	SymPictures
	SymMusic
	SymBattery
	SymBluetooth
	SymWLAN
	SymUWB
	SymAudioForward
	SymAudioRepeat
	SymAudioRandomPlay
	SymSubtitle
	SymAudioCycleTrack
	SymTime
	SymHibernate
	SymView
	SymTopMenu
	SymPowerDown
	SymSuspend
	SymContrastAdjust
	SymLaunchG
	SymLaunchH
	SymTouchpadToggle
	SymTouchpadOn
	SymTouchpadOff
	SymMicMute
	SymRed
	SymGreen
	SymYellow
	SymBlue
	SymChannelUp
	SymChannelDown
	SymGuide
	SymInfo
	SymSettings
	SymMicVolumeUp
	SymMicVolumeDown
	SymNew
	SymOpen
	SymFind
	SymUndo
	SymRedo
	SymMediaLast
	SymSelect
	SymYes
	SymNo
	SymCancel
	SymPrinter
	SymExecute
	SymSleep
	SymPlay
	SymZoom
	SymExit
	SymContext1
	SymContext2
	SymContext3
	SymContext4
	SymCall
	SymHangup
	SymFlip
	SymToggleCallHangup
	SymVoiceDial
	SymLastNumberRedial
	SymCamera
	SymCameraFocus
)

// Names for each contiguous run of syms, in value order.
var (
	symRunControl = []string{
		"Escape", "Tab", "LeftTab", "Backspace", "Return", "Delete", "SysRq",
		"Pause", "Clear", "CapsLock", "NumLock", "ScrollLock", "Left", "Up",
		"Right", "Down", "PageUp", "PageDown", "Home", "End", "Print",
		"Insert", "Menu", "Help", "Break",
		"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11",
		"F12", "F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20",
		"F21", "F22", "F23", "F24",
	}
	symRunKeypad = []string{
		"KPEnter", "KPDelete", "KPHome", "KPBegin", "KPEnd", "KPPageUp",
		"KPPageDown", "KPUp", "KPDown", "KPLeft", "KPRight", "KPEqual",
		"KPMultiply", "KPAdd", "KPDivide", "KPSubtract", "KPDecimal",
		"KPSeparator", "KP0", "KP1", "KP2", "KP3", "KP4", "KP5", "KP6",
		"KP7", "KP8", "KP9",
	}
	symRunDead = []string{
		"DeadGrave", "DeadAcute", "DeadCircumflex", "DeadTilde",
		"DeadMacron", "DeadBreve", "DeadAbovedot", "DeadDiaeresis",
		"DeadAbovering", "DeadDoubleacute", "DeadCaron", "DeadCedilla",
		"DeadOgonek", "DeadIota", "DeadVoicedSound", "DeadSemivoicedSound",
		"DeadBelowdot", "DeadHook", "DeadHorn", "DeadStroke",
		"DeadAbovecomma", "DeadAbovereversedcomma", "DeadDoublegrave",
		"DeadBelowring", "DeadBelowmacron", "DeadBelowcircumflex",
		"DeadBelowtilde", "DeadBelowbreve", "DeadBelowdiaeresis",
		"DeadInvertedbreve", "DeadBelowcomma", "DeadCurrency",
		"DeadLowline", "DeadAboveverticalline", "DeadBelowverticalline",
		"DeadLongsolidusoverlay", "DeadSmallA", "DeadCapitalA", "DeadSmallE",
		"DeadCapitalE", "DeadSmallI", "DeadCapitalI", "DeadSmallO",
		"DeadCapitalO", "DeadSmallU", "DeadCapitalU", "DeadSmallSchwa",
		"DeadCapitalSchwa", "ModeSwitch",
	}
	symModifiers = []SymName{
		{SymLeftCtrl, "LeftCtrl"},
		{SymRightCtrl, "RightCtrl"},
		{SymLeftShift, "LeftShift"},
		{SymRightShift, "RightShift"},
		{SymLeftMeta, "LeftMeta"},
		{SymRightMeta, "RightMeta"},
		{SymLeftAlt, "LeftAlt"},
		{SymRightAlt, "RightAlt"},
		{SymLeftSuper, "LeftSuper"},
		{SymRightSuper, "RightSuper"},
		{SymCtrl, "Ctrl"},
		{SymShift, "Shift"},
		{SymMeta, "Meta"},
		{SymAlt, "Alt"},
		{SymSuper, "Super"},
	}
	symRunLatin1 = []string{
		"Space", "Exclam", "Quotedbl", "Numbersign", "Dollar", "Percent",
		"Ampersand", "Apostrophe", "Parenleft", "Parenright", "Asterisk",
		"Plus", "Comma", "Minus", "Period", "Slash",
		"D0", "D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9",
		"Colon", "Semicolon", "Less", "Equal", "Greater", "Question", "At",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
		"Bracketleft", "Backslash", "Bracketright", "Asciicircum",
		"Underscore", "Grave",
	}
	symRunLatin1High = []string{
		"Braceleft", "Bar", "Braceright", "Asciitilde",
	}
	symRunMedia = []string{
		"Back", "Forward", "Stop", "Refresh", "VolumeDown", "VolumeMute",
		"VolumeUp", "BassBoost", "BassUp", "BassDown", "TrebleUp",
		"TrebleDown", "MediaPlay", "MediaStop", "MediaPrevious", "MediaNext",
		"MediaRecord", "MediaPause", "MediaTogglePlayPause", "HomePage",
		"Favorites", "Search", "Standby", "OpenURL", "MyComputer",
		"LaunchMail", "LaunchMedia", "Launch0", "Launch1", "Launch2",
		"Launch3", "Launch4", "Launch5", "Launch6", "Launch7", "Launch8",
		"Launch9", "LaunchA", "LaunchB", "LaunchC", "LaunchD", "LaunchE",
		"LaunchF", "MonBrightnessUp", "MonBrightnessDown",
		"KeyboardLightOnOff", "KeyboardBrightnessUp",
		"KeyboardBrightnessDown", "PowerOff", "WakeUp", "Eject",
		"ScreenSaver", "WWW", "Memo", "LightBulb", "Shop", "History",
		"AddFavorite", "HotLinks", "BrightnessAdjust", "Finance",
		"Community", "AudioRewind", "BackForward", "ApplicationLeft",
		"ApplicationRight", "Book", "CD", "Calculator", "ToDoList",
		"ClearGrab", "Close", "Copy", "Cut", "Display", "DOS", "Documents",
		"Excel", "Explorer", "Game", "Go", "iTouch", "LogOff", "Market",
		"Meeting", "MenuKB", "MenuPB", "MySites", "News", "OfficeHome",
		"Option", "Paste", "Phone", "Calendar", "Reply", "Reload",
		"RotateWindows", "RotationPB", "RotationKB", "Save", "Send", "Spell",
		"SplitScreen", "Support", "TaskPane", "Terminal", "Tools", "Travel",
		"Video", "Word", "Xfer", "ZoomIn", "ZoomOut", "Away", "Messenger",
		"WebCam", "MailForward", "Pictures", "Music", "Battery", "Bluetooth",
		"WLAN", "UWB", "AudioForward", "AudioRepeat", "AudioRandomPlay",
		"Subtitle", "AudioCycleTrack", "Time", "Hibernate", "View",
		"TopMenu", "PowerDown", "Suspend", "ContrastAdjust", "LaunchG",
		"LaunchH", "TouchpadToggle", "TouchpadOn", "TouchpadOff", "MicMute",
		"Red", "Green", "Yellow", "Blue", "ChannelUp", "ChannelDown",
		"Guide", "Info", "Settings", "MicVolumeUp", "MicVolumeDown", "New",
		"Open", "Find", "Undo", "Redo", "MediaLast", "Select", "Yes", "No",
		"Cancel", "Printer", "Execute", "Sleep", "Play", "Zoom", "Exit",
		"Context1", "Context2", "Context3", "Context4", "Call", "Hangup",
		"Flip", "ToggleCallHangup", "VoiceDial", "LastNumberRedial",
		"Camera", "CameraFocus",
	}
)

// SymName is an entry of the ordered sym table.
type SymName struct {
	Sym  Sym
	Name string
}

var (
	symTable  []SymName
	symNames  map[Sym]string
	symByName map[string]Sym
)

func init() {
	run := func(first Sym, names []string) {
		for i, name := range names {
			symTable = append(symTable, SymName{first + Sym(i), name})
		}
	}
	symTable = append(symTable, SymName{SymNone, "None"})
	run(SymSpace, symRunLatin1)
	run(SymBraceleft, symRunLatin1High)
	symTable = append(symTable, SymName{SymUnknown, "Unknown"})
	run(SymDeadGrave, symRunDead)
	symTable = append(symTable, symModifiers...)
	run(SymBack, symRunMedia)
	run(SymKPEnter, symRunKeypad)
	run(SymEscape, symRunControl)

	symNames = make(map[Sym]string, len(symTable))
	symByName = make(map[string]Sym, len(symTable))
	for _, entry := range symTable {
		symNames[entry.Sym] = entry.Name
		symByName[strings.ToLower(entry.Name)] = entry.Sym
	}
}

// Syms returns every named sym. Entries are grouped by range and ordered by
// value within each range.
func Syms() []SymName {
	out := make([]SymName, len(symTable))
	copy(out, symTable)
	return out
}

// SymCount returns the number of named syms.
func SymCount() int {
	return len(symTable)
}

// ParseSym returns the sym with the given (case-insensitive) name.
func ParseSym(name string) (Sym, bool) {
	s, ok := symByName[strings.ToLower(name)]
	return s, ok
}

// String implements Stringer.
func (s Sym) String() string {
	if name, ok := symNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sym(%#x)", uint32(s))
}

// Valid returns whether the sym is part of the vocabulary.
func (s Sym) Valid() bool {
	_, ok := symNames[s]
	return ok
}

func (s Sym) IsControl() bool  { return s&SymControlMask != 0 }
func (s Sym) IsKeypad() bool   { return s&SymKPMask != 0 }
func (s Sym) IsMedia() bool    { return s&SymMediaMask != 0 }
func (s Sym) IsModifier() bool { return s&SymModsMask != 0 }

// IsLatin1 returns whether the sym is a printable Latin-1 character.
func (s Sym) IsLatin1() bool {
	if s >= 0x61 && s <= 0x7a {
		return false
	}
	return s >= SymSpace && s <= SymAsciitilde
}

// SymFromLatin1 converts a printable Latin-1 value (0x20 to 0x7e) into a
// Sym. Lowercase letters are folded into their uppercase form. Values
// outside of the printable range yield SymUnknown.
func SymFromLatin1(v uint32) Sym {
	if v < 0x20 || v > 0x7e {
		return SymUnknown
	}
	if v >= 0x61 && v <= 0x7a {
		v &^= uint32(SymLatin1SmallMask)
	}
	return Sym(v)
}

// FunctionKey returns the Sym for function key Fn, where n ranges from 1 to
// 24. Other values yield SymUnknown.
func FunctionKey(n int) Sym {
	if n < 1 || n > 24 {
		return SymUnknown
	}
	return SymF1 + Sym(n-1)
}

// KeypadDigit returns the Sym for keypad digit d (0 to 9). Other values
// yield SymUnknown.
func KeypadDigit(d int) Sym {
	if d < 0 || d > 9 {
		return SymUnknown
	}
	return SymKP0 + Sym(d)
}
