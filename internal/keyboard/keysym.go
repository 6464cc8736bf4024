package keyboard

import "github.com/tesselslate/xwin/key"

// X keysym values used by the keyboard package.
const (
	xkNoSymbol = 0x0000

	xkBackSpace  = 0xff08
	xkTab        = 0xff09
	xkLinefeed   = 0xff0a
	xkClear      = 0xff0b
	xkReturn     = 0xff0d
	xkPause      = 0xff13
	xkScrollLock = 0xff14
	xkSysReq     = 0xff15
	xkEscape     = 0xff1b
	xkDelete     = 0xffff

	xkHome       = 0xff50
	xkLeft       = 0xff51
	xkUp         = 0xff52
	xkRight      = 0xff53
	xkDown       = 0xff54
	xkPrior      = 0xff55
	xkNext       = 0xff56
	xkEnd        = 0xff57
	xkSelect     = 0xff60
	xkPrint      = 0xff61
	xkExecute    = 0xff62
	xkInsert     = 0xff63
	xkUndo       = 0xff65
	xkRedo       = 0xff66
	xkMenu       = 0xff67
	xkFind       = 0xff68
	xkCancel     = 0xff69
	xkHelp       = 0xff6a
	xkBreak      = 0xff6b
	xkModeSwitch = 0xff7e
	xkNumLock    = 0xff7f

	xkKPSpace     = 0xff80
	xkKPTab       = 0xff89
	xkKPEnter     = 0xff8d
	xkKPHome      = 0xff95
	xkKPLeft      = 0xff96
	xkKPUp        = 0xff97
	xkKPRight     = 0xff98
	xkKPDown      = 0xff99
	xkKPPrior     = 0xff9a
	xkKPNext      = 0xff9b
	xkKPEnd       = 0xff9c
	xkKPBegin     = 0xff9d
	xkKPInsert    = 0xff9e
	xkKPDelete    = 0xff9f
	xkKPMultiply  = 0xffaa
	xkKPAdd       = 0xffab
	xkKPSeparator = 0xffac
	xkKPSubtract  = 0xffad
	xkKPDecimal   = 0xffae
	xkKPDivide    = 0xffaf
	xkKP0         = 0xffb0
	xkKP9         = 0xffb9
	xkKPEqual     = 0xffbd

	xkF1  = 0xffbe
	xkF24 = 0xffd5

	xkShiftL    = 0xffe1
	xkShiftR    = 0xffe2
	xkControlL  = 0xffe3
	xkControlR  = 0xffe4
	xkCapsLock  = 0xffe5
	xkShiftLock = 0xffe6
	xkMetaL     = 0xffe7
	xkMetaR     = 0xffe8
	xkAltL      = 0xffe9
	xkAltR      = 0xffea
	xkSuperL    = 0xffeb
	xkSuperR    = 0xffec

	xkISOLevel3Shift = 0xfe03
	xkISOLeftTab     = 0xfe20

	xkDeadGrave              = 0xfe50
	xkDeadCurrency           = 0xfe6f
	xkDeadLowline            = 0xfe90
	xkDeadLongsolidusoverlay = 0xfe93
	xkDeadSmallA             = 0xfe80
	xkDeadCapitalSchwa       = 0xfe8b

	xkEuroSign = 0x20ac
)

// Vendor keysyms without standard names.
const (
	xkSunSysReq  = 0x1005ff60
	xkX386SysReq = 0x1007ff00
	xkHPBackTab  = 0x1000ff74
	xkSunF36     = 0x1005ff10
	xkSunF37     = 0x1005ff11
)

// xf86 returns the XFree86 vendor keysym with the given low byte.
func xf86(low uint32) uint32 {
	return 0x1008ff00 | low
}

// keysymMap holds every keysym which is not handled by the Latin-1 and
// function key ranges.
var keysymMap = buildKeysymMap()

func buildKeysymMap() map[uint32]key.Sym {
	m := map[uint32]key.Sym{
		xkEscape:     key.SymEscape,
		xkTab:        key.SymTab,
		xkISOLeftTab: key.SymLeftTab,
		xkBackSpace:  key.SymBackspace,
		xkReturn:     key.SymReturn,
		xkInsert:     key.SymInsert,
		xkDelete:     key.SymDelete,
		xkClear:      key.SymDelete,
		xkPause:      key.SymPause,
		xkPrint:      key.SymPrint,
		xkSysReq:     key.SymSysRq,
		xkSunSysReq:  key.SymSysRq,
		xkX386SysReq: key.SymSysRq,
		xkBreak:      key.SymBreak,

		xkHome:  key.SymHome,
		xkEnd:   key.SymEnd,
		xkLeft:  key.SymLeft,
		xkUp:    key.SymUp,
		xkRight: key.SymRight,
		xkDown:  key.SymDown,
		xkPrior: key.SymPageUp,
		xkNext:  key.SymPageDown,

		xkShiftL:     key.SymLeftShift,
		xkShiftR:     key.SymRightShift,
		xkShiftLock:  key.SymShift,
		xkControlL:   key.SymLeftCtrl,
		xkControlR:   key.SymRightCtrl,
		xkMetaL:      key.SymLeftMeta,
		xkMetaR:      key.SymRightMeta,
		xkAltL:       key.SymLeftAlt,
		xkAltR:       key.SymRightAlt,
		xkSuperL:     key.SymLeftSuper,
		xkSuperR:     key.SymRightSuper,
		xkCapsLock:   key.SymCapsLock,
		xkNumLock:    key.SymNumLock,
		xkScrollLock: key.SymScrollLock,
		xkMenu:       key.SymMenu,
		xkHelp:       key.SymHelp,

		xkHPBackTab: key.SymLeftTab,
		xkSunF36:    key.SymF11,
		xkSunF37:    key.SymF12,

		xkKPEnter:     key.SymKPEnter,
		xkKPDelete:    key.SymKPDelete,
		xkKPHome:      key.SymKPHome,
		xkKPBegin:     key.SymKPBegin,
		xkKPEnd:       key.SymKPEnd,
		xkKPPrior:     key.SymKPPageUp,
		xkKPNext:      key.SymKPPageDown,
		xkKPUp:        key.SymKPUp,
		xkKPDown:      key.SymKPDown,
		xkKPLeft:      key.SymKPLeft,
		xkKPRight:     key.SymKPRight,
		xkKPEqual:     key.SymKPEqual,
		xkKPMultiply:  key.SymKPMultiply,
		xkKPAdd:       key.SymKPAdd,
		xkKPDivide:    key.SymKPDivide,
		xkKPSubtract:  key.SymKPSubtract,
		xkKPDecimal:   key.SymKPDecimal,
		xkKPSeparator: key.SymKPSeparator,

		xkISOLevel3Shift: key.SymRightAlt,
		xkModeSwitch:     key.SymModeSwitch,

		// Editing keys. Their XF86 counterparts map to the media range.
		xkUndo:    key.SymUndo,
		xkRedo:    key.SymRedo,
		xkFind:    key.SymFind,
		xkCancel:  key.SymCancel,
		xkExecute: key.SymExecute,
		xkSelect:  key.SymSelect,

		xf86(0x02): key.SymMonBrightnessUp,
		xf86(0x03): key.SymMonBrightnessDown,
		xf86(0x04): key.SymKeyboardLightOnOff,
		xf86(0x05): key.SymKeyboardBrightnessUp,
		xf86(0x06): key.SymKeyboardBrightnessDown,
		xf86(0x10): key.SymStandby,
		xf86(0x11): key.SymVolumeDown,
		xf86(0x12): key.SymVolumeMute,
		xf86(0x13): key.SymVolumeUp,
		xf86(0x14): key.SymMediaPlay,
		xf86(0x15): key.SymMediaStop,
		xf86(0x16): key.SymMediaPrevious,
		xf86(0x17): key.SymMediaNext,
		xf86(0x18): key.SymHomePage,
		xf86(0x19): key.SymLaunchMail,
		xf86(0x1b): key.SymSearch,
		xf86(0x1c): key.SymMediaRecord,
		xf86(0x1d): key.SymCalculator,
		xf86(0x1e): key.SymMemo,
		xf86(0x1f): key.SymToDoList,
		xf86(0x20): key.SymCalendar,
		xf86(0x21): key.SymPowerDown,
		xf86(0x22): key.SymContrastAdjust,
		xf86(0x26): key.SymBack,
		xf86(0x27): key.SymForward,
		xf86(0x28): key.SymStop,
		xf86(0x29): key.SymRefresh,
		xf86(0x2a): key.SymPowerOff,
		xf86(0x2b): key.SymWakeUp,
		xf86(0x2c): key.SymEject,
		xf86(0x2d): key.SymScreenSaver,
		xf86(0x2e): key.SymWWW,
		xf86(0x2f): key.SymSleep,
		xf86(0x30): key.SymFavorites,
		xf86(0x31): key.SymMediaPause,
		xf86(0x32): key.SymLaunchMedia,
		xf86(0x33): key.SymMyComputer,
		xf86(0x35): key.SymLightBulb,
		xf86(0x36): key.SymShop,
		xf86(0x37): key.SymHistory,
		xf86(0x38): key.SymOpenURL,
		xf86(0x39): key.SymAddFavorite,
		xf86(0x3a): key.SymHotLinks,
		xf86(0x3b): key.SymBrightnessAdjust,
		xf86(0x3c): key.SymFinance,
		xf86(0x3d): key.SymCommunity,
		xf86(0x3e): key.SymAudioRewind,
		xf86(0x3f): key.SymBackForward,
		xf86(0x50): key.SymApplicationLeft,
		xf86(0x51): key.SymApplicationRight,
		xf86(0x52): key.SymBook,
		xf86(0x53): key.SymCD,
		xf86(0x54): key.SymCalculator,
		xf86(0x55): key.SymClear,
		xf86(0x56): key.SymClose,
		xf86(0x57): key.SymCopy,
		xf86(0x58): key.SymCut,
		xf86(0x59): key.SymDisplay,
		xf86(0x5a): key.SymDOS,
		xf86(0x5b): key.SymDocuments,
		xf86(0x5c): key.SymExcel,
		xf86(0x5d): key.SymExplorer,
		xf86(0x5e): key.SymGame,
		xf86(0x5f): key.SymGo,
		xf86(0x60): key.SymITouch,
		xf86(0x61): key.SymLogOff,
		xf86(0x62): key.SymMarket,
		xf86(0x63): key.SymMeeting,
		xf86(0x65): key.SymMenuKB,
		xf86(0x66): key.SymMenuPB,
		xf86(0x67): key.SymMySites,
		xf86(0x68): key.SymNew,
		xf86(0x69): key.SymNews,
		xf86(0x6a): key.SymOfficeHome,
		xf86(0x6b): key.SymOpen,
		xf86(0x6c): key.SymOption,
		xf86(0x6d): key.SymPaste,
		xf86(0x6e): key.SymPhone,
		xf86(0x72): key.SymReply,
		xf86(0x73): key.SymReload,
		xf86(0x74): key.SymRotateWindows,
		xf86(0x75): key.SymRotationPB,
		xf86(0x76): key.SymRotationKB,
		xf86(0x77): key.SymSave,
		xf86(0x7b): key.SymSend,
		xf86(0x7c): key.SymSpell,
		xf86(0x7d): key.SymSplitScreen,
		xf86(0x7e): key.SymSupport,
		xf86(0x7f): key.SymTaskPane,
		xf86(0x80): key.SymTerminal,
		xf86(0x81): key.SymTools,
		xf86(0x82): key.SymTravel,
		xf86(0x87): key.SymVideo,
		xf86(0x89): key.SymWord,
		xf86(0x8a): key.SymXfer,
		xf86(0x8b): key.SymZoomIn,
		xf86(0x8c): key.SymZoomOut,
		xf86(0x8d): key.SymAway,
		xf86(0x8e): key.SymMessenger,
		xf86(0x8f): key.SymWebCam,
		xf86(0x90): key.SymMailForward,
		xf86(0x91): key.SymPictures,
		xf86(0x92): key.SymMusic,
		xf86(0x93): key.SymBattery,
		xf86(0x94): key.SymBluetooth,
		xf86(0x95): key.SymWLAN,
		xf86(0x96): key.SymUWB,
		xf86(0x97): key.SymAudioForward,
		xf86(0x98): key.SymAudioRepeat,
		xf86(0x99): key.SymAudioRandomPlay,
		xf86(0x9a): key.SymSubtitle,
		xf86(0x9b): key.SymAudioCycleTrack,
		xf86(0x9f): key.SymTime,
		xf86(0xa0): key.SymSelect,
		xf86(0xa1): key.SymView,
		xf86(0xa2): key.SymTopMenu,
		xf86(0xa3): key.SymRed,
		xf86(0xa4): key.SymGreen,
		xf86(0xa5): key.SymYellow,
		xf86(0xa6): key.SymBlue,
		xf86(0xa7): key.SymSuspend,
		xf86(0xa8): key.SymHibernate,
		xf86(0xa9): key.SymTouchpadToggle,
		xf86(0xb0): key.SymTouchpadOn,
		xf86(0xb1): key.SymTouchpadOff,
		xf86(0xb2): key.SymMicMute,

		0x1008fe21: key.SymClearGrab,
	}

	for i := uint32(0); i < 10; i++ {
		m[xkKP0+i] = key.KeypadDigit(int(i))
		m[xf86(0x40+i)] = key.SymLaunch0 + key.Sym(i)
	}
	for i := uint32(0); i < 6; i++ {
		m[xf86(0x4a+i)] = key.SymLaunchA + key.Sym(i)
	}

	// Dead keys occupy three contiguous keysym runs which map onto one
	// contiguous run of syms.
	next := key.SymDeadGrave
	deadRuns := [][2]uint32{
		{xkDeadGrave, xkDeadCurrency},
		{xkDeadLowline, xkDeadLongsolidusoverlay},
		{xkDeadSmallA, xkDeadCapitalSchwa},
	}
	for _, run := range deadRuns {
		for xsym := run[0]; xsym <= run[1]; xsym++ {
			m[xsym] = next
			next++
		}
	}
	return m
}

// LookupSym returns the logical key meaning of an X keysym. Keysyms without
// a matching Sym yield SymUnknown.
func LookupSym(xsym uint32) key.Sym {
	switch {
	case xsym >= 0x20 && xsym < 0x80:
		return key.SymFromLatin1(xsym)
	case xsym >= xkF1 && xsym <= xkF24:
		return key.FunctionKey(int(xsym-xkF1) + 1)
	}
	if sym, ok := keysymMap[xsym]; ok {
		return sym
	}
	return key.SymUnknown
}
