package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMods(t *testing.T) {
	m := LeftCtrl | ModShift
	assert.True(t, m.HasCtrl())
	assert.True(t, m.HasShift())
	assert.False(t, m.HasAlt())
	assert.True(t, m.IsLeft())
	assert.False(t, m.IsRight())
	assert.True(t, m.HasAll(Ctrl|Shift))
	assert.False(t, m.HasAll(ModCtrl|ModAlt))
	assert.True(t, m.HasAny(ModAlt|ModShift))
	assert.True(t, m.HasNone(ModAlt|ModMeta|ModSuper))

	// Combining a set with itself changes nothing.
	for _, v := range []Mods{0, LeftCtrl, RightAlt | ModShift, Super, KeyMask | SideMask} {
		assert.Equal(t, v, v.Or(v))
		assert.Equal(t, v, v.And(v))
		assert.Equal(t, Mods(0), v.Xor(v))
	}

	assert.Equal(t, Mods(0x7f), NewMods(0xff))
	assert.Equal(t, uint8(0x21), LeftCtrl.Fields())
}

func TestModsString(t *testing.T) {
	tests := map[Mods]string{
		0:                   "none",
		ModCtrl:             "ctrl",
		LeftCtrl:            "left-ctrl",
		RightShift | ModAlt: "right-shift-alt",
		Ctrl:                "both-ctrl",
		KeyMask:             "ctrl-shift-meta-alt-super",
	}
	for m, want := range tests {
		assert.Equal(t, want, m.String())
	}

	for _, name := range []string{"ctrl", "shift", "meta", "alt", "super"} {
		m, ok := ParseMod(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.String())
	}
	m, ok := ParseMod("Control")
	assert.True(t, ok)
	assert.Equal(t, ModCtrl, m)
	_, ok = ParseMod("hyper")
	assert.False(t, ok)
}

func TestCodes(t *testing.T) {
	codes := Codes()
	require.Equal(t, CodeCount(), len(codes))
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1].Code, codes[i].Code, "code table is not ordered at %s", codes[i].Name)
	}
	for _, entry := range codes {
		assert.Equal(t, entry.Name, entry.Code.String())
		c, ok := ParseCode(entry.Name)
		assert.True(t, ok)
		assert.Equal(t, entry.Code, c)
	}

	assert.Equal(t, Code(4), CodeA)
	assert.Equal(t, Code(0x29), CodeEscape)
	assert.Equal(t, Code(0x3a), CodeF1)
	assert.Equal(t, Code(0x68), CodeF13)
	assert.Equal(t, Code(231), CodeRightSuper)
	assert.Equal(t, "Unknown", Code(0xa5).String())

	for c := CodeLeftCtrl; c <= CodeRightSuper; c++ {
		assert.True(t, c.IsModifier())
		assert.NotZero(t, c.Mods())
	}
	assert.False(t, CodeA.IsModifier())
	assert.Zero(t, CodeA.Mods())
	assert.Equal(t, RightAlt, CodeRightAlt.Mods())
}

func TestSyms(t *testing.T) {
	syms := Syms()
	require.Equal(t, SymCount(), len(syms))
	seen := make(map[Sym]bool, len(syms))
	for _, entry := range syms {
		assert.False(t, seen[entry.Sym], "duplicate sym %s", entry.Name)
		seen[entry.Sym] = true
		assert.True(t, entry.Sym.Valid())
		assert.Equal(t, entry.Name, entry.Sym.String())
		s, ok := ParseSym(entry.Name)
		assert.True(t, ok)
		assert.Equal(t, entry.Sym, s)
	}
	assert.Equal(t, "Sym(0x12345)", Sym(0x12345).String())
	assert.False(t, Sym(0x12345).Valid())

	assert.True(t, SymEscape.IsControl())
	assert.True(t, SymKP5.IsKeypad())
	assert.True(t, SymVolumeUp.IsMedia())
	assert.True(t, SymLeftShift.IsModifier())
	assert.False(t, SymA.IsModifier())
	assert.True(t, SymA.IsLatin1())
	assert.False(t, Sym('a').IsLatin1())
	assert.False(t, SymEscape.IsLatin1())
}

func TestSymFromLatin1(t *testing.T) {
	for v := uint32('a'); v <= 'z'; v++ {
		assert.Equal(t, SymFromLatin1(v-0x20), SymFromLatin1(v))
	}
	assert.Equal(t, SymA, SymFromLatin1('a'))
	assert.Equal(t, SymSpace, SymFromLatin1(' '))
	assert.Equal(t, SymAsciitilde, SymFromLatin1('~'))
	assert.Equal(t, SymD7, SymFromLatin1('7'))
	assert.Equal(t, SymUnknown, SymFromLatin1(0x1f))
	assert.Equal(t, SymUnknown, SymFromLatin1(0x7f))
	assert.Equal(t, SymUnknown, SymFromLatin1(0xe9))
}

func TestFunctionKeys(t *testing.T) {
	for n := 1; n <= 24; n++ {
		s := FunctionKey(n)
		assert.Equal(t, SymF1+Sym(n-1), s)
		assert.True(t, s.IsControl())
	}
	assert.Equal(t, SymF24, FunctionKey(24))
	assert.Equal(t, SymUnknown, FunctionKey(0))
	assert.Equal(t, SymUnknown, FunctionKey(25))

	for d := 0; d <= 9; d++ {
		assert.Equal(t, SymKP0+Sym(d), KeypadDigit(d))
	}
	assert.Equal(t, SymKP9, KeypadDigit(9))
	assert.Equal(t, SymUnknown, KeypadDigit(10))
}
