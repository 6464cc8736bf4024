// Package key contains the layout-independent keyboard vocabulary: physical
// key positions (Code), logical key meanings (Sym) and modifier state (Mods).
package key

import "strings"

// Mods is a modifier bitfield. The low five bits record which modifier keys
// are held and the two side bits record whether the most recent modifier key
// was a left or right instance.
type Mods uint8

// Modifier bits
const (
	ModCtrl  Mods = 0x01
	ModShift Mods = 0x02
	ModMeta  Mods = 0x04
	ModAlt   Mods = 0x08
	ModSuper Mods = 0x10

	ModLeft  Mods = 0x20
	ModRight Mods = 0x40
)

// Bit masks
const (
	KeyMask  Mods = 0x1f
	SideMask Mods = 0x60
)

// Sided modifiers
const (
	LeftCtrl  = ModLeft | ModCtrl
	LeftShift = ModLeft | ModShift
	LeftMeta  = ModLeft | ModMeta
	LeftAlt   = ModLeft | ModAlt
	LeftSuper = ModLeft | ModSuper

	RightCtrl  = ModRight | ModCtrl
	RightShift = ModRight | ModShift
	RightMeta  = ModRight | ModMeta
	RightAlt   = ModRight | ModAlt
	RightSuper = ModRight | ModSuper

	Ctrl  = LeftCtrl | RightCtrl
	Shift = LeftShift | RightShift
	Meta  = LeftMeta | RightMeta
	Alt   = LeftAlt | RightAlt
	Super = LeftSuper | RightSuper
)

// NewMods creates a Mods value from a raw byte, discarding any bits which
// are not part of the modifier layout.
func NewMods(fields uint8) Mods {
	return Mods(fields) & (KeyMask | SideMask)
}

// Fields returns the raw bits of the modifier set.
func (m Mods) Fields() uint8 {
	return uint8(m)
}

func (m Mods) IsLeft() bool   { return m&ModLeft != 0 }
func (m Mods) IsRight() bool  { return m&ModRight != 0 }
func (m Mods) HasCtrl() bool  { return m&ModCtrl != 0 }
func (m Mods) HasShift() bool { return m&ModShift != 0 }
func (m Mods) HasMeta() bool  { return m&ModMeta != 0 }
func (m Mods) HasAlt() bool   { return m&ModAlt != 0 }
func (m Mods) HasSuper() bool { return m&ModSuper != 0 }

// HasAll returns whether every key bit of fields is set. Side bits in fields
// are ignored.
func (m Mods) HasAll(fields Mods) bool {
	fields &= KeyMask
	return m&fields == fields
}

// HasAny returns whether at least one key bit of fields is set.
func (m Mods) HasAny(fields Mods) bool {
	return m&fields&KeyMask != 0
}

// HasNone returns whether no key bit of fields is set.
func (m Mods) HasNone(fields Mods) bool {
	return m&fields&KeyMask == 0
}

func (m Mods) And(o Mods) Mods { return m & o }
func (m Mods) Or(o Mods) Mods  { return m | o }
func (m Mods) Xor(o Mods) Mods { return m ^ o }

// String implements Stringer. The output uses the same "ctrl-shift" notation
// accepted by keybind configuration.
func (m Mods) String() string {
	var parts []string
	switch {
	case m.IsLeft() && m.IsRight():
		parts = append(parts, "both")
	case m.IsLeft():
		parts = append(parts, "left")
	case m.IsRight():
		parts = append(parts, "right")
	}
	for _, name := range modNames {
		if m&name.mod != 0 {
			parts = append(parts, name.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "-")
}

var modNames = []struct {
	mod  Mods
	name string
}{
	{ModCtrl, "ctrl"},
	{ModShift, "shift"},
	{ModMeta, "meta"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
}

// ParseMod returns the modifier key bit with the given name.
func ParseMod(name string) (Mods, bool) {
	switch strings.ToLower(name) {
	case "ctrl", "control":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	case "meta":
		return ModMeta, true
	case "alt":
		return ModAlt, true
	case "super", "win":
		return ModSuper, true
	}
	return 0, false
}
