// Package mouse contains the pointer button vocabulary.
package mouse

import "strings"

// Buttons is a bitfield of held or triggering pointer buttons.
type Buttons uint8

const (
	Left   Buttons = 1
	Middle Buttons = 2
	Right  Buttons = 4

	mask = Left | Middle | Right
)

// NewButtons creates a Buttons value from a raw byte, discarding undefined
// bits.
func NewButtons(fields uint8) Buttons {
	return Buttons(fields) & mask
}

// Has returns whether every button in b is set.
func (b Buttons) Has(o Buttons) bool {
	return b&o == o
}

// String implements Stringer.
func (b Buttons) String() string {
	var parts []string
	if b&Left != 0 {
		parts = append(parts, "left")
	}
	if b&Middle != 0 {
		parts = append(parts, "middle")
	}
	if b&Right != 0 {
		parts = append(parts, "right")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseButton returns the button with the given name.
func ParseButton(name string) (Buttons, bool) {
	switch strings.ToLower(name) {
	case "left", "lmb", "button1":
		return Left, true
	case "middle", "mmb", "button2":
		return Middle, true
	case "right", "rmb", "button3":
		return Right, true
	}
	return 0, false
}
