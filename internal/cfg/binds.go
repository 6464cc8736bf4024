package cfg

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tesselslate/xwin/key"
)

// Keybind actions
const (
	ActionQuit   = "quit"
	ActionReload = "reload"
	ActionTitle  = "title"
)

var actionNames = []string{ActionQuit, ActionReload, ActionTitle}

// Bind represents a single keybinding: a key and the exact set of modifier
// keys which must be held with it.
type Bind struct {
	Sym  key.Sym
	Mods key.Mods

	// String representation.
	str string
}

// Binds maps action names to their keybindings.
type Binds map[string]Bind

// ParseBind parses a keybind such as "ctrl-shift-q". Modifiers come first
// and the key name last, all joined with dashes.
func ParseBind(str string) (Bind, error) {
	if str == "" {
		return Bind{}, errors.New("empty bind")
	}
	splits := strings.Split(str, "-")
	b := Bind{str: str}
	for _, split := range splits[:len(splits)-1] {
		mod, ok := key.ParseMod(split)
		if !ok {
			return Bind{}, fmt.Errorf("unrecognized modifier %q", split)
		}
		if b.Mods&mod != 0 {
			return Bind{}, fmt.Errorf("duplicate modifier %q", split)
		}
		b.Mods |= mod
	}
	sym, err := parseKey(splits[len(splits)-1])
	if err != nil {
		return Bind{}, err
	}
	if sym.IsModifier() {
		return Bind{}, fmt.Errorf("modifier key %s cannot be bound", sym)
	}
	b.Sym = sym
	return b, nil
}

// parseKey returns the sym for a key name or a single printable character.
func parseKey(name string) (key.Sym, error) {
	if name == "" {
		return 0, errors.New("missing key")
	}
	if sym, ok := key.ParseSym(name); ok && sym != key.SymNone && sym != key.SymUnknown {
		return sym, nil
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) {
		if sym := key.SymFromLatin1(uint32(r)); sym != key.SymUnknown {
			return sym, nil
		}
	}
	return 0, fmt.Errorf("unrecognized key %q", name)
}

// String implements Stringer.
func (b Bind) String() string {
	if b.str != "" {
		return b.str
	}
	if b.Mods == 0 {
		return strings.ToLower(b.Sym.String())
	}
	return b.Mods.String() + "-" + strings.ToLower(b.Sym.String())
}

// Matches returns whether a key press with the given held modifiers
// triggers the bind. Sides of the held modifiers are ignored.
func (b Bind) Matches(sym key.Sym, mods key.Mods) bool {
	return b.Sym == sym && mods&key.KeyMask == b.Mods
}

// UnmarshalTOML implements toml.Unmarshaler.
func (b *Bind) UnmarshalTOML(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("bind value was not a string")
	}
	bind, err := ParseBind(str)
	if err != nil {
		return err
	}
	*b = bind
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Bind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	bind, err := ParseBind(str)
	if err != nil {
		return err
	}
	*b = bind
	return nil
}

// Lookup returns the action bound to a key press, if any.
func (k Binds) Lookup(sym key.Sym, mods key.Mods) (string, bool) {
	for _, action := range k.actions() {
		if k[action].Matches(sym, mods) {
			return action, true
		}
	}
	return "", false
}

// actions returns the bound actions in a stable order.
func (k Binds) actions() []string {
	actions := make([]string, 0, len(k))
	for action := range k {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// checkDuplicates returns an error if two actions share a keybinding.
func (k Binds) checkDuplicates() error {
	seen := make(map[Bind]string, len(k))
	for _, action := range k.actions() {
		bind := k[action]
		bind.str = ""
		if other, ok := seen[bind]; ok {
			return fmt.Errorf("actions %q and %q share bind %s", other, action, bind)
		}
		seen[bind] = action
	}
	return nil
}

func isAction(name string) bool {
	for _, action := range actionNames {
		if action == name {
			return true
		}
	}
	return false
}
