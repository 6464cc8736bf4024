package keyboard

import "sync"

// State holds the modifier and group state reported by the server for the
// bound keyboard device. It is safe for concurrent use.
type State struct {
	mu sync.RWMutex

	baseMods    uint8
	latchedMods uint8
	lockedMods  uint8

	baseGroup    int16
	latchedGroup int16
	lockedGroup  uint8
}

// UpdateMask replaces the state with the components of an XKB state
// notification.
func (s *State) UpdateMask(baseMods, latchedMods, lockedMods uint8, baseGroup, latchedGroup int16, lockedGroup uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseMods = baseMods
	s.latchedMods = latchedMods
	s.lockedMods = lockedMods
	s.baseGroup = baseGroup
	s.latchedGroup = latchedGroup
	s.lockedGroup = lockedGroup
}

// Effective returns the effective modifier mask and group.
func (s *State) Effective() (mods uint8, group int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mods = s.baseMods | s.latchedMods | s.lockedMods
	group = int(s.baseGroup) + int(s.latchedGroup) + int(s.lockedGroup)
	if group < 0 {
		group = -group
	}
	return mods, group
}
