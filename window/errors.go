package window

import (
	"errors"
	"fmt"
)

// ErrConnectionDied is returned by WaitEvent once the connection to the X
// server has been closed.
var ErrConnectionDied = errors.New("connection with X server closed")

// SetupError is returned when a window could not be created. Op names the
// step which failed.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// Setup steps reported by SetupError.
const (
	OpConnect      = "connect"
	OpInternAtoms  = "intern atoms"
	OpKeyboard     = "keyboard"
	OpCreateWindow = "create window"
	OpSetProtocols = "set protocols"
	OpMapWindow    = "map window"
)

// MissingAtomError is returned when the X server could not provide one of
// the atoms used by the window.
type MissingAtomError struct {
	Name string
	Err  error
}

func (e *MissingAtomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("get %s atom: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("get %s atom: no atom returned", e.Name)
}

func (e *MissingAtomError) Unwrap() error {
	return e.Err
}
