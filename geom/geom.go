// Package geom contains the geometry values carried by window events.
package geom

import "fmt"

// Point is a position in window coordinates.
type Point struct {
	X, Y int32
}

// Size is the size of a window.
type Size struct {
	W, H int32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}
