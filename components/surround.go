package components

import (
	"fmt"

	"stylecs"
)

// Surround is a set of measurements for the four edges of a rectangle.
type Surround struct {
	Left   Dimension
	Top    Dimension
	Right  Dimension
	Bottom Dimension
}

// MinimumWidth returns the sum of the explicit horizontal edges.
func (s Surround) MinimumWidth() float32 {
	return s.Left.LengthOrZero() + s.Right.LengthOrZero()
}

// MinimumHeight returns the sum of the explicit vertical edges.
func (s Surround) MinimumHeight() float32 {
	return s.Top.LengthOrZero() + s.Bottom.LengthOrZero()
}

func (s Surround) String() string {
	return fmt.Sprintf("left:%s top:%s right:%s bottom:%s", s.Left, s.Top, s.Right, s.Bottom)
}

// Padding is the space between an element's edge and its content.
// Not inherited.
//
// Padding merges edge-wise: merging fills only the sides the prevailing
// value leaves auto, so a style declaring horizontal padding and one
// declaring vertical padding compose into all four sides.
type Padding struct {
	Surround
}

var paddingName = derivedName("Padding")

func (Padding) StyleName() stylecs.Name { return paddingName }
func (Padding) Inherited() bool         { return false }

// Merge fills p's unset sides from other.
func (p Padding) Merge(other Padding) Padding {
	if p.Left.IsAuto() {
		p.Left = other.Left
	}
	if p.Top.IsAuto() {
		p.Top = other.Top
	}
	if p.Right.IsAuto() {
		p.Right = other.Right
	}
	if p.Bottom.IsAuto() {
		p.Bottom = other.Bottom
	}
	return p
}
