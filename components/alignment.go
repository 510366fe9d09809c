package components

import "stylecs"

// Alignment positions content horizontally. Inherited, like text
// alignment. The zero value is AlignLeft.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentName = derivedName("Alignment")

func (Alignment) StyleName() stylecs.Name { return alignmentName }
func (Alignment) Inherited() bool         { return true }

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// VerticalAlignment positions content vertically. Not inherited. The
// zero value is AlignTop.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var verticalAlignmentName = derivedName("VerticalAlignment")

func (VerticalAlignment) StyleName() stylecs.Name { return verticalAlignmentName }
func (VerticalAlignment) Inherited() bool         { return false }

func (a VerticalAlignment) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}
