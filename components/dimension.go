package components

import "strconv"

// Dimension is a measurement that may be automatic, minimal, or an
// explicit length in points. The zero value is Auto.
type Dimension struct {
	kind   dimensionKind
	length float32
}

type dimensionKind uint8

const (
	dimensionAuto dimensionKind = iota
	dimensionMinimal
	dimensionLength
)

// Auto leaves the measurement to the layout.
func Auto() Dimension { return Dimension{} }

// Minimal requests shrinking to fit the content where applicable, and
// otherwise behaves like Auto.
func Minimal() Dimension { return Dimension{kind: dimensionMinimal} }

// Points fixes the measurement to an explicit length.
func Points(v float32) Dimension {
	return Dimension{kind: dimensionLength, length: v}
}

// IsAuto reports whether the dimension carries no explicit length.
func (d Dimension) IsAuto() bool { return d.kind != dimensionLength }

// IsLength reports whether the dimension carries an explicit length.
func (d Dimension) IsLength() bool { return d.kind == dimensionLength }

// Length returns the explicit length, if any.
func (d Dimension) Length() (float32, bool) {
	return d.length, d.kind == dimensionLength
}

// LengthOrZero returns the explicit length, or 0 for auto and minimal.
func (d Dimension) LengthOrZero() float32 {
	if d.kind == dimensionLength {
		return d.length
	}
	return 0
}

func (d Dimension) String() string {
	switch d.kind {
	case dimensionMinimal:
		return "minimal"
	case dimensionLength:
		return strconv.FormatFloat(float64(d.length), 'g', -1, 32)
	default:
		return "auto"
	}
}
