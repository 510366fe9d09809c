package components

import (
	"strconv"

	"stylecs"
)

// FontSize is a type size in points. Inherited.
type FontSize float32

var fontSizeName = derivedName("FontSize")

func (FontSize) StyleName() stylecs.Name { return fontSizeName }
func (FontSize) Inherited() bool         { return true }

// DefaultFontSize is used by renderers when no FontSize is present.
const DefaultFontSize FontSize = 14

// FontFamily names the typeface. Inherited.
type FontFamily string

var fontFamilyName = derivedName("FontFamily")

func (FontFamily) StyleName() stylecs.Name { return fontFamilyName }
func (FontFamily) Inherited() bool         { return true }

// FontStyle is the slant variant of a typeface. Inherited. The zero
// value is Regular.
type FontStyle int

const (
	Regular FontStyle = iota
	Italic
	Oblique
)

var fontStyleName = derivedName("FontStyle")

func (FontStyle) StyleName() stylecs.Name { return fontStyleName }
func (FontStyle) Inherited() bool         { return true }

func (s FontStyle) String() string {
	switch s {
	case Italic:
		return "italic"
	case Oblique:
		return "oblique"
	default:
		return "regular"
	}
}

// Weight is a font weight on the usual 100-900 scale. Inherited. The
// named constants cover the standard weights; any other value in range
// is legal.
type Weight uint16

const (
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Normal     Weight = 400
	Medium     Weight = 500
	SemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

var weightName = derivedName("Weight")

func (Weight) StyleName() stylecs.Name { return weightName }
func (Weight) Inherited() bool         { return true }

// Number returns the numeric weight.
func (w Weight) Number() uint16 { return uint16(w) }

func (w Weight) String() string {
	switch w {
	case Thin:
		return "thin"
	case ExtraLight:
		return "extra_light"
	case Light:
		return "light"
	case Normal:
		return "normal"
	case Medium:
		return "medium"
	case SemiBold:
		return "semi_bold"
	case Bold:
		return "bold"
	case ExtraBold:
		return "extra_bold"
	case Black:
		return "black"
	default:
		return "weight_" + strconv.Itoa(int(w))
	}
}
