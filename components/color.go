package components

import (
	"fmt"

	"stylecs"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA builds a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Hex builds an opaque color from a 24-bit 0xRRGGBB literal.
func Hex(rgb uint32) Color {
	return Color(rgb<<8 | 0xFF)
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&^0xFF | uint32(a))
}

// String renders "#RRGGBB", with the alpha byte appended when the color
// is not opaque.
func (c Color) String() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)>>8)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// SystemTheme selects between the light and dark variants of themed
// colors. The zero value is the light theme.
type SystemTheme int

const (
	ThemeLight SystemTheme = iota
	ThemeDark
)

var systemThemeName = derivedName("SystemTheme")

func (SystemTheme) StyleName() stylecs.Name { return systemThemeName }
func (SystemTheme) Inherited() bool         { return true }

func (t SystemTheme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ColorPair carries one color per SystemTheme variant.
type ColorPair struct {
	// Light is used when the current theme is ThemeLight.
	Light Color
	// Dark is used when the current theme is ThemeDark.
	Dark Color
}

// Pair builds a ColorPair using the same color for both themes.
func Pair(c Color) ColorPair {
	return ColorPair{Light: c, Dark: c}
}

// ThemedColor returns the color matching theme.
func (p ColorPair) ThemedColor(theme SystemTheme) Color {
	if theme == ThemeDark {
		return p.Dark
	}
	return p.Light
}

// WithAlpha replaces the alpha channel of both variants.
func (p ColorPair) WithAlpha(a uint8) ColorPair {
	p.Light = p.Light.WithAlpha(a)
	p.Dark = p.Dark.WithAlpha(a)
	return p
}

func (p ColorPair) String() string {
	if p.Light == p.Dark {
		return p.Light.String()
	}
	return fmt.Sprintf("%s/%s", p.Light, p.Dark)
}

// TextColor is the themed foreground color. Inherited: children render
// their text in the parent's color unless they override it.
type TextColor ColorPair

var textColorName = derivedName("TextColor")

// NewTextColor uses the same color for both themes.
func NewTextColor(c Color) TextColor {
	return TextColor(Pair(c))
}

func (TextColor) StyleName() stylecs.Name { return textColorName }
func (TextColor) Inherited() bool         { return true }
func (c TextColor) String() string        { return ColorPair(c).String() }

// ThemedColor returns the color matching theme.
func (c TextColor) ThemedColor(theme SystemTheme) Color {
	return ColorPair(c).ThemedColor(theme)
}

// BackgroundColor is the themed fill color. Not inherited: a child with
// no background stays transparent rather than repainting the parent's.
type BackgroundColor ColorPair

var backgroundColorName = derivedName("BackgroundColor")

// NewBackgroundColor uses the same color for both themes.
func NewBackgroundColor(c Color) BackgroundColor {
	return BackgroundColor(Pair(c))
}

func (BackgroundColor) StyleName() stylecs.Name { return backgroundColorName }
func (BackgroundColor) Inherited() bool         { return false }
func (c BackgroundColor) String() string        { return ColorPair(c).String() }

// ThemedColor returns the color matching theme.
func (c BackgroundColor) ThemedColor(theme SystemTheme) Color {
	return ColorPair(c).ThemedColor(theme)
}
