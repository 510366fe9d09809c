package components

import (
	"testing"

	"stylecs"
)

func TestDerivedNames(t *testing.T) {
	cases := map[string]stylecs.Component{
		"font_size":        FontSize(12),
		"font_family":      FontFamily("serif"),
		"font_style":       Italic,
		"weight":           Bold,
		"text_color":       NewTextColor(Hex(0xFF0000)),
		"background_color": NewBackgroundColor(Hex(0xFFFFFF)),
		"system_theme":     ThemeDark,
		"alignment":        AlignCenter,
		"padding":          Padding{},
	}
	for want, c := range cases {
		if got := c.StyleName().String(); got != want {
			t.Errorf("%T name = %q, want %q", c, got, want)
		}
	}
}

func TestColorPacking(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Errorf("channel accessors wrong for %08X", uint32(c))
	}
	if Hex(0xFF0000) != RGB(0xFF, 0, 0) {
		t.Error("Hex and RGB disagree")
	}
	if got := Hex(0xFF0000).String(); got != "#FF0000" {
		t.Errorf("String = %q, want #FF0000", got)
	}
	if got := RGBA(0xFF, 0, 0, 0x80).String(); got != "#FF000080" {
		t.Errorf("String = %q, want #FF000080", got)
	}
	if got := Hex(0x00FF00).WithAlpha(0); got.A() != 0 || got.G() != 0xFF {
		t.Errorf("WithAlpha mangled the color: %08X", uint32(got))
	}
}

func TestColorPairThemed(t *testing.T) {
	p := ColorPair{Light: Hex(0xFFFFFF), Dark: Hex(0x000000)}
	if p.ThemedColor(ThemeLight) != Hex(0xFFFFFF) {
		t.Error("light variant wrong")
	}
	if p.ThemedColor(ThemeDark) != Hex(0x000000) {
		t.Error("dark variant wrong")
	}
	if Pair(Hex(0x123456)).Dark != Hex(0x123456) {
		t.Error("Pair must use the color for both themes")
	}
}

func TestWeightNumbers(t *testing.T) {
	if Normal.Number() != 400 || Bold.Number() != 700 {
		t.Error("standard weights must map to their numeric values")
	}
	if got := Weight(450).String(); got != "weight_450" {
		t.Errorf("non-standard weight String = %q", got)
	}
}

func TestDimension(t *testing.T) {
	if !Auto().IsAuto() || Auto().IsLength() {
		t.Error("Auto must report IsAuto")
	}
	if !Minimal().IsAuto() {
		t.Error("Minimal behaves like auto for explicit-length checks")
	}
	d := Points(12.5)
	if v, ok := d.Length(); !ok || v != 12.5 {
		t.Errorf("Length = %v, %v", v, ok)
	}
	if Auto().LengthOrZero() != 0 {
		t.Error("LengthOrZero for auto must be 0")
	}
}

func TestSurroundMinimumSize(t *testing.T) {
	s := Surround{Left: Points(10), Right: Points(5), Top: Points(2)}
	if s.MinimumWidth() != 15 {
		t.Errorf("MinimumWidth = %v, want 15", s.MinimumWidth())
	}
	if s.MinimumHeight() != 2 {
		t.Errorf("MinimumHeight = %v, want 2", s.MinimumHeight())
	}
}

func TestPaddingMergeFillsUnsetSides(t *testing.T) {
	horizontal := Padding{Surround{Left: Points(10), Right: Points(10)}}
	vertical := Padding{Surround{Top: Points(10), Bottom: Points(10)}}

	merged := horizontal.Merge(vertical)
	for side, d := range map[string]Dimension{
		"left": merged.Left, "top": merged.Top,
		"right": merged.Right, "bottom": merged.Bottom,
	} {
		if v, ok := d.Length(); !ok || v != 10 {
			t.Errorf("side %s = %s, want 10", side, d)
		}
	}

	// Set sides prevail.
	override := Padding{Surround{Left: Points(1)}}.Merge(horizontal)
	if v, _ := override.Left.Length(); v != 1 {
		t.Errorf("set side was overwritten: %v", v)
	}
}

// The full cascade: a base style, a heading override, then inheritance
// from a body style.
func TestStyleCascadeScenario(t *testing.T) {
	base := stylecs.NewStyle()
	stylecs.Put(&base, FontSize(18))
	stylecs.Put(&base, Padding{Surround{Left: Points(10), Right: Points(10)}})

	heading := stylecs.NewStyle()
	stylecs.Put(&heading, Padding{Surround{Top: Points(10), Bottom: Points(10)}})

	merged := base.MergedWith(heading)
	padding, ok := stylecs.Get[Padding](&merged)
	if !ok {
		t.Fatal("merged style lost its padding")
	}
	for side, d := range map[string]Dimension{
		"left": padding.Left, "top": padding.Top,
		"right": padding.Right, "bottom": padding.Bottom,
	} {
		if v, ok := d.Length(); !ok || v != 10 {
			t.Errorf("merged padding %s = %s, want 10", side, d)
		}
	}

	body := stylecs.NewStyle()
	stylecs.Put(&body, FontSize(12))
	stylecs.Put(&body, NewTextColor(Hex(0xFF0000)))

	final := merged.InheritedFrom(body)
	if size, _ := stylecs.Get[FontSize](&final); size != 18 {
		t.Errorf("inheritance must not override an existing FontSize: got %v", size)
	}
	color, ok := stylecs.Get[TextColor](&final)
	if !ok {
		t.Fatal("inheritable TextColor should have been pulled in")
	}
	if color.ThemedColor(ThemeLight) != Hex(0xFF0000) {
		t.Errorf("TextColor = %s, want #FF0000", color)
	}
}

func TestInheritanceFlags(t *testing.T) {
	inherited := []stylecs.Component{
		FontSize(1), FontFamily("x"), Regular, Normal,
		NewTextColor(0), SystemTheme(0), AlignLeft,
	}
	for _, c := range inherited {
		if !c.Inherited() {
			t.Errorf("%T should be inherited", c)
		}
	}
	notInherited := []stylecs.Component{
		Padding{}, NewBackgroundColor(0), AlignTop,
	}
	for _, c := range notInherited {
		if c.Inherited() {
			t.Errorf("%T should not be inherited", c)
		}
	}
}
