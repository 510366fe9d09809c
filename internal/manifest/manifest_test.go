package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"stylecs"
	"stylecs/components"
	"stylecs/sheet"
)

func writeTheme(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeTheme(t, `
[theme]
name = "default"

[[rule]]
classes = ["text"]
font_size = 12.0
font_family = "Inter"
text_color = "#112233"

[[rule]]
classes = ["heading"]
font_size = 24.0
weight = 700
padding = { top = 10.0, bottom = 10.0 }

[[rule]]
id = "save_button"
hovered = true
background_color = "#0000FF80"

[[element]]
id = "save_button"
classes = ["text"]
hovered = true

[[element]]
classes = ["text", "heading"]
`)

	theme, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if theme.Name != "default" {
		t.Errorf("Name = %q, want %q", theme.Name, "default")
	}
	if theme.Sheet.Len() != 3 {
		t.Fatalf("Sheet.Len = %d, want 3", theme.Sheet.Len())
	}
	if len(theme.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(theme.Elements))
	}

	button := theme.Elements[0]
	if button.Label != "save_button" {
		t.Errorf("Label = %q", button.Label)
	}
	if !button.State.Hovered {
		t.Error("element state should be hovered")
	}
	resolved := theme.Sheet.EffectiveStyleFor(button.Style, button.State)
	if size, _ := stylecs.Get[components.FontSize](&resolved); size != 12 {
		t.Errorf("FontSize = %v, want 12 from the text rule", size)
	}
	bg, ok := stylecs.Get[components.BackgroundColor](&resolved)
	if !ok {
		t.Fatal("hovered rule should contribute a background color")
	}
	if got := bg.ThemedColor(components.ThemeLight); got != components.Color(0x0000FF80) {
		t.Errorf("background = %s", got)
	}

	both := theme.Elements[1]
	if both.Label != ".text.heading" {
		t.Errorf("Label = %q", both.Label)
	}
	resolved = theme.Sheet.EffectiveStyleFor(both.Style, sheet.State{})
	if size, _ := stylecs.Get[components.FontSize](&resolved); size != 24 {
		t.Errorf("FontSize = %v, want the heading rule to win", size)
	}
	padding, ok := stylecs.Get[components.Padding](&resolved)
	if !ok {
		t.Fatal("heading rule should contribute padding")
	}
	if padding.Top.LengthOrZero() != 10 || padding.Bottom.LengthOrZero() != 10 {
		t.Errorf("padding = %s", padding)
	}
	if padding.Left.IsLength() {
		t.Error("unset padding sides must stay auto")
	}
}

func TestLoadRejectsEmptyTheme(t *testing.T) {
	path := writeTheme(t, "[theme]\nname = \"empty\"\n")
	if _, err := Load(path); !errors.Is(err, ErrNoRules) {
		t.Errorf("err = %v, want ErrNoRules", err)
	}
}

func TestLoadRejectsEmptySelector(t *testing.T) {
	path := writeTheme(t, "[[rule]]\nfont_size = 10.0\n")
	if _, err := Load(path); !errors.Is(err, ErrEmptySelector) {
		t.Errorf("err = %v, want ErrEmptySelector", err)
	}
}

func TestLoadRejectsAnonymousElement(t *testing.T) {
	path := writeTheme(t, "[[rule]]\nid = \"x\"\n\n[[element]]\nhovered = true\n")
	if _, err := Load(path); !errors.Is(err, ErrElementAnonymous) {
		t.Errorf("err = %v, want ErrElementAnonymous", err)
	}
}

func TestLoadReportsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad color":      "[[rule]]\nid = \"x\"\ntext_color = \"red\"\n",
		"short color":    "[[rule]]\nid = \"x\"\ntext_color = \"#123\"\n",
		"bad font style": "[[rule]]\nid = \"x\"\nfont_style = \"bold\"\n",
		"bad align":      "[[rule]]\nid = \"x\"\nalign = \"justify\"\n",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeTheme(t, contents)
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
