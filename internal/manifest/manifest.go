// Package manifest loads theme files: TOML documents declaring style
// rules and the elements they apply to. Themes are the on-disk form of
// a sheet.StyleSheet plus a set of element styles for rendering.
package manifest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"stylecs"
	"stylecs/components"
	"stylecs/sheet"
)

var (
	// ErrNoRules indicates that a theme declares no [[rule]] entries.
	ErrNoRules = errors.New("theme declares no rules")
	// ErrEmptySelector indicates a rule with neither id nor classes.
	ErrEmptySelector = errors.New("rule needs an id or classes selector")
	// ErrElementAnonymous indicates an element with neither id nor classes.
	ErrElementAnonymous = errors.New("element needs an id or classes")
)

// Theme is a loaded theme file: a style sheet plus named elements.
type Theme struct {
	Name     string
	Sheet    *sheet.StyleSheet
	Elements []Element
}

// Element is a renderable element declared in a theme file.
type Element struct {
	Label string
	Style stylecs.Style
	State sheet.State
}

type themeFile struct {
	Theme struct {
		Name string `toml:"name"`
	} `toml:"theme"`
	Rules    []ruleEntry    `toml:"rule"`
	Elements []elementEntry `toml:"element"`
}

type ruleEntry struct {
	ID      string   `toml:"id"`
	Classes []string `toml:"classes"`

	Hovered *bool `toml:"hovered"`
	Focused *bool `toml:"focused"`
	Active  *bool `toml:"active"`

	styleEntry
}

type elementEntry struct {
	ID      string   `toml:"id"`
	Classes []string `toml:"classes"`

	Hovered bool `toml:"hovered"`
	Focused bool `toml:"focused"`
	Active  bool `toml:"active"`

	styleEntry
}

// styleEntry holds the component fields shared by rules and elements.
// Every field is optional; only the ones a section defines contribute.
type styleEntry struct {
	FontSize        float32      `toml:"font_size"`
	FontFamily      string       `toml:"font_family"`
	FontStyle       string       `toml:"font_style"`
	Weight          uint16       `toml:"weight"`
	TextColor       string       `toml:"text_color"`
	BackgroundColor string       `toml:"background_color"`
	Padding         paddingEntry `toml:"padding"`
	Align           string       `toml:"align"`
}

type paddingEntry struct {
	Left   *float32 `toml:"left"`
	Top    *float32 `toml:"top"`
	Right  *float32 `toml:"right"`
	Bottom *float32 `toml:"bottom"`
}

// Load reads and validates a theme file.
func Load(path string) (*Theme, error) {
	var file themeFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("rule") || len(file.Rules) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRules)
	}

	theme := &Theme{
		Name:  strings.TrimSpace(file.Theme.Name),
		Sheet: sheet.NewStyleSheet(),
	}
	for i, entry := range file.Rules {
		rule, err := buildRule(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: rule %d: %w", path, i+1, err)
		}
		theme.Sheet.Push(rule)
	}
	for i, entry := range file.Elements {
		element, err := buildElement(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: element %d: %w", path, i+1, err)
		}
		theme.Elements = append(theme.Elements, element)
	}
	return theme, nil
}

func buildRule(entry ruleEntry) (sheet.Rule, error) {
	var rule sheet.Rule
	switch {
	case entry.ID != "":
		rule = sheet.ForID(entry.ID)
	case len(entry.Classes) > 0:
		rule = sheet.ForClasses(entry.Classes...)
	default:
		return sheet.Rule{}, ErrEmptySelector
	}
	rule.Hovered = entry.Hovered
	rule.Focused = entry.Focused
	rule.Active = entry.Active

	style, err := buildStyle(entry.styleEntry)
	if err != nil {
		return sheet.Rule{}, err
	}
	rule.Style = style
	return rule, nil
}

func buildElement(entry elementEntry) (Element, error) {
	if entry.ID == "" && len(entry.Classes) == 0 {
		return Element{}, ErrElementAnonymous
	}
	style, err := buildStyle(entry.styleEntry)
	if err != nil {
		return Element{}, err
	}
	if entry.ID != "" {
		stylecs.Put(&style, sheet.ID(entry.ID))
	}
	if len(entry.Classes) > 0 {
		stylecs.Put(&style, sheet.Classes(entry.Classes))
	}

	label := entry.ID
	if label == "" {
		label = "." + strings.Join(entry.Classes, ".")
	}
	return Element{
		Label: label,
		Style: style,
		State: sheet.State{
			Hovered: entry.Hovered,
			Focused: entry.Focused,
			Active:  entry.Active,
		},
	}, nil
}

func buildStyle(entry styleEntry) (stylecs.Style, error) {
	style := stylecs.NewStyle()
	if entry.FontSize != 0 {
		stylecs.Put(&style, components.FontSize(entry.FontSize))
	}
	if entry.FontFamily != "" {
		stylecs.Put(&style, components.FontFamily(entry.FontFamily))
	}
	if entry.FontStyle != "" {
		fontStyle, err := parseFontStyle(entry.FontStyle)
		if err != nil {
			return stylecs.Style{}, err
		}
		stylecs.Put(&style, fontStyle)
	}
	if entry.Weight != 0 {
		stylecs.Put(&style, components.Weight(entry.Weight))
	}
	if entry.TextColor != "" {
		color, err := parseColor(entry.TextColor)
		if err != nil {
			return stylecs.Style{}, fmt.Errorf("text_color: %w", err)
		}
		stylecs.Put(&style, components.NewTextColor(color))
	}
	if entry.BackgroundColor != "" {
		color, err := parseColor(entry.BackgroundColor)
		if err != nil {
			return stylecs.Style{}, fmt.Errorf("background_color: %w", err)
		}
		stylecs.Put(&style, components.NewBackgroundColor(color))
	}
	if padding, ok := buildPadding(entry.Padding); ok {
		stylecs.Put(&style, padding)
	}
	if entry.Align != "" {
		align, err := parseAlignment(entry.Align)
		if err != nil {
			return stylecs.Style{}, err
		}
		stylecs.Put(&style, align)
	}
	return style, nil
}

func buildPadding(entry paddingEntry) (components.Padding, bool) {
	var padding components.Padding
	set := false
	side := func(dst *components.Dimension, src *float32) {
		if src != nil {
			*dst = components.Points(*src)
			set = true
		}
	}
	side(&padding.Left, entry.Left)
	side(&padding.Top, entry.Top)
	side(&padding.Right, entry.Right)
	side(&padding.Bottom, entry.Bottom)
	return padding, set
}

func parseFontStyle(s string) (components.FontStyle, error) {
	switch s {
	case "regular":
		return components.Regular, nil
	case "italic":
		return components.Italic, nil
	case "oblique":
		return components.Oblique, nil
	default:
		return 0, fmt.Errorf("unknown font_style %q (want regular, italic or oblique)", s)
	}
}

func parseAlignment(s string) (components.Alignment, error) {
	switch s {
	case "left":
		return components.AlignLeft, nil
	case "center":
		return components.AlignCenter, nil
	case "right":
		return components.AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown align %q (want left, center or right)", s)
	}
}

// parseColor accepts #RRGGBB and #RRGGBBAA.
func parseColor(s string) (components.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("invalid color %q: missing leading #", s)
	}
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return components.Hex(uint32(value)), nil
	}
	return components.Color(value), nil
}
