package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"stylecs"
	"stylecs/internal/manifest"
	"stylecs/sheet"
)

var renderCmd = &cobra.Command{
	Use:   "render <theme.toml>",
	Short: "Resolve a theme's elements and print their effective styles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		if len(theme.Elements) == 0 {
			return fmt.Errorf("%s: theme declares no elements to render", args[0])
		}
		return renderTheme(cmd.OutOrStdout(), theme, useColor(cmd))
	},
}

func renderTheme(out io.Writer, theme *manifest.Theme, colored bool) error {
	// Each element carries its own state, so resolution is per element
	// rather than a uniform-state batch.
	resolved := make([]stylecs.Style, len(theme.Elements))
	for i, element := range theme.Elements {
		resolved[i] = theme.Sheet.EffectiveStyleFor(element.Style, element.State)
	}

	labelColor := color.New(color.FgCyan, color.Bold)
	nameColor := color.New(color.FgYellow)
	if !colored {
		labelColor.DisableColor()
		nameColor.DisableColor()
	}

	if theme.Name != "" {
		fmt.Fprintf(out, "theme: %s\n\n", theme.Name)
	}
	for i, element := range theme.Elements {
		label := element.Label + stateSuffix(element.State)
		fmt.Fprintf(out, "%s\n", labelColor.Sprint(label))
		writeStyleTable(out, resolved[i], nameColor)
		if i < len(theme.Elements)-1 {
			fmt.Fprintln(out)
		}
	}
	return nil
}

func writeStyleTable(out io.Writer, style stylecs.Style, nameColor *color.Color) {
	names := style.SortedNames()
	width := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name.String()); w > width {
			width = w
		}
	}
	for _, name := range names {
		component, _ := style.GetByName(name)
		text := name.String()
		pad := strings.Repeat(" ", width-runewidth.StringWidth(text))
		fmt.Fprintf(out, "  %s%s  %v\n", nameColor.Sprint(text), pad, component.Component())
	}
}

func stateSuffix(state sheet.State) string {
	var b strings.Builder
	if state.Hovered {
		b.WriteString(" :hover")
	}
	if state.Focused {
		b.WriteString(" :focus")
	}
	if state.Active {
		b.WriteString(" :active")
	}
	return b.String()
}
