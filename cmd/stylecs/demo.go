package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stylecs"
	"stylecs/components"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through override-merge and inherit-merge on a small cascade",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDemo(cmd.OutOrStdout(), useColor(cmd))
		return nil
	},
}

func runDemo(out io.Writer, colored bool) {
	step := color.New(color.FgGreen, color.Bold)
	if !colored {
		step.DisableColor()
	}

	base := stylecs.NewStyle()
	stylecs.Put(&base, components.FontSize(18))
	stylecs.Put(&base, components.Padding{Surround: components.Surround{
		Left:  components.Points(10),
		Right: components.Points(10),
	}})
	fmt.Fprintf(out, "%s\n", step.Sprint("base style"))
	writeDemoStyle(out, base)

	heading := stylecs.NewStyle()
	stylecs.Put(&heading, components.Padding{Surround: components.Surround{
		Top:    components.Points(10),
		Bottom: components.Points(10),
	}})
	fmt.Fprintf(out, "\n%s\n", step.Sprint("heading overrides"))
	writeDemoStyle(out, heading)

	// Padding merges side by side: the heading's set sides win, the
	// base fills in the rest.
	merged := heading.MergedWith(base)
	fmt.Fprintf(out, "\n%s\n", step.Sprint("heading merged over base"))
	writeDemoStyle(out, merged)

	parent := stylecs.NewStyle()
	stylecs.Put(&parent, components.FontSize(12))
	stylecs.Put(&parent, components.NewTextColor(components.Hex(0xFF0000)))
	stylecs.Put(&parent, components.NewBackgroundColor(components.Hex(0xFFFFFF)))
	fmt.Fprintf(out, "\n%s\n", step.Sprint("parent style"))
	writeDemoStyle(out, parent)

	// Inheriting pulls in the parent's text color but neither its
	// font size, which the child already sets, nor its background,
	// which does not inherit.
	inherited := merged.InheritedFrom(parent)
	fmt.Fprintf(out, "\n%s\n", step.Sprint("child inherited from parent"))
	writeDemoStyle(out, inherited)
}

func writeDemoStyle(out io.Writer, style stylecs.Style) {
	for _, name := range style.SortedNames() {
		component, _ := style.GetByName(name)
		fmt.Fprintf(out, "  %s = %v\n", name, component.Component())
	}
}
