// Package usage renders the help text of a command line from its registry.
package usage

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mwantia/cmdline/registry"
)

// NameWidth is the column width names are padded to.
const NameWidth = 40

// Texts holds the free-form sections of the usage text.
type Texts struct {
	Overview string
	Example  string
	Footer   string
}

// Renderer formats a registry into usage text.
type Renderer struct {
	Program string
	Texts   Texts
	Color   bool
}

// Render returns the usage text. Actions and options are listed in the
// sorted order of their normalized names and shown in display form.
func (r *Renderer) Render(reg *registry.Registry) string {
	profile := reg.Profile()
	heading := r.heading()

	var sb strings.Builder
	sb.WriteString("\n")

	sb.WriteString(heading("Usage:"))
	sb.WriteString(" " + r.Program)
	if reg.HasActions() {
		sb.WriteString(" action")
	}
	sb.WriteString(" [options] [operands]\n")

	if r.Texts.Overview != "" {
		sb.WriteString("\n")
		sb.WriteString(r.Texts.Overview + "\n")
	}

	if reg.HasActions() {
		sb.WriteString("\n")
		sb.WriteString(heading("Supported actions:") + "\n")
		for _, a := range reg.Actions() {
			writeEntry(&sb, profile.Denormalize(a.Name), a.Help)
		}
	}

	if reg.HasOptions() {
		sb.WriteString("\n")
		sb.WriteString(heading("Supported options:") + "\n")
		for _, o := range reg.Options() {
			writeEntry(&sb, profile.Denormalize(profile.Delimited(o.Name)), o.Help)
		}
	}

	if r.Texts.Example != "" {
		sb.WriteString("\n")
		sb.WriteString(heading("Example:") + "\n")
		sb.WriteString("  " + r.Texts.Example + "\n")
	}

	if r.Texts.Footer != "" {
		sb.WriteString("\n")
		sb.WriteString(r.Texts.Footer + "\n")
	}

	return sb.String()
}

func (r *Renderer) heading() func(string) string {
	if !r.Color {
		return func(s string) string { return s }
	}

	c := color.New(color.Bold, color.FgCyan)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

func writeEntry(sb *strings.Builder, name, help string) {
	fmt.Fprintf(sb, "  %-*s%s\n", NameWidth, name, help)
}
