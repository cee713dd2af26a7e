// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#A40000")
	accentColor  = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#888888")
)

// styles are bound to the writer they render for, so colors are dropped
// when that writer is not a terminal.
type styles struct {
	err     lipgloss.Style
	title   lipgloss.Style
	desc    lipgloss.Style
	section lipgloss.Style
	flag    lipgloss.Style
	arg     lipgloss.Style
	def     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		err:     r.NewStyle().Bold(true).Foreground(primaryColor),
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		desc:    r.NewStyle().Foreground(accentColor).Italic(true),
		section: r.NewStyle().Bold(true).Foreground(accentColor),
		flag:    r.NewStyle().Foreground(lipgloss.Color("#00AA00")).Bold(true),
		arg:     r.NewStyle().Foreground(lipgloss.Color("#00AAAA")).Bold(true),
		def:     r.NewStyle().Foreground(mutedColor).Italic(true),
	}
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", newStyles(w).err.Render("Error:"), message)
}
