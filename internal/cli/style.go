package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles for human-facing status output. Styling applies only when
// stderr is a terminal; piped output stays plain.
type styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

func newStyles() *styles {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		plain := lipgloss.NewStyle()
		return &styles{Success: plain, Error: plain, Muted: plain}
	}
	return &styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
