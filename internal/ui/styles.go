// Package ui carries the shared Lip Gloss styles and small rendering
// helpers used by the CLI and the TUI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title   = lipgloss.NewStyle().Bold(true)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Muted   = lipgloss.NewStyle().Faint(true)
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	Packed   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	Help     = lipgloss.NewStyle().Faint(true)
)

const (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"
)

// OK prints a toast-style confirmation line after a mutation.
func OK(msg string) {
	fmt.Println(Success.Render("✔ " + msg))
}

// Fail prints an error line to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Error.Render("✖ " + msg))
}

// Panel prints lines inside a rounded border.
func Panel(lines []string) {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	fmt.Println(border.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders packed progress as a bar plus a percent figure.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		width = 28
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %3d%%", percent)
}
