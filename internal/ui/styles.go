package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/NopAngel/fancy-tree/internal/color"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	symCheck = "✔"
	symCross = "✖"
)

// SetColor makes the status styles follow the tree's color choice. Auto keeps
// lipgloss's own detection.
func SetColor(choice color.Choice) {
	switch choice {
	case color.ChoiceOff:
		lipgloss.SetColorProfile(termenv.Ascii)
	case color.ChoiceAnsi:
		lipgloss.SetColorProfile(termenv.ANSI)
	case color.ChoiceOn:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(symCheck+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(symCross+" "+msg))
}

func Muted(s string) string { return mutedStyle.Render(s) }

func Title(s string) string { return titleStyle.Render(s) }

func Accent(s string) string { return accentStyle.Render(s) }

// Panel frames lines in a rounded border.
func Panel(lines []string) string {
	return panelStyle.Render(strings.Join(lines, "\n"))
}
