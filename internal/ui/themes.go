package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette is a set of terminal colors for report output.
type Palette struct {
	// Name is the identifier of the palette.
	Name    string
	Accent  lipgloss.TerminalColor
	Value   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
}

var (
	// OrangePalette is the default orange-dominant palette.
	OrangePalette = Palette{
		Name:    "orange",
		Accent:  lipgloss.Color("#FF8C00"),
		Value:   lipgloss.Color("#E0E0E0"),
		Dim:     lipgloss.Color("#666666"),
		Success: lipgloss.Color("#9ece6a"),
		Error:   lipgloss.Color("#FF4444"),
	}

	// NoColorPalette renders with the terminal's default colors.
	NoColorPalette = Palette{
		Name:    "none",
		Accent:  lipgloss.NoColor{},
		Value:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

// ColorDisabled reports whether color output must be suppressed, either by
// the caller or by the NO_COLOR environment variable.
func ColorDisabled(noColor bool) bool {
	if noColor {
		return true
	}
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// Styles are the lipgloss styles of the run report.
type Styles struct {
	Label   lipgloss.Style // "Fibonacci[a-b]:" prefix
	Final   lipgloss.Style // "Final results for a-b:" prefix
	Value   lipgloss.Style // value list
	Muted   lipgloss.Style // trailing information lines
	Failure lipgloss.Style // error lines
}

// NewStyles builds styles rendered for w. When w is not a terminal the
// renderer downgrades to plain ASCII, so the same styles are safe for pipes.
func NewStyles(w io.Writer, noColor bool) Styles {
	palette := OrangePalette
	if ColorDisabled(noColor) {
		palette = NoColorPalette
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		Label:   r.NewStyle().Foreground(palette.Accent).Bold(!ColorDisabled(noColor)),
		Final:   r.NewStyle().Foreground(palette.Success).Bold(!ColorDisabled(noColor)),
		Value:   r.NewStyle().Foreground(palette.Value),
		Muted:   r.NewStyle().Foreground(palette.Dim),
		Failure: r.NewStyle().Foreground(palette.Error),
	}
}
