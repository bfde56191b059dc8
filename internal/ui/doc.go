// Package ui provides the color palette and lipgloss styles used by the CLI.
// Styles are bound to a lipgloss renderer for the destination writer, so
// output that is piped or redirected carries no escape sequences. The
// NO_COLOR environment variable (https://no-color.org/) disables color
// entirely.
package ui
