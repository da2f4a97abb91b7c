// SPDX-License-Identifier: MIT

// Package render: lipgloss palette and styles for the terminal format.
package render

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorHeader = lipgloss.Color("#00BFFF") // Cyan — coordinate names
	colorMuted  = lipgloss.Color("#636363") // Gray — vanishing components
	colorBorder = lipgloss.Color("#5B8DEF") // Blue — grid frame
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	zeroStyle   = lipgloss.NewStyle().Faint(true).Foreground(colorMuted)
	gridStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
