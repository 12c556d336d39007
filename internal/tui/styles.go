// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for psu.
// This file defines the shared lipgloss styles used by the table, the entry
// popup and the help screen.
package tui // import "github.com/psu-tools/psu/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorSpecial   = lipgloss.Color("208") // Orange
	colorError     = lipgloss.Color("196") // Bright red
	colorWhite     = lipgloss.Color("231")
	colorRowEven   = lipgloss.Color("235")
	colorRowOdd    = lipgloss.Color("237")
)

var (
	docStyle = lipgloss.NewStyle().Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	specialStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1)

	// Table
	headerStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorHighlight).
			Bold(true)
	rowStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Height(3)
	selectedRowStyle  = rowStyle.Reverse(true)
	selectedCellStyle = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Reverse(true).
				Bold(true)
	scrollbarStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	scrollbarThumb = lipgloss.NewStyle().Foreground(colorHighlight)

	// Popup
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorHighlight).
			Padding(0, 1)
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle)
	activeInputStyle = inputStyle.
				BorderForeground(colorSpecial)
	inputLabelStyle       = lipgloss.NewStyle().Foreground(colorSubtle)
	activeInputLabelStyle = lipgloss.NewStyle().Foreground(colorSpecial).Bold(true)
	cursorStyle           = lipgloss.NewStyle().Reverse(true)

	// Status messages
	statusMessageStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(colorWhite).
				Background(colorHighlight)
)
