// Package tui provides an interactive terminal browser for a built
// lexicon.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#FF6B6B") // titles
	colorSecondary = lipgloss.Color("#4ecdc4") // labels, counts
	colorAccent    = lipgloss.Color("#ffe66d") // stems, selection
	colorMuted     = lipgloss.Color("#666666") // help text
	colorText      = lipgloss.Color("#f1faee") // body text
	colorBgAlt     = lipgloss.Color("#2d3436") // selection background
	colorBorder    = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	itemSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				Background(colorBgAlt).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
