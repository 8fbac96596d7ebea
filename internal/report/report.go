// Package report renders the template-discovery frequency table for the
// terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/logos-lang/atlas/internal/lexicon"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ecdc4"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Frequencies renders the discovery rows as an aligned two-column table.
// Greek template names are padded by display width, not byte length.
func Frequencies(rows []lexicon.TemplateCount) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Template statistics"))
	b.WriteString("\n")

	nameWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.Name); w > nameWidth {
			nameWidth = w
		}
	}

	total := 0
	for _, row := range rows {
		pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(row.Name))
		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			nameStyle.Render(row.Name), pad,
			countStyle.Render(fmt.Sprintf("%6d", row.Count))))
		total += row.Count
	}

	b.WriteString(footerStyle.Render(
		fmt.Sprintf("%d distinct templates, %d occurrences", len(rows), total)))
	b.WriteString("\n")

	return b.String()
}
