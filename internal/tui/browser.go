package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/logos-lang/atlas/internal/morph"
)

// BrowserModel is the Bubble Tea model for browsing a built lexicon:
// a filterable lemma list on the left, the selected lemma plus its
// paradigm endings on the right.
type BrowserModel struct {
	dict morph.Dictionary

	filtered []morph.Lemma
	cursor   int
	offset   int

	searchInput textinput.Model
	searching   bool
	searchTerm  string

	showParadigms bool

	width  int
	height int
	ready  bool
}

// NewBrowser creates a browser over the given dictionary.
func NewBrowser(dict morph.Dictionary) BrowserModel {
	si := textinput.New()
	si.Placeholder = "Filter stems..."
	si.CharLimit = 50
	si.Width = 30

	return BrowserModel{
		dict:        dict,
		filtered:    dict.Lemmas,
		searchInput: si,
	}
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.filtered) - 1
		case "p":
			m.showParadigms = !m.showParadigms
		case "/":
			m.searching = true
			m.searchInput.SetValue(m.searchTerm)
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.applyFilter(m.searchInput.Value())
		return m, nil
	case "esc":
		m.searching = false
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *BrowserModel) applyFilter(term string) {
	m.searchTerm = term
	m.cursor = 0
	m.offset = 0
	if term == "" {
		m.filtered = m.dict.Lemmas
		return
	}
	var out []morph.Lemma
	for _, l := range m.dict.Lemmas {
		if strings.Contains(l.Text, term) {
			out = append(out, l)
		}
	}
	m.filtered = out
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Atlas lexicon"))
	b.WriteString(countStyle.Render(fmt.Sprintf("%d lemmas, %d paradigms",
		len(m.dict.Lemmas), len(m.dict.Paradigms))))
	if m.searchTerm != "" {
		b.WriteString(countStyle.Render(fmt.Sprintf("(filter: %q, %d shown)",
			m.searchTerm, len(m.filtered))))
	}
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(searchBoxStyle.Render(m.searchInput.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")
	if m.showParadigms {
		b.WriteString(m.renderParadigms())
	} else {
		b.WriteString(m.renderDetail())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ navigate • / filter • p paradigms • g/G first/last • q quit"))
	return b.String()
}

func (m BrowserModel) renderList() string {
	if len(m.filtered) == 0 {
		return itemStyle.Render("(no lemmas)")
	}

	visible := m.height - 14
	if visible < 3 {
		visible = 3
	}
	offset := m.offset
	if m.cursor < offset {
		offset = m.cursor
	}
	if m.cursor >= offset+visible {
		offset = m.cursor - visible + 1
	}

	var b strings.Builder
	end := offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := offset; i < end; i++ {
		l := m.filtered[i]
		line := fmt.Sprintf("%-16s %-10s %s", l.Text, l.POS, l.Gender)
		if i == m.cursor {
			b.WriteString(itemSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m BrowserModel) renderDetail() string {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return ""
	}
	l := m.filtered[m.cursor]

	var b strings.Builder
	b.WriteString(labelStyle.Render("Stem"))
	b.WriteString(valueStyle.Render(l.Text))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("POS"))
	b.WriteString(valueStyle.Render(string(l.POS)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Gender"))
	b.WriteString(valueStyle.Render(string(l.Gender)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("ID"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", l.ID)))

	return detailBoxStyle.Render(b.String())
}

func (m BrowserModel) renderParadigms() string {
	var b strings.Builder
	for i, p := range m.dict.Paradigms {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("#%d", p.ID)))
		var endings []string
		for _, e := range p.Endings {
			endings = append(endings, fmt.Sprintf("%d:-%s", int(e.Flags), e.Suffix))
		}
		b.WriteString(valueStyle.Render(strings.Join(endings, "  ")))
	}
	return detailBoxStyle.Render(b.String())
}
