// Package ui implements the interactive theme browser: a rule list on
// the left, the style a matching element would resolve to on the right.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"stylecs"
	"stylecs/internal/manifest"
	"stylecs/sheet"
)

type ruleItem struct {
	rule sheet.Rule
}

func (i ruleItem) Title() string { return i.rule.String() }

func (i ruleItem) Description() string {
	names := i.rule.Style.SortedNames()
	if len(names) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(names))
	for j, name := range names {
		parts[j] = name.String()
	}
	return strings.Join(parts, ", ")
}

func (i ruleItem) FilterValue() string { return i.rule.String() }

type browseModel struct {
	theme  *manifest.Theme
	list   list.Model
	state  sheet.State
	width  int
	height int
}

// NewBrowseModel returns a Bubble Tea model that browses a theme's
// rules. Selecting a rule previews the style an element matching its
// selector resolves to; h, f and a toggle the preview's hovered,
// focused and active state.
func NewBrowseModel(theme *manifest.Theme) tea.Model {
	items := make([]list.Item, 0, theme.Sheet.Len())
	for _, rule := range theme.Sheet.Rules() {
		items = append(items, ruleItem{rule: rule})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = theme.Name
	if l.Title == "" {
		l.Title = "theme"
	}
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return &browseModel{
		theme:  theme,
		list:   l,
		width:  80,
		height: 24,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h":
			m.state.Hovered = !m.state.Hovered
			return m, nil
		case "f":
			m.state.Focused = !m.state.Focused
			return m, nil
		case "a":
			m.state.Active = !m.state.Active
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.height = msg.Height
			m.list.SetSize(m.listWidth(), msg.Height-2)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *browseModel) listWidth() int {
	w := m.width / 2
	if w < 24 {
		w = 24
	}
	return w
}

func (m *browseModel) View() string {
	preview := m.previewView()
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), preview)
}

func (m *browseModel) previewView() string {
	paneStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(m.width - m.listWidth() - 4)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	item, ok := m.list.SelectedItem().(ruleItem)
	if !ok {
		return paneStyle.Render("no rules")
	}

	element := sampleElement(item.rule)
	resolved := m.theme.Sheet.EffectiveStyleFor(element, m.state)

	var b strings.Builder
	b.WriteString(headerStyle.Render(item.rule.String() + stateSuffix(m.state)))
	b.WriteString("\n\n")

	names := resolved.SortedNames()
	nameWidth := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name.String()); w > nameWidth {
			nameWidth = w
		}
	}
	for _, name := range names {
		component, _ := resolved.GetByName(name)
		text := name.String()
		pad := strings.Repeat(" ", nameWidth-runewidth.StringWidth(text))
		fmt.Fprintf(&b, "%s%s  %s\n", nameStyle.Render(text), pad, componentValue(component))
	}
	b.WriteString("\nh/f/a toggle state, q quits")

	return paneStyle.Render(b.String())
}

// sampleElement builds the minimal element style the rule's selector
// matches.
func sampleElement(rule sheet.Rule) stylecs.Style {
	style := stylecs.NewStyle()
	if id, ok := rule.Selector.ID(); ok {
		stylecs.Put(&style, sheet.ID(id))
	}
	if classes, ok := rule.Selector.Classes(); ok {
		stylecs.Put(&style, sheet.Classes(classes))
	}
	return style
}

func stateSuffix(state sheet.State) string {
	var b strings.Builder
	if state.Hovered {
		b.WriteString(" :hover")
	}
	if state.Focused {
		b.WriteString(" :focus")
	}
	if state.Active {
		b.WriteString(" :active")
	}
	return b.String()
}

// componentValue strips the "name(...)" wrapper the component's
// String form carries, leaving just the value.
func componentValue(component stylecs.AnyComponent) string {
	text := component.String()
	prefix := component.Name().String() + "("
	if inner, ok := strings.CutPrefix(text, prefix); ok {
		return strings.TrimSuffix(inner, ")")
	}
	return text
}
