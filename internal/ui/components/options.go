package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/michoacana/antojo/internal/ui/theme"
)

// OptionItem is a single selectable answer.
type OptionItem struct {
	Label  string
	Action func() tea.Cmd
}

// OptionList is a vertical list of answers. Number keys pick an item
// directly; arrows move the highlight.
type OptionList struct {
	Items    []OptionItem
	Selected int
	keys     KeyMap
}

// NewOptionList creates a list with the first item highlighted.
func NewOptionList(items []OptionItem) OptionList {
	return OptionList{Items: items, keys: DefaultKeyMap()}
}

// Update handles keyboard navigation and selection.
func (m OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, m.keys.Down):
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, m.keys.Select):
		return m, m.choose(m.Selected)
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(m.Items) {
			m.Selected = n - 1
			return m, m.choose(m.Selected)
		}
	}
	return m, nil
}

func (m OptionList) choose(i int) tea.Cmd {
	if a := m.Items[i].Action; a != nil {
		return a()
	}
	return nil
}

// View renders the list.
func (m OptionList) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		line := strconv.Itoa(i+1) + ")  " + item.Label
		if i == m.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
