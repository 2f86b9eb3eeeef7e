package question

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/michoacana/antojo/internal/quiz"
	"github.com/michoacana/antojo/internal/screen"
	"github.com/michoacana/antojo/internal/ui/components"
	"github.com/michoacana/antojo/internal/ui/layout"
	"github.com/michoacana/antojo/internal/ui/theme"
)

// QuestionScreen shows one question panel. Choosing an option emits an
// answer event for the question's key, once; a question without a key
// emits nothing the session will act on.
type QuestionScreen struct {
	question quiz.Question
	index    int
	total    int
	options  components.OptionList
	keys     components.KeyMap
	answered bool
}

var _ screen.Screen = (*QuestionScreen)(nil)

// New creates the panel for question q at position index of total.
func New(q quiz.Question, index, total int) *QuestionScreen {
	items := make([]components.OptionItem, len(q.Options))
	for i, opt := range q.Options {
		ev := quiz.Answer(q.Key, opt.Value)
		items[i] = components.OptionItem{
			Label:  opt.Label,
			Action: func() tea.Cmd { return func() tea.Msg { return ev } },
		}
	}
	return &QuestionScreen{
		question: q,
		index:    index,
		total:    total,
		options:  components.NewOptionList(items),
		keys:     components.DefaultKeyMap(),
	}
}

func (s *QuestionScreen) Title() string { return "Cuestionario" }

func (s *QuestionScreen) Init() tea.Cmd { return nil }

// Index returns the panel position.
func (s *QuestionScreen) Index() int { return s.index }

func (s *QuestionScreen) Progress() (int, int) { return s.index + 1, s.total }

// Answered reports whether an option has already been chosen.
func (s *QuestionScreen) Answered() bool { return s.answered }

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.answered {
		return s, nil
	}
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if cmd != nil && s.question.Key != "" {
		s.answered = true
	}
	return s, cmd
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := components.Hints(s.keys.Up, s.keys.Down, s.keys.Select)
	if n := len(s.question.Options); n > 1 {
		hints = append(hints, layout.KeyHint{Key: "1-" + strconv.Itoa(n), Description: "Elegir directo"})
	}
	return append(hints, components.Hints(s.keys.Quit)...)
}

func (s *QuestionScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	barWidth := 40
	if width-8 < barWidth {
		barWidth = width - 8
	}

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.question.Prompt)

	var b strings.Builder
	b.WriteString(center.Render(components.NewStepBar(s.index+1, s.total, barWidth).View()))
	b.WriteString("\n\n")
	b.WriteString(center.Render(prompt))
	b.WriteString("\n\n")

	// Options are left-aligned inside a centered block.
	b.WriteString(center.Render(lipgloss.NewStyle().Align(lipgloss.Left).Render(s.options.View())))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
