package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/michoacana/antojo/internal/quiz"
	"github.com/michoacana/antojo/internal/screen"
	"github.com/michoacana/antojo/internal/ui/components"
	"github.com/michoacana/antojo/internal/ui/layout"
	"github.com/michoacana/antojo/internal/ui/theme"
)

const paleta = `   ╭───╮
   │ ◕ │
   │ ‿ │
   ╰─┬─╯
     │`

// WelcomeScreen is the landing panel with the start button.
type WelcomeScreen struct {
	keys    components.KeyMap
	started bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New() *WelcomeScreen {
	return &WelcomeScreen{keys: components.DefaultKeyMap()}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nil }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	if key.Matches(kmsg, w.keys.Start) && !w.started {
		w.started = true
		return w, func() tea.Msg { return quiz.Start() }
	}
	return w, nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return components.Hints(w.keys.Start, w.keys.Quit)
}

func (w *WelcomeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	sections := []string{
		center.Render(lipgloss.NewStyle().Foreground(theme.Secondary).Render(paleta)),
		center.Render(RenderBanner(width)),
		"",
		center.Render(theme.Subtitle.Render("Responde cuatro preguntas y te recomendamos")),
		center.Render(theme.Subtitle.Render("el antojo perfecto para el clima de hoy.")),
		"",
		center.Render(components.NewButton("Comenzar", true).View()),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
