package loading

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/spinner"
	"charm.land/lipgloss/v2"

	"github.com/michoacana/antojo/internal/screen"
	"github.com/michoacana/antojo/internal/ui/components"
	"github.com/michoacana/antojo/internal/ui/layout"
	"github.com/michoacana/antojo/internal/ui/theme"
)

// LoadingScreen is shown while a submission is in flight. It ignores
// every key except quit.
type LoadingScreen struct {
	spinner spinner.Model
	keys    components.KeyMap
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates a LoadingScreen.
func New() *LoadingScreen {
	return &LoadingScreen{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		keys: components.DefaultKeyMap(),
	}
}

func (l *LoadingScreen) Title() string { return "" }

func (l *LoadingScreen) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	return components.Hints(l.keys.Quit)
}

func (l *LoadingScreen) View(width, height int) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Render("Buscando tu antojo ideal...")
	content := l.spinner.View() + " " + text
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
