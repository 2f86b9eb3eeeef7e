package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/michoacana/antojo/internal/quiz"
	"github.com/michoacana/antojo/internal/recommend"
	"github.com/michoacana/antojo/internal/screen"
	"github.com/michoacana/antojo/internal/ui/components"
	"github.com/michoacana/antojo/internal/ui/layout"
	"github.com/michoacana/antojo/internal/ui/theme"
)

// ResultScreen renders a settled submission: the product card on success,
// the error view otherwise. Both offer the restart button.
type ResultScreen struct {
	outcome   recommend.Outcome
	imageBase string
	keys      components.KeyMap
	restarted bool
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates the result panel. imageBase is prefixed to the product image.
func New(outcome recommend.Outcome, imageBase string) *ResultScreen {
	return &ResultScreen{
		outcome:   outcome,
		imageBase: imageBase,
		keys:      components.DefaultKeyMap(),
	}
}

func (r *ResultScreen) Title() string {
	if r.outcome.IsError() {
		return "Error"
	}
	return "Recomendación"
}

func (r *ResultScreen) Init() tea.Cmd { return nil }

// Outcome returns the outcome being shown.
func (r *ResultScreen) Outcome() recommend.Outcome { return r.outcome }

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	if key.Matches(kmsg, r.keys.Restart) && !r.restarted {
		r.restarted = true
		return r, func() tea.Msg { return quiz.Restart() }
	}
	return r, nil
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return components.Hints(r.keys.Restart, r.keys.Quit)
}

func (r *ResultScreen) View(width, height int) string {
	var card string
	if r.outcome.IsError() || r.outcome.Recommendation == nil {
		card = r.errorCard()
	} else {
		card = r.productCard(width)
	}
	content := card + "\n\n" + components.NewButton("Regresar", true).View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(content))
}

func (r *ResultScreen) productCard(width int) string {
	rec := r.outcome.Recommendation
	p := rec.Product

	textWidth := 50
	if width-12 < textWidth {
		textWidth = width - 12
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("¡Tu recomendación del día es!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(WeatherLine(rec.Weather)))
	b.WriteString("\n")
	b.WriteString(theme.Price.Render("Precio: " + p.Price))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(textWidth).Align(lipgloss.Center).Foreground(theme.Text).Render(p.Justification))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(ImageURL(r.imageBase, p.Image)))

	return theme.Card.Align(lipgloss.Center).Render(b.String())
}

func (r *ResultScreen) errorCard() string {
	var b strings.Builder
	b.WriteString(theme.ErrorTitle.Render("¡UPS!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(ErrorText(r.outcome)))
	return theme.ErrorCard.Align(lipgloss.Center).Render(b.String())
}

// WeatherGlyph returns the icon for a weather category; unknown values
// get a neutral thermometer.
func WeatherGlyph(w recommend.Weather) string {
	switch w {
	case recommend.WeatherSunny:
		return "☀️"
	case recommend.WeatherCloudy:
		return "☁️"
	case recommend.WeatherRainy:
		return "🌧️"
	}
	return "🌡️"
}

// WeatherLine renders the weather sentence of the product card.
func WeatherLine(w recommend.Weather) string {
	return strings.TrimSpace(fmt.Sprintf("El clima es %s %s", w, WeatherGlyph(w)))
}

// ErrorText is the message shown in the error view.
func ErrorText(o recommend.Outcome) string {
	switch o.Kind {
	case recommend.KindServerError:
		return fmt.Sprintf("Error %d: %s", o.Status, o.Message)
	case recommend.KindNetworkError:
		return recommend.ConnectionErrorMessage
	}
	if o.Message != "" {
		return o.Message
	}
	return recommend.ConnectionErrorMessage
}

// ImageURL joins the static image base and the image name unchanged.
func ImageURL(base, image string) string {
	if base == "" {
		return image
	}
	return strings.TrimSuffix(base, "/") + "/" + image
}
