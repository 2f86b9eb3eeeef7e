package recommend

import (
	"context"
	"time"

	"github.com/michoacana/antojo/internal/quiz"
)

// Weather is the server-reported weather category.
type Weather string

const (
	WeatherSunny  Weather = "soleado"
	WeatherCloudy Weather = "nublado"
	WeatherRainy  Weather = "lluvioso"
)

// Known reports whether w is one of the three categories the server emits.
func (w Weather) Known() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRainy:
		return true
	}
	return false
}

// Product is a recommended catalog item as sent by the server.
type Product struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	Image         string `json:"image"`
	Justification string `json:"justification"`
}

// Recommendation is the success payload of POST /recommend.
type Recommendation struct {
	Product Product `json:"recommended_product"`
	Weather Weather `json:"weather"`
}

// ErrorPayload is the body of a non-2xx response.
type ErrorPayload struct {
	Error   string  `json:"error"`
	Weather Weather `json:"weather,omitempty"`
}

// Kind classifies a settled submission.
type Kind string

const (
	KindSuccess      Kind = "success"
	KindServerError  Kind = "server_error"
	KindNetworkError Kind = "network_error"
)

// ConnectionErrorMessage is shown for every transport-class failure.
const ConnectionErrorMessage = "Error de Conexión: No se pudo contactar al servidor. Reintenta."

// Outcome is the settled result of one submission. Exactly one of
// Recommendation (success) or Message (errors) is meaningful.
type Outcome struct {
	Kind           Kind
	Recommendation *Recommendation
	Status         int
	Message        string
	Latency        time.Duration
	Body           []byte
	Err            error
}

// IsError reports whether the outcome should render the error view.
func (o Outcome) IsError() bool {
	return o.Kind != KindSuccess
}

// Request is one submission: the answers of a single attempt plus the
// attempt's identifier.
type Request struct {
	SessionID string
	Record    quiz.Record
}

// Submitter sends a request and always settles to an Outcome.
type Submitter interface {
	Submit(ctx context.Context, req Request) Outcome
}

// Logger is the subset of a logger the client writes diagnostics to.
type Logger interface {
	Printf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}
