package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michoacana/antojo/internal/quiz"
)

var fullRecord = quiz.Record{ProductType: "helado", Craving: "dulce", Base: "leche", Flavor: "fruta"}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c, srv
}

func TestSubmit_Success(t *testing.T) {
	var got map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommend", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"recommended_product":{"name":"Helado de Fresa","price":"$35","image":"helado_fresa.png","justification":"Cremoso y frutal."},"weather":"soleado"}`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	require.Equal(t, KindSuccess, out.Kind)
	require.NotNil(t, out.Recommendation)
	assert.Equal(t, "Helado de Fresa", out.Recommendation.Product.Name)
	assert.Equal(t, "$35", out.Recommendation.Product.Price)
	assert.Equal(t, WeatherSunny, out.Recommendation.Weather)
	assert.False(t, out.IsError())
	assert.Equal(t, map[string]string{
		"tipo_producto_general": "helado",
		"tipo_antojo":           "dulce",
		"base":                  "leche",
		"tipo_sabor":            "fruta",
	}, got)
}

func TestSubmit_ServerErrorWithMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Falta base"}`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	assert.Equal(t, KindServerError, out.Kind)
	assert.Equal(t, 400, out.Status)
	assert.Equal(t, "Falta base", out.Message)
	assert.Nil(t, out.Recommendation)
}

func TestSubmit_ServerErrorWithoutMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	assert.Equal(t, KindServerError, out.Kind)
	assert.Equal(t, 500, out.Status)
	assert.Equal(t, "server error 500", out.Message)
}

func TestSubmit_ServerErrorNonObjectJSON(t *testing.T) {
	for name, body := range map[string]string{
		"array":      `[]`,
		"string":     `"boom"`,
		"non-string": `{"error":42}`,
		"null":       `null`,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(body))
			})

			out := c.Submit(context.Background(), Request{Record: fullRecord})

			assert.Equal(t, KindServerError, out.Kind)
			assert.Equal(t, 503, out.Status)
			assert.Equal(t, "server error 503", out.Message)
		})
	}
}

func TestSubmit_SuccessKeepsStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"recommended_product":{"name":"Paleta de Mango","price":"$25","image":"paleta_mango.png","justification":"x"},"weather":"nublado"}`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	require.Equal(t, KindSuccess, out.Kind)
	assert.Equal(t, http.StatusCreated, out.Status)
}

func TestSubmit_ServerErrorNonJSONIsNetworkClass(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	assert.Equal(t, KindNetworkError, out.Kind)
	assert.Equal(t, ConnectionErrorMessage, out.Message)
	assert.Equal(t, http.StatusBadGateway, out.Status)
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, out.Err, &invalid)
}

func TestSubmit_UnknownWeatherAccepted(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recommended_product":{"name":"Agua de Jamaica","price":"$20","image":"agua_jamaica.png","justification":"x"},"weather":"nevado"}`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	require.Equal(t, KindSuccess, out.Kind)
	assert.Equal(t, Weather("nevado"), out.Recommendation.Weather)
	assert.False(t, out.Recommendation.Weather.Known())
}

func TestSubmit_SchemaMismatchIsNetworkClass(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":"soleado"}`))
	})

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	assert.Equal(t, KindNetworkError, out.Kind)
	assert.Equal(t, ConnectionErrorMessage, out.Message)
}

func TestSubmit_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	var logged []string
	c, err := NewClient(Config{BaseURL: addr}, WithLogger(loggerFunc(func(format string, args ...any) {
		logged = append(logged, format)
	})))
	require.NoError(t, err)

	out := c.Submit(context.Background(), Request{Record: fullRecord})

	assert.Equal(t, KindNetworkError, out.Kind)
	assert.Equal(t, ConnectionErrorMessage, out.Message)
	var transport *ErrTransport
	assert.ErrorAs(t, out.Err, &transport)
	assert.Len(t, logged, 1)
}

func TestSubmit_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := c.Submit(ctx, Request{Record: fullRecord})
	assert.Equal(t, KindNetworkError, out.Kind)
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		base, endpoint, want string
		wantErr              bool
	}{
		{"", "", "http://localhost:8080/recommend", false},
		{"http://api.local:9000", "/recommend", "http://api.local:9000/recommend", false},
		{"http://api.local/v1/", "recommend", "http://api.local/v1/recommend", false},
		{"http://ignored", "https://other.example/recommend", "https://other.example/recommend", false},
		{"api.local", "/recommend", "", true},
	}
	for _, tt := range tests {
		got, err := ResolveEndpoint(tt.base, tt.endpoint)
		if tt.wantErr {
			assert.Error(t, err, "base=%q endpoint=%q", tt.base, tt.endpoint)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

type loggerFunc func(format string, args ...any)

func (f loggerFunc) Printf(format string, args ...any) { f(format, args...) }
