package server

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/michoacana/antojo/internal/quiz"
	"github.com/michoacana/antojo/internal/recommend"
)

const (
	msgMissingAnswers  = "Faltan respuestas necesarias del cuestionario"
	msgProductNotFound = "Product not found in database"
	msgPredictionError = "Error en la predicción: "
)

// Options configures a Server. Zero values get defaults in New.
type Options struct {
	Addr      string
	ImageDir  string
	City      string
	Catalog   *Catalog
	Predictor Predictor
	Weather   WeatherSource
	Rand      *rand.Rand
	Logger    Logger
}

// Server is the reference recommendation backend.
type Server struct {
	engine    *gin.Engine
	addr      string
	city      string
	catalog   *Catalog
	predictor Predictor
	weather   WeatherSource
	logger    Logger

	mu  sync.Mutex
	rng *rand.Rand
}

type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) { log.Printf(format, args...) }

type sunnyWeather struct{}

func (sunnyWeather) Current(context.Context, string) recommend.Weather { return recommend.WeatherSunny }

// New builds the gin engine and registers the routes.
func New(opts Options) *Server {
	s := &Server{
		addr:      opts.Addr,
		city:      opts.City,
		catalog:   opts.Catalog,
		predictor: opts.Predictor,
		weather:   opts.Weather,
		logger:    opts.Logger,
		rng:       opts.Rand,
	}
	if s.addr == "" {
		s.addr = ":8080"
	}
	if s.city == "" {
		s.city = "Mexico City"
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.predictor == nil {
		s.predictor = NewRulePredictor(s.catalog)
	}
	if s.weather == nil {
		s.weather = sunnyWeather{}
	}
	if s.logger == nil {
		s.logger = stdLogger{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/recommend", s.handleRecommend)
	if opts.ImageDir != "" {
		r.Static("/static/images", opts.ImageDir)
	}

	s.engine = r
	return s
}

// Handler exposes the routes for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("starting recommendation service on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Printf("shutting down recommendation service...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type productBody struct {
	recommend.Product
	Category string `json:"category"`
}

func (s *Server) handleRecommend(c *gin.Context) {
	var rec quiz.Record
	if err := c.ShouldBindJSON(&rec); err != nil || !rec.Complete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingAnswers})
		return
	}

	ctx := c.Request.Context()
	weather := s.weather.Current(ctx, s.city)

	id, err := s.predictor.Predict(ctx, rec, weather)
	if err != nil {
		s.logger.Printf("predict: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   msgPredictionError + err.Error(),
			"weather": weather,
		})
		return
	}

	id = s.cohere(id, rec.ProductType)
	entry, ok := s.catalog.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommended_product": productBody{Product: entry.Product, Category: entry.Category},
		"weather":             weather,
	})
}

// cohere replaces a prediction whose category does not contain the chosen
// product type with a random product that does. With no such product the
// prediction stands.
func (s *Server) cohere(id, chosen string) string {
	if s.catalog.Coherent(id, chosen) {
		return id
	}
	candidates := s.catalog.InCategory(chosen)
	if len(candidates) == 0 {
		return id
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.IntN(len(candidates))]
}
