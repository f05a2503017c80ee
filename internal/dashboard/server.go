package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/chart"
	"github.com/Alias1177/RateShift/internal/metrics"
	"github.com/Alias1177/RateShift/models"
)

// DashboardBuilder produces the data for one render
type DashboardBuilder interface {
	Build(ctx context.Context) models.Dashboard
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// ServerConfig holds server configuration
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Chart        chart.Options
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig(addr string) ServerConfig {
	return ServerConfig{
		Addr:         addr,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		Chart:        chart.DefaultOptions(),
	}
}

// Server serves the dashboard page, its chart and a JSON view
type Server struct {
	router  *mux.Router
	server  *http.Server
	builder DashboardBuilder
	history models.FundDataSource
	config  ServerConfig
	logger  zerolog.Logger
}

type apiResponse struct {
	models.Dashboard
	RecommendationText string `json:"recommendation_text"`
	FallbackReason     string `json:"fallback_reason,omitempty"`
}

func NewServer(config ServerConfig, builder DashboardBuilder, history models.FundDataSource) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		builder: builder,
		history: history,
		config:  config,
		logger:  log.With().Str("component", "http_server").Logger(),
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         config.Addr,
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.png", s.handleChart).Methods(http.MethodGet)
	s.router.HandleFunc("/api/dashboard", s.handleAPI).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.config.Addr).Msg("Starting dashboard server")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down dashboard server")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	d := s.builder.Build(r.Context())

	// Render into a buffer so a template error does not leave a half-written page
	var buf bytes.Buffer
	if err := RenderHTML(&buf, d); err != nil {
		s.logger.Error().Err(err).Msg("Rendering dashboard page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn().Err(err).Msg("Writing dashboard page")
	}
	metrics.ObserveRender("html", time.Since(start).Seconds())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	history, err := s.history.Load(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Loading fund history")
		http.Error(w, "fund history unavailable", http.StatusServiceUnavailable)
		return
	}

	img, err := chart.PNGBytes(history, s.config.Chart)
	if err != nil {
		s.logger.Error().Err(err).Msg("Rendering chart")
		http.Error(w, "chart unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=3600")
	_, _ = w.Write(img)
	metrics.ObserveRender("chart", time.Since(start).Seconds())
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	d := s.builder.Build(r.Context())
	resp := apiResponse{Dashboard: d, RecommendationText: d.Recommendation.Text()}
	if d.Rate.Err != nil {
		resp.FallbackReason = d.Rate.Err.Error()
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("Encoding dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// requestIDMiddleware adds unique request ID to each request
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLoggingMiddleware logs every request once it completes
func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		requestID, _ := r.Context().Value(requestIDKey).(string)
		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
