// Package server exposes audits over HTTP: POST a document to /v1/audit and
// get the contrast report back as JSON. It also serves /healthz and
// Prometheus metrics on /metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/config"
	"github.com/legible-dev/legible/internal/infrastructure/markup"
	"github.com/legible-dev/legible/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server handles HTTP audit requests.
type Server struct {
	cfg      config.ServerConfig
	mu       sync.RWMutex
	contrast config.ContrastConfig
	rules    port.RuleEngine
	metrics  *Metrics
	tracer   trace.Tracer
	security SecurityConfig
}

// New builds a Server from the loaded configuration. rules may be nil when no
// rule script is configured.
func New(cfg config.ServerConfig, contrastCfg config.ContrastConfig, rules port.RuleEngine) *Server {
	security := DefaultSecurityConfig()
	if len(cfg.AllowedOrigins) > 0 {
		security.AllowedOrigins = cfg.AllowedOrigins
	}
	if cfg.MaxBodyBytes > 0 {
		security.MaxBodyBytes = cfg.MaxBodyBytes
	}

	return &Server{
		cfg:      cfg,
		contrast: contrastCfg,
		rules:    rules,
		metrics:  NewMetrics(),
		tracer:   otel.Tracer("legible"),
		security: security,
	}
}

// SetContrastConfig swaps the contrast defaults applied to new requests.
// Requests already in flight keep the settings they started with.
func (s *Server) SetContrastConfig(cfg config.ContrastConfig) {
	s.mu.Lock()
	s.contrast = cfg
	s.mu.Unlock()
}

func (s *Server) contrastConfig() config.ContrastConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contrast
}

// Handler returns the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/audit", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleAudit)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealthz)))
	// Scrapes stay out of the active request gauge.
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.handleMetrics))
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errs:
		return err
	}
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "audit.handle")
	defer span.End()
	log := logging.FromContext(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "request body is empty")
		return
	}

	contrastCfg := s.contrastConfig()

	levelParam := r.URL.Query().Get("level")
	if levelParam == "" {
		levelParam = contrastCfg.Level
	}
	level, err := contrast.ParseLevel(levelParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	policyParam := r.URL.Query().Get("policy")
	if policyParam == "" {
		policyParam = contrastCfg.TransparentPolicy
	}
	policy, err := contrast.ParseTransparentPolicy(policyParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	span.SetAttributes(
		attribute.Int("document.bytes", len(body)),
		attribute.String("audit.level", string(level)),
	)

	report, err := s.audit(ctx, body, contrastCfg, level, policy)
	if err != nil {
		span.RecordError(err)
		log.Error().Err(err).Msg("audit request failed")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	passed, failed, indeterminate := report.Counts()
	span.SetAttributes(
		attribute.Int("audit.findings", len(report.Findings)),
		attribute.Int("audit.failed", failed),
	)
	log.Debug().
		Int("passed", passed).
		Int("failed", failed).
		Int("indeterminate", indeterminate).
		Msg("audit request served")

	s.metrics.ObserveAudit(report)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Error().Err(err).Msg("failed to encode report")
	}
}

// audit parses the posted document and runs the contrast pipeline on it.
func (s *Server) audit(ctx context.Context, body []byte, contrastCfg config.ContrastConfig, level contrast.Level, policy contrast.TransparentPolicy) (*entity.Report, error) {
	ctx, span := s.tracer.Start(ctx, "audit.run")
	defer span.End()

	doc, err := markup.ParseString("request", string(body))
	if err != nil {
		return nil, err
	}

	checker := contrast.Checker{
		Level:           level,
		Policy:          policy,
		LargeTextPx:     contrastCfg.LargeTextPx,
		LargeTextBoldPx: contrastCfg.LargeTextBoldPx,
	}
	detect := usecase.NewDetectColorsUseCase(doc, doc)
	audit := usecase.NewAuditDocumentUseCase(doc, detect, checker, s.rules)

	return audit.Execute(ctx, usecase.AuditDocumentInput{
		Document: "request",
		Nodes:    doc.TextNodes(),
		Suggest:  contrastCfg.Suggest,
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
