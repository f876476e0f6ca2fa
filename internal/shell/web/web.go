// Package web implements the browser form shell.
//
// The shell serves a single HTML page and a small JSON API: analyze text,
// an uploaded image or recorded voice, then translate the session subject.
// Browser microphones stream PCM over a WebSocket. Swagger UI documents the
// API and the health endpoints report readiness.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/aashnajoshi/TextSense/internal/docs"
	"github.com/aashnajoshi/TextSense/internal/format"
	"github.com/aashnajoshi/TextSense/internal/health"
	"github.com/aashnajoshi/TextSense/internal/shell"
)

//go:embed static/index.html
var static embed.FS

var indexTemplate = template.Must(template.ParseFS(static, "static/index.html"))

// Shell implements shell.Shell over HTTP.
type Shell struct {
	deps      shell.Deps
	port      int
	maxUpload int64
	health    *health.Checker

	sessions *sessions
	upgrader websocket.Upgrader
	mux      *http.ServeMux
	server   *http.Server
}

// Option customizes a Shell.
type Option func(*Shell)

// WithPort sets the listen port.
func WithPort(port int) Option {
	return func(s *Shell) { s.port = port }
}

// WithMaxUploadMB caps uploaded images and recordings.
func WithMaxUploadMB(mb int) Option {
	return func(s *Shell) {
		if mb > 0 {
			s.maxUpload = int64(mb) << 20
		}
	}
}

// WithHealth mounts a health checker on the mux.
func WithHealth(c *health.Checker) Option {
	return func(s *Shell) { s.health = c }
}

// New creates a web shell.
func New(deps shell.Deps, opts ...Option) *Shell {
	s := &Shell{
		deps:      deps,
		port:      8501,
		maxUpload: 20 << 20,
		sessions:  newSessions(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
		},
		mux: http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// Name returns the shell identifier.
func (s *Shell) Name() string { return "web" }

// Handler returns the HTTP handler, for tests and embedding.
func (s *Shell) Handler() http.Handler { return s.mux }

func (s *Shell) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	s.mux.HandleFunc("POST /api/analyze/text", s.handleAnalyzeText)
	s.mux.HandleFunc("POST /api/analyze/image", s.handleAnalyzeImage)
	if s.deps.VoiceEnabled() {
		s.mux.HandleFunc("POST /api/analyze/voice", s.handleAnalyzeVoice)
		s.mux.HandleFunc("GET /api/voice/stream", s.handleVoiceStream)
	}
	s.mux.HandleFunc("POST /api/translate", s.handleTranslate)
	s.mux.HandleFunc("GET /api/session", s.handleSession)

	s.mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if s.health != nil {
		s.health.Register(s.mux)
	}
}

// Run starts the HTTP server. It blocks until ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("web shell listening", "port", s.port, "url", fmt.Sprintf("http://localhost:%d/", s.port))
	if s.health != nil {
		s.health.SetReady(true)
	}

	go func() {
		<-ctx.Done()
		slog.Info("web shell shutting down")
		if s.health != nil {
			s.health.SetReady(false)
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("web listen: %w", err)
	}
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Shell) Close() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Shell) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, map[string]any{
		"Voice":            s.deps.VoiceEnabled(),
		"MaxUploadMB":      s.maxUpload >> 20,
		"LanguageCodesURL": format.LanguageCodesURL,
	})
	if err != nil {
		slog.Error("rendering index", "error", err)
	}
}
