package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"aura-ai/internal/edit"
	"aura-ai/internal/i18n"
	"aura-ai/internal/studio"
)

type Options struct {
	Studio     *studio.Service
	Translator *i18n.Translator

	// Forward serves POST /api/generate. The route is not mounted when nil.
	Forward edit.Editor

	RequestTimeout time.Duration
	MaxUploadBytes int64
	Logger         *slog.Logger
}

type Server struct {
	studio         *studio.Service
	tr             *i18n.Translator
	forward        edit.Editor
	requestTimeout time.Duration
	maxUpload      int64
	logger         *slog.Logger

	batches sync.WaitGroup
}

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New(i18n.English)
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 240 * time.Second
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 25 << 20
	}

	return &Server{
		studio:         opts.Studio,
		tr:             tr,
		forward:        opts.Forward,
		requestTimeout: timeout,
		maxUpload:      maxUpload,
		logger:         logger,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, middleware.RealIP, middleware.Recoverer, withLogging(s.logger), Locale)

	r.Get("/healthz", s.handleHealth)

	if s.forward != nil {
		r.HandleFunc("/api/generate", s.handleForward)
	}

	if s.studio != nil {
		r.Get("/api/styles", s.handleStyles)
		r.Route("/api/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Put("/image", s.handleUpload)
				r.Post("/styles/{styleID}", s.handleToggleStyle)
				r.Delete("/styles", s.handleClearSelection)
				r.Put("/prompt", s.handleSetPrompt)
				r.Put("/locale", s.handleSetLocale)
				r.Post("/generate", s.handleGenerate)
				r.Post("/back", s.handleBack)
				r.Get("/results/{index}", s.handleDownload)
			})
		})
	}

	return r
}

// Wait blocks until every background batch has settled.
func (s *Server) Wait() {
	s.batches.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
