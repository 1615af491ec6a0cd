package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"aura-ai/internal/catalog"
	"aura-ai/internal/edit"
	"aura-ai/internal/imaging"
	"aura-ai/internal/prompt"
	"aura-ai/internal/session"
)

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	locale := LocaleFromContext(r.Context())
	if locale == "" {
		locale = s.tr.Default()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":        locale,
		"maxSelections": prompt.MaxSelections,
		"categories":    s.studio.Catalog().Localized(s.tr, locale),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	locale := LocaleFromContext(r.Context())
	if locale == "" {
		locale = s.tr.Default()
	}
	st, err := s.studio.Create(r.Context(), locale)
	if err != nil {
		s.writeError(w, r, locale, err)
		return
	}
	s.writeView(w, r, http.StatusCreated, st)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	st, err := s.studio.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, "", err)
		return
	}
	s.writeView(w, r, http.StatusOK, st)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "failed to read image"})
		return
	}

	mimeType, err := imaging.Normalize(data, imaging.CleanMimeType(header.Header.Get("Content-Type"), data))
	if err != nil {
		locale := s.localeFor(r, "")
		writeJSON(w, http.StatusUnsupportedMediaType, apiError{
			Error: s.tr.T(locale, "error_invalid_image"),
			Code:  "error_invalid_image",
		})
		return
	}

	st, err := s.studio.Upload(r.Context(), id, edit.Image{Data: data, MimeType: mimeType}, header.Filename)
	if err != nil {
		s.writeError(w, r, "", err)
		return
	}
	s.logger.Info("image uploaded", "session", id, "mime", mimeType, "bytes", len(data))
	s.writeView(w, r, http.StatusOK, st)
}

func (s *Server) handleToggleStyle(w http.ResponseWriter, r *http.Request) {
	st, err := s.studio.ToggleStyle(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "styleID"))
	if errors.Is(err, prompt.ErrSelectionLimit) {
		s.writeView(w, r, http.StatusConflict, st)
		return
	}
	if err != nil {
		s.writeError(w, r, st.Locale, err)
		return
	}
	s.writeView(w, r, http.StatusOK, st)
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	st, err := s.studio.ClearSelection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, st.Locale, err)
		return
	}
	s.writeView(w, r, http.StatusOK, st)
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) handleSetPrompt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid json"})
		return
	}

	st, err := s.studio.SetCustomPrompt(r.Context(), chi.URLParam(r, "id"), req.Prompt)
	if err != nil {
		s.writeError(w, r, st.Locale, err)
		return
	}
	s.writeView(w, r, http.StatusOK, st)
}

type localeRequest struct {
	Locale string `json:"locale"`
}

func (s *Server) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	var req localeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 4<<10)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid json"})
		return
	}

	st, err := s.studio.SetLocale(r.Context(), chi.URLParam(r, "id"), req.Locale)
	if err != nil {
		s.writeError(w, r, "", err)
		return
	}
	s.writeViewIn(w, http.StatusOK, st, st.Locale)
}

// handleGenerate starts the batch and returns immediately with the
// generating view; clients poll the session for the outcome.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	st, ticket, err := s.studio.Start(r.Context(), id)
	if err != nil {
		s.writeError(w, r, st.Locale, err)
		return
	}

	s.batches.Add(1)
	go func() {
		defer s.batches.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.requestTimeout)
		defer cancel()
		_, _ = s.studio.Run(ctx, id, ticket)
	}()

	s.writeView(w, r, http.StatusAccepted, st)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	st, err := s.studio.Back(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, "", err)
		return
	}
	s.writeView(w, r, http.StatusOK, st)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	st, err := s.studio.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, "", err)
		return
	}

	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 || idx >= len(st.Results) {
		writeJSON(w, http.StatusNotFound, apiError{Error: "result not found"})
		return
	}

	ref := st.Results[idx].ImageURL
	if !strings.HasPrefix(ref, "data:") {
		u, err := url.Parse(ref)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			s.logger.Warn("result has unsupported url", "session_id", st.ID, "index", idx)
			writeJSON(w, http.StatusBadGateway, apiError{Error: "result not downloadable"})
			return
		}
		http.Redirect(w, r, u.String(), http.StatusFound)
		return
	}

	mimeType, data, err := imaging.ParseDataURL(ref, "image/png")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "corrupt result"})
		return
	}

	name := fmt.Sprintf("AuraAi_Image_%d%s", s.studio.Now().UnixMilli(), imaging.Extension(mimeType))
	w.Header().Set("content-type", mimeType)
	w.Header().Set("content-disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("content-length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) localeFor(r *http.Request, sessionLocale string) string {
	if l := LocaleFromContext(r.Context()); l != "" {
		return l
	}
	if sessionLocale != "" {
		return sessionLocale
	}
	return s.tr.Default()
}

func (s *Server) writeView(w http.ResponseWriter, r *http.Request, status int, st session.State) {
	s.writeViewIn(w, status, st, s.localeFor(r, st.Locale))
}

func (s *Server) writeViewIn(w http.ResponseWriter, status int, st session.State, locale string) {
	writeJSON(w, status, newSessionView(s.tr, st, locale, s.studio.Now()))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, sessionLocale string, err error) {
	locale := s.localeFor(r, sessionLocale)

	status, key := http.StatusInternalServerError, "error_unknown"
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, apiError{Error: "session not found", Code: "not_found"})
		return
	case errors.Is(err, catalog.ErrUnknownStyle):
		status, key = http.StatusNotFound, "error_unknown_style"
	case errors.Is(err, session.ErrNoImage):
		status, key = http.StatusBadRequest, "error_no_image"
	case errors.Is(err, session.ErrBusy):
		status, key = http.StatusConflict, "error_busy"
	default:
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestIDFromContext(r.Context()))
	}
	writeJSON(w, status, apiError{Error: s.tr.T(locale, key), Code: key})
}
