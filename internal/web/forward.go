package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"aura-ai/internal/edit"
	"aura-ai/internal/proxy"
)

const maxForwardBody = 32 << 20

type configurable interface {
	Configured() bool
}

// handleForward relays a single edit to the model on behalf of a client
// that does not hold the credential.
func (s *Server) handleForward(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method "+r.Method+" Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if c, ok := s.forward.(configurable); ok && !c.Configured() {
		s.logger.Error("forward: api key is not configured")
		writeJSON(w, http.StatusInternalServerError, proxy.ErrorResponse{Error: proxy.MsgMissingKey, Code: proxy.CodeConfiguration})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxForwardBody)

	var req proxy.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, proxy.ErrorResponse{Error: proxy.MsgMissingFields})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" || req.ImageBase64 == "" || strings.TrimSpace(req.MimeType) == "" {
		writeJSON(w, http.StatusBadRequest, proxy.ErrorResponse{Error: proxy.MsgMissingFields})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, proxy.ErrorResponse{Error: proxy.MsgMissingFields})
		return
	}

	res, err := s.forward.EditImage(r.Context(), edit.Image{Data: data, MimeType: req.MimeType}, req.Prompt)
	if err != nil {
		status, body := forwardError(err)
		s.logger.Error("forward failed", "status", status, "kind", edit.KindOf(err), "err", err)
		writeJSON(w, status, body)
		return
	}

	writeJSON(w, http.StatusOK, proxy.Response{ImageURL: res.ImageURL, Text: res.Text})
}

func forwardError(err error) (int, proxy.ErrorResponse) {
	switch {
	case errors.Is(err, edit.ErrConfiguration):
		return http.StatusInternalServerError, proxy.ErrorResponse{Error: proxy.MsgMissingKey, Code: proxy.CodeConfiguration}
	case edit.StatusOf(err) >= 400:
		return edit.StatusOf(err), proxy.ErrorResponse{Error: proxy.MsgUpstreamStatus, Code: proxy.CodeUpstream}
	case errors.Is(err, edit.ErrNoCandidates):
		return http.StatusInternalServerError, proxy.ErrorResponse{Error: proxy.MsgNoCandidates, Code: proxy.CodeUpstream}
	case errors.Is(err, edit.ErrNoImage):
		return http.StatusInternalServerError, proxy.ErrorResponse{Error: proxy.MsgNoImage, Code: proxy.CodeUpstream}
	default:
		return http.StatusInternalServerError, proxy.ErrorResponse{Error: proxy.MsgInternal}
	}
}
