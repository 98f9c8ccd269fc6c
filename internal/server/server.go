package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adhibot/internal/core"
	"adhibot/pkg/schema"
)

const maxBodySize = 64 << 10 // 64KB

// Deps holds what the HTTP layer needs.
type Deps struct {
	Session *core.Session

	// Context outlives individual requests; assistant calls started by a
	// POST run under it.
	Context context.Context

	// Configured reports whether an API key is present.
	Configured bool

	// Logger receives response write failures. Nil discards them.
	Logger core.Logger
}

type submitRequest struct {
	Text string `json:"text"`
}

type transcriptResponse struct {
	Notice    string           `json:"notice"`
	Messages  []schema.Message `json:"messages"`
	IsLoading bool             `json:"is_loading"`
	Input     string           `json:"input"`
}

// NewHandler exposes one conversation session over HTTP.
func NewHandler(deps Deps) http.Handler {
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = core.NopLogger()
	}

	r := chi.NewRouter()

	r.Get("/api/health", handleHealth(deps))
	r.Get("/api/prompt", handlePrompt(deps))
	r.Get("/api/messages", handleTranscript(deps))
	r.Post("/api/messages", handleSubmit(deps))
	r.Post("/api/messages/{id}/complete", handleComplete(deps))
	r.Put("/api/input", handleSetInput(deps))

	return r
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(deps.Logger, w, http.StatusOK, map[string]any{
			"status":     "ok",
			"configured": deps.Configured,
		})
	}
}

func handlePrompt(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(deps.Session.SystemPrompt())); err != nil {
			deps.Logger.Warn("Failed to write prompt", "error", err.Error())
		}
	}
}

func handleTranscript(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(deps.Logger, w, http.StatusOK, transcript(deps.Session))
	}
}

func handleSubmit(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		defer r.Body.Close()

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(deps.Logger, w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		_, err := deps.Session.SubmitAsync(deps.Context, req.Text)
		switch {
		case errors.Is(err, core.ErrEmptyInput):
			httpError(deps.Logger, w, http.StatusBadRequest, "invalid_request_error", "text is required")
			return
		case errors.Is(err, core.ErrBusy):
			httpError(deps.Logger, w, http.StatusConflict, "busy", "a reply is still pending")
			return
		case err != nil:
			httpError(deps.Logger, w, http.StatusInternalServerError, "server_error", "%v", err)
			return
		}

		writeJSON(deps.Logger, w, http.StatusAccepted, transcript(deps.Session))
	}
}

func handleComplete(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !deps.Session.CompleteReveal(id) {
			httpError(deps.Logger, w, http.StatusConflict, "invalid_state", "message %s is not revealing", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSetInput(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		defer r.Body.Close()

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(deps.Logger, w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		deps.Session.SetInput(req.Text)
		w.WriteHeader(http.StatusNoContent)
	}
}

func transcript(s *core.Session) transcriptResponse {
	return transcriptResponse{
		Notice:    schema.BetaNotice,
		Messages:  s.Messages(),
		IsLoading: s.IsLoading(),
		Input:     s.Input(),
	}
}

func writeJSON(logger core.Logger, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to write response", "status", code, "error", err.Error())
	}
}

func httpError(logger core.Logger, w http.ResponseWriter, code int, errType string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	writeJSON(logger, w, code, map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
