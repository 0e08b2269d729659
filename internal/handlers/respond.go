package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/models"
	"github.com/xiaoqianling/ReiAlgoAPI/internal/posts"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TooManyRequests is the rate limiter's rejection.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusTooManyRequests, "rate_limited", "too many requests", "")
}

// NotFound and MethodNotAllowed keep router errors in the same JSON shape.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path, "")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" not allowed", "")
}

// respondFailure maps the domain errors to a status and code. Unknown errors are
// logged and hidden behind a 500.
func respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound   *posts.NotFoundError
		invalid    *models.ValidationError
		unknown    *models.UnknownVariantError
		missing    *models.MissingFieldError
		decodeFail *models.DecodeError
	)
	switch {
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, "not_found", notFound.Error(), "postId")
	case errors.As(err, &invalid):
		respondError(w, http.StatusUnprocessableEntity, "validation_error", invalid.Error(), invalid.Field)
	case errors.As(err, &unknown):
		respondError(w, http.StatusBadRequest, "unknown_variant", unknown.Error(), "type")
	case errors.As(err, &missing):
		respondError(w, http.StatusBadRequest, "missing_field", missing.Error(), missing.Field)
	case errors.As(err, &decodeFail):
		respondError(w, http.StatusBadRequest, "decode_error", decodeFail.Error(), "")
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error", "")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func respondError(w http.ResponseWriter, status int, code, message, field string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Field: field}})
}
