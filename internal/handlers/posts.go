package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/models"
	"github.com/xiaoqianling/ReiAlgoAPI/internal/posts"
)

type PostsHandler struct {
	source       posts.Source
	maxBodyBytes int64
}

func NewPostsHandler(source posts.Source, maxBodyBytes int64) *PostsHandler {
	return &PostsHandler{source: source, maxBodyBytes: maxBodyBytes}
}

// GetContents serves GET /api/post/{postId}/contents. The page query parameter is
// parsed but not used: a post is always returned whole.
func (h *PostsHandler) GetContents(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")
	if postID == "" {
		respondError(w, http.StatusBadRequest, "bad_request", "missing post id", "postId")
		return
	}
	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	slog.DebugContext(r.Context(), "get post contents",
		"post_id", postID, "page", page, "request_id", middleware.GetReqID(r.Context()))

	post, err := h.source.GetPost(r.Context(), postID)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	body, err := models.Serialize(post)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

// Preview decodes a submitted post and returns its normalized serialization.
func (h *PostsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "body_too_large",
				"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes", "")
			return
		}
		respondError(w, http.StatusBadRequest, "bad_request", "failed to read body", "")
		return
	}

	post, err := models.Deserialize(data)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	body, err := models.Serialize(post)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondRaw(w, http.StatusOK, body)
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
