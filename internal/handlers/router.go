package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/config"
	appmiddleware "github.com/xiaoqianling/ReiAlgoAPI/internal/middleware"
	"github.com/xiaoqianling/ReiAlgoAPI/internal/posts"
)

// NewRouter wires the public API. limiter may be nil.
func NewRouter(cfg config.Config, source posts.Source, limiter *appmiddleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Allowed origins may call with any method and any header.
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/health", Health)

	postsHandler := NewPostsHandler(source, cfg.MaxBodyBytes)

	r.Route("/api/post", func(r chi.Router) {
		if limiter != nil {
			limiter.OnLimit = TooManyRequests
			r.Use(limiter.Limit)
		}
		r.Get("/{postId}/contents", postsHandler.GetContents)
		r.Post("/preview", postsHandler.Preview)
	})

	return r
}
