package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/config"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New wires every route onto a chi router. Read endpoints are public;
// anything that writes goes through NeedAuth.
func New(deps *setup.Dependencies, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.Handler())

	h := deps.Handler
	needAuth := mw.NeedAuth(deps.Jwt)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Route("/threads", func(r chi.Router) {
			r.With(needAuth).Post("/", h.CreateThread)
			r.Get("/{threadId}", h.GetThread)

			r.Route("/{threadId}/comments", func(r chi.Router) {
				r.With(needAuth).Post("/", h.CreateComment)
				r.With(needAuth).Delete("/{commentId}", h.DeleteComment)
				r.With(needAuth).Put("/{commentId}/likes", h.ToggleCommentLike)

				r.Route("/{commentId}/replies", func(r chi.Router) {
					r.With(needAuth).Post("/", h.CreateReply)
					r.With(needAuth).Delete("/{replyId}", h.DeleteReply)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
