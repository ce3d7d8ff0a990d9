package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"microblog/internal/handler"
	"microblog/internal/httputil"
	authmw "microblog/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	ProfileHandler *handler.ProfileHandler
	FollowHandler  *handler.FollowHandler
	SearchHandler  *handler.SearchHandler
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Post("/register", cfg.AuthHandler.Register)
	r.Post("/login", cfg.AuthHandler.Login)
	r.Post("/refresh", cfg.AuthHandler.Refresh)

	// Protected routes - require authentication
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)
		r.Post("/logout", cfg.AuthHandler.Logout)
		r.Post("/logout/all", cfg.AuthHandler.LogoutAll)

		// Personal feed and posting
		r.Get("/", cfg.FeedHandler.Home)
		r.Post("/", cfg.FeedHandler.CreatePost)
		r.Post("/delete", cfg.FeedHandler.DeletePost)

		// Global feed
		r.Get("/explore", cfg.FeedHandler.Explore)

		// Profiles and the follow graph
		r.Get("/profile/{username}", cfg.ProfileHandler.GetProfile)
		r.Post("/profile/{username}", cfg.ProfileHandler.UpdateProfile)
		r.Post("/follow/{username}", cfg.FollowHandler.Toggle)

		// User search
		r.Get("/search", cfg.SearchHandler.Search)
	})

	return r
}
