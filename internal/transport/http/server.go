package http

import (
	"fmt"
	"log"
	stdhttp "net/http"
	"time"

	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/handler"
	"microblog/internal/repository"
	"microblog/internal/service"
)

// Run loads configuration, connects the database, wires every layer and
// blocks serving HTTP.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	userService := service.NewUserService(userRepo, followRepo)
	authService := service.NewAuthService(refreshTokenRepo, userRepo, cfg)
	feedService := service.NewFeedService(postRepo, followRepo)
	postService := service.NewPostService(postRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	profileService := service.NewProfileService(userRepo, followRepo, feedService)

	// Handlers
	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(userService, authService),
		FeedHandler:    handler.NewFeedHandler(feedService, postService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		FollowHandler:  handler.NewFollowHandler(followService),
		SearchHandler:  handler.NewSearchHandler(userService),
		JWTSecret:      cfg.JWTSecret,
	})

	server := &stdhttp.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on :%s", cfg.ServerPort)
	return server.ListenAndServe()
}
