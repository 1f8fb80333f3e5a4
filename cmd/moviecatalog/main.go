package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecatalog/internal/config"
	"moviecatalog/internal/database"
	"moviecatalog/internal/handlers"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/middleware"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	db, err := database.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	moviesService := service.NewMoviesService(movieRepo, reviewRepo)

	movieHandler := handlers.NewMovieHandler(moviesService)
	reviewHandler := handlers.NewReviewHandler(moviesService)

	router := mux.NewRouter()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/movies", movieHandler.ListMovies).Methods("GET")
	api.HandleFunc("/movies", movieHandler.CreateMovie).Methods("POST")
	api.HandleFunc("/movies/{id}", movieHandler.GetMovie).Methods("GET")
	api.HandleFunc("/movies/{id}", movieHandler.DeleteMovie).Methods("DELETE")
	api.HandleFunc("/movies/{id}/reviews", reviewHandler.ListReviews).Methods("GET")
	api.HandleFunc("/movies/{id}/reviews", reviewHandler.AddReview).Methods("POST")
	api.HandleFunc("/reviews/{id}", reviewHandler.DeleteReview).Methods("DELETE")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("movie catalog listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}
