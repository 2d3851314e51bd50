package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studytrack-backend/internal/config"
	"studytrack-backend/internal/database"
	"studytrack-backend/internal/handlers"
	"studytrack-backend/internal/middleware"
	"studytrack-backend/internal/repository"
	"studytrack-backend/internal/router"
	"studytrack-backend/internal/services"
)

func main() {
	log.Println("Starting StudyTrack Backend...")

	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	if err := database.RunMigrations(pool, cfg.MigrationsDir); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Repositories ────
	userRepo := repository.NewUserRepo(pool)
	studyTopicRepo := repository.NewStudyTopicRepo(pool)
	lessonRepo := repository.NewLessonRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	timelineRepo := repository.NewTimelineRepo(pool)
	textRepo := repository.NewTextRepo(pool)
	paragraphRepo := repository.NewParagraphRepo(pool)

	// ──── Middleware ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	activityGate := middleware.NewActivityGate(userRepo)

	// ──── Services ────
	authService := services.NewAuthService(userRepo, jwtAuth)
	userService := services.NewUserService(userRepo)
	studyTopicService := services.NewStudyTopicService(studyTopicRepo)
	lessonService := services.NewLessonService(lessonRepo, studyTopicRepo)
	videoService := services.NewVideoService(videoRepo, lessonRepo)
	timelineService := services.NewTimelineService(timelineRepo, videoRepo)
	textService := services.NewTextService(textRepo, lessonRepo)
	paragraphService := services.NewParagraphService(paragraphRepo, textRepo)

	// ──── Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	studyTopicHandler := handlers.NewStudyTopicHandler(studyTopicService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	videoHandler := handlers.NewVideoHandler(videoService)
	timelineHandler := handlers.NewTimelineHandler(timelineService)
	textHandler := handlers.NewTextHandler(textService)
	paragraphHandler := handlers.NewParagraphHandler(paragraphService)

	r := router.New(
		jwtAuth,
		activityGate,
		redisClient,
		authHandler,
		userHandler,
		studyTopicHandler,
		lessonHandler,
		videoHandler,
		timelineHandler,
		textHandler,
		paragraphHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ StudyTrack Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
