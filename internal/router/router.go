package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"studytrack-backend/internal/handlers"
	"studytrack-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	activityGate *middleware.ActivityGate,
	redisClient *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	studyTopicHandler *handlers.StudyTopicHandler,
	lessonHandler *handlers.LessonHandler,
	videoHandler *handlers.VideoHandler,
	timelineHandler *handlers.TimelineHandler,
	textHandler *handlers.TextHandler,
	paragraphHandler *handlers.ParagraphHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(redisClient, 10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Public Routes ────
		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/login", authHandler.Login)
			r.Post("/users", userHandler.Register)
		})

		// ──── Protected Routes ────
		// Every route below runs the session authenticator then the
		// activity gate, in that order.
		r.Group(func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Use(activityGate.Middleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/profile", userHandler.Profile)
				r.Get("/{id}", userHandler.Retrieve)
				r.Patch("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/study-topics", func(r chi.Router) {
				r.Post("/", studyTopicHandler.Create)
				r.Get("/", studyTopicHandler.List)
				r.Get("/{id}", studyTopicHandler.Retrieve)
				r.Patch("/{id}", studyTopicHandler.Update)
				r.Delete("/{id}", studyTopicHandler.Delete)

				r.Post("/{studyTopicID}/lessons", lessonHandler.Create)
				r.Get("/{studyTopicID}/lessons", lessonHandler.ListByStudyTopic)
			})

			r.Route("/lessons", func(r chi.Router) {
				r.Patch("/{id}", lessonHandler.Update)
				r.Delete("/{id}", lessonHandler.Delete)

				r.Post("/{lessonID}/videos", videoHandler.Create)
				r.Get("/{lessonID}/videos", videoHandler.ListByLesson)
				r.Post("/{lessonID}/texts", textHandler.Create)
				r.Get("/{lessonID}/texts", textHandler.ListByLesson)
			})

			r.Route("/videos", func(r chi.Router) {
				r.Patch("/{id}", videoHandler.Update)
				r.Delete("/{id}", videoHandler.Delete)

				r.Post("/{videoID}/timelines", timelineHandler.Create)
				r.Get("/{videoID}/timelines", timelineHandler.ListByVideo)
			})

			r.Route("/timelines", func(r chi.Router) {
				r.Patch("/{id}", timelineHandler.Update)
				r.Delete("/{id}", timelineHandler.Delete)
			})

			r.Route("/texts", func(r chi.Router) {
				r.Patch("/{id}", textHandler.Update)
				r.Delete("/{id}", textHandler.Delete)

				r.Post("/{textID}/paragraphs", paragraphHandler.Create)
				r.Get("/{textID}/paragraphs", paragraphHandler.ListByText)
			})

			r.Route("/paragraphs", func(r chi.Router) {
				r.Patch("/{id}", paragraphHandler.Update)
				r.Delete("/{id}", paragraphHandler.Delete)
			})
		})
	})

	return r
}
