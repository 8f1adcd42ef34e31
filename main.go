package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"reorder-service/internal/config"
	"reorder-service/internal/db"
	"reorder-service/internal/event"
	"reorder-service/internal/handlers"
	"reorder-service/internal/repository"
	"reorder-service/internal/service"
	"reorder-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if cfg.Mongo.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.Mongo.URI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.Rabbit.URI != "" && cfg.Rabbit.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.Rabbit.URI, cfg.Rabbit.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, public events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://evolvia.phrimp.io.vn"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.Mongo.Database)

	// Corpus store
	lessonRepo := repository.NewLessonRepository(database)
	sentenceRepo := repository.NewSentenceRepository(database)

	// Progress store
	progressRepo := repository.NewProgressRepository(database)
	if err := progressRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure progress indexes: %v", err)
	}

	lessonService := service.NewLessonService(lessonRepo, sentenceRepo, progressRepo)
	lessonHandler := handlers.NewLessonHandler(lessonService)

	sessionService := service.NewSessionService(sentenceRepo, progressRepo)
	answerService := service.NewAnswerService(sentenceRepo)
	progressService := service.NewProgressService(progressRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService, answerService, progressService)

	// Distractor-generation results arrive over the event bus.
	consumer, err := event.NewDistractorConsumer(cfg.Rabbit.URI, cfg.Rabbit.Exchange, cfg.Rabbit.DistractorQueue, lessonService)
	if err != nil {
		log.Fatalf("Failed to create distractor consumer: %v", err)
	}
	if err := consumer.Start(); err != nil {
		log.Fatalf("Failed to start distractor consumer: %v", err)
	}
	defer consumer.Close()

	// Consul registration
	if cfg.Consul.Address != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Failed to create service registry: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Failed to register with Consul: %v", err)
		}
		defer registry.Deregister()
	} else {
		log.Println("Consul not configured, skipping service registration")
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes - Lessons
	publicLesson := r.Group("/public/reorder/lesson")
	{
		publicLesson.GET("/", func(c *gin.Context) {
			lessonHandler.ListLessons(c)
			if publisher != nil {
				publisher.Publish("reorder.lesson.list", nil)
			}
		})
		publicLesson.GET("/:id", func(c *gin.Context) {
			lessonHandler.GetLesson(c)
			if publisher != nil {
				publisher.Publish("reorder.lesson.get", gin.H{"id": c.Param("id")})
			}
		})
		publicLesson.GET("/:id/sentences", func(c *gin.Context) {
			lessonHandler.ListSentences(c)
			if publisher != nil {
				publisher.Publish("reorder.lesson.sentences", gin.H{"id": c.Param("id")})
			}
		})
	}

	// Protected routes - corpus writes (ingestion side)
	protectedLesson := r.Group("/protected/reorder/lesson")
	{
		protectedLesson.POST("/", lessonHandler.CreateLesson)
		protectedLesson.DELETE("/:id", lessonHandler.DeleteLesson)
		protectedLesson.POST("/:id/sentences", lessonHandler.CreateSentence)
		protectedLesson.PUT("/sentence/:sentenceId/distractors", lessonHandler.SetDistractors)
	}

	setupSessionRoutes(r, sessionHandler, publisher)

	r.Run(":" + cfg.Service.Port)
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, publisher *event.EventPublisher) {
	protectedSession := r.Group("/protected/reorder/session")
	{
		// === SESSION ASSEMBLY ===

		// Start a new session over a whole lesson
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if publisher != nil {
				publisher.Publish("reorder.session.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// Start a review session over the sentences last saved as WRONG
		protectedSession.POST("/review", func(c *gin.Context) {
			sessionHandler.CreateReviewSession(c)
			if publisher != nil {
				publisher.Publish("reorder.session.review_created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// === ANSWERS AND PROGRESS ===

		// Validate a submitted arrangement
		protectedSession.POST("/answer", func(c *gin.Context) {
			sessionHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("reorder.answer.submitted", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// Save the resumable progress slot
		protectedSession.POST("/progress", func(c *gin.Context) {
			sessionHandler.SaveProgress(c)
			if publisher != nil {
				publisher.Publish("reorder.progress.saved", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// Read back the progress slot for resumption
		protectedSession.GET("/progress", func(c *gin.Context) {
			sessionHandler.GetProgress(c)
			if publisher != nil {
				publisher.Publish("reorder.progress.checked", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// Authentication is terminated at the gateway; protected routes expect
	// the forwarded user header.
	protectedSession.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	// Request logging middleware
	protectedSession.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[SESSION] %v | %3d | %13v | %15s | %-7s %#v\n%s",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.StatusCode,
			param.Latency,
			param.ClientIP,
			param.Method,
			param.Path,
			param.ErrorMessage,
		)
	}))
}
