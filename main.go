package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"pykids-service/internal/config"
	"pykids-service/internal/db"
	"pykids-service/internal/event"
	"pykids-service/internal/handlers"
	"pykids-service/internal/llm"
	"pykids-service/internal/repository"
	"pykids-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	gin.SetMode(config.AppConfig.GinMode)

	if config.AppConfig.TutorAPIKey == "" {
		log.Fatal("TUTOR_API_KEY is required")
	}

	db.InitMongo(config.AppConfig.MongoURI)
	defer db.Disconnect()
	database := db.Client.Database(config.AppConfig.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if config.AppConfig.RabbitMQURI != "" && config.AppConfig.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(config.AppConfig.RabbitMQURI, config.AppConfig.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, learning events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	exerciseRepo := repository.NewExerciseRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	libraryRepo := repository.NewLibraryRepository(database)

	if config.AppConfig.SeedExercises {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := exerciseRepo.SeedDefaults(ctx); err != nil {
			log.Printf("Failed to seed default exercises: %v", err)
		}
		cancel()
	}

	// Services
	exerciseService := service.NewExerciseService(exerciseRepo, answerRepo, profileRepo)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)

	tutorClient := llm.NewClient(
		config.AppConfig.TutorBaseURL,
		config.AppConfig.TutorAPIKey,
		config.AppConfig.TutorModel,
	)
	chatService := service.NewChatService(tutorClient)
	chatHandler := handlers.NewChatHandler(chatService)

	libraryService := service.NewLibraryService(libraryRepo)
	libraryHandler := handlers.NewLibraryHandler(libraryService)

	profileService := service.NewProfileService(profileRepo)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Public routes
	publicExercise := r.Group("/public/pykids/exercise")
	{
		publicExercise.GET("/", exerciseHandler.ListExercises)
	}

	publicLibrary := r.Group("/public/pykids/library")
	{
		publicLibrary.GET("/", libraryHandler.ListItems)
	}

	publicChat := r.Group("/public/pykids/chat")
	{
		publicChat.POST("/session", func(c *gin.Context) {
			chatHandler.CreateChatSession(c)
			if publisher != nil {
				publisher.Publish("pykids.chat.session_created", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		publicChat.POST("/:sessionId/message", func(c *gin.Context) {
			chatHandler.SendMessage(c)
			if publisher != nil {
				publisher.Publish("pykids.chat.message_sent", gin.H{
					"session_id": c.Param("sessionId"),
					"timestamp":  time.Now(),
				})
			}
		})
		publicChat.GET("/:sessionId/history", chatHandler.GetChatHistory)
	}

	setupSessionRoutes(r, exerciseHandler, libraryHandler, profileHandler, publisher)

	r.Run(":" + config.AppConfig.Port)
}

func setupSessionRoutes(
	r *gin.Engine,
	exerciseHandler *handlers.ExerciseHandler,
	libraryHandler *handlers.LibraryHandler,
	profileHandler *handlers.ProfileHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/pykids")

	protected.Use(func(c *gin.Context) {
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

	session := protected.Group("/session")
	{
		session.POST("/", func(c *gin.Context) {
			exerciseHandler.StartSession(c)
			if publisher != nil {
				publisher.Publish("pykids.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		session.GET("/:id", exerciseHandler.GetSession)
		session.POST("/:id/select", exerciseHandler.SelectOption)
		session.POST("/:id/submit", func(c *gin.Context) {
			exerciseHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("pykids.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		session.POST("/:id/advance", func(c *gin.Context) {
			exerciseHandler.Advance(c)
			if publisher != nil {
				publisher.Publish("pykids.answer.recorded", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
		session.POST("/:id/restart", exerciseHandler.Restart)
		session.GET("/:id/summary", exerciseHandler.Summary)
	}

	library := protected.Group("/library")
	{
		library.POST("/:id/open", libraryHandler.OpenItem)
		library.GET("/progress", libraryHandler.GetProgress)
	}

	profile := protected.Group("/profile")
	{
		profile.GET("/", profileHandler.GetProfile)
	}
}
