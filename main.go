package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"course-service/internal/config"
	"course-service/internal/db"
	"course-service/internal/event"
	"course-service/internal/handlers"
	"course-service/internal/repository"
	"course-service/internal/seed"
	"course-service/internal/service"
	"course-service/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redislib "github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	var (
		userStore     repository.UserStore
		moduleStore   repository.ModuleStore
		quizStore     repository.QuizStore
		labStore      repository.LabStore
		progressStore repository.ProgressStore
	)

	switch cfg.Storage {
	case "memory":
		log.Println("Using in-memory storage")
		memory := repository.NewMemoryStore()
		userStore = memory
		moduleStore = memory
		quizStore = memory
		labStore = memory
		progressStore = memory
	default:
		client, err := db.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer db.DisconnectMongo(client)

		database := client.Database(cfg.MongoDatabase)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.EnsureIndexes(ctx, database); err != nil {
			cancel()
			log.Fatalf("Failed to create indexes: %v", err)
		}
		cancel()

		userStore = repository.NewUserRepository(database)
		moduleStore = repository.NewModuleRepository(database)
		quizStore = repository.NewQuizRepository(database)
		labStore = repository.NewLabRepository(database)
		progressStore = repository.NewProgressRepository(database)
	}

	var redisClient *redislib.Client
	if cfg.RedisAddr != "" {
		redisClient = db.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
		defer redisClient.Close()
	} else {
		log.Println("Redis not configured, login lockout is process-local")
	}

	var publisher event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		rabbit, err := event.NewRabbitPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		log.Println("RabbitMQ not configured, platform events will not be published")
	}

	if cfg.SeedData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := seed.Run(ctx, seed.Stores{
			Users:    userStore,
			Modules:  moduleStore,
			Quizzes:  quizStore,
			Labs:     labStore,
			Progress: progressStore,
		})
		cancel()
		if err != nil {
			log.Fatalf("Failed to seed course data: %v", err)
		}
	}

	authService := service.NewAuthService(userStore, redisClient, publisher, cfg.JWTSecret)
	moduleService := service.NewModuleService(moduleStore)
	progressService := service.NewProgressService(progressStore)
	quizService := service.NewQuizService(quizStore, progressService, publisher)
	labService := service.NewLabService(labStore, progressService, publisher)
	assistantService := service.NewAssistantService(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	moduleHandler := handlers.NewModuleHandler(moduleService)
	quizHandler := handlers.NewQuizHandler(quizService)
	progressHandler := handlers.NewProgressHandler(progressService, moduleService)
	labHandler := handlers.NewLabHandler(labService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, "Course service is healthy", gin.H{
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/user", authHandler.CurrentUser)
		}

		modules := api.Group("/modules")
		{
			modules.GET("", moduleHandler.ListModules)
			modules.GET("/:id", moduleHandler.GetModule)
			modules.GET("/:id/quiz", quizHandler.GetQuiz)
			modules.POST("/:id/quiz/submit", quizHandler.SubmitQuiz)
			modules.GET("/:id/lab", labHandler.GetLab)
		}

		users := api.Group("/users")
		{
			users.GET("/:userId/progress", progressHandler.GetUserProgress)
			users.GET("/:userId/progress/summary", progressHandler.GetSummary)
			users.POST("/:userId/progress/:moduleId", progressHandler.UpdateProgress)
		}

		api.POST("/sql/execute", labHandler.ExecuteQuery)
		api.POST("/ai/chat", assistantHandler.Chat)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting course-service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	log.Println("Server exited, goodbye!")
}
