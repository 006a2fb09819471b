package main

import (
	"log"
	"time"

	"quiz-api/internal/config"
	"quiz-api/internal/db"
	"quiz-api/internal/event"
	"quiz-api/internal/handlers"
	"quiz-api/internal/ledger"
	"quiz-api/internal/logger"
	"quiz-api/internal/pipeline"
	"quiz-api/internal/repository"
	"quiz-api/internal/selection"
	"quiz-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Quiz storage: Mongo when configured, otherwise in-memory. The
	// performance ledger always lives in memory.
	var quizStore service.QuizStore = repository.NewMemoryQuizStore()
	if cfg.MongoURI != "" {
		client, err := db.Connect(cfg.MongoURI)
		if err != nil {
			zlog.Fatal("failed to connect to Mongo", zap.Error(err))
		}
		defer db.Disconnect(client)
		quizStore = repository.NewQuizRepository(client.Database(cfg.MongoDatabase))
		zlog.Info("using Mongo quiz store", zap.String("database", cfg.MongoDatabase))
	} else {
		zlog.Info("MONGO_URI not set, using in-memory quiz store")
	}

	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange, zlog)
		if err != nil {
			zlog.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer publisher.Close()
	} else {
		zlog.Info("RabbitMQ not configured, events will not be published")
	}

	quizService := service.NewQuizService(quizStore, zlog)
	historyService := service.NewHistoryService(
		ledger.NewLedgerStore(),
		selection.NewAdaptiveSelector(),
		zlog,
	)
	pipelineClient := pipeline.NewClient(cfg.PipelineURL, cfg.PipelineTimeout, zlog)

	quizHandler := handlers.NewQuizHandler(quizService)
	historyHandler := handlers.NewHistoryHandler(historyService, quizService)
	adminHandler := handlers.NewAdminHandler(quizService)
	healthHandler := handlers.NewHealthHandler(quizService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineClient)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(r, quizHandler, historyHandler, adminHandler, healthHandler, pipelineHandler, publisher)

	zlog.Info("starting quiz API", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func setupRoutes(
	r *gin.Engine,
	quizHandler *handlers.QuizHandler,
	historyHandler *handlers.HistoryHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	pipelineHandler *handlers.PipelineHandler,
	publisher *event.Publisher,
) {
	// Quiz intake and retrieval
	r.POST("/send_quiz", func(c *gin.Context) {
		quizHandler.SendQuiz(c)
		if publisher != nil {
			publisher.Publish("quiz.received", nil)
		}
	})
	r.GET("/quiz", quizHandler.GetQuiz)

	// Performance tracking
	r.POST("/save_answer", func(c *gin.Context) {
		historyHandler.SaveAnswer(c)
		if publisher != nil {
			publisher.Publish("quiz.answer.saved", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		}
	})
	r.POST("/save_quiz_session", func(c *gin.Context) {
		historyHandler.SaveSession(c)
		if publisher != nil {
			publisher.Publish("quiz.session.archived", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
			})
		}
	})
	r.GET("/user_history", historyHandler.UserHistory)
	r.POST("/cleanup_history", historyHandler.CleanupHistory)
	r.GET("/history_stats", historyHandler.HistoryStats)

	// Adaptive selection
	r.GET("/weighted_questions", func(c *gin.Context) {
		historyHandler.WeightedQuestions(c)
		if publisher != nil {
			publisher.Publish("quiz.questions.selected", gin.H{
				"user_id": c.GetHeader("X-User-ID"),
				"max":     c.Query("max"),
			})
		}
	})

	// Pipeline trigger
	r.POST("/run_pipeline", func(c *gin.Context) {
		pipelineHandler.RunPipeline(c)
		if publisher != nil {
			publisher.Publish("quiz.pipeline.run_requested", nil)
		}
	})

	// Health
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Admin
	r.POST("/clear", func(c *gin.Context) {
		adminHandler.Clear(c)
		if publisher != nil {
			publisher.Publish("quiz.cleared", nil)
		}
	})
	r.GET("/history", adminHandler.History)
}
