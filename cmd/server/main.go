package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"skillbridge/internal/ai"
	"skillbridge/internal/ai/gemini"
	"skillbridge/internal/cache"
	"skillbridge/internal/config"
	"skillbridge/internal/logger"
	"skillbridge/internal/repository"
	"skillbridge/internal/service"
	"skillbridge/internal/transport/rest"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zl, err := logger.New(os.Getenv("LOG_JSON") != "", os.Getenv("DEBUG") != "")
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zl.Fatal("connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		zl.Fatal("ping MongoDB", zap.Error(err))
	}
	zl.Info("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		zl.Fatal("ping Redis", zap.Error(err))
	}
	zl.Info("connected to Redis")

	// Gemini client; nil generator means deterministic fallbacks everywhere
	var profileGen, insightGen ai.Generator
	if cfg.AI.IsEnabled() {
		pg, err := gemini.NewGenerator(ctx, cfg.AI.APIKey, cfg.AI.ProfileModel)
		if err != nil {
			zl.Fatal("create gemini client", zap.Error(err))
		}
		profileGen = pg

		ig, err := gemini.NewGenerator(ctx, cfg.AI.APIKey, cfg.AI.InsightModel)
		if err != nil {
			zl.Fatal("create gemini client", zap.Error(err))
		}
		insightGen = ig

		zl.Info("gemini enabled",
			zap.String("profileModel", cfg.AI.ProfileModel),
			zap.String("insightModel", cfg.AI.InsightModel))
	} else {
		zl.Warn("GEMINI_API_KEY not set, using deterministic fallback output")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	questionRepo := repository.NewQuestionRepo(db)

	// Initialize caches
	flowCache := cache.NewFlowCache(rdb)
	insightCache := cache.NewInsightCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(questionRepo, zl)
	synthesisSvc := service.NewSynthesisService(profileGen, cfg.AI.Timeout, zl)
	assessmentSvc := service.NewAssessmentService(catalogSvc, synthesisSvc, userRepo, flowCache, insightCache, zl)
	jobSvc := service.NewJobService(insightGen, userRepo, insightCache, cfg.AI.Timeout, zl)
	learningSvc := service.NewLearningService(insightGen, userRepo, insightCache, cfg.AI.Timeout, zl)

	// Create router with container
	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		JobService:        jobSvc,
		LearningService:   learningSvc,
		Logger:            zl,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("forced shutdown", zap.Error(err))
	}

	zl.Info("server exited")
}
