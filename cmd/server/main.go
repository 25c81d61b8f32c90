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

	rootcfg "envrt-site/config"
	"envrt-site/internal/cache"
	"envrt-site/internal/config"
	"envrt-site/internal/repository"
	"envrt-site/internal/service"
	"envrt-site/internal/transport/rest"
	"envrt-site/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := rootcfg.Load()

	// Load mailer config and log provider settings
	mailerCfg := config.DefaultMailerConfig()
	log.Printf("Mailer Config:")
	log.Printf("  Endpoint:  %s", mailerCfg.SendEndpoint())
	log.Printf("  Notify:    %s", mailerCfg.InternalNotify)
	if mailerCfg.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (lead endpoints will refuse)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	leadRepo := repository.NewLeadRepo(db)
	eventRepo := repository.NewEventRepo(db)

	// Initialize caches
	rlCache := cache.NewRateLimitCache(rdb, time.Minute)
	statsCache := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	scoringSvc := service.NewScoringService()
	roiSvc := service.NewROIService()
	mailer := service.NewResendClient(mailerCfg)
	leadSvc := service.NewLeadService(mailer, mailerCfg, leadRepo)
	analyticsSvc := service.NewAnalyticsService(eventRepo, statsCache)

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "content/insights"
	}
	insightsSvc := service.NewInsightsService(contentDir, cfg.IsProduction())
	if err := insightsSvc.Load(); err != nil {
		log.Fatal("Failed to load insights content:", err)
	}
	log.Printf("Loaded %d insight posts", len(insightsSvc.List("")))

	// Inject broadcaster (wsHub implements service.Broadcaster)
	leadSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		ScoringService:   scoringSvc,
		ROIService:       roiSvc,
		LeadService:      leadSvc,
		InsightsService:  insightsSvc,
		AnalyticsService: analyticsSvc,
		Mailer:           mailer,
		LeadRepo:         leadRepo,
		RateLimit:        rlCache,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/assessment/questions")
		log.Println("  POST /v1/assessment/score")
		log.Println("  POST /v1/roi/calculate")
		log.Println("  POST /v1/leads/{assessment,roi,contact}")
		log.Println("  GET  /v1/insights")
		log.Println("  POST /v1/analytics/events")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/admin/leads")
		log.Println("  GET  /v1/admin/analytics/summary")
		log.Println("  WS   /v1/ws/leads")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
