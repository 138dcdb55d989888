package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"climatewise/internal/cache"
	"climatewise/internal/catalog"
	"climatewise/internal/config"
	"climatewise/internal/repository"
	"climatewise/internal/service"
	"climatewise/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Load the catalog, preferring the seeded collections
	cat := loadCatalog(ctx, db)

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	certRepo := repository.NewCertificateRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	leaderboard := cache.NewLeaderboardCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	accountSvc := service.NewAccountService(userRepo, sessionRepo, certRepo, leaderboard)
	selectorSvc := service.NewSelectorService(cat)
	recSvc := service.NewRecommendationService(cat)
	certSvc := service.NewCertificateService(certRepo)
	sessionSvc := service.NewSessionService(selectorSvc, recSvc, certSvc, cat, sessionRepo, userRepo, certRepo, sessionCache, leaderboard)

	// Create router with container
	container := &rest.Container{
		AuthService:           authSvc,
		AccountService:        accountSvc,
		SessionService:        sessionSvc,
		CertificateService:    certSvc,
		RecommendationService: recSvc,
		Leaderboard:           leaderboard,
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
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET/PUT /v1/profile")
		log.Println("  POST /v1/survey/start")
		log.Println("  PUT  /v1/survey/{sessionId}/answers/{questionId}")
		log.Println("  POST /v1/survey/{sessionId}/complete")
		log.Println("  GET  /v1/certificates/verify/{code}")
		log.Println("  GET  /v1/dashboard")

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

// loadCatalog reads the seeded catalog from Mongo. An unseeded or
// unreadable database falls back to the built-in data so the service can
// still serve surveys.
func loadCatalog(ctx context.Context, db *mongo.Database) *catalog.Store {
	catalogRepo := repository.NewCatalogRepo(db)

	count, err := catalogRepo.Count(ctx, catalog.KindQuestion)
	if err != nil || count == 0 {
		log.Println("Warning: catalog not seeded, using built-in defaults (run cmd/seed)")
		return catalog.Default()
	}

	questions, err := catalogRepo.LoadQuestions(ctx)
	if err != nil {
		log.Printf("Warning: failed to load questions (%v), using built-in defaults", err)
		return catalog.Default()
	}
	recs, err := catalogRepo.LoadRecommendations(ctx)
	if err != nil {
		log.Printf("Warning: failed to load recommendations (%v), using built-in defaults", err)
		return catalog.Default()
	}
	facts, err := catalogRepo.LoadFacts(ctx)
	if err != nil {
		log.Printf("Warning: failed to load facts (%v), using built-in defaults", err)
		return catalog.Default()
	}

	store, err := catalog.NewStore(questions, recs, facts)
	if err != nil {
		log.Printf("Warning: seeded catalog is invalid (%v), using built-in defaults", err)
		return catalog.Default()
	}

	log.Printf("Catalog loaded: %d questions, %d recommendations, %d facts", len(questions), len(recs), len(facts))
	return store
}
