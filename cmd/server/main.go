package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/daybook-app/daybook-backend/internal/config"
	"github.com/daybook-app/daybook-backend/internal/database"
	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/middleware"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/services"
	"github.com/daybook-app/daybook-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Println("⚠️  WARNING: JWT_SECRET not set, using the default development key.")
		log.Println("   Generate one with: openssl rand -base64 32")
	}

	// Connect to PostgreSQL (accounts)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (rate limiting)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB (journal entries)
	log.Printf("Connecting to MongoDB...")
	if err := database.ConnectMongo(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.DisconnectMongo()

	if err := database.EnsureJournalIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB journal indexes: %v", err)
	} else {
		log.Println("✅ MongoDB journal indexes ensured")
	}

	// Wire stores and services
	accounts := store.NewPostgresAccountStore(database.PostgresDB)
	journals := store.NewMongoJournalStore(database.DB)
	tokens := services.NewTokenService(services.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL})
	registry := services.NewAccountRegistry(accounts, tokens)
	guard := services.NewAuthGuard(tokens, accounts)
	handlers.Init(registry, guard, journals)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RateLimit)
	r.Use(middleware.LoginRateLimit)

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Println("📋 Registered routes:")
	log.Println("  GET    /health")
	log.Println("  POST   /api/auth/user/register")
	log.Println("  POST   /api/auth/user/login")
	log.Println("  POST   /api/auth/admin/register")
	log.Println("  POST   /api/auth/admin/login")
	log.Println("  GET    /api/auth/profile")
	log.Println("  GET    /api/admin/users")
	log.Println("  POST   /api/journals")
	log.Println("  GET    /api/journals")
	log.Println("  GET    /api/journals/word-frequency")
	log.Println("  GET    /api/journals/summaries")
	log.Println("  GET    /api/journals/by-category/{category}")
	log.Println("  GET    /api/journals/by-date/{date}")
	log.Println("  GET    /api/journals/{id}")
	log.Println("  PUT    /api/journals/{id}")
	log.Println("  DELETE /api/journals/{id}")

	log.Printf("🚀 Daybook backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
