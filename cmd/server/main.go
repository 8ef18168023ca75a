package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rea/internal/config"
	"rea/internal/handler"
	"rea/internal/model"
	"rea/internal/repository"
	"rea/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Real Estate Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Load the listing dataset
	var listings []model.Listing
	var searchLogger service.SearchLogger

	if cfg.UsePostgres() {
		repo, err := repository.NewPostgresRepository(
			cfg.Postgres.DSN,
			cfg.Postgres.MaxConnections,
			cfg.Postgres.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()

		listings, err = repo.ListListings(context.Background())
		if err != nil {
			log.Fatalf("Failed to load listings: %v", err)
		}
		searchLogger = repo
		log.Printf("✅ Loaded %d listings from PostgreSQL", len(listings))
	} else {
		listings, err = repository.LoadCSV(cfg.Dataset.CSVPath)
		if err != nil {
			log.Fatalf("Failed to load dataset from %s: %v", cfg.Dataset.CSVPath, err)
		}
		log.Printf("✅ Loaded %d listings from %s", len(listings), cfg.Dataset.CSVPath)
	}

	// Initialize the model client
	var ollamaClient service.Generator
	if cfg.Ollama.Enabled {
		ollamaClient = service.NewOllamaClient(&cfg.Ollama)
		log.Printf("✅ Ollama client initialized")
		log.Printf("   - Host: %s", cfg.Ollama.Host)
		log.Printf("   - Model: %s", cfg.Ollama.Model)
		log.Printf("   - Temperature: %.2f", cfg.Ollama.Temperature)
	} else {
		log.Println("⚠️  Ollama is disabled - extraction will use the pattern-based fallback only")
	}

	// Initialize services
	extractor := service.NewCriteriaExtractor(ollamaClient)
	searchService := service.NewSearchService(listings, extractor, searchLogger)
	log.Println("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(searchService, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	searchHandler := handler.NewSearchHandler(searchService, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "healthy",
			"service":  "real-estate-assistant",
			"version":  Version,
			"listings": len(listings),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.POST("/search", searchHandler.Search)
		apiV1.GET("/listings/:id", searchHandler.GetListing)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
