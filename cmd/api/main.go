package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/config"
	"github.com/tanakh-search-api/internal/handlers"
	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/internal/middleware"
	"github.com/tanakh-search-api/internal/repository"
	"github.com/tanakh-search-api/internal/repository/file"
	"github.com/tanakh-search-api/internal/repository/httpsource"
	"github.com/tanakh-search-api/internal/repository/sefaria"
	"github.com/tanakh-search-api/internal/repository/sqlstore"
	"github.com/tanakh-search-api/internal/services"
	"github.com/tanakh-search-api/pkg/schema/db"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())

	ctx := context.Background()
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// Create the search index source based on configuration
	var source repository.IndexSource
	switch cfg.IndexSource {
	case "database":
		log.Println("Using database index source")
		if err := db.InitDatabase(ctx); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		log.Println("Database initialization complete")
		source = sqlstore.NewVerseRepository(db.GetDatabase())
	case "http":
		if cfg.IndexURL == "" {
			log.Fatal("INDEX_URL is required when INDEX_SOURCE=http")
		}
		log.Printf("Using HTTP index source %s", cfg.IndexURL)
		source = httpsource.NewIndexRepository(cfg.IndexURL, httpClient)
	case "file":
		log.Printf("Using file index source %s", cfg.IndexPath)
		source = file.NewIndexRepository(cfg.IndexPath)
	default:
		log.Fatalf("Unknown INDEX_SOURCE %q (want file, http or database)", cfg.IndexSource)
	}

	catalog := books.Tanakh()
	indexCache := index.NewCache(source, catalog)

	// Warm the index so the first search does not pay for the load. A
	// failure here is not fatal: the next search retries.
	if cfg.IndexPreload {
		go func() {
			if _, err := indexCache.Load(ctx); err != nil {
				log.Printf("Search index preload failed: %v", err)
			}
		}()
	}

	// Create services
	searchSvc := services.NewSearchService(indexCache, cfg.SearchCacheSize)
	commentarySvc := services.NewCommentaryService(sefaria.NewCommentaryRepository(cfg.SefariaAPIURL, httpClient))

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	handlers.NewHealthHandler(indexCache).RegisterRoutes(api)
	handlers.NewSearchHandler(searchSvc, catalog, cfg.SearchMaxLimit).RegisterRoutes(api)
	handlers.NewBooksHandler(catalog, file.NewChapterRepository(cfg.DataDir)).RegisterRoutes(api)
	handlers.NewCommentaryHandler(catalog, commentarySvc).RegisterRoutes(api)

	// Root health check
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Starting %s v%s on %s", cfg.APITitle, cfg.APIVersion, addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := db.CloseDatabase(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server stopped")
}
