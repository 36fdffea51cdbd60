package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kopeckyd/vocabulaire/internal/config"
	"github.com/kopeckyd/vocabulaire/internal/database"
	"github.com/kopeckyd/vocabulaire/internal/database/books"
	"github.com/kopeckyd/vocabulaire/internal/database/vocabulary"
	"github.com/kopeckyd/vocabulaire/internal/extract"
	http_controllers "github.com/kopeckyd/vocabulaire/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Vocabulaire v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if _, err := db.CurrentUser(cfg.User.Username); err != nil {
		log.Printf("WARNING: %v", err)
	}

	bookRepo := books.NewRepository(db.DB)
	vocabularyRepo := vocabulary.NewRepository(db.DB)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStore:          bookRepo,
		VocabularyStore:    vocabularyRepo,
		Users:              db,
		Extractor:          extract.NewService(),
		DefaultUsername:    cfg.User.Username,
		UploadDir:          cfg.Upload.Dir,
		WordCountLimit:     cfg.Vocabulary.WordCountLimit,
		DefaultLetterLimit: cfg.Vocabulary.DefaultLetterLimit,
		Version:            version,
	})

	var janitor *uploadJanitor
	if cfg.Upload.CleanupEnabled {
		janitor, err = startUploadJanitor(cfg.Upload)
		if err != nil {
			log.Fatalf("Failed to start upload janitor: %v", err)
		}
	}

	Serve(router, cfg, func(ctx context.Context) {
		if janitor != nil {
			janitor.Stop(ctx)
		}
	})
}
