package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"outing-board-backend/internal/api/routes"
	"outing-board-backend/internal/auth"
	"outing-board-backend/internal/config"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "outing-board-backend/docs" // This is needed for swag
)

//	@title			Outing Board API
//	@version		1.0
//	@description	Backend for the congregation preaching-outing board: weekly roster, change log, announcements, appearance and AI suggestions.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the editor token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		logrus.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("closing key-value store")
		}
	}()

	var generator service.TextGenerator
	if cfg.GeminiEnabled() {
		gemini, err := service.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		generator = gemini
	} else {
		logrus.Warn("GEMINI_API_KEY not set, suggestions will use the fallback list")
	}

	board, err := service.NewBoard(ctx, service.BoardOptions{
		Store:                store,
		Generator:            generator,
		Credentials:          auth.CredentialsFromConfig(cfg),
		EditorTokenTTL:       time.Duration(cfg.EditorTokenTTLMin) * time.Minute,
		SuggestionTimeout:    time.Duration(cfg.SuggestionTimeoutSec) * time.Second,
		AnnouncementDuration: cfg.AnnouncementDefaultDuration,
		SeedRoster:           cfg.SeedRoster,
	})
	if err != nil {
		return err
	}
	defer board.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(board, store, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"port":       cfg.Port,
			"kv_backend": cfg.KVBackend,
		}).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
