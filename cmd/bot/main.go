package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordquiz/internal/config"
	"wordquiz/internal/handler"
	"wordquiz/internal/middleware"
	"wordquiz/internal/repository"
	"wordquiz/internal/repository/file"
	"wordquiz/internal/repository/postgres"
	"wordquiz/internal/service"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Word Quiz Bot", zap.String("storage", cfg.Backend))

	// Initialize repository
	repo, closeRepo, err := openRepository(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeRepo()

	// Initialize services
	vocabulary := service.NewVocabularyStore(repo, logger)
	if _, err := vocabulary.Load(); err != nil {
		logger.Fatal("Failed to load vocabulary", zap.Error(err))
	}
	sessions := service.NewSessionState(nil)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
		OnError: func(err error, c tele.Context) {
			logger.Error("Telegram handler error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(middleware.Recover(logger), middleware.Logging(logger))

	// Initialize handler
	h := handler.NewHandler(bot, vocabulary, sessions, logger)
	h.RegisterHandlers()

	if err := bot.SetCommands(handler.Commands()); err != nil {
		logger.Warn("Failed to set bot commands", zap.Error(err))
	}

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openRepository builds the vocabulary repository for the configured backend
func openRepository(cfg *config.Config, logger *zap.Logger) (repository.WordRepository, func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Database connection established")

		if err := postgres.Migrate(db.DB, logger); err != nil {
			db.Close()
			return nil, nil, err
		}

		return postgres.NewWordRepo(db), func() { db.Close() }, nil
	default:
		repo := file.NewWordRepo(cfg.WordsFile)
		logger.Info("Using file storage", zap.String("path", repo.Path()))
		return repo, func() {}, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to connect to database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
