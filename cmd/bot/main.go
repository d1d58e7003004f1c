package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intakebot/internal/config"
	"intakebot/internal/contractfile"
	"intakebot/internal/handler"
	"intakebot/internal/middleware"
	"intakebot/internal/repository"
	"intakebot/internal/repository/memory"
	"intakebot/internal/repository/postgres"
	"intakebot/internal/scheduler"
	"intakebot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Intake Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage", cfg.Storage),
		zap.String("default_language", cfg.DefaultLanguage),
	)

	// Load contract table
	contracts, err := contractfile.Load(cfg.ContractsFile)
	if err != nil {
		logger.Fatal("Failed to load contracts", zap.Error(err))
	}

	logger.Info("Contract table loaded", zap.Int("records", len(contracts)))

	// Initialize repositories
	sessionRepo, contractRepo, closeStorage, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeStorage()

	if err := contractRepo.Import(contracts); err != nil {
		logger.Fatal("Failed to import contracts", zap.Error(err))
	}

	// Initialize services
	llmClient := openai.NewClient(cfg.OpenAIKey)
	translator := service.NewTranslator(llmClient, cfg.OpenAIModel, cfg.LLMTimeout, logger)
	advisor := service.NewAdvisor(llmClient, cfg.OpenAIModel, cfg.LLMTimeout, logger)
	contractService := service.NewContractService(contractRepo)
	sessionService := service.NewSessionService(sessionRepo, cfg.DefaultLanguage)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(
		bot,
		sessionService,
		contractService,
		translator,
		advisor,
		scheduler.New(),
		cfg.DefaultLanguage,
		cfg.SupportedLanguages,
		logger,
	)

	bot.Use(middleware.SessionBootstrap(sessionService, h, logger))
	h.RegisterHandlers()

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

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// buildStorage selects the repository backend per configuration
func buildStorage(cfg *config.Config, logger *zap.Logger) (repository.SessionRepository, repository.ContractRepository, func(), error) {
	if cfg.Storage == config.StorageMemory {
		return memory.NewSessionRepo(), memory.NewContractRepo(), func() {}, nil
	}

	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	logger.Info("Database migrations completed")

	return postgres.NewSessionRepo(db), postgres.NewContractRepo(db), func() { db.Close() }, nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
