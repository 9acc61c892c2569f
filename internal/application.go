package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository"
	"github.com/rocketscienceinc/tictactoe-api/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
	redisTransport "github.com/rocketscienceinc/tictactoe-api/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-api/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
	"github.com/rocketscienceinc/tictactoe-api/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateCurrent = "current"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrUnknownMigrateStep = errors.New("unknown migrate command")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	appMetrics := metrics.New()

	userRepo := repository.NewUserRepository(sqliteStorage.Connection)
	gameRepo := repository.NewGameRepository(sqliteStorage.Connection)
	tokenRepo := repository.NewTokenRepository(redisStorage.Connection)

	events := redisTransport.New(logger, redisStorage.Connection)

	authService := service.NewAuthService(conf.JWT.SecretKey, conf.JWT.TTL, tokenRepo)
	botService := service.NewBotService()

	userUseCase := usecase.NewUserUseCase(logger, userRepo, authService)
	gameUseCase := usecase.NewGameUseCase(logger, appMetrics, gameRepo, botService, events)

	wsServer := websocket.New(logger, conf.WebSocket, appMetrics, userUseCase, gameUseCase, events)
	restServer := rest.New(logger, conf, appMetrics, userUseCase, gameUseCase, wsServer)

	// fan game events out to local sockets
	eventsErrCh := make(chan error, 1)
	go func() {
		if listenErr := events.Listen(ctx, nil, wsServer.Dispatch); listenErr != nil {
			log.Error("game events listener error", "error", listenErr)
			eventsErrCh <- listenErr
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	var runErr error

	select {
	case err = <-httpErrCh:
		runErr = fmt.Errorf("HTTP server error: %w", err)
	case err = <-eventsErrCh:
		runErr = fmt.Errorf("game events error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	wsServer.Close()

	if err = restServer.Shutdown(shutdownCtx); err != nil {
		log.Error("could not shutdown HTTP server", "error", err)
	}

	return runErr
}

// RunMigrations - applies, rolls back or reports the schema version of the sqlite storage.
func RunMigrations(ctx context.Context, logger *slog.Logger, conf *config.Config, command string) error {
	log := logger.With("component", "migrate")

	sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	switch command {
	case MigrateUp:
		if err = storage.MigrateUp(sqliteStorage.Connection); err != nil {
			return err
		}
	case MigrateDown:
		if err = storage.MigrateDown(sqliteStorage.Connection); err != nil {
			return err
		}
	case MigrateCurrent:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMigrateStep, command)
	}

	version, dirty, err := storage.CurrentVersion(sqliteStorage.Connection)
	if err != nil {
		return err
	}

	log.Info("schema version", "command", command, "version", version, "dirty", dirty)

	return nil
}
