package application

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/voice-tictactoe/internal/config"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
	"github.com/rocketscienceinc/voice-tictactoe/internal/repository"
	"github.com/rocketscienceinc/voice-tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/voice-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/voice-tictactoe/transport/rest"
	"github.com/rocketscienceinc/voice-tictactoe/transport/websocket"
)

var (
	ErrAddrNotFound        = errors.New("redis address string is empty")
	ErrUnknownSessionStore = errors.New("unknown session store")
)

const maxReplayLineBytes = 1 << 20

// RunApp - runs the application until SIGINT/SIGTERM or a server failure.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessionRepo, closeSessions, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeSessions(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	resultRepo, closeResults, err := newResultRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeResults(); err != nil {
			log.Error("could not close results storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, sessionRepo, resultRepo, usecase.Options{
		ToolNamePrefix:      conf.Voice.ToolNamePrefix,
		ProcessedCallsLimit: conf.Voice.ProcessedCallsLimit,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)

		handlers := rest.NewHandlers(logger, gameManager, conf.Voice.ToolNamePrefix)
		if httpErr := rest.Start(groupCtx, conf.HTTPPort, handlers); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)

		wsServer := websocket.New(logger, gameManager, websocket.Config{
			MaxMessageBytes: conf.Voice.MaxMessageBytes,
			PingInterval:    conf.Voice.PingInterval,
			WriteTimeout:    conf.Voice.WriteTimeout,
		})
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.SessionStore {
	case config.SessionStoreMemory:
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	case config.SessionStoreRedis, "":
		if conf.Redis.Host == "" || conf.Redis.Port == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(redisStorage.Connection, conf.SessionTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, conf.SessionStore)
	}
}

func newResultRepository(ctx context.Context, conf *config.Config) (repository.ResultRepository, func() error, error) {
	if conf.SQLiteStoragePath == "" {
		return repository.NewNopResultRepository(), func() error { return nil }, nil
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open results storage: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, nil, fmt.Errorf("could not init results storage: %w", err)
	}

	return repository.NewResultRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
}

// RunReplay feeds newline-delimited tool_call frames through one in-memory
// session and writes every outbound frame to out, one JSON object per line.
func RunReplay(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "replay")

	gameManager := usecase.NewGameManager(logger, repository.NewMemorySessionRepository(), repository.NewNopResultRepository(), usecase.Options{
		ToolNamePrefix:      conf.Voice.ToolNamePrefix,
		ProcessedCallsLimit: conf.Voice.ProcessedCallsLimit,
	})

	session, err := gameManager.OpenSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	encoder := json.NewEncoder(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReplayLineBytes)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var call entity.ToolCall
		if err = json.Unmarshal([]byte(line), &call); err != nil {
			log.Warn("skipping malformed line", "line", lineNumber, "error", err)
			continue
		}

		if call.Type != entity.MessageToolCall {
			log.Debug("skipping frame", "line", lineNumber, "type", call.Type)
			continue
		}

		reply, callErr := gameManager.HandleToolCall(ctx, session.ID, call)
		if callErr != nil {
			return fmt.Errorf("failed to handle line %d: %w", lineNumber, callErr)
		}

		if reply == nil {
			continue
		}

		if err = encoder.Encode(reply); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return gameManager.CloseSession(ctx, session.ID)
}
