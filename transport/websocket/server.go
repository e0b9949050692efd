package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

const (
	defaultPingInterval = 20 * time.Second
	defaultWriteTimeout = 5 * time.Second
	closeTimeout        = 5 * time.Second
)

type gameManager interface {
	OpenSession(ctx context.Context) (*entity.Session, error)
	CloseSession(ctx context.Context, id string) error
	HandleToolCall(ctx context.Context, sessionID string, call entity.ToolCall) (*entity.ToolMessage, error)
}

type Config struct {
	MaxMessageBytes int64
	PingInterval    time.Duration
	WriteTimeout    time.Duration
}

type handlerFunc func(ctx context.Context, conn *connection, frame []byte) error

// Server bridges voice provider tool calls to the game. Each websocket
// connection is one voice session.
type Server struct {
	logger      *slog.Logger
	gameManager gameManager
	config      Config
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameManager gameManager, config Config) *Server {
	if config.PingInterval <= 0 {
		config.PingInterval = defaultPingInterval
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaultWriteTimeout
	}

	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,
		config:      config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[entity.MessageToolCall] = server.handleToolCall

	return server
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the request and runs the session until the peer goes away.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	if req.Method != http.MethodGet {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(ws, that.config)
	defer conn.Close()

	if that.config.MaxMessageBytes > 0 {
		ws.SetReadLimit(that.config.MaxMessageBytes)
	}

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	session, err := that.gameManager.OpenSession(ctx)
	if err != nil {
		log.Error("failed to open session", "error", err)
		conn.CloseWithReason(websocket.CloseInternalServerErr, "failed to open session")
		return
	}

	conn.sessionID = session.ID
	log = log.With("sessionID", session.ID)

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer closeCancel()

		if err = that.gameManager.CloseSession(closeCtx, session.ID); err != nil {
			log.Error("failed to close session", "error", err)
		}
	}()

	if err = conn.WriteJSON(sessionStarted{Type: messageSessionStarted, SessionID: session.ID}); err != nil {
		log.Error("failed to send session start", "error", err)
		return
	}

	log.Info("WebSocket connection established")

	go conn.KeepAlive(ctx)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	log.Info("WebSocket connection closed")
}

// handleMessages - processes frames from the voice provider in delivery order.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "sessionID", conn.sessionID)

	for {
		messageType, frame, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		if messageType != websocket.TextMessage {
			log.Debug("non-text frame ignored", "messageType", messageType)
			continue
		}

		var message envelope
		if err = json.Unmarshal(frame, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Type]
		if !ok {
			log.Debug("message type ignored", "type", message.Type)
			continue
		}

		if err = handler(ctx, conn, frame); err != nil {
			log.Error("error processing message", "type", message.Type, "error", err)
		}
	}
}

func (that *Server) handleToolCall(ctx context.Context, conn *connection, frame []byte) error {
	var call entity.ToolCall
	if err := json.Unmarshal(frame, &call); err != nil {
		return fmt.Errorf("failed to unmarshal tool call: %w", err)
	}

	reply, err := that.gameManager.HandleToolCall(ctx, conn.sessionID, call)
	if err != nil {
		return fmt.Errorf("failed to handle tool call %q: %w", call.ToolCallID, err)
	}

	if reply == nil {
		return nil
	}

	if err = conn.WriteJSON(reply); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}
