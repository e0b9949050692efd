package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/voice-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	ToolSchema(w http.ResponseWriter, _ *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	RecentResults(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	RecentResults(ctx context.Context, limit int) ([]entity.GameRecord, error)
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
	toolName    string
}

func NewHandlers(logger *slog.Logger, gameManager gameManager, toolName string) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
		toolName:    toolName,
	}
}

// sessionView is the read-only snapshot of a live session.
type sessionView struct {
	SessionID     string       `json:"session_id"`
	Board         entity.Board `json:"board"`
	ComputerPiece entity.Piece `json:"computerPiece"`
	WhoseMove     entity.Piece `json:"whoseMove"`
	GameNumber    int          `json:"gameNumber"`
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) ToolSchema(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, NewToolSchema(that.toolName))
}

func (that *handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetSession")

	session, err := that.gameManager.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, apperror.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		log.Error("failed to get session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, sessionView{
		SessionID:     session.ID,
		Board:         session.Board,
		ComputerPiece: session.ComputerPiece,
		WhoseMove:     session.WhoseMove,
		GameNumber:    session.GameNumber,
	})
}

func (that *handlers) RecentResults(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "RecentResults")

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := that.gameManager.RecentResults(r.Context(), limit)
	if err != nil {
		log.Error("failed to list results", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []entity.GameRecord{}
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
