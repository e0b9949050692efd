package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
	"github.com/rocketscienceinc/voice-tictactoe/internal/tictactoe"
)

const (
	DefaultResultsLimit = 20
	MaxResultsLimit     = 100
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	Recent(ctx context.Context, limit int) ([]entity.GameRecord, error)
}

type Options struct {
	// ToolNamePrefix selects which tool calls are game actions.
	ToolNamePrefix      string
	ProcessedCallsLimit int
}

// GameManager drives the game of each voice session from its tool calls.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	resultRepo  resultRepo
	options     Options

	now   func() time.Time
	newID func() string
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, resultRepo resultRepo, options Options) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		options:     options,

		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
}

// OpenSession starts the state of a new voice connection.
func (that *GameManager) OpenSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession(that.newID(), that.now())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session opened", "sessionID", session.ID)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// CloseSession discards the state of a finished voice connection.
func (that *GameManager) CloseSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session closed", "sessionID", id)

	return nil
}

// HandleToolCall applies one tool call to the session and returns the reply.
// It returns nil, nil when there is nothing to send: a call id seen before,
// a tool that is not ours, or parameters that are not a known action.
func (that *GameManager) HandleToolCall(ctx context.Context, sessionID string, call entity.ToolCall) (*entity.ToolMessage, error) {
	log := that.logger.With("method", "HandleToolCall", "sessionID", sessionID, "toolCallID", call.ToolCallID)

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !session.MarkProcessed(call.ToolCallID, that.options.ProcessedCallsLimit) {
		log.Debug("duplicate tool call ignored")
		return nil, nil
	}

	outcome, err := that.apply(log, session, call)
	if err != nil {
		return nil, err
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if outcome == nil {
		return nil, nil
	}

	if outcome.GameOver() {
		that.recordResult(ctx, session, outcome)
	}

	return outcome.Message, nil
}

func (that *GameManager) apply(log *slog.Logger, session *entity.Session, call entity.ToolCall) (*tictactoe.Outcome, error) {
	if !strings.HasPrefix(call.Name, that.options.ToolNamePrefix) {
		log.Debug("tool call for another tool ignored", "name", call.Name)
		return nil, nil
	}

	action, err := entity.DecodeAction(call.Parameters)
	if err != nil {
		log.Warn("malformed action ignored", "error", err)
		return nil, nil
	}

	before := session.Board

	outcome, err := tictactoe.Apply(session, call.ToolCallID, action)
	if err != nil {
		return nil, fmt.Errorf("failed to apply action: %w", err)
	}

	if outcome.Result == entity.ResultFailure {
		log.Info("illegal move attempted",
			"board", before.String(),
			"action", fmt.Sprintf("%+v", action),
			"computerPiece", session.ComputerPiece,
			"whoseMove", session.WhoseMove,
			"reason", outcome.Reason,
		)
		return outcome, nil
	}

	log.Debug("action applied", "result", outcome.Result, "board", session.Board.String())

	return outcome, nil
}

// recordResult journals a finished game. The game has already moved on, so a
// journal failure is only logged.
func (that *GameManager) recordResult(ctx context.Context, session *entity.Session, outcome *tictactoe.Outcome) {
	log := that.logger.With("method", "recordResult", "sessionID", session.ID)

	record := &entity.GameRecord{
		SessionID:     session.ID,
		Result:        outcome.Result,
		ComputerPiece: session.ComputerPiece.Other(),
		FinalBoard:    outcome.FinalBoard.String(),
		FinishedAt:    that.now(),
	}

	if err := that.resultRepo.Save(ctx, record); err != nil {
		log.Error("failed to save game result", "error", err)
		return
	}

	log.Info("game finished", "result", outcome.Result)
}

// RecentResults lists finished games, newest first.
func (that *GameManager) RecentResults(ctx context.Context, limit int) ([]entity.GameRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultResultsLimit
	case limit > MaxResultsLimit:
		limit = MaxResultsLimit
	}

	records, err := that.resultRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return records, nil
}
