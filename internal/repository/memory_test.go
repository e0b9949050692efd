package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/voice-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()

		// Given: a stored session
		session := newTestSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: it is read back
		retrieved, err := sessionRepo.GetByID(ctx, "123")

		// Then: the same state is returned
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)
	})

	t.Run("Stored copy is isolated from the caller", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()

		session := newTestSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: the caller keeps mutating its session without saving
		session.Board = session.Board.Place(2, 2, entity.PieceX)
		session.MarkProcessed("call-2", 10)

		// Then: the stored session is unchanged
		retrieved, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, []string{"x..", ".o.", "..."}, retrieved.Board.Rows())
		assert.Equal(t, []string{"call-1"}, retrieved.ProcessedCalls)
	})

	t.Run("Unknown and deleted sessions are not found", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()

		_, err := sessionRepo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)

		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession("123")))
		require.NoError(t, sessionRepo.DeleteByID(ctx, "123"))

		_, err = sessionRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)

		assert.ErrorIs(t, sessionRepo.DeleteByID(ctx, "123"), apperror.ErrSessionNotFound)
	})
}
