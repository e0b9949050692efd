package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/voice-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/voice-tictactoe/internal/entity"
	mockedRest "github.com/rocketscienceinc/voice-tictactoe/mocks/rest"
	"github.com/rocketscienceinc/voice-tictactoe/testing/suite"
)

func serve(t *testing.T, manager gameManager, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(NewHandlers(suite.NewLogger(), manager, "tic_tac_toe_move"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	return recorder
}

func TestHandlers_Ping(t *testing.T) {
	// When
	recorder := serve(t, mockedRest.NewMockgameManager(t), "/ping")

	// Then
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestHandlers_ToolSchema(t *testing.T) {
	// When
	recorder := serve(t, mockedRest.NewMockgameManager(t), "/tool-schema")

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)

	var schema struct {
		Name       string `json:"name"`
		Parameters struct {
			Properties struct {
				Type struct {
					Enum []string `json:"enum"`
				} `json:"type"`
				Move struct {
					Properties struct {
						Where struct {
							Enum []string `json:"enum"`
						} `json:"where"`
					} `json:"properties"`
				} `json:"move"`
			} `json:"properties"`
		} `json:"parameters"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &schema))

	assert.Equal(t, "tic_tac_toe_move", schema.Name)
	assert.Equal(t, []string{"move", "new_game"}, schema.Parameters.Properties.Type.Enum)
	assert.Len(t, schema.Parameters.Properties.Move.Properties.Where.Enum, 9)
	assert.Contains(t, schema.Parameters.Properties.Move.Properties.Where.Enum, "bottom right")
}

func TestHandlers_GetSession(t *testing.T) {
	t.Run("Live session", func(t *testing.T) {
		// Given
		session := entity.NewSession("session-1", time.Now())
		session.Board = entity.MustParseBoard("x..", ".o.", "...")
		session.GameNumber = 3

		manager := mockedRest.NewMockgameManager(t)
		manager.EXPECT().GetSession(mock.Anything, "session-1").Return(session, nil).Once()

		// When
		recorder := serve(t, manager, "/sessions/session-1")

		// Then
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.JSONEq(t,
			`{"session_id":"session-1","board":["x..",".o.","..."],"computerPiece":"o","whoseMove":"x","gameNumber":3}`,
			recorder.Body.String())
	})

	t.Run("Unknown session", func(t *testing.T) {
		// Given
		manager := mockedRest.NewMockgameManager(t)
		manager.EXPECT().GetSession(mock.Anything, "missing").
			Return(nil, fmt.Errorf("failed to get session: %w", apperror.ErrSessionNotFound)).Once()

		// When
		recorder := serve(t, manager, "/sessions/missing")

		// Then
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Store failure", func(t *testing.T) {
		// Given
		manager := mockedRest.NewMockgameManager(t)
		manager.EXPECT().GetSession(mock.Anything, "session-1").
			Return(nil, fmt.Errorf("failed to get session: %w", assert.AnError)).Once()

		// When
		recorder := serve(t, manager, "/sessions/session-1")

		// Then
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestHandlers_RecentResults(t *testing.T) {
	finishedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Limit is passed through", func(t *testing.T) {
		// Given
		manager := mockedRest.NewMockgameManager(t)
		manager.EXPECT().RecentResults(mock.Anything, 5).Return([]entity.GameRecord{
			{
				SessionID:     "session-1",
				Result:        entity.ResultXWins,
				ComputerPiece: entity.PieceO,
				FinalBoard:    "xxx/oo./...",
				FinishedAt:    finishedAt,
			},
		}, nil).Once()

		// When
		recorder := serve(t, manager, "/results?limit=5")

		// Then
		require.Equal(t, http.StatusOK, recorder.Code)

		var records []entity.GameRecord
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "session-1", records[0].SessionID)
		assert.Equal(t, entity.ResultXWins, records[0].Result)
		assert.True(t, finishedAt.Equal(records[0].FinishedAt))
	})

	t.Run("No results is an empty list", func(t *testing.T) {
		// Given
		manager := mockedRest.NewMockgameManager(t)
		manager.EXPECT().RecentResults(mock.Anything, 0).Return(nil, nil).Once()

		// When
		recorder := serve(t, manager, "/results")

		// Then
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("Bad limit", func(t *testing.T) {
		// When
		recorder := serve(t, mockedRest.NewMockgameManager(t), "/results?limit=ten")

		// Then
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
