package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"sangoku/internal/engine"
	"sangoku/internal/server/game"
	"sangoku/internal/shogi"
)

func newTestHandler() *Handler {
	eng := engine.NewEngine(engine.WithDepth(1), engine.WithSeed(1), engine.WithLogger(zerolog.Nop()))
	return NewHandler(game.NewManager(eng))
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf)))
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func sqIndex(row, col int) int { return int(shogi.SquareAt(row, col)) }

func intPtr(v int) *int { return &v }

func TestNewGameAndState(t *testing.T) {
	h := newTestHandler()

	rec := post(t, h, "/api/new_game", NewGameRequest{})
	require.Equal(t, http.StatusOK, rec.Code)
	st := decodeBody[StateResponse](t, rec)
	require.NotEmpty(t, st.GameID)
	require.Equal(t, "2ljikm2/4r4/3ppp3/9/9/9/3PPP3/4D4/2GBACH2 -", st.Position)
	require.Equal(t, 0, st.ToMove)
	require.Equal(t, 1, st.EngineSide)
	require.Equal(t, "ongoing", st.Status)
	require.Equal(t, -1, st.Winner)
	require.NotEmpty(t, st.LegalMoves)
	require.Nil(t, st.LastMove)

	rec = post(t, h, "/api/state", StateRequest{GameID: st.GameID})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, st.Position, decodeBody[StateResponse](t, rec).Position)
}

func TestPlayThenAiMove(t *testing.T) {
	h := newTestHandler()
	st := decodeBody[StateResponse](t, post(t, h, "/api/new_game", NewGameRequest{}))

	rec := post(t, h, "/api/play", PlayRequest{
		GameID: st.GameID,
		Move:   MoveDTO{Type: "move", From: sqIndex(6, 4), To: sqIndex(5, 4)},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	st = decodeBody[StateResponse](t, rec)
	require.Equal(t, 1, st.ToMove)
	require.NotNil(t, st.LastMove)
	require.Equal(t, sqIndex(5, 4), st.LastMove.To)
	require.Equal(t, 0, st.LastMove.Side)

	rec = post(t, h, "/api/ai_move", AiMoveRequest{GameID: st.GameID})
	require.Equal(t, http.StatusOK, rec.Code)
	ai := decodeBody[AiMoveResponse](t, rec)
	require.Equal(t, 0, ai.ToMove)
	require.Equal(t, 2, ai.Ply)
	require.Equal(t, ai.BestMove.To, ai.LastMove.To)
	require.Positive(t, ai.Ties)
}

func TestLegalTargets(t *testing.T) {
	h := newTestHandler()
	side := -1
	st := decodeBody[StateResponse](t, post(t, h, "/api/new_game", NewGameRequest{
		EngineSide: &side,
		Position:   "4i4/9/9/9/9/9/4P4/9/4A4 P",
	}))
	require.Equal(t, -1, st.EngineSide)

	rec := post(t, h, "/api/legal", LegalRequest{GameID: st.GameID, From: intPtr(sqIndex(6, 4))})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []int{sqIndex(5, 4)}, decodeBody[LegalResponse](t, rec).Targets)

	rec = post(t, h, "/api/legal", LegalRequest{GameID: st.GameID, Piece: "fu"})
	require.Equal(t, http.StatusOK, rec.Code)
	targets := decodeBody[LegalResponse](t, rec).Targets
	require.NotEmpty(t, targets)
	for _, sq := range targets {
		require.NotEqual(t, 4, sq%shogi.Cols, "nifu column")
	}

	rec = post(t, h, "/api/legal", LegalRequest{GameID: st.GameID, Piece: "queen"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 不给 from 也不给 piece，不能当成查 0 号格
	rec = post(t, h, "/api/legal", LegalRequest{GameID: st.GameID})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 0 号格是空的，明确给出时正常返回空列表
	rec = post(t, h, "/api/legal", LegalRequest{GameID: st.GameID, From: intPtr(0)})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody[LegalResponse](t, rec).Targets)

	rec = post(t, h, "/api/play", PlayRequest{
		GameID: st.GameID,
		Move:   MoveDTO{Type: "drop", From: -1, To: sqIndex(4, 2), Piece: "fu"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	st = decodeBody[StateResponse](t, rec)
	require.Equal(t, "drop", st.LastMove.Type)
	require.Equal(t, "fu", st.LastMove.Piece)
}

func TestErrorStatuses(t *testing.T) {
	h := newTestHandler()
	st := decodeBody[StateResponse](t, post(t, h, "/api/new_game", NewGameRequest{}))

	cases := []struct {
		name string
		path string
		body any
		code int
	}{
		{"unknown game", "/api/state", StateRequest{GameID: "missing"}, http.StatusNotFound},
		{"illegal move", "/api/play", PlayRequest{GameID: st.GameID, Move: MoveDTO{From: sqIndex(6, 4), To: sqIndex(4, 4)}}, http.StatusBadRequest},
		{"bad move type", "/api/play", PlayRequest{GameID: st.GameID, Move: MoveDTO{Type: "jump"}}, http.StatusBadRequest},
		{"engine turn refused", "/api/ai_move", AiMoveRequest{GameID: st.GameID}, http.StatusConflict},
		{"bad setup", "/api/new_game", NewGameRequest{Setup: "chaos"}, http.StatusBadRequest},
		{"bad diagram", "/api/new_game", NewGameRequest{Position: "9/9"}, http.StatusBadRequest},
		{"unknown path", "/api/nothing", StateRequest{}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, tc.path, tc.body)
			require.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/state", bytes.NewBufferString("{")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGameOverIsConflict(t *testing.T) {
	h := newTestHandler()
	side := 0
	st := decodeBody[StateResponse](t, post(t, h, "/api/new_game", NewGameRequest{
		EngineSide: &side,
		Position:   "i8/9/p1B6/9/9/9/9/9/1D5A1",
		ToMove:     0,
	}))

	ai := decodeBody[AiMoveResponse](t, post(t, h, "/api/ai_move", AiMoveRequest{GameID: st.GameID}))
	require.Equal(t, "checkmate", ai.Status)
	require.Equal(t, 0, ai.Winner)
	require.True(t, ai.InCheck)
	require.Empty(t, ai.LegalMoves)

	rec := post(t, h, "/api/ai_move", AiMoveRequest{GameID: st.GameID})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, decodeBody[ErrorResponse](t, rec).Error, "game is over")
}

func TestMateHint(t *testing.T) {
	h := newTestHandler()
	side := -1
	st := decodeBody[StateResponse](t, post(t, h, "/api/new_game", NewGameRequest{
		EngineSide: &side,
		Position:   "i8/9/p1B6/9/9/9/9/9/1D5A1",
	}))

	rec := post(t, h, "/api/mate", MateRequest{GameID: st.GameID, MaxDepth: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	mate := decodeBody[MateResponse](t, rec)
	require.True(t, mate.Found)
	require.Equal(t, 1, mate.Depth)
	require.Equal(t, 0, mate.Side)
	require.NotNil(t, mate.Move)
	require.Equal(t, MoveDTO{Type: "move", From: sqIndex(2, 2), To: sqIndex(1, 1), Side: 0}, *mate.Move)

	rec = post(t, h, "/api/mate", MateRequest{GameID: "missing"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}
