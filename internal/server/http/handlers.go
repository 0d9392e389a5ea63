package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"sangoku/internal/engine"
	"sangoku/internal/server/game"
	"sangoku/internal/shogi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/legal":
		h.handleLegal(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/mate":
		h.handleMate(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decode(w, r, &req) {
		return
	}

	cfg := game.DefaultConfig()
	if req.Setup != "" {
		cfg.Setup = shogi.Setup(req.Setup)
	}
	if req.EngineSide != nil {
		cfg.EngineSide = intToSide(*req.EngineSide)
	}
	if req.Position != "" {
		cfg.Position = req.Position
		cfg.ToMove = intToSide(req.ToMove)
	}

	v, err := h.games.NewGame(cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, viewToState(v))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decode(w, r, &req) {
		return
	}
	v, err := h.games.State(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, viewToState(v))
}

func (h *Handler) handleLegal(w http.ResponseWriter, r *http.Request) {
	var req LegalRequest
	if !decode(w, r, &req) {
		return
	}
	kind := shogi.KindNone
	from := shogi.NoSquare
	switch {
	case req.Piece != "":
		k, ok := shogi.ParseKind(req.Piece)
		if !ok {
			http.Error(w, "unknown piece", http.StatusBadRequest)
			return
		}
		kind = k
	case req.From != nil:
		from = shogi.Square(*req.From)
	default:
		http.Error(w, "from or piece required", http.StatusBadRequest)
		return
	}

	sqs, err := h.games.Targets(req.GameID, from, kind)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := LegalResponse{Targets: make([]int, len(sqs))}
	for i, sq := range sqs {
		resp.Targets[i] = int(sq)
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	mv, err := dtoToMove(req.Move)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.games.Play(req.GameID, mv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, viewToState(v))
}

// 思考并落子，返回落子后的局面
func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !decode(w, r, &req) {
		return
	}

	v, res, err := h.games.EngineMove(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, AiMoveResponse{
		StateResponse: viewToState(v),
		BestMove:      moveToDTO(res.BestMove),
		Score:         res.Score,
		Ties:          res.Ties,
		Nodes:         res.Nodes,
		TimeMs:        res.TimeUsed.Milliseconds(),
	})
}

func (h *Handler) handleMate(w http.ResponseWriter, r *http.Request) {
	var req MateRequest
	if !decode(w, r, &req) {
		return
	}
	side, res, err := h.games.FindMate(req.GameID, req.MaxDepth)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := MateResponse{Side: sideToInt(side), Found: res.Found, Depth: res.Depth, Nodes: res.Nodes}
	if res.Found {
		mv := moveToDTO(res.Move)
		mv.Side = resp.Side
		resp.Move = &mv
	}
	writeJSON(w, resp)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writeJSON")
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSONStatus(w, errorStatus(err), ErrorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, shogi.ErrGameOver),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, engine.ErrNoLegalMoves):
		return http.StatusConflict
	case errors.Is(err, shogi.ErrIllegalMove),
		errors.Is(err, shogi.ErrInvalidDiagram),
		errors.Is(err, shogi.ErrInvalidSetup):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
