package httpserver

import (
	"fmt"

	"sangoku/internal/server/game"
	"sangoku/internal/shogi"
)

// 前端用的招法结构。格子编号 = row*9+col，打入时 from = -1。
type MoveDTO struct {
	Type  string `json:"type"` // "move" / "drop"
	From  int    `json:"from"`
	To    int    `json:"to"`
	Piece string `json:"piece,omitempty"` // 打入的棋子 id，如 "fu"
	Side  int    `json:"side"`
}

func dtoToMove(m MoveDTO) (shogi.Move, error) {
	switch m.Type {
	case "", "move":
		return shogi.NewBoardMove(shogi.Square(m.From), shogi.Square(m.To)), nil
	case "drop":
		k, ok := shogi.ParseKind(m.Piece)
		if !ok {
			return shogi.Move{}, fmt.Errorf("unknown piece %q", m.Piece)
		}
		return shogi.NewDrop(k, shogi.Square(m.To), shogi.NoSide), nil
	default:
		return shogi.Move{}, fmt.Errorf("unknown move type %q", m.Type)
	}
}

func moveToDTO(m shogi.Move) MoveDTO {
	if m.IsDrop() {
		return MoveDTO{Type: "drop", From: -1, To: int(m.To), Piece: m.Piece.String(), Side: sideToInt(m.Side)}
	}
	return MoveDTO{Type: "move", From: int(m.From), To: int(m.To), Side: sideToInt(m.Side)}
}

func movesToDTO(ms []shogi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func sideToInt(s shogi.Side) int {
	switch s {
	case shogi.First:
		return 0
	case shogi.Second:
		return 1
	default:
		return -1
	}
}

func intToSide(v int) shogi.Side {
	switch v {
	case 0:
		return shogi.First
	case 1:
		return shogi.Second
	default:
		return shogi.NoSide
	}
}

// NewGame 请求。engine_side 不给时引擎执魏，-1 表示两人对下。
type NewGameRequest struct {
	Setup      string `json:"setup"`
	EngineSide *int   `json:"engine_side"`
	Position   string `json:"position"` // 可选：从棋谱图开局
	ToMove     int    `json:"to_move"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// Legal 请求：piece 不为空时查打入，否则查 from 格的棋子；两者至少给一个
type LegalRequest struct {
	GameID string `json:"game_id"`
	From   *int   `json:"from"`
	Piece  string `json:"piece"`
}

// Mate 请求：给轮到的一方找连将杀（提示用，不落子）
type MateRequest struct {
	GameID   string `json:"game_id"`
	MaxDepth int    `json:"max_depth"`
}

type MateResponse struct {
	Side  int      `json:"side"`
	Found bool     `json:"found"`
	Move  *MoveDTO `json:"move,omitempty"`
	Depth int      `json:"depth"`
	Nodes int      `json:"nodes"`
}

type LegalResponse struct {
	Targets []int `json:"targets"`
}

// AiMove 请求：让引擎替轮到的一方走一步
type AiMoveRequest struct {
	GameID string `json:"game_id"`
}

// 对局状态，new_game / state / play 都返回它
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"` // 0=蜀(先手), 1=魏(后手)
	EngineSide int       `json:"engine_side"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"` // "ongoing" / "checkmate" / "no_moves"
	Winner     int       `json:"winner"` // 未结束为 -1
	InCheck    bool      `json:"in_check"`
	LastMove   *MoveDTO  `json:"last_move,omitempty"`
	Captured   string    `json:"captured,omitempty"`
	Ply        int       `json:"ply"`
}

type AiMoveResponse struct {
	StateResponse
	BestMove MoveDTO `json:"best_move"`
	Score    int     `json:"score"`
	Ties     int     `json:"ties"`
	Nodes    int64   `json:"nodes"`
	TimeMs   int64   `json:"time_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func viewToState(v game.View) StateResponse {
	resp := StateResponse{
		GameID:     v.ID,
		Position:   v.Position,
		ToMove:     sideToInt(v.ToMove),
		EngineSide: sideToInt(v.EngineSide),
		LegalMoves: movesToDTO(v.Legal),
		Status:     v.Result.String(),
		Winner:     sideToInt(v.Winner),
		InCheck:    v.InCheck,
		Ply:        v.Ply,
	}
	if v.LastMove != nil {
		last := moveToDTO(*v.LastMove)
		resp.LastMove = &last
	}
	if v.Captured.Valid() {
		resp.Captured = v.Captured.String()
	}
	return resp
}
