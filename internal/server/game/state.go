package game

import (
	"sync"
	"time"

	"sangoku/internal/shogi"
)

// Config 新对局的设置
type Config struct {
	Setup      shogi.Setup
	EngineSide shogi.Side // NoSide 表示两个人对下，引擎只在被请求时给提示

	// 从棋谱图开局（残局、测试用），为空时按 Setup 摆子
	Position string
	ToMove   shogi.Side
}

func DefaultConfig() Config {
	return Config{Setup: shogi.SetupMirrored, EngineSide: shogi.Second, ToMove: shogi.First}
}

// Session 一局棋。game 只在持有 mu 时访问。
type Session struct {
	ID        string
	Config    Config
	CreatedAt time.Time

	mu        sync.Mutex
	game      *shogi.GameState
	updatedAt time.Time
}

// View 某一时刻的对局快照，给上层只读使用
type View struct {
	ID         string
	Position   string
	ToMove     shogi.Side
	EngineSide shogi.Side
	Result     shogi.Result
	Winner     shogi.Side // 未结束时为 NoSide
	InCheck    bool       // 轮到走的一方是否被将
	LastMove   *shogi.Move
	Captured   shogi.PieceKind // 最近一着吃掉的子
	Ply        int
	Legal      []shogi.Move // 轮到走的一方的全部合法着（含打入）
	UpdatedAt  time.Time
}

func (s *Session) view(captured shogi.PieceKind) View {
	g := s.game
	// 终局后 ToMove 指无着可走的输家
	toMove := g.SideToMove
	if w, ok := g.Winner(); ok {
		toMove = w.Opponent()
	}
	v := View{
		ID:         s.ID,
		Position:   g.Pos.Encode(),
		ToMove:     toMove,
		EngineSide: s.Config.EngineSide,
		Result:     g.Result(),
		Winner:     shogi.NoSide,
		InCheck:    g.InCheck(toMove),
		Captured:   captured,
		Ply:        g.Ply(),
		Legal:      g.AllLegalMoves(g.SideToMove, true),
		UpdatedAt:  s.updatedAt,
	}
	if w, ok := g.Winner(); ok {
		v.Winner = w
	}
	if g.Ply() > 0 {
		last := g.LastMove()
		v.LastMove = &last
	}
	return v
}
