package shogi

type Result int8

const (
	Ongoing   Result = iota
	Checkmate        // 被将且无着
	NoMoves          // 未被将但无着，同样判负
)

func (r Result) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case NoMoves:
		return "no_moves"
	}
	return "ongoing"
}

// GameState 一局棋的权威状态。只有 Apply 会推进它。
type GameState struct {
	Pos        *Position
	SideToMove Side

	result   Result
	winner   Side
	lastMove Move
	ply      int
}

func NewGame(setup Setup) *GameState {
	return NewGameFromPosition(NewInitialPosition(setup), First)
}

// NewGameFromPosition 从任意局面开局（测试、残局）。
// 不在这里判终局：终局只在走子之后判定。
func NewGameFromPosition(pos *Position, toMove Side) *GameState {
	pos.EnsureHash()
	return &GameState{
		Pos:        pos,
		SideToMove: toMove,
		winner:     NoSide,
		lastMove:   Move{From: NoSquare, To: NoSquare, Side: NoSide},
	}
}

func (g *GameState) IsOver() bool   { return g.result != Ongoing }
func (g *GameState) Result() Result { return g.result }
func (g *GameState) Ply() int       { return g.ply }

func (g *GameState) Winner() (Side, bool) {
	if !g.IsOver() {
		return NoSide, false
	}
	return g.winner, true
}

// LastMove 上一着，开局时 To = NoSquare
func (g *GameState) LastMove() Move { return g.lastMove }

func (g *GameState) InCheck(side Side) bool { return g.Pos.InCheck(side) }

func (g *GameState) LegalMoves(from Square) []Square {
	if g.IsOver() {
		return nil
	}
	return g.Pos.LegalMoves(from)
}

// LegalDrops 手里没有这个子时返回空
func (g *GameState) LegalDrops(k PieceKind, side Side) []Square {
	if g.IsOver() || g.Pos.Hand(side).Count(k) == 0 {
		return nil
	}
	return g.Pos.LegalDrops(k, side)
}

func (g *GameState) AllLegalMoves(side Side, includeDrops bool) []Move {
	if g.IsOver() {
		return nil
	}
	return g.Pos.AllLegalMoves(side, includeDrops)
}

// Apply 走一着并推进状态机，返回被吃的子（没有则 KindNone）。
// 非法着返回 *IllegalMoveError，已终局返回 *GameOverError，两者都不改动局面。
func (g *GameState) Apply(m Move) (PieceKind, error) {
	if g.IsOver() {
		return KindNone, &GameOverError{Winner: g.winner}
	}
	side := g.SideToMove
	if m.IsDrop() && m.Side == NoSide {
		m.Side = side
	}
	if !g.Pos.IsLegal(m, side) {
		return KindNone, &IllegalMoveError{Move: m, Side: side}
	}

	if !m.IsDrop() {
		m.Side = side
	}
	u := g.Pos.Execute(m)
	g.lastMove = m
	g.ply++

	opp := side.Opponent()
	if !g.Pos.HasLegalMove(opp) {
		g.winner = side
		if g.Pos.InCheck(opp) {
			g.result = Checkmate
		} else {
			g.result = NoMoves
		}
	} else {
		g.SideToMove = opp
	}

	return u.Captured().Kind(), nil
}
