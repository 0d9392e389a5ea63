package shogi

import "fmt"

type Side int8

const (
	NoSide Side = -1
	First  Side = 0 // 蜀，先手，在下方
	Second Side = 1 // 魏，后手，在上方
)

func (s Side) Opponent() Side {
	switch s {
	case First:
		return Second
	case Second:
		return First
	}
	return NoSide
}

// Forward 前进方向：先手向上(-1)，后手向下(+1)
func (s Side) Forward() int {
	switch s {
	case First:
		return -1
	case Second:
		return +1
	}
	return 0
}

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "none"
}

type Piece int8 // 0=空；>0 先手；<0 后手；abs=PieceKind

func MakePiece(side Side, k PieceKind) Piece {
	if k == KindNone || side == NoSide {
		return 0
	}
	if side == First {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return First
	}
	return Second
}

// Square = row*Cols + col
type Square int

const NoSquare Square = -1

func SquareAt(row, col int) Square { return Square(row*Cols + col) }

func (s Square) Row() int { return int(s) / Cols }
func (s Square) Col() int { return int(s) % Cols }

func (s Square) Valid() bool { return s >= 0 && int(s) < NumSquares }

func (s Square) String() string {
	if !s.Valid() {
		return "--"
	}
	return fmt.Sprintf("%d%d", s.Row(), s.Col())
}

type Board struct {
	Squares [NumSquares]Piece
}

// Hand 持驹：按获得顺序排列，允许重复
type Hand []PieceKind

func (h Hand) Count(k PieceKind) int {
	n := 0
	for _, x := range h {
		if x == k {
			n++
		}
	}
	return n
}

func (h Hand) index(k PieceKind) int {
	for i, x := range h {
		if x == k {
			return i
		}
	}
	return -1
}

// Kinds 手里出现过的棋子种类，按首次出现顺序去重
func (h Hand) Kinds() []PieceKind {
	var seen [numKinds]bool
	out := make([]PieceKind, 0, len(h))
	for _, k := range h {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

type MoveType uint8

const (
	BoardMove MoveType = iota
	DropMove
)

// Move 走子或打入。打入时 From = NoSquare，Piece/Side 指明打入的子。
type Move struct {
	Type  MoveType
	From  Square
	To    Square
	Piece PieceKind
	Side  Side
}

func NewBoardMove(from, to Square) Move {
	return Move{Type: BoardMove, From: from, To: to, Side: NoSide}
}

func NewDrop(k PieceKind, to Square, side Side) Move {
	return Move{Type: DropMove, From: NoSquare, To: to, Piece: k, Side: side}
}

func (m Move) IsDrop() bool { return m.Type == DropMove }

func (m Move) String() string {
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", m.Piece, m.To)
	}
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

// Position = 棋盘 + 双方持驹。轮到谁走由 GameState 管。
type Position struct {
	Board Board
	Hands [2]Hand
	Hash  uint64

	// 尚未撤销的 Execute 层数，Revert 按 LIFO 校验
	depth int
}

func (p *Position) At(sq Square) Piece { return p.Board.Squares[sq] }

func (p *Position) Hand(side Side) Hand {
	if side != First && side != Second {
		return nil
	}
	return p.Hands[side]
}

// Clone 深拷贝（持驹切片也复制）。未撤销的 Execute 不会带过去。
func (p *Position) Clone() *Position {
	np := &Position{Board: p.Board, Hash: p.Hash}
	for s := range p.Hands {
		if len(p.Hands[s]) > 0 {
			np.Hands[s] = append(Hand(nil), p.Hands[s]...)
		}
	}
	return np
}

// Equal 比较棋盘、持驹（含顺序）和哈希
func (p *Position) Equal(o *Position) bool {
	if p.Board != o.Board || p.Hash != o.Hash {
		return false
	}
	for s := range p.Hands {
		if len(p.Hands[s]) != len(o.Hands[s]) {
			return false
		}
		for i := range p.Hands[s] {
			if p.Hands[s][i] != o.Hands[s][i] {
				return false
			}
		}
	}
	return true
}
