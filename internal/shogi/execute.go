package shogi

import "fmt"

// Undo 一次 Execute 的撤销记录，只能 Revert 一次，且要按 LIFO 顺序。
type Undo struct {
	move     Move
	moved    Piece
	captured Piece // to 格原来的子（走子时）
	handSide Side  // 持驹变化的一方
	handIdx  int   // 打入：移除的下标；吃子：追加的下标；无变化为 -1
	prevHash uint64
	depth    int
	reverted bool
}

func (u *Undo) Move() Move      { return u.move }
func (u *Undo) Captured() Piece { return u.captured }

// Execute 执行走子/打入，返回撤销记录。这里默认传进来的就是合法着（由上层检查），
// 结构上不成立的着（起点无子、打入格有子、手里没有）直接 panic。
func (p *Position) Execute(m Move) *Undo {
	initZobrist()
	if !m.To.Valid() {
		panic(fmt.Sprintf("shogi: execute %v: destination off board", m))
	}
	u := &Undo{move: m, handIdx: -1, prevHash: p.EnsureHash()}
	h := u.prevHash

	if m.IsDrop() {
		if p.Board.Squares[m.To] != 0 {
			panic(fmt.Sprintf("shogi: drop %v onto occupied square", m))
		}
		hand := p.Hand(m.Side)
		idx := hand.index(m.Piece)
		if idx < 0 {
			panic(fmt.Sprintf("shogi: drop %v: piece not in hand", m))
		}
		h ^= handHashKey(m.Side, m.Piece, hand.Count(m.Piece))
		p.Hands[m.Side] = append(hand[:idx], hand[idx+1:]...)

		pc := MakePiece(m.Side, m.Piece)
		p.Board.Squares[m.To] = pc
		h ^= pieceHashKey(pc, m.To)

		u.moved = pc
		u.handSide = m.Side
		u.handIdx = idx
	} else {
		if !m.From.Valid() || p.Board.Squares[m.From] == 0 {
			panic(fmt.Sprintf("shogi: execute %v: no piece on origin", m))
		}
		pc := p.Board.Squares[m.From]
		side := pc.Side()
		dst := p.Board.Squares[m.To]

		h ^= pieceHashKey(pc, m.From)
		if dst != 0 {
			// 吃子进手，王也不特殊处理（正常规则下走不到这一步）
			h ^= pieceHashKey(dst, m.To)
			k := dst.Kind()
			p.Hands[side] = append(p.Hands[side], k)
			h ^= handHashKey(side, k, p.Hands[side].Count(k))
			u.handSide = side
			u.handIdx = len(p.Hands[side]) - 1
		}
		p.Board.Squares[m.To] = pc
		p.Board.Squares[m.From] = 0
		h ^= pieceHashKey(pc, m.To)

		u.moved = pc
		u.captured = dst
	}

	p.Hash = h
	p.depth++
	u.depth = p.depth
	return u
}

// Revert 精确撤销 Execute。重复撤销或不按顺序撤销会 panic：
// 那时棋盘和持驹已经无法保证一致。
func (p *Position) Revert(u *Undo) {
	if u == nil {
		panic("shogi: revert nil undo record")
	}
	if u.reverted {
		panic(fmt.Sprintf("shogi: revert %v twice", u.move))
	}
	if u.depth != p.depth {
		panic(fmt.Sprintf("shogi: revert %v out of order (record depth %d, position depth %d)", u.move, u.depth, p.depth))
	}

	m := u.move
	if m.IsDrop() {
		p.Board.Squares[m.To] = 0
		hand := p.Hands[m.Side]
		hand = append(hand, KindNone)
		copy(hand[u.handIdx+1:], hand[u.handIdx:])
		hand[u.handIdx] = m.Piece
		p.Hands[m.Side] = hand
	} else {
		p.Board.Squares[m.From] = u.moved
		p.Board.Squares[m.To] = u.captured
		if u.handIdx >= 0 {
			hand := p.Hands[u.handSide]
			p.Hands[u.handSide] = append(hand[:u.handIdx], hand[u.handIdx+1:]...)
		}
	}

	p.Hash = u.prevHash
	p.depth--
	u.reverted = true
}

// Try 执行 m、调用 fn，再撤销；fn 提前返回或 panic 也会撤销。
func (p *Position) Try(m Move, fn func()) {
	u := p.Execute(m)
	defer p.Revert(u)
	fn()
}
