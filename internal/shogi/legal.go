package shogi

// LegalMoves from 格棋子的合法目标格：逐个在原地模拟，走后自己被将的剔除。
// 模拟和还原严格成对，不能并发调用。
func (p *Position) LegalMoves(from Square) []Square {
	if !from.Valid() {
		return nil
	}
	pc := p.Board.Squares[from]
	if pc == 0 {
		return nil
	}
	side := pc.Side()
	cands := p.Destinations(pc.Kind(), from, side)
	out := make([]Square, 0, len(cands))
	for _, to := range cands {
		captured := p.Board.Squares[to]
		p.Board.Squares[to] = pc
		p.Board.Squares[from] = 0
		chk := p.InCheck(side)
		p.Board.Squares[from] = pc
		p.Board.Squares[to] = captured
		if !chk {
			out = append(out, to)
		}
	}
	return out
}

// LegalDrops side 把 k 打入的合法格子。不检查手里是否真有这个子。
//   - 步兵类：不能打在最后一行，同一列已有己方步兵类则不能打（二步）
//   - 打入后自己被将的格子剔除
//
// 打步诘（打步将死）不禁止。
func (p *Position) LegalDrops(k PieceKind, side Side) []Square {
	if !k.Valid() || (side != First && side != Second) {
		return nil
	}
	pawn := k.PawnLike()
	var nifu [Cols]bool
	if pawn {
		for sq, pc := range p.Board.Squares {
			if pc != 0 && pc.Side() == side && pc.Kind().PawnLike() {
				nifu[Square(sq).Col()] = true
			}
		}
	}

	pc := MakePiece(side, k)
	var out []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Board.Squares[sq] != 0 {
			continue
		}
		if pawn && (sq.Row() == lastRank(side) || nifu[sq.Col()]) {
			continue
		}
		p.Board.Squares[sq] = pc
		chk := p.InCheck(side)
		p.Board.Squares[sq] = 0
		if !chk {
			out = append(out, sq)
		}
	}
	return out
}

// AllLegalMoves side 的全部合法着：先棋盘走子（按格子顺序），
// includeDrops 时再加上手里每种棋子的合法打入。
func (p *Position) AllLegalMoves(side Side, includeDrops bool) []Move {
	var moves []Move
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		for _, to := range p.LegalMoves(sq) {
			moves = append(moves, NewBoardMove(sq, to))
		}
	}
	if includeDrops {
		for _, k := range p.Hand(side).Kinds() {
			for _, to := range p.LegalDrops(k, side) {
				moves = append(moves, NewDrop(k, to, side))
			}
		}
	}
	return moves
}

// HasLegalMove 比 AllLegalMoves 省事：找到一个就返回
func (p *Position) HasLegalMove(side Side) bool {
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc != 0 && pc.Side() == side && len(p.LegalMoves(sq)) > 0 {
			return true
		}
	}
	for _, k := range p.Hand(side).Kinds() {
		if len(p.LegalDrops(k, side)) > 0 {
			return true
		}
	}
	return false
}

// IsLegal m 是否是 side 当前的合法着
func (p *Position) IsLegal(m Move, side Side) bool {
	if !m.To.Valid() {
		return false
	}
	if m.IsDrop() {
		if m.Side != side || p.Hand(side).Count(m.Piece) == 0 {
			return false
		}
		return containsSquare(p.LegalDrops(m.Piece, side), m.To)
	}
	if !m.From.Valid() {
		return false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != side {
		return false
	}
	return containsSquare(p.LegalMoves(m.From), m.To)
}

func containsSquare(sqs []Square, sq Square) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}
