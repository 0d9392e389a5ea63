package shogi

// IsAttacked 判断 sq 是否被 bySide 攻击：对方任一棋子的伪合法目标里有 sq 即算。
func (p *Position) IsAttacked(sq Square, bySide Side) bool {
	for s := 0; s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		for _, to := range p.Destinations(pc.Kind(), Square(s), bySide) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// InCheck 判断 side 的王是否被将。
// 找不到王时按“被将”处理。
func (p *Position) InCheck(side Side) bool {
	kingSq, ok := p.KingSquare(side)
	if !ok {
		return true
	}
	return p.IsAttacked(kingSq, side.Opponent())
}
