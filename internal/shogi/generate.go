package shogi

// 偏移量都以“前方”为正：dr 乘上 side.Forward() 才是实际行差
type offset struct{ dr, dc int }

var (
	crossSteps = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	kingSteps  = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightJump = []offset{{2, -1}, {2, 1}}
	goldSteps  = []offset{{1, 0}, {1, -1}, {1, 1}, {0, -1}, {0, 1}, {-1, 0}}
	silverStep = []offset{{1, 0}, {1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	pawnStep   = []offset{{1, 0}}

	rookDirs   = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	lanceDirs  = []offset{{1, 0}}
)

// destSet 收集目标格并去重，保持首次加入的顺序
type destSet struct {
	seen [NumSquares]bool
	out  []Square
}

func (d *destSet) add(sq Square) {
	if d.seen[sq] {
		return
	}
	d.seen[sq] = true
	d.out = append(d.out, sq)
}

// Destinations 伪合法目标格：只看棋盘占位，不管自己的王是否被将。
func (p *Position) Destinations(k PieceKind, from Square, side Side) []Square {
	return p.destinations(k.Def().Moves, from, side)
}

func (p *Position) destinations(prims []Primitive, from Square, side Side) []Square {
	d := destSet{out: make([]Square, 0, 16)}
	for _, prim := range prims {
		switch prim {
		case StepCross:
			p.genSteps(from, side, crossSteps, &d)
		case StepKing:
			p.genSteps(from, side, kingSteps, &d)
		case SlideRook:
			p.genSlides(from, side, rookDirs, &d)
		case SlideBishop:
			p.genSlides(from, side, bishopDirs, &d)
		case JumpKnight:
			p.genSteps(from, side, knightJump, &d)
		case SlideLance:
			p.genSlides(from, side, lanceDirs, &d)
		case StepGold:
			p.genSteps(from, side, goldSteps, &d)
		case StepSilver:
			p.genSteps(from, side, silverStep, &d)
		case StepPawn:
			p.genSteps(from, side, pawnStep, &d)
		}
	}
	return d.out
}

// 一步类：目标格不是己方子就可以走（对方子即吃）
func (p *Position) genSteps(from Square, side Side, offs []offset, d *destSet) {
	row, col := from.Row(), from.Col()
	f := side.Forward()
	for _, o := range offs {
		r, c := row+o.dr*f, col+o.dc
		if !onBoard(r, c) {
			continue
		}
		to := SquareAt(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			d.add(to)
		}
	}
}

// 滑行类：遇己方子停（不含），遇对方子吃后停，否则走到边
func (p *Position) genSlides(from Square, side Side, dirs []offset, d *destSet) {
	row, col := from.Row(), from.Col()
	f := side.Forward()
	for _, o := range dirs {
		dr, dc := o.dr*f, o.dc
		r, c := row+dr, col+dc
		for onBoard(r, c) {
			to := SquareAt(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				d.add(to)
			} else {
				if pc.Side() != side {
					d.add(to)
				}
				break
			}
			r += dr
			c += dc
		}
	}
}

// PseudoMovesForSide 某一方全部棋盘走子（伪合法，不含打入）
func (p *Position) PseudoMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		from := Square(sq)
		for _, to := range p.Destinations(pc.Kind(), from, side) {
			moves = append(moves, NewBoardMove(from, to))
		}
	}
	return moves
}
