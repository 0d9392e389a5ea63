package shogi

import "sync"

const zobristHandSlots = 16 // 同种持驹最多计到 15 枚

var (
	zobristOnce sync.Once

	zobristPieces [2][numKinds][NumSquares]uint64
	zobristHand   [2][numKinds][zobristHandSlots]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < int(numKinds); k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
				for n := 1; n < zobristHandSlots; n++ {
					zobristHand[side][k][n] = next()
				}
			}
		}
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == 0 || !sq.Valid() {
		return 0
	}
	side := pc.Side()
	k := pc.Kind()
	if (side != First && side != Second) || !k.Valid() {
		return 0
	}
	return zobristPieces[side][k][sq]
}

// handHashKey 第 n 枚（从 1 数）同种持驹的键
func handHashKey(side Side, k PieceKind, n int) uint64 {
	if (side != First && side != Second) || !k.Valid() || n <= 0 || n >= zobristHandSlots {
		return 0
	}
	return zobristHand[side][k][n]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希（棋盘 + 持驹枚数）。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		h ^= pieceHashKey(p.Board.Squares[sq], Square(sq))
	}
	for _, side := range []Side{First, Second} {
		var counts [numKinds]int
		for _, k := range p.Hands[side] {
			if !k.Valid() {
				continue
			}
			counts[k]++
			h ^= handHashKey(side, k, counts[k])
		}
	}
	return h
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
