package engine

import (
	"sangoku/internal/shogi"
)

const (
	royalLostScore = 99999
	advanceBonus   = 3   // 每前进一行
	checkBonus     = 150 // 将军对方
	handPercent    = 80  // 持驹按棋盘价值的 80% 计
)

// Evaluate 从 me 的视角评估：正数 me 好，负数对方好。
//   - 有一方王不在盘上：±99999（先看对方的王）
//   - 非王棋子价值 + 前进行数 * 3
//   - 持驹价值 * 80%
//   - 对方被将 +150，自己被将 -150
func Evaluate(pos *shogi.Position, me shogi.Side) int {
	opp := me.Opponent()
	myKing, oppKing := false, false
	score := 0

	for sq, pc := range pos.Board.Squares {
		if pc == 0 {
			continue
		}
		side := pc.Side()
		k := pc.Kind()
		if k.Royal() {
			if side == me {
				myKing = true
			} else {
				oppKing = true
			}
			continue
		}
		val := k.Value() + advanceBonus*shogi.Advance(side, shogi.Square(sq).Row())
		if side == me {
			score += val
		} else {
			score -= val
		}
	}

	if !oppKing {
		return royalLostScore
	}
	if !myKing {
		return -royalLostScore
	}

	for _, k := range pos.Hand(me) {
		score += k.Value() * handPercent / 100
	}
	for _, k := range pos.Hand(opp) {
		score -= k.Value() * handPercent / 100
	}

	if pos.InCheck(opp) {
		score += checkBonus
	}
	if pos.InCheck(me) {
		score -= checkBonus
	}
	return score
}

