package engine

import (
	"errors"
	"sort"
	"time"

	"sangoku/internal/shogi"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000
	// 无着可走且被将时的分值，按剩余深度修正，越快杀越好
	mateScore = 90000
)

var ErrNoLegalMoves = errors.New("engine: no legal moves")

// 搜索结果
type SearchResult struct {
	BestMove shogi.Move    // 选中的着法
	Score    int           // 从引擎一方看的分数
	Ties     int           // 同为最高分的着法数，BestMove 是其中随机的一个
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间

	Captured shogi.PieceKind // 只有 Play 会填：这步吃掉的子
}

// 每次搜索一个，节点计数不与其它搜索共享
type searcher struct {
	e     *Engine
	side  shogi.Side
	nodes int64
}

// OrderMoves 按被吃棋子的价值从大到小稳定排序，不吃子和打入算 0
func OrderMoves(pos *shogi.Position, moves []shogi.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return captureValue(pos, moves[i]) > captureValue(pos, moves[j])
	})
}

func captureValue(pos *shogi.Position, m shogi.Move) int {
	if m.IsDrop() {
		return 0
	}
	pc := pos.At(m.To)
	if pc == 0 {
		return 0
	}
	return pc.Kind().Value()
}

// Minimax 带 alpha-beta 的极大极小搜索，分数从 side 的视角计算。
// maximizing 时轮到 side 走，否则轮到对方走。
// 剩余深度不足 2 时不生成打入。
func (e *Engine) Minimax(pos *shogi.Position, side shogi.Side, depth, alpha, beta int, maximizing bool) int {
	s := &searcher{e: e, side: side}
	return s.minimax(pos, depth, alpha, beta, maximizing)
}

func (s *searcher) minimax(pos *shogi.Position, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if depth <= 0 {
		return Evaluate(pos, s.side)
	}

	mover := s.side
	if !maximizing {
		mover = s.side.Opponent()
	}
	moves := pos.AllLegalMoves(mover, depth >= dropDepth)
	if len(moves) == 0 {
		if !pos.InCheck(mover) {
			// 这里算和，和对局层“无着即负”不一致，保留原样
			return 0
		}
		if maximizing {
			return -mateScore + depth
		}
		return mateScore - depth
	}
	OrderMoves(pos, moves)

	if maximizing {
		best := -scoreInf
		for _, mv := range moves {
			var score int
			pos.Try(mv, func() {
				score = s.minimax(pos, depth-1, alpha, beta, false)
			})
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := scoreInf
	for _, mv := range moves {
		var score int
		pos.Try(mv, func() {
			score = s.minimax(pos, depth-1, alpha, beta, true)
		})
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// ChooseMove 给 side 选一步：根节点每个着法走一步后用 Minimax 搜 e.depth 层，
// 取最高分，同分的随机选一个。pos 在返回时与调用前一致。
func (e *Engine) ChooseMove(pos *shogi.Position, side shogi.Side) (SearchResult, error) {
	start := time.Now()
	moves := pos.AllLegalMoves(side, true)
	if len(moves) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}
	OrderMoves(pos, moves)

	s := &searcher{e: e, side: side}
	best := -scoreInf
	var ties []shogi.Move
	for _, mv := range moves {
		var score int
		pos.Try(mv, func() {
			score = s.minimax(pos, e.depth, -scoreInf, scoreInf, false)
		})
		switch {
		case score > best:
			best = score
			ties = append(ties[:0], mv)
		case score == best:
			ties = append(ties, mv)
		}
	}

	res := SearchResult{
		BestMove: ties[e.intn(len(ties))],
		Score:    best,
		Ties:     len(ties),
		Nodes:    s.nodes,
		TimeUsed: time.Since(start),
	}
	e.log.Debug().
		Str("side", side.String()).
		Str("move", res.BestMove.String()).
		Int("score", res.Score).
		Int("ties", res.Ties).
		Int64("nodes", res.Nodes).
		Dur("elapsed", res.TimeUsed).
		Msg("search done")
	return res, nil
}

// Play 给轮到走的一方搜一步并落到对局上
func (e *Engine) Play(g *shogi.GameState) (SearchResult, error) {
	if g.IsOver() {
		winner, _ := g.Winner()
		return SearchResult{}, &shogi.GameOverError{Winner: winner}
	}
	res, err := e.ChooseMove(g.Pos, g.SideToMove)
	if err != nil {
		return res, err
	}
	captured, err := g.Apply(res.BestMove)
	if err != nil {
		return res, err
	}
	res.Captured = captured
	return res, nil
}
