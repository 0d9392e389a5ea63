package engine

import (
	"sort"

	"sangoku/internal/shogi"
)

const (
	mateDepthCap         = 15
	mateDefaultDepth     = 7 // 攻方最多走 4 手
	mateNodeBudgetBase   = 32000
	mateNodeBudgetPerPly = 8000
)

const (
	mateModeAttack uint64 = 0xA5A5A5A5A5A5A5A5
	mateModeDefend uint64 = 0x5A5A5A5A5A5A5A5A
)

type mateTTEntry struct {
	Depth  int
	Result bool
	Move   shogi.Move // 记录最佳走法用于排序
}

type mateContext struct {
	attacker   shogi.Side
	tt         map[uint64]mateTTEntry
	inPath     map[uint64]bool
	nodes      int
	nodeBudget int
}

// MateResult 连将杀搜索结果
type MateResult struct {
	Found bool
	Move  shogi.Move // 第一手将军
	Depth int        // 找到杀时的层数（双方合计）
	Nodes int
}

// MateSearch 找 side 每一手都将军的杀棋（含打入将军），maxDepth 按双方合计的层数算。
// 节点数有上限，超出时按找不到处理。pos 返回时不变。
func (e *Engine) MateSearch(pos *shogi.Position, side shogi.Side, maxDepth int) MateResult {
	if maxDepth <= 0 {
		maxDepth = mateDefaultDepth
	}
	if maxDepth > mateDepthCap {
		maxDepth = mateDepthCap
	}
	pos.EnsureHash()

	ctx := &mateContext{
		attacker:   side,
		tt:         make(map[uint64]mateTTEntry, 1<<12),
		inPath:     make(map[uint64]bool, 1<<8),
		nodeBudget: mateNodeBudgetBase + maxDepth*mateNodeBudgetPerPly,
	}

	// 迭代加深，先找最短的杀
	for d := 1; d <= maxDepth; d += 2 {
		if mv, ok := ctx.root(pos, d); ok {
			e.log.Debug().
				Str("side", side.String()).
				Str("move", mv.String()).
				Int("depth", d).
				Int("nodes", ctx.nodes).
				Msg("mate found")
			return MateResult{Found: true, Move: mv, Depth: d, Nodes: ctx.nodes}
		}
		if ctx.nodes > ctx.nodeBudget {
			break
		}
	}
	return MateResult{Nodes: ctx.nodes}
}

func (ctx *mateContext) root(pos *shogi.Position, depth int) (shogi.Move, bool) {
	for _, mv := range ctx.checks(pos) {
		mated := false
		pos.Try(mv, func() {
			mated = !ctx.defenderCanEscape(pos, depth-1)
		})
		if mated {
			return mv, true
		}
	}
	return shogi.Move{}, false
}

// checks 攻方所有将军的着，按启发式排好序
func (ctx *mateContext) checks(pos *shogi.Position) []shogi.Move {
	var ttMove shogi.Move
	hasTT := false
	if entry, ok := ctx.tt[pos.Hash^mateModeAttack]; ok && entry.Result {
		ttMove, hasTT = entry.Move, true
	}

	defender := ctx.attacker.Opponent()
	type scored struct {
		mv    shogi.Move
		score int
	}
	var out []scored
	for _, mv := range pos.AllLegalMoves(ctx.attacker, true) {
		check := false
		pos.Try(mv, func() {
			check = pos.InCheck(defender)
		})
		if !check {
			continue
		}
		out = append(out, scored{mv, ctx.scoreCheck(pos, mv, hasTT && mv == ttMove)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })

	moves := make([]shogi.Move, len(out))
	for i := range out {
		moves[i] = out[i].mv
	}
	return moves
}

// 置换表着法最先；吃子将军其次；打入将军比走子将军优先（手里的子本来就是为了这个）
func (ctx *mateContext) scoreCheck(pos *shogi.Position, mv shogi.Move, fromTT bool) int {
	if fromTT {
		return 1_000_000
	}
	if mv.IsDrop() {
		return 50
	}
	if target := pos.At(mv.To); target != 0 {
		return 100 + target.Kind().Value()/10
	}
	return 0
}

func (ctx *mateContext) attackerCanForce(pos *shogi.Position, depth int) bool {
	if depth <= 0 {
		return false
	}
	if ctx.reachNodeBudget() {
		return false
	}
	key := pos.Hash ^ mateModeAttack
	if ctx.inPath[key] {
		return false
	}
	if entry, ok := ctx.tt[key]; ok && entry.Depth >= depth {
		return entry.Result
	}
	ctx.inPath[key] = true
	defer delete(ctx.inPath, key)

	result := false
	var bestMove shogi.Move
	for _, mv := range ctx.checks(pos) {
		pos.Try(mv, func() {
			result = !ctx.defenderCanEscape(pos, depth-1)
		})
		if result {
			bestMove = mv
			break
		}
	}
	ctx.tt[key] = mateTTEntry{Depth: depth, Result: result, Move: bestMove}
	return result
}

// 只在攻方刚将军之后调用
func (ctx *mateContext) defenderCanEscape(pos *shogi.Position, depth int) bool {
	moves := pos.AllLegalMoves(ctx.attacker.Opponent(), true)
	if len(moves) == 0 {
		return false
	}
	if depth <= 0 {
		return true
	}
	if ctx.reachNodeBudget() {
		return true
	}
	key := pos.Hash ^ mateModeDefend
	if ctx.inPath[key] {
		return true
	}
	if entry, ok := ctx.tt[key]; ok && entry.Depth >= depth {
		return entry.Result
	}
	ctx.inPath[key] = true
	defer delete(ctx.inPath, key)

	OrderMoves(pos, moves)
	result := false
	for _, mv := range moves {
		pos.Try(mv, func() {
			// 防守方只要找到一个逃得掉的走法就行
			result = !ctx.attackerCanForce(pos, depth-1)
		})
		if result {
			break
		}
	}
	ctx.tt[key] = mateTTEntry{Depth: depth, Result: result}
	return result
}

func (ctx *mateContext) reachNodeBudget() bool {
	ctx.nodes++
	return ctx.nodes > ctx.nodeBudget
}
