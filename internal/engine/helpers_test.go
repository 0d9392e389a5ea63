package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"sangoku/internal/shogi"
)

func sq(row, col int) shogi.Square { return shogi.SquareAt(row, col) }

func mustDecode(t *testing.T, diagram string) *shogi.Position {
	t.Helper()
	pos, err := shogi.DecodePosition(diagram)
	require.NoError(t, err, "decode %q", diagram)
	return pos
}

// randomGame 从开局随机走 plies 步，优先吃子，让双方手里有子
func randomGame(t *testing.T, setup shogi.Setup, seed uint64, plies int) *shogi.GameState {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := shogi.NewGame(setup)
	for ply := 0; ply < plies && !g.IsOver(); ply++ {
		moves := g.AllLegalMoves(g.SideToMove, true)
		var captures []shogi.Move
		for _, m := range moves {
			if !m.IsDrop() && g.Pos.At(m.To) != 0 {
				captures = append(captures, m)
			}
		}
		mv := moves[rng.Intn(len(moves))]
		if len(captures) > 0 {
			mv = captures[rng.Intn(len(captures))]
		}
		_, err := g.Apply(mv)
		require.NoError(t, err)
	}
	return g
}

// fullMinimax 不剪枝的极大极小，剩余深度 >= 2 才生成打入
func fullMinimax(pos *shogi.Position, side shogi.Side, depth int, maximizing bool) int {
	if depth <= 0 {
		return Evaluate(pos, side)
	}
	mover := side
	if !maximizing {
		mover = side.Opponent()
	}
	moves := pos.AllLegalMoves(mover, depth >= 2)
	if len(moves) == 0 {
		if !pos.InCheck(mover) {
			return 0
		}
		if maximizing {
			return -mateScore + depth
		}
		return mateScore - depth
	}
	best := scoreInf
	if maximizing {
		best = -scoreInf
	}
	for _, mv := range moves {
		var score int
		pos.Try(mv, func() {
			score = fullMinimax(pos, side, depth-1, !maximizing)
		})
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}
