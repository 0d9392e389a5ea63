package shogi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustDecode(t *testing.T, diagram string) *Position {
	t.Helper()
	pos, err := DecodePosition(diagram)
	require.NoError(t, err, "decode %q", diagram)
	return pos
}

// randomWalk 从开局随机走 plies 步，每一步调用 visit（走之前）。
// 有吃子着时一半概率优先吃子，好让手里尽快有子可打。
func randomWalk(t *testing.T, setup Setup, seed uint64, plies int, visit func(pos *Position, side Side, moves []Move)) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := NewGame(setup)
	for ply := 0; ply < plies && !g.IsOver(); ply++ {
		side := g.SideToMove
		moves := g.AllLegalMoves(side, true)
		require.NotEmpty(t, moves, "ply %d: live game without moves", ply)
		visit(g.Pos, side, moves)

		var captures []Move
		for _, m := range moves {
			if !m.IsDrop() && g.Pos.At(m.To) != 0 {
				captures = append(captures, m)
			}
		}
		mv := moves[rng.Intn(len(moves))]
		if len(captures) > 0 && rng.Intn(2) == 0 {
			mv = captures[rng.Intn(len(captures))]
		}
		_, err := g.Apply(mv)
		require.NoError(t, err, "ply %d move %v", ply, mv)
	}
}
