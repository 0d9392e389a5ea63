package shogi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureGoesToCapturerHand(t *testing.T) {
	pos := mustDecode(t, "8i/9/4f4/9/4D4/9/9/9/A8")
	before := pos.Clone()

	u := pos.Execute(NewBoardMove(sq(4, 4), sq(2, 4)))
	require.Equal(t, MakePiece(First, KindChouun), pos.At(sq(2, 4)))
	require.Equal(t, Piece(0), pos.At(sq(4, 4)))
	require.Equal(t, Hand{KindBachou}, pos.Hands[First])
	require.Empty(t, pos.Hands[Second])
	require.Equal(t, MakePiece(Second, KindBachou), u.Captured())
	require.Equal(t, pos.CalculateHash(), pos.Hash)

	pos.Revert(u)
	require.True(t, before.Equal(pos), "after revert:\n%v\nwant:\n%v", pos, before)
}

func TestDropRestoresHandOrder(t *testing.T) {
	pos := mustDecode(t, "8i/9/9/9/9/9/9/9/A8 PBP")
	before := pos.Clone()

	u := pos.Execute(NewDrop(KindFu, sq(4, 4), First))
	require.Equal(t, Hand{KindKannu, KindFu}, pos.Hands[First])
	require.Equal(t, MakePiece(First, KindFu), pos.At(sq(4, 4)))
	require.Equal(t, pos.CalculateHash(), pos.Hash)

	pos.Revert(u)
	require.Equal(t, Hand{KindFu, KindKannu, KindFu}, pos.Hands[First])
	require.True(t, before.Equal(pos))
}

func TestExecuteRevertRoundTrip(t *testing.T) {
	for _, setup := range []Setup{SetupMirrored, SetupThreeKingdoms} {
		for seed := uint64(1); seed <= 4; seed++ {
			randomWalk(t, setup, seed, 70, func(pos *Position, side Side, moves []Move) {
				before := pos.Clone()
				for _, m := range moves {
					u := pos.Execute(m)
					require.Equal(t, pos.CalculateHash(), pos.Hash, "incremental hash after %v", m)
					pos.Revert(u)
					require.True(t, before.Equal(pos), "round trip of %v\n got:\n%v\nwant:\n%v", m, pos, before)
				}
			})
		}
	}
}

func TestNestedExecuteRevertIsLIFO(t *testing.T) {
	pos := NewInitialPosition(SetupMirrored)
	before := pos.Clone()

	u1 := pos.Execute(NewBoardMove(sq(6, 4), sq(5, 4)))
	u2 := pos.Execute(NewBoardMove(sq(2, 4), sq(3, 4)))

	require.Panics(t, func() { pos.Revert(u1) }, "reverting the outer record first")
	pos.Revert(u2)
	require.Panics(t, func() { pos.Revert(u2) }, "reverting twice")
	pos.Revert(u1)
	require.True(t, before.Equal(pos))
	require.Panics(t, func() { pos.Revert(nil) })
}

func TestTryRevertsOnPanic(t *testing.T) {
	pos := NewInitialPosition(SetupMirrored)
	before := pos.Clone()
	require.Panics(t, func() {
		pos.Try(NewBoardMove(sq(6, 4), sq(5, 4)), func() {
			require.Equal(t, MakePiece(First, KindFu), pos.At(sq(5, 4)))
			panic("boom")
		})
	})
	require.True(t, before.Equal(pos))

	// 之后还能正常执行、撤销
	u := pos.Execute(NewBoardMove(sq(6, 3), sq(5, 3)))
	pos.Revert(u)
	require.True(t, before.Equal(pos))
}

func TestExecuteRejectsMalformedMoves(t *testing.T) {
	pos := NewInitialPosition(SetupMirrored)
	require.Panics(t, func() { pos.Execute(NewBoardMove(sq(4, 4), sq(3, 4))) }, "empty origin")
	require.Panics(t, func() { pos.Execute(NewDrop(KindFu, sq(4, 4), First)) }, "empty hand")
	require.Panics(t, func() { pos.Execute(NewDrop(KindFu, sq(6, 4), First)) }, "occupied square")
}
