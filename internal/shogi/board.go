package shogi

import (
	"fmt"
	"strings"
)

const (
	Rows       = 9
	Cols       = 9
	NumSquares = Rows * Cols
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// lastRank 对方底线：步兵不能打在这一行
func lastRank(side Side) int {
	if side == First {
		return 0
	}
	return Rows - 1
}

// Advance 从己方底线算起前进了几行
func Advance(side Side, row int) int {
	if side == First {
		return Rows - 1 - row
	}
	return row
}

type Setup string

const (
	SetupMirrored      Setup = "mirrored"
	SetupThreeKingdoms Setup = "three-kingdoms"
)

func ParseSetup(s string) (Setup, error) {
	switch Setup(strings.ToLower(strings.TrimSpace(s))) {
	case "", SetupMirrored:
		return SetupMirrored, nil
	case SetupThreeKingdoms:
		return SetupThreeKingdoms, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSetup, s)
}

// 上方是后手（小写），下方是先手（大写）
var setupBoards = map[Setup]string{
	// 双方 1 王 + 8 子，位置关于中心对称
	SetupMirrored: `..ljikm..
....r....
...ppp...
.........
.........
.........
...PPP...
....D....
..GBACH..`,

	// 三国原版布阵：蜀 12 子，魏 14 子
	SetupThreeKingdoms: `..ljikm..
qn..r..os
..ppppp..
.........
.........
.........
..PPPPP..
...FDE...
..HCABG..`,
}

// NewInitialPosition 按布阵生成开局局面，手里无子
func NewInitialPosition(setup Setup) *Position {
	diagram, ok := setupBoards[setup]
	if !ok {
		panic("unknown setup: " + string(setup))
	}
	rows := strings.Split(strings.TrimSpace(diagram), "\n")
	pos, err := DecodePosition(strings.Join(rows, "/") + " -")
	if err != nil {
		panic(fmt.Sprintf("setup %s: %v", setup, err))
	}
	return pos
}

// KingSquare 找 side 的王（第一个 Royal 子）
func (p *Position) KingSquare(side Side) (Square, bool) {
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc.Side() == side && pc.Kind().Royal() {
			return Square(sq), true
		}
	}
	return NoSquare, false
}
