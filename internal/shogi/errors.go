package shogi

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrInvalidSetup = errors.New("unknown setup")
)

// IllegalMoveError 请求的着不在当前合法集合里；局面不变，调用方可以重新选。
type IllegalMoveError struct {
	Move Move
	Side Side
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %v for %v", e.Move, e.Side)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

type GameOverError struct {
	Winner Side
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("game is over, %v won", e.Winner)
}

func (e *GameOverError) Unwrap() error { return ErrGameOver }
