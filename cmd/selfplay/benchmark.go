package main

import (
	"github.com/rs/zerolog/log"

	"sangoku/internal/engine"
	"sangoku/internal/shogi"
)

type Player struct {
	Name  string
	Depth int
}

type GameResult struct {
	Result     shogi.Result // Ongoing 表示到步数上限还没分出胜负
	WinnerName string
	Plies      int
}

// PlayGame 两个引擎对下一局。每一方有自己的 Engine，种子由 seed 派生。
func PlayGame(setup shogi.Setup, first, second Player, seed uint64, maxPlies int) (GameResult, error) {
	players := [2]Player{first, second}
	var engines [2]*engine.Engine
	for s := range engines {
		engines[s] = engine.NewEngine(
			engine.WithDepth(players[s].Depth),
			engine.WithSeed(seed*2+uint64(s)),
			engine.WithLogger(log.Logger),
		)
	}

	g := shogi.NewGame(setup)
	for g.Ply() < maxPlies && !g.IsOver() {
		if _, err := engines[g.SideToMove].Play(g); err != nil {
			return GameResult{}, err
		}
	}

	res := GameResult{Result: g.Result(), Plies: g.Ply()}
	if w, ok := g.Winner(); ok {
		res.WinnerName = players[w].Name
	}
	return res, nil
}

type Totals struct {
	AWins, BWins, Unfinished int
}

func Tally(results []GameResult, a, b Player) Totals {
	var t Totals
	for _, r := range results {
		switch r.WinnerName {
		case a.Name:
			t.AWins++
		case b.Name:
			t.BWins++
		default:
			t.Unfinished++
		}
	}
	return t
}
