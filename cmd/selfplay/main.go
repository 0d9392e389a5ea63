package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"sangoku/internal/shogi"
)

func main() {
	totalGames := flag.Int("games", 10, "number of games to play")
	depthA := flag.Int("a-depth", 2, "search depth of player A")
	depthB := flag.Int("b-depth", 1, "search depth of player B")
	maxPlies := flag.Int("maxplies", 300, "stop a game after this many plies")
	setupName := flag.String("setup", "mirrored", "initial setup: mirrored | three-kingdoms")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "base random seed")
	parallel := flag.Int("parallel", runtime.NumCPU(), "games played at the same time")
	logLevel := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	setup, err := shogi.ParseSetup(*setupName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad setup")
	}

	a := Player{Name: fmt.Sprintf("A (depth %d)", *depthA), Depth: *depthA}
	b := Player{Name: fmt.Sprintf("B (depth %d)", *depthB), Depth: *depthB}

	results := make([]GameResult, *totalGames)
	var eg errgroup.Group
	eg.SetLimit(*parallel)
	for i := 0; i < *totalGames; i++ {
		i := i
		eg.Go(func() error {
			// 轮流执先手
			first, second := a, b
			if i%2 == 1 {
				first, second = b, a
			}
			res, err := PlayGame(setup, first, second, *seed+uint64(i), *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			log.Info().
				Int("game", i+1).
				Str("first", first.Name).
				Str("second", second.Name).
				Str("winner", res.WinnerName).
				Str("result", res.Result.String()).
				Int("plies", res.Plies).
				Msg("game finished")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}

	t := Tally(results, a, b)
	fmt.Printf("%s: %d wins\n%s: %d wins\nunfinished: %d\n", a.Name, t.AWins, b.Name, t.BWins, t.Unfinished)
}
