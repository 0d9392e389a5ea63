package main

import (
	"flag"
	"fmt"
	"os"

	"sangoku/internal/engine"
	"sangoku/internal/shogi"
)

func main() {
	setupName := flag.String("setup", "mirrored", "initial setup: mirrored | three-kingdoms")
	diagram := flag.String("pos", "", "position diagram, overrides -setup")
	mateDepth := flag.Int("mate", 0, "also search a mate by checks up to this many plies")
	flag.Parse()

	var pos *shogi.Position
	if *diagram != "" {
		p, err := shogi.DecodePosition(*diagram)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pos = p
	} else {
		setup, err := shogi.ParseSetup(*setupName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pos = shogi.NewInitialPosition(setup)
	}

	fmt.Println("Diagram:", pos.Encode())
	fmt.Println(pos)
	for _, side := range []shogi.Side{shogi.First, shogi.Second} {
		fmt.Printf("%s: pseudo %d, legal %d, in check %v\n",
			side,
			len(pos.PseudoMovesForSide(side)),
			len(pos.AllLegalMoves(side, true)),
			pos.InCheck(side))
	}

	if *mateDepth > 0 {
		e := engine.NewEngine()
		for _, side := range []shogi.Side{shogi.First, shogi.Second} {
			res := e.MateSearch(pos, side, *mateDepth)
			if res.Found {
				fmt.Printf("%s mates in %d plies starting with %v (%d nodes)\n", side, res.Depth, res.Move, res.Nodes)
			} else {
				fmt.Printf("%s: no mate by checks within %d plies (%d nodes)\n", side, *mateDepth, res.Nodes)
			}
		}
	}
}
