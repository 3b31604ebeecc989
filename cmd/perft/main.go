package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"chesscore/board"
	"chesscore/commas"
	"chesscore/epd"
	"chesscore/perft"
	"chesscore/reference"
)

func main() {
	fen := flag.String("fen", board.StartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -epd is set)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Cross-check the divide against dragontoothmg")
	suite := flag.String("epd", "", "EPD file with D<n> opcodes to run instead of -fen")
	flag.Parse()

	log.SetFlags(0)

	if *suite != "" {
		if !runSuite(*suite, *depth) {
			os.Exit(1)
		}
		return
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.Parse(*fen)
	if err != nil {
		log.Fatalf("parse fen: %v", err)
	}

	if *divide || *verify {
		start := time.Now()
		div := perft.Divide(pos, *depth)
		elapsed := time.Since(start)

		for _, m := range perft.SortedMoves(div) {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		total := perft.Total(div)
		fmt.Printf("Total: %s (%s)\n", commas.Uint64(total), elapsed)

		if *verify && !verifyDivide(*fen, *depth, div) {
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	nodes := perft.Count(pos, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	fmt.Printf("depth %d \tnodes %s \ttime %s \tnps %s\n", *depth, commas.Uint64(nodes), elapsed, commas.Int64(int64(nps)))
}

func verifyDivide(fen string, depth int, ours map[string]uint64) bool {
	theirs, err := reference.Divide(fen, depth)
	if err != nil {
		log.Fatalf("reference divide: %v", err)
	}

	diff := perft.Diff(ours, theirs)
	if len(diff) == 0 {
		color.Green("verified against dragontoothmg: %s nodes", commas.Uint64(perft.Total(theirs)))
		return true
	}

	for _, m := range diff {
		color.Red("%s: ours %d theirs %d", m.Move, m.Ours, m.Theirs)
	}
	return false
}

// runSuite checks every D<n> count in an EPD file up to maxDepth (all depths
// when maxDepth is 0).
func runSuite(filename string, maxDepth int) bool {
	file, err := epd.LoadFile(filename)
	if err != nil {
		log.Fatal(err)
	}

	pass := true
	for _, line := range file.Positions() {
		pos, err := line.Position()
		if err != nil {
			color.Red("%s: %v", line.FEN, err)
			pass = false
			continue
		}

		for _, want := range line.PerftDepths() {
			if maxDepth > 0 && want.Depth > maxDepth {
				break
			}

			got := perft.Count(pos, want.Depth)
			if got != want.Nodes {
				color.Red("FAIL %s D%d: got %s want %s", line.FEN, want.Depth, commas.Uint64(got), commas.Uint64(want.Nodes))
				pass = false
				continue
			}
			fmt.Printf("ok   %s D%d %s\n", line.FEN, want.Depth, commas.Uint64(got))
		}
	}

	return pass
}
