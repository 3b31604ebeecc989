// Package perft counts move paths from a position, the standard way to check
// a move generator against published numbers.
package perft

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chesscore/board"
)

// Count returns the number of leaf nodes depth plies below pos.
func Count(pos *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := pos.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next := pos.Clone()
		next.ExecuteMove(m)
		nodes += Count(next, depth-1)
	}
	return nodes
}

// Divide splits Count by root move, keyed by the move in coordinate notation.
func Divide(pos *board.Position, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}

	for _, m := range pos.AllLegalMoves() {
		next := pos.Clone()
		next.ExecuteMove(m)
		div[m.UCI()] = Count(next, depth-1)
	}
	return div
}

// Total sums a divide.
func Total(div map[string]uint64) uint64 {
	var sum uint64
	for _, n := range div {
		sum += n
	}
	return sum
}

// Mismatch is a root move whose counts disagree. A move missing on one side
// has a zero count there.
type Mismatch struct {
	Move   string
	Ours   uint64
	Theirs uint64
}

// Diff compares two divides, sorted by move.
func Diff(ours, theirs map[string]uint64) []Mismatch {
	seen := make(map[string]struct{}, len(ours))
	for _, k := range maps.Keys(ours) {
		seen[k] = struct{}{}
	}
	for _, k := range maps.Keys(theirs) {
		seen[k] = struct{}{}
	}

	moves := maps.Keys(seen)
	slices.Sort(moves)

	var diff []Mismatch
	for _, m := range moves {
		if ours[m] != theirs[m] {
			diff = append(diff, Mismatch{Move: m, Ours: ours[m], Theirs: theirs[m]})
		}
	}
	return diff
}

// SortedMoves returns the keys of a divide in order, for stable output.
func SortedMoves(div map[string]uint64) []string {
	moves := maps.Keys(div)
	slices.Sort(moves)
	return moves
}
