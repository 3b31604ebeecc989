// Package reference wraps independent move generators used to cross-check
// the board package: dragontoothmg for path counts and notnil/chess for move
// lists and game status.
package reference

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"chesscore/board"
)

// Divide is perft divide computed by dragontoothmg.
func Divide(fen string, depth int) (map[string]uint64, error) {
	if _, err := board.Parse(fen); err != nil {
		return nil, err
	}

	b := dragontoothmg.ParseFen(fen)

	div := make(map[string]uint64)
	if depth <= 0 {
		return div, nil
	}

	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		div[m.String()] = count(&b, depth-1)
		unapply()
	}
	return div, nil
}

// Count is perft computed by dragontoothmg.
func Count(fen string, depth int) (uint64, error) {
	if _, err := board.Parse(fen); err != nil {
		return 0, err
	}

	b := dragontoothmg.ParseFen(fen)
	return count(&b, depth), nil
}

func count(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += count(b, depth-1)
		unapply()
	}
	return nodes
}

func newGame(fen string) (*chess.Game, error) {
	if _, err := board.Parse(fen); err != nil {
		return nil, err
	}

	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil/chess: %w", err)
	}
	return chess.NewGame(opt, chess.UseNotation(chess.UCINotation{})), nil
}

// LegalMoves lists the legal moves of the side to move in coordinate
// notation, sorted, as notnil/chess sees them.
func LegalMoves(fen string) ([]string, error) {
	g, err := newGame(fen)
	if err != nil {
		return nil, err
	}

	var notation chess.UCINotation
	pos := g.Position()

	var moves []string
	for _, m := range g.ValidMoves() {
		moves = append(moves, notation.Encode(pos, m))
	}
	slices.Sort(moves)
	return moves, nil
}

// Status classifies the position as notnil/chess does, limited to checkmate
// and stalemate.
func Status(fen string) (board.Status, error) {
	g, err := newGame(fen)
	if err != nil {
		return board.Ongoing, err
	}

	switch g.Position().Status() {
	case chess.Checkmate:
		return board.Checkmate, nil
	case chess.Stalemate:
		return board.Stalemate, nil
	}
	return board.Ongoing, nil
}
