package board

import (
	"fmt"

	"golang.org/x/exp/slices"

	"chesscore/piece"
)

// IsSquareAttacked reports whether any piece of color by threatens sq. Pawns
// threaten their two forward diagonals only and kings never threaten by
// castling.
func (b *Board) IsSquareAttacked(sq int, by piece.Color) bool {
	footprint := make([]int, 0, 28)

	for i := 0; i < 64; i++ {
		pc := b[i]
		if !pc.IsColor(by) {
			continue
		}

		footprint = footprint[:0]
		switch pc.Type() {
		case piece.Pawn:
			footprint = b.pawnAttacks(i, footprint)
		case piece.Knight:
			footprint = b.knightMoves(i, footprint)
		case piece.Bishop:
			footprint = b.slidingMoves(i, bishopDirections, footprint)
		case piece.Rook:
			footprint = b.slidingMoves(i, rookDirections, footprint)
		case piece.Queen:
			footprint = b.slidingMoves(i, queenDirections, footprint)
		case piece.King:
			footprint = b.kingMoves(i, footprint)
		}

		if slices.Contains(footprint, sq) {
			return true
		}
	}

	return false
}

func (b *Board) pawnAttacks(sq int, attacks []int) []int {
	direction := forward(b[sq].Color())

	for _, offset := range [2]int{direction - 1, direction + 1} {
		target := sq + offset
		if !onBoard(target) || fileDistance(target, sq) != 1 {
			continue
		}
		attacks = append(attacks, target)
	}

	return attacks
}

func (b *Board) kingSquare(c piece.Color) (int, bool) {
	king := piece.Make(piece.King, c)
	for i := 0; i < 64; i++ {
		if b[i] == king {
			return i, true
		}
	}
	return NoSquare, false
}

// KingSquare locates the king of color c.
func (p *Position) KingSquare(c piece.Color) (int, error) {
	sq, ok := p.Squares.kingSquare(c)
	if !ok {
		return NoSquare, fmt.Errorf("%w: %s", ErrNoKing, colorName(c))
	}
	return sq, nil
}

// IsKingInCheck reports whether the king of color c is attacked. A board
// without that king is an error, not "not in check".
func (p *Position) IsKingInCheck(c piece.Color) (bool, error) {
	sq, err := p.KingSquare(c)
	if err != nil {
		return false, err
	}
	return p.Squares.IsSquareAttacked(sq, c.Opponent()), nil
}

func colorName(c piece.Color) string {
	if c == piece.White {
		return "white"
	}
	return "black"
}
