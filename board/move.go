package board

import (
	"fmt"

	"chesscore/piece"
)

// Move is an origin/destination pair. Promotion is piece.None unless an
// under-promotion is wanted; a pawn reaching the last rank becomes a queen by
// default.
type Move struct {
	From      int
	To        int
	Promotion piece.Piece
}

// UCI renders the move in coordinate notation, e.g. "e2e4" or "a7a8n".
func (m Move) UCI() string {
	s := squareName(m.From) + squareName(m.To)
	if m.Promotion.Type() != piece.None {
		s += string(lower(m.Promotion.Type().Letter()))
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}

// ParseUCI decodes coordinate notation.
func ParseUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: '%s'", ErrInvalidMove, s)
	}

	from, err := SquareToIndex(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: '%s': %v", ErrInvalidMove, s, err)
	}
	to, err := SquareToIndex(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: '%s': %v", ErrInvalidMove, s, err)
	}

	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch lower(s[4]) {
		case 'n':
			m.Promotion = piece.Knight
		case 'b':
			m.Promotion = piece.Bishop
		case 'r':
			m.Promotion = piece.Rook
		case 'q':
			m.Promotion = piece.Queen
		default:
			return Move{}, fmt.Errorf("%w: '%s': unknown promotion '%c'", ErrInvalidMove, s, s[4])
		}
	}

	return m, nil
}

// IsPromotion reports whether m moves a pawn onto its last rank.
func (p *Position) IsPromotion(m Move) bool {
	return onBoard(m.From) && p.Squares[m.From].Type() == piece.Pawn && isPromotionSquare(m.To)
}

func isPromotionSquare(sq int) bool {
	rank := sq / 8
	return rank == 0 || rank == 7
}
