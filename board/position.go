package board

import (
	"strings"

	"chesscore/piece"
)

// Board holds one piece token per square, indexed rank*8+file with a1 at 0.
type Board [64]piece.Piece

// CastlingRights is a set of four independent flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r != 0
}

func (c *CastlingRights) Grant(r CastlingRights) {
	*c |= r
}

func (c *CastlingRights) Revoke(r CastlingRights) {
	*c &^= r
}

// String renders the rights in FEN order, "-" when none are held.
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.Has(WhiteKingside) {
		sb.WriteByte('K')
	}
	if c.Has(WhiteQueenside) {
		sb.WriteByte('Q')
	}
	if c.Has(BlackKingside) {
		sb.WriteByte('k')
	}
	if c.Has(BlackQueenside) {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func Kingside(c piece.Color) CastlingRights {
	if c == piece.White {
		return WhiteKingside
	}
	return BlackKingside
}

func Queenside(c piece.Color) CastlingRights {
	if c == piece.White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Position is the complete game state. It is mutated in place by Execute and
// owns its board exclusively.
type Position struct {
	Squares        Board
	SideToMove     piece.Color
	Castling       CastlingRights
	EnPassant      int
	HalfmoveClock  int
	FullmoveNumber int
}

// New returns an empty board with White to move and no rights.
func New() *Position {
	return &Position{
		SideToMove:     piece.White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

func (p *Position) Clone() *Position {
	c := *p
	return &c
}

func (p *Position) WhiteToMove() bool {
	return p.SideToMove == piece.White
}

// homeRank is the back rank index for c.
func homeRank(c piece.Color) int {
	if c == piece.White {
		return 0
	}
	return 7
}

// forward is the square delta of one pawn step for c.
func forward(c piece.Color) int {
	if c == piece.White {
		return 8
	}
	return -8
}
