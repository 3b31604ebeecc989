package polyglot

import (
	"chesscore/board"
	"chesscore/piece"
)

const castleKeyOffset = 768
const enPassantKeyOffset = 772
const turnKeyOffset = 780

// Key returns the Polyglot hash of a position.
func Key(p *board.Position) uint64 {
	return pieceKey(&p.Squares) ^ castleKey(p.Castling) ^ enPassantKey(p) ^ turnKey(p.SideToMove)
}

func pieceKey(b *board.Board) uint64 {
	var key uint64

	for sq, pc := range b {
		if pc.Type() == piece.None {
			continue
		}

		// polyglot kinds: black pawn 0, white pawn 1, black knight 2, ...
		kind := 2 * (int(pc.Type()) - 1)
		if pc.IsWhite() {
			kind++
		}

		key ^= random64[64*kind+sq]
	}

	return key
}

func castleKey(rights board.CastlingRights) uint64 {
	var key uint64

	if rights.Has(board.WhiteKingside) {
		key ^= random64[castleKeyOffset]
	}
	if rights.Has(board.WhiteQueenside) {
		key ^= random64[castleKeyOffset+1]
	}
	if rights.Has(board.BlackKingside) {
		key ^= random64[castleKeyOffset+2]
	}
	if rights.Has(board.BlackQueenside) {
		key ^= random64[castleKeyOffset+3]
	}

	return key
}

// enPassantKey only counts the target when a pawn of the side to move stands
// beside the pawn that just made the double push.
func enPassantKey(p *board.Position) uint64 {
	if p.EnPassant == board.NoSquare {
		return 0
	}

	file := p.EnPassant % 8
	pushed := p.EnPassant - 8
	if p.SideToMove == piece.Black {
		pushed = p.EnPassant + 8
	}

	pawn := piece.Make(piece.Pawn, p.SideToMove)
	var flag bool
	if file != 0 && p.Squares[pushed-1] == pawn {
		flag = true
	}
	if file != 7 && p.Squares[pushed+1] == pawn {
		flag = true
	}

	if !flag {
		return 0
	}

	return random64[enPassantKeyOffset+file]
}

func turnKey(c piece.Color) uint64 {
	if c == piece.Black {
		return 0
	}

	return random64[turnKeyOffset]
}
