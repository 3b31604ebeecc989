package polyglot

import (
	"chesscore/board"
	"chesscore/piece"
)

var promotionPiece = [8]piece.Piece{piece.None, piece.Knight, piece.Bishop, piece.Rook, piece.Queen}

// DecodeMove unpacks a 16-bit Polyglot move. Castling is stored as the king
// taking its own rook and is translated to the king's two-square move.
func DecodeMove(p *board.Position, v uint16) board.Move {
	toFile := int(v & 0x07)
	toRank := int((v >> 3) & 0x07)
	fromFile := int((v >> 6) & 0x07)
	fromRank := int((v >> 9) & 0x07)
	promote := (v >> 12) & 0x07

	const a = 0
	const e = 4
	const h = 7

	from := fromRank*8 + fromFile
	to := toRank*8 + toFile

	if fromFile == e && fromRank == toRank && (fromRank == 0 || fromRank == 7) {
		king := p.Squares[from]
		if king.Type() == piece.King && p.Squares[to] == piece.Make(piece.Rook, king.Color()) {
			switch toFile {
			case a:
				to = fromRank*8 + 2 // O-O-O
			case h:
				to = fromRank*8 + 6 // O-O
			}
		}
	}

	return board.Move{From: from, To: to, Promotion: promotionPiece[promote]}
}
