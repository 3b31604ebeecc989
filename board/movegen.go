package board

import "chesscore/piece"

var (
	knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}

	rookDirections   = []int{-8, 8, -1, 1}
	bishopDirections = []int{-9, -7, 7, 9}
	queenDirections  = []int{-8, 8, -1, 1, -9, -7, 7, 9}
)

// PseudoLegalMoves returns the destinations the piece on origin can reach by
// its movement rules, without regard to the safety of its own king. The result
// is empty when origin is off the board, empty, or holds a piece of the side
// not to move.
func (p *Position) PseudoLegalMoves(origin int) []int {
	return p.pseudoLegalMoves(origin, p.SideToMove)
}

func (p *Position) pseudoLegalMoves(origin int, side piece.Color) []int {
	if !onBoard(origin) {
		return nil
	}

	pc := p.Squares[origin]
	if !pc.IsColor(side) {
		return nil
	}

	var moves []int
	switch pc.Type() {
	case piece.Pawn:
		moves = p.Squares.pawnMoves(origin, p.EnPassant, moves)
	case piece.Knight:
		moves = p.Squares.knightMoves(origin, moves)
	case piece.Bishop:
		moves = p.Squares.slidingMoves(origin, bishopDirections, moves)
	case piece.Rook:
		moves = p.Squares.slidingMoves(origin, rookDirections, moves)
	case piece.Queen:
		moves = p.Squares.slidingMoves(origin, queenDirections, moves)
	case piece.King:
		moves = p.Squares.kingMoves(origin, moves)
		moves = p.castlingMoves(origin, moves)
	}

	return moves
}

func (b *Board) pawnMoves(sq, enPassant int, moves []int) []int {
	pc := b[sq]
	direction := forward(pc.Color())
	startRank := 1
	if !pc.IsWhite() {
		startRank = 6
	}

	// one or two squares
	one := sq + direction
	if onBoard(one) && b[one].Type() == piece.None {
		moves = append(moves, one)

		two := one + direction
		if sq/8 == startRank && b[two].Type() == piece.None {
			moves = append(moves, two)
		}
	}

	// captures
	for _, offset := range [2]int{direction - 1, direction + 1} {
		target := sq + offset
		if !onBoard(target) || fileDistance(target, sq) != 1 {
			continue
		}

		if piece.IsEnemy(pc, b[target]) || target == enPassant {
			moves = append(moves, target)
		}
	}

	return moves
}

func (b *Board) knightMoves(sq int, moves []int) []int {
	pc := b[sq]

	for _, offset := range knightOffsets {
		target := sq + offset
		if !onBoard(target) || fileDistance(target, sq) > 2 {
			continue
		}

		if b[target].Type() == piece.None || piece.IsEnemy(pc, b[target]) {
			moves = append(moves, target)
		}
	}

	return moves
}

// slidingMoves walks each ray one step at a time. The file check is repeated
// on every step since a ray can wrap in the middle of the board edge.
func (b *Board) slidingMoves(sq int, directions []int, moves []int) []int {
	pc := b[sq]

	for _, dir := range directions {
		from := sq
		for {
			next := from + dir
			if !onBoard(next) {
				break
			}
			if dir != 8 && dir != -8 && fileDistance(next, from) != 1 {
				break
			}

			target := b[next]
			if target.Type() == piece.None {
				moves = append(moves, next)
				from = next
				continue
			}

			if piece.IsEnemy(pc, target) {
				moves = append(moves, next)
			}
			break
		}
	}

	return moves
}

func (b *Board) kingMoves(sq int, moves []int) []int {
	pc := b[sq]

	for _, offset := range kingOffsets {
		target := sq + offset
		if !onBoard(target) || fileDistance(target, sq) > 1 {
			continue
		}

		if b[target].Type() == piece.None || piece.IsEnemy(pc, b[target]) {
			moves = append(moves, target)
		}
	}

	return moves
}

// castlingMoves adds the king's two-square castling destinations. The rook is
// moved by Execute, not here.
func (p *Position) castlingMoves(sq int, moves []int) []int {
	b := &p.Squares
	color := b[sq].Color()
	home := homeRank(color) * 8
	if sq != home+4 {
		return moves
	}

	enemy := color.Opponent()
	rook := piece.Make(piece.Rook, color)

	safe := func(squares ...int) bool {
		for _, s := range squares {
			if b.IsSquareAttacked(s, enemy) {
				return false
			}
		}
		return true
	}

	if p.Castling.Has(Kingside(color)) &&
		b[home+7] == rook &&
		b[home+5].Type() == piece.None &&
		b[home+6].Type() == piece.None &&
		safe(sq, home+5, home+6) {
		moves = append(moves, home+6)
	}

	// the b-file square must be empty for the rook but may be attacked
	if p.Castling.Has(Queenside(color)) &&
		b[home] == rook &&
		b[home+1].Type() == piece.None &&
		b[home+2].Type() == piece.None &&
		b[home+3].Type() == piece.None &&
		safe(sq, home+3, home+2) {
		moves = append(moves, home+2)
	}

	return moves
}
