package board

import "chesscore/piece"

// promotions is the order promotion choices are listed in.
var promotions = [4]piece.Piece{piece.Knight, piece.Bishop, piece.Rook, piece.Queen}

// FilterLegal keeps the candidates from origin that do not leave the mover's
// king attacked. Each candidate is tried on a private copy of the board; the
// position itself is never touched.
func (p *Position) FilterLegal(origin int, candidates []int) []int {
	if !onBoard(origin) || len(candidates) == 0 {
		return nil
	}

	pc := p.Squares[origin]
	color := pc.Color()
	enemy := color.Opponent()

	legal := make([]int, 0, len(candidates))
	for _, to := range candidates {
		b := p.Squares
		if pc.Type() == piece.Pawn && to == p.EnPassant && b[to].Type() == piece.None {
			b[to-forward(color)] = piece.None
		}
		b[to] = b[origin]
		b[origin] = piece.None

		king, ok := b.kingSquare(color)
		if ok && b.IsSquareAttacked(king, enemy) {
			continue
		}
		legal = append(legal, to)
	}

	return legal
}

// LegalMoves returns the legal destinations of the piece on origin for the
// side to move.
func (p *Position) LegalMoves(origin int) []int {
	return p.FilterLegal(origin, p.PseudoLegalMoves(origin))
}

// HasAnyLegalMoves scans every piece of color c for at least one legal move.
func (p *Position) HasAnyLegalMoves(c piece.Color) bool {
	for i := 0; i < 64; i++ {
		if !p.Squares[i].IsColor(c) {
			continue
		}
		if len(p.FilterLegal(i, p.pseudoLegalMoves(i, c))) > 0 {
			return true
		}
	}
	return false
}

// AllLegalMoves lists every legal move for the side to move. A pawn move onto
// the last rank is listed once per promotion choice.
func (p *Position) AllLegalMoves() []Move {
	var moves []Move

	for from := 0; from < 64; from++ {
		pc := p.Squares[from]
		if !pc.IsColor(p.SideToMove) {
			continue
		}

		for _, to := range p.LegalMoves(from) {
			if pc.Type() == piece.Pawn && isPromotionSquare(to) {
				for _, promote := range promotions {
					moves = append(moves, Move{From: from, To: to, Promotion: promote})
				}
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}

	return moves
}

// IsLegal reports whether m is among the legal moves of the side to move.
func (p *Position) IsLegal(m Move) bool {
	if !onBoard(m.From) || !onBoard(m.To) {
		return false
	}

	pc := p.Squares[m.From]
	if m.Promotion.Type() != piece.None {
		if pc.Type() != piece.Pawn || !isPromotionSquare(m.To) {
			return false
		}
		switch m.Promotion.Type() {
		case piece.Pawn, piece.King:
			return false
		}
	}

	for _, to := range p.LegalMoves(m.From) {
		if to == m.To {
			return true
		}
	}
	return false
}
