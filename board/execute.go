package board

import "chesscore/piece"

// Execute applies the move origin->dest. The pair must come from LegalMoves;
// anything else leaves the position in an unspecified state.
func (p *Position) Execute(origin, dest int) {
	p.ExecuteMove(Move{From: origin, To: dest})
}

// ExecuteMove applies m in place: en passant capture, en passant target,
// castling rook and rights, rook rights, relocation, promotion, clocks and
// side to move, in that order.
func (p *Position) ExecuteMove(m Move) {
	from, to := m.From, m.To
	pc := p.Squares[from]
	kind := pc.Type()
	color := pc.Color()
	direction := forward(color)
	isCapture := p.Squares[to].Type() != piece.None

	// en passant capture; the captured pawn is behind the destination
	if kind == piece.Pawn && to == p.EnPassant && p.Squares[to].Type() == piece.None {
		p.Squares[to-direction] = piece.None
		isCapture = true
	}

	// en passant target, only after a double pawn push
	if kind == piece.Pawn && abs(to-from) == 16 {
		p.EnPassant = from + direction
	} else {
		p.EnPassant = NoSquare
	}

	home := homeRank(color) * 8

	if kind == piece.King {
		if from == home+4 {
			switch to {
			case home + 6:
				p.Squares[home+5] = p.Squares[home+7]
				p.Squares[home+7] = piece.None
			case home + 2:
				p.Squares[home+3] = p.Squares[home]
				p.Squares[home] = piece.None
			}
		}
		p.Castling.Revoke(Kingside(color) | Queenside(color))
	}

	if kind == piece.Rook {
		switch from {
		case home:
			p.Castling.Revoke(Queenside(color))
		case home + 7:
			p.Castling.Revoke(Kingside(color))
		}
	}

	// landing on the opponent's rook corner takes that right away
	enemy := color.Opponent()
	enemyHome := homeRank(enemy) * 8
	switch to {
	case enemyHome:
		p.Castling.Revoke(Queenside(enemy))
	case enemyHome + 7:
		p.Castling.Revoke(Kingside(enemy))
	}

	p.Squares[to] = pc
	p.Squares[from] = piece.None

	if kind == piece.Pawn && isPromotionSquare(to) {
		promote := m.Promotion.Type()
		switch promote {
		case piece.Knight, piece.Bishop, piece.Rook, piece.Queen:
		default:
			promote = piece.Queen
		}
		p.Squares[to] = piece.Make(promote, color)
	}

	if kind == piece.Pawn || isCapture {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if color == piece.Black {
		p.FullmoveNumber++
	}
	p.SideToMove = enemy
}
