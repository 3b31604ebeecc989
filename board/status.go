package board

// Status is the state of the game for the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// Terminal is true for checkmate and stalemate.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Status classifies the position for the side to move. With no legal moves it
// is checkmate when that side's king is attacked and stalemate otherwise.
func (p *Position) Status() (Status, error) {
	if p.HasAnyLegalMoves(p.SideToMove) {
		return Ongoing, nil
	}

	inCheck, err := p.IsKingInCheck(p.SideToMove)
	if err != nil {
		return Ongoing, err
	}
	if inCheck {
		return Checkmate, nil
	}
	return Stalemate, nil
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() (bool, error) {
	return p.IsKingInCheck(p.SideToMove)
}
