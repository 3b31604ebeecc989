package board

import (
	"fmt"
	"strings"

	"chesscore/piece"
)

// SAN renders a legal move of the side to move in standard algebraic notation.
func (p *Position) SAN(m Move) string {
	pc := p.Squares[m.From]
	kind := pc.Type()
	fromSq, toSq := squareName(m.From), squareName(m.To)

	isCapture := p.Squares[m.To].Type() != piece.None
	if kind == piece.Pawn && m.To == p.EnPassant {
		isCapture = true
	}

	var san strings.Builder

	switch {
	case kind == piece.King && m.To-m.From == 2:
		san.WriteString("O-O")
	case kind == piece.King && m.From-m.To == 2:
		san.WriteString("O-O-O")
	default:
		if kind != piece.Pawn {
			san.WriteByte(kind.Letter())
			san.WriteString(p.disambiguate(m, fromSq))
		}

		if isCapture {
			if kind == piece.Pawn {
				san.WriteByte(fromSq[0])
			}
			san.WriteByte('x')
		}
		san.WriteString(toSq)

		if kind == piece.Pawn && isPromotionSquare(m.To) {
			promote := m.Promotion.Type()
			if promote == piece.None {
				promote = piece.Queen
			}
			san.WriteByte('=')
			san.WriteByte(promote.Letter())
		}
	}

	next := p.Clone()
	next.ExecuteMove(m)

	if inCheck, err := next.IsKingInCheck(next.SideToMove); err == nil && inCheck {
		if next.HasAnyLegalMoves(next.SideToMove) {
			san.WriteByte('+')
		} else {
			san.WriteByte('#')
		}
	}

	return san.String()
}

// disambiguate returns the file, rank or full square needed to tell m apart
// from other pieces of the same kind that can reach the same destination.
func (p *Position) disambiguate(m Move, fromSq string) string {
	pc := p.Squares[m.From]

	var others []string
	for from := 0; from < 64; from++ {
		if from == m.From || p.Squares[from] != pc {
			continue
		}
		for _, to := range p.LegalMoves(from) {
			if to == m.To {
				others = append(others, squareName(from))
				break
			}
		}
	}

	if len(others) == 0 {
		return ""
	}

	var sameFile, sameRank bool
	for _, other := range others {
		if other[0] == fromSq[0] {
			sameFile = true
		}
		if other[1] == fromSq[1] {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return fromSq[:1]
	case !sameRank:
		return fromSq[1:]
	default:
		return fromSq
	}
}

// ParseSAN finds the legal move of the side to move whose SAN is san. Check
// and mate suffixes and annotation marks are optional.
func (p *Position) ParseSAN(san string) (Move, error) {
	want := trimSAN(san)
	if want == "" {
		return Move{}, fmt.Errorf("%w: empty SAN", ErrInvalidMove)
	}

	for _, m := range p.AllLegalMoves() {
		if trimSAN(p.SAN(m)) == want {
			return m, nil
		}
	}

	// pawns reaching the last rank without "=X" promote to a queen
	if !strings.Contains(want, "=") {
		for _, m := range p.AllLegalMoves() {
			if m.Promotion.Type() == piece.Queen && strings.TrimSuffix(trimSAN(p.SAN(m)), "=Q") == want {
				return Move{From: m.From, To: m.To}, nil
			}
		}
	}

	return Move{}, fmt.Errorf("%w: '%s' in %s", ErrInvalidMove, san, p.FEN())
}

func trimSAN(san string) string {
	san = strings.TrimSpace(san)
	san = strings.ReplaceAll(san, "0-0-0", "O-O-O")
	san = strings.ReplaceAll(san, "0-0", "O-O")
	return strings.TrimRight(san, "+#!?")
}
