package board

import (
	"fmt"
	"strconv"
	"strings"

	"chesscore/piece"
)

const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse decodes a six field FEN string.
func Parse(fen string) (*Position, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("%w: want 6 fields, got %d in '%s'", ErrMalformedFEN, len(parts), fen)
	}

	p := New()

	if err := p.Squares.parseLayout(parts[0]); err != nil {
		return nil, fmt.Errorf("'%s': %w", fen, err)
	}

	if parts[1] == "w" {
		p.SideToMove = piece.White
	} else {
		p.SideToMove = piece.Black
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			p.Castling.Grant(WhiteKingside)
		case 'Q':
			p.Castling.Grant(WhiteQueenside)
		case 'k':
			p.Castling.Grant(BlackKingside)
		case 'q':
			p.Castling.Grant(BlackQueenside)
		}
	}

	if parts[3] != "-" {
		sq, err := SquareToIndex(parts[3])
		if err != nil {
			return nil, fmt.Errorf("en passant field: %w", err)
		}
		p.EnPassant = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: halfmove clock '%s'", ErrMalformedFEN, parts[4])
	}
	fullmove, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: fullmove number '%s'", ErrMalformedFEN, parts[5])
	}
	p.HalfmoveClock = halfmove
	p.FullmoveNumber = fullmove

	return p, nil
}

// MustParse is Parse for known-good constants; it panics on error.
func MustParse(fen string) *Position {
	p, err := Parse(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// parseLayout requires exactly eight ranks of eight files.
func (b *Board) parseLayout(layout string) error {
	file, rank := 0, 7

	for i := 0; i < len(layout); i++ {
		c := layout[i]

		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("%w: rank %d has %d files", ErrMalformedFEN, rank+1, file)
			}
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("%w: too many ranks", ErrMalformedFEN)
			}
		case isDigit(c):
			file += int(c - '0')
			if file > 8 {
				return fmt.Errorf("%w: rank %d overflows", ErrMalformedFEN, rank+1)
			}
		default:
			p, ok := piece.FromLetter(c)
			if !ok {
				return fmt.Errorf("%w: unknown piece '%c'", ErrMalformedFEN, c)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d overflows", ErrMalformedFEN, rank+1)
			}
			b[rank*8+file] = p
			file++
		}
	}

	if rank != 0 || file != 8 {
		return fmt.Errorf("%w: layout ends on rank %d file %d", ErrMalformedFEN, rank+1, file)
	}

	return nil
}

// FENNoMoveClocks renders the first four FEN fields.
func (p *Position) FENNoMoveClocks() string {
	var fen strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank != 7 {
			fen.WriteByte('/')
		}

		blanks := 0
		for file := 0; file < 8; file++ {
			pc := p.Squares[rank*8+file]
			if pc.Type() == piece.None {
				blanks++
				continue
			}

			if blanks != 0 {
				fen.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			fen.WriteByte(pc.Letter())
		}

		if blanks != 0 {
			fen.WriteString(strconv.Itoa(blanks))
		}
	}

	ep := "-"
	if p.EnPassant != NoSquare {
		ep = squareName(p.EnPassant)
	}

	fmt.Fprintf(&fen, " %s %s %s", p.SideToMove, p.Castling, ep)

	return fen.String()
}

func (p *Position) FEN() string {
	return fmt.Sprintf("%s %d %d", p.FENNoMoveClocks(), p.HalfmoveClock, p.FullmoveNumber)
}

func (p *Position) String() string {
	return p.FEN()
}

// Key reduces a FEN (four or six fields) to its first four fields, dropping an
// en passant square that no pawn can capture onto. It returns "" if the text
// does not parse.
func Key(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return ""
	}

	p, err := Parse(strings.Join(fields[:4], " ") + " 0 1")
	if err != nil {
		return ""
	}

	if p.EnPassant != NoSquare && !p.enPassantCapturable() {
		p.EnPassant = NoSquare
	}

	return p.FENNoMoveClocks()
}

func (p *Position) enPassantCapturable() bool {
	pawn := piece.Make(piece.Pawn, p.SideToMove)
	behind := p.EnPassant - forward(p.SideToMove)
	for _, from := range [2]int{behind - 1, behind + 1} {
		if !onBoard(from) || fileDistance(from, behind) != 1 || p.Squares[from] != pawn {
			continue
		}
		for _, to := range p.LegalMoves(from) {
			if to == p.EnPassant {
				return true
			}
		}
	}
	return false
}
