package piece

// Piece packs a piece type (low 3 bits) and a color (White=0, Black=8) into one token.
type Piece uint8

// Color is either White or Black. It is an additive offset, not a flag.
type Color uint8

const (
	None   Piece = 0
	Pawn   Piece = 1
	Knight Piece = 2
	Bishop Piece = 3
	Rook   Piece = 4
	Queen  Piece = 5
	King   Piece = 6
)

const (
	White Color = 0
	Black Color = 8
)

const (
	typeMask  = 0b0111
	colorMask = 0b1000
)

const (
	WhitePawn   = Pawn | Piece(White)
	WhiteKnight = Knight | Piece(White)
	WhiteBishop = Bishop | Piece(White)
	WhiteRook   = Rook | Piece(White)
	WhiteQueen  = Queen | Piece(White)
	WhiteKing   = King | Piece(White)

	BlackPawn   = Pawn | Piece(Black)
	BlackKnight = Knight | Piece(Black)
	BlackBishop = Bishop | Piece(Black)
	BlackRook   = Rook | Piece(Black)
	BlackQueen  = Queen | Piece(Black)
	BlackKing   = King | Piece(Black)
)

// letters is indexed by the token value.
var letters = [16]byte{
	' ', 'P', 'N', 'B', 'R', 'Q', 'K', '?',
	' ', 'p', 'n', 'b', 'r', 'q', 'k', '?',
}

func Make(t Piece, c Color) Piece {
	return t&typeMask | Piece(c)
}

func (p Piece) Type() Piece {
	return p & typeMask
}

func (p Piece) Color() Color {
	return Color(p & colorMask)
}

// IsColor is false for None regardless of c.
func (p Piece) IsColor(c Color) bool {
	return p.Type() != None && p.Color() == c
}

func (p Piece) IsWhite() bool {
	return p.IsColor(White)
}

func (p Piece) IsSlidingPiece() bool {
	t := p.Type()
	return t == Queen || t == Bishop || t == Rook
}

func (p Piece) IsOrthogonalSlider() bool {
	t := p.Type()
	return t == Queen || t == Rook
}

func (p Piece) IsDiagonalSlider() bool {
	t := p.Type()
	return t == Queen || t == Bishop
}

// IsEnemy reports whether a and b are both pieces of different colors.
func IsEnemy(a, b Piece) bool {
	return a.Type() != None && b.Type() != None && a.Color() != b.Color()
}

// IsFriendly reports whether a and b are both pieces of the same color.
func IsFriendly(a, b Piece) bool {
	return a.Type() != None && b.Type() != None && a.Color() == b.Color()
}

// Letter returns the FEN letter for p, uppercase for White, or ' ' for None.
func (p Piece) Letter() byte {
	return letters[p&(typeMask|colorMask)]
}

func (p Piece) String() string {
	return string(p.Letter())
}

// FromLetter maps a FEN piece letter to its token.
func FromLetter(c byte) (Piece, bool) {
	for i, l := range letters {
		if l == c && l != ' ' && l != '?' {
			return Piece(i), true
		}
	}
	return None, false
}

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}
