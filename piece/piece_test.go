package piece

import "testing"

func TestPiece_TypeAndColor(t *testing.T) {
	cases := []struct {
		p         Piece
		wantType  Piece
		wantColor Color
		wantWhite bool
	}{
		{p: WhitePawn, wantType: Pawn, wantColor: White, wantWhite: true},
		{p: BlackKnight, wantType: Knight, wantColor: Black},
		{p: BlackKing, wantType: King, wantColor: Black},
		{p: WhiteQueen, wantType: Queen, wantColor: White, wantWhite: true},
		{p: None, wantType: None, wantColor: White},
		{p: Piece(Black), wantType: None, wantColor: Black},
	}

	for _, c := range cases {
		t.Run(c.p.String(), func(t *testing.T) {
			if got := c.p.Type(); got != c.wantType {
				t.Errorf("Type, want: %d got: %d", c.wantType, got)
			}
			if got := c.p.Color(); got != c.wantColor {
				t.Errorf("Color, want: %d got: %d", c.wantColor, got)
			}
			if got := c.p.IsWhite(); got != c.wantWhite {
				t.Errorf("IsWhite, want: %v got: %v", c.wantWhite, got)
			}
		})
	}
}

func TestIsColor_None(t *testing.T) {
	if None.IsColor(White) || None.IsColor(Black) {
		t.Error("None must not match any color")
	}
	if Piece(Black).IsColor(Black) {
		t.Error("colored None must not match its color bit")
	}
}

func TestIsEnemyIsFriendly(t *testing.T) {
	cases := []struct {
		a, b         Piece
		wantEnemy    bool
		wantFriendly bool
	}{
		{a: WhitePawn, b: BlackPawn, wantEnemy: true},
		{a: BlackRook, b: WhiteKing, wantEnemy: true},
		{a: WhitePawn, b: WhiteQueen, wantFriendly: true},
		{a: BlackBishop, b: BlackKnight, wantFriendly: true},
		{a: None, b: BlackPawn},
		{a: WhitePawn, b: None},
		{a: Piece(Black), b: WhitePawn},
		{a: None, b: None},
	}

	for _, c := range cases {
		if got := IsEnemy(c.a, c.b); got != c.wantEnemy {
			t.Errorf("IsEnemy(%q, %q), want: %v got: %v", c.a, c.b, c.wantEnemy, got)
		}
		if got := IsFriendly(c.a, c.b); got != c.wantFriendly {
			t.Errorf("IsFriendly(%q, %q), want: %v got: %v", c.a, c.b, c.wantFriendly, got)
		}
	}
}

func TestSliders(t *testing.T) {
	cases := []struct {
		p                     Piece
		sliding, orth, diagon bool
	}{
		{p: WhiteQueen, sliding: true, orth: true, diagon: true},
		{p: BlackRook, sliding: true, orth: true},
		{p: WhiteBishop, sliding: true, diagon: true},
		{p: BlackKnight},
		{p: WhiteKing},
		{p: BlackPawn},
		{p: None},
	}

	for _, c := range cases {
		if got := c.p.IsSlidingPiece(); got != c.sliding {
			t.Errorf("%q IsSlidingPiece, want: %v got: %v", c.p, c.sliding, got)
		}
		if got := c.p.IsOrthogonalSlider(); got != c.orth {
			t.Errorf("%q IsOrthogonalSlider, want: %v got: %v", c.p, c.orth, got)
		}
		if got := c.p.IsDiagonalSlider(); got != c.diagon {
			t.Errorf("%q IsDiagonalSlider, want: %v got: %v", c.p, c.diagon, got)
		}
	}
}

func TestLetters(t *testing.T) {
	for _, l := range []byte("PNBRQKpnbrqk") {
		p, ok := FromLetter(l)
		if !ok {
			t.Fatalf("FromLetter(%c) not ok", l)
		}
		if p.Letter() != l {
			t.Errorf("round trip %c, got %c", l, p.Letter())
		}
	}

	for _, l := range []byte(" ?x1") {
		if _, ok := FromLetter(l); ok {
			t.Errorf("FromLetter(%q) should fail", l)
		}
	}

	if got := Make(Knight, Black); got != BlackKnight {
		t.Errorf("Make, want: %d got: %d", BlackKnight, got)
	}
}

func TestOpponent(t *testing.T) {
	if White.Opponent() != Black || Black.Opponent() != White {
		t.Error("Opponent mismatch")
	}
}
