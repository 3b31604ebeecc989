package board

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func squareNames(moves []int) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, squareName(m))
	}
	sort.Strings(names)
	return names
}

func mustSquare(t *testing.T, s string) int {
	t.Helper()
	sq, err := SquareToIndex(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func TestPseudoLegalMoves(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		origin string
		want   []string
	}{
		{
			name:   "queen in the open",
			fen:    "k7/8/8/8/3Q4/8/8/7K w - - 0 1",
			origin: "d4",
			want: []string{
				"a1", "a4", "a7", "b2", "b4", "b6", "c3", "c4", "c5",
				"d1", "d2", "d3", "d5", "d6", "d7", "d8",
				"e3", "e4", "e5", "f2", "f4", "f6", "g1", "g4", "g7", "h4", "h8",
			},
		},
		{
			name:   "rook on the h-file does not wrap",
			fen:    "k7/8/8/8/7R/8/8/K7 w - - 0 1",
			origin: "h4",
			want:   []string{"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h1", "h2", "h3", "h5", "h6", "h7", "h8"},
		},
		{
			name:   "rook on the a-file does not wrap",
			fen:    "7k/8/8/8/R7/8/8/7K w - - 0 1",
			origin: "a4",
			want:   []string{"a1", "a2", "a3", "a5", "a6", "a7", "a8", "b4", "c4", "d4", "e4", "f4", "g4", "h4"},
		},
		{
			name:   "bishop in the corner",
			fen:    "k7/8/8/8/8/8/8/B6K w - - 0 1",
			origin: "a1",
			want:   []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"},
		},
		{
			name:   "bishop on the h-file does not wrap mid ray",
			fen:    "k7/8/8/8/8/7B/8/K7 w - - 0 1",
			origin: "h3",
			want:   []string{"c8", "d7", "e6", "f1", "f5", "g2", "g4"},
		},
		{
			name:   "slider stops on own and enemy pieces",
			fen:    "k7/8/8/3p4/8/3R1P2/8/K7 w - - 0 1",
			origin: "d3",
			want:   []string{"a3", "b3", "c3", "d1", "d2", "d4", "d5", "e3"},
		},
		{
			name:   "knight in the corner",
			fen:    "k7/8/8/8/8/8/8/N6K w - - 0 1",
			origin: "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name:   "knight on the h-file",
			fen:    "7N/8/8/8/8/8/8/k6K w - - 0 1",
			origin: "h8",
			want:   []string{"f7", "g6"},
		},
		{
			name:   "knight captures but does not take own pieces",
			fen:    "k7/8/8/2p1P3/8/3N4/8/K7 w - - 0 1",
			origin: "d3",
			want:   []string{"b2", "b4", "c1", "c5", "e1", "f2", "f4"},
		},
		{
			name:   "pawn single and double step",
			fen:    StartPos,
			origin: "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "pawn double step blocked on the second square",
			fen:    "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			origin: "e2",
			want:   []string{"e3"},
		},
		{
			name:   "pawn blocked",
			fen:    "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1",
			origin: "e2",
			want:   nil,
		},
		{
			name:   "black pawn moves down the board",
			fen:    "4k3/3p4/4P3/8/8/8/8/4K3 b - - 0 1",
			origin: "d7",
			want:   []string{"d5", "d6", "e6"},
		},
		{
			name:   "pawn on the a-file captures one way only",
			fen:    "4k3/8/8/8/8/1p5p/P7/4K3 w - - 0 1",
			origin: "a2",
			want:   []string{"a3", "a4", "b3"},
		},
		{
			name:   "pawn on the h-file does not capture across the edge",
			fen:    "4k3/8/8/8/8/p5p1/7P/4K3 w - - 0 1",
			origin: "h2",
			want:   []string{"g3", "h3", "h4"},
		},
		{
			name:   "en passant target",
			fen:    "rnbqkbnr/pp2pppp/8/2ppP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			origin: "e5",
			want:   []string{"d6", "e6"},
		},
		{
			name:   "empty square",
			fen:    StartPos,
			origin: "e4",
			want:   nil,
		},
		{
			name:   "piece of the side not to move",
			fen:    StartPos,
			origin: "e7",
			want:   nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// arrange
			p := MustParse(c.fen)
			origin := mustSquare(t, c.origin)

			// act
			got := squareNames(p.PseudoLegalMoves(origin))

			// assert
			want := append([]string(nil), c.want...)
			sort.Strings(want)
			if len(want) == 0 && len(got) == 0 {
				return
			}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("want: %v got: %v", want, got)
			}
		})
	}
}

func TestPseudoLegalMoves_OutOfRange(t *testing.T) {
	p := MustParse(StartPos)
	for _, origin := range []int{-1, 64, NoSquare} {
		if got := p.PseudoLegalMoves(origin); len(got) != 0 {
			t.Errorf("origin %d, want none got %v", origin, got)
		}
	}
}

func TestLegalMoves_King(t *testing.T) {
	cases := []struct {
		fen         string
		startSquare string
		want        []string
	}{
		{
			fen:         "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"d2", "e2", "f2", "d1", "f1", "c1", "g1"},
		},
		{
			fen:         "1r2k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"d2", "e2", "f2", "d1", "f1", "c1", "g1"},
		},
		{
			fen:         "2r1k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"d2", "e2", "f2", "d1", "f1", "g1"},
		},
		{
			fen:         "3rk2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"e2", "f2", "f1", "g1"},
		},
		{
			fen:         "4k2r/4r3/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"d2", "f2", "d1", "f1"},
		},
		{
			fen:         "r3k1r1/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"c1", "d1", "d2", "e2", "f1", "f2"},
		},
		{
			fen:         "r3kr2/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"c1", "d1", "d2", "e2"},
		},
		{
			fen:         "r3k3/4r3/8/8/8/8/8/R3K2R w KQkq - 0 1",
			startSquare: "e1",
			want:        []string{"d1", "d2", "f1", "f2"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"c8", "d7", "d8", "e7", "f7", "f8", "g8"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/8/R3K1R1 b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"c8", "d7", "d8", "e7", "f7", "f8"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/8/R3KR2 b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"c8", "d7", "d8", "e7"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/8/1R2K2R b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"c8", "d7", "d8", "e7", "f7", "f8", "g8"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/8/2R1K2R b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"d7", "d8", "e7", "f7", "f8", "g8"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/8/3RK2R b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"e7", "f7", "f8", "g8"},
		},
		{
			fen:         "r3k2r/8/8/8/8/8/4R3/4K2R b KQkq - 0 1",
			startSquare: "e8",
			want:        []string{"d7", "d8", "f7", "f8"},
		},
		{
			fen:         "8/8/8/8/8/8/7p/2KR3k b - - 1 1",
			startSquare: "h1",
			want:        []string{"g2"},
		},
		{
			// rights without the rook on its corner do not castle
			fen:         "4k3/8/8/8/8/8/8/R3K3 w KQ - 0 1",
			startSquare: "e1",
			want:        []string{"c1", "d1", "d2", "e2", "f1", "f2"},
		},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %s", c.fen, strings.Join(c.want, " ")), func(t *testing.T) {
			// arrange
			p := MustParse(c.fen)
			startIndex := mustSquare(t, c.startSquare)

			// act
			got := squareNames(p.LegalMoves(startIndex))

			// assert
			want := append([]string(nil), c.want...)
			sort.Strings(want)
			if !reflect.DeepEqual(want, got) {
				t.Errorf("want: %v got: %v", want, got)
			}
		})
	}
}

func TestCastling_Kingside(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{name: "start position", fen: StartPos, want: false},
		{name: "f1 and g1 cleared", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1", want: true},
		{name: "right revoked", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w Qkq - 0 1", want: false},
		{name: "only g1 cleared", fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKB1R w KQkq - 0 1", want: false},
		{name: "bare", fen: "4k3/8/8/8/8/8/8/4K2R w K - 0 1", want: true},
		{name: "e1 attacked", fen: "4r1k1/8/8/8/8/8/8/4K2R w K - 0 1", want: false},
		{name: "f1 attacked", fen: "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", want: false},
		{name: "g1 attacked", fen: "4k1r1/8/8/8/8/8/8/4K2R w K - 0 1", want: false},
		{name: "h1 attacked", fen: "4k2r/8/8/8/8/8/8/4K2R w K - 0 1", want: true},
		{name: "g1 attacked by a pawn", fen: "4k3/8/8/8/8/8/5p2/4K2R w K - 0 1", want: false},
	}

	g1 := 6
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := MustParse(c.fen)

			got := false
			for _, to := range p.LegalMoves(4) {
				if to == g1 {
					got = true
				}
			}

			if got != c.want {
				t.Errorf("castling to g1, want: %v got: %v", c.want, got)
			}
		})
	}
}

func TestCastling_AfterKingMoved(t *testing.T) {
	p := MustParse("4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	for _, uci := range []string{"e1f1", "e8d8", "f1e1", "d8e8"} {
		m, err := ParseUCI(uci)
		if err != nil {
			t.Fatal(err)
		}
		p.ExecuteMove(m)
	}

	for _, to := range p.LegalMoves(4) {
		if to == 6 {
			t.Fatalf("king returned home but castled anyway: %s", p.FEN())
		}
	}
	if p.Castling != NoCastling {
		t.Errorf("want no rights, got %s", p.Castling)
	}
}
