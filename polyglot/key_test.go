package polyglot

import (
	"strings"
	"testing"

	"chesscore/board"
)

func play(t *testing.T, moves string) *board.Position {
	t.Helper()

	pos := board.MustParse(board.StartPos)
	for _, uci := range strings.Fields(moves) {
		m, err := board.ParseUCI(uci)
		if err != nil {
			t.Fatal(err)
		}
		if !pos.IsLegal(m) {
			t.Fatalf("%s is not legal in %s", uci, pos.FEN())
		}
		pos.ExecuteMove(m)
	}
	return pos
}

func TestKey(t *testing.T) {
	// published Polyglot test vectors
	cases := []struct {
		moves string
		want  uint64
	}{
		{moves: "", want: 0x463b96181691fc9c},
		{moves: "e2e4", want: 0x823c9b50fd114196},
		{moves: "e2e4 d7d5", want: 0x0756b94461c50fb0},
		{moves: "e2e4 d7d5 e4e5", want: 0x662fafb965db29d4},
		{moves: "e2e4 d7d5 e4e5 f7f5", want: 0x22a48b5a8e47ff78},
		{moves: "e2e4 d7d5 e4e5 f7f5 e1e2", want: 0x652a607ca3f242c1},
		{moves: "e2e4 d7d5 e4e5 f7f5 e1e2 e8f7", want: 0x00fdd303c946bdd9},
		{moves: "a2a4 b7b5 h2h4 b5b4 c2c4", want: 0x3c8123ea7b067637},
		{moves: "a2a4 b7b5 h2h4 b5b4 c2c4 b4c3 a1a3", want: 0x5c3f9b829b279560},
	}

	for _, c := range cases {
		t.Run(c.moves, func(t *testing.T) {
			// arrange
			pos := play(t, c.moves)

			// act
			got := Key(pos)

			// assert
			if c.want != got {
				t.Errorf("want: %016x got: %016x fen: %s", c.want, got, pos.FEN())
			}
		})
	}
}
