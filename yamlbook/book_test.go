package yamlbook

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"chesscore/board"
)

const sampleBook = `
- fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
  moves:
    - move: d4
      cp: 25
    - move: e4
      cp: 30
      engine:
        id: sf15
        output:
          - log: {depth: 30, cp: 30, pv: e4 e5 Nf3}
- fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1
- fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -
  moves:
    - move: c5
      cp: -30
`

func TestParse(t *testing.T) {
	// act
	book, err := Parse([]byte(sampleBook))
	if err != nil {
		t.Fatal(err)
	}

	// assert
	if book.PosCount() != 2 || len(book.Positions) != 2 {
		t.Fatalf("want 2 positions, got %d/%d", book.PosCount(), len(book.Positions))
	}

	moves, ok := book.Get(board.StartPos)
	if !ok {
		t.Fatal("start position not found")
	}
	if moves[0].Move != "e4" || moves[1].Move != "d4" {
		t.Errorf("want moves sorted by eval, got %s %s", moves[0].Move, moves[1].Move)
	}

	// the e3 target cannot be captured, so both spellings are one position
	reply, ok := book.Get("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if !ok || len(reply) != 1 || reply[0].Move != "c5" {
		t.Errorf("unexpected reply moves: %v %v", reply, ok)
	}

	if err := book.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "bad fen",
			yaml: "- fen: not a position\n",
			want: ErrBadPosition,
		},
		{
			name: "duplicate with moves",
			yaml: "- fen: 4k3/8/8/8/8/8/8/4K3 w - - 0 1\n  moves: [{move: Kd2, cp: 0}]\n" +
				"- fen: 4k3/8/8/8/8/8/8/4K3 w - -\n  moves: [{move: Ke2, cp: 0}]\n",
			want: ErrDuplicatePosition,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse([]byte(c.yaml)); !errors.Is(err, c.want) {
				t.Errorf("want: %v got: %v", c.want, err)
			}
		})
	}
}

func TestValidate_IllegalMove(t *testing.T) {
	book := New("")
	if err := book.Add(board.StartPos, &Move{Move: "e5"}); err != nil {
		t.Fatal(err)
	}

	if err := book.Validate(); !errors.Is(err, ErrBadMove) {
		t.Errorf("want ErrBadMove, got %v", err)
	}
}

func TestBook_AddSaveLoad(t *testing.T) {
	// arrange
	filename := filepath.Join(t.TempDir(), "book.yaml")
	book := New(filename)

	// act
	if err := book.Add(board.StartPos, &Move{Move: "e4", CP: 30}, &Move{Move: "Nf3", CP: 20}); err != nil {
		t.Fatal(err)
	}
	if err := book.Add(board.StartPos, &Move{Move: "Nf3", CP: 40}); err != nil {
		t.Fatal(err)
	}
	if err := book.Add("4k3/8/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatal(err)
	}
	if err := book.Add("garbage", &Move{Move: "e4"}); !errors.Is(err, ErrBadPosition) {
		t.Errorf("want ErrBadPosition, got %v", err)
	}
	if err := book.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatal(err)
	}

	// assert
	moves, ok := loaded.Get(board.StartPos)
	if !ok {
		t.Fatal("start position not saved")
	}
	ucis, err := moves.UCIs()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"g1f3", "e2e4"}; !reflect.DeepEqual(want, ucis) {
		t.Errorf("want: %v got: %v", want, ucis)
	}
	if moves[0].CP != 40 {
		t.Errorf("Nf3 should have been replaced, cp: %d", moves[0].CP)
	}

	if need := loaded.NeedMoves(); len(need) != 1 || need[0] != "4k3/8/8/8/8/8/8/4K3 w - -" {
		t.Errorf("unexpected positions without moves: %v", need)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("want error naming the file, got %v", err)
	}
}

func TestBook_BestMove(t *testing.T) {
	book, err := Parse([]byte(sampleBook))
	if err != nil {
		t.Fatal(err)
	}

	move, ponder := book.BestMove(board.StartPos)
	if move == nil || move.Move != "e4" {
		t.Fatalf("want e4, got %v", move)
	}
	if ponder != "e7e5" {
		t.Errorf("want ponder e7e5, got '%s'", ponder)
	}

	if move, _ := book.BestMove("4k3/8/8/8/8/8/8/4K3 w - - 0 1"); move != nil {
		t.Errorf("unknown position returned %v", move)
	}

	var empty *Book
	if move, _ := empty.BestMove(board.StartPos); move != nil {
		t.Errorf("nil book returned %v", move)
	}
}

func TestBook_BestMove_Weighted(t *testing.T) {
	book := New("")
	err := book.Add(board.StartPos,
		&Move{Move: "d4", CP: 50},
		&Move{Move: "c4", Weight: 3, CP: 10},
	)
	if err != nil {
		t.Fatal(err)
	}

	// only weighted moves are drawn
	for i := 0; i < 20; i++ {
		if move, _ := book.BestMove(board.StartPos); move.Move != "c4" {
			t.Fatalf("want c4, got %s", move.Move)
		}
	}
}
