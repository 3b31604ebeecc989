package polyglot

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"chesscore/board"
)

// encode packs squares the way Polyglot does: to file, to rank, from file,
// from rank, promotion, three bits each.
func encode(t *testing.T, uci string) uint16 {
	t.Helper()

	m, err := board.ParseUCI(uci)
	if err != nil {
		t.Fatal(err)
	}
	return uint16(m.To%8) | uint16(m.To/8)<<3 | uint16(m.From%8)<<6 | uint16(m.From/8)<<9
}

func TestReadEntries_RoundTrip(t *testing.T) {
	// arrange
	entries := []Entry{
		{Key: 0x823c9b50fd114196, Move: 0x0d23, Weight: 7, Learn: 1},
		{Key: 0x463b96181691fc9c, Move: 0x031c, Weight: 120},
	}

	var buf bytes.Buffer
	if err := WriteEntries(&buf, entries); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 2*entrySize {
		t.Fatalf("want %d bytes, got %d", 2*entrySize, buf.Len())
	}

	// act
	got, err := ReadEntries(&buf)
	if err != nil {
		t.Fatal(err)
	}

	// assert: written sorted by key
	want := []Entry{entries[1], entries[0]}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestReadEntries_Truncated(t *testing.T) {
	data := make([]byte, entrySize+5)

	_, err := ReadEntries(bytes.NewReader(data))
	if !errors.Is(err, ErrShortEntry) {
		t.Errorf("want ErrShortEntry, got %v", err)
	}
}

func TestBook_Moves(t *testing.T) {
	// arrange
	start := board.MustParse(board.StartPos)
	key := Key(start)

	book := NewBook([]Entry{
		{Key: key, Move: encode(t, "d2d4"), Weight: 10},
		{Key: key, Move: encode(t, "e2e4"), Weight: 30},
		{Key: key, Move: encode(t, "e2e5"), Weight: 50}, // not legal, dropped
		{Key: key + 1, Move: encode(t, "c2c4"), Weight: 90},
	})

	// act
	moves := book.Moves(start)

	// assert
	var got []string
	for _, m := range moves {
		got = append(got, m.Move.UCI())
	}
	if want := []string{"e2e4", "d2d4"}; !reflect.DeepEqual(want, got) {
		t.Errorf("want: %v got: %v", want, got)
	}
	if book.PosCount() != 2 {
		t.Errorf("want 2 positions, got %d", book.PosCount())
	}

	var empty *Book
	if empty.Moves(start) != nil {
		t.Error("nil book should have no moves")
	}
}
