package polyglot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/slices"

	"chesscore/board"
)

const entrySize = 16

var ErrShortEntry = errors.New("polyglot: truncated entry")

// Entry is one 16-byte record of a Polyglot book.
type Entry struct {
	Key    uint64
	Move   uint16
	Weight uint16
	Learn  uint32
}

// BookMove is a decoded book move with its weight.
type BookMove struct {
	Move   board.Move
	Weight uint16
}

type Book struct {
	entries map[uint64][]Entry
}

func NewBook(entries []Entry) *Book {
	book := Book{entries: make(map[uint64][]Entry)}
	for _, entry := range entries {
		book.entries[entry.Key] = append(book.entries[entry.Key], entry)
	}
	return &book
}

func LoadBook(filename string) (*Book, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	entries, err := ReadEntries(fp)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}

	return NewBook(entries), nil
}

// ReadEntries reads big-endian Polyglot records until EOF.
func ReadEntries(r io.Reader) ([]Entry, error) {
	br := bufio.NewReaderSize(r, 16384)
	buf := make([]byte, entrySize)

	var entries []Entry
	for {
		_, err := io.ReadFull(br, buf)
		if err == io.EOF {
			break
		} else if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: after %d entries", ErrShortEntry, len(entries))
		} else if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{
			Key:    binary.BigEndian.Uint64(buf[0:8]),
			Move:   binary.BigEndian.Uint16(buf[8:10]),
			Weight: binary.BigEndian.Uint16(buf[10:12]),
			Learn:  binary.BigEndian.Uint32(buf[12:16]),
		})
	}

	return entries, nil
}

// WriteEntries writes records in book order: sorted by key.
func WriteEntries(w io.Writer, entries []Entry) error {
	sorted := slices.Clone(entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	buf := make([]byte, entrySize)
	for _, entry := range sorted {
		binary.BigEndian.PutUint64(buf[0:8], entry.Key)
		binary.BigEndian.PutUint16(buf[8:10], entry.Move)
		binary.BigEndian.PutUint16(buf[10:12], entry.Weight)
		binary.BigEndian.PutUint32(buf[12:16], entry.Learn)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// Moves returns the book moves for pos that are legal there, heaviest first.
func (b *Book) Moves(pos *board.Position) []BookMove {
	if b == nil {
		return nil
	}

	var moves []BookMove
	for _, entry := range b.entries[Key(pos)] {
		m := DecodeMove(pos, entry.Move)
		if !pos.IsLegal(m) {
			continue
		}
		moves = append(moves, BookMove{Move: m, Weight: entry.Weight})
	}

	sort.SliceStable(moves, func(i, j int) bool { return moves[i].Weight > moves[j].Weight })

	return moves
}

func (b *Book) PosCount() int {
	return len(b.entries)
}
