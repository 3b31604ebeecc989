package yamlbook

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"chesscore/board"
)

var (
	ErrDuplicatePosition = errors.New("position listed twice with moves")
	ErrBadPosition       = errors.New("bad book position")
	ErrBadMove           = errors.New("bad book move")
)

type Book struct {
	Positions []*Position

	posMap   map[string]*Position
	filename string
}

type Position struct {
	FEN   string `yaml:"fen"`
	Moves Moves  `yaml:"moves,omitempty"`
}

// New returns an empty book that Save writes to filename.
func New(filename string) *Book {
	return &Book{
		posMap:   make(map[string]*Position),
		filename: filename,
	}
}

func Load(filename string) (*Book, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}

	book, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	book.filename = filename

	return book, nil
}

// Parse reads a book from YAML. Positions are re-keyed with board.Key; a
// position listed twice is dropped unless both copies carry moves.
func Parse(data []byte) (*Book, error) {
	book := New("")

	if err := yaml.Unmarshal(data, &book.Positions); err != nil {
		return nil, err
	}

	for i := 0; i < len(book.Positions); i++ {
		pos := book.Positions[i]

		key := board.Key(pos.FEN)
		if key == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrBadPosition, pos.FEN)
		}
		pos.FEN = key

		prev, found := book.posMap[key]
		if !found {
			book.posMap[key] = pos
			continue
		}
		if len(pos.Moves) > 0 && len(prev.Moves) > 0 {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicatePosition, key)
		}
		if len(pos.Moves) > 0 {
			prev.Moves = pos.Moves
		}
		book.Positions = append(book.Positions[:i], book.Positions[i+1:]...)
		i--
	}

	for _, pos := range book.Positions {
		for _, move := range pos.Moves {
			move.fen = pos.FEN
		}
		sort.Stable(pos.Moves)
	}

	return book, nil
}

// Validate checks that every position parses and every move is legal in it.
func (b *Book) Validate() error {
	for _, pos := range b.Positions {
		p, err := board.Parse(pos.FEN + " 0 1")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadPosition, err)
		}

		for _, move := range pos.Moves {
			if move.Move == "" {
				continue
			}
			if _, err := p.ParseSAN(move.Move); err != nil {
				return fmt.Errorf("%w: %v", ErrBadMove, err)
			}
		}
	}

	return nil
}

func (b *Book) Get(fenKey string) (Moves, bool) {
	fenKey = board.Key(fenKey)

	position, ok := b.posMap[fenKey]
	if !ok {
		return nil, false
	}

	result := make(Moves, 0, len(position.Moves))

	for i := 0; i < len(position.Moves); i++ {
		position.Moves[i].fen = position.FEN
		if position.Moves[i].Move != "" {
			result = append(result, position.Moves[i])
		}
	}

	if len(result) == 0 {
		return nil, false
	}

	return result, true
}

// Add merges moves into the position, replacing entries with the same SAN.
func (b *Book) Add(fen string, moves ...*Move) error {
	fenKey := board.Key(fen)
	if fenKey == "" {
		return fmt.Errorf("%w: '%s'", ErrBadPosition, fen)
	}

	position, ok := b.posMap[fenKey]
	if !ok {
		position = &Position{FEN: fenKey}
		b.posMap[fenKey] = position
		b.Positions = append(b.Positions, position)
	}

	for _, move := range moves {
		move.fen = fenKey
		move.uci = ""
	}

	// clobber where move is the same
	for i := 0; i < len(position.Moves); i++ {
		for j := 0; j < len(moves); j++ {
			if moves[j].Move != position.Moves[i].Move {
				continue
			}

			position.Moves[i] = moves[j]
			moves = append(moves[:j], moves[j+1:]...)
			break
		}
	}

	if len(moves) > 0 {
		position.Moves = append(position.Moves, moves...)
	}
	sort.Stable(position.Moves)

	return nil
}

func (b *Book) YAML() ([]byte, error) {
	// remove blank moves (and any other data they might contain)
	for _, pos := range b.Positions {
		for i := 0; i < len(pos.Moves); i++ {
			if pos.Moves[i].Move == "" {
				pos.Moves = append(pos.Moves[:i], pos.Moves[i+1:]...)
				i--
				continue
			}
		}

		if len(pos.Moves) == 0 {
			pos.Moves = nil
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b.Positions); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (b *Book) Save() error {
	return b.SaveAs(b.filename)
}

func (b *Book) SaveAs(filename string) error {
	data, err := b.YAML()
	if err != nil {
		return fmt.Errorf("'%s': %w", filename, err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file '%s': %w", filename, err)
	}

	b.filename = filename
	return nil
}

// BestMove picks a move for fenPos and the expected reply, if the stored
// principal variation has one. Weighted moves are drawn in proportion to their
// weight; otherwise one of the moves tied on the best evaluation is drawn.
func (b *Book) BestMove(fenPos string) (*Move, string) {
	if b == nil || b.posMap == nil {
		return nil, ""
	}

	fenKey := board.Key(fenPos)
	pos, ok := b.posMap[fenKey]
	if !ok {
		return nil, ""
	}

	sort.Stable(pos.Moves)
	moves := pos.Moves

	if len(moves) == 0 {
		return nil, ""
	}

	bestMove := moves[0]

	if bestMove.Weight == 0 {
		i := 1
		for ; i < len(moves); i++ {
			if moves[i].CP != bestMove.CP || moves[i].Mate != bestMove.Mate {
				break
			}
		}
		if i > 1 {
			bestMove = moves[rand.Intn(i)]
		}
	} else {
		type weightedMove struct {
			start int
			end   int
			index int
		}
		var deck []weightedMove

		sum := 0
		for i := 0; i < len(moves); i++ {
			if moves[i].Weight <= 0 {
				break
			}

			start := sum

			sum += moves[i].Weight
			end := sum - 1

			deck = append(deck, weightedMove{start: start, end: end, index: i})
		}

		num := rand.Intn(sum)
		for _, card := range deck {
			if card.start <= num && card.end >= num {
				bestMove = moves[card.index]
				break
			}
		}
	}

	bestMove.fen = fenKey

	line := bestMove.GetLastLogLineFor(bestMove.Move)
	pvSANs := strings.Fields(line.PV)
	if len(pvSANs) < 2 {
		return bestMove, ""
	}

	p, err := board.Parse(fenKey + " 0 1")
	if err != nil {
		return bestMove, ""
	}
	m, err := p.ParseSAN(pvSANs[0])
	if err != nil {
		return bestMove, ""
	}
	p.ExecuteMove(m)

	ponder, err := p.ParseSAN(pvSANs[1])
	if err != nil {
		return bestMove, ""
	}

	return bestMove, ponder.UCI()
}

func (b *Book) PosCount() int {
	return len(b.posMap)
}

// NeedMoves lists the positions that have no moves yet.
func (b *Book) NeedMoves() []string {
	var fens []string

	for _, pos := range b.Positions {
		if len(pos.Moves) == 0 {
			fens = append(fens, pos.FEN)
		}
	}

	return fens
}
