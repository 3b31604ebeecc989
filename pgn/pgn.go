// Package pgn reads games in Portable Game Notation and indexes the moves
// played from each position.
package pgn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"chesscore/board"
	"chesscore/piece"
)

type Database struct {
	Games []*Game
}

type Game struct {
	FEN   string
	Tags  map[string]string
	Moves []Move

	// Positions maps a position key to the moves played from it.
	Positions map[string][]Move
}

type Move struct {
	SAN string
	UCI string
}

func (g *Game) populatePositions() error {
	p, err := board.Parse(g.FEN)
	if err != nil {
		return err
	}

	pos := make(map[string][]Move, len(g.Moves))
	for _, move := range g.Moves {
		key := board.Key(p.FEN())
		pos[key] = append(pos[key], move)

		m, err := board.ParseUCI(move.UCI)
		if err != nil {
			return err
		}
		p.ExecuteMove(m)
	}

	g.Positions = pos
	return nil
}

// MostFrequentMove returns the SAN move played most often from fen across
// the database, or "-" if the position never occurs.
func (db *Database) MostFrequentMove(fen string) string {
	type moveFreq struct {
		san  string
		freq int
	}

	key := board.Key(fen)
	m := make(map[string]int)
	for _, game := range db.Games {
		for _, move := range game.Positions[key] {
			m[move.SAN]++
		}
	}

	var list []moveFreq
	for k, v := range m {
		list = append(list, moveFreq{san: k, freq: v})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].freq != list[j].freq {
			return list[i].freq > list[j].freq
		}
		return list[i].san < list[j].san
	})

	if len(list) == 0 {
		return "-"
	}

	return list[0].san
}

func LoadDatabase(filename string) (*Database, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	db, err := ReadDatabase(fp)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return db, nil
}

// ReadDatabase splits r into games and parses them concurrently. Games keep
// their order in the input.
func ReadDatabase(r io.Reader) (*Database, error) {
	texts, err := splitGames(r)
	if err != nil {
		return nil, err
	}

	games := make([]*Game, len(texts))
	errs := make([]error, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			games[i], errs[i] = ParseGame(text)
		}(i, text)
	}
	wg.Wait()

	var db Database
	for i, game := range games {
		if errs[i] != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, errs[i])
		}
		if len(game.Moves) != 0 {
			db.Games = append(db.Games, game)
		}
	}

	return &db, nil
}

func splitGames(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var (
		texts  []string
		pgn    strings.Builder
		isGame bool
	)

	addGame := func() {
		if pgn.Len() != 0 {
			texts = append(texts, pgn.String())
		}
		pgn.Reset()
		isGame = false
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[") && len(line) != 0 {
			isGame = true
		}

		if len(line) == 0 && isGame {
			addGame()
			continue
		}

		if pgn.Len() != 0 {
			pgn.WriteRune('\n')
		}
		pgn.WriteString(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	addGame()

	return texts, nil
}

func Tags(pgn string) map[string]string {
	m := make(map[string]string)
	lines := strings.Split(pgn, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}

		line = strings.Trim(line, "[]")
		key, value, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		m[key] = strings.Trim(value, `"`)
	}

	return m
}

// ParseGame reads the tags and movetext of one game. Comments, variations,
// NAGs and move numbers are skipped; every move must be legal.
func ParseGame(pgn string) (*Game, error) {
	game := &Game{FEN: board.StartPos, Tags: Tags(pgn)}
	if fen, ok := game.Tags["FEN"]; ok {
		game.FEN = fen
	}

	p, err := board.Parse(game.FEN)
	if err != nil {
		return nil, err
	}

	var movetext []string
	for _, line := range strings.Split(pgn, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") || strings.HasPrefix(line, "%") {
			continue
		}
		movetext = append(movetext, line)
	}

	var (
		inComment  bool
		variations int
	)
	for _, token := range tokenize(strings.Join(movetext, " ")) {
		switch {
		case inComment:
			inComment = token != "}"
			continue
		case token == "{":
			inComment = true
			continue
		case token == "(":
			variations++
			continue
		case token == ")":
			variations--
			continue
		case variations > 0:
			continue
		}

		switch token {
		case "1-0", "0-1", "1/2-1/2", "*":
			continue
		}
		if strings.HasPrefix(token, "$") {
			continue
		}

		san := token
		if i := strings.LastIndex(token, "."); i != -1 {
			if _, err := strconv.Atoi(strings.TrimRight(token[:i+1], ".")); err != nil {
				return nil, fmt.Errorf("move number '%s': %w", token, err)
			}
			san = token[i+1:]
			if san == "" {
				continue
			}
		}

		m, err := p.ParseSAN(san)
		if err != nil {
			return nil, fmt.Errorf("full_move: %d color: '%s': %w", p.FullmoveNumber, p.SideToMove, err)
		}
		if m.Promotion.Type() == piece.None && p.IsPromotion(m) {
			m.Promotion = piece.Queen
		}

		game.Moves = append(game.Moves, Move{SAN: p.SAN(m), UCI: m.UCI()})
		p.ExecuteMove(m)
	}

	if err := game.populatePositions(); err != nil {
		return nil, err
	}

	return game, nil
}

// tokenize splits movetext on whitespace, keeping braces and parentheses as
// tokens of their own.
func tokenize(s string) []string {
	var tokens []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() != 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}

	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			flush()
		case '{', '}', '(', ')':
			flush()
			tokens = append(tokens, string(r))
		default:
			sb.WriteRune(r)
		}
	}
	flush()

	return tokens
}
