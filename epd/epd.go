// Package epd reads and writes Extended Position Description files: four FEN
// fields followed by semicolon-terminated opcodes.
package epd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"chesscore/board"
	"chesscore/yamlbook"
)

const (
	OpCodeAnalysisCountDepth   = "acd"
	OpCodeAnalysisCountNodes   = "acn"
	OpCodeAnalysisCountSeconds = "acs"
	OpCodeBestMove             = "bm"
	OpCodeCentipawnEvaluation  = "ce"
	OpCodeDirectMate           = "dm"
	OpCodeFullmoveNumber       = "fmvn"
	OpCodeHalfmoveClock        = "hmvc"
	OpCodeID                   = "id"
	OpCodePredictedMove        = "pm"
	OpCodePredictedVariation   = "pv"
	OpCodeSuppliedMove         = "sm"
)

var ErrNoPosition = errors.New("epd: line has no position")

type File struct {
	Lines []*LineItem
}

func (f *File) Contains(fenKey string) bool {
	return f.Find(fenKey) != ""
}

func (f *File) Add(fenKey string, ops ...Operation) *LineItem {
	fenKey = board.Key(fenKey)
	line := &LineItem{FEN: fenKey}
	line.Ops = append(line.Ops, ops...)
	f.Lines = append(f.Lines, line)
	line.RawText = line.String()
	return line
}

func (f *File) Find(fenKey string) string {
	fenKey = board.Key(fenKey)
	if len(fenKey) == 0 {
		return ""
	}

	for _, item := range f.Lines {
		if item.FEN == fenKey {
			return item.String()
		}
	}

	return ""
}

// Positions returns the lines that carry a position.
func (f *File) Positions() []*LineItem {
	var items []*LineItem
	for _, item := range f.Lines {
		if item.FEN != "" {
			items = append(items, item)
		}
	}
	return items
}

// Dedupe drops a line when an earlier line has the same position and starts
// with the same text. It returns the number of lines removed.
func (f *File) Dedupe() int {
	seen := make(map[string][]int)

	removed := 0
	for i := 0; i < len(f.Lines); i++ {
		line := f.Lines[i]
		if line.FEN == "" {
			continue
		}

		dupe := false
		for _, prevIdx := range seen[line.FEN] {
			if strings.HasPrefix(f.Lines[prevIdx].String(), line.String()) {
				dupe = true
				break
			}
		}

		if dupe {
			f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
			i--
			removed++
			continue
		}

		seen[line.FEN] = append(seen[line.FEN], i)
	}

	return removed
}

// Save writes the file. With backup set, an existing file is first renamed
// to a timestamped copy.
func (f *File) Save(filename string, backup bool) error {
	if backup && fileExists(filename) {
		ext := filepath.Ext(filename)
		backupFilename := fmt.Sprintf("%s-%d%s.backup", strings.TrimSuffix(filename, ext), time.Now().UnixMilli(), ext)
		if err := os.Rename(filename, backupFilename); err != nil {
			return fmt.Errorf("error creating backup file '%s': %w", backupFilename, err)
		}
	}
	if err := os.WriteFile(filename, []byte(f.String()), 0644); err != nil {
		return fmt.Errorf("write file '%s': %w", filename, err)
	}
	return nil
}

func (f *File) String() string {
	var sb strings.Builder
	for _, line := range f.Lines {
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AsYAMLBook turns every line with a best move into a book entry. The best
// move and predicted variation are SAN, as EPD writes them.
func (f *File) AsYAMLBook(filename string) (*yamlbook.Book, error) {
	book := yamlbook.New(filename)
	ts := time.Now().Unix()

	for _, line := range f.Positions() {
		bm := line.BestMove()
		if bm == "" {
			if err := book.Add(line.FEN); err != nil {
				return nil, err
			}
			continue
		}

		pv := line.GetString(OpCodePredictedVariation)
		if pv == "" {
			pv = bm
		}

		move := &yamlbook.Move{
			Move: bm,
			CP:   line.CE(),
			Mate: line.DM(),
			TS:   ts,
			Engine: &yamlbook.Engine{
				ID: line.GetString(OpCodeID),
			},
		}
		move.Engine.Log(yamlbook.LogLine{
			Depth: line.ACD(),
			Nodes: line.GetInt(OpCodeAnalysisCountNodes),
			CP:    move.CP,
			Mate:  move.Mate,
			Time:  line.GetInt(OpCodeAnalysisCountSeconds) * 1000,
			PV:    pv,
		})

		if err := book.Add(line.FEN, move); err != nil {
			return nil, err
		}
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

type LineItem struct {
	FEN     string
	Ops     []Operation
	RawText string
}

func (line *LineItem) String() string {
	if line.FEN == "" {
		return line.RawText
	}

	var sb strings.Builder
	sb.WriteString(line.FEN)
	for _, op := range line.Ops {
		sb.WriteByte(' ')
		sb.WriteString(op.OpCode)
		if op.Value != "" {
			sb.WriteByte(' ')
			sb.WriteString(op.Value)
		}
		sb.WriteByte(';')
	}

	return sb.String()
}

// Position builds the full position, taking the clocks from the hmvc and
// fmvn opcodes (0 and 1 when absent).
func (line *LineItem) Position() (*board.Position, error) {
	if line.FEN == "" {
		return nil, ErrNoPosition
	}

	fullmove := 1
	if line.Has(OpCodeFullmoveNumber) {
		fullmove = line.GetInt(OpCodeFullmoveNumber)
	}

	return board.Parse(fmt.Sprintf("%s %d %d", line.FEN, line.GetInt(OpCodeHalfmoveClock), fullmove))
}

// PerftDepth is a "D<n> <nodes>" opcode.
type PerftDepth struct {
	Depth int
	Nodes uint64
}

// PerftDepths returns the expected perft counts on the line, shallowest first.
func (line *LineItem) PerftDepths() []PerftDepth {
	var depths []PerftDepth
	for _, op := range line.Ops {
		if len(op.OpCode) < 2 || op.OpCode[0] != 'D' {
			continue
		}
		depth, err := strconv.Atoi(op.OpCode[1:])
		if err != nil || depth <= 0 {
			continue
		}
		nodes, err := strconv.ParseUint(op.Value, 10, 64)
		if err != nil {
			continue
		}
		depths = append(depths, PerftDepth{Depth: depth, Nodes: nodes})
	}

	sort.Slice(depths, func(i, j int) bool { return depths[i].Depth < depths[j].Depth })

	return depths
}

// ACD returns the value for 'acd', the analysis count depth.
func (line *LineItem) ACD() int {
	return line.GetInt(OpCodeAnalysisCountDepth)
}

func (line *LineItem) CE() int {
	return line.GetInt(OpCodeCentipawnEvaluation)
}

func (line *LineItem) DM() int {
	return line.GetInt(OpCodeDirectMate)
}

func (line *LineItem) BestMove() string {
	return line.GetString(OpCodeBestMove)
}

func (line *LineItem) Has(opCode string) bool {
	for _, op := range line.Ops {
		if op.OpCode == opCode {
			return true
		}
	}
	return false
}

func (line *LineItem) GetInt(opCode string) int {
	for _, op := range line.Ops {
		if op.OpCode == opCode {
			return op.atoi()
		}
	}
	return 0
}

func (line *LineItem) GetString(opCode string) string {
	for _, op := range line.Ops {
		if op.OpCode == opCode {
			return strings.Trim(op.Value, `"`)
		}
	}
	return ""
}

func (line *LineItem) SetInt(opCode string, value int) {
	val := strconv.Itoa(value)
	line.SetString(opCode, val)
}

func (line *LineItem) SetString(opCode, value string) {
	for i, op := range line.Ops {
		if op.OpCode == opCode {
			line.Ops[i].Value = value
			return
		}
	}

	line.Ops = append(line.Ops, Operation{OpCode: opCode, Value: value})
}

func (line *LineItem) Remove(opCode string) {
	for i := 0; i < len(line.Ops); i++ {
		if line.Ops[i].OpCode == opCode {
			line.Ops = append(line.Ops[:i], line.Ops[i+1:]...)
			i--
		}
	}
}

func (line *LineItem) parseRawText() {
	// consume FEN (up to 4th space)
	var (
		spaces          int
		charsInFENField int
		rest            string
	)

	for i := 0; i < len(line.RawText); i++ {
		if line.RawText[i] == ' ' || (line.RawText[i] == ';' && spaces == 3) {
			spaces++
			charsInFENField = 0
			if spaces == 4 {
				// remove the en-passant square where it doesn't affect the position (domain reduction)
				line.FEN = board.Key(line.RawText[:i])
				rest = line.RawText[i+1:]
				break
			}
		} else {
			charsInFENField++
		}
	}

	if spaces < 4 {
		if spaces == 3 && charsInFENField > 0 {
			line.FEN = board.Key(line.RawText)
		}
		return
	}

	rest = line.parseMoveClocks(rest)

	// TODO: handle quoted strings containing ';'
	for _, section := range strings.Split(rest, ";") {
		section = strings.TrimSpace(section)

		parts := strings.SplitN(section, " ", 2)

		opCode := strings.TrimSpace(parts[0])
		if opCode == "" {
			continue
		}
		op := Operation{OpCode: opCode}

		if len(parts) == 2 {
			op.Value = strings.TrimSpace(parts[1])
		}
		line.Ops = append(line.Ops, op)
	}
}

// parseMoveClocks accepts the FEN clock fields some perft suites leave
// between the position and the first opcode, storing them as hmvc and fmvn.
func (line *LineItem) parseMoveClocks(rest string) string {
	head, tail, _ := strings.Cut(rest, ";")
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return rest
	}

	halfmove, err1 := strconv.Atoi(fields[0])
	fullmove, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return rest
	}

	line.SetInt(OpCodeHalfmoveClock, halfmove)
	line.SetInt(OpCodeFullmoveNumber, fullmove)

	return tail
}

type Operation struct {
	OpCode string
	Value  string
}

func (op Operation) atoi() int {
	n, err := strconv.Atoi(strings.Trim(op.Value, `"`))
	if err != nil {
		return 0
	}
	return n
}

func LoadFile(filename string) (*File, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("file '%s': %w", filename, err)
	}

	return ParseText(string(b)), nil
}

func New() *File {
	return &File{}
}

func ParseText(text string) *File {
	file := New()

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		// skip the last empty line
		if len(line) == 0 && i == len(lines)-1 {
			break
		}
		item := LineItem{RawText: line}
		item.parseRawText()

		file.Lines = append(file.Lines, &item)
	}

	return file
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}
