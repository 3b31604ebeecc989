package yamlbook

import (
	"errors"
	"strings"

	"chesscore/board"
)

var errNoPosition = errors.New("move is not attached to a book position")

// Move is a book move in SAN with its evaluation from the side to move's
// point of view.
type Move struct {
	Move   string  `yaml:"move,omitempty"`
	Weight int     `yaml:"weight,omitempty"`
	CP     int     `yaml:"cp"`
	Mate   int     `yaml:"mate,omitempty"`
	TS     int64   `yaml:"ts,omitempty"`
	Engine *Engine `yaml:"engine,omitempty"`

	uci string
	fen string
}

// UCI resolves the SAN move in its position.
func (m *Move) UCI() (string, error) {
	if m.uci != "" {
		return m.uci, nil
	}

	if m.fen == "" {
		return "", errNoPosition
	}

	p, err := board.Parse(m.fen + " 0 1")
	if err != nil {
		return "", err
	}

	move, err := p.ParseSAN(m.Move)
	if err != nil {
		return "", err
	}

	m.uci = move.UCI()

	return m.uci, nil
}

func (m *Move) GetLastLogLineFor(move string) LogLine {
	if m.Engine == nil {
		return LogLine{}
	}

	for i := len(m.Engine.Output) - 1; i >= 0; i-- {
		pvSANs := strings.Fields(m.Engine.Output[i].Line.PV)
		if len(pvSANs) == 0 {
			continue
		}
		if pvSANs[0] == move {
			return m.Engine.Output[i].Line
		}
	}

	return LogLine{}
}

func (m *Move) FEN() string {
	return m.fen
}
