// Package game holds one game's position and lets a single room play moves
// on it. Every method is safe for concurrent use.
package game

import (
	"fmt"
	"log"
	"sync"

	"chesscore/board"
	"chesscore/piece"
)

type Game struct {
	sync.Mutex

	pos     *board.Position
	status  board.Status
	history []string
	logger  *log.Logger
}

type Option func(*Game)

// WithLogger sends move and result messages to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New starts a game from fen. A position without both kings is rejected.
func New(fen string, opts ...Option) (*Game, error) {
	pos, err := board.Parse(fen)
	if err != nil {
		return nil, err
	}

	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		if _, err := pos.KingSquare(c); err != nil {
			return nil, err
		}
	}

	status, err := pos.Status()
	if err != nil {
		return nil, err
	}

	g := &Game{pos: pos, status: status}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Legal returns the destinations the piece on origin may move to. It is empty
// once the game is over.
func (g *Game) Legal(origin int) []int {
	g.Lock()
	defer g.Unlock()

	if g.status.Terminal() {
		return nil
	}
	return g.pos.LegalMoves(origin)
}

// Play applies m for the side to move.
func (g *Game) Play(m board.Move) error {
	g.Lock()
	defer g.Unlock()

	return g.play(m)
}

// PlayUCI applies a move in coordinate notation, the form moves take between
// the two players.
func (g *Game) PlayUCI(uci string) error {
	m, err := board.ParseUCI(uci)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}

	g.Lock()
	defer g.Unlock()

	return g.play(m)
}

// PlaySAN applies a move in standard algebraic notation.
func (g *Game) PlaySAN(san string) error {
	g.Lock()
	defer g.Unlock()

	if g.status.Terminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, g.status)
	}

	m, err := g.pos.ParseSAN(san)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}

	return g.play(m)
}

func (g *Game) play(m board.Move) error {
	if g.status.Terminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, g.status)
	}

	if !g.pos.IsLegal(m) {
		return fmt.Errorf("%w: '%s' in %s", ErrIllegalMove, m, g.pos.FEN())
	}

	// record the promotion actually made
	if m.Promotion.Type() == piece.None && g.pos.IsPromotion(m) {
		m.Promotion = piece.Queen
	}

	san := g.pos.SAN(m)
	mover := g.pos.SideToMove
	g.pos.ExecuteMove(m)
	g.history = append(g.history, m.UCI())

	status, err := g.pos.Status()
	if err != nil {
		return err
	}
	g.status = status

	g.logf("%d. %s %s (%s)", len(g.history), mover, san, m)
	if status.Terminal() {
		g.logf("%s %s", status, g.result())
	}

	return nil
}

func (g *Game) Squares() board.Board {
	g.Lock()
	defer g.Unlock()
	return g.pos.Squares
}

func (g *Game) SideToMove() piece.Color {
	g.Lock()
	defer g.Unlock()
	return g.pos.SideToMove
}

func (g *Game) Status() board.Status {
	g.Lock()
	defer g.Unlock()
	return g.status
}

// Result is the PGN result tag: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	g.Lock()
	defer g.Unlock()
	return g.result()
}

func (g *Game) result() string {
	switch g.status {
	case board.Checkmate:
		if g.pos.SideToMove == piece.White {
			return "0-1"
		}
		return "1-0"
	case board.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

func (g *Game) FEN() string {
	g.Lock()
	defer g.Unlock()
	return g.pos.FEN()
}

// Position returns a copy of the current position.
func (g *Game) Position() *board.Position {
	g.Lock()
	defer g.Unlock()
	return g.pos.Clone()
}

// History lists the moves played so far in coordinate notation.
func (g *Game) History() []string {
	g.Lock()
	defer g.Unlock()

	history := make([]string, len(g.history))
	copy(history, g.history)
	return history
}

func (g *Game) logf(format string, v ...interface{}) {
	if g.logger == nil {
		return
	}
	g.logger.Printf(format, v...)
}
