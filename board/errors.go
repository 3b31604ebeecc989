package board

import "errors"

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move text")
	ErrMalformedFEN  = errors.New("malformed fen")
	ErrNoKing        = errors.New("no king on board")
)
