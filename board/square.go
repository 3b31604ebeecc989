package board

import "fmt"

// NoSquare marks an absent en passant target.
const NoSquare = -1

// SquareToIndex converts algebraic text such as "e4" to rank*8+file.
func SquareToIndex(s string) (int, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: '%s' must be a file and a rank", ErrInvalidSquare, s)
	}

	file := lower(s[0])
	rank := s[1]

	if file < 'a' || file > 'h' {
		return NoSquare, fmt.Errorf("%w: '%s' file must be a-h", ErrInvalidSquare, s)
	}
	if rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: '%s' rank must be 1-8", ErrInvalidSquare, s)
	}

	return int(rank-'1')*8 + int(file-'a'), nil
}

// IndexToSquare converts 0..63 to algebraic text.
func IndexToSquare(idx int) (string, error) {
	if !onBoard(idx) {
		return "", fmt.Errorf("%w: index %d must be between 0 and 63", ErrInvalidSquare, idx)
	}
	return squareName(idx), nil
}

func squareName(idx int) string {
	return string([]byte{byte('a' + idx%8), byte('1' + idx/8)})
}

func onBoard(idx int) bool {
	return idx >= 0 && idx < 64
}

func fileDistance(a, b int) int {
	return abs(a%8 - b%8)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
