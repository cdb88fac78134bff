package domain

import (
	"fmt"
	"strings"
)

// Parse reads a board from text. Cells are listed in row-major order:
// '1'-'9' for digits, '0' or '.' for empty. Whitespace and the box
// decoration printed by String are ignored, so a single 81-character
// line, a 9-line layout, and String output are all accepted.
func Parse(s string) (*Board, error) {
	b := &Board{}
	n := 0
	for _, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			if n >= 81 {
				return nil, fmt.Errorf("board has more than 81 cells")
			}
			n++
		case ch >= '1' && ch <= '9':
			if n >= 81 {
				return nil, fmt.Errorf("board has more than 81 cells")
			}
			b.Values[n/9][n%9] = uint8(ch - '0')
			n++
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			// skip
		case ch == '|' || ch == '-' || ch == '+':
			// grid decoration, as printed by String
		default:
			return nil, fmt.Errorf("invalid character %q at cell %d", ch, n)
		}
	}
	if n != 81 {
		return nil, fmt.Errorf("board has %d cells, want 81", n)
	}
	return b, nil
}

// String renders the board with 3x3 box separators; empty cells print
// as dots.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 {
				if c%3 == 0 {
					sb.WriteString(" | ")
				} else {
					sb.WriteByte(' ')
				}
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
