package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator checks row, column, and box uniqueness with one
// bitmask pass per unit, ignoring empty cells.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the board is free of conflicts. For every
// digit that repeats within a unit, the later occurrence is returned
// as a conflict coordinate.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for u := 0; u < 27; u++ {
		seen := 0
		for i := 0; i < 9; i++ {
			r, c := unitCell(u, i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// unitCell maps unit u and position i to a cell coordinate. Units 0-8
// are rows, 9-17 columns, 18-26 the 3x3 boxes in row-major box order.
func unitCell(u, i int) (int, int) {
	switch {
	case u < 9:
		return u, i
	case u < 18:
		return i, u - 9
	default:
		b := u - 18
		return (b/3)*3 + i/3, (b%3)*3 + i%3
	}
}
