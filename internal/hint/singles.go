package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

// Singles implements a minimal Hinter that suggests naked singles:
// empty cells with exactly one legal digit left.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single on the board, if any. The MRV
// scan early-exits on a one-option cell, so when a single exists the
// one returned is the first in row-major order.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	r, c, options := solver.FindNextCell(&b.Values)
	if r == -1 || options != 1 {
		return domain.Hint{}, false, nil
	}
	for v := uint8(1); v <= 9; v++ {
		if solver.IsValid(&b.Values, r, c, v) {
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", v),
				Cells:   []domain.CellCoord{{Row: r, Col: c}},
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
