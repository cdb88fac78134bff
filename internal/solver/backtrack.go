package solver

import "context"

// SolveBoard fills the grid in place by depth-first search over the
// cells in row-major order, starting at (r, c). Pass (0, 0) to solve a
// whole board. It returns true once every cell is filled and false if
// no completion exists, in which case the grid is restored to its input
// state.
func SolveBoard(g *[9][9]uint8, r, c int) bool {
	nodes := 0
	return solveFrom(context.Background(), g, r, c, &nodes)
}

// solveFrom is the recursive worker behind SolveBoard and
// BacktrackingSolver. The cursor advances along columns, wrapping to
// the next row at c == 9; r == 9 means the whole grid is consumed.
// nodes counts candidate digits tried.
func solveFrom(ctx context.Context, g *[9][9]uint8, r, c int, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	if r == 9 {
		return true
	}
	if c == 9 {
		return solveFrom(ctx, g, r+1, 0, nodes)
	}
	if g[r][c] != 0 {
		return solveFrom(ctx, g, r, c+1, nodes)
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if IsValid(g, r, c, v) {
			g[r][c] = v
			if solveFrom(ctx, g, r, c+1, nodes) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}
