package solver

import "context"

// FindNextCell scans the grid for the empty cell with the fewest legal
// digits (minimum remaining values) and returns it with its option
// count. Ties keep the first cell in row-major order, and the scan
// stops as soon as a cell with exactly one option turns up, since
// nothing can beat it. A full grid yields the sentinel (-1, -1, 0).
//
// A returned count of 0 means the branch is dead: the cell is handed
// back as-is and the caller's digit loop will find nothing to place.
func FindNextCell(g *[9][9]uint8) (row, col, options int) {
	row, col = -1, -1
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			n := 0
			for v := uint8(1); v <= 9; v++ {
				if IsValid(g, r, c, v) {
					n++
				}
			}
			if n < best {
				best = n
				row, col = r, c
				if n == 1 {
					return row, col, 1
				}
			}
		}
	}
	if row == -1 {
		return -1, -1, 0
	}
	return row, col, best
}

// SolveBoardEfficient fills the grid in place by depth-first search,
// choosing each cell via FindNextCell instead of sweeping row-major.
// The most constrained cell often admits a single digit, so much of
// the search collapses into forced moves. The MRV cell is re-derived
// on every recursive call; nothing is cached between calls. Failure
// semantics match SolveBoard.
func SolveBoardEfficient(g *[9][9]uint8) bool {
	nodes := 0
	return solveMRV(context.Background(), g, &nodes)
}

func solveMRV(ctx context.Context, g *[9][9]uint8, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, _ := FindNextCell(g)
	if r == -1 {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if IsValid(g, r, c, v) {
			g[r][c] = v
			if solveMRV(ctx, g, nodes) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}
