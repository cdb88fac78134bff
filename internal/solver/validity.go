// Package solver implements backtracking search for 9x9 Sudoku grids.
//
// A grid is a *[9][9]uint8 where 0 marks an empty cell and 1-9 a placed
// digit. The package-level functions mutate the grid in place and
// guarantee that on failure every cell they touched has been reset to 0,
// so a failed solve leaves the grid exactly as it was handed in.
package solver

// IsValid reports whether digit v may be placed at (r, c): v must not
// already occur in row r, column c, or the 3x3 box containing the cell.
// Row and column must be in [0,8] and v in [1,9]; both are
// preconditions, not checked here. A v of 0 compares against the empty
// marker and is meaningless, so callers never ask.
func IsValid(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
