package solver

// Solve fills the grid in place and reports success. With efficient set
// it picks cells by the minimum-remaining-values heuristic; otherwise
// it sweeps the grid in row-major order from (0, 0).
func Solve(g *[9][9]uint8, efficient bool) bool {
	if efficient {
		return SolveBoardEfficient(g)
	}
	return SolveBoard(g, 0, 0)
}
