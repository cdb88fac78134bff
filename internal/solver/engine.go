package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

var errUnsolvable = errors.New("unsolvable or canceled")

// BacktrackingSolver is the row-major engine behind ports.Solver. It
// works on a copy of the caller's board.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	if !solveFrom(ctx, &grid, 0, 0, &nodes) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errUnsolvable
	}
	return &domain.Board{Values: grid}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// MRVSolver is the heuristic engine: it fills the most constrained
// empty cell first.
type MRVSolver struct{}

func NewMRVSolver() *MRVSolver { return &MRVSolver{} }

func (s *MRVSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	if !solveMRV(ctx, &grid, &nodes) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, errUnsolvable
	}
	return &domain.Board{Values: grid}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
