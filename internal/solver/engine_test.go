package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/validator"
)

func TestEnginesSolveSampleUnder1s(t *testing.T) {
	engines := []struct {
		name string
		s    ports.Solver
	}{
		{"backtrack", NewBacktrackingSolver()},
		{"mrv", NewMRVSolver()},
	}
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			in := &domain.Board{Values: samplePuzzle}
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			out, st, err := e.s.Solve(ctx, in)
			if err != nil {
				t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
			}
			if out.Values != sampleSolution {
				t.Fatalf("wrong solution:\n%v", out.Values)
			}
			if in.Values != samplePuzzle {
				t.Fatal("engine mutated the input board")
			}
			ok, conf, err := validator.New().Validate(ctx, out)
			if err != nil || !ok {
				t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
			}
			if st.Nodes == 0 {
				t.Fatal("expected nonzero node count")
			}
			if st.Duration > time.Second {
				t.Fatalf("took too long: %v (>1s)", st.Duration)
			}
			t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
		})
	}
}

func TestEnginesReportUnsolvable(t *testing.T) {
	for _, s := range []ports.Solver{NewBacktrackingSolver(), NewMRVSolver()} {
		in := &domain.Board{Values: unsolvablePuzzle}
		out, _, err := s.Solve(context.Background(), in)
		if err == nil {
			t.Fatal("expected an error on an unsolvable grid")
		}
		if out != nil {
			t.Fatalf("expected nil board on failure, got:\n%v", out.Values)
		}
		if in.Values != unsolvablePuzzle {
			t.Fatal("engine mutated the input board")
		}
	}
}

func TestEnginesHonorCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range []ports.Solver{NewBacktrackingSolver(), NewMRVSolver()} {
		if _, _, err := s.Solve(ctx, &domain.Board{Values: samplePuzzle}); err == nil {
			t.Fatal("expected an error with a canceled context")
		}
	}
}
