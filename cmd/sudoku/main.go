// Command sudoku solves a single 9x9 puzzle read from a file or stdin.
// Cells are given in row-major order, '1'-'9' for digits and '0' or '.'
// for empty; whitespace is ignored.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func main() {
	efficient := flag.Bool("efficient", false, "use the minimum-remaining-values heuristic")
	quiet := flag.Bool("q", false, "suppress timing output")
	flag.Parse()

	var in []byte
	var err error
	if flag.NArg() > 0 {
		in, err = os.ReadFile(flag.Arg(0))
	} else {
		in, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(2)
	}

	b, err := domain.Parse(string(in))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(2)
	}

	start := time.Now()
	ok := solver.Solve(&b.Values, *efficient)
	dur := time.Since(start)
	if !ok {
		fmt.Fprintln(os.Stderr, "sudoku: no solution")
		os.Exit(1)
	}
	fmt.Print(b)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "solved in %v\n", dur.Round(time.Microsecond))
	}
}
