package main

import (
	"fmt"
	"log"

	"github.com/goscs/goscs/admm"
	"github.com/goscs/goscs/scs"
)

func main() {
	// Maximize: x + y
	// Subject to: x <= 1, y <= 1 (slacks in the nonnegative orthant)
	a, err := scs.CompressNonzeros(2, 2, []scs.Nonzero{
		{Row: 0, Col: 0, Val: 1.0},
		{Row: 1, Col: 1, Val: 1.0},
	})
	if err != nil {
		log.Fatal(err)
	}

	in := scs.ProblemInput{
		Rows: 2, Cols: 2,
		AValues:      a.Values,
		ARowIndices:  a.RowIndices,
		AColPointers: a.ColPointers,
		B:            []float64{1.0, 1.0},
		C:            []float64{-1.0, -1.0},
		Cone:         map[string]any{"l": 2},
		Options:      map[string]any{"eps": 1e-6, "maxIters": 10000, "verbose": 0},
	}

	sol, err := scs.Solve(in, admm.New())
	if err != nil {
		log.Fatal(err)
	}

	if sol.IsSolved() {
		fmt.Printf("x = %.2f, y = %.2f\n", sol.X[0], sol.X[1])
		fmt.Printf("Objective = %.2f (%d iterations)\n", sol.Info.PrimalObjective, sol.Info.Iterations)
	}
}
