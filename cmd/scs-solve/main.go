package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/goscs/goscs/admm"
	"github.com/goscs/goscs/scs"
)

func main() {
	rho := flag.Float64("rho", 1.0, "ADMM penalty parameter")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: scs-solve [-rho r] problem.toml\n")
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", "scs-solve").Logger()

	in, err := loadProblem(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load problem")
	}
	in.Logger = &logger

	sol, err := scs.Solve(in, admm.New(admm.WithRho(*rho), admm.WithLogger(logger)))
	if err != nil {
		logger.Fatal().Err(err).Msg("solve failed")
	}

	fmt.Printf("status: %s (%d iterations)\n", sol.Info.Status, sol.Info.Iterations)
	fmt.Printf("objective: primal %.6g, dual %.6g, gap %.2e\n",
		sol.Info.PrimalObjective, sol.Info.DualObjective, sol.Info.RelativeGap)
	fmt.Printf("residuals: primal %.2e, dual %.2e\n", sol.Info.PrimalResidual, sol.Info.DualResidual)
	fmt.Printf("time: setup %.3fs, solve %.3fs\n", sol.Info.SetupTime, sol.Info.SolveTime)
	fmt.Printf("x = %v\n", sol.X)
}
