// Package scs is the boundary layer between a caller and a conic-optimization
// solver engine. It validates and canonicalizes a convex cone problem — a
// sparse constraint matrix in compressed-column storage, objective and
// constraint vectors, a cone specification, solver options, and optional
// warm-start vectors — invokes the engine synchronously, and deep-copies the
// engine's solution and diagnostics into caller-owned output.
//
// Problems take the form
//
//	minimize     c'*x
//	subject to   A*x + s = b
//	             s in K
//
// where K is a direct sum of zero, nonnegative, second-order, semidefinite,
// and exponential cones.
//
// # Example
//
//	in := scs.ProblemInput{
//		Rows: 2, Cols: 2,
//		AValues:      []float64{1, 1},
//		ARowIndices:  []int{0, 1},
//		AColPointers: []int{0, 1, 2},
//		B:            []float64{1, 1},
//		C:            []float64{-1, -1},
//		Cone:         map[string]any{"l": 2},
//	}
//	sol, err := scs.Solve(in, admm.New())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(sol.X, sol.Info.Status)
package scs

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Engine is the external solver collaborator: a single synchronous,
// single-shot call that allocates its own result buffers. The boundary
// layer treats those buffers as borrowed and copies out of them.
type Engine interface {
	Solve(p *Problem, k *ConeSpec, o *SolverOptions, w *WarmStart) (*RawSolution, error)
}

// ProblemInput is the caller's loosely typed problem description. The
// array fields accept any numeric slice of the right kind (float for
// AValues, B, C; integer for ARowIndices, AColPointers); coercion binds
// []float64 and []int inputs without copying.
type ProblemInput struct {
	Rows int
	Cols int

	AValues      any
	ARowIndices  any
	AColPointers any
	B            any
	C            any

	// Cone maps the field names f, l, q, s, ep, ed to sizes; q and s
	// accept a single integer or a list of integers.
	Cone map[string]any

	// Options maps option names (maxIters, verbose, normalize, scale,
	// eps, cgRate, alpha, rhoX) to overrides. Unknown keys are ignored.
	Options map[string]any

	// WarmStart maps x, y, s to initial-guess vectors. A malformed
	// component is dropped with a warning, not a failure.
	WarmStart map[string]any

	// Logger, when set, receives warm-start warnings and solve progress.
	// When nil, a console logger is used if verbose is nonzero.
	Logger *zerolog.Logger
}

// Solve validates the input, invokes the engine once, and returns a
// caller-owned Solution. Validation failures are reported as *Error and
// never reach the engine; every buffer bound during validation is
// released exactly once on both success and failure.
func Solve(in ProblemInput, eng Engine) (*Solution, error) {
	if eng == nil {
		return nil, &Error{Op: "Solve", Msg: "nil engine"}
	}
	trk := newTracker()
	defer trk.release()
	return solve(in, eng, trk)
}

// solve is the tracked body of Solve; the caller owns the tracker release.
func solve(in ProblemInput, eng Engine, trk *tracker) (*Solution, error) {
	p, err := buildProblem(in.Rows, in.Cols, in.AValues, in.ARowIndices, in.AColPointers, in.B, in.C, trk)
	if err != nil {
		return nil, err
	}

	k, err := parseCone(in.Cone, trk)
	if err != nil {
		return nil, err
	}

	o, err := parseOptions(in.Options)
	if err != nil {
		return nil, err
	}

	logger := callLogger(in.Logger, o.Verbose)
	w := parseWarmStart(in.WarmStart, p.Rows, p.Cols, trk, logger)

	raw, err := eng.Solve(p, k, &o, w)
	if err != nil {
		return nil, err
	}

	// Deep copy: the engine's buffers are borrowed, not owned.
	sol := &Solution{
		X: make([]float64, p.Cols),
		Y: make([]float64, p.Rows),
		S: make([]float64, p.Rows),
		Info: Diagnostics{
			StatusCode:      raw.StatusCode,
			Iterations:      raw.Iterations,
			PrimalObjective: raw.PrimalObjective,
			DualObjective:   raw.DualObjective,
			PrimalResidual:  raw.PrimalResidual,
			DualResidual:    raw.DualResidual,
			RelativeGap:     raw.RelativeGap,
			SolveTime:       raw.SolveTimeMS / 1e3,
			SetupTime:       raw.SetupTimeMS / 1e3,
			Status:          raw.Status,
		},
	}
	copy(sol.X, raw.X)
	copy(sol.Y, raw.Y)
	copy(sol.S, raw.S)
	return sol, nil
}

// callLogger derives the call-scoped logger. No package-level logging
// state exists; concurrent calls each get their own logger value.
func callLogger(logger *zerolog.Logger, verbose int) zerolog.Logger {
	if logger != nil {
		return *logger
	}
	if verbose > 0 {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(output).With().Timestamp().Str("app", "scs").Logger()
	}
	return zerolog.Nop()
}
