// Package admm provides a pure-Go reference engine for the scs boundary
// layer. It solves
//
//	minimize     c'*x
//	subject to   A*x + s = b
//	             s in K
//
// with two-block ADMM on dense factorizations: the x-update solves a
// regularized normal-equation system through a cached Cholesky
// factorization, the s-update projects onto K, and the scaled dual
// variable accumulates the constraint violation.
//
// The engine supports zero, nonnegative, second-order, and semidefinite
// cones. Exponential cones are rejected; use a native solver build for
// problems that need them.
package admm

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/goscs/goscs/scs"
)

// Engine is a reusable ADMM solver. The zero value is not usable; call New.
// An Engine holds no per-solve state and is safe for concurrent use.
type Engine struct {
	rho    float64
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRho sets the ADMM penalty parameter (default 1.0).
func WithRho(rho float64) Option {
	return func(e *Engine) {
		e.rho = rho
	}
}

// WithLogger sets the logger used for iteration progress when the
// solve options request verbosity.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine with the given options applied.
func New(opts ...Option) *Engine {
	e := &Engine{rho: 1.0, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

const logEvery = 250

// Solve runs ADMM on the problem until the primal residual, dual
// residual, and relative gap all drop below Eps, or MaxIters is reached.
// Times in the returned RawSolution are in milliseconds.
func (e *Engine) Solve(p *scs.Problem, k *scs.ConeSpec, o *scs.SolverOptions, w *scs.WarmStart) (*scs.RawSolution, error) {
	setupStart := time.Now()

	if k.ExpPrimalCount > 0 || k.ExpDualCount > 0 {
		return nil, fmt.Errorf("admm: exponential cones are not supported by this engine")
	}
	if d := k.Dim(); d != p.Rows {
		return nil, fmt.Errorf("admm: cone dimension %d does not match %d rows", d, p.Rows)
	}

	m, n := p.Rows, p.Cols
	if m == 0 || n == 0 {
		return trivialSolution(p, k, setupStart)
	}

	a, err := denseFromCSC(p)
	if err != nil {
		return nil, err
	}
	at := a.T()

	// Normal-equation system (A'A + rhoX*I), factorized once.
	var gram mat.Dense
	gram.Mul(at, a)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := gram.At(i, j)
			if i == j {
				v += o.RhoX
			}
			sym.SetSym(i, j, v)
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, fmt.Errorf("admm: Cholesky factorization of the normal equations failed")
	}
	setupMS := time.Since(setupStart).Seconds() * 1e3

	solveStart := time.Now()
	rho := e.rho
	x := make([]float64, n)
	s := make([]float64, m)
	u := make([]float64, m)
	if w.Enabled {
		copy(x, w.X)
		copy(s, w.S)
		for i := range u {
			u[i] = w.Y[i] / rho
		}
	}

	xv := mat.NewVecDense(n, x)
	ax := mat.NewVecDense(m, nil)
	tmpM := mat.NewVecDense(m, nil)
	tmpN := mat.NewVecDense(n, nil)
	rhs := mat.NewVecDense(n, nil)
	axh := make([]float64, m)
	sPrev := make([]float64, m)
	y := make([]float64, m)

	bNorm := floats.Norm(p.B, 2)
	cNorm := floats.Norm(p.C, 2)

	var (
		iter            int
		pres, dres, gap float64
		pobj, dobj      float64
	)
	status := scs.StatusUnfinished

	for iter = 1; iter <= o.MaxIters; iter++ {
		// x-update: (A'A + rhoX*I) x = A'(b - s - u) - c/rho.
		for i := 0; i < m; i++ {
			tmpM.SetVec(i, p.B[i]-s[i]-u[i])
		}
		rhs.MulVec(at, tmpM)
		for i := 0; i < n; i++ {
			rhs.SetVec(i, rhs.AtVec(i)-p.C[i]/rho)
		}
		if err := chol.SolveVecTo(xv, rhs); err != nil {
			return nil, fmt.Errorf("admm: x-update solve failed: %w", err)
		}
		ax.MulVec(a, xv)

		// s-update with over-relaxation, then projection onto K.
		copy(sPrev, s)
		for i := 0; i < m; i++ {
			axh[i] = o.Alpha*ax.AtVec(i) + (1-o.Alpha)*(p.B[i]-sPrev[i])
			s[i] = p.B[i] - axh[i] - u[i]
		}
		if err := projectCone(s, k); err != nil {
			return nil, err
		}

		// Scaled dual update; y recovers the unscaled multipliers.
		for i := 0; i < m; i++ {
			u[i] += axh[i] + s[i] - p.B[i]
			y[i] = rho * u[i]
		}

		pres = primalResidual(ax, s, p.B) / (1 + bNorm)
		for i := 0; i < m; i++ {
			tmpM.SetVec(i, s[i]-sPrev[i])
		}
		tmpN.MulVec(at, tmpM)
		dres = rho * floats.Norm(tmpN.RawVector().Data, 2) / (1 + cNorm)

		pobj = floats.Dot(p.C, x)
		dobj = -floats.Dot(p.B, y)
		gap = relativeGap(pobj, dobj)

		if o.Verbose > 0 && iter%logEvery == 0 {
			e.logger.Debug().Int("iter", iter).
				Float64("pres", pres).Float64("dres", dres).Float64("gap", gap).
				Msg("admm progress")
		}

		if pres < o.Eps && dres < o.Eps && gap < o.Eps {
			status = scs.StatusSolved
			break
		}
	}
	if iter > o.MaxIters {
		iter = o.MaxIters
	}

	return &scs.RawSolution{
		X:               x,
		Y:               y,
		S:               s,
		StatusCode:      status,
		Status:          scs.StatusText(status),
		Iterations:      iter,
		PrimalObjective: pobj,
		DualObjective:   dobj,
		PrimalResidual:  pres,
		DualResidual:    dres,
		RelativeGap:     gap,
		SolveTimeMS:     time.Since(solveStart).Seconds() * 1e3,
		SetupTimeMS:     setupMS,
	}, nil
}

// denseFromCSC scatters the compressed-column matrix into a dense m-by-n
// matrix, bounds-checking the caller-trusted layout along the way.
func denseFromCSC(p *scs.Problem) (*mat.Dense, error) {
	a := mat.NewDense(p.Rows, p.Cols, nil)
	ap := p.A.ColPointers
	for j := 0; j < p.Cols; j++ {
		lo, hi := ap[j], ap[j+1]
		if lo > hi || hi > len(p.A.Values) {
			return nil, fmt.Errorf("admm: column pointers are not a valid CSC layout at column %d", j)
		}
		for idx := lo; idx < hi; idx++ {
			i := p.A.RowIndices[idx]
			if i < 0 || i >= p.Rows {
				return nil, fmt.Errorf("admm: row index %d out of range at column %d", i, j)
			}
			a.Set(i, j, p.A.Values[idx])
		}
	}
	return a, nil
}

// trivialSolution handles degenerate problems with no variables or no
// constraints: the slack is the projection of b and the duals are zero.
func trivialSolution(p *scs.Problem, k *scs.ConeSpec, setupStart time.Time) (*scs.RawSolution, error) {
	s := make([]float64, p.Rows)
	copy(s, p.B)
	if err := projectCone(s, k); err != nil {
		return nil, err
	}
	return &scs.RawSolution{
		X:           make([]float64, p.Cols),
		Y:           make([]float64, p.Rows),
		S:           s,
		StatusCode:  scs.StatusSolved,
		Status:      scs.StatusText(scs.StatusSolved),
		Iterations:  0,
		SetupTimeMS: time.Since(setupStart).Seconds() * 1e3,
	}, nil
}

func primalResidual(ax *mat.VecDense, s, b []float64) float64 {
	var sum float64
	for i := range s {
		r := ax.AtVec(i) + s[i] - b[i]
		sum += r * r
	}
	return math.Sqrt(sum)
}

func relativeGap(pobj, dobj float64) float64 {
	return math.Abs(pobj-dobj) / (1 + math.Abs(pobj) + math.Abs(dobj))
}
