package scs

// Solver status codes, shared vocabulary between this package and any
// engine implementation.
const (
	StatusFailure       = -4
	StatusIndeterminate = -3
	StatusInfeasible    = -2
	StatusUnbounded     = -1
	StatusUnfinished    = 0
	StatusSolved        = 1
)

// StatusText returns the canonical text for a solver status code.
func StatusText(code int) string {
	switch code {
	case StatusFailure:
		return "Failure"
	case StatusIndeterminate:
		return "Indeterminate"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusUnfinished:
		return "Unfinished"
	case StatusSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Diagnostics holds the solver-reported convergence and timing metrics.
// Times are in seconds.
type Diagnostics struct {
	StatusCode      int
	Iterations      int
	PrimalObjective float64
	DualObjective   float64
	PrimalResidual  float64
	DualResidual    float64
	RelativeGap     float64
	SolveTime       float64
	SetupTime       float64
	Status          string
}

// Solution contains the result of a solve. X, Y, and S are deep copies
// owned by the caller; the solver's own buffers are never aliased past
// the call boundary.
type Solution struct {
	// X contains the primal variables (length cols).
	X []float64

	// Y contains the dual variables for the conic constraints (length rows).
	Y []float64

	// S contains the slacks for Ax + s = b, s in K (length rows).
	S []float64

	// Info carries the solver's convergence and timing diagnostics.
	Info Diagnostics
}

// IsSolved returns true if the solver reports an optimal solution.
func (s *Solution) IsSolved() bool {
	return s.Info.StatusCode == StatusSolved
}

// IsInfeasible returns true if the solver certified primal infeasibility.
func (s *Solution) IsInfeasible() bool {
	return s.Info.StatusCode == StatusInfeasible
}

// IsUnbounded returns true if the solver certified unboundedness.
func (s *Solution) IsUnbounded() bool {
	return s.Info.StatusCode == StatusUnbounded
}

// RawSolution is the engine-owned result of one solve. Its buffers belong
// to the engine and must be deep-copied before the call returns to the
// caller; times are reported in milliseconds.
type RawSolution struct {
	X []float64
	Y []float64
	S []float64

	StatusCode      int
	Status          string
	Iterations      int
	PrimalObjective float64
	DualObjective   float64
	PrimalResidual  float64
	DualResidual    float64
	RelativeGap     float64
	SolveTimeMS     float64
	SetupTimeMS     float64
}
