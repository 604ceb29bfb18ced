package scs

// SolverOptions holds the solver parameters, immutable once parsed.
// Every field has a fixed default that applies when the caller's mapping
// lacks the corresponding key.
type SolverOptions struct {
	MaxIters  int     // maximum solver iterations (default 2500)
	Verbose   int     // verbosity level (default 1)
	Normalize int     // heuristic data rescaling (default 1)
	Scale     float64 // rescaling factor when normalizing (default 5)
	Eps       float64 // convergence tolerance (default 1e-3)
	CGRate    float64 // conjugate-gradient tolerance rate (default 2)
	Alpha     float64 // over-relaxation parameter (default 1.8)
	RhoX      float64 // x-variable regularization (default 1e-3)
}

func defaultOptions() SolverOptions {
	return SolverOptions{
		MaxIters:  2500,
		Verbose:   1,
		Normalize: 1,
		Scale:     5,
		Eps:       1e-3,
		CGRate:    2,
		Alpha:     1.8,
		RhoX:      1e-3,
	}
}

// parseOptions merges the caller's overrides with the defaults. Unknown
// keys are ignored for forward compatibility. Float options accept
// integral values; negative values fail whichever kind they arrive as.
func parseOptions(opts map[string]any) (SolverOptions, error) {
	o := defaultOptions()
	var err error

	if o.MaxIters, err = posIntOption("maxIters", o.MaxIters, opts); err != nil {
		return o, err
	}
	if o.Verbose, err = posIntOption("verbose", o.Verbose, opts); err != nil {
		return o, err
	}
	if o.Normalize, err = posIntOption("normalize", o.Normalize, opts); err != nil {
		return o, err
	}
	if o.Scale, err = posFloatOption("scale", o.Scale, opts); err != nil {
		return o, err
	}
	if o.Eps, err = posFloatOption("eps", o.Eps, opts); err != nil {
		return o, err
	}
	if o.CGRate, err = posFloatOption("cgRate", o.CGRate, opts); err != nil {
		return o, err
	}
	if o.Alpha, err = posFloatOption("alpha", o.Alpha, opts); err != nil {
		return o, err
	}
	if o.RhoX, err = posFloatOption("rhoX", o.RhoX, opts); err != nil {
		return o, err
	}
	return o, nil
}

func posIntOption(name string, def int, opts map[string]any) (int, error) {
	if opts == nil {
		return def, nil
	}
	v, ok := opts[name]
	if !ok {
		return def, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, optErr(name, "ought to be a nonnegative integer")
	}
	if n < 0 {
		return 0, optErr(name, "ought to be a nonnegative integer")
	}
	return n, nil
}

func posFloatOption(name string, def float64, opts map[string]any) (float64, error) {
	if opts == nil {
		return def, nil
	}
	v, ok := opts[name]
	if !ok {
		return def, nil
	}
	if n, ok := asInt(v); ok {
		if n < 0 {
			return 0, optErr(name, "ought to be a nonnegative float")
		}
		return float64(n), nil
	}
	f, ok := asFloat(v)
	// NaN fails the >= 0 comparison and is rejected with the negatives.
	if !ok || !(f >= 0) {
		return 0, optErr(name, "ought to be a nonnegative float")
	}
	return f, nil
}
