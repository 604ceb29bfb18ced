package scs

import "github.com/rs/zerolog"

// WarmStart carries the caller's initial guesses for the primal and dual
// variables. Absent or rejected components are zero vectors of the
// correct length, never nil, so the solver always receives usable
// buffers. Enabled is the logical OR across the three components.
type WarmStart struct {
	X       []float64 // length cols
	Y       []float64 // length rows
	S       []float64 // length rows
	Enabled bool
}

// parseWarmStart binds whichever warm-start vectors pass the kind and
// length checks. A malformed component is dropped with a warning rather
// than aborting the call: one bad guess must not cost an otherwise-valid
// solve.
func parseWarmStart(warm map[string]any, rows, cols int, trk *tracker, logger zerolog.Logger) *WarmStart {
	w := &WarmStart{
		X: make([]float64, cols),
		Y: make([]float64, rows),
		S: make([]float64, rows),
	}
	if warm == nil {
		return w
	}

	if v := bindWarm("x", cols, warm, trk, logger); v != nil {
		w.X = v
		w.Enabled = true
	}
	if v := bindWarm("y", rows, warm, trk, logger); v != nil {
		w.Y = v
		w.Enabled = true
	}
	if v := bindWarm("s", rows, warm, trk, logger); v != nil {
		w.S = v
		w.Enabled = true
	}
	return w
}

func bindWarm(field string, n int, warm map[string]any, trk *tracker, logger zerolog.Logger) []float64 {
	v, ok := warm[field]
	if !ok {
		return nil
	}
	vec, _, err := floatVector("ParseWarmStart", field, v)
	if err != nil {
		logger.Warn().Str("field", field).Msg("ignoring warm-start vector: not a float slice")
		return nil
	}
	if len(vec) != n {
		logger.Warn().Str("field", field).Int("len", len(vec)).Int("want", n).
			Msg("ignoring warm-start vector: wrong length")
		return nil
	}
	trk.acquire("warm." + field)
	return vec
}
