package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goscs/goscs/scs"
)

// scs-solve problem.toml layout. The cone, options, and warmstart tables
// are decoded loosely and handed to the boundary layer as-is, so the same
// validation applies as for the library API.
type fileProblem struct {
	Rows   int `toml:"rows"`
	Cols   int `toml:"cols"`
	Matrix struct {
		Values      []float64 `toml:"values"`
		RowIndices  []int     `toml:"row_indices"`
		ColPointers []int     `toml:"col_pointers"`
	} `toml:"matrix"`
	B         []float64      `toml:"b"`
	C         []float64      `toml:"c"`
	Cone      map[string]any `toml:"cone"`
	Options   map[string]any `toml:"options"`
	WarmStart map[string]any `toml:"warmstart"`
}

// loadProblem reads a TOML problem description into a ProblemInput.
func loadProblem(path string) (scs.ProblemInput, error) {
	var raw fileProblem
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return scs.ProblemInput{}, fmt.Errorf("load problem: %w", err)
	}

	return scs.ProblemInput{
		Rows:         raw.Rows,
		Cols:         raw.Cols,
		AValues:      raw.Matrix.Values,
		ARowIndices:  raw.Matrix.RowIndices,
		AColPointers: raw.Matrix.ColPointers,
		B:            raw.B,
		C:            raw.C,
		Cone:         raw.Cone,
		Options:      raw.Options,
		WarmStart:    floatLists(raw.WarmStart),
	}, nil
}

// floatLists converts TOML's []any number lists into []float64 where
// possible, leaving anything else untouched for the boundary layer to
// reject.
func floatLists(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for key, v := range m {
		list, ok := v.([]any)
		if !ok {
			out[key] = v
			continue
		}
		vec := make([]float64, len(list))
		numeric := true
		for i, el := range list {
			switch x := el.(type) {
			case float64:
				vec[i] = x
			case int64:
				vec[i] = float64(x)
			default:
				numeric = false
			}
		}
		if numeric {
			out[key] = vec
		} else {
			out[key] = v
		}
	}
	return out
}
