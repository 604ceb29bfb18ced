package admm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/goscs/goscs/scs"
)

// projectCone projects v onto the cone K in place, walking the blocks in
// the canonical order: zero cone, nonnegative orthant, second-order
// cones, semidefinite cones. The caller guarantees len(v) == k.Dim().
func projectCone(v []float64, k *scs.ConeSpec) error {
	off := 0
	for i := 0; i < k.FreeSize; i++ {
		v[off+i] = 0
	}
	off += k.FreeSize

	for i := 0; i < k.NonnegSize; i++ {
		if v[off+i] < 0 {
			v[off+i] = 0
		}
	}
	off += k.NonnegSize

	for _, q := range k.SOCSizes {
		projectSOC(v[off : off+q])
		off += q
	}

	for _, d := range k.SDCSizes {
		if err := projectPSD(v[off:off+d*d], d); err != nil {
			return err
		}
		off += d * d
	}
	return nil
}

// projectSOC projects (t, z) onto {(t, z): ||z|| <= t}.
func projectSOC(v []float64) {
	if len(v) == 0 {
		return
	}
	if len(v) == 1 {
		if v[0] < 0 {
			v[0] = 0
		}
		return
	}
	t := v[0]
	z := v[1:]
	nz := floats.Norm(z, 2)
	switch {
	case nz <= t:
		// inside the cone
	case nz <= -t:
		// inside the polar cone, projects to the origin
		for i := range v {
			v[i] = 0
		}
	default:
		a := (t + nz) / 2
		v[0] = a
		scale := a / nz
		for i := range z {
			z[i] *= scale
		}
	}
}

// projectPSD projects a full d-by-d matrix block onto the positive
// semidefinite cone: symmetrize, then clamp negative eigenvalues.
func projectPSD(v []float64, d int) error {
	if d == 0 {
		return nil
	}
	sym := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			sym.SetSym(i, j, (v[i*d+j]+v[j*d+i])/2)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return fmt.Errorf("admm: eigendecomposition of a %dx%d semidefinite block failed", d, d)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var sum float64
			for l := 0; l < d; l++ {
				if vals[l] > 0 {
					sum += vals[l] * vecs.At(i, l) * vecs.At(j, l)
				}
			}
			v[i*d+j] = sum
		}
	}
	return nil
}
