package scs

import (
	"fmt"
	"reflect"
)

// ConeSpec describes the cone K as a direct sum of named cone types, in
// the order the solver expects them along the slack vector: free (zero)
// cone, nonnegative orthant, second-order cones, semidefinite cones, and
// exponential cones (primal then dual).
type ConeSpec struct {
	FreeSize       int
	NonnegSize     int
	SOCSizes       []int
	SDCSizes       []int
	ExpPrimalCount int
	ExpDualCount   int
}

// Dim returns the total dimension of the cone along the slack vector.
// Semidefinite blocks of order k are stored as full k*k matrices;
// exponential cones occupy three entries each.
func (k *ConeSpec) Dim() int {
	d := k.FreeSize + k.NonnegSize
	for _, q := range k.SOCSizes {
		d += q
	}
	for _, s := range k.SDCSizes {
		d += s * s
	}
	return d + 3*(k.ExpPrimalCount+k.ExpDualCount)
}

// parseCone normalizes the caller's cone mapping into a ConeSpec. Scalar
// fields (f, l, ep, ed) default to 0 when absent; the block-size fields
// (q, s) accept either a single integer or a list of integers and
// normalize to a canonical slice, never nil.
func parseCone(cone map[string]any, trk *tracker) (*ConeSpec, error) {
	k := &ConeSpec{}
	var err error

	if k.FreeSize, err = coneScalar("f", cone); err != nil {
		return nil, err
	}
	if k.NonnegSize, err = coneScalar("l", cone); err != nil {
		return nil, err
	}
	if k.SOCSizes, err = coneSizes("q", cone); err != nil {
		return nil, err
	}
	trk.acquire("cone.q")
	if k.SDCSizes, err = coneSizes("s", cone); err != nil {
		return nil, err
	}
	trk.acquire("cone.s")
	if k.ExpPrimalCount, err = coneScalar("ep", cone); err != nil {
		return nil, err
	}
	if k.ExpDualCount, err = coneScalar("ed", cone); err != nil {
		return nil, err
	}
	return k, nil
}

// coneScalar parses a scalar cone field: absent means 0, present means a
// nonnegative integer.
func coneScalar(field string, cone map[string]any) (int, error) {
	if cone == nil {
		return 0, nil
	}
	v, ok := cone[field]
	if !ok {
		return 0, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, coneErr(field, "must be an integer")
	}
	if n < 0 {
		return 0, coneErr(field, fmt.Sprintf("must be nonnegative, got %d", n))
	}
	return n, nil
}

// coneSizes parses a block-size cone field. A single integer k is one
// cone of size k; a list is one cone per element. The first invalid
// element aborts parsing of the field.
func coneSizes(field string, cone map[string]any) ([]int, error) {
	if cone == nil {
		return []int{}, nil
	}
	v, ok := cone[field]
	if !ok {
		return []int{}, nil
	}

	if n, ok := asInt(v); ok {
		if n < 0 {
			return nil, coneErr(field, fmt.Sprintf("must be nonnegative, got %d", n))
		}
		return []int{n}, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, coneErr(field, "must be an integer or a list of integers")
	}
	sizes := make([]int, rv.Len())
	for i := range sizes {
		n, ok := asInt(rv.Index(i).Interface())
		if !ok {
			return nil, coneErr(field, fmt.Sprintf("element %d is not an integer", i))
		}
		if n < 0 {
			return nil, coneErr(field, fmt.Sprintf("element %d must be nonnegative, got %d", i, n))
		}
		sizes[i] = n
	}
	return sizes, nil
}
