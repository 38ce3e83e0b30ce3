// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package linalg wraps the dense linear-algebra primitives the Newton
// engine needs for its KKT-augmented system: a single explicit inversion
// reused to solve against several right-hand sides, following gofem's own
// dense Jacobian-inversion idiom (`la.MatAlloc`, `la.MatInv`, `la.MatVecMul`
// over plain [][]float64, e.g. shp's inverse-mapping Newton iteration).
package linalg

import "github.com/cpmech/gosl/la"

// minDet is the singularity floor passed to la.MatInv, matching the
// tolerance gofem uses for its own Jacobian inversions.
const minDet = 1e-14

// DenseFactored is a square matrix inverted once via la.MatInv and reused
// to solve Mx=r against as many right-hand sides as needed without
// refactoring.
type DenseFactored struct {
	n  int
	mi [][]float64
}

// Factor inverts the n×n matrix m (row-major, m[i][j]=M_ij) and returns a
// reusable factor.
func Factor(m [][]float64, n int) (*DenseFactored, error) {
	mi := la.MatAlloc(n, n)
	_, err := la.MatInv(mi, m, minDet)
	if err != nil {
		return nil, err
	}
	return &DenseFactored{n: n, mi: mi}, nil
}

// Solve returns M⁻¹·r.
func (f *DenseFactored) Solve(r []float64) []float64 {
	x := make([]float64, f.n)
	la.MatVecMul(x, 1.0, f.mi, r)
	return x
}
