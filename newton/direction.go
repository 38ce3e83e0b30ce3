// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package newton

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/linalg"
	"github.com/wotzlaff/rusvm/problem"
)

// gradient sets sc.dir to the plain gradient-step direction: Δa[i]=a[i]+g[i]
// for every i, Δb=sums.G/λ, Δc=0. Used whenever the positive partition
// cannot support a well-posed Newton system.
func gradient(p problem.Problem, sc *scratch) {
	for i := 0; i < p.Size(); i++ {
		sc.dir.A[i] = sc.status.A[i] + sc.status.G[i]
	}
	sc.dir.B = sc.sums.G / problem.Lambda(p)
	sc.dir.C = 0.0
}

// computeMatrixAndRHS builds the |P|x|P| KKT-augmented matrix M and
// right-hand side r on the (already merged) positive partition: Mᵢⱼ =
// Kᵢⱼ/λ + δᵢⱼ/hᵢ, rᵢ = (aᵢ+gᵢ)/hᵢ − Σⱼ∈Zeros Δaⱼ·Kᵢⱼ/λ.
func computeMatrixAndRHS(p problem.Problem, k kernel.Kernel, sc *scratch) ([][]float64, []float64) {
	active := sc.active
	nActive := active.sizePositive
	lambda := problem.Lambda(p)
	mat := make([][]float64, nActive)
	rhs := make([]float64, nActive)
	for idxI, i := range active.Positives() {
		k.ComputeRow(i, sc.ki, active.All())
		row := make([]float64, nActive)
		for idxJ := 0; idxJ < nActive; idxJ++ {
			row[idxJ] = sc.ki[idxJ] / lambda
		}
		row[idxI] += 1.0 / sc.h[i]
		mat[idxI] = row

		rhsI := (sc.status.A[i] + sc.status.G[i]) / sc.h[i]
		for idxJ, j := range active.Zeros() {
			rhsI -= sc.dir.A[j] * sc.ki[nActive+idxJ] / lambda
		}
		rhs[idxI] = rhsI
	}
	return mat, rhs
}

// newtonWithFallback computes the Newton direction by solving the
// KKT-augmented system on the positive partition, falling back to the
// gradient direction when that system is degenerate: an empty positive
// partition, or (under a 1-norm budget) a positive partition whose members
// all share one sign.
func newtonWithFallback(p problem.Problem, k kernel.Kernel, sc *scratch) directionKind {
	sc.active.Merge()
	nActive := sc.active.sizePositive
	if nActive == 0 {
		gradient(p, sc)
		return directionGradient
	}

	signs := make([]float64, nActive)
	hasMaxAsum := problem.HasMaxAsum(p)
	if hasMaxAsum {
		signPos, signNeg := false, false
		for idx, i := range sc.active.Positives() {
			si := p.Sign(i)
			signPos = signPos || si > 0.0
			signNeg = signNeg || si < 0.0
			signs[idx] = si
		}
		if !(signPos && signNeg) {
			gradient(p, sc)
			return directionGradient
		}
	}

	mat, rhs := computeMatrixAndRHS(p, k, sc)
	factored, err := linalg.Factor(mat, nActive)
	if err != nil {
		chk.Panic("newton: KKT matrix on positive partition is singular: %v", err)
	}
	matInvRHS := factored.Solve(rhs)
	ones := make([]float64, nActive)
	for i := range ones {
		ones[i] = 1.0
	}
	matInvOne := factored.Solve(ones)

	rhsB := sc.sums.A - sc.sums.DAZeros
	daNonzero := make([]float64, nActive)
	if hasMaxAsum {
		matInvSigns := factored.Solve(signs)
		rhsC := sc.sums.SA - problem.MaxAsum(p) - sc.sums.SDAZeros

		q00 := la.VecDot(ones, matInvOne)
		q01 := la.VecDot(ones, matInvSigns)
		q11 := la.VecDot(signs, matInvSigns)
		det := q00*q11 - q01*q01

		p0 := la.VecDot(matInvOne, rhs) - rhsB
		p1 := la.VecDot(matInvSigns, rhs) - rhsC

		db := (q11*p0 - q01*p1) / det
		dc := (q00*p1 - q01*p0) / det
		sc.dir.B = db
		sc.dir.C = dc
		for i := 0; i < nActive; i++ {
			daNonzero[i] = matInvRHS[i] - db*matInvOne[i] - dc*matInvSigns[i]
		}
	} else {
		db := (la.VecDot(ones, matInvRHS) - rhsB) / la.VecDot(ones, matInvOne)
		sc.dir.B = db
		sc.dir.C = 0.0
		for i := 0; i < nActive; i++ {
			daNonzero[i] = matInvRHS[i] - db*matInvOne[i]
		}
	}
	for idx, i := range sc.active.Positives() {
		sc.dir.A[i] = daNonzero[idx]
	}
	return directionNewton
}
