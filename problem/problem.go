// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/status"
)

// Problem is the polymorphic boundary both engines optimize against: shape
// (size, box bounds, sign), parameters, and the per-index loss/derivative
// hooks. Every method below must be supplied by a concrete implementation;
// behavior that only ever combines these hooks (objective, optimality,
// shrinking, kernel-product refresh) lives as free functions taking a
// Problem, not as interface methods with default bodies — Go has no
// trait-style default-method dispatch, and routing through a Base/embedding
// layer breaks the moment a derived method needs to call an overridden one
// on the same logical receiver.
type Problem interface {
	// Size returns the number of optimization variables.
	Size() int
	// Lb returns the lower bound of coefficient i.
	Lb(i int) float64
	// Ub returns the upper bound of coefficient i.
	Ub(i int) float64
	// Sign returns the sign convention of index i, in {-1, 0, +1}.
	Sign(i int) float64

	// Params returns the problem's shared parameters.
	Params() Params

	// Loss returns the primal loss at decision value ti for index i.
	Loss(i int, ti float64) float64
	// DLoss returns d/dt Loss(i,ti).
	DLoss(i int, ti float64) float64
	// D2Loss returns d²/dt² Loss(i,ti).
	D2Loss(i int, ti float64) float64

	// DualLoss returns the dual loss at coefficient ai for index i.
	DualLoss(i int, ai float64) float64
	// DDualLoss returns d/da DualLoss(i,ai).
	DDualLoss(i int, ai float64) float64
	// D2DualLoss returns d²/da² DualLoss(i,ai).
	D2DualLoss(i int, ai float64) float64

	// IsQuad reports whether the dual loss is exactly quadratic, letting
	// SMO's pair subproblem use the closed-form step instead of the damped
	// 1-D Newton fallback.
	IsQuad() bool
}

// Lambda returns the problem's regularization strength λ.
func Lambda(p Problem) float64 { return p.Params().Lambda }

// Smoothing returns the problem's loss-smoothing width.
func Smoothing(p Problem) float64 { return p.Params().Smoothing }

// MaxAsum returns the problem's 1-norm budget, +Inf if unbounded.
func MaxAsum(p Problem) float64 { return p.Params().MaxAsum }

// Regularization returns the numerical floor used to avoid zero-division
// in step-size formulas.
func Regularization(p Problem) float64 { return p.Params().Regularization }

// HasMaxAsum reports whether p has a finite 1-norm budget.
func HasMaxAsum(p Problem) bool { return p.Params().HasMaxAsum() }

// Grad returns the dual gradient at index i used by SMO's working-set
// selection: ka[i] + d_dloss(i, a[i]).
func Grad(p Problem, st *status.Status, i int) float64 {
	return st.Ka[i] + p.DDualLoss(i, st.A[i])
}

// Quad returns the dual curvature at index i used by SMO's pair
// subproblem: d2_dloss(i, a[i]).
func Quad(p Problem, st *status.Status, i int) float64 {
	return p.D2DualLoss(i, st.A[i])
}

// Objective computes the primal and dual objective values at st.
func Objective(p Problem, st *status.Status) (primal, dual float64) {
	reg := 0.0
	lossPrimal := 0.0
	lossDual := 0.0
	for i := 0; i < p.Size(); i++ {
		reg += st.Ka[i] * st.A[i]
		ti := st.Ka[i] + st.B + p.Sign(i)*st.C
		lossPrimal += p.Loss(i, ti)
		lossDual += p.DualLoss(i, st.A[i])
	}
	asumTerm := 0.0
	if HasMaxAsum(p) {
		asumTerm = MaxAsum(p) * st.C
	}
	primal = 0.5*reg + lossPrimal + asumTerm
	dual = 0.5*reg + lossDual
	return
}

// IsOptimal reports whether st satisfies the KKT-violation tolerance tol.
func IsOptimal(p Problem, st *status.Status, tol float64) bool {
	return Lambda(p)*st.Violation < tol
}

// IsShrunk reports whether activeSet is a strict subsequence of 0..n.
func IsShrunk(st *status.Status, activeSet []int) bool {
	return len(activeSet) < len(st.A)
}

// RecomputeKernelProduct sets st.Ka to (1/λ)·K·a exactly, restricted to
// activeSet, by summing aᵢ/λ·K[i,:] over every nonzero coefficient.
func RecomputeKernelProduct(p Problem, k kernel.Kernel, st *status.Status, activeSet []int) {
	lambda := Lambda(p)
	n := len(activeSet)
	for i := range st.Ka {
		st.Ka[i] = 0
	}
	for i, ai := range st.A {
		if ai == 0.0 {
			continue
		}
		k.UseRows([]int{i}, activeSet, func(rows [][]float64) {
			ki := rows[0]
			for idx := 0; idx < n; idx++ {
				st.Ka[activeSet[idx]] += ai / lambda * ki[idx]
			}
		})
	}
}

// Shrink removes from activeSet every index whose KKT residual is both
// below threshold·violation and pinned at a bound it cannot improve from,
// then rewrites the kernel's column restriction to match.
func Shrink(p Problem, k kernel.Kernel, st *status.Status, activeSet *[]int, threshold float64) {
	old := *activeSet
	next := make([]int, 0, len(old))
	for _, idx := range old {
		gkb := st.G[idx] + st.B + st.C*p.Sign(idx)
		gkbSqr := gkb * gkb
		pinned := (st.A[idx] == p.Ub(idx) && gkb < 0.0) || (st.A[idx] == p.Lb(idx) && gkb > 0.0)
		if gkbSqr > threshold*st.Violation || !pinned {
			next = append(next, idx)
		}
	}
	k.RestrictActive(old, next)
	*activeSet = next
}

// Unshrink restores activeSet to 0..n, resets the kernel to the full index
// range, and refreshes st.Ka accordingly.
func Unshrink(p Problem, k kernel.Kernel, st *status.Status, activeSet *[]int) {
	old := *activeSet
	n := p.Size()
	full := make([]int, n)
	for i := range full {
		full[i] = i
	}
	k.SetActive(old, full)
	*activeSet = full
	RecomputeKernelProduct(p, k, st, full)
}

// CheckSize panics if st is not sized for p; every engine entry point calls
// this once as a precondition guard (spec §7: mismatched sizes are a caller
// bug, not a recoverable error).
func CheckSize(p Problem, st *status.Status) {
	n := p.Size()
	if len(st.A) != n || len(st.Ka) != n || len(st.G) != n {
		chk.Panic("problem/status size mismatch: problem has %d variables, status has %d", n, len(st.A))
	}
}
