// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smo

import (
	"math"

	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/status"
)

// subproblem describes a single variable-pair move: indices (i,j), the
// box-respecting upper bound on the step size, and the quadratic
// coefficients q0 (kernel curvature, already /λ) and p0 (gradient gap)
// before the per-index loss terms are folded in.
type subproblem struct {
	i, j   int
	maxT   float64
	q0, p0 float64
}

// step is the outcome of solving a subproblem: the step size t and the
// resulting decrease in the dual objective.
type step struct {
	t      float64
	dvalue float64
}

// descent returns the predicted objective decrease of a step of size t =
// min(λp/max(q,reg), tMax), used by the second-order refinement scan, which
// passes q unscaled by λ (kernel curvature plus both indices' dual-loss
// curvature) rather than the /λ-scaled q0 computeStep works with.
func descent(q, p, tMax, lambda, regularization float64) float64 {
	t := math.Min(lambda*p/math.Max(q, regularization), tMax)
	return t * (p - 0.5/lambda*q*t)
}

// computeStep solves the 1-D pair subproblem for sp, returning the step
// size and predicted dual-objective decrease. For a quadratic dual loss
// (problem.IsQuad()) the optimum has a closed form; otherwise a damped 1-D
// Newton iteration is used.
func computeStep(p problem.Problem, sp subproblem, st *status.Status) step {
	ai, aj := st.A[sp.i], st.A[sp.j]
	if p.IsQuad() {
		pEff := sp.p0 + p.DDualLoss(sp.i, ai) - p.DDualLoss(sp.j, aj)
		qEff := sp.q0 + p.D2DualLoss(sp.i, ai) + p.D2DualLoss(sp.j, aj)
		t := math.Min(pEff/math.Max(qEff, p.Params().Regularization), sp.maxT)
		dvalue := t * (pEff - 0.5*qEff*t)
		return step{t: t, dvalue: dvalue}
	}

	loss0 := p.DualLoss(sp.i, ai) + p.DualLoss(sp.j, aj)
	f := func(t float64) (v, dv, ddv float64) {
		v = t*(0.5*sp.q0*t-sp.p0) - loss0 + p.DualLoss(sp.i, ai-t) + p.DualLoss(sp.j, aj+t)
		dv = sp.q0*t - sp.p0 - p.DDualLoss(sp.i, ai-t) + p.DDualLoss(sp.j, aj+t)
		ddv = sp.q0 + p.D2DualLoss(sp.i, ai-t) + p.D2DualLoss(sp.j, aj+t)
		return
	}
	t, v := dampedNewton1D(f, 0.0, sp.maxT)
	return step{t: t, dvalue: -v}
}

// dampedNewton1D solves for a descent step of f (returning value, first and
// second derivative) starting at x0, clamped to [x0, xmax], with a
// geometric backtracking line search. Used when the dual loss is not
// quadratic, so the pair subproblem has no closed form.
func dampedNewton1D(f func(float64) (v, dv, ddv float64), x0, xmax float64) (float64, float64) {
	x := x0
	v, dv, ddv := f(x)
	for iter := 0; iter < 5; iter++ {
		dxUnc := -dv / ddv
		if math.IsInf(dv, 0) || math.IsNaN(dv) {
			dxUnc = 1.0
		}
		dx := math.Min(dxUnc, xmax-x)
		if math.Abs(dv) < 1e-6 || (dx != dxUnc && dv < 0.0) {
			break
		}
		alpha := 1.0
		for backstep := 0; ; backstep++ {
			xn := x + alpha*dx
			vn, dvn, ddvn := f(xn)
			dec := vn - v
			decRef := alpha * dv * dx
			if dec <= decRef || dec <= 0.0 {
				x, v, dv, ddv = xn, vn, dvn, ddvn
				break
			}
			alpha *= 0.1
			if backstep > 20 {
				break
			}
		}
	}
	return x, v
}
