// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package problem defines the training-problem contract engines optimize
// against, plus the polynomial loss-smoothing building block and a handful
// of ready-to-use concrete problems.
package problem

// MaxPoly2 is max(t,0) for s=0, else the piecewise-quadratic bridge that
// agrees with max(t,0) outside [-s,s] and is quadratic within it. It is the
// primal half of the smoothed-hinge family every concrete problem below
// builds its loss on.
func MaxPoly2(t, s float64) float64 {
	if s <= 0 {
		if t > 0 {
			return t
		}
		return 0
	}
	switch {
	case t >= s:
		return t
	case t <= -s:
		return 0
	default:
		return 0.25 / s * (t + s) * (t + s)
	}
}

// DMaxPoly2 returns d/dt MaxPoly2(t,s).
func DMaxPoly2(t, s float64) float64 {
	if s <= 0 {
		if t > 0 {
			return 1
		}
		return 0
	}
	switch {
	case t >= s:
		return 1
	case t <= -s:
		return 0
	default:
		return (t + s) / (2 * s)
	}
}

// D2MaxPoly2 returns d²/dt² MaxPoly2(t,s).
func D2MaxPoly2(t, s float64) float64 {
	if s <= 0 {
		return 0
	}
	if t >= s || t <= -s {
		return 0
	}
	return 1 / (2 * s)
}

// DualMaxPoly2 returns the Fenchel conjugate of MaxPoly2(·,s) evaluated at
// a: the smoothing quadratic term that appears in every dual loss built on
// MaxPoly2.
func DualMaxPoly2(a, s float64) float64 {
	return s * a * (a - 1)
}

// DDualMaxPoly2 returns d/da DualMaxPoly2(a,s).
func DDualMaxPoly2(a, s float64) float64 {
	return s * (2*a - 1)
}

// D2DualMaxPoly2 returns d²/da² DualMaxPoly2(a,s).
func D2DualMaxPoly2(_, s float64) float64 {
	return 2 * s
}
