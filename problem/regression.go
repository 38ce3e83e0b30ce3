// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

// Regression is the ε-insensitive SVM regressor. Labels y of length m are
// lifted into 2m coefficients: the first m carry sign(i)=+1 (over-target
// slack), the second m carry sign(i)=-1 (under-target slack).
type Regression struct {
	y       []float64
	params  Params
	epsilon float64
}

// NewRegression builds a Regression problem over labels y and params, with
// the default ε=1e-6 (kept nonzero to avoid a degenerate zero-width tube).
func NewRegression(y []float64, params Params) *Regression {
	return &Regression{y: y, params: params, epsilon: 1e-6}
}

// WithEpsilon returns a copy of r with the ε-insensitive tube width set to
// epsilon.
func (r Regression) WithEpsilon(epsilon float64) *Regression {
	r.epsilon = epsilon
	return &r
}

func (r *Regression) m() int { return len(r.y) }

func (r *Regression) Size() int { return 2 * r.m() }

func (r *Regression) Sign(i int) float64 {
	if i < r.m() {
		return 1
	}
	return -1
}

func (r *Regression) label(i int) float64 { return r.y[i%r.m()] }

func (r *Regression) Lb(i int) float64 {
	if i < r.m() {
		return 0
	}
	return -1
}

func (r *Regression) Ub(i int) float64 {
	if i < r.m() {
		return 1
	}
	return 0
}

func (r *Regression) Params() Params { return r.params }

func (r *Regression) Loss(i int, ti float64) float64 {
	si, yi := r.Sign(i), r.label(i)
	return MaxPoly2(si*(yi-ti)-r.epsilon, r.params.Smoothing)
}

func (r *Regression) DLoss(i int, ti float64) float64 {
	si, yi := r.Sign(i), r.label(i)
	return -si * DMaxPoly2(si*(yi-ti)-r.epsilon, r.params.Smoothing)
}

func (r *Regression) D2Loss(i int, ti float64) float64 {
	si, yi := r.Sign(i), r.label(i)
	return D2MaxPoly2(si*(yi-ti)-r.epsilon, r.params.Smoothing)
}

func (r *Regression) DualLoss(i int, ai float64) float64 {
	si, yi := r.Sign(i), r.label(i)
	return DualMaxPoly2(ai*si, r.params.Smoothing) - yi*ai + r.epsilon*si*ai
}

func (r *Regression) DDualLoss(i int, ai float64) float64 {
	si, yi := r.Sign(i), r.label(i)
	return si*DDualMaxPoly2(ai*si, r.params.Smoothing) - yi + r.epsilon*si
}

func (r *Regression) D2DualLoss(i int, ai float64) float64 {
	si := r.Sign(i)
	return D2DualMaxPoly2(ai*si, r.params.Smoothing)
}

func (r *Regression) IsQuad() bool { return false }
