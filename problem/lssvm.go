// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "math"

// LSSVM is the least-squares SVM regressor: an exactly quadratic loss with
// unbounded coefficients and no sign convention, the simplest member of the
// family and a useful sanity check for the quadratic SMO subproblem path.
type LSSVM struct {
	y      []float64
	w      []float64
	params Params
}

// NewLSSVM builds an LSSVM problem over labels y and params.
func NewLSSVM(y []float64, params Params) *LSSVM {
	return &LSSVM{y: y, params: params}
}

// WithWeights returns a copy of l with per-sample weights w.
func (l LSSVM) WithWeights(w []float64) *LSSVM {
	l.w = w
	return &l
}

func (l *LSSVM) weight(i int) float64 {
	if l.w == nil {
		return 1.0
	}
	return l.w[i]
}

func (l *LSSVM) Size() int { return len(l.y) }

func (l *LSSVM) Sign(_ int) float64 { return 0 }

func (l *LSSVM) Lb(_ int) float64 { return math.Inf(-1) }

func (l *LSSVM) Ub(_ int) float64 { return math.Inf(1) }

func (l *LSSVM) Params() Params { return l.params }

func (l *LSSVM) Loss(i int, ti float64) float64 {
	di := ti - l.y[i]
	return 0.5 * l.weight(i) * di * di
}

func (l *LSSVM) DLoss(i int, ti float64) float64 {
	return l.weight(i) * (ti - l.y[i])
}

func (l *LSSVM) D2Loss(i int, _ float64) float64 { return l.weight(i) }

func (l *LSSVM) DualLoss(i int, ai float64) float64 {
	wi := l.weight(i)
	return -ai * (l.y[i] - 0.5*ai/wi)
}

func (l *LSSVM) DDualLoss(i int, ai float64) float64 {
	return ai/l.weight(i) - l.y[i]
}

func (l *LSSVM) D2DualLoss(i int, _ float64) float64 { return 1.0 / l.weight(i) }

func (l *LSSVM) IsQuad() bool { return true }
