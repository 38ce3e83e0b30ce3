// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "math"

// Params holds the knobs shared by every concrete training problem:
// regularization strength, loss-smoothing width, and an optional 1-norm
// budget on the signed coefficient sum.
type Params struct {
	Smoothing      float64
	Lambda         float64
	MaxAsum        float64
	Regularization float64
}

// NewParams returns the default Params: no smoothing, unit regularization
// strength, unbounded 1-norm, and a numerical floor of 1e-12.
func NewParams() Params {
	return Params{
		Smoothing:      0.0,
		Lambda:         1.0,
		MaxAsum:        math.Inf(1),
		Regularization: 1e-12,
	}
}

// WithLambda returns a copy of p with Lambda set to lambda.
func (p Params) WithLambda(lambda float64) Params {
	p.Lambda = lambda
	return p
}

// WithSmoothing returns a copy of p with Smoothing set to smoothing.
func (p Params) WithSmoothing(smoothing float64) Params {
	p.Smoothing = smoothing
	return p
}

// WithMaxAsum returns a copy of p with MaxAsum set to maxAsum.
func (p Params) WithMaxAsum(maxAsum float64) Params {
	p.MaxAsum = maxAsum
	return p
}

// WithRegularization returns a copy of p with Regularization set to reg.
func (p Params) WithRegularization(reg float64) Params {
	p.Regularization = reg
	return p
}

// HasMaxAsum reports whether a finite 1-norm budget is configured.
func (p Params) HasMaxAsum() bool { return !math.IsInf(p.MaxAsum, 1) }
