// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package newton implements the semismooth Newton primal solver: active-set
// partitioning by second-derivative sign, a KKT-augmented linear system (or
// its 1-norm-budget reduced 2x2 form) with fallback to gradient steps, and
// Armijo back-tracking line search.
package newton

import "math"

// Params holds the Newton engine's tolerances, Armijo line-search knobs and
// step-control settings.
type Params struct {
	Tol          float64
	MaxSteps     int
	Verbose      int
	TimeLimit    float64
	Sigma        float64
	Eta          float64
	MaxBackSteps int
}

// NewParams returns the default Params: tol=1e-8, unbounded step count,
// verbose off, no time limit, Armijo sigma=1e-3, eta=0.1, max 8 backtracks.
func NewParams() Params {
	return Params{
		Tol:          1e-8,
		MaxSteps:     math.MaxInt,
		Verbose:      0,
		TimeLimit:    math.Inf(1),
		Sigma:        1e-3,
		Eta:          0.1,
		MaxBackSteps: 8,
	}
}

// WithTol returns a copy of p with Tol set to tol.
func (p Params) WithTol(tol float64) Params { p.Tol = tol; return p }

// WithMaxSteps returns a copy of p with MaxSteps set to maxSteps.
func (p Params) WithMaxSteps(maxSteps int) Params { p.MaxSteps = maxSteps; return p }

// WithVerbose returns a copy of p with Verbose set to verbose.
func (p Params) WithVerbose(verbose int) Params { p.Verbose = verbose; return p }

// WithTimeLimit returns a copy of p with TimeLimit set to seconds.
func (p Params) WithTimeLimit(seconds float64) Params { p.TimeLimit = seconds; return p }

// WithSigma returns a copy of p with Sigma set to sigma.
func (p Params) WithSigma(sigma float64) Params { p.Sigma = sigma; return p }

// WithEta returns a copy of p with Eta set to eta.
func (p Params) WithEta(eta float64) Params { p.Eta = eta; return p }

// WithMaxBackSteps returns a copy of p with MaxBackSteps set to n.
func (p Params) WithMaxBackSteps(n int) Params { p.MaxBackSteps = n; return p }
