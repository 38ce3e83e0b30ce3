// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package smo implements the Sequential Minimal Optimization dual solver:
// mean-violating-pair working-set selection with optional second-order
// refinement, a variable-pair subproblem solve, and shrinking/unshrinking of
// the active set in coordination with the kernel's row cache.
package smo

import "math"

// Params holds the SMO engine's tolerances and step-control knobs.
type Params struct {
	Tol                float64
	MaxSteps           int
	Verbose            int
	LogObjective       bool
	SecondOrder        bool
	ShrinkingPeriod    int
	ShrinkingThreshold float64
	TimeLimit          float64
}

// NewParams returns the default Params: tol=1e-4, unbounded step count,
// verbose off, second-order refinement on, shrinking disabled, no time
// limit.
func NewParams() Params {
	return Params{
		Tol:                1e-4,
		MaxSteps:           math.MaxInt,
		Verbose:            0,
		LogObjective:       false,
		SecondOrder:        true,
		ShrinkingPeriod:    0,
		ShrinkingThreshold: 1.0,
		TimeLimit:          math.Inf(1),
	}
}

// WithTol returns a copy of p with Tol set to tol.
func (p Params) WithTol(tol float64) Params { p.Tol = tol; return p }

// WithMaxSteps returns a copy of p with MaxSteps set to maxSteps.
func (p Params) WithMaxSteps(maxSteps int) Params { p.MaxSteps = maxSteps; return p }

// WithVerbose returns a copy of p with Verbose set to verbose.
func (p Params) WithVerbose(verbose int) Params { p.Verbose = verbose; return p }

// WithLogObjective returns a copy of p with LogObjective set to log.
func (p Params) WithLogObjective(log bool) Params { p.LogObjective = log; return p }

// WithSecondOrder returns a copy of p with SecondOrder set to on.
func (p Params) WithSecondOrder(on bool) Params { p.SecondOrder = on; return p }

// WithShrinkingPeriod returns a copy of p with ShrinkingPeriod set to
// period (0 disables shrinking).
func (p Params) WithShrinkingPeriod(period int) Params { p.ShrinkingPeriod = period; return p }

// WithShrinkingThreshold returns a copy of p with ShrinkingThreshold set to
// threshold.
func (p Params) WithShrinkingThreshold(threshold float64) Params {
	p.ShrinkingThreshold = threshold
	return p
}

// WithTimeLimit returns a copy of p with TimeLimit set to seconds.
func (p Params) WithTimeLimit(seconds float64) Params { p.TimeLimit = seconds; return p }
