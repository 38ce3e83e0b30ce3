// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package status holds the mutable optimization state shared by the SMO and
// Newton engines.
package status

import "math"

// Code is the outcome tag attached to a Status once an engine stops.
type Code int

const (
	// Initialized marks a Status that has not yet been touched by a solver.
	Initialized Code = iota
	// Optimal marks a solution found up to the configured tolerance.
	Optimal
	// MaxSteps marks termination due to the step budget being exhausted.
	MaxSteps
	// TimeLimit marks termination due to the configured time limit.
	TimeLimit
	// Callback marks termination requested by the caller-supplied callback.
	Callback
	// NoStepPossible marks termination because no further descent step
	// could be found (Newton engine only).
	NoStepPossible
)

// String renders the outcome code for logging.
func (c Code) String() string {
	switch c {
	case Initialized:
		return "Initialized"
	case Optimal:
		return "Optimal"
	case MaxSteps:
		return "MaxSteps"
	case TimeLimit:
		return "TimeLimit"
	case Callback:
		return "Callback"
	case NoStepPossible:
		return "NoStepPossible"
	default:
		return "Unknown"
	}
}

// Status is the mutable snapshot of one solver run: coefficients, biases,
// gradients, the kernel-times-coefficients product and diagnostics. Engines
// own a Status by value and mutate it step by step; Problem and Kernel never
// write to it.
type Status struct {
	A         []float64 // coefficients (α)
	B         float64   // bias (offset) of the decision function
	C         float64   // monotonicity shift used with a 1-norm budget
	Ka        []float64 // (1/λ)·K·a on the active column set
	G         []float64 // scratch: per-index gradient/derivative values
	Asum      float64   // signed sum Σ sign(i)·a[i]
	Violation float64   // KKT-violation measure used for the optimality test
	Value     float64   // current primal or dual objective value
	Code      Code      // outcome tag
	Steps     int       // number of steps taken
	Time      float64   // elapsed time in seconds
}

// New creates a Status sized for n samples: zeroed vectors, infinite
// violation and Initialized code.
func New(n int) Status {
	return Status{
		A:         make([]float64, n),
		Ka:        make([]float64, n),
		G:         make([]float64, n),
		Violation: math.Inf(1),
		Code:      Initialized,
	}
}

// Clone returns a deep copy of st: A, Ka and G get their own backing
// arrays, so mutating the result never touches st. Used by the Newton
// engine to form a trial status for a candidate step before committing to
// it.
func (st *Status) Clone() Status {
	next := *st
	next.A = append([]float64(nil), st.A...)
	next.Ka = append([]float64(nil), st.Ka...)
	next.G = append([]float64(nil), st.G...)
	return next
}

// FindSupport returns a compacted Status and data slice keeping only the
// indices with a nonzero coefficient. data must have the same length and
// order as st.A.
func FindSupport[T any](st *Status, data []T) (Status, []T) {
	nsupport := 0
	for _, ai := range st.A {
		if ai != 0.0 {
			nsupport++
		}
	}
	next := New(nsupport)
	nextData := make([]T, 0, nsupport)
	idx := 0
	for i, ai := range st.A {
		if ai == 0.0 {
			continue
		}
		nextData = append(nextData, data[i])
		next.A[idx] = ai
		next.Ka[idx] = st.Ka[i]
		next.G[idx] = st.G[i]
		idx++
	}
	next.B = st.B
	next.C = st.C
	return next, nextData
}
