// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smo

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/status"
)

// Solve runs the SMO dual solver from a freshly initialized Status of size
// p.Size(). callback may be nil; when non-nil it is consulted once per
// iteration and a true return requests cooperative cancellation.
func Solve(p problem.Problem, k kernel.Kernel, params Params, callback func(*status.Status) bool) status.Status {
	st := status.New(p.Size())
	return SolveWithStatus(st, p, k, params, callback)
}

// SolveWithStatus continues an SMO solve from an existing Status (e.g. the
// result of a prior solve, for idempotent re-entry at the Optimal code, or
// the output of the Newton engine when iterating SMO and Newton in
// sequence).
func SolveWithStatus(st status.Status, p problem.Problem, k kernel.Kernel, params Params, callback func(*status.Status) bool) status.Status {
	problem.CheckSize(p, &st)
	start := time.Now()
	n := p.Size()
	activeSet := make([]int, n)
	for i := range activeSet {
		activeSet[i] = i
	}

	step := st.Steps
	prevI, prevJ := -1, -1
	for {
		st.Steps = step
		elapsed := time.Since(start).Seconds()
		st.Time = elapsed

		stop := false
		if step >= params.MaxSteps {
			st.Code = status.MaxSteps
			stop = true
		}
		if params.TimeLimit > 0.0 && elapsed >= params.TimeLimit {
			st.Code = status.TimeLimit
			stop = true
		}
		if callback != nil && callback(&st) {
			st.Code = status.Callback
			stop = true
		}

		if params.ShrinkingPeriod > 0 && step%params.ShrinkingPeriod == 0 {
			problem.Shrink(p, k, &st, &activeSet, params.ShrinkingThreshold)
		}

		idxI0, idxJ1 := findMVP(p, &st, activeSet)
		optimal := problem.IsOptimal(p, &st, params.Tol)

		if params.Verbose > 0 && (step%params.Verbose == 0 || optimal) {
			logStep(p, &st, activeSet, elapsed, params.LogObjective)
		}

		if optimal {
			if problem.IsShrunk(&st, activeSet) {
				problem.Unshrink(p, k, &st, &activeSet)
				continue
			}
			st.Code = status.Optimal
			stop = true
		}

		if stop {
			break
		}

		idxI, idxJ := idxI0, idxJ1
		if params.SecondOrder {
			sign := 0.0
			if problem.HasMaxAsum(p) && st.Asum == problem.MaxAsum(p) {
				sign = p.Sign(activeSet[idxI0])
			}
			idxI, idxJ = findWS2(p, k, idxI0, idxJ1, &st, activeSet, sign)
			if activeSet[idxI] == prevI && activeSet[idxJ] == prevJ {
				idxI, idxJ = idxI0, idxJ1
			}
		}
		prevI, prevJ = activeSet[idxI], activeSet[idxJ]
		update(p, k, idxI, idxJ, &st, activeSet)
		step++
	}
	return st
}

func logStep(p problem.Problem, st *status.Status, activeSet []int, elapsed float64, logObjective bool) {
	if logObjective {
		primal, dual := problem.Objective(p, st)
		gap := primal + dual
		io.Pf("%10d %10.2f %10.6f %10.6f %10.6f %10.6f %10.6f %8.3f %8d / %d\n",
			st.Steps, elapsed, st.Violation, gap, primal, -dual, st.Value, st.Asum, len(activeSet), p.Size())
		return
	}
	io.Pf("%10d %10.2f %10.6f %10.6f %8.3f %8d / %d\n",
		st.Steps, elapsed, st.Violation, st.Value, st.Asum, len(activeSet), p.Size())
}
