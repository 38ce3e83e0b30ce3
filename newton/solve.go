// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package newton

import (
	"math"
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/status"
)

// Solve runs the Newton primal solver from a freshly initialized Status of
// size p.Size(). callback may be nil; when non-nil it is consulted once per
// iteration and a true return requests cooperative cancellation.
func Solve(p problem.Problem, k kernel.Kernel, params Params, callback func(*status.Status) bool) status.Status {
	st := status.New(p.Size())
	return SolveWithStatus(st, p, k, params, callback)
}

// computeDecisions evaluates the per-index loss derivatives at the current
// iterate, partitions the indices into sc.active's positive/zeros halves,
// and fills sc.sums and st.Violation/st.Asum.
func computeDecisions(p problem.Problem, sc *scratch) {
	n := p.Size()
	sc.active = newActiveSet(n)
	sc.sums = sums{}
	hasMaxAsum := problem.HasMaxAsum(p)

	violation := 0.0
	absAsum := 0.0
	for i := 0; i < n; i++ {
		ai := sc.status.A[i]
		si := p.Sign(i)
		sc.sums.A += ai
		sc.sums.SA += si * ai
		absAsum += si * ai

		ti := sc.status.Ka[i] + sc.status.B + sc.status.C*si
		gi := p.DLoss(i, ti)
		sc.status.G[i] = gi
		sc.sums.G += gi
		sc.sums.SG += si * gi
		violation += math.Abs(ai + gi)

		hi := p.D2Loss(i, ti)
		sc.h[i] = hi
		if hi == 0.0 {
			dai := ai + gi
			sc.dir.A[i] = dai
			sc.sums.DAZeros += dai
			if hasMaxAsum {
				sc.sums.SDAZeros += si * dai
			}
			if dai != 0.0 {
				sc.active.AddZero(i)
			}
		} else {
			sc.active.AddPositive(i)
		}
	}
	violation += math.Abs(sc.sums.A)
	if hasMaxAsum {
		violation += math.Abs(absAsum - problem.MaxAsum(p))
	}
	sc.status.Violation = violation
	sc.status.Asum = absAsum
}

// applyStep forms the trial status at the given stepsize along sc.dir,
// recomputing the primal objective there, and accumulates the predicted
// descent Δ̂ = sums.G·Δb + Σᵢ Δaᵢ·(Kᵢ·(a+g))/λ used by the Armijo test.
func applyStep(p problem.Problem, k kernel.Kernel, sc *scratch, fullIndices []int, stepsize float64) (predDesc float64, next status.Status) {
	n := p.Size()
	lambda := problem.Lambda(p)
	next = sc.status.Clone()
	predDesc = sc.sums.G * sc.dir.B
	next.B -= stepsize * sc.dir.B
	next.C -= stepsize * sc.dir.C

	for _, i := range sc.active.All() {
		if sc.dir.A[i] == 0.0 {
			continue
		}
		next.A[i] -= stepsize * sc.dir.A[i]
		k.ComputeRow(i, sc.ki, fullIndices)
		for j := 0; j < n; j++ {
			kij := sc.ki[j]
			next.Ka[j] -= kij * stepsize * sc.dir.A[i] / lambda
			rj := sc.status.A[j] + sc.status.G[j]
			if rj != 0.0 {
				predDesc += kij * sc.dir.A[i] * rj / lambda
			}
		}
	}
	primal, _ := problem.Objective(p, &next)
	next.Value = primal
	return
}

// SolveWithStatus continues a Newton solve from an existing Status (e.g. the
// hand-off point from the SMO+Newton combiner).
func SolveWithStatus(st status.Status, p problem.Problem, k kernel.Kernel, params Params, callback func(*status.Status) bool) status.Status {
	problem.CheckSize(p, &st)
	start := time.Now()
	n := p.Size()
	fullIndices := make([]int, n)
	for i := range fullIndices {
		fullIndices[i] = i
	}

	sc := newScratch(st, n)
	primal, _ := problem.Objective(p, &sc.status)
	sc.status.Value = primal

	step := sc.status.Steps
	finalStep := false
	freshKa := false
	recomputeKa := false
	lastStepDescent := false

	for {
		sc.status.Steps = step
		elapsed := time.Since(start).Seconds()
		sc.status.Time = elapsed

		stop := false
		if finalStep {
			sc.status.Code = status.Optimal
			stop = true
		}
		if !stop && step >= params.MaxSteps {
			sc.status.Code = status.MaxSteps
			stop = true
		}
		if !stop && params.TimeLimit > 0.0 && elapsed >= params.TimeLimit {
			sc.status.Code = status.TimeLimit
			stop = true
		}
		if callback != nil && !stop && callback(&sc.status) {
			sc.status.Code = status.Callback
			stop = true
		}

		if recomputeKa {
			recomputeKa = false
			freshKa = true
			problem.RecomputeKernelProduct(p, k, &sc.status, fullIndices)
		}

		computeDecisions(p, sc)

		optimal := problem.IsOptimal(p, &sc.status, params.Tol)
		if optimal {
			if freshKa {
				finalStep = true
			} else {
				recomputeKa = true
				continue
			}
		}

		elapsed = time.Since(start).Seconds()
		sc.status.Time = elapsed

		if params.Verbose > 0 && stop {
			logStep(sc, elapsed, "", 0)
		}

		if stop {
			break
		}

		kind := newtonWithFallback(p, k, sc)

		stepsize := 1.0
		obj0, _ := problem.Objective(p, &sc.status)
		backstep := 0
		var trial status.Status
		accepted := false
		for {
			predDesc, t := applyStep(p, k, sc, fullIndices, stepsize)
			desc := obj0 - t.Value
			if desc > params.Sigma*predDesc {
				trial = t
				accepted = true
				break
			}
			stepsize *= params.Eta
			backstep++
			if backstep >= params.MaxBackSteps {
				break
			}
		}

		if params.Verbose > 0 && (step%params.Verbose == 0 || optimal) {
			logStep(sc, elapsed, kind.String(), backstep)
		}

		if !accepted {
			if lastStepDescent {
				sc.status.Code = status.NoStepPossible
				stop = true
			} else {
				lastStepDescent = true
				problem.RecomputeKernelProduct(p, k, &sc.status, fullIndices)
			}
		} else {
			lastStepDescent = false
			sc.status = trial
		}

		if stop {
			break
		}
		step++
	}
	return sc.status
}

func logStep(sc *scratch, elapsed float64, kind string, backstep int) {
	io.Pf("%10d %10.2f %1s %3d %10d %10.3e %10.6f %8.3f\n",
		sc.status.Steps, elapsed, kind, backstep, sc.active.sizePositive,
		sc.status.Violation, sc.status.Value, sc.status.Asum)
}
