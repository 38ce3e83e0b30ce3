// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smonewt

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/newton"
	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/smo"
)

func separableData() ([][]float64, []float64) {
	x := [][]float64{{-2, 0}, {-1, 0}, {1, 0}, {2, 0}}
	y := []float64{-1, -1, 1, 1}
	return x, y
}

func TestSolveHandoffReachesTighterTolerance(tst *testing.T) {
	chk.PrintTitle("smonewt.Solve handoff")
	x, y := separableData()
	p := problem.NewClassification(y, problem.NewParams().WithLambda(1e-2).WithSmoothing(2.0))

	kSMO := kernel.NewGaussian(1.0, x)
	params := NewParams()
	params.SMO = params.SMO.WithTol(1e-3)
	params.Newton = params.Newton.WithTol(1e-10)

	st := Solve(p, kSMO, params, nil, nil)

	if st.Violation >= 1e-10*10 {
		tst.Errorf("expected tight violation after Newton refinement, got %v", st.Violation)
	}
	primal, dual := problem.Objective(p, &st)
	gap := primal + dual
	if gap >= 1e-6 {
		tst.Errorf("expected small primal-dual gap, got %v", gap)
	}
}

func TestSolveNeverWorsensPrimalObjective(tst *testing.T) {
	chk.PrintTitle("smonewt.Solve primal-objective law")
	x, y := separableData()
	pp := problem.NewParams().WithLambda(1e-2).WithSmoothing(2.0)
	p := problem.NewClassification(y, pp)

	kPlain := kernel.NewGaussian(1.0, x)
	smoParams := smo.NewParams().WithTol(1e-3)
	smoOnly := smo.Solve(p, kPlain, smoParams, nil)
	smoPrimal, _ := problem.Objective(p, &smoOnly)

	kCombined := kernel.NewGaussian(1.0, x)
	params := Params{SMO: smoParams, Newton: newton.NewParams().WithTol(1e-10)}
	combined := Solve(p, kCombined, params, nil, nil)

	if combined.Value > smoPrimal+1e-8 {
		tst.Errorf("combined primal value %v exceeds SMO-only primal value %v", combined.Value, smoPrimal)
	}
}
