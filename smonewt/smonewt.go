// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package smonewt combines the SMO dual solver and the Newton primal solver:
// run SMO to its own termination, refresh the kernel product on the full
// index set, then hand the resulting Status to Newton for refinement.
package smonewt

import (
	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/newton"
	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/smo"
	"github.com/wotzlaff/rusvm/status"
)

// Params bundles one Params struct per engine.
type Params struct {
	SMO    smo.Params
	Newton newton.Params
}

// NewParams returns Params with each engine's own defaults.
func NewParams() Params {
	return Params{SMO: smo.NewParams(), Newton: newton.NewParams()}
}

// Solve runs SMO to termination, resets the kernel to the full index range,
// recomputes the kernel product exactly over it, and continues with Newton
// from that point. callbackSMO and callbackNewton are each consulted once
// per iteration of their respective engine; either may be nil.
func Solve(p problem.Problem, k kernel.Kernel, params Params, callbackSMO, callbackNewton func(*status.Status) bool) status.Status {
	n := p.Size()
	st := smo.Solve(p, k, params.SMO, callbackSMO)

	fullSet := make([]int, n)
	for i := range fullSet {
		fullSet[i] = i
	}
	k.SetActive(nil, fullSet)
	problem.RecomputeKernelProduct(p, k, &st, fullSet)

	return newton.SolveWithStatus(st, p, k, params.Newton, callbackNewton)
}
