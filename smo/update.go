// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smo

import (
	"math"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/status"
)

// update applies the chosen variable pair (positions idxI, idxJ within
// activeSet) to st: solves the 1-D subproblem, moves a[i]/a[j], refreshes
// ka over the whole active set, and updates asum under a 1-norm budget.
func update(p problem.Problem, k kernel.Kernel, idxI, idxJ int, st *status.Status, activeSet []int) {
	i := activeSet[idxI]
	j := activeSet[idxJ]
	lambda := problem.Lambda(p)

	k.UseRows([]int{i, j}, activeSet, func(rows [][]float64) {
		ki := rows[0]
		kj := rows[1]

		maxTij := math.Min(st.A[i]-p.Lb(i), p.Ub(j)-st.A[j])

		maxTAsum := 0.5 * (problem.MaxAsum(p) - st.Asum)
		updateAsum := false
		if problem.HasMaxAsum(p) && p.Sign(i) != p.Sign(j) {
			if maxTij > maxTAsum {
				maxTij = maxTAsum
			}
			updateAsum = true
		}

		sp := subproblem{
			i: i, j: j,
			maxT: maxTij,
			q0:   (ki[idxI] + kj[idxJ] - 2.0*ki[idxJ]) / lambda,
			p0:   st.Ka[i] - st.Ka[j],
		}
		result := computeStep(p, sp, st)
		t := result.t

		if updateAsum {
			if t == maxTAsum {
				st.Asum = problem.MaxAsum(p)
			} else {
				st.Asum -= 2.0 * t * p.Sign(i)
			}
		}
		st.A[i] -= t
		st.A[j] += t
		st.Value -= result.dvalue
		for idx, kk := range activeSet {
			st.Ka[kk] += t / lambda * (kj[idx] - ki[idx])
		}
	})
}
