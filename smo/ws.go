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

// findMVPSigned scans activeSet for the mean-violating pair restricted to
// indices whose sign agrees with sign (sign=0 disables the filter), filling
// st.G with every scanned gradient as a side effect. It returns the
// violation gap d=gMax-gMin, the shift s=gMax+gMin, and the positions
// (within activeSet) of the up/down candidates.
func findMVPSigned(p problem.Problem, st *status.Status, activeSet []int, sign float64) (d, s float64, idxI, idxJ int) {
	gMin := math.Inf(1)
	gMax := math.Inf(-1)
	for idx, i := range activeSet {
		gi := problem.Grad(p, st, i)
		st.G[i] = gi
		if p.Sign(i)*sign >= 0.0 {
			if st.A[i] > p.Lb(i) && gi > gMax {
				idxI = idx
				gMax = gi
			}
			if st.A[i] < p.Ub(i) && gi < gMin {
				idxJ = idx
				gMin = gi
			}
		}
	}
	return gMax - gMin, gMax + gMin, idxI, idxJ
}

// findMVP runs the mean-violating-pair scan, switching to the signed
// two-pass variant when the 1-norm budget is saturated (producing the b/c
// shift pair per the budget's two-sided scan), and records the resulting
// violation in st.Violation.
func findMVP(p problem.Problem, st *status.Status, activeSet []int) (idxI, idxJ int) {
	var d float64
	if problem.HasMaxAsum(p) && st.Asum == problem.MaxAsum(p) {
		dp, sp, idxIp, idxJp := findMVPSigned(p, st, activeSet, 1.0)
		dn, sn, idxIn, idxJn := findMVPSigned(p, st, activeSet, -1.0)
		st.B = -0.25 * (sp + sn)
		st.C = 0.25 * (sn - sp)
		if dp >= dn {
			d, idxI, idxJ = dp, idxIp, idxJp
		} else {
			d, idxI, idxJ = dn, idxIn, idxJn
		}
	} else {
		var s float64
		d, s, idxI, idxJ = findMVPSigned(p, st, activeSet, 0.0)
		st.B = -0.5 * s
	}
	st.Violation = d
	return idxI, idxJ
}

// findWS2 refines the MVP pair (idxI0, idxJ1) into a second-order pair by
// searching, for each candidate r in activeSet, the better descent partner
// for i0 (in the "down" direction) and for j1 (in the "up" direction),
// fetching the two rows K[i0,:] and K[j1,:] through the kernel in one
// UseRows call. sign restricts candidates the same way findMVPSigned does,
// used when the 1-norm budget is saturated.
func findWS2(p problem.Problem, k kernel.Kernel, idxI0, idxJ1 int, st *status.Status, activeSet []int, sign float64) (int, int) {
	i0 := activeSet[idxI0]
	j1 := activeSet[idxJ1]
	gi0 := st.G[i0]
	gj1 := st.G[j1]
	maxD0 := 0.0
	maxD1 := 0.0
	idxJ0 := idxJ1
	idxI1 := idxI0

	diags := make([]float64, len(activeSet))
	for idx, i := range activeSet {
		diags[idx] = k.Diag(i)
	}

	lambda := problem.Lambda(p)
	reg := problem.Regularization(p)
	k.UseRows([]int{i0, j1}, activeSet, func(rows [][]float64) {
		ki0 := rows[0]
		kj1 := rows[1]
		ki0i0 := ki0[idxI0]
		kj1j1 := kj1[idxJ1]
		maxTi0 := st.A[i0] - p.Lb(i0)
		maxTj1 := p.Ub(j1) - st.A[j1]

		for idxR, r := range activeSet {
			if sign*p.Sign(r) < 0.0 {
				continue
			}
			gr := st.G[r]
			krr := diags[idxR]

			pi0r := gi0 - gr
			dUpr := p.Ub(r) - st.A[r]
			if dUpr > 0.0 && pi0r > 0.0 {
				qi0 := ki0i0 + krr - 2.0*ki0[idxR] + problem.Quad(p, st, i0) + problem.Quad(p, st, r)
				di0r := descent(qi0, pi0r, math.Min(maxTi0, dUpr), lambda, reg)
				if di0r > maxD0 {
					idxJ0 = idxR
					maxD0 = di0r
				}
			}

			prj1 := gr - gj1
			dDnr := st.A[r] - p.Lb(r)
			if dDnr > 0.0 && prj1 > 0.0 {
				qj1 := kj1j1 + krr - 2.0*kj1[idxR] + problem.Quad(p, st, j1) + problem.Quad(p, st, r)
				drj1 := descent(qj1, prj1, math.Min(maxTj1, dDnr), lambda, reg)
				if drj1 > maxD1 {
					idxI1 = idxR
					maxD1 = drj1
				}
			}
		}
	})

	if maxD0 > maxD1 {
		return idxI0, idxJ0
	}
	return idxI1, idxJ1
}
