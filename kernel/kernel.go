// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements the pluggable kernel-matrix abstraction used by
// the SMO and Newton engines: row-on-demand computation, diagonal access,
// and active-set restriction/reset, plus an LRU row cache.
package kernel

// Kernel is the row-producing contract an engine needs from a kernel matrix.
// Implementations compute K[i, j] for j restricted to the current active
// set; they never see the full n×n matrix unless they choose to precompute
// it (see Precomputed).
type Kernel interface {
	// Size returns the number of samples n the kernel was built for.
	Size() int
	// Diag returns K[i,i].
	Diag(i int) float64
	// ComputeRow fills out[0:len(activeSet)] with K[i, activeSet[j]].
	ComputeRow(i int, out []float64, activeSet []int)
	// RestrictActive drops columns not in newSet from any cached rows,
	// preserving newSet's order. newSet must be a subsequence of oldSet.
	RestrictActive(oldSet, newSet []int)
	// SetActive resets the kernel to the full index range 0..Size(),
	// invalidating any cache.
	SetActive(oldSet, newSet []int)
	// UseRows hands len(idxs) row slices (each of length len(activeSet)) to
	// fun. The callback style lets a cached implementation hold borrowed
	// row slices valid for the call's duration without copying.
	UseRows(idxs []int, activeSet []int, fun func(rows [][]float64))
}

// UseRowsNaive computes each requested row afresh via compute and hands the
// resulting slices to fun. It is the baseline semantics every cache must
// reproduce (see the LRU cache's correctness property in spec §8).
func UseRowsNaive(k Kernel, idxs []int, activeSet []int, fun func(rows [][]float64)) {
	rows := make([][]float64, len(idxs))
	for i, idx := range idxs {
		row := make([]float64, len(activeSet))
		k.ComputeRow(idx, row, activeSet)
		rows[i] = row
	}
	fun(rows)
}
