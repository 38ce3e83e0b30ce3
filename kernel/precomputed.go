// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// Precomputed holds the full n×n kernel matrix materialized once from a base
// Kernel. Every ComputeRow call thereafter is a plain memory gather, trading
// O(n²) memory for the fastest possible row access.
type Precomputed struct {
	n    int
	diag []float64
	full [][]float64
}

// NewPrecomputed materializes the full matrix from base by calling
// base.ComputeRow once per row over the full 0..n index range.
func NewPrecomputed(base Kernel) *Precomputed {
	n := base.Size()
	full := make([][]float64, n)
	diag := make([]float64, n)
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		base.ComputeRow(i, row, idxs)
		full[i] = row
		diag[i] = base.Diag(i)
	}
	return &Precomputed{n: n, diag: diag, full: full}
}

// Size returns the number of samples.
func (k *Precomputed) Size() int { return k.n }

// Diag returns K[i,i].
func (k *Precomputed) Diag(i int) float64 { return k.diag[i] }

// ComputeRow gathers out[j] = full[i][activeSet[j]].
func (k *Precomputed) ComputeRow(i int, out []float64, activeSet []int) {
	row := k.full[i]
	for idx, j := range activeSet {
		out[idx] = row[j]
	}
}

// RestrictActive is a no-op: the full matrix is never shrunk, only gathered
// from on each access.
func (k *Precomputed) RestrictActive(_, _ []int) {}

// SetActive is a no-op for the same reason.
func (k *Precomputed) SetActive(_, _ []int) {}

// UseRows gathers each requested row from the precomputed matrix and hands
// them to fun.
func (k *Precomputed) UseRows(idxs []int, activeSet []int, fun func(rows [][]float64)) {
	UseRowsNaive(k, idxs, activeSet, fun)
}
