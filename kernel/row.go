// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// Row wraps a user-supplied pairwise function over an arbitrary sample type
// T, so callers are not forced into the dense [][]float64 layout Gaussian
// assumes (text kernels, structured kernels, precomputed lookups keyed by
// something other than a feature vector).
type Row[T any] struct {
	data []T
	fn   func(a, b T) float64
	diag func(a T) float64
}

// NewRow builds a Row kernel from samples, a symmetric pairwise function fn
// and a diag function used for Diag (often fn(a, a), but kept separate so
// callers can special-case it cheaply).
func NewRow[T any](data []T, fn func(a, b T) float64, diag func(a T) float64) *Row[T] {
	return &Row[T]{data: data, fn: fn, diag: diag}
}

// Size returns the number of samples.
func (k *Row[T]) Size() int { return len(k.data) }

// Diag returns K[i,i] via the configured diag function.
func (k *Row[T]) Diag(i int) float64 { return k.diag(k.data[i]) }

// ComputeRow fills out[j] with fn(data[i], data[activeSet[j]]).
func (k *Row[T]) ComputeRow(i int, out []float64, activeSet []int) {
	xi := k.data[i]
	for idx, j := range activeSet {
		out[idx] = k.fn(xi, k.data[j])
	}
}

// RestrictActive is a no-op: Row kernels hold no active-set-dependent state.
func (k *Row[T]) RestrictActive(_, _ []int) {}

// SetActive is a no-op for the same reason.
func (k *Row[T]) SetActive(_, _ []int) {}

// UseRows computes each row fresh and hands it to fun.
func (k *Row[T]) UseRows(idxs []int, activeSet []int, fun func(rows [][]float64)) {
	UseRowsNaive(k, idxs, activeSet, fun)
}
