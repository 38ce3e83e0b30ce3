// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// Gaussian computes rows of an RBF (Gaussian) kernel matrix
// K(x,z) = exp(-γ·‖x-z‖²) over a dense feature matrix.
type Gaussian struct {
	gamma float64
	data  [][]float64
	xsqr  []float64
}

// NewGaussian creates a Gaussian kernel for the given scaling parameter
// gamma and feature matrix data (one row per sample).
func NewGaussian(gamma float64, data [][]float64) *Gaussian {
	n := len(data)
	xsqr := make([]float64, n)
	for i, xi := range data {
		s := 0.0
		for _, v := range xi {
			s += v * v
		}
		xsqr[i] = s
	}
	return &Gaussian{gamma: gamma, data: data, xsqr: xsqr}
}

// Size returns the number of samples.
func (k *Gaussian) Size() int { return len(k.data) }

// Diag returns K[i,i], always 1 for the Gaussian kernel.
func (k *Gaussian) Diag(_ int) float64 { return 1.0 }

// ComputeRow fills out[j] with K[i, activeSet[j]].
func (k *Gaussian) ComputeRow(i int, out []float64, activeSet []int) {
	xi := k.data[i]
	xsqri := k.xsqr[i]
	for idx, j := range activeSet {
		dij := xsqri + k.xsqr[j] - 2.0*dot(xi, k.data[j])
		out[idx] = math.Exp(-k.gamma * dij)
	}
}

// RestrictActive is a no-op: Gaussian rows are computed on demand and carry
// no cached state tied to the active set.
func (k *Gaussian) RestrictActive(_, _ []int) {}

// SetActive is a no-op for the same reason.
func (k *Gaussian) SetActive(_, _ []int) {}

// UseRows computes each row fresh and hands it to fun.
func (k *Gaussian) UseRows(idxs []int, activeSet []int, fun func(rows [][]float64)) {
	UseRowsNaive(k, idxs, activeSet, fun)
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
