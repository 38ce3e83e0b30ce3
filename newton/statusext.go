// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package newton

import "github.com/wotzlaff/rusvm/status"

// activeSet partitions the n optimization variables into "positive" (nonzero
// second loss derivative, h != 0) and "zeros" (h == 0 and Δa != 0), recorded
// in the order compute_decisions visits them. merge folds the zeros
// partition onto the positive one so All()/Positives() share one backing
// slice once the direction solve needs the combined index set.
type activeSet struct {
	positive     []int
	zerosIdx     []int
	sizePositive int
}

func newActiveSet(n int) *activeSet {
	return &activeSet{positive: make([]int, 0, n), zerosIdx: make([]int, 0, n)}
}

// AddPositive records i as belonging to the positive partition.
func (s *activeSet) AddPositive(i int) { s.positive = append(s.positive, i) }

// AddZero records i as belonging to the zeros partition (only called when
// its direction component Δa[i] != 0; indices with Δa[i]==0 need no kernel
// row and are dropped entirely).
func (s *activeSet) AddZero(i int) { s.zerosIdx = append(s.zerosIdx, i) }

// Merge appends the zeros partition onto the positive one and fixes
// sizePositive at the count of true positives, so Positives()/Zeros() split
// the combined slice and All() spans both.
func (s *activeSet) Merge() {
	s.sizePositive = len(s.positive)
	s.positive = append(s.positive, s.zerosIdx...)
}

// Positives returns the positive partition (valid after Merge; before
// Merge, sizePositive is 0 and this is empty).
func (s *activeSet) Positives() []int { return s.positive[:s.sizePositive] }

// Zeros returns the zeros partition (valid after Merge).
func (s *activeSet) Zeros() []int { return s.positive[s.sizePositive:] }

// All returns every index recorded so far: only the positive partition
// before Merge, positives+zeros after.
func (s *activeSet) All() []int { return s.positive }

// direction is the Newton-or-gradient step scratch: (Δa, Δb, Δc) with
// len(Δa)=n, only entries touched by the active direction ever populated.
type direction struct {
	A []float64
	B float64
	C float64
}

func newDirection(n int) *direction {
	return &direction{A: make([]float64, n)}
}

// directionKind tags which branch produced a direction, used for verbose
// logging.
type directionKind int

const (
	directionGradient directionKind = iota
	directionNewton
)

func (k directionKind) String() string {
	if k == directionNewton {
		return "N"
	}
	return "G"
}

// sums accumulates the per-step reductions compute_decisions and the
// Newton system's right-hand side need: total coefficient sum, total
// gradient, signed coefficient sum, signed gradient sum, and the zeros
// partition's direction sum / sign-weighted direction sum.
type sums struct {
	A, G     float64
	SA, SG   float64
	DAZeros  float64
	SDAZeros float64
}

// scratch bundles everything compute_decisions/direction/line-search share
// across one outer iteration, avoiding repeated allocation of per-step
// working vectors.
type scratch struct {
	status status.Status
	dir    *direction
	active *activeSet
	sums   sums
	h      []float64
	ki     []float64
}

func newScratch(st status.Status, n int) *scratch {
	return &scratch{
		status: st,
		dir:    newDirection(n),
		active: newActiveSet(n),
		h:      make([]float64, n),
		ki:     make([]float64, n),
	}
}
