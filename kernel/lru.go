// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"container/list"

	"github.com/cpmech/gosl/chk"
)

// Cached wraps a base Kernel with a fixed-capacity LRU row cache, so that
// working sets smaller than the full index range reuse previously computed
// rows instead of recomputing them on every SMO/Newton step.
type Cached struct {
	base     Kernel
	capacity int
	slots    [][]float64           // row storage, one slice per cache slot
	nextSlot int                   // next never-used slot index
	entries  map[int]*list.Element // sample index -> position in lru list
	lru      *list.List            // front = most recently used
}

type cachedEntry struct {
	idx  int
	slot int
}

// NewCached builds a cache of the given capacity around base. capacity must
// be at least as large as the largest idxs slice ever passed to UseRows;
// that precondition is checked (and panics) in UseRows itself, matching the
// base kernel's fatal-precondition convention (see spec §7).
func NewCached(base Kernel, capacity int) *Cached {
	return &Cached{
		base:     base,
		capacity: capacity,
		slots:    make([][]float64, capacity),
		entries:  make(map[int]*list.Element, capacity),
		lru:      list.New(),
	}
}

// Size returns the number of samples of the base kernel.
func (k *Cached) Size() int { return k.base.Size() }

// Diag returns K[i,i] from the base kernel.
func (k *Cached) Diag(i int) float64 { return k.base.Diag(i) }

// ComputeRow bypasses the cache and delegates straight to the base kernel;
// the cache only accelerates the batched UseRows path.
func (k *Cached) ComputeRow(i int, out []float64, activeSet []int) {
	k.base.ComputeRow(i, out, activeSet)
}

// UseRows returns len(idxs) row slices, computing and caching misses and
// reusing hits, evicting the least-recently-used slot when the cache is
// full. Panics if idxs holds more rows than the cache can simultaneously
// hold, since no eviction policy can serve that request without invalidating
// a row the same call still needs.
func (k *Cached) UseRows(idxs []int, activeSet []int, fun func(rows [][]float64)) {
	if len(idxs) > k.capacity {
		chk.Panic("cached kernel: capacity %d smaller than concurrent row request %d", k.capacity, len(idxs))
	}
	rows := make([][]float64, len(idxs))
	for pos, idx := range idxs {
		rows[pos] = k.rowFor(idx, activeSet)
	}
	fun(rows)
}

// rowFor returns the (possibly freshly computed) row for idx, marking it
// most-recently-used.
func (k *Cached) rowFor(idx int, activeSet []int) []float64 {
	if elem, ok := k.entries[idx]; ok {
		k.lru.MoveToFront(elem)
		return k.slots[elem.Value.(*cachedEntry).slot]
	}

	var slot int
	if k.nextSlot < k.capacity {
		slot = k.nextSlot
		k.nextSlot++
	} else {
		back := k.lru.Back()
		victim := back.Value.(*cachedEntry)
		slot = victim.slot
		delete(k.entries, victim.idx)
		k.lru.Remove(back)
	}

	row := k.slots[slot]
	if row == nil || len(row) != len(activeSet) {
		row = make([]float64, len(activeSet))
		k.slots[slot] = row
	}
	k.base.ComputeRow(idx, row, activeSet)
	k.entries[idx] = k.lru.PushFront(&cachedEntry{idx: idx, slot: slot})
	return row
}

// RestrictActive gathers every cached row down to the columns kept in
// newSet, which must be a subsequence of oldSet. Cached rows keep their
// cache slot and recency; only their contents shrink.
func (k *Cached) RestrictActive(oldSet, newSet []int) {
	cols := findCommon(oldSet, newSet)
	for elem := k.lru.Front(); elem != nil; elem = elem.Next() {
		slot := elem.Value.(*cachedEntry).slot
		row := k.slots[slot]
		restricted := make([]float64, len(cols))
		for i, c := range cols {
			restricted[i] = row[c]
		}
		k.slots[slot] = restricted
	}
	k.base.RestrictActive(oldSet, newSet)
}

// SetActive drops every cached row: a reset to the full index range
// invalidates whatever active-set-relative columns were cached.
func (k *Cached) SetActive(oldSet, newSet []int) {
	k.entries = make(map[int]*list.Element, k.capacity)
	k.lru = list.New()
	k.nextSlot = 0
	k.slots = make([][]float64, k.capacity)
	k.base.SetActive(oldSet, newSet)
}

// findCommon returns, for each element of b (assumed a subsequence of a in
// the same order), its index within a.
func findCommon(a, b []int) []int {
	res := make([]int, 0, len(b))
	it := 0
	for idx, v := range a {
		if it < len(b) && v == b[it] {
			it++
			res = append(res, idx)
			if it >= len(b) {
				break
			}
		}
	}
	return res
}
