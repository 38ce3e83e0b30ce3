package kernel

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func symmetricRowKernel(n int, seed int64) *Row[int] {
	rng := rand.New(rand.NewSource(seed))
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()
			mat[i][j] = v
			mat[j][i] = v
		}
	}
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	return NewRow(idxs, func(a, b int) float64 { return mat[a][b] }, func(a int) float64 { return mat[a][a] })
}

func TestCachedMatchesBaseUnderEviction(tst *testing.T) {
	chk.PrintTitle("kernel.Cached reproduces base rows across 24 evictions")
	n := 32
	base := symmetricRowKernel(n, 42)
	cached := NewCached(base, 8)
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	for i := 0; i < n; i++ {
		idx := i
		cached.UseRows([]int{idx}, active, func(rows [][]float64) {
			want := make([]float64, n)
			base.ComputeRow(idx, want, active)
			chk.Vector(tst, "row", 1e-15, rows[0], want)
		})
	}
}

func TestCachedRestrictActiveThenSpotCheck(tst *testing.T) {
	chk.PrintTitle("kernel.Cached restrict active then spot-check")
	n := 32
	base := symmetricRowKernel(n, 7)
	cached := NewCached(base, 8)
	full := make([]int, n)
	for i := range full {
		full[i] = i
	}

	warm := []int{0, 4, 8, 12}
	cached.UseRows(warm, full, func(rows [][]float64) {})

	even := make([]int, 0, n/2)
	for i := 0; i < n; i += 2 {
		even = append(even, i)
	}
	cached.RestrictActive(full, even)
	base.RestrictActive(full, even)

	spots := []int{0, 4, 8}
	cached.UseRows(spots, even, func(rows [][]float64) {
		for k, idx := range spots {
			want := make([]float64, len(even))
			base.ComputeRow(idx, want, even)
			chk.Vector(tst, "row", 1e-15, rows[k], want)
		}
	})
}

func TestCachedUseRowsPanicsWhenRequestExceedsCapacity(tst *testing.T) {
	chk.PrintTitle("kernel.Cached panics on oversized concurrent request")
	base := symmetricRowKernel(8, 1)
	cached := NewCached(base, 2)
	active := []int{0, 1, 2, 3, 4, 5, 6, 7}

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected panic for request exceeding cache capacity")
		}
	}()
	cached.UseRows([]int{0, 1, 2}, active, func(rows [][]float64) {})
}

func TestCachedSetActiveDropsCache(tst *testing.T) {
	chk.PrintTitle("kernel.Cached setActive invalidates cache")
	base := symmetricRowKernel(10, 3)
	cached := NewCached(base, 4)
	full := make([]int, 10)
	for i := range full {
		full[i] = i
	}
	cached.UseRows([]int{0, 1}, full, func(rows [][]float64) {})
	cached.SetActive(full, full)
	if len(cached.entries) != 0 {
		tst.Errorf("expected empty cache after SetActive, got %d entries", len(cached.entries))
	}
}
