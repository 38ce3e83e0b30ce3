package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPrecomputedMatchesBase(tst *testing.T) {
	chk.PrintTitle("kernel.Precomputed matches base rows")
	data := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 2}}
	base := NewGaussian(0.7, data)
	pre := NewPrecomputed(base)

	chk.Scalar(tst, "size", 0, float64(pre.Size()), float64(base.Size()))
	for i := 0; i < base.Size(); i++ {
		chk.Scalar(tst, "diag", 1e-15, pre.Diag(i), base.Diag(i))
	}

	active := []int{1, 3, 4}
	for i := 0; i < base.Size(); i++ {
		wantRow := make([]float64, len(active))
		base.ComputeRow(i, wantRow, active)
		gotRow := make([]float64, len(active))
		pre.ComputeRow(i, gotRow, active)
		chk.Vector(tst, "row", 1e-12, gotRow, wantRow)
	}
}
