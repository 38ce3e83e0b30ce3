package problem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/status"
)

func TestRecomputeKernelProductMatchesDirectProduct(tst *testing.T) {
	chk.PrintTitle("problem.RecomputeKernelProduct exactness")
	data := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	k := kernel.NewGaussian(0.5, data)
	y := []float64{0.3, -0.2, 0.0, 0.5}
	params := NewParams().WithLambda(0.1)
	p := NewLSSVM(y, params)

	st := status.New(4)
	st.A = []float64{0.3, -0.2, 0.0, 0.5}
	full := []int{0, 1, 2, 3}

	RecomputeKernelProduct(p, k, &st, full)

	want := make([]float64, 4)
	for i, ai := range st.A {
		if ai == 0 {
			continue
		}
		row := make([]float64, 4)
		k.ComputeRow(i, row, full)
		for j := range want {
			want[j] += ai / params.Lambda * row[j]
		}
	}
	chk.Vector(tst, "ka", 1e-10, st.Ka, want)
}

func TestIsOptimalThreshold(tst *testing.T) {
	chk.PrintTitle("problem.IsOptimal threshold")
	p := NewLSSVM([]float64{0, 0}, NewParams().WithLambda(2.0))
	st := status.New(2)
	st.Violation = 1e-5
	if !IsOptimal(p, &st, 1e-4) {
		tst.Errorf("expected optimal: lambda*violation=%v < tol", 2.0*1e-5)
	}
	st.Violation = 1.0
	if IsOptimal(p, &st, 1e-4) {
		tst.Errorf("expected not optimal: lambda*violation=%v", 2.0*1.0)
	}
}

func TestObjectiveVanishesAtOrigin(tst *testing.T) {
	chk.PrintTitle("problem.Objective at a=b=c=0")
	y := []float64{0.0, 0.0}
	p := NewLSSVM(y, NewParams().WithLambda(1.0))
	st := status.New(2)

	primal, dual := Objective(p, &st)
	chk.Scalar(tst, "primal", 1e-15, primal, 0.0)
	chk.Scalar(tst, "dual", 1e-15, dual, 0.0)
}

func TestObjectiveRegTermMatchesADotKa(tst *testing.T) {
	chk.PrintTitle("problem.Objective regularization term")
	data := [][]float64{{-2, 0}, {-1, 0}, {1, 0}, {2, 0}}
	k := kernel.NewGaussian(1.0, data)
	y := []float64{1, -1, 1, -1}
	p := NewClassification(y, NewParams().WithLambda(1e-3))

	st := status.New(4)
	st.A = []float64{0.1, 0.2, 0.2, 0.1}
	full := []int{0, 1, 2, 3}
	RecomputeKernelProduct(p, k, &st, full)

	reg := 0.0
	for i, ai := range st.A {
		reg += ai * st.Ka[i]
	}
	primal, dual := Objective(p, &st)
	lossDual := 0.0
	for i, ai := range st.A {
		lossDual += p.DualLoss(i, ai)
	}
	chk.Scalar(tst, "dual", 1e-10, dual, 0.5*reg+lossDual)
	if primal <= 0 {
		tst.Errorf("expected positive primal objective, got %v", primal)
	}
}

func TestShrinkDropsPinnedLowViolationIndices(tst *testing.T) {
	chk.PrintTitle("problem.Shrink drops bound-pinned indices")
	y := []float64{1, -1, 1, -1}
	p := NewClassification(y, NewParams())
	st := status.New(4)
	// index 1 is pinned at its lower bound with a gradient pointing further
	// into the bound and a tiny residual: it should be dropped.
	st.A = []float64{0.5, p.Lb(1), 0.5, p.Lb(3)}
	st.G = []float64{0, 1e-6, 0, 1e-6}
	st.B = 0
	st.C = 0
	st.Violation = 1.0

	data := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	k := kernel.NewGaussian(0.5, data)
	active := []int{0, 1, 2, 3}
	Shrink(p, k, &st, &active, 1e-10)

	if len(active) != 2 || active[0] != 0 || active[1] != 2 {
		tst.Errorf("expected active set {0,2} after shrinking pinned indices, got %v", active)
	}
}

func TestUnshrinkRestoresFullActiveSetAndKa(tst *testing.T) {
	chk.PrintTitle("problem.Unshrink restores 0..n and refreshes ka")
	y := []float64{1, -1, 1, -1}
	data := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	k := kernel.NewGaussian(0.5, data)
	params := NewParams().WithLambda(0.2)
	p := NewClassification(y, params)

	st := status.New(4)
	st.A = []float64{0.3, 0, 0.1, 0}
	active := []int{0, 2}
	Unshrink(p, k, &st, &active)

	if len(active) != 4 {
		tst.Errorf("expected full active set, got %v", active)
	}
	for i, idx := range active {
		if idx != i {
			tst.Errorf("expected active set 0..n in order, got %v", active)
		}
	}

	want := make([]float64, 4)
	full := []int{0, 1, 2, 3}
	for i, ai := range st.A {
		if ai == 0 {
			continue
		}
		row := make([]float64, 4)
		k.ComputeRow(i, row, full)
		for j := range want {
			want[j] += ai / params.Lambda * row[j]
		}
	}
	chk.Vector(tst, "ka", 1e-10, st.Ka, want)
}

func TestCheckSizePanicsOnMismatch(tst *testing.T) {
	chk.PrintTitle("problem.CheckSize panics on mismatched sizes")
	p := NewLSSVM([]float64{0, 0, 0}, NewParams())
	st := status.New(2)
	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected panic for mismatched problem/status size")
		}
	}()
	CheckSize(p, &st)
}

func TestHasMaxAsum(tst *testing.T) {
	chk.PrintTitle("problem.HasMaxAsum")
	p1 := NewLSSVM([]float64{0}, NewParams())
	if HasMaxAsum(p1) {
		tst.Errorf("default params must have unbounded 1-norm")
	}
	p2 := NewLSSVM([]float64{0}, NewParams().WithMaxAsum(1.0))
	if !HasMaxAsum(p2) {
		tst.Errorf("expected finite max_asum to report HasMaxAsum")
	}
	if math.IsInf(MaxAsum(p1), 0) != true {
		tst.Errorf("expected MaxAsum(p1) to be infinite")
	}
}
