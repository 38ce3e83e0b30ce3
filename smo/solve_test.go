package smo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wotzlaff/rusvm/kernel"
	"github.com/wotzlaff/rusvm/problem"
	"github.com/wotzlaff/rusvm/status"
)

func separableData() ([][]float64, []float64) {
	x := [][]float64{{-2, 0}, {-1, 0}, {1, 0}, {2, 0}}
	y := []float64{-1, -1, 1, 1}
	return x, y
}

func TestSolveLinearlySeparableClassification(tst *testing.T) {
	chk.PrintTitle("smo.Solve linearly separable classification")
	x, y := separableData()
	k := kernel.NewGaussian(1.0, x)
	p := problem.NewClassification(y, problem.NewParams().WithLambda(1e-3).WithSmoothing(0))
	params := NewParams().WithTol(1e-6)

	st := Solve(p, k, params, nil)

	if st.Code != status.Optimal {
		tst.Errorf("expected Optimal, got %v", st.Code)
	}
	if st.Violation >= 1e-6 {
		tst.Errorf("expected violation < 1e-6, got %v", st.Violation)
	}
	chk.Scalar(tst, "a[0]==-a[3]", 1e-6, st.A[0], -st.A[3])
	chk.Scalar(tst, "a[1]==-a[2]", 1e-6, st.A[1], -st.A[2])
	chk.Scalar(tst, "sum(a)==0", 1e-6, st.A[0]+st.A[1]+st.A[2]+st.A[3], 0.0)
	chk.Scalar(tst, "b", 1e-4, st.B, 0.0)
	for i, yi := range y {
		ti := st.Ka[i] + st.B
		if ti*yi < 0 {
			tst.Errorf("decision sign mismatch at %d: t=%v y=%v", i, ti, yi)
		}
	}
}

func TestSolveOneNormBudgetClassification(tst *testing.T) {
	chk.PrintTitle("smo.Solve 1-norm-budget classification")
	x, y := separableData()
	k := kernel.NewGaussian(1.0, x)
	p := problem.NewClassification(y, problem.NewParams().WithLambda(1e-3).WithSmoothing(0).WithMaxAsum(1.0))
	params := NewParams().WithTol(1e-6)

	st := Solve(p, k, params, nil)

	if st.Code != status.Optimal {
		tst.Errorf("expected Optimal, got %v", st.Code)
	}
	asum := 0.0
	for i, ai := range st.A {
		asum += p.Sign(i) * ai
	}
	chk.Scalar(tst, "asum", 1e-6, asum, 1.0)
	if st.C == 0 {
		tst.Errorf("expected nonzero c under saturated 1-norm budget")
	}
}

func TestSolvePoissonRegression(tst *testing.T) {
	chk.PrintTitle("smo.Solve Poisson regression")
	x := [][]float64{{-2}, {-1}, {0}, {1}, {2}}
	y := []float64{0, 1, 2, 1, 0}
	k := kernel.NewGaussian(1.0, x)
	p := problem.NewPoisson(y, problem.NewParams().WithLambda(1e-1))
	params := NewParams().WithTol(1e-6)

	st := Solve(p, k, params, nil)

	if st.Code != status.Optimal {
		tst.Errorf("expected Optimal, got %v", st.Code)
	}
	if st.Violation >= 1e-5 {
		tst.Errorf("expected violation < 1e-5, got %v", st.Violation)
	}
	for i, ai := range st.A {
		if math.IsNaN(ai) || math.IsInf(ai, 0) {
			tst.Errorf("expected finite a[%d], got %v", i, ai)
		}
		if ai > p.Ub(i)+1e-9 {
			tst.Errorf("a[%d]=%v exceeds Ub=%v", i, ai, p.Ub(i))
		}
	}
}

func TestSolveDualObjectiveMonotonicDecrease(tst *testing.T) {
	chk.PrintTitle("smo.Solve monotonic dual objective decrease")
	x, y := separableData()
	k := kernel.NewGaussian(1.0, x)
	p := problem.NewClassification(y, problem.NewParams().WithLambda(1e-2))
	params := NewParams().WithMaxSteps(1).WithTol(0)

	prevValue := math.Inf(1)
	st := status.New(p.Size())
	for step := 0; step < 20; step++ {
		st = SolveWithStatus(st, p, k, params, nil)
		if st.Value > prevValue+1e-12 {
			tst.Errorf("dual value increased at step %d: %v -> %v", step, prevValue, st.Value)
		}
		prevValue = st.Value
		st.Steps = 0
		if st.Code == status.Optimal {
			break
		}
	}
}
