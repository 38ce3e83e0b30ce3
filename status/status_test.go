package status

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNew(tst *testing.T) {
	chk.PrintTitle("status.New")
	st := New(4)
	chk.Scalar(tst, "len(a)", 0, float64(len(st.A)), 4)
	chk.Scalar(tst, "len(ka)", 0, float64(len(st.Ka)), 4)
	chk.Scalar(tst, "len(g)", 0, float64(len(st.G)), 4)
	if !math.IsInf(st.Violation, 1) {
		tst.Errorf("violation should start at +inf, got %v", st.Violation)
	}
	if st.Code != Initialized {
		tst.Errorf("code should start Initialized, got %v", st.Code)
	}
}

func TestFindSupport(tst *testing.T) {
	chk.PrintTitle("status.FindSupport")
	st := New(4)
	st.A = []float64{0, 1.5, 0, -2.0}
	st.Ka = []float64{0, 0.1, 0, 0.2}
	st.G = []float64{0, 0.3, 0, 0.4}
	st.B = 1.0
	st.C = 2.0
	data := []int{10, 11, 12, 13}

	support, supportData := FindSupport(&st, data)
	chk.Scalar(tst, "len(support.a)", 0, float64(len(support.A)), 2)
	chk.Vector(tst, "support.a", 1e-15, support.A, []float64{1.5, -2.0})
	chk.Vector(tst, "support.ka", 1e-15, support.Ka, []float64{0.1, 0.2})
	chk.Vector(tst, "support.g", 1e-15, support.G, []float64{0.3, 0.4})
	if supportData[0] != 11 || supportData[1] != 13 {
		tst.Errorf("support data mismatch: %v", supportData)
	}
	chk.Scalar(tst, "support.b", 1e-15, support.B, 1.0)
	chk.Scalar(tst, "support.c", 1e-15, support.C, 2.0)
}

func TestCodeString(tst *testing.T) {
	chk.PrintTitle("status.Code.String")
	cases := map[Code]string{
		Initialized:    "Initialized",
		Optimal:        "Optimal",
		MaxSteps:       "MaxSteps",
		TimeLimit:      "TimeLimit",
		Callback:       "Callback",
		NoStepPossible: "NoStepPossible",
	}
	for code, want := range cases {
		if code.String() != want {
			tst.Errorf("code %d: got %q want %q", code, code.String(), want)
		}
	}
}
