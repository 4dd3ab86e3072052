package runstats

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func accumulatePairs(xs, ys []float64) *Regression {
	var r Regression
	for i := range xs {
		r.Push(xs[i], ys[i])
	}
	return &r
}

func TestRegressionPerfectLine(t *testing.T) {
	var r Regression

	for i, y := range []float64{5, 4, 3, 2, 1} {
		r.Push(float64(i+1), y)
	}

	if n := r.Count(); n != 5 {
		t.Fatalf("expected count 5, got %d", n)
	}

	if v := value(t, r.Slope); v != -1.0 {
		t.Errorf("expected slope -1, got %v", v)
	}

	if v := value(t, r.Intercept); v != 6.0 {
		t.Errorf("expected intercept 6, got %v", v)
	}

	if v := value(t, r.Correlation); !relClose(v, -1.0, 1e-12) {
		t.Errorf("expected correlation -1, got %v", v)
	}
}

func TestRegressionMatchesLeastSquares(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	n := 1000
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64() * 100.0
		ys[i] = 3.5*xs[i] - 7.0 + rng.NormFloat64()*5.0
	}

	r := accumulatePairs(xs, ys)

	// closed-form least squares oracle
	var sumx, sumy, sumxx, sumyy, sumxy float64
	for i := range xs {
		sumx += xs[i]
		sumy += ys[i]
		sumxx += xs[i] * xs[i]
		sumyy += ys[i] * ys[i]
		sumxy += xs[i] * ys[i]
	}
	nf := float64(n)
	wantSlope := (nf*sumxy - sumx*sumy) / (nf*sumxx - sumx*sumx)
	wantIntercept := sumy/nf - wantSlope*sumx/nf
	wantCorr := (sumxy/nf - (sumx/nf)*(sumy/nf)) /
		math.Sqrt((sumxx/nf-(sumx/nf)*(sumx/nf))*(sumyy/nf-(sumy/nf)*(sumy/nf)))

	if v := value(t, r.Slope); !relClose(v, wantSlope, 1e-8) {
		t.Errorf("expected slope %v, got %v", wantSlope, v)
	}

	if v := value(t, r.Intercept); !relClose(v, wantIntercept, 1e-8) {
		t.Errorf("expected intercept %v, got %v", wantIntercept, v)
	}

	if v := value(t, r.Correlation); !relClose(v, wantCorr, 1e-8) {
		t.Errorf("expected correlation %v, got %v", wantCorr, v)
	}
}

func TestRegressionCombinePartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	n := 200
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64() * 10.0
		ys[i] = -2.0*xs[i] + 4.0 + rng.NormFloat64()
	}

	whole := accumulatePairs(xs, ys)

	check := func(name string, got *Regression) {
		t.Helper()

		if got.Count() != whole.Count() {
			t.Fatalf("%s: expected count %d, got %d", name, whole.Count(), got.Count())
		}

		queries := []struct {
			label     string
			got, want func() (float64, error)
		}{
			{"slope", got.Slope, whole.Slope},
			{"intercept", got.Intercept, whole.Intercept},
			{"correlation", got.Correlation, whole.Correlation},
		}
		for _, q := range queries {
			g := value(t, q.got)
			w := value(t, q.want)
			if !relClose(g, w, 1e-9) {
				t.Errorf("%s: expected %s %v, got %v", name, q.label, w, g)
			}
		}
	}

	for _, split := range []int{1, 40, 123, 199} {
		a := accumulatePairs(xs[:split], ys[:split])
		b := accumulatePairs(xs[split:], ys[split:])

		check("a+b", CombineRegressions(a, b))
		check("b+a", CombineRegressions(b, a))
	}

	{
		a := accumulatePairs(xs[:70], ys[:70])
		b := accumulatePairs(xs[70:140], ys[70:140])
		c := accumulatePairs(xs[140:], ys[140:])

		check("(a+b)+c", CombineRegressions(CombineRegressions(a, b), c))
		check("a+(b+c)", CombineRegressions(a, CombineRegressions(b, c)))
	}
}

func TestRegressionCombineIdentity(t *testing.T) {
	a := accumulatePairs(
		[]float64{1, 2, 3, 4},
		[]float64{2.5, -1, 19, 0.25},
	)

	var empty Regression

	if got := CombineRegressions(&empty, a); *got != *a {
		t.Errorf("expected empty+a to copy a verbatim, got %+v", got)
	}

	if got := CombineRegressions(a, &empty); *got != *a {
		t.Errorf("expected a+empty to copy a verbatim, got %+v", got)
	}

	{
		got := a.Copy()
		got.Accumulate(&empty)
		if *got != *a {
			t.Errorf("expected accumulating empty to be a no-op, got %+v", got)
		}
	}

	{
		var got Regression
		got.Accumulate(a)
		if got != *a {
			t.Errorf("expected accumulating into empty to copy verbatim, got %+v", got)
		}
	}
}

func TestRegressionClear(t *testing.T) {
	var r Regression
	r.Push(1, 2)
	r.Push(3, 4)

	r.Clear()

	if r != (Regression{}) {
		t.Fatalf("expected cleared state to match a fresh value, got %+v", r)
	}

	if _, err := r.Slope(); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData after clear, got %v", err)
	}
}

func TestRegressionQueryErrors(t *testing.T) {
	{
		var r Regression
		r.Push(1, 1)

		for _, query := range []func() (float64, error){
			r.Slope, r.Intercept, r.Correlation,
		} {
			if _, err := query(); !errors.Is(err, ErrInsufficientData) {
				t.Errorf("expected ErrInsufficientData with one pair, got %v", err)
			}
		}
	}

	{
		// vertical data: all x identical
		r := accumulatePairs(
			[]float64{2, 2, 2},
			[]float64{1, 5, 9},
		)

		for _, query := range []func() (float64, error){
			r.Slope, r.Intercept, r.Correlation,
		} {
			if _, err := query(); !errors.Is(err, ErrDegenerateInput) {
				t.Errorf("expected ErrDegenerateInput for constant x, got %v", err)
			}
		}
	}

	{
		// horizontal data: slope is defined, correlation is not
		r := accumulatePairs(
			[]float64{1, 2, 3},
			[]float64{4, 4, 4},
		)

		if v := value(t, r.Slope); v != 0 {
			t.Errorf("expected zero slope for constant y, got %v", v)
		}

		if _, err := r.Correlation(); !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("expected ErrDegenerateInput correlation for constant y, got %v", err)
		}
	}
}

func TestRegressionFailedQueryLeavesStateIntact(t *testing.T) {
	var r Regression
	r.Push(1, 2)

	snapshot := r

	if _, err := r.Correlation(); err == nil {
		t.Fatal("expected correlation error with one pair")
	}

	if r != snapshot {
		t.Fatalf("failed query mutated state: before %+v, after %+v", snapshot, r)
	}

	r.Push(2, 4)
	r.Push(3, 6)

	if v := value(t, r.Slope); !relClose(v, 2.0, 1e-12) {
		t.Errorf("expected slope 2 after recovery, got %v", v)
	}
}
