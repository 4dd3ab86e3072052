package runstats

import (
	"math"
)

// Regression summarizes a stream of (x, y) observation pairs in constant
// space and fits the simple least-squares line y = Slope*x + Intercept.
//
// The two per-axis summaries advance in lockstep: the only way to feed
// them is the paired Push, so their counts can never diverge.
//
// The zero value is an empty summary ready for use.
type Regression struct {
	xstats, ystats Statistics
	sxy            float64
	n              int64
}

// NewRegression returns a new empty Regression summary.
func NewRegression() *Regression {
	return &Regression{}
}

// Clear resets the summary to the empty state in place.
func (r *Regression) Clear() {
	*r = Regression{}
}

// Push incorporates one (x, y) observation pair into the summary.
//
// The same finite-input requirement as Statistics.Push applies to both
// coordinates.
func (r *Regression) Push(x, y float64) {
	// sxy must accumulate against the means from before this pair lands
	r.sxy += (r.xstats.mean - x) * (r.ystats.mean - y) * float64(r.n) / float64(r.n+1)

	r.xstats.Push(x)
	r.ystats.Push(y)
	r.n++
}

// Count returns the number of observation pairs pushed.
func (r *Regression) Count() int64 {
	return r.n
}

// Slope returns the slope of the fitted line.
func (r *Regression) Slope() (float64, error) {
	if r.n < 2 {
		return 0, ErrInsufficientData
	}
	if r.xstats.m2 == 0 {
		return 0, ErrDegenerateInput
	}
	// xstats.m2 is already the sum of squared x deviations, i.e.
	// sample x variance times (n-1)
	return r.sxy / r.xstats.m2, nil
}

// Intercept returns the y-intercept of the fitted line.
func (r *Regression) Intercept() (float64, error) {
	slope, err := r.Slope()
	if err != nil {
		return 0, err
	}
	return r.ystats.mean - slope*r.xstats.mean, nil
}

// Correlation returns the Pearson correlation coefficient of the pairs.
func (r *Regression) Correlation() (float64, error) {
	if r.n < 2 {
		return 0, ErrInsufficientData
	}
	if r.xstats.m2 == 0 || r.ystats.m2 == 0 {
		return 0, ErrDegenerateInput
	}

	nm1 := float64(r.n - 1)
	term := math.Sqrt(r.xstats.m2/nm1) * math.Sqrt(r.ystats.m2/nm1)

	return r.sxy / (nm1 * term), nil
}

// Copy returns an independent duplicate of the summary.
func (r *Regression) Copy() *Regression {
	c := *r
	return &c
}

// CombineRegressions returns a new summary equivalent to having pushed all
// of a's observation pairs and all of b's into a single Regression.
// Neither input is mutated, and an empty operand is the identity exactly
// as in CombineStatistics.
func CombineRegressions(a, b *Regression) *Regression {
	if a.n == 0 {
		return b.Copy()
	}
	if b.n == 0 {
		return a.Copy()
	}

	var c Regression

	an := float64(a.n)
	bn := float64(b.n)
	cn := an + bn

	// deltas come from the operand means, not the merged ones
	deltaX := b.xstats.mean - a.xstats.mean
	deltaY := b.ystats.mean - a.ystats.mean

	c.n = a.n + b.n
	c.xstats = *CombineStatistics(&a.xstats, &b.xstats)
	c.ystats = *CombineStatistics(&a.ystats, &b.ystats)
	c.sxy = a.sxy + b.sxy + an*bn*deltaX*deltaY/cn

	return &c
}

// Accumulate folds that's observation pairs into r in place; that is not
// mutated.
func (r *Regression) Accumulate(that *Regression) {
	if that.n == 0 {
		return
	}
	if r.n == 0 {
		*r = *that
		return
	}
	*r = *CombineRegressions(r, that)
}
