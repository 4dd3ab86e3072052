package runstats

import (
	"math"
)

// https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Higher-order_statistics

// Statistics summarizes a stream of float64 observations in constant space.
//
// It maintains the observation count, running mean, and the second through
// fourth central moments using the incremental update credited to Welford,
// which avoids the catastrophic cancellation of sum-of-powers formulas.
// Minimum and maximum are tracked alongside.
//
// The zero value is an empty summary ready for use. A Statistics value is
// not safe for concurrent use; build one per goroutine and combine the
// results with CombineStatistics.
type Statistics struct {
	n                int64
	mean, m2, m3, m4 float64
	min, max         float64
}

// NewStatistics returns a new empty Statistics summary.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Clear resets the summary to the empty state in place.
func (s *Statistics) Clear() {
	*s = Statistics{}
}

// Push incorporates one observation into the summary.
//
// Push requires the value x to always be a finite float64; NaN and
// infinities are not guarded against and poison all subsequent state.
func (s *Statistics) Push(x float64) {
	if s.n == 0 {
		s.min, s.max = x, x
	} else {
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}

	n0 := float64(s.n)
	s.n++
	n1 := float64(s.n)

	delta := x - s.mean
	deltaN := delta / n1
	deltaN2 := deltaN * deltaN
	term := delta * deltaN * n0

	s.mean += deltaN
	// m2 and m3 on the right-hand sides below must be the pre-update values
	s.m4 += term*deltaN2*(n1*n1-3*n1+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term*deltaN*(n1-2) - 3*deltaN*s.m2
	s.m2 += term
}

// Count returns the number of observations pushed.
func (s *Statistics) Count() int64 {
	return s.n
}

// Mean returns the arithmetic mean of the observations.
func (s *Statistics) Mean() (float64, error) {
	if s.n < 1 {
		return 0, ErrInsufficientData
	}
	return s.mean, nil
}

// Minimum returns the smallest observation pushed.
func (s *Statistics) Minimum() (float64, error) {
	if s.n < 1 {
		return 0, ErrInsufficientData
	}
	return s.min, nil
}

// Maximum returns the largest observation pushed.
func (s *Statistics) Maximum() (float64, error) {
	if s.n < 1 {
		return 0, ErrInsufficientData
	}
	return s.max, nil
}

// Variance returns the Bessel-corrected sample variance.
func (s *Statistics) Variance() (float64, error) {
	if s.n < 2 {
		return 0, ErrInsufficientData
	}
	return s.m2 / float64(s.n-1), nil
}

// StandardDeviation returns the sample standard deviation.
func (s *Statistics) StandardDeviation() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Skewness returns the skewness of the observations.
func (s *Statistics) Skewness() (float64, error) {
	if s.n < 2 {
		return 0, ErrInsufficientData
	}
	if s.m2 == 0 {
		return 0, ErrDegenerateInput
	}
	return math.Sqrt(float64(s.n)) * s.m3 / math.Pow(s.m2, 1.5), nil
}

// Kurtosis returns the excess kurtosis of the observations, normalized so
// a normal distribution scores 0.
func (s *Statistics) Kurtosis() (float64, error) {
	if s.n < 2 {
		return 0, ErrInsufficientData
	}
	if s.m2 == 0 {
		return 0, ErrDegenerateInput
	}
	return float64(s.n)*s.m4/(s.m2*s.m2) - 3.0, nil
}

// Copy returns an independent duplicate of the summary.
func (s *Statistics) Copy() *Statistics {
	c := *s
	return &c
}

// CombineStatistics returns a new summary equivalent to having pushed all
// of a's observations and all of b's into a single Statistics, in any
// interleaving. Neither input is mutated.
//
// An empty operand is the identity: the result is a verbatim copy of the
// other operand with no arithmetic performed.
func CombineStatistics(a, b *Statistics) *Statistics {
	if a.n == 0 {
		return b.Copy()
	}
	if b.n == 0 {
		return a.Copy()
	}

	var c Statistics

	an := float64(a.n)
	bn := float64(b.n)
	cn := an + bn

	c.n = a.n + b.n

	delta := b.mean - a.mean
	delta2 := delta * delta

	c.mean = (an*a.mean + bn*b.mean) / cn

	c.m2 = a.m2 + b.m2 + delta2*an*bn/cn

	c.m3 = a.m3 + b.m3 + delta*delta2*an*bn*(an-bn)/(cn*cn)
	c.m3 += 3.0 * delta * (an*b.m2 - bn*a.m2) / cn

	c.m4 = a.m4 + b.m4 + delta2*delta2*an*bn*(an*an-an*bn+bn*bn)/(cn*cn*cn)
	c.m4 += 6.0*delta2*(an*an*b.m2+bn*bn*a.m2)/(cn*cn) + 4.0*delta*(an*b.m3-bn*a.m3)/cn

	c.min = math.Min(a.min, b.min)
	c.max = math.Max(a.max, b.max)

	return &c
}

// Accumulate folds that's observations into s in place. It is the
// accumulate-and-assign form of CombineStatistics; that is not mutated.
func (s *Statistics) Accumulate(that *Statistics) {
	if that.n == 0 {
		return
	}
	if s.n == 0 {
		*s = *that
		return
	}
	*s = *CombineStatistics(s, that)
}
