package runstats

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned by FitParallel when the x and y slices
// have different lengths.
var ErrLengthMismatch = errors.New("x and y observation counts differ")

// SummarizeParallel summarizes values by splitting them into contiguous
// partitions, accumulating each partition into a private Statistics in
// its own goroutine, and combining the partial summaries afterward. The
// result matches a sequential pass over values to within floating point
// tolerance.
func SummarizeParallel(ctx context.Context, values []float64, parallelism int) (*Statistics, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if parallelism < 1 {
		return nil, fmt.Errorf("parallelism must be at least 1: got %d", parallelism)
	}

	if parallelism > len(values) {
		parallelism = len(values)
	}

	if parallelism <= 1 {
		var s Statistics
		for _, v := range values {
			s.Push(v)
		}
		return &s, nil
	}

	Logger.Debugw(
		"summarizing in parallel",
		"num_values", len(values),
		"num_partitions", parallelism,
	)

	partials := make([]Statistics, parallelism)
	chunkSize := (len(values) + parallelism - 1) / parallelism

	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < parallelism; i++ {
		i := i
		part := chunk(values, i, chunkSize)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s := &partials[i]
			for _, v := range part {
				s.Push(v)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined Statistics
	for i := range partials {
		combined.Accumulate(&partials[i])
	}

	return &combined, nil
}

// FitParallel fits a least-squares line through the (xs[i], ys[i]) pairs
// the same way SummarizeParallel summarizes values: private Regression
// per partition, combined afterward.
func FitParallel(ctx context.Context, xs, ys []float64, parallelism int) (*Regression, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}

	if parallelism < 1 {
		return nil, fmt.Errorf("parallelism must be at least 1: got %d", parallelism)
	}

	if parallelism > len(xs) {
		parallelism = len(xs)
	}

	if parallelism <= 1 {
		var r Regression
		for i := range xs {
			r.Push(xs[i], ys[i])
		}
		return &r, nil
	}

	Logger.Debugw(
		"fitting in parallel",
		"num_pairs", len(xs),
		"num_partitions", parallelism,
	)

	partials := make([]Regression, parallelism)
	chunkSize := (len(xs) + parallelism - 1) / parallelism

	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < parallelism; i++ {
		i := i
		partX := chunk(xs, i, chunkSize)
		partY := chunk(ys, i, chunkSize)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r := &partials[i]
			for j := range partX {
				r.Push(partX[j], partY[j])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined Regression
	for i := range partials {
		combined.Accumulate(&partials[i])
	}

	return &combined, nil
}

func chunk(values []float64, partition, chunkSize int) []float64 {
	lo := partition * chunkSize
	if lo > len(values) {
		lo = len(values)
	}

	hi := lo + chunkSize
	if hi > len(values) {
		hi = len(values)
	}

	return values[lo:hi]
}
