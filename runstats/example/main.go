package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/josephcopenhaver/runstats-go/runstats"
)

// Reads float values from the command line, summarizes them, and fits a
// least-squares line treating each value's 1-based position as x.
//
// Example:
//
//	go run ./runstats/example 5 4 3 2 1
func main() {
	args := os.Args[1:]

	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			runstats.Logger.Panicw(
				"failed to parse value",
				"arg", arg,
				"error", err,
			)
		}
		values = append(values, v)
	}

	var stats runstats.Statistics
	var regr runstats.Regression

	for i, v := range values {
		stats.Push(v)
		regr.Push(float64(i+1), v)
	}

	fmt.Println("Statistics")
	fmt.Println("Count:", stats.Count())
	printStat("Mean", stats.Mean)
	printStat("Variance", stats.Variance)
	printStat("StdDev", stats.StandardDeviation)
	printStat("Skewness", stats.Skewness)
	printStat("Kurtosis", stats.Kurtosis)

	fmt.Println()
	fmt.Println("Regression")
	fmt.Println("Count:", regr.Count())
	printStat("Slope", regr.Slope)
	printStat("Intercept", regr.Intercept)
	printStat("Correlation", regr.Correlation)
}

func printStat(label string, query func() (float64, error)) {
	v, err := query()
	if err != nil {
		runstats.Logger.Warnw(
			"statistic unavailable",
			"statistic", label,
			"error", err,
		)
		return
	}

	fmt.Printf("%s: %v\n", label, v)
}
