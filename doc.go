// Package dml is a small toolkit for first-look analysis of numeric tables:
// load a CSV into a row-major frame, describe its columns, draw random cells
// and map values between numeric ranges.
//
// 🚀 What is in the box?
//
//	• Column statistics: mean, median, population dispersion, standard deviation
//	• Random sampling: uniform cells with replacement, seedable, goroutine-safe
//	• Scaling: divide by a range span, or map [lower, upper] onto [newLower, newUpper]
//	• Tabular views: CSV loading, head/tail previews, gonum interop
//
// Under the hood, everything is organized into subpackages:
//
//	vector/     Vector ([]float64) with bounds and tolerance helpers
//	frame/      View interface, Dense storage, CSV reader, Head/Tail display
//	stats/      Mean, Median, Dispersion, StdDev, Describe, DescribeAll
//	sampler/    Sampler with functional options and a process-wide default
//	scaler/     ScaleByRange, Rescale, MinMax and the Affine map behind them
//	cmd/dmlstat command line front end with text, JSON and msgpack reports
//
// Errors are sentinels matched with errors.Is; every package re-exports the
// ones it can return. Operations never panic on bad input.
//
// Quick start:
//
//	d, names, err := frame.LoadCSV("scores.csv", frame.WithHeader())
//	if err != nil {
//		log.Fatal(err)
//	}
//	mu, _ := stats.Mean(d, 0)
//	med, _ := stats.Median(d, 0)
//	fmt.Printf("%s: mean=%.2f median=%.2f\n", names[0], mu, med)
//
//	col, _ := frame.Column(d, 0)
//	unit, _ := scaler.Rescale(col, 0, 100, 0, 1)
//	picks, _ := sampler.Sample(d, 5)
package dml
