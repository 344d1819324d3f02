// Package report aggregates evaluated bills into a batch summary.
package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/billpay/core/model"
)

// Line is one evaluated bill of a batch.
type Line struct {
	Category string
	Record   model.BillRecord
	Paid     bool
}

// Report summarizes a batch of evaluations.
type Report struct {
	Total     int     `json:"total"`
	Paid      int     `json:"paid"`
	Unpaid    int     `json:"unpaid"`
	PaidRatio float64 `json:"paid_ratio"`

	// TotalShortfall is the money missing over all unpaid bills.
	TotalShortfall float64 `json:"total_shortfall"`

	// MeanCoverage is the mean of available/owed over bills with a positive debt.
	MeanCoverage float64 `json:"mean_coverage"`

	ByCategory map[string]int `json:"by_category"`
}

// Summarize builds a Report from lines. An empty batch yields a zero report.
func Summarize(lines []Line) Report {
	r := Report{ByCategory: make(map[string]int)}
	if len(lines) == 0 {
		return r
	}
	shortfalls := make([]float64, 0, len(lines))
	coverage := make([]float64, 0, len(lines))
	for _, l := range lines {
		r.Total++
		r.ByCategory[l.Category]++
		if l.Paid {
			r.Paid++
		} else {
			r.Unpaid++
			shortfalls = append(shortfalls, float64(l.Record.Shortfall()))
		}
		if l.Record.AmountOwed > 0 {
			coverage = append(coverage, float64(l.Record.AmountAvailable)/float64(l.Record.AmountOwed))
		}
	}
	r.PaidRatio = float64(r.Paid) / float64(r.Total)
	r.TotalShortfall = floats.Sum(shortfalls)
	if len(coverage) > 0 {
		r.MeanCoverage = stat.Mean(coverage, nil)
	}
	return r
}
