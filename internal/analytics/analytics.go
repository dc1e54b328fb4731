// Package analytics computes every derived view of the expense collection:
// filtered listings, totals, category breakdowns, and time-bucketed series.
// All functions are pure; they take the collection, the active filter, and a
// reference time as explicit parameters and never mutate their inputs.
package analytics

import (
	"sort"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// RecentLimit is how many expenses the recent view returns at most.
const RecentLimit = 5

// SeriesMonths is the length of the per-category monthly series.
const SeriesMonths = 6

// FilteredSorted returns the expenses matching the filter, newest first.
// The sort is stable, so same-date expenses keep their insertion order.
func FilteredSorted(expenses []model.Expense, filter model.Filter) []model.Expense {
	filtered := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter.Matches(e) {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered
}

// Total sums the amounts of the given expenses. Empty input yields 0.
func Total(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// MonthlyTotal sums every expense falling in the same calendar month as now.
// It always runs against the full collection, not the filtered view, so the
// dashboard's this-month figure reflects absolute activity regardless of what
// the user is currently searching for.
func MonthlyTotal(all []model.Expense, now time.Time) float64 {
	var total float64
	for _, e := range all {
		if model.SameMonth(e.Date, now) {
			total += e.Amount
		}
	}
	return total
}

// CategoryTotal pairs a category with its aggregate amount.
type CategoryTotal struct {
	Category model.Category
	Total    float64
}

// CategoryBreakdown aggregates the filtered expenses per category, largest
// total first. Categories absent from the input are omitted, never
// zero-padded. Ties keep the canonical category order.
func CategoryBreakdown(filtered []model.Expense) []CategoryTotal {
	totals := make(map[model.Category]float64)
	for _, e := range filtered {
		totals[e.Category] += e.Amount
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for _, c := range model.Categories() {
		if total, ok := totals[c]; ok {
			breakdown = append(breakdown, CategoryTotal{Category: c, Total: total})
		}
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}

// TopCategory returns the largest breakdown entry. ok is false when the
// filtered set is empty and there is no top category.
func TopCategory(filtered []model.Expense) (top CategoryTotal, ok bool) {
	breakdown := CategoryBreakdown(filtered)
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}

// Recent returns the first RecentLimit entries of the date-descending view,
// fewer if the collection is smaller.
func Recent(filtered []model.Expense) []model.Expense {
	n := len(filtered)
	if n > RecentLimit {
		n = RecentLimit
	}
	out := make([]model.Expense, n)
	copy(out, filtered[:n])
	return out
}

// DailyAverage divides the filtered total by the whole-day span between the
// earliest and latest expense dates. The span is computed on calendar days
// with time of day stripped and is never less than one, so a single-day set
// averages to its own total. Empty input yields 0.
func DailyAverage(filtered []model.Expense) float64 {
	if len(filtered) == 0 {
		return 0
	}

	earliest := model.StartOfDay(filtered[0].Date)
	latest := earliest
	for _, e := range filtered[1:] {
		day := model.StartOfDay(e.Date)
		if day.Before(earliest) {
			earliest = day
		}
		if day.After(latest) {
			latest = day
		}
	}

	spanDays := daysBetween(earliest, latest)
	if spanDays < 1 {
		spanDays = 1
	}

	return Total(filtered) / float64(spanDays)
}

// daysBetween counts calendar days from one midnight to another. Stepping by
// calendar date keeps the count right across DST transitions, where a wall
// day is 23 or 25 hours and duration division would drift.
func daysBetween(from, to time.Time) int {
	days := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// MonthlyByCategorySeries buckets the full collection into the last
// SeriesMonths calendar months per category. Index 0 is the current month,
// index SeriesMonths-1 the oldest. Every category is present, zero-padded if
// it has no activity; the active filter is deliberately ignored.
func MonthlyByCategorySeries(all []model.Expense, now time.Time) map[model.Category][]float64 {
	series := make(map[model.Category][]float64, len(model.Categories()))
	for _, c := range model.Categories() {
		series[c] = make([]float64, SeriesMonths)
	}

	for offset := 0; offset < SeriesMonths; offset++ {
		// Anchor on the first of the month so short months cannot shift
		// the bucket when now is late in a long month.
		month := model.StartOfMonth(now).AddDate(0, -offset, 0)
		for _, e := range all {
			if model.SameMonth(e.Date, month) {
				series[e.Category][offset] += e.Amount
			}
		}
	}

	return series
}
