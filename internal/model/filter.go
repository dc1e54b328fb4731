package model

import (
	"fmt"
	"strings"
	"time"
)

// Filter is the active query criteria narrowing the visible expense set. The
// zero value is the identity filter and matches every expense. Filters are
// transient session state; they are never persisted.
type Filter struct {
	Category   *Category
	StartDate  *time.Time
	EndDate    *time.Time
	SearchText string
}

// Matches evaluates the expense against every active criterion. All criteria
// must hold; inactive criteria (zero/nil) are skipped.
func (f Filter) Matches(e Expense) bool {
	if f.SearchText != "" {
		search := strings.ToLower(f.SearchText)
		matchesDescription := strings.Contains(strings.ToLower(e.Description), search)
		matchesCategory := strings.Contains(strings.ToLower(string(e.Category)), search)
		// The amount is matched against its currency rendering, so a search
		// for "1,2" or "$5" behaves the way it reads on screen.
		matchesAmount := strings.Contains(e.FormattedAmount(), f.SearchText)

		if !matchesDescription && !matchesCategory && !matchesAmount {
			return false
		}
	}

	if f.Category != nil && e.Category != *f.Category {
		return false
	}

	// The lower bound is used exactly as given, time of day included.
	if f.StartDate != nil && e.Date.Before(*f.StartDate) {
		return false
	}

	// The upper bound is inclusive of its whole calendar day.
	if f.EndDate != nil && e.Date.After(EndOfDay(*f.EndDate)) {
		return false
	}

	return true
}

// IsActive reports whether any criterion is set.
func (f Filter) IsActive() bool {
	return f.SearchText != "" || f.Category != nil || f.StartDate != nil || f.EndDate != nil
}

// Period is a named date range preset selectable from the UI.
type Period string

const (
	// PeriodToday spans the current calendar day.
	PeriodToday Period = "Today"
	// PeriodThisWeek spans the current week, starting Sunday, through now.
	PeriodThisWeek Period = "This Week"
	// PeriodThisMonth spans the current calendar month.
	PeriodThisMonth Period = "This Month"
	// PeriodLastMonth spans the previous calendar month.
	PeriodLastMonth Period = "Last Month"
	// PeriodThisYear spans January 1 through now.
	PeriodThisYear Period = "This Year"
	// PeriodAllTime clears both date bounds.
	PeriodAllTime Period = "All Time"
)

// Periods returns every period preset in display order.
func Periods() []Period {
	return []Period{
		PeriodToday,
		PeriodThisWeek,
		PeriodThisMonth,
		PeriodLastMonth,
		PeriodThisYear,
		PeriodAllTime,
	}
}

// ParsePeriod resolves a user-supplied period name, case-insensitively.
// Hyphens are accepted in place of spaces so "last-month" works on the CLI.
func ParsePeriod(name string) (Period, error) {
	normalized := strings.ReplaceAll(name, "-", " ")
	for _, p := range Periods() {
		if strings.EqualFold(string(p), normalized) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", name)
}

// PeriodRange maps a period to concrete (start, end) bounds relative to now.
// Either bound may be nil; AllTime clears both.
func PeriodRange(p Period, now time.Time) (start, end *time.Time) {
	switch p {
	case PeriodToday:
		s, e := StartOfDay(now), EndOfDay(now)
		return &s, &e
	case PeriodThisWeek:
		s := StartOfWeek(now)
		e := now
		return &s, &e
	case PeriodThisMonth:
		s, e := StartOfMonth(now), EndOfMonth(now)
		return &s, &e
	case PeriodLastMonth:
		// Anchor on the last day of the previous month so month-length
		// differences (e.g. March 31 -> February) cannot skip a month.
		lastMonth := StartOfMonth(now).AddDate(0, 0, -1)
		s, e := StartOfMonth(lastMonth), EndOfMonth(lastMonth)
		return &s, &e
	case PeriodThisYear:
		s := StartOfYear(now)
		e := now
		return &s, &e
	case PeriodAllTime:
		return nil, nil
	}
	return nil, nil
}
