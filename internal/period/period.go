package period

import (
	"fmt"
	"time"
)

// Filter kinds
const (
	None     Kind = iota // No date constraint
	ExactDay             // A single calendar day
	MonthYear            // A calendar month of a given year
	YearOnly             // A whole calendar year
)

// Kind tags the variant held by a Filter
type Kind int

// Filter is an immutable, resolved period selection. Construct it with
// Resolve (or the Day/Month/Year helpers) and pass it by value.
type Filter struct {
	kind  Kind
	day   time.Time
	month int // 0-11, January is 0
	year  int
}

// NoFilter is the zero constraint
func NoFilter() Filter {
	return Filter{kind: None}
}

// Day builds an exact-day filter
func Day(t time.Time) Filter {
	return Filter{kind: ExactDay, day: t}
}

// Month builds a month+year filter; month is 0-based (January is 0)
func Month(month, year int) Filter {
	return Filter{kind: MonthYear, month: month, year: year}
}

// Year builds a year-only filter
func Year(year int) Filter {
	return Filter{kind: YearOnly, year: year}
}

// Resolve turns a raw filter selection into a Filter, applying the
// precedence exact day > month+year > year only > none. A month supplied
// without a year is ignored and the selection falls through to year-only.
func Resolve(day *time.Time, month, year *int) Filter {
	switch {
	case day != nil:
		return Day(*day)
	case month != nil && year != nil:
		return Month(*month, *year)
	case year != nil:
		return Year(*year)
	default:
		return NoFilter()
	}
}

// Kind returns the variant tag
func (f Filter) Kind() Kind {
	return f.kind
}

// IsExactDay reports whether a single-day filter is active
func (f Filter) IsExactDay() bool {
	return f.kind == ExactDay
}

// Range resolves the filter to an inclusive [start, end] instant pair.
// ok is false for NoFilter, meaning all records are eligible. Boundaries
// are civil-day boundaries in the filter's location: starts at
// 00:00:00.000, ends at 23:59:59.999.
func (f Filter) Range() (start, end time.Time, ok bool) {
	switch f.kind {
	case ExactDay:
		y, m, d := f.day.Date()
		loc := f.day.Location()
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		end = time.Date(y, m, d, 23, 59, 59, 999e6, loc)
	case MonthYear:
		start = time.Date(f.year, time.Month(f.month+1), 1, 0, 0, 0, 0, time.Local)
		// Day 0 of the next month is the last day of this one, which
		// handles 28/29/30/31-day months and leap years.
		end = time.Date(f.year, time.Month(f.month+2), 0, 23, 59, 59, 999e6, time.Local)
	case YearOnly:
		start = time.Date(f.year, time.January, 1, 0, 0, 0, 0, time.Local)
		end = time.Date(f.year, time.December, 31, 23, 59, 59, 999e6, time.Local)
	default:
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// CacheKey returns a stable string form of the filter, used in Redis keys
func (f Filter) CacheKey() string {
	switch f.kind {
	case ExactDay:
		return "day:" + f.day.Format("2006-01-02")
	case MonthYear:
		return fmt.Sprintf("month:%d-%d", f.month, f.year)
	case YearOnly:
		return fmt.Sprintf("year:%d", f.year)
	default:
		return "none"
	}
}
