// Package records maintains filtered views over fetched record snapshots.
// Filtering is a pure function of (snapshot, filters); views recompute it on
// every mutation so the visible subset can never go stale.
package records

import (
	"fmt"
	"strings"
	"time"

	"finledger/internal/models"
)

// Date is a calendar date. Comparing at this granularity is what makes the
// date filter ignore time-of-day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// Matches reports whether t falls on this calendar date. The instant's own
// offset is respected: 2024-01-05T23:59:00 matches 2024-01-05 no matter the
// zone it was recorded in.
func (d Date) Matches(t time.Time) bool {
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Filters are the active predicates over a record snapshot. Both are
// conjunctive when set. Class compares case-insensitively against the
// record's category (expenses) or type (transactions).
type Filters struct {
	Date  *Date
	Class string
}

// Apply returns the order-preserving subset of recs matching f.
//
// A record whose createdAt cannot be parsed never matches a date filter, and
// a record missing its class field never matches a class filter; absence is
// non-matching, not a wildcard.
func Apply(recs []models.Record, kind models.Kind, f Filters) []models.Record {
	out := make([]models.Record, 0, len(recs))
	for _, r := range recs {
		if f.Date != nil {
			t, ok := r.CreatedAtTime()
			if !ok || !f.Date.Matches(t) {
				continue
			}
		}
		if f.Class != "" {
			class := r.Class(kind)
			if class == "" || !strings.EqualFold(class, f.Class) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
