package service

import "time"

// dateLayout is the wire and storage format for all calendar-day fields.
// Rollup queries rely on the lexicographic prefix structure of this layout.
const dateLayout = "2006-01-02"

// validDate reports whether s is a well-formed "YYYY-MM-DD" day.
// The length check rejects inputs time.Parse would accept loosely
// (e.g. "2026-1-2") that would break prefix-based rollups.
func validDate(s string) bool {
	if len(s) != len(dateLayout) {
		return false
	}

	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// today returns the current UTC day in storage format. Summary endpoints
// anchor their daily/monthly/yearly buckets on it.
func today() string {
	return time.Now().UTC().Format(dateLayout)
}
