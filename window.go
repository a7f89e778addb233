package finplan

import "strconv"

// yearBound extracts the calendar year from a date bound such as
// "2031-06-15". Only the first four characters are considered; dates carry
// no more than year precision here. ok is false for an empty or unparsable
// bound, which callers treat as "no bound at all" rather than an error.
func yearBound(s string) (year int, ok bool) {
	if len(s) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// windowContains reports whether the calendar year falls inside the
// inclusive [start, end] window. A missing or unparsable bound leaves that
// side of the window open.
func windowContains(start, end string, year int) bool {
	if from, ok := yearBound(start); ok && year < from {
		return false
	}
	if to, ok := yearBound(end); ok && year > to {
		return false
	}
	return true
}
