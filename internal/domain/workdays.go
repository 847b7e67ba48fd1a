package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkDays is a set of ISO weekday numbers (1 = Monday .. 7 = Sunday)
// stored as a bitmask. The zero value is the empty set.
type WorkDays uint8

// WeekdaysMonToFri is the default Monday-to-Friday work week.
const WeekdaysMonToFri WorkDays = 1<<1 | 1<<2 | 1<<3 | 1<<4 | 1<<5

// ISOWeekday maps time.Weekday onto 1..7 with Sunday as 7.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// NewWorkDays builds a set from ISO weekday numbers.
func NewWorkDays(days ...int) (WorkDays, error) {
	var w WorkDays
	for _, d := range days {
		if d < 1 || d > 7 {
			return 0, fmt.Errorf("%d: %w", d, ErrInvalidWorkDays)
		}
		w |= 1 << d
	}
	return w, nil
}

// ParseWorkDays parses a comma-separated list such as "1,2,3,4,5".
// Blank input yields the empty set.
func ParseWorkDays(s string) (WorkDays, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", part, ErrInvalidWorkDays)
		}
		days = append(days, n)
	}
	return NewWorkDays(days...)
}

// Contains reports whether the weekday is a work day.
func (w WorkDays) Contains(d time.Weekday) bool {
	return w&(1<<ISOWeekday(d)) != 0
}

// Days returns the ISO weekday numbers in ascending order.
func (w WorkDays) Days() []int {
	var out []int
	for d := 1; d <= 7; d++ {
		if w&(1<<d) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of work days per week.
func (w WorkDays) Len() int {
	return len(w.Days())
}

// String renders the canonical comma-separated form.
func (w WorkDays) String() string {
	days := w.Days()
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// Set parses s into w, so *WorkDays can be bound as a command-line flag.
func (w *WorkDays) Set(s string) error {
	parsed, err := ParseWorkDays(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Type names the flag value type in help output.
func (w *WorkDays) Type() string {
	return "weekdays"
}
