package domain

import "time"

// EntryType distinguishes the two halves of a legacy clock entry pair.
type EntryType string

const (
	ClockIn  EntryType = "CLOCK_IN"
	ClockOut EntryType = "CLOCK_OUT"
)

// WorkEntry is the legacy flat clock log record. Sessions used to be
// reconstructed by pairing consecutive CLOCK_IN/CLOCK_OUT entries.
type WorkEntry struct {
	ID        int64
	Owner     string
	Timestamp time.Time
	Type      EntryType
	Notes     string
}

// Valid reports whether the entry type is one of the known values.
func (t EntryType) Valid() bool {
	return t == ClockIn || t == ClockOut
}
