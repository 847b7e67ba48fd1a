package service

import (
	"time"
)

func clockOrNow(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}

// storedNow returns the clock reading at the precision sessions are stored.
func storedNow(clock Clock) time.Time {
	return clock().UTC().Truncate(time.Second)
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
