package domain

import "time"

// WorkSession is a single stretch of work. A nil EndTime marks the session
// as open (the owner is currently clocked in).
type WorkSession struct {
	ID        int64
	Owner     string
	StartTime time.Time
	EndTime   *time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the session has not been clocked out yet.
func (s *WorkSession) IsOpen() bool {
	return s.EndTime == nil
}

// IsClosed reports whether the session has both ends recorded in order.
// Sessions whose end precedes their start are neither open nor closed.
func (s *WorkSession) IsClosed() bool {
	return s.EndTime != nil && !s.EndTime.Before(s.StartTime)
}

// Duration returns the worked time of a closed session, zero otherwise.
func (s *WorkSession) Duration() time.Duration {
	if !s.IsClosed() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// Hours returns Duration in fractional hours.
func (s *WorkSession) Hours() float64 {
	return s.Duration().Hours()
}

// Close sets the end of the session. It returns ErrEndBeforeStart when end
// precedes the start time.
func (s *WorkSession) Close(end time.Time, now time.Time) error {
	if end.Before(s.StartTime) {
		return ErrEndBeforeStart
	}
	s.EndTime = &end
	s.UpdatedAt = now
	return nil
}

// AppendNote adds note to the existing notes, separated by a newline.
func (s *WorkSession) AppendNote(note string) {
	if note == "" {
		return
	}
	if s.Notes == "" {
		s.Notes = note
		return
	}
	s.Notes = s.Notes + "\n" + note
}
