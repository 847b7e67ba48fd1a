// Package stats derives aggregate working-hour statistics from a snapshot of
// work sessions.
//
// Every function is pure: it reads the sessions, the target configuration and
// an explicit reference instant, and never consults the wall clock, storage or
// ambient settings. Window boundaries (today, this week, this month) are
// computed in the location of the reference instant, so callers choose the
// viewer's time zone by converting now with time.Time.In before calling.
package stats
