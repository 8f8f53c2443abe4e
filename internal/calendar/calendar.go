// Package calendar maps heatmap grid coordinates to calendar days.
//
// Column 0, row 0 is the epoch: a week-start day roughly one year back.
// Each column is one week and each row one day, so (col, row) lies
// col*7 + row days after the epoch.
//
// The default anchor (this week's Sunday minus 51 weeks) approximates the
// "past year" window of hosted contribution graphs. It is best-effort: the
// hosting service's own boundary rule is undocumented and the art may land
// one column off. Supply a different Anchor to change the rule.
package calendar

import (
	"time"
)

const (
	// DaysPerWeek is the number of rows in a heatmap column.
	DaysPerWeek = 7

	// DefaultWeeksBack is how far before the current week column 0 starts.
	DefaultWeeksBack = 51

	// CommitHour is the wall-clock hour stamped on every commit, far enough
	// from midnight that no timezone shift moves it onto a neighbouring day.
	CommitHour = 12

	timestampLayout = "2006-01-02T15:04:05"
)

// Anchor computes the epoch for a run started at now.
type Anchor interface {
	Start(now time.Time) time.Time
}

// WeekAnchor anchors the epoch to the most recent WeekStart day on or before
// today, then steps WeeksBack weeks into the past.
type WeekAnchor struct {
	WeekStart time.Weekday
	WeeksBack int
}

// DefaultAnchor is Sunday-based and 51 weeks back.
func DefaultAnchor() WeekAnchor {
	return WeekAnchor{WeekStart: time.Sunday, WeeksBack: DefaultWeeksBack}
}

// Start implements Anchor. The result is midnight in now's location.
func (a WeekAnchor) Start(now time.Time) time.Time {
	today := Midnight(now)
	back := (int(today.Weekday()) - int(a.WeekStart) + DaysPerWeek) % DaysPerWeek
	weekStart := today.AddDate(0, 0, -back)
	return weekStart.AddDate(0, 0, -DaysPerWeek*a.WeeksBack)
}

// AnchorFunc adapts a plain function to Anchor.
type AnchorFunc func(now time.Time) time.Time

// Start implements Anchor.
func (f AnchorFunc) Start(now time.Time) time.Time {
	return f(now)
}

// Midnight truncates t to the start of its day in its own location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// HeatmapStart is the default anchor applied to now.
func HeatmapStart(now time.Time) time.Time {
	return DefaultAnchor().Start(now)
}

// CellDate returns the day shown at (col, row). AddDate keeps month, year and
// leap-day rollover in the calendar's hands.
func CellDate(start time.Time, col, row int) time.Time {
	return start.AddDate(0, 0, col*DaysPerWeek+row)
}

// EndDate is the day in the last row of column cols-1.
func EndDate(start time.Time, cols int) time.Time {
	return CellDate(start, cols-1, DaysPerWeek-1)
}

// Timestamp formats d as the timezone-naive midday string git accepts in
// GIT_AUTHOR_DATE and GIT_COMMITTER_DATE.
func Timestamp(d time.Time) string {
	y, m, day := d.Date()
	return time.Date(y, m, day, CommitHour, 0, 0, 0, time.UTC).Format(timestampLayout)
}

// Day formats d as YYYY-MM-DD.
func Day(d time.Time) string {
	return d.Format(time.DateOnly)
}
