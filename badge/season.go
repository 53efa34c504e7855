package badge

import "time"

// Window is an inclusive range of calendar dates.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a window from two calendar dates.
func NewWindow(startYear int, startMonth time.Month, startDay int, endYear int, endMonth time.Month, endDay int) Window {
	return Window{
		Start: time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC),
		End:   time.Date(endYear, endMonth, endDay, 0, 0, 0, 0, time.UTC),
	}
}

// Contains reports whether date falls inside the window. An unknown date
// (ok=false) never counts.
func (w Window) Contains(date time.Time, ok bool) bool {
	if !ok {
		return false
	}
	d := truncateDay(date)
	return !d.Before(truncateDay(w.Start)) && !d.After(truncateDay(w.End))
}

// InSeason parses an earned-date string and checks it against the window.
func (w Window) InSeason(earnedDate string) bool {
	return w.Contains(ParseDate(earnedDate))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
