package badge

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoPrefix    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	hasLetter    = regexp.MustCompile(`[A-Za-z]`)
	hasYear      = regexp.MustCompile(`\d{4}`)
	monthDayYear = regexp.MustCompile(`([A-Za-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)
	dayMonthYear = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)
	monthYear    = regexp.MustCompile(`([A-Za-z]+)\.?,?\s+(\d{4})`)
	centuryYear  = regexp.MustCompile(`\b(20\d{2})\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// outcome of a single parse attempt. done with ok=false stops the cascade.
type attempt func(s string) (t time.Time, ok, done bool)

// dateAttempts are tried in order; each format rule only runs after the
// previous ones failed to produce a date.
var dateAttempts = []attempt{
	parseISO,
	parseMonthName,
	parseDayFirst,
	parseMonthYear,
	parseBareYear,
}

// ParseDate normalizes an earned-date string as shown on profile pages, e.g.
// "2025-11-03", "January 3, 2026", "Jan 10, 2025", "3 Nov 2025" or "Jul 2026". The result
// is a calendar date at UTC midnight. ok is false when no date can be
// determined.
func ParseDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	for _, try := range dateAttempts {
		t, ok, done := try(s)
		if ok {
			return t, true
		}
		if done {
			return time.Time{}, false
		}
	}
	return time.Time{}, false
}

func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March; reject that.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

func parseISO(s string) (time.Time, bool, bool) {
	m := isoPrefix.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	t, ok := calendarDate(year, time.Month(month), day)
	// an ISO-shaped string with a bad date is not retried with looser rules
	return t, ok, true
}

func monthFromName(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSuffix(name, "."))]
	return m, ok
}

func fromParts(monthName, dayText, yearText string) (time.Time, bool) {
	month, ok := monthFromName(monthName)
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}, false
	}
	return calendarDate(year, month, day)
}

func parseMonthName(s string) (time.Time, bool, bool) {
	if !hasLetter.MatchString(s) || !hasYear.MatchString(s) {
		return time.Time{}, false, false
	}
	for _, m := range monthDayYear.FindAllStringSubmatch(s, -1) {
		if t, ok := fromParts(m[1], m[2], m[3]); ok {
			return t, true, false
		}
	}
	return time.Time{}, false, false
}

func parseDayFirst(s string) (time.Time, bool, bool) {
	m := dayMonthYear.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false, false
	}
	t, ok := fromParts(m[2], m[1], m[3])
	return t, ok, false
}

// parseMonthYear handles dates without a day, e.g. "Jul 2026", as the 1st of
// that month.
func parseMonthYear(s string) (time.Time, bool, bool) {
	for _, m := range monthYear.FindAllStringSubmatch(s, -1) {
		month, ok := monthFromName(m[1])
		if !ok {
			continue
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true, true
	}
	return time.Time{}, false, false
}

func parseBareYear(s string) (time.Time, bool, bool) {
	m := centuryYear.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false, true
	}
	year, _ := strconv.Atoi(m[1])
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true, true
}
