package rental

import (
	"time"

	"rent-a-tool/internal/logger"
)

// Holiday months recognised by the rental calendar
const (
	IndependenceDayMonth = time.July
	LaborDayMonth        = time.September
)

// ObservedHolidayDate returns the date the holiday falling in month is
// observed in year. Independence Day on a Saturday is observed the Friday
// before and on a Sunday the Monday after. Labor Day is the first Monday of
// September. Any other month logs a warning and reports false.
func ObservedHolidayDate(month time.Month, year int) (time.Time, bool) {
	switch month {
	case IndependenceDayMonth:
		observed := date(year, time.July, 4)
		switch observed.Weekday() {
		case time.Saturday:
			observed = observed.AddDate(0, 0, -1)
		case time.Sunday:
			observed = observed.AddDate(0, 0, 1)
		}
		return observed, true

	case LaborDayMonth:
		first := date(year, time.September, 1)
		offset := (int(time.Monday) - int(first.Weekday()) + 7) % 7
		return first.AddDate(0, 0, offset), true

	default:
		logger.Warn("Observed holiday requested for a month without a holiday; returning no date",
			"month", month.String(), "year", year)
		return time.Time{}, false
	}
}

// observedHolidaysInRange counts the observed holidays of year that fall in
// (start, end]
func observedHolidaysInRange(year int, start, end time.Time) int {
	count := 0
	for _, month := range []time.Month{IndependenceDayMonth, LaborDayMonth} {
		observed, ok := ObservedHolidayDate(month, year)
		if ok && dateInRange(observed, start, end) {
			count++
		}
	}
	return count
}

// dateInRange reports whether target is after start and on or before end
func dateInRange(target, start, end time.Time) bool {
	return start.Before(target) && !target.After(end)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// truncateToDate drops the clock and zone so day arithmetic is exact
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return date(y, m, d)
}
