package rental

import (
	"time"

	"rent-a-tool/internal/domain"
)

const (
	daysPerWeek     = 7
	weekdaysPerWeek = 5
	weekendsPerWeek = 2
	holidaysPerYear = 2
)

// chargeableDays counts the billable days in (checkout, due] under the
// tool's weekday, weekend and holiday policy.
//
// Weekend days go straight into the total. Weekdays are tallied separately
// because observed holidays always land on weekdays, so the holiday count is
// either subtracted from the weekday tally or added on its own depending on
// the policy.
func chargeableDays(tool domain.Tool, rentalDays int, checkout, due time.Time) int {
	holidays := observedHolidays(checkout, due)

	chargeable, weekdays := 0, 0

	// The partial week is anchored to the end of the rental period
	for remaining := rentalDays%daysPerWeek - 1; remaining >= 0; remaining-- {
		day := due.AddDate(0, 0, -remaining)
		if isWeekend(day) {
			if tool.ChargeOnWeekends {
				chargeable++
			}
		} else {
			weekdays++
		}
	}

	fullWeeks := rentalDays / daysPerWeek
	weekdays += weekdaysPerWeek * fullWeeks
	if tool.ChargeOnWeekends {
		chargeable += weekendsPerWeek * fullWeeks
	}

	if tool.ChargeOnWeekdays {
		chargeable += weekdays
		if !tool.ChargeOnHolidays {
			chargeable -= holidays
		}
	} else if tool.ChargeOnHolidays {
		chargeable += holidays
	}

	return chargeable
}

// observedHolidays counts observed holidays in (checkout, due]
func observedHolidays(checkout, due time.Time) int {
	total := observedHolidaysInRange(checkout.Year(), checkout, due)

	yearDifference := due.Year() - checkout.Year()
	if yearDifference > 0 {
		if yearDifference > 1 {
			total += holidaysPerYear * (yearDifference - 1)
		}
		total += observedHolidaysInRange(due.Year(), checkout, due)
	}

	return total
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
