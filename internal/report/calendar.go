package report

import "time"

// MonthDays lists the calendar days of a month, skipping Fridays when asked.
func MonthDays(year, month int, excludeFridays bool) []int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	var days []int
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if excludeFridays && d.Weekday() == time.Friday {
			continue
		}
		days = append(days, d.Day())
	}
	return days
}
