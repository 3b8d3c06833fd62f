package book

import "time"

// findNextWeekday returns the first date strictly after start whose weekday
// equals target. The gap is always between 1 and 7 days: a start date already
// on the target weekday rolls a full week forward.
func findNextWeekday(start time.Time, target time.Weekday) time.Time {
	daysAhead := int(target - start.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return start.AddDate(0, 0, daysAhead)
}

// adjustForWeekend moves a Saturday or Sunday date to the following Monday.
// Weekday dates are returned unchanged.
func adjustForWeekend(d time.Time) time.Time {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return findNextWeekday(d, time.Monday)
	}
	return d
}

// truncateToDay drops the time-of-day component and pins the date to UTC.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
