package fleet

import (
	"fmt"
	"time"
)

// parseClock parses the schedule's HH:MM run time.
func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("fleet: parse schedule time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// NextRun computes the first fire time strictly after now. A monthly
// day-of-month past the month's end clamps to the last day instead of
// rolling into the next month.
func NextRun(s ScheduledReport, now time.Time) (time.Time, error) {
	hour, minute, err := parseClock(s.Time)
	if err != nil {
		return time.Time{}, err
	}

	switch s.Frequency {
	case FrequencyDaily:
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next, nil

	case FrequencyWeekly:
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		for int(next.Weekday()) != s.DayOfWeek || !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next, nil

	case FrequencyMonthly:
		next := monthlyAt(now.Year(), now.Month(), s.DayOfMonth, hour, minute, now.Location())
		if !next.After(now) {
			next = monthlyAt(now.Year(), now.Month()+1, s.DayOfMonth, hour, minute, now.Location())
		}
		return next, nil
	}

	return time.Time{}, fmt.Errorf("fleet: unknown schedule frequency %q", s.Frequency)
}

func monthlyAt(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, minute, 0, 0, loc)
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

// periodWindow derives the reporting window for a template run. Windows
// end at the close of the current day; from is offset from start of today.
func periodWindow(periodType PeriodType, customDays int, now time.Time) (from, to time.Time) {
	today := startOfDay(now)
	to = endOfDay(now)

	switch periodType {
	case PeriodDaily:
		from = today.AddDate(0, 0, -1)
	case PeriodWeekly:
		from = today.AddDate(0, 0, -7)
	case PeriodMonthly:
		from = today.AddDate(0, -1, 0)
	default:
		days := customDays
		if days <= 0 {
			days = 30
		}
		from = today.AddDate(0, 0, -days)
	}
	return from, to
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
