package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestNextRunDaily(t *testing.T) {
	sched := ScheduledReport{Frequency: FrequencyDaily, Time: "08:00"}

	// Before today's slot: fires today.
	next, err := NextRun(sched, at(2025, time.June, 10, 7, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.June, 10, 8, 0), next)

	// After today's slot: rolls to tomorrow.
	next, err = NextRun(sched, at(2025, time.June, 10, 9, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.June, 11, 8, 0), next)

	// Exactly at the slot: strictly after means tomorrow.
	next, err = NextRun(sched, at(2025, time.June, 10, 8, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.June, 11, 8, 0), next)
}

func TestNextRunWeekly(t *testing.T) {
	// Monday the 9th of June 2025; schedule fires Fridays at 17:30.
	sched := ScheduledReport{Frequency: FrequencyWeekly, DayOfWeek: 5, Time: "17:30"}

	next, err := NextRun(sched, at(2025, time.June, 9, 12, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.June, 13, 17, 30), next)

	// Already past this Friday's slot: next Friday.
	next, err = NextRun(sched, at(2025, time.June, 13, 18, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.June, 20, 17, 30), next)
}

func TestNextRunMonthlyClampsToMonthEnd(t *testing.T) {
	sched := ScheduledReport{Frequency: FrequencyMonthly, DayOfMonth: 31, Time: "06:00"}

	// June has 30 days: the 31st clamps to the 30th.
	next, err := NextRun(sched, at(2025, time.June, 10, 12, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.June, 30, 6, 0), next)

	// Past June's clamped slot: July has a real 31st.
	next, err = NextRun(sched, at(2025, time.June, 30, 7, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.July, 31, 6, 0), next)

	// February in a non-leap year clamps to the 28th.
	next, err = NextRun(sched, at(2025, time.February, 1, 0, 0))
	require.NoError(t, err)
	require.Equal(t, at(2025, time.February, 28, 6, 0), next)
}

func TestNextRunRejectsBadClock(t *testing.T) {
	_, err := NextRun(ScheduledReport{Frequency: FrequencyDaily, Time: "25:99"}, at(2025, time.June, 10, 0, 0))
	require.Error(t, err)
}

func TestNextRunRejectsUnknownFrequency(t *testing.T) {
	_, err := NextRun(ScheduledReport{Frequency: Frequency("HOURLY"), Time: "08:00"}, at(2025, time.June, 10, 0, 0))
	require.Error(t, err)
}

func TestPeriodWindow(t *testing.T) {
	now := at(2025, time.June, 10, 9, 0)

	from, to := periodWindow(PeriodDaily, 0, now)
	require.Equal(t, at(2025, time.June, 9, 0, 0), from)
	require.Equal(t, time.Date(2025, time.June, 10, 23, 59, 59, 0, time.UTC), to)

	from, to = periodWindow(PeriodWeekly, 0, now)
	require.Equal(t, at(2025, time.June, 3, 0, 0), from)
	require.Equal(t, time.Date(2025, time.June, 10, 23, 59, 59, 0, time.UTC), to)

	from, _ = periodWindow(PeriodMonthly, 0, now)
	require.Equal(t, at(2025, time.May, 10, 0, 0), from)

	from, _ = periodWindow(PeriodCustom, 10, now)
	require.Equal(t, at(2025, time.May, 31, 0, 0), from)

	// Custom without a day count defaults to 30 days.
	from, _ = periodWindow(PeriodCustom, 0, now)
	require.Equal(t, at(2025, time.May, 11, 0, 0), from)
}

func TestPeriodWindowIncludesCurrentDay(t *testing.T) {
	now := at(2025, time.June, 10, 9, 0)

	_, to := periodWindow(PeriodDaily, 0, now)
	require.Equal(t, time.Date(2025, time.June, 10, 23, 59, 59, 0, time.UTC), to)
}

func TestPeriodWindowMonthlyAcrossMonthStart(t *testing.T) {
	now := at(2025, time.July, 1, 9, 0)

	from, to := periodWindow(PeriodMonthly, 0, now)
	require.Equal(t, at(2025, time.June, 1, 0, 0), from)
	require.Equal(t, time.Date(2025, time.July, 1, 23, 59, 59, 0, time.UTC), to)
}
