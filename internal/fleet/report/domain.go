package report

import (
	"errors"
	"math"
	"time"
)

// ReportType tags one of the six analytical reports the engine can produce.
type ReportType string

const (
	TypeFleetPerformance      ReportType = "fleet_performance"
	TypeFuelConsumption       ReportType = "fuel_consumption"
	TypeVehicleUtilization    ReportType = "vehicle_utilization"
	TypeMaintenanceCost       ReportType = "maintenance_cost"
	TypeDriverPayout          ReportType = "driver_payout"
	TypeCourierReconciliation ReportType = "courier_reconciliation"
)

// IsValid checks if the report type is one of the known tags.
func (t ReportType) IsValid() bool {
	switch t {
	case TypeFleetPerformance, TypeFuelConsumption, TypeVehicleUtilization,
		TypeMaintenanceCost, TypeDriverPayout, TypeCourierReconciliation:
		return true
	default:
		return false
	}
}

// AllTypes lists every known report type in a stable order.
func AllTypes() []ReportType {
	return []ReportType{
		TypeFleetPerformance,
		TypeFuelConsumption,
		TypeVehicleUtilization,
		TypeMaintenanceCost,
		TypeDriverPayout,
		TypeCourierReconciliation,
	}
}

var (
	// ErrUnknownReportType indicates an unsupported report type tag.
	ErrUnknownReportType = errors.New("report: unknown report type")
	// ErrInvalidWindow indicates a window whose start falls after its end.
	ErrInvalidWindow = errors.New("report: window start after end")
)

// Window is the inclusive calendar range a report covers.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SectionKey identifies a break-down sequence within a report.
type SectionKey string

const (
	SectionVehicle  SectionKey = "byVehicle"
	SectionDriver   SectionKey = "byDriver"
	SectionZone     SectionKey = "byZone"
	SectionMonth    SectionKey = "byMonth"
	SectionType     SectionKey = "byType"
	SectionProvider SectionKey = "byProvider"
)

// Field is one ordered summary scalar of a report.
type Field struct {
	Key   string
	Value any
}

// Section is a tabular projection of one break-down, consumed by renderers.
// Columns carry the wire field keys; Rows hold cell values in column order.
type Section struct {
	Key     SectionKey
	Title   string
	Columns []string
	Rows    [][]any
}

// Report is the closed set of six report variants. Summary fields and
// sections are projected in a fixed, deterministic order so every output
// format sees identical numbers and identical row ordering.
type Report interface {
	Kind() ReportType
	Span() Window
	SummaryFields() []Field
	Sections() []Section
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places. All monetary amounts go through
// this at the point of computation, never at render time.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to three decimal places (per-liter prices).
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// pct computes round(n/d*100) as an integer percentage, 0 when d is 0.
func pct(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}

// ratio1 computes round1(n/d), 0 when d is 0.
func ratio1(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return round1(n / d)
}

// ratio2 computes round2(n/d), 0 when d is 0.
func ratio2(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return round2(n / d)
}

// ratio3 computes round3(n/d), 0 when d is 0.
func ratio3(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return round3(n / d)
}

// dayKey renders the calendar date of t as YYYY-MM-DD in UTC.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// monthKey renders the calendar month of t as YYYY-MM in UTC.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// isSaturday reports whether t falls on a Saturday.
func isSaturday(t time.Time) bool {
	return t.Weekday() == time.Saturday
}

// workingDays counts weekdays (Mon-Fri) between from and to inclusive.
func workingDays(from, to time.Time) int {
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}
