package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePerformance() *FleetPerformance {
	return &FleetPerformance{
		Period: juneWindow(),
		Summary: FleetPerformanceSummary{
			TotalRoutes:     3,
			TotalDeliveries: 10,
		},
		ByVehicle: []VehiclePerformanceRow{
			{VehicleID: "v1", LicensePlate: "B-FW 101"},
			{VehicleID: "v2", LicensePlate: "B-FW 102"},
		},
		ByDriver: []DriverPerformanceRow{
			{DriverID: "d1", DriverName: "Anna Berger"},
			{DriverID: "d2", DriverName: "Ben Vogel"},
		},
		ByZone: []ZonePerformanceRow{
			{Zone: "Nord"},
			{Zone: "Sued"},
		},
	}
}

func TestApplyFiltersZeroIsIdentity(t *testing.T) {
	rep := samplePerformance()
	require.Same(t, rep, ApplyFilters(rep, Filters{}))
}

func TestApplyFiltersNarrowsRows(t *testing.T) {
	rep := samplePerformance()
	got := ApplyFilters(rep, Filters{
		VehicleIDs: []string{"v2"},
		DriverIDs:  []string{"d1"},
		Zones:      []string{"Sued"},
	})

	perf := got.(*FleetPerformance)
	require.Len(t, perf.ByVehicle, 1)
	require.Equal(t, "v2", perf.ByVehicle[0].VehicleID)
	require.Len(t, perf.ByDriver, 1)
	require.Equal(t, "d1", perf.ByDriver[0].DriverID)
	require.Len(t, perf.ByZone, 1)
	require.Equal(t, "Sued", perf.ByZone[0].Zone)

	// Summaries are display-invariant under filtering.
	require.Equal(t, rep.Summary, perf.Summary)

	// The original report keeps all of its rows.
	require.Len(t, rep.ByVehicle, 2)
	require.Len(t, rep.ByDriver, 2)
	require.Len(t, rep.ByZone, 2)
}

func TestApplyFiltersUnknownIDsEmptyRows(t *testing.T) {
	got := ApplyFilters(samplePerformance(), Filters{VehicleIDs: []string{"nope"}})
	perf := got.(*FleetPerformance)
	require.Empty(t, perf.ByVehicle)
	require.Len(t, perf.ByDriver, 2)
}

func TestApplyFiltersIgnoresUnrelatedCriteria(t *testing.T) {
	rec := &CourierReconciliation{
		Period:     juneWindow(),
		ByProvider: []ProviderReconciliationRow{{Provider: "DPD"}},
	}
	got := ApplyFilters(rec, Filters{VehicleIDs: []string{"v1"}})
	require.Len(t, got.(*CourierReconciliation).ByProvider, 1)
}

func TestApplyFiltersPayoutByDriver(t *testing.T) {
	payout := &DriverPayout{
		Period: juneWindow(),
		ByDriver: []PayoutRow{
			{DriverID: "d1", NetPayEur: 10},
			{DriverID: "d2", NetPayEur: 20},
		},
		Summary: DriverPayoutSummary{TotalDrivers: 2, TotalNetEur: 30},
	}
	got := ApplyFilters(payout, Filters{DriverIDs: []string{"d2"}}).(*DriverPayout)
	require.Len(t, got.ByDriver, 1)
	require.Equal(t, "d2", got.ByDriver[0].DriverID)
	require.Equal(t, 2, got.Summary.TotalDrivers)
}
