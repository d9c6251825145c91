package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testOwner = "owner-1"

// June 2025: the 2nd is a Monday, the 7th a Saturday.
func juneDay(d int) time.Time {
	return time.Date(2025, time.June, d, 12, 0, 0, 0, time.UTC)
}

func juneWindow() Window {
	return Window{
		From: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.June, 8, 23, 59, 59, 0, time.UTC),
	}
}

func deliveredStops(n int) []Stop {
	stops := make([]Stop, n)
	for i := range stops {
		stops[i] = Stop{Status: StopStatusDelivered}
	}
	return stops
}

func TestGenerateInvalidWindow(t *testing.T) {
	engine := NewEngine(NewMemorySource())
	w := Window{From: juneDay(8), To: juneDay(2)}
	_, err := engine.Generate(context.Background(), testOwner, TypeFleetPerformance, w)
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestGenerateUnknownType(t *testing.T) {
	engine := NewEngine(NewMemorySource())
	_, err := engine.Generate(context.Background(), testOwner, ReportType("bogus"), juneWindow())
	require.ErrorIs(t, err, ErrUnknownReportType)
}

func TestFleetPerformance(t *testing.T) {
	src := NewMemorySource()
	src.AddRoutes(
		Route{
			OwnerID: testOwner, VehicleID: "v1", LicensePlate: "B-FW 101",
			DriverID: "d1", DriverName: "Anna Berger", Zone: "Nord",
			Date: juneDay(2), Status: RouteStatusCompleted, ActualDistanceKm: 40, ActualDurationMin: 180,
			Stops: append(deliveredStops(3), Stop{Status: StopStatusFailed}),
		},
		Route{
			OwnerID: testOwner, VehicleID: "v1", LicensePlate: "B-FW 101",
			DriverID: "d1", DriverName: "Anna Berger",
			Date: juneDay(7), Status: RouteStatusPartial, ActualDistanceKm: 10, ActualDurationMin: 60,
			Stops: deliveredStops(2),
		},
		Route{
			OwnerID: testOwner, VehicleID: "v2", LicensePlate: "B-FW 102",
			Zone: "Nord", Date: juneDay(3), Status: RouteStatusCancelled,
		},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeFleetPerformance, juneWindow())
	require.NoError(t, err)
	perf, ok := rep.(*FleetPerformance)
	require.True(t, ok)

	require.Equal(t, 3, perf.Summary.TotalRoutes)
	require.Equal(t, 1, perf.Summary.CompletedRoutes)
	require.Equal(t, 1, perf.Summary.PartialRoutes)
	require.Equal(t, 1, perf.Summary.CancelledRoutes)
	require.Equal(t, 33, perf.Summary.CompletionRate)
	require.Equal(t, 6, perf.Summary.TotalDeliveries)
	require.Equal(t, 5, perf.Summary.SuccessfulDeliveries)
	require.Equal(t, 1, perf.Summary.FailedDeliveries)
	require.Equal(t, 83, perf.Summary.DeliverySuccessRate)
	require.Equal(t, 50.0, perf.Summary.TotalDistanceKm)
	require.Equal(t, 16.7, perf.Summary.AvgDistancePerRouteKm)

	require.Len(t, perf.ByVehicle, 2)
	require.Equal(t, "v1", perf.ByVehicle[0].VehicleID)
	require.Equal(t, 2, perf.ByVehicle[0].RoutesCompleted)
	require.Equal(t, 5, perf.ByVehicle[0].DeliveriesCompleted)
	require.Equal(t, 83, perf.ByVehicle[0].DeliverySuccessRate)

	// Routes without a driver stay out of the driver break-down.
	require.Len(t, perf.ByDriver, 1)
	require.Equal(t, "d1", perf.ByDriver[0].DriverID)
	require.Equal(t, 48.0, perf.ByDriver[0].AvgTimePerDeliveryMin)

	// A blank zone reports as Unknown.
	require.Len(t, perf.ByZone, 2)
	require.Equal(t, ZonePerformanceRow{Zone: "Nord", Deliveries: 4, SuccessRate: 75}, perf.ByZone[0])
	require.Equal(t, ZonePerformanceRow{Zone: "Unknown", Deliveries: 2, SuccessRate: 100}, perf.ByZone[1])
}

func TestFleetPerformanceEmpty(t *testing.T) {
	rep, err := NewEngine(NewMemorySource()).Generate(context.Background(), testOwner, TypeFleetPerformance, juneWindow())
	require.NoError(t, err)
	perf := rep.(*FleetPerformance)
	require.Zero(t, perf.Summary.CompletionRate)
	require.Zero(t, perf.Summary.DeliverySuccessRate)
	require.Zero(t, perf.Summary.AvgDistancePerRouteKm)
}

func TestFuelConsumption(t *testing.T) {
	src := NewMemorySource()
	src.AddRoutes(
		Route{OwnerID: testOwner, VehicleID: "v1", Date: juneDay(2), Status: RouteStatusCompleted, ActualDistanceKm: 40},
		Route{OwnerID: testOwner, VehicleID: "v1", Date: juneDay(7), Status: RouteStatusPartial, ActualDistanceKm: 10},
	)
	src.AddFuelFills(
		FuelFill{
			OwnerID: testOwner, VehicleID: "v1", LicensePlate: "B-FW 101",
			Make: "Mercedes", Model: "Sprinter", FuelType: "DIESEL",
			FilledAt: juneDay(3), Liters: 40, TotalCostEur: 72,
		},
		FuelFill{
			OwnerID: testOwner, VehicleID: "v1", LicensePlate: "B-FW 101",
			Make: "Mercedes", Model: "Sprinter", FuelType: "DIESEL",
			FilledAt: juneDay(6), Liters: 30, TotalCostEur: 51,
		},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeFuelConsumption, juneWindow())
	require.NoError(t, err)
	fuel := rep.(*FuelConsumption)

	require.Equal(t, 70.0, fuel.Summary.TotalLiters)
	require.Equal(t, 123.0, fuel.Summary.TotalCostEur)
	require.Equal(t, 1.757, fuel.Summary.AvgPricePerLiter)
	require.Equal(t, 140.0, fuel.Summary.AvgConsumptionLitersPer100km)
	require.Equal(t, 50.0, fuel.Summary.TotalDistanceKm)

	require.Len(t, fuel.ByVehicle, 1)
	require.Equal(t, 2, fuel.ByVehicle[0].FillUps)
	require.Equal(t, 140.0, fuel.ByVehicle[0].ConsumptionLitersPer100km)

	require.Len(t, fuel.ByMonth, 1)
	require.Equal(t, FuelMonthRow{Month: "2025-06", Liters: 70, CostEur: 123, AvgPrice: 1.757}, fuel.ByMonth[0])
}

func TestFuelConsumptionMonthsSorted(t *testing.T) {
	w := Window{
		From: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC),
	}
	src := NewMemorySource()
	src.AddFuelFills(
		FuelFill{OwnerID: testOwner, VehicleID: "v1", FilledAt: juneDay(3), Liters: 10, TotalCostEur: 18},
		FuelFill{OwnerID: testOwner, VehicleID: "v1", FilledAt: time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC), Liters: 20, TotalCostEur: 34},
		FuelFill{OwnerID: testOwner, VehicleID: "v1", FilledAt: time.Date(2025, time.May, 20, 12, 0, 0, 0, time.UTC), Liters: 30, TotalCostEur: 54},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeFuelConsumption, w)
	require.NoError(t, err)
	fuel := rep.(*FuelConsumption)

	require.Len(t, fuel.ByMonth, 3)
	require.Equal(t, "2025-04", fuel.ByMonth[0].Month)
	require.Equal(t, "2025-05", fuel.ByMonth[1].Month)
	require.Equal(t, "2025-06", fuel.ByMonth[2].Month)
}

func TestVehicleUtilization(t *testing.T) {
	src := NewMemorySource()
	src.AddVehicles(
		Vehicle{ID: "v1", OwnerID: testOwner, LicensePlate: "B-FW 101", Status: VehicleStatusAvailable},
		Vehicle{ID: "v2", OwnerID: testOwner, LicensePlate: "B-FW 102", Status: VehicleStatusMaintenance},
	)
	src.AddRoutes(
		Route{OwnerID: testOwner, VehicleID: "v1", Date: juneDay(2), Status: RouteStatusCompleted},
		Route{OwnerID: testOwner, VehicleID: "v1", Date: juneDay(2), Status: RouteStatusCompleted},
		Route{OwnerID: testOwner, VehicleID: "v1", Date: juneDay(3), Status: RouteStatusPlanned},
		// Unknown vehicle, ignored.
		Route{OwnerID: testOwner, VehicleID: "v9", Date: juneDay(4), Status: RouteStatusCompleted},
	)
	src.AddMaintenance(
		MaintenanceEvent{OwnerID: testOwner, VehicleID: "v2", Type: "REPAIR", ServiceDate: juneDay(4), TotalCostEur: 100},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeVehicleUtilization, juneWindow())
	require.NoError(t, err)
	util := rep.(*VehicleUtilization)

	require.Equal(t, 5, util.Summary.TotalWorkingDays)
	require.Equal(t, 2, util.Summary.TotalVehicles)
	require.Equal(t, 2, util.Summary.TotalActiveDays)
	require.Equal(t, 20, util.Summary.AvgUtilizationPercent)
	require.Equal(t, 1.0, util.Summary.AvgDaysActivePerVehicle)

	require.Len(t, util.ByVehicle, 2)
	v1 := util.ByVehicle[0]
	require.Equal(t, 2, v1.ActiveDays)
	require.Equal(t, 3, v1.IdleDays)
	require.Equal(t, 40, v1.UtilizationPercent)
	require.Equal(t, 2, v1.RoutesCompleted)
	require.Equal(t, 1.0, v1.AvgRoutesPerActiveDay)

	v2 := util.ByVehicle[1]
	require.Equal(t, 0, v2.ActiveDays)
	require.Equal(t, 1, v2.MaintenanceDays)
	require.Equal(t, 4, v2.IdleDays)
}

func TestMaintenanceCost(t *testing.T) {
	next := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)
	src := NewMemorySource()
	src.AddVehicles(
		Vehicle{ID: "v1", OwnerID: testOwner, LicensePlate: "B-FW 101", Status: VehicleStatusAvailable, NextServiceDate: &next},
		Vehicle{ID: "v2", OwnerID: testOwner, LicensePlate: "B-FW 102", Status: VehicleStatusAvailable},
	)
	src.AddMaintenance(
		MaintenanceEvent{
			OwnerID: testOwner, VehicleID: "v1", Type: MaintenanceScheduledService,
			ServiceDate: juneDay(2), TotalCostEur: 200, PartsCostEur: 120, LaborCostEur: 80,
		},
		MaintenanceEvent{
			OwnerID: testOwner, VehicleID: "v1", Type: "REPAIR",
			ServiceDate: juneDay(5), TotalCostEur: 350.50, PartsCostEur: 200.25, LaborCostEur: 150.25,
		},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeMaintenanceCost, juneWindow())
	require.NoError(t, err)
	mnt := rep.(*MaintenanceCost)

	require.Equal(t, 550.50, mnt.Summary.TotalCostEur)
	require.Equal(t, 275.25, mnt.Summary.AvgCostPerVehicle)
	require.Equal(t, 1, mnt.Summary.ScheduledCount)
	require.Equal(t, 1, mnt.Summary.UnscheduledCount)
	require.Equal(t, 320.25, mnt.Summary.PartsCostEur)
	require.Equal(t, 230.25, mnt.Summary.LaborCostEur)

	require.Len(t, mnt.ByVehicle, 2)
	require.Equal(t, 550.50, mnt.ByVehicle[0].TotalCostEur)
	require.Equal(t, 2, mnt.ByVehicle[0].MaintenanceCount)
	require.NotNil(t, mnt.ByVehicle[0].LastMaintenance)
	require.Equal(t, juneDay(5), *mnt.ByVehicle[0].LastMaintenance)
	require.NotNil(t, mnt.ByVehicle[0].NextScheduled)
	require.Equal(t, next, *mnt.ByVehicle[0].NextScheduled)

	// Zero-spend vehicles still get a row.
	require.Equal(t, "v2", mnt.ByVehicle[1].VehicleID)
	require.Zero(t, mnt.ByVehicle[1].TotalCostEur)
	require.Nil(t, mnt.ByVehicle[1].LastMaintenance)

	require.Len(t, mnt.ByType, 2)
	require.Equal(t, MaintenanceScheduledService, mnt.ByType[0].Type)
	require.Equal(t, 200.0, mnt.ByType[0].AvgCostEur)
}

func TestDriverPayout(t *testing.T) {
	src := NewMemorySource()
	src.AddRoutes(
		Route{
			OwnerID: testOwner, VehicleID: "v1", DriverID: "d1", DriverName: "Anna Berger",
			Date: juneDay(2), Status: RouteStatusCompleted, ActualDistanceKm: 40,
			Stops: append(deliveredStops(3), Stop{Status: StopStatusFailed}),
		},
		Route{
			OwnerID: testOwner, VehicleID: "v1", DriverID: "d1", DriverName: "Anna Berger",
			Date: juneDay(7), Status: RouteStatusPartial, ActualDistanceKm: 10,
			Stops: []Stop{
				{Status: StopStatusDelivered, ParcelCount: 2},
				{Status: StopStatusDelivered, ParcelCount: 2},
			},
		},
		// Cancelled routes never pay.
		Route{
			OwnerID: testOwner, VehicleID: "v2", DriverID: "d2", DriverName: "Ben Vogel",
			Date: juneDay(3), Status: RouteStatusCancelled, ActualDistanceKm: 25,
			Stops: deliveredStops(4),
		},
		// Driverless routes stay out of the payout.
		Route{
			OwnerID: testOwner, VehicleID: "v2",
			Date: juneDay(4), Status: RouteStatusCompleted, ActualDistanceKm: 12,
			Stops: deliveredStops(2),
		},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeDriverPayout, juneWindow())
	require.NoError(t, err)
	payout := rep.(*DriverPayout)

	require.Equal(t, 1, payout.Summary.TotalDrivers)
	require.Len(t, payout.ByDriver, 1)

	row := payout.ByDriver[0]
	require.Equal(t, 2, row.RoutesCompleted)
	require.Equal(t, 5, row.Deliveries)
	require.Equal(t, 7, row.Parcels)
	require.Equal(t, 50.0, row.DistanceKm)
	// 7 parcels * 1.20 + 50 km * 0.35 = 25.90, plus 2 Saturday stops * 0.50.
	require.Equal(t, 1.0, row.BonusesEur)
	require.Equal(t, 26.90, row.GrossPayEur)
	require.Equal(t, 5.11, row.TaxWithholdingEur)
	require.Equal(t, 21.79, row.NetPayEur)

	require.Equal(t, 26.90, payout.Summary.TotalGrossEur)
	require.Equal(t, 5.11, payout.Summary.TotalTaxWithholdingEur)
	require.Equal(t, 21.79, payout.Summary.TotalNetEur)
	require.Equal(t, 21.79, payout.Summary.AvgPayoutPerDriver)
	require.Equal(t, 5, payout.Summary.TotalDeliveries)
}

func TestCourierReconciliation(t *testing.T) {
	src := NewMemorySource()
	src.AddCourierDeliveries(
		CourierDelivery{OwnerID: testOwner, Provider: "DPD", Status: "DELIVERED", CreatedAt: juneDay(2)},
		CourierDelivery{OwnerID: testOwner, Provider: "DPD", Status: "DELIVERED", CreatedAt: juneDay(7)},
		// Blank provider falls back to DPD; returns skip the Saturday uplift.
		CourierDelivery{OwnerID: testOwner, Provider: "", Status: "RETURNED", CreatedAt: juneDay(7)},
		CourierDelivery{OwnerID: testOwner, Provider: "GLS", Status: "EXPRESS_DELIVERED", CreatedAt: juneDay(3)},
		CourierDelivery{OwnerID: testOwner, Provider: "GLS", Status: "FAILED", CreatedAt: juneDay(4)},
		// Unknown providers bill at DPD rates under their own name.
		CourierDelivery{OwnerID: testOwner, Provider: "UPS", Status: "DELIVERED", CreatedAt: juneDay(5)},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeCourierReconciliation, juneWindow())
	require.NoError(t, err)
	rec := rep.(*CourierReconciliation)

	require.Len(t, rec.ByProvider, 3)

	dpd := rec.ByProvider[0]
	require.Equal(t, "DPD", dpd.Provider)
	require.Equal(t, 3, dpd.TotalDeliveries)
	require.Equal(t, 2, dpd.StandardDeliveries)
	require.Equal(t, 1, dpd.Returns)
	// 4.50 weekday + 5.85 Saturday + 5.20 return.
	require.Equal(t, 15.55, dpd.CalculatedAmountEur)
	require.Equal(t, 1.35, dpd.SaturdayBonusEur)
	require.Equal(t, dpd.CalculatedAmountEur, dpd.NetPaymentEur)

	gls := rec.ByProvider[1]
	require.Equal(t, "GLS", gls.Provider)
	require.Equal(t, 1, gls.ExpressDeliveries)
	require.Equal(t, 1, gls.Failed)
	require.Equal(t, 8.50, gls.CalculatedAmountEur)

	ups := rec.ByProvider[2]
	require.Equal(t, "UPS", ups.Provider)
	require.Equal(t, 4.50, ups.CalculatedAmountEur)

	require.Equal(t, 6, rec.Totals.TotalDeliveries)
	require.Equal(t, 28.55, rec.Totals.TotalPaymentEur)
}

func TestGenerateDeterministic(t *testing.T) {
	src := NewMemorySource()
	src.AddRoutes(
		Route{OwnerID: testOwner, VehicleID: "v3", DriverID: "d3", Date: juneDay(2), Status: RouteStatusCompleted, Stops: deliveredStops(1)},
		Route{OwnerID: testOwner, VehicleID: "v1", DriverID: "d1", Date: juneDay(3), Status: RouteStatusCompleted, Stops: deliveredStops(2)},
		Route{OwnerID: testOwner, VehicleID: "v2", DriverID: "d2", Date: juneDay(4), Status: RouteStatusCompleted, Stops: deliveredStops(3)},
	)
	engine := NewEngine(src)

	for _, typ := range AllTypes() {
		first, err := engine.Generate(context.Background(), testOwner, typ, juneWindow())
		require.NoError(t, err)
		second, err := engine.Generate(context.Background(), testOwner, typ, juneWindow())
		require.NoError(t, err)
		require.Equal(t, first, second, "report %s not deterministic", typ)
	}
}

func TestGenerateScopedToOwner(t *testing.T) {
	src := NewMemorySource()
	src.AddRoutes(
		Route{OwnerID: "someone-else", VehicleID: "v1", Date: juneDay(2), Status: RouteStatusCompleted, Stops: deliveredStops(5)},
	)

	rep, err := NewEngine(src).Generate(context.Background(), testOwner, TypeFleetPerformance, juneWindow())
	require.NoError(t, err)
	require.Zero(t, rep.(*FleetPerformance).Summary.TotalRoutes)
}
