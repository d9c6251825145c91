package report

import (
	"context"
	"fmt"
	"sort"
)

type fuelVehicleAcc struct {
	licensePlate string
	make         string
	model        string
	fuelType     string
	liters       float64
	cost         float64
	fillUps      int
}

type fuelMonthAcc struct {
	liters float64
	cost   float64
}

func (e *Engine) fuelConsumption(ctx context.Context, ownerID string, w Window) (*FuelConsumption, error) {
	fills, err := e.src.FuelFillsInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load fuel fills: %w", err)
	}
	routes, err := e.src.RoutesInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load routes: %w", err)
	}

	// Route distance per vehicle over the same window feeds the
	// liters-per-100km efficiency figures.
	distances := make(map[string]float64)
	for _, route := range routes {
		distances[route.VehicleID] += route.ActualDistanceKm
	}

	var totalLiters, totalCost float64
	vehicles := newGroupBy[fuelVehicleAcc]()
	months := newGroupBy[fuelMonthAcc]()

	for _, fill := range fills {
		totalLiters += fill.Liters
		totalCost += fill.TotalCostEur

		v := vehicles.at(fill.VehicleID)
		v.licensePlate = fill.LicensePlate
		v.make = fill.Make
		v.model = fill.Model
		v.fuelType = fill.FuelType
		v.liters += fill.Liters
		v.cost += fill.TotalCostEur
		v.fillUps++

		m := months.at(monthKey(fill.FilledAt))
		m.liters += fill.Liters
		m.cost += fill.TotalCostEur
	}

	// Only distance driven by fuelled vehicles counts toward the fleet
	// average, mirroring how the per-vehicle figures are built.
	var totalDistance float64
	byVehicle := make([]FuelVehicleRow, 0, vehicles.len())
	vehicles.each(func(id string, v *fuelVehicleAcc) {
		distance := distances[id]
		totalDistance += distance
		consumption := 0.0
		if distance > 0 {
			consumption = round1(v.liters / distance * 100)
		}
		byVehicle = append(byVehicle, FuelVehicleRow{
			VehicleID:                 id,
			LicensePlate:              v.licensePlate,
			Make:                      v.make,
			Model:                     v.model,
			FuelType:                  v.fuelType,
			TotalLiters:               round1(v.liters),
			TotalCostEur:              round2(v.cost),
			DistanceKm:                round1(distance),
			ConsumptionLitersPer100km: consumption,
			FillUps:                   v.fillUps,
		})
	})

	byMonth := make([]FuelMonthRow, 0, months.len())
	months.each(func(month string, m *fuelMonthAcc) {
		byMonth = append(byMonth, FuelMonthRow{
			Month:    month,
			Liters:   round1(m.liters),
			CostEur:  round2(m.cost),
			AvgPrice: ratio3(m.cost, m.liters),
		})
	})
	sort.Slice(byMonth, func(i, j int) bool { return byMonth[i].Month < byMonth[j].Month })

	avgConsumption := 0.0
	if totalDistance > 0 {
		avgConsumption = round1(totalLiters / totalDistance * 100)
	}

	return &FuelConsumption{
		Period: w,
		Summary: FuelConsumptionSummary{
			TotalLiters:                  round1(totalLiters),
			TotalCostEur:                 round2(totalCost),
			AvgPricePerLiter:             ratio3(totalCost, totalLiters),
			AvgConsumptionLitersPer100km: avgConsumption,
			TotalDistanceKm:              round1(totalDistance),
		},
		ByVehicle: byVehicle,
		ByMonth:   byMonth,
	}, nil
}
