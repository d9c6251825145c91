package report

import (
	"context"
	"fmt"
)

type utilizationAcc struct {
	activeDays      map[string]struct{}
	maintenanceDays map[string]struct{}
	routesCompleted int
}

func (e *Engine) vehicleUtilization(ctx context.Context, ownerID string, w Window) (*VehicleUtilization, error) {
	vehicles, err := e.src.Vehicles(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("report: load vehicles: %w", err)
	}
	routes, err := e.src.RoutesInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load routes: %w", err)
	}
	maintenance, err := e.src.MaintenanceInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load maintenance: %w", err)
	}

	totalWorkingDays := workingDays(w.From, w.To)

	stats := make(map[string]*utilizationAcc, len(vehicles))
	for _, v := range vehicles {
		stats[v.ID] = &utilizationAcc{
			activeDays:      make(map[string]struct{}),
			maintenanceDays: make(map[string]struct{}),
		}
	}

	for _, route := range routes {
		acc, ok := stats[route.VehicleID]
		if !ok {
			continue
		}
		acc.activeDays[dayKey(route.Date)] = struct{}{}
		if route.Status.Eligible() {
			acc.routesCompleted++
		}
	}

	for _, m := range maintenance {
		if acc, ok := stats[m.VehicleID]; ok {
			acc.maintenanceDays[dayKey(m.ServiceDate)] = struct{}{}
		}
	}

	totalActiveDays := 0
	byVehicle := make([]UtilizationRow, 0, len(vehicles))
	for _, v := range vehicles {
		acc := stats[v.ID]
		activeDays := len(acc.activeDays)
		maintenanceDays := len(acc.maintenanceDays)
		idleDays := totalWorkingDays - activeDays - maintenanceDays
		if idleDays < 0 {
			idleDays = 0
		}
		totalActiveDays += activeDays

		byVehicle = append(byVehicle, UtilizationRow{
			VehicleID:             v.ID,
			LicensePlate:          v.LicensePlate,
			Status:                string(v.Status),
			ActiveDays:            activeDays,
			MaintenanceDays:       maintenanceDays,
			IdleDays:              idleDays,
			UtilizationPercent:    pct(activeDays, totalWorkingDays),
			RoutesCompleted:       acc.routesCompleted,
			AvgRoutesPerActiveDay: ratio1(float64(acc.routesCompleted), float64(activeDays)),
		})
	}

	return &VehicleUtilization{
		Period: w,
		Summary: VehicleUtilizationSummary{
			TotalVehicles:           len(vehicles),
			AvgUtilizationPercent:   pct(totalActiveDays, len(vehicles)*totalWorkingDays),
			TotalWorkingDays:        totalWorkingDays,
			TotalActiveDays:         totalActiveDays,
			AvgDaysActivePerVehicle: ratio1(float64(totalActiveDays), float64(len(vehicles))),
		},
		ByVehicle: byVehicle,
	}, nil
}
