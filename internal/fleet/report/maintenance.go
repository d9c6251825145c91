package report

import (
	"context"
	"fmt"
	"time"
)

type maintenanceVehicleAcc struct {
	cost            float64
	count           int
	lastMaintenance *time.Time
}

type maintenanceTypeAcc struct {
	count int
	cost  float64
}

func (e *Engine) maintenanceCost(ctx context.Context, ownerID string, w Window) (*MaintenanceCost, error) {
	vehicles, err := e.src.Vehicles(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("report: load vehicles: %w", err)
	}
	maintenance, err := e.src.MaintenanceInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load maintenance: %w", err)
	}

	var (
		totalCost, partsCost, laborCost float64
		scheduled, unscheduled          int
	)

	perVehicle := make(map[string]*maintenanceVehicleAcc)
	types := newGroupBy[maintenanceTypeAcc]()

	for _, m := range maintenance {
		totalCost += m.TotalCostEur
		partsCost += m.PartsCostEur
		laborCost += m.LaborCostEur

		if m.Scheduled() {
			scheduled++
		} else {
			unscheduled++
		}

		acc, ok := perVehicle[m.VehicleID]
		if !ok {
			acc = &maintenanceVehicleAcc{}
			perVehicle[m.VehicleID] = acc
		}
		acc.cost += m.TotalCostEur
		acc.count++
		if acc.lastMaintenance == nil || m.ServiceDate.After(*acc.lastMaintenance) {
			d := m.ServiceDate
			acc.lastMaintenance = &d
		}

		t := types.at(m.Type)
		t.count++
		t.cost += m.TotalCostEur
	}

	// Every vehicle gets a row, zero-spend ones included, so the report
	// surfaces vehicles that never saw the workshop this period.
	byVehicle := make([]MaintenanceVehicleRow, 0, len(vehicles))
	for _, v := range vehicles {
		row := MaintenanceVehicleRow{
			VehicleID:     v.ID,
			LicensePlate:  v.LicensePlate,
			NextScheduled: v.NextServiceDate,
		}
		if acc, ok := perVehicle[v.ID]; ok {
			row.TotalCostEur = round2(acc.cost)
			row.MaintenanceCount = acc.count
			row.LastMaintenance = acc.lastMaintenance
		}
		byVehicle = append(byVehicle, row)
	}

	byType := make([]MaintenanceTypeRow, 0, types.len())
	types.each(func(typ string, t *maintenanceTypeAcc) {
		byType = append(byType, MaintenanceTypeRow{
			Type:         typ,
			Count:        t.count,
			TotalCostEur: round2(t.cost),
			AvgCostEur:   ratio2(t.cost, float64(t.count)),
		})
	})

	return &MaintenanceCost{
		Period: w,
		Summary: MaintenanceCostSummary{
			TotalCostEur:      round2(totalCost),
			AvgCostPerVehicle: ratio2(totalCost, float64(len(vehicles))),
			ScheduledCount:    scheduled,
			UnscheduledCount:  unscheduled,
			PartsCostEur:      round2(partsCost),
			LaborCostEur:      round2(laborCost),
		},
		ByVehicle: byVehicle,
		ByType:    byType,
	}, nil
}
