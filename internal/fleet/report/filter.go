package report

import "slices"

// Filters narrows break-down rows for display. Summaries are left
// untouched: this is a display-only filter, not a re-aggregation.
type Filters struct {
	VehicleIDs []string `json:"vehicleIds,omitempty"`
	DriverIDs  []string `json:"driverIds,omitempty"`
	Zones      []string `json:"zones,omitempty"`
}

// IsZero reports whether no filter criteria are set.
func (f Filters) IsZero() bool {
	return len(f.VehicleIDs) == 0 && len(f.DriverIDs) == 0 && len(f.Zones) == 0
}

// ApplyFilters returns a copy of r with matching break-downs narrowed to
// the requested ids. The input report is never mutated.
func ApplyFilters(r Report, f Filters) Report {
	if f.IsZero() {
		return r
	}

	switch rep := r.(type) {
	case *FleetPerformance:
		out := *rep
		if len(f.VehicleIDs) > 0 {
			out.ByVehicle = filterRows(rep.ByVehicle, f.VehicleIDs, func(v VehiclePerformanceRow) string { return v.VehicleID })
		}
		if len(f.DriverIDs) > 0 {
			out.ByDriver = filterRows(rep.ByDriver, f.DriverIDs, func(d DriverPerformanceRow) string { return d.DriverID })
		}
		if len(f.Zones) > 0 {
			out.ByZone = filterRows(rep.ByZone, f.Zones, func(z ZonePerformanceRow) string { return z.Zone })
		}
		return &out
	case *FuelConsumption:
		out := *rep
		if len(f.VehicleIDs) > 0 {
			out.ByVehicle = filterRows(rep.ByVehicle, f.VehicleIDs, func(v FuelVehicleRow) string { return v.VehicleID })
		}
		return &out
	case *VehicleUtilization:
		out := *rep
		if len(f.VehicleIDs) > 0 {
			out.ByVehicle = filterRows(rep.ByVehicle, f.VehicleIDs, func(v UtilizationRow) string { return v.VehicleID })
		}
		return &out
	case *MaintenanceCost:
		out := *rep
		if len(f.VehicleIDs) > 0 {
			out.ByVehicle = filterRows(rep.ByVehicle, f.VehicleIDs, func(v MaintenanceVehicleRow) string { return v.VehicleID })
		}
		return &out
	case *DriverPayout:
		out := *rep
		if len(f.DriverIDs) > 0 {
			out.ByDriver = filterRows(rep.ByDriver, f.DriverIDs, func(d PayoutRow) string { return d.DriverID })
		}
		return &out
	default:
		return r
	}
}

func filterRows[T any](rows []T, keep []string, key func(T) string) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if slices.Contains(keep, key(row)) {
			out = append(out, row)
		}
	}
	return out
}
