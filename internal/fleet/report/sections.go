package report

// Section titles, in the fixed emission order vehicle, driver, zone,
// month, type, provider.
const (
	titleByVehicle  = "By Vehicle"
	titleByDriver   = "By Driver"
	titleByZone     = "By Zone"
	titleByMonth    = "By Month"
	titleByType     = "By Type"
	titleByProvider = "By Provider"
)

func (r *FleetPerformance) Kind() ReportType { return TypeFleetPerformance }
func (r *FleetPerformance) Span() Window     { return r.Period }

func (r *FleetPerformance) SummaryFields() []Field {
	s := r.Summary
	return []Field{
		{"totalRoutes", s.TotalRoutes},
		{"completedRoutes", s.CompletedRoutes},
		{"partialRoutes", s.PartialRoutes},
		{"cancelledRoutes", s.CancelledRoutes},
		{"completionRate", s.CompletionRate},
		{"totalDeliveries", s.TotalDeliveries},
		{"successfulDeliveries", s.SuccessfulDeliveries},
		{"failedDeliveries", s.FailedDeliveries},
		{"deliverySuccessRate", s.DeliverySuccessRate},
		{"totalDistanceKm", s.TotalDistanceKm},
		{"avgDistancePerRouteKm", s.AvgDistancePerRouteKm},
	}
}

func (r *FleetPerformance) Sections() []Section {
	vehicle := Section{
		Key:   SectionVehicle,
		Title: titleByVehicle,
		Columns: []string{
			"vehicleId", "licensePlate", "routesCompleted", "deliveriesCompleted",
			"deliverySuccessRate", "totalDistanceKm", "avgDeliveriesPerRoute",
		},
	}
	for _, v := range r.ByVehicle {
		vehicle.Rows = append(vehicle.Rows, []any{
			v.VehicleID, v.LicensePlate, v.RoutesCompleted, v.DeliveriesCompleted,
			v.DeliverySuccessRate, v.TotalDistanceKm, v.AvgDeliveriesPerRoute,
		})
	}

	driver := Section{
		Key:   SectionDriver,
		Title: titleByDriver,
		Columns: []string{
			"driverId", "driverName", "routesCompleted", "deliveriesCompleted",
			"deliverySuccessRate", "avgTimePerDeliveryMin",
		},
	}
	for _, d := range r.ByDriver {
		driver.Rows = append(driver.Rows, []any{
			d.DriverID, d.DriverName, d.RoutesCompleted, d.DeliveriesCompleted,
			d.DeliverySuccessRate, d.AvgTimePerDeliveryMin,
		})
	}

	zone := Section{
		Key:     SectionZone,
		Title:   titleByZone,
		Columns: []string{"zone", "deliveries", "successRate"},
	}
	for _, z := range r.ByZone {
		zone.Rows = append(zone.Rows, []any{z.Zone, z.Deliveries, z.SuccessRate})
	}

	return []Section{vehicle, driver, zone}
}

func (r *FuelConsumption) Kind() ReportType { return TypeFuelConsumption }
func (r *FuelConsumption) Span() Window     { return r.Period }

func (r *FuelConsumption) SummaryFields() []Field {
	s := r.Summary
	return []Field{
		{"totalLiters", s.TotalLiters},
		{"totalCostEur", s.TotalCostEur},
		{"avgPricePerLiter", s.AvgPricePerLiter},
		{"avgConsumptionLitersPer100km", s.AvgConsumptionLitersPer100km},
		{"totalDistanceKm", s.TotalDistanceKm},
	}
}

func (r *FuelConsumption) Sections() []Section {
	vehicle := Section{
		Key:   SectionVehicle,
		Title: titleByVehicle,
		Columns: []string{
			"vehicleId", "licensePlate", "make", "model", "fuelType",
			"totalLiters", "totalCostEur", "distanceKm",
			"consumptionLitersPer100km", "fillUps",
		},
	}
	for _, v := range r.ByVehicle {
		vehicle.Rows = append(vehicle.Rows, []any{
			v.VehicleID, v.LicensePlate, v.Make, v.Model, v.FuelType,
			v.TotalLiters, v.TotalCostEur, v.DistanceKm,
			v.ConsumptionLitersPer100km, v.FillUps,
		})
	}

	month := Section{
		Key:     SectionMonth,
		Title:   titleByMonth,
		Columns: []string{"month", "liters", "costEur", "avgPrice"},
	}
	for _, m := range r.ByMonth {
		month.Rows = append(month.Rows, []any{m.Month, m.Liters, m.CostEur, m.AvgPrice})
	}

	return []Section{vehicle, month}
}

func (r *VehicleUtilization) Kind() ReportType { return TypeVehicleUtilization }
func (r *VehicleUtilization) Span() Window     { return r.Period }

func (r *VehicleUtilization) SummaryFields() []Field {
	s := r.Summary
	return []Field{
		{"totalVehicles", s.TotalVehicles},
		{"avgUtilizationPercent", s.AvgUtilizationPercent},
		{"totalWorkingDays", s.TotalWorkingDays},
		{"totalActiveDays", s.TotalActiveDays},
		{"avgDaysActivePerVehicle", s.AvgDaysActivePerVehicle},
	}
}

func (r *VehicleUtilization) Sections() []Section {
	vehicle := Section{
		Key:   SectionVehicle,
		Title: titleByVehicle,
		Columns: []string{
			"vehicleId", "licensePlate", "status", "activeDays",
			"maintenanceDays", "idleDays", "utilizationPercent",
			"routesCompleted", "avgRoutesPerActiveDay",
		},
	}
	for _, v := range r.ByVehicle {
		vehicle.Rows = append(vehicle.Rows, []any{
			v.VehicleID, v.LicensePlate, v.Status, v.ActiveDays,
			v.MaintenanceDays, v.IdleDays, v.UtilizationPercent,
			v.RoutesCompleted, v.AvgRoutesPerActiveDay,
		})
	}
	return []Section{vehicle}
}

func (r *MaintenanceCost) Kind() ReportType { return TypeMaintenanceCost }
func (r *MaintenanceCost) Span() Window     { return r.Period }

func (r *MaintenanceCost) SummaryFields() []Field {
	s := r.Summary
	return []Field{
		{"totalCostEur", s.TotalCostEur},
		{"avgCostPerVehicle", s.AvgCostPerVehicle},
		{"scheduledCount", s.ScheduledCount},
		{"unscheduledCount", s.UnscheduledCount},
		{"partsCostEur", s.PartsCostEur},
		{"laborCostEur", s.LaborCostEur},
	}
}

func (r *MaintenanceCost) Sections() []Section {
	vehicle := Section{
		Key:   SectionVehicle,
		Title: titleByVehicle,
		Columns: []string{
			"vehicleId", "licensePlate", "totalCostEur", "maintenanceCount",
			"lastMaintenance", "nextScheduled",
		},
	}
	for _, v := range r.ByVehicle {
		vehicle.Rows = append(vehicle.Rows, []any{
			v.VehicleID, v.LicensePlate, v.TotalCostEur, v.MaintenanceCount,
			v.LastMaintenance, v.NextScheduled,
		})
	}

	typ := Section{
		Key:     SectionType,
		Title:   titleByType,
		Columns: []string{"type", "count", "totalCostEur", "avgCostEur"},
	}
	for _, t := range r.ByType {
		typ.Rows = append(typ.Rows, []any{t.Type, t.Count, t.TotalCostEur, t.AvgCostEur})
	}

	return []Section{vehicle, typ}
}

func (r *DriverPayout) Kind() ReportType { return TypeDriverPayout }
func (r *DriverPayout) Span() Window     { return r.Period }

func (r *DriverPayout) SummaryFields() []Field {
	s := r.Summary
	return []Field{
		{"totalDrivers", s.TotalDrivers},
		{"totalGrossEur", s.TotalGrossEur},
		{"totalTaxWithholdingEur", s.TotalTaxWithholdingEur},
		{"totalNetEur", s.TotalNetEur},
		{"avgPayoutPerDriver", s.AvgPayoutPerDriver},
		{"totalDeliveries", s.TotalDeliveries},
		{"totalDistanceKm", s.TotalDistanceKm},
	}
}

func (r *DriverPayout) Sections() []Section {
	driver := Section{
		Key:   SectionDriver,
		Title: titleByDriver,
		Columns: []string{
			"driverId", "driverName", "routesCompleted", "deliveries", "parcels",
			"distanceKm", "grossPayEur", "taxWithholdingEur", "netPayEur", "bonusesEur",
		},
	}
	for _, d := range r.ByDriver {
		driver.Rows = append(driver.Rows, []any{
			d.DriverID, d.DriverName, d.RoutesCompleted, d.Deliveries, d.Parcels,
			d.DistanceKm, d.GrossPayEur, d.TaxWithholdingEur, d.NetPayEur, d.BonusesEur,
		})
	}
	return []Section{driver}
}

func (r *CourierReconciliation) Kind() ReportType { return TypeCourierReconciliation }
func (r *CourierReconciliation) Span() Window     { return r.Period }

func (r *CourierReconciliation) SummaryFields() []Field {
	return []Field{
		{"totalDeliveries", r.Totals.TotalDeliveries},
		{"totalPaymentEur", r.Totals.TotalPaymentEur},
	}
}

func (r *CourierReconciliation) Sections() []Section {
	provider := Section{
		Key:   SectionProvider,
		Title: titleByProvider,
		Columns: []string{
			"provider", "totalDeliveries", "standardDeliveries", "expressDeliveries",
			"returns", "failed", "calculatedAmountEur", "saturdayBonusEur", "netPaymentEur",
		},
	}
	for _, p := range r.ByProvider {
		provider.Rows = append(provider.Rows, []any{
			p.Provider, p.TotalDeliveries, p.StandardDeliveries, p.ExpressDeliveries,
			p.Returns, p.Failed, p.CalculatedAmountEur, p.SaturdayBonusEur, p.NetPaymentEur,
		})
	}
	return []Section{provider}
}
