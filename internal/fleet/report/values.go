package report

import "time"

// FleetPerformance summarises route completion and delivery success.
type FleetPerformance struct {
	Period    Window                  `json:"period"`
	Summary   FleetPerformanceSummary `json:"summary"`
	ByVehicle []VehiclePerformanceRow `json:"byVehicle"`
	ByDriver  []DriverPerformanceRow  `json:"byDriver"`
	ByZone    []ZonePerformanceRow    `json:"byZone"`
}

type FleetPerformanceSummary struct {
	TotalRoutes           int     `json:"totalRoutes"`
	CompletedRoutes       int     `json:"completedRoutes"`
	PartialRoutes         int     `json:"partialRoutes"`
	CancelledRoutes       int     `json:"cancelledRoutes"`
	CompletionRate        int     `json:"completionRate"`
	TotalDeliveries       int     `json:"totalDeliveries"`
	SuccessfulDeliveries  int     `json:"successfulDeliveries"`
	FailedDeliveries      int     `json:"failedDeliveries"`
	DeliverySuccessRate   int     `json:"deliverySuccessRate"`
	TotalDistanceKm       float64 `json:"totalDistanceKm"`
	AvgDistancePerRouteKm float64 `json:"avgDistancePerRouteKm"`
}

type VehiclePerformanceRow struct {
	VehicleID             string  `json:"vehicleId"`
	LicensePlate          string  `json:"licensePlate"`
	RoutesCompleted       int     `json:"routesCompleted"`
	DeliveriesCompleted   int     `json:"deliveriesCompleted"`
	DeliverySuccessRate   int     `json:"deliverySuccessRate"`
	TotalDistanceKm       float64 `json:"totalDistanceKm"`
	AvgDeliveriesPerRoute float64 `json:"avgDeliveriesPerRoute"`
}

type DriverPerformanceRow struct {
	DriverID              string  `json:"driverId"`
	DriverName            string  `json:"driverName"`
	RoutesCompleted       int     `json:"routesCompleted"`
	DeliveriesCompleted   int     `json:"deliveriesCompleted"`
	DeliverySuccessRate   int     `json:"deliverySuccessRate"`
	AvgTimePerDeliveryMin float64 `json:"avgTimePerDeliveryMin"`
}

type ZonePerformanceRow struct {
	Zone        string `json:"zone"`
	Deliveries  int    `json:"deliveries"`
	SuccessRate int    `json:"successRate"`
}

// FuelConsumption summarises fuel usage, cost and efficiency.
type FuelConsumption struct {
	Period    Window                 `json:"period"`
	Summary   FuelConsumptionSummary `json:"summary"`
	ByVehicle []FuelVehicleRow       `json:"byVehicle"`
	ByMonth   []FuelMonthRow         `json:"byMonth"`
}

type FuelConsumptionSummary struct {
	TotalLiters                  float64 `json:"totalLiters"`
	TotalCostEur                 float64 `json:"totalCostEur"`
	AvgPricePerLiter             float64 `json:"avgPricePerLiter"`
	AvgConsumptionLitersPer100km float64 `json:"avgConsumptionLitersPer100km"`
	TotalDistanceKm              float64 `json:"totalDistanceKm"`
}

type FuelVehicleRow struct {
	VehicleID                 string  `json:"vehicleId"`
	LicensePlate              string  `json:"licensePlate"`
	Make                      string  `json:"make"`
	Model                     string  `json:"model"`
	FuelType                  string  `json:"fuelType"`
	TotalLiters               float64 `json:"totalLiters"`
	TotalCostEur              float64 `json:"totalCostEur"`
	DistanceKm                float64 `json:"distanceKm"`
	ConsumptionLitersPer100km float64 `json:"consumptionLitersPer100km"`
	FillUps                   int     `json:"fillUps"`
}

type FuelMonthRow struct {
	Month    string  `json:"month"`
	Liters   float64 `json:"liters"`
	CostEur  float64 `json:"costEur"`
	AvgPrice float64 `json:"avgPrice"`
}

// VehicleUtilization summarises active, maintenance and idle days.
type VehicleUtilization struct {
	Period    Window                    `json:"period"`
	Summary   VehicleUtilizationSummary `json:"summary"`
	ByVehicle []UtilizationRow          `json:"byVehicle"`
}

type VehicleUtilizationSummary struct {
	TotalVehicles           int     `json:"totalVehicles"`
	AvgUtilizationPercent   int     `json:"avgUtilizationPercent"`
	TotalWorkingDays        int     `json:"totalWorkingDays"`
	TotalActiveDays         int     `json:"totalActiveDays"`
	AvgDaysActivePerVehicle float64 `json:"avgDaysActivePerVehicle"`
}

type UtilizationRow struct {
	VehicleID             string  `json:"vehicleId"`
	LicensePlate          string  `json:"licensePlate"`
	Status                string  `json:"status"`
	ActiveDays            int     `json:"activeDays"`
	MaintenanceDays       int     `json:"maintenanceDays"`
	IdleDays              int     `json:"idleDays"`
	UtilizationPercent    int     `json:"utilizationPercent"`
	RoutesCompleted       int     `json:"routesCompleted"`
	AvgRoutesPerActiveDay float64 `json:"avgRoutesPerActiveDay"`
}

// MaintenanceCost summarises service spend by vehicle and type.
type MaintenanceCost struct {
	Period    Window                  `json:"period"`
	Summary   MaintenanceCostSummary  `json:"summary"`
	ByVehicle []MaintenanceVehicleRow `json:"byVehicle"`
	ByType    []MaintenanceTypeRow    `json:"byType"`
}

type MaintenanceCostSummary struct {
	TotalCostEur      float64 `json:"totalCostEur"`
	AvgCostPerVehicle float64 `json:"avgCostPerVehicle"`
	ScheduledCount    int     `json:"scheduledCount"`
	UnscheduledCount  int     `json:"unscheduledCount"`
	PartsCostEur      float64 `json:"partsCostEur"`
	LaborCostEur      float64 `json:"laborCostEur"`
}

type MaintenanceVehicleRow struct {
	VehicleID        string     `json:"vehicleId"`
	LicensePlate     string     `json:"licensePlate"`
	TotalCostEur     float64    `json:"totalCostEur"`
	MaintenanceCount int        `json:"maintenanceCount"`
	LastMaintenance  *time.Time `json:"lastMaintenance,omitempty"`
	NextScheduled    *time.Time `json:"nextScheduled,omitempty"`
}

type MaintenanceTypeRow struct {
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	TotalCostEur float64 `json:"totalCostEur"`
	AvgCostEur   float64 `json:"avgCostEur"`
}

// DriverPayout summarises driver earnings with tax withholding.
type DriverPayout struct {
	Period   Window              `json:"period"`
	Summary  DriverPayoutSummary `json:"summary"`
	ByDriver []PayoutRow         `json:"byDriver"`
}

type DriverPayoutSummary struct {
	TotalDrivers           int     `json:"totalDrivers"`
	TotalGrossEur          float64 `json:"totalGrossEur"`
	TotalTaxWithholdingEur float64 `json:"totalTaxWithholdingEur"`
	TotalNetEur            float64 `json:"totalNetEur"`
	AvgPayoutPerDriver     float64 `json:"avgPayoutPerDriver"`
	TotalDeliveries        int     `json:"totalDeliveries"`
	TotalDistanceKm        float64 `json:"totalDistanceKm"`
}

type PayoutRow struct {
	DriverID          string  `json:"driverId"`
	DriverName        string  `json:"driverName"`
	RoutesCompleted   int     `json:"routesCompleted"`
	Deliveries        int     `json:"deliveries"`
	Parcels           int     `json:"parcels"`
	DistanceKm        float64 `json:"distanceKm"`
	GrossPayEur       float64 `json:"grossPayEur"`
	TaxWithholdingEur float64 `json:"taxWithholdingEur"`
	NetPayEur         float64 `json:"netPayEur"`
	BonusesEur        float64 `json:"bonusesEur"`
}

// CourierReconciliation settles external courier charges per provider.
type CourierReconciliation struct {
	Period     Window                      `json:"period"`
	ByProvider []ProviderReconciliationRow `json:"byProvider"`
	Totals     CourierReconciliationTotals `json:"totals"`
}

type ProviderReconciliationRow struct {
	Provider            string  `json:"provider"`
	TotalDeliveries     int     `json:"totalDeliveries"`
	StandardDeliveries  int     `json:"standardDeliveries"`
	ExpressDeliveries   int     `json:"expressDeliveries"`
	Returns             int     `json:"returns"`
	Failed              int     `json:"failed"`
	CalculatedAmountEur float64 `json:"calculatedAmountEur"`
	SaturdayBonusEur    float64 `json:"saturdayBonusEur"`
	NetPaymentEur       float64 `json:"netPaymentEur"`
}

type CourierReconciliationTotals struct {
	TotalDeliveries int     `json:"totalDeliveries"`
	TotalPaymentEur float64 `json:"totalPaymentEur"`
}
