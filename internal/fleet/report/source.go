package report

import (
	"context"
	"time"
)

// RouteStatus represents the lifecycle state of a delivery route.
type RouteStatus string

const (
	RouteStatusCompleted RouteStatus = "COMPLETED"
	RouteStatusPartial   RouteStatus = "PARTIAL"
	RouteStatusCancelled RouteStatus = "CANCELLED"
	RouteStatusPlanned   RouteStatus = "PLANNED"
)

// Eligible reports whether routes in this status count toward payouts.
func (s RouteStatus) Eligible() bool {
	return s == RouteStatusCompleted || s == RouteStatusPartial
}

// StopStatus represents the outcome of a single route stop.
type StopStatus string

const (
	StopStatusDelivered StopStatus = "DELIVERED"
	StopStatusFailed    StopStatus = "FAILED"
	StopStatusReturned  StopStatus = "RETURNED"
	StopStatusPending   StopStatus = "PENDING"
)

// VehicleStatus represents the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusInUse       VehicleStatus = "IN_USE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

// Active reports whether the vehicle counts as part of the working fleet.
func (s VehicleStatus) Active() bool {
	return s == VehicleStatusAvailable || s == VehicleStatusInUse
}

// Stop is one delivery stop on a route.
type Stop struct {
	Status StopStatus `json:"status"`
	// ParcelCount defaults to one parcel per stop when unspecified (zero).
	ParcelCount int `json:"parcel_count"`
}

// Parcels returns the stop's parcel count, defaulting to 1.
func (s Stop) Parcels() int {
	if s.ParcelCount <= 0 {
		return 1
	}
	return s.ParcelCount
}

// Route is one delivery route with its stops.
type Route struct {
	ID                string      `json:"id"`
	OwnerID           string      `json:"owner_id"`
	VehicleID         string      `json:"vehicle_id"`
	LicensePlate      string      `json:"license_plate"`
	DriverID          string      `json:"driver_id"`
	DriverName        string      `json:"driver_name"`
	Zone              string      `json:"zone"`
	Date              time.Time   `json:"date"`
	Status            RouteStatus `json:"status"`
	ActualDistanceKm  float64     `json:"actual_distance_km"`
	ActualDurationMin int         `json:"actual_duration_min"`
	Stops             []Stop      `json:"stops"`
}

// FuelFill is one recorded fuel fill event.
type FuelFill struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	VehicleID    string    `json:"vehicle_id"`
	LicensePlate string    `json:"license_plate"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	FuelType     string    `json:"fuel_type"`
	FilledAt     time.Time `json:"filled_at"`
	Liters       float64   `json:"liters"`
	TotalCostEur float64   `json:"total_cost_eur"`
}

// MaintenanceEvent is one recorded vehicle service event.
type MaintenanceEvent struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	VehicleID    string    `json:"vehicle_id"`
	LicensePlate string    `json:"license_plate"`
	Type         string    `json:"type"`
	ServiceDate  time.Time `json:"service_date"`
	TotalCostEur float64   `json:"total_cost_eur"`
	PartsCostEur float64   `json:"parts_cost_eur"`
	LaborCostEur float64   `json:"labor_cost_eur"`
}

// Maintenance types billed as scheduled work.
const (
	MaintenanceScheduledService = "SCHEDULED_SERVICE"
	MaintenanceTUVInspection    = "TUV_INSPECTION"
)

// Scheduled reports whether the event was planned service rather than a repair.
func (m MaintenanceEvent) Scheduled() bool {
	return m.Type == MaintenanceScheduledService || m.Type == MaintenanceTUVInspection
}

// CourierDelivery is one parcel handed to an external courier provider.
type CourierDelivery struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Provider  string    `json:"provider"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Vehicle is a fleet vehicle master record.
type Vehicle struct {
	ID              string        `json:"id"`
	OwnerID         string        `json:"owner_id"`
	LicensePlate    string        `json:"license_plate"`
	Status          VehicleStatus `json:"status"`
	NextServiceDate *time.Time    `json:"next_service_date,omitempty"`
}

// DataSource supplies raw operational records for an owner and time window.
// Implementations are read-only collaborators; the engine never mutates
// what they return.
type DataSource interface {
	RoutesInWindow(ctx context.Context, ownerID string, w Window) ([]Route, error)
	FuelFillsInWindow(ctx context.Context, ownerID string, w Window) ([]FuelFill, error)
	MaintenanceInWindow(ctx context.Context, ownerID string, w Window) ([]MaintenanceEvent, error)
	CourierDeliveriesInWindow(ctx context.Context, ownerID string, w Window) ([]CourierDelivery, error)
	Vehicles(ctx context.Context, ownerID string) ([]Vehicle, error)
}
