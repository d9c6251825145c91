package report

import (
	"context"
	"sync"
	"time"
)

// MemorySource is an in-memory DataSource, used in tests and as the
// default wiring until a real record store is plugged in.
type MemorySource struct {
	mu          sync.RWMutex
	routes      []Route
	fills       []FuelFill
	maintenance []MaintenanceEvent
	couriers    []CourierDelivery
	vehicles    []Vehicle
}

// NewMemorySource creates an empty in-memory data source.
func NewMemorySource() *MemorySource {
	return &MemorySource{}
}

// AddRoutes appends routes to the source.
func (s *MemorySource) AddRoutes(routes ...Route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, routes...)
}

// AddFuelFills appends fuel fill events to the source.
func (s *MemorySource) AddFuelFills(fills ...FuelFill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fills = append(s.fills, fills...)
}

// AddMaintenance appends maintenance events to the source.
func (s *MemorySource) AddMaintenance(events ...MaintenanceEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance = append(s.maintenance, events...)
}

// AddCourierDeliveries appends courier deliveries to the source.
func (s *MemorySource) AddCourierDeliveries(deliveries ...CourierDelivery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.couriers = append(s.couriers, deliveries...)
}

// AddVehicles appends vehicle master records to the source.
func (s *MemorySource) AddVehicles(vehicles ...Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append(s.vehicles, vehicles...)
}

func inWindow(t time.Time, w Window) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// RoutesInWindow returns the owner's routes dated inside the window.
func (s *MemorySource) RoutesInWindow(_ context.Context, ownerID string, w Window) ([]Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Route
	for _, r := range s.routes {
		if r.OwnerID == ownerID && inWindow(r.Date, w) {
			out = append(out, r)
		}
	}
	return out, nil
}

// FuelFillsInWindow returns the owner's fuel fills inside the window.
func (s *MemorySource) FuelFillsInWindow(_ context.Context, ownerID string, w Window) ([]FuelFill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []FuelFill
	for _, f := range s.fills {
		if f.OwnerID == ownerID && inWindow(f.FilledAt, w) {
			out = append(out, f)
		}
	}
	return out, nil
}

// MaintenanceInWindow returns the owner's maintenance events inside the window.
func (s *MemorySource) MaintenanceInWindow(_ context.Context, ownerID string, w Window) ([]MaintenanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []MaintenanceEvent
	for _, m := range s.maintenance {
		if m.OwnerID == ownerID && inWindow(m.ServiceDate, w) {
			out = append(out, m)
		}
	}
	return out, nil
}

// CourierDeliveriesInWindow returns the owner's courier deliveries inside the window.
func (s *MemorySource) CourierDeliveriesInWindow(_ context.Context, ownerID string, w Window) ([]CourierDelivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []CourierDelivery
	for _, c := range s.couriers {
		if c.OwnerID == ownerID && inWindow(c.CreatedAt, w) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Vehicles returns all of the owner's vehicles.
func (s *MemorySource) Vehicles(_ context.Context, ownerID string) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Vehicle
	for _, v := range s.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}
