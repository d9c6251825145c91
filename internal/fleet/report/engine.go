package report

import (
	"context"
	"fmt"
)

// Engine turns raw operational records into typed report values. Every
// generator is a pure function over the records the data source returns:
// identical inputs yield identical report values.
type Engine struct {
	src DataSource
}

// NewEngine wires the aggregation engine to its data source.
func NewEngine(src DataSource) *Engine {
	return &Engine{src: src}
}

// Generate produces the report value for the given owner, type and window.
func (e *Engine) Generate(ctx context.Context, ownerID string, typ ReportType, w Window) (Report, error) {
	if w.From.After(w.To) {
		return nil, ErrInvalidWindow
	}
	switch typ {
	case TypeFleetPerformance:
		return e.fleetPerformance(ctx, ownerID, w)
	case TypeFuelConsumption:
		return e.fuelConsumption(ctx, ownerID, w)
	case TypeVehicleUtilization:
		return e.vehicleUtilization(ctx, ownerID, w)
	case TypeMaintenanceCost:
		return e.maintenanceCost(ctx, ownerID, w)
	case TypeDriverPayout:
		return e.driverPayout(ctx, ownerID, w)
	case TypeCourierReconciliation:
		return e.courierReconciliation(ctx, ownerID, w)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, typ)
	}
}

// groupBy is a keyed accumulator that preserves first-seen key order, so
// break-down rows come out in a deterministic sequence for identical input.
type groupBy[T any] struct {
	order []string
	items map[string]*T
}

func newGroupBy[T any]() *groupBy[T] {
	return &groupBy[T]{items: make(map[string]*T)}
}

// at returns the accumulator for key, allocating it on first touch.
func (g *groupBy[T]) at(key string) *T {
	if v, ok := g.items[key]; ok {
		return v
	}
	v := new(T)
	g.items[key] = v
	g.order = append(g.order, key)
	return v
}

func (g *groupBy[T]) len() int {
	return len(g.order)
}

// each visits accumulators in first-seen key order.
func (g *groupBy[T]) each(fn func(key string, v *T)) {
	for _, k := range g.order {
		fn(k, g.items[k])
	}
}
