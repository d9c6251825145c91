package report

import (
	"context"
	"fmt"
)

type vehiclePerfAcc struct {
	licensePlate        string
	routesCompleted     int
	deliveriesCompleted int
	totalDeliveries     int
	totalDistanceKm     float64
}

type driverPerfAcc struct {
	driverName          string
	routesCompleted     int
	deliveriesCompleted int
	totalDeliveries     int
	totalDurationMin    int
}

type zonePerfAcc struct {
	total      int
	successful int
}

func (e *Engine) fleetPerformance(ctx context.Context, ownerID string, w Window) (*FleetPerformance, error) {
	routes, err := e.src.RoutesInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load routes: %w", err)
	}

	var (
		completed, partial, cancelled       int
		totalDeliveries, successful, failed int
		totalDistanceKm                     float64
	)

	vehicles := newGroupBy[vehiclePerfAcc]()
	drivers := newGroupBy[driverPerfAcc]()
	zones := newGroupBy[zonePerfAcc]()

	for _, route := range routes {
		switch route.Status {
		case RouteStatusCompleted:
			completed++
		case RouteStatusPartial:
			partial++
		case RouteStatusCancelled:
			cancelled++
		}

		delivered := 0
		for _, stop := range route.Stops {
			switch stop.Status {
			case StopStatusDelivered:
				delivered++
			case StopStatusFailed, StopStatusReturned:
				failed++
			}
		}
		totalDeliveries += len(route.Stops)
		successful += delivered
		totalDistanceKm += route.ActualDistanceKm

		v := vehicles.at(route.VehicleID)
		v.licensePlate = route.LicensePlate
		if route.Status.Eligible() {
			v.routesCompleted++
		}
		v.deliveriesCompleted += delivered
		v.totalDeliveries += len(route.Stops)
		v.totalDistanceKm += route.ActualDistanceKm

		if route.DriverID != "" {
			d := drivers.at(route.DriverID)
			d.driverName = route.DriverName
			if route.Status.Eligible() {
				d.routesCompleted++
			}
			d.deliveriesCompleted += delivered
			d.totalDeliveries += len(route.Stops)
			d.totalDurationMin += route.ActualDurationMin
		}

		zone := route.Zone
		if zone == "" {
			zone = "Unknown"
		}
		z := zones.at(zone)
		z.total += len(route.Stops)
		z.successful += delivered
	}

	rep := &FleetPerformance{
		Period: w,
		Summary: FleetPerformanceSummary{
			TotalRoutes:           len(routes),
			CompletedRoutes:       completed,
			PartialRoutes:         partial,
			CancelledRoutes:       cancelled,
			CompletionRate:        pct(completed, len(routes)),
			TotalDeliveries:       totalDeliveries,
			SuccessfulDeliveries:  successful,
			FailedDeliveries:      failed,
			DeliverySuccessRate:   pct(successful, totalDeliveries),
			TotalDistanceKm:       round1(totalDistanceKm),
			AvgDistancePerRouteKm: ratio1(totalDistanceKm, float64(len(routes))),
		},
		ByVehicle: make([]VehiclePerformanceRow, 0, vehicles.len()),
		ByDriver:  make([]DriverPerformanceRow, 0, drivers.len()),
		ByZone:    make([]ZonePerformanceRow, 0, zones.len()),
	}

	vehicles.each(func(id string, v *vehiclePerfAcc) {
		rep.ByVehicle = append(rep.ByVehicle, VehiclePerformanceRow{
			VehicleID:             id,
			LicensePlate:          v.licensePlate,
			RoutesCompleted:       v.routesCompleted,
			DeliveriesCompleted:   v.deliveriesCompleted,
			DeliverySuccessRate:   pct(v.deliveriesCompleted, v.totalDeliveries),
			TotalDistanceKm:       round1(v.totalDistanceKm),
			AvgDeliveriesPerRoute: ratio1(float64(v.deliveriesCompleted), float64(v.routesCompleted)),
		})
	})

	drivers.each(func(id string, d *driverPerfAcc) {
		rep.ByDriver = append(rep.ByDriver, DriverPerformanceRow{
			DriverID:              id,
			DriverName:            d.driverName,
			RoutesCompleted:       d.routesCompleted,
			DeliveriesCompleted:   d.deliveriesCompleted,
			DeliverySuccessRate:   pct(d.deliveriesCompleted, d.totalDeliveries),
			AvgTimePerDeliveryMin: ratio1(float64(d.totalDurationMin), float64(d.deliveriesCompleted)),
		})
	})

	zones.each(func(zone string, z *zonePerfAcc) {
		rep.ByZone = append(rep.ByZone, ZonePerformanceRow{
			Zone:        zone,
			Deliveries:  z.total,
			SuccessRate: pct(z.successful, z.total),
		})
	})

	return rep, nil
}
