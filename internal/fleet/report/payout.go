package report

import (
	"context"
	"fmt"
)

type payoutAcc struct {
	driverName      string
	routesCompleted int
	deliveries      int
	parcels         int
	distanceKm      float64
	grossPay        float64
	bonuses         float64
}

func (e *Engine) driverPayout(ctx context.Context, ownerID string, w Window) (*DriverPayout, error) {
	routes, err := e.src.RoutesInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load routes: %w", err)
	}

	drivers := newGroupBy[payoutAcc]()

	for _, route := range routes {
		if !route.Status.Eligible() || route.DriverID == "" {
			continue
		}

		acc := drivers.at(route.DriverID)
		acc.driverName = route.DriverName
		acc.routesCompleted++

		delivered := 0
		parcels := 0
		for _, stop := range route.Stops {
			if stop.Status == StopStatusDelivered {
				delivered++
				parcels += stop.Parcels()
			}
		}

		acc.deliveries += delivered
		acc.parcels += parcels
		acc.distanceKm += route.ActualDistanceKm
		acc.grossPay += float64(parcels)*payRateStandardParcel + route.ActualDistanceKm*payRatePerKm

		if isSaturday(route.Date) {
			acc.bonuses += float64(delivered) * payRateSaturdayBonus
		}
	}

	var (
		totalGross, totalTax, totalNet, totalDistance float64
		totalDeliveries                               int
	)

	byDriver := make([]PayoutRow, 0, drivers.len())
	drivers.each(func(id string, acc *payoutAcc) {
		// The Saturday bonus is reported separately but taxed as part
		// of gross pay.
		gross := acc.grossPay + acc.bonuses
		tax := round2(gross * payTaxRate)
		net := round2(gross - tax)

		totalGross += gross
		totalTax += tax
		totalNet += net
		totalDeliveries += acc.deliveries
		totalDistance += acc.distanceKm

		byDriver = append(byDriver, PayoutRow{
			DriverID:          id,
			DriverName:        acc.driverName,
			RoutesCompleted:   acc.routesCompleted,
			Deliveries:        acc.deliveries,
			Parcels:           acc.parcels,
			DistanceKm:        round1(acc.distanceKm),
			GrossPayEur:       round2(gross),
			TaxWithholdingEur: tax,
			NetPayEur:         net,
			BonusesEur:        round2(acc.bonuses),
		})
	})

	return &DriverPayout{
		Period: w,
		Summary: DriverPayoutSummary{
			TotalDrivers:           drivers.len(),
			TotalGrossEur:          round2(totalGross),
			TotalTaxWithholdingEur: round2(totalTax),
			TotalNetEur:            round2(totalNet),
			AvgPayoutPerDriver:     ratio2(totalNet, float64(drivers.len())),
			TotalDeliveries:        totalDeliveries,
			TotalDistanceKm:        round1(totalDistance),
		},
		ByDriver: byDriver,
	}, nil
}
