package report

import (
	"context"
	"fmt"
	"strings"
)

type providerAcc struct {
	total            int
	standard         int
	express          int
	returns          int
	failed           int
	calculatedAmount float64
	saturdayBonus    float64
}

func (e *Engine) courierReconciliation(ctx context.Context, ownerID string, w Window) (*CourierReconciliation, error) {
	deliveries, err := e.src.CourierDeliveriesInWindow(ctx, ownerID, w)
	if err != nil {
		return nil, fmt.Errorf("report: load courier deliveries: %w", err)
	}

	providers := newGroupBy[providerAcc]()

	for _, delivery := range deliveries {
		provider := delivery.Provider
		if provider == "" {
			provider = "DPD"
		}
		acc := providers.at(provider)
		acc.total++

		rates := ratesFor(provider)
		saturday := isSaturday(delivery.CreatedAt)
		status := strings.ToUpper(delivery.Status)

		switch {
		case status == "RETURNED" || status == "RETURN":
			// Returns bill at the flat return rate, no Saturday uplift.
			acc.returns++
			acc.calculatedAmount += rates.Return
		case status == "FAILED" || status == "UNDELIVERED":
			acc.failed++
		case strings.Contains(status, "EXPRESS"):
			acc.express++
			rate := rates.Express
			if saturday {
				extra := rate * (rates.SaturdayMultiplier - 1)
				acc.saturdayBonus += extra
				rate += extra
			}
			acc.calculatedAmount += rate
		default:
			acc.standard++
			rate := rates.Standard
			if saturday {
				extra := rate * (rates.SaturdayMultiplier - 1)
				acc.saturdayBonus += extra
				rate += extra
			}
			acc.calculatedAmount += rate
		}
	}

	var (
		totalDeliveries int
		totalPayment    float64
	)

	byProvider := make([]ProviderReconciliationRow, 0, providers.len())
	providers.each(func(provider string, acc *providerAcc) {
		totalDeliveries += acc.total
		totalPayment += acc.calculatedAmount

		byProvider = append(byProvider, ProviderReconciliationRow{
			Provider:            provider,
			TotalDeliveries:     acc.total,
			StandardDeliveries:  acc.standard,
			ExpressDeliveries:   acc.express,
			Returns:             acc.returns,
			Failed:              acc.failed,
			CalculatedAmountEur: round2(acc.calculatedAmount),
			SaturdayBonusEur:    round2(acc.saturdayBonus),
			NetPaymentEur:       round2(acc.calculatedAmount),
		})
	})

	return &CourierReconciliation{
		Period:     w,
		ByProvider: byProvider,
		Totals: CourierReconciliationTotals{
			TotalDeliveries: totalDeliveries,
			TotalPaymentEur: round2(totalPayment),
		},
	}, nil
}
