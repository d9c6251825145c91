package report

// Driver pay rates for the Munich delivery fleet, EUR.
const (
	payRateStandardParcel = 1.20
	// No express classification reaches driver pay yet; parcels bill at
	// the standard rate.
	payRateExpressParcel = 2.00
	payRatePerKm         = 0.35
	payRateSaturdayBonus = 0.50

	// German standard withholding rate (19% MwSt).
	payTaxRate = 0.19
)

// courierRates holds one provider's per-delivery base rates in EUR.
type courierRates struct {
	Standard           float64
	Express            float64
	Return             float64
	SaturdayMultiplier float64
}

// courierRateTable is keyed by provider code. Unrecognised providers bill
// at DPD rates.
var courierRateTable = map[string]courierRates{
	"DPD": {Standard: 4.50, Express: 8.90, Return: 5.20, SaturdayMultiplier: 1.3},
	"GLS": {Standard: 4.30, Express: 8.50, Return: 4.90, SaturdayMultiplier: 1.25},
}

func ratesFor(provider string) courierRates {
	if r, ok := courierRateTable[provider]; ok {
		return r
	}
	return courierRateTable["DPD"]
}
