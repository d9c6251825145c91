package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

// reportTitles carries the customer-facing German report names.
var reportTitles = map[report.ReportType]string{
	report.TypeFleetPerformance:      "Flottenleistungsbericht",
	report.TypeFuelConsumption:       "Kraftstoffverbrauchsbericht",
	report.TypeVehicleUtilization:    "Fahrzeugauslastungsbericht",
	report.TypeMaintenanceCost:       "Wartungskostenbericht",
	report.TypeDriverPayout:          "Fahrerabrechnungsbericht",
	report.TypeCourierReconciliation: "Kurier-Abstimmungsbericht",
}

func reportTitle(t report.ReportType) string {
	if title, ok := reportTitles[t]; ok {
		return title
	}
	return string(t)
}

// sectionTitles carries the German sheet/table headings per break-down.
var sectionTitles = map[report.SectionKey]string{
	report.SectionVehicle:  "Nach Fahrzeug",
	report.SectionDriver:   "Nach Fahrer",
	report.SectionZone:     "Nach Zone",
	report.SectionMonth:    "Nach Monat",
	report.SectionType:     "Nach Typ",
	report.SectionProvider: "Nach Anbieter",
}

func sectionTitle(key report.SectionKey, fallback string) string {
	if title, ok := sectionTitles[key]; ok {
		return title
	}
	return fallback
}

// fieldLabels translates wire field keys into the German column labels
// used by the workbook, document and HTML renderers.
var fieldLabels = map[string]string{
	"vehicleId":                    "Fahrzeug-ID",
	"licensePlate":                 "Kennzeichen",
	"driverId":                     "Fahrer-ID",
	"driverName":                   "Fahrername",
	"routesCompleted":              "Abgeschl. Routen",
	"deliveriesCompleted":          "Abgeschl. Lieferungen",
	"deliverySuccessRate":          "Erfolgsquote (%)",
	"totalDistanceKm":              "Gesamtstrecke (km)",
	"avgDeliveriesPerRoute":        "Ø Lief./Route",
	"avgTimePerDeliveryMin":        "Ø Zeit/Lief. (Min.)",
	"totalRoutes":                  "Gesamte Routen",
	"completedRoutes":              "Abgeschlossen",
	"partialRoutes":                "Teilweise",
	"cancelledRoutes":              "Storniert",
	"completionRate":               "Abschlussquote (%)",
	"totalDeliveries":              "Gesamte Lieferungen",
	"successfulDeliveries":         "Erfolgreiche Lief.",
	"failedDeliveries":             "Fehlgeschlagene Lief.",
	"avgDistancePerRouteKm":        "Ø Strecke/Route (km)",
	"totalLiters":                  "Gesamt Liter",
	"totalCostEur":                 "Gesamtkosten (€)",
	"avgPricePerLiter":             "Ø Preis/Liter (€)",
	"avgConsumptionLitersPer100km": "Ø Verbrauch (L/100km)",
	"make":                         "Marke",
	"model":                        "Modell",
	"fuelType":                     "Kraftstoffart",
	"distanceKm":                   "Strecke (km)",
	"consumptionLitersPer100km":    "Verbrauch (L/100km)",
	"fillUps":                      "Tankungen",
	"month":                        "Monat",
	"liters":                       "Liter",
	"costEur":                      "Kosten (€)",
	"avgPrice":                     "Ø Preis (€)",
	"zone":                         "Zone",
	"deliveries":                   "Lieferungen",
	"successRate":                  "Erfolgsquote (%)",
	"status":                       "Status",
	"activeDays":                   "Aktive Tage",
	"maintenanceDays":              "Wartungstage",
	"idleDays":                     "Ruhetage",
	"utilizationPercent":           "Auslastung (%)",
	"avgRoutesPerActiveDay":        "Ø Routen/Tag",
	"totalVehicles":                "Fahrzeuge gesamt",
	"avgUtilizationPercent":        "Ø Auslastung (%)",
	"totalWorkingDays":             "Arbeitstage",
	"totalActiveDays":              "Aktive Tage gesamt",
	"avgDaysActivePerVehicle":      "Ø Tage aktiv/Fahrzeug",
	"maintenanceCount":             "Wartungsanzahl",
	"lastMaintenance":              "Letzte Wartung",
	"nextScheduled":                "Nächste geplant",
	"type":                         "Typ",
	"count":                        "Anzahl",
	"avgCostEur":                   "Ø Kosten (€)",
	"avgCostPerVehicle":            "Ø Kosten/Fahrzeug (€)",
	"scheduledCount":               "Geplant",
	"unscheduledCount":             "Ungeplant",
	"partsCostEur":                 "Teilekosten (€)",
	"laborCostEur":                 "Arbeitskosten (€)",
	"parcels":                      "Pakete",
	"grossPayEur":                  "Bruttovergütung (€)",
	"taxWithholdingEur":            "Steuereinbehalt (€)",
	"netPayEur":                    "Nettovergütung (€)",
	"bonusesEur":                   "Boni (€)",
	"totalDrivers":                 "Fahrer gesamt",
	"totalGrossEur":                "Brutto gesamt (€)",
	"totalTaxWithholdingEur":       "Steuer gesamt (€)",
	"totalNetEur":                  "Netto gesamt (€)",
	"avgPayoutPerDriver":           "Ø Auszahlung/Fahrer (€)",
	"provider":                     "Anbieter",
	"standardDeliveries":           "Standardlieferungen",
	"expressDeliveries":            "Expresslieferungen",
	"returns":                      "Retouren",
	"failed":                       "Fehlgeschlagen",
	"calculatedAmountEur":          "Berechneter Betrag (€)",
	"saturdayBonusEur":             "Samstagsbonus (€)",
	"netPaymentEur":                "Nettozahlung (€)",
	"totalPaymentEur":              "Zahlung gesamt (€)",
}

var titleCaser = cases.Title(language.English)

// label resolves a wire field key to its display label, falling back to a
// humanized form of the key for anything untranslated.
func label(key string) string {
	if l, ok := fieldLabels[key]; ok {
		return l
	}
	return humanize(key)
}

// humanize splits a camelCase key into title-cased words.
func humanize(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(b.String())
}
