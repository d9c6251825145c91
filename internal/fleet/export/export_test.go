package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

var renderTime = time.Date(2025, time.June, 10, 9, 30, 0, 0, time.UTC)

func sampleReport() report.Report {
	return &report.FleetPerformance{
		Period: report.Window{
			From: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, time.June, 8, 23, 59, 59, 0, time.UTC),
		},
		Summary: report.FleetPerformanceSummary{
			TotalRoutes:           3,
			CompletedRoutes:       2,
			CompletionRate:        67,
			TotalDeliveries:       10,
			SuccessfulDeliveries:  9,
			DeliverySuccessRate:   90,
			TotalDistanceKm:       120.5,
			AvgDistancePerRouteKm: 40.2,
		},
		ByVehicle: []report.VehiclePerformanceRow{
			{VehicleID: "v1", LicensePlate: "B-FW 101", RoutesCompleted: 2, DeliveriesCompleted: 6, DeliverySuccessRate: 100, TotalDistanceKm: 80.5, AvgDeliveriesPerRoute: 3},
			{VehicleID: "v2", LicensePlate: `B, "quoted"`, RoutesCompleted: 1, DeliveriesCompleted: 3, DeliverySuccessRate: 75, TotalDistanceKm: 40, AvgDeliveriesPerRoute: 3},
		},
		ByDriver: []report.DriverPerformanceRow{
			{DriverID: "d1", DriverName: "Anna Berger", RoutesCompleted: 3, DeliveriesCompleted: 9, DeliverySuccessRate: 90, AvgTimePerDeliveryMin: 12.5},
		},
	}
}

func TestFilename(t *testing.T) {
	art, err := NewRegistry().Render(sampleReport(), FormatJSON, renderTime, Options{})
	require.NoError(t, err)
	require.Equal(t, "fleet_performance_2025-06-10.json", art.Filename)
	require.Equal(t, int64(len(art.Payload)), art.SizeBytes)
	require.Equal(t, "application/json", art.ContentType)
}

func TestRegistryUnknownFormat(t *testing.T) {
	_, err := NewRegistry().Render(sampleReport(), Format("docx"), renderTime, Options{})
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSONRoundTrip(t *testing.T) {
	art, err := jsonRenderer{}.Render(sampleReport(), renderTime, Options{})
	require.NoError(t, err)

	var got report.FleetPerformance
	require.NoError(t, json.Unmarshal(art.Payload, &got))
	require.Equal(t, 90, got.Summary.DeliverySuccessRate)
	require.Len(t, got.ByVehicle, 2)
	require.Equal(t, "B-FW 101", got.ByVehicle[0].LicensePlate)
}

func TestCSVStructure(t *testing.T) {
	art, err := csvRenderer{}.Render(sampleReport(), renderTime, Options{})
	require.NoError(t, err)
	body := string(art.Payload)

	// Section headings stay English; the locale labels apply to the
	// workbook/document/html renderers only.
	require.True(t, strings.HasPrefix(body, "# By Vehicle\n"))
	require.Contains(t, body, "# By Driver")
	require.Contains(t, body, "# Summary")
	require.NotContains(t, body, "# Report:")
	require.NotContains(t, body, "# Period:")
	require.NotContains(t, body, "Nach Fahrzeug")
	// Empty sections are skipped entirely.
	require.NotContains(t, body, "# By Zone")

	// Data rows survive a round trip through a CSV reader, quoting included.
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Equal(t, "vehicleId", records[0][0])
	require.Equal(t, "v1", records[1][0])
	require.Equal(t, `B, "quoted"`, records[2][1])
}

func TestXLSXWorkbook(t *testing.T) {
	art, err := xlsxRenderer{}.Render(sampleReport(), renderTime, Options{})
	require.NoError(t, err)

	var wb Workbook
	require.NoError(t, json.Unmarshal(art.Payload, &wb))

	require.Equal(t, "Flottenleistungsbericht", wb.Metadata.Title)
	require.Equal(t, renderTime, wb.Metadata.Created)

	require.Len(t, wb.Sheets, 3)
	require.Equal(t, "Zusammenfassung", wb.Sheets[0].Name)
	require.Equal(t, []string{"Kennzahl", "Wert"}, wb.Sheets[0].Columns)
	require.Equal(t, []string{"Gesamte Routen", "3"}, wb.Sheets[0].Rows[0])

	require.Equal(t, "Nach Fahrzeug", wb.Sheets[1].Name)
	require.Equal(t, "Fahrzeug-ID", wb.Sheets[1].Columns[0])
	require.Equal(t, "Nach Fahrer", wb.Sheets[2].Name)
	require.Len(t, wb.Sheets[1].Rows, 2)
}

func TestPDFDocument(t *testing.T) {
	art, err := pdfRenderer{}.Render(sampleReport(), renderTime, Options{IncludeCharts: true})
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(art.Payload, &doc))

	require.Equal(t, "Flottenleistungsbericht", doc.Metadata.Title)
	require.Equal(t, "FleetWorks", doc.Metadata.Author)

	// Title, summary, two chart pages, two table pages.
	require.Len(t, doc.Pages, 6)
	require.Equal(t, "title", doc.Pages[0].Kind)
	require.Equal(t, "summary", doc.Pages[1].Kind)
	require.Equal(t, "chart", doc.Pages[2].Kind)
	require.Equal(t, "chart", doc.Pages[3].Kind)
	require.Equal(t, "table", doc.Pages[4].Kind)
	require.Equal(t, "table", doc.Pages[5].Kind)

	for i, page := range doc.Pages {
		require.Equal(t, fmt.Sprintf("Seite %d von 6", i+1), page.Footer)
	}

	// Vehicle chart bars are labelled by licence plate, sorted descending.
	vehicleChart := doc.Pages[2]
	require.Equal(t, "Nach Fahrzeug", vehicleChart.Title)
	require.Equal(t, "B-FW 101", vehicleChart.Bars[0].Label)
	require.GreaterOrEqual(t, vehicleChart.Bars[0].Value, vehicleChart.Bars[1].Value)

	// Driver chart bars carry the driver name, not the id.
	driverChart := doc.Pages[3]
	require.Equal(t, "Nach Fahrer", driverChart.Title)
	require.Equal(t, "Anna Berger", driverChart.Bars[0].Label)
}

func TestPDFWithoutCharts(t *testing.T) {
	art, err := pdfRenderer{}.Render(sampleReport(), renderTime, Options{})
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(art.Payload, &doc))
	for _, page := range doc.Pages {
		require.NotEqual(t, "chart", page.Kind)
	}
}

func TestPDFChartTopTen(t *testing.T) {
	rep := &report.FleetPerformance{Period: report.Window{From: renderTime, To: renderTime}}
	for i := 0; i < 15; i++ {
		rep.ByVehicle = append(rep.ByVehicle, report.VehiclePerformanceRow{
			VehicleID:           "v" + strconv.Itoa(i),
			LicensePlate:        "B-FW " + strconv.Itoa(100+i),
			RoutesCompleted:     i,
			DeliveriesCompleted: i,
		})
	}

	art, err := pdfRenderer{}.Render(rep, renderTime, Options{IncludeCharts: true})
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(art.Payload, &doc))
	for _, page := range doc.Pages {
		if page.Kind == "chart" {
			require.Len(t, page.Bars, 10)
			require.Equal(t, float64(14), page.Bars[0].Value)
		}
	}
}

func TestHTMLDocument(t *testing.T) {
	art, err := newHTMLRenderer().Render(sampleReport(), renderTime, Options{})
	require.NoError(t, err)
	body := string(art.Payload)

	require.Contains(t, body, "<title>Flottenleistungsbericht</title>")
	require.Contains(t, body, "Zeitraum: 02.06.2025 – 08.06.2025")
	require.Contains(t, body, "Nach Fahrzeug")
	require.Contains(t, body, "<th>Kennzeichen</th>")
	require.Contains(t, body, "Anna Berger")
	// Numeric cells are right-aligned.
	require.Contains(t, body, `<td class="num">80.5</td>`)
	// Special characters get escaped.
	require.Contains(t, body, "B, &#34;quoted&#34;")
	require.Equal(t, "text/html;charset=utf-8", art.ContentType)
}
