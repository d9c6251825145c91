package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

// Workbook is the structured spreadsheet payload. Sheets appear in the
// order they are rendered, summary first.
type Workbook struct {
	Metadata WorkbookMetadata `json:"metadata"`
	Sheets   []Sheet          `json:"sheets"`
}

type WorkbookMetadata struct {
	Title   string    `json:"title"`
	Created time.Time `json:"created"`
	Period  string    `json:"period"`
}

type Sheet struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type xlsxRenderer struct{}

func (xlsxRenderer) Render(r report.Report, now time.Time, _ Options) (Artifact, error) {
	w := r.Span()
	wb := Workbook{
		Metadata: WorkbookMetadata{
			Title:   reportTitle(r.Kind()),
			Created: now.UTC(),
			Period:  periodLabel(w.From, w.To),
		},
	}

	if fields := r.SummaryFields(); len(fields) > 0 {
		summary := Sheet{Name: "Zusammenfassung", Columns: []string{"Kennzahl", "Wert"}}
		for _, f := range fields {
			summary.Rows = append(summary.Rows, []string{label(f.Key), cell(f.Value, dateWire)})
		}
		wb.Sheets = append(wb.Sheets, summary)
	}

	for _, section := range r.Sections() {
		if len(section.Rows) == 0 {
			continue
		}
		sheet := Sheet{Name: sectionTitle(section.Key, section.Title)}
		for _, col := range section.Columns {
			sheet.Columns = append(sheet.Columns, label(col))
		}
		for _, row := range section.Rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = cell(v, dateWire)
			}
			sheet.Rows = append(sheet.Rows, record)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	payload, err := json.MarshalIndent(wb, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("export: marshal workbook: %w", err)
	}
	return artifact(r.Kind(), FormatXLSX, now, payload), nil
}
