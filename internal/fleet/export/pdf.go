package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

const (
	documentCompany = "FleetWorks"
	chartTopN       = 10
)

// Document is the structured print payload, one entry per rendered page.
type Document struct {
	Metadata DocumentMetadata `json:"metadata"`
	Pages    []Page           `json:"pages"`
}

type DocumentMetadata struct {
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	Created time.Time `json:"created"`
	Period  string    `json:"period"`
}

type Page struct {
	Kind     string     `json:"kind"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Columns  []string   `json:"columns,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Bars     []Bar      `json:"bars,omitempty"`
	Footer   string     `json:"footer"`
}

type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type pdfRenderer struct{}

func (pdfRenderer) Render(r report.Report, now time.Time, opts Options) (Artifact, error) {
	w := r.Span()
	period := periodLabel(w.From, w.To)

	pages := []Page{{
		Kind:     "title",
		Title:    reportTitle(r.Kind()),
		Subtitle: fmt.Sprintf("%s · %s", documentCompany, period),
	}}

	if fields := r.SummaryFields(); len(fields) > 0 {
		page := Page{Kind: "summary", Title: "Zusammenfassung", Columns: []string{"Kennzahl", "Wert"}}
		for _, f := range fields {
			page.Rows = append(page.Rows, []string{label(f.Key), cell(f.Value, dateDisplay)})
		}
		pages = append(pages, page)
	}

	sections := r.Sections()

	if opts.IncludeCharts {
		for _, section := range sections {
			if section.Key != report.SectionVehicle && section.Key != report.SectionDriver {
				continue
			}
			if page, ok := chartPage(section); ok {
				pages = append(pages, page)
			}
		}
	}

	for _, section := range sections {
		if len(section.Rows) == 0 {
			continue
		}
		page := Page{Kind: "table", Title: sectionTitle(section.Key, section.Title)}
		for _, col := range section.Columns {
			page.Columns = append(page.Columns, label(col))
		}
		for _, row := range section.Rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = cell(v, dateDisplay)
			}
			page.Rows = append(page.Rows, record)
		}
		pages = append(pages, page)
	}

	for i := range pages {
		pages[i].Footer = fmt.Sprintf("Seite %d von %d", i+1, len(pages))
	}

	doc := Document{
		Metadata: DocumentMetadata{
			Title:   reportTitle(r.Kind()),
			Author:  documentCompany,
			Created: now.UTC(),
			Period:  period,
		},
		Pages: pages,
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("export: marshal document: %w", err)
	}
	return artifact(r.Kind(), FormatPDF, now, payload), nil
}

// chartPage builds a top-N bar chart from a break-down section. Vehicle
// rows are labelled by licence plate, driver rows by driver name; both
// sections carry the display name in the second column.
func chartPage(section report.Section) (Page, bool) {
	if len(section.Rows) == 0 {
		return Page{}, false
	}
	labelIdx := 0
	if (section.Key == report.SectionVehicle || section.Key == report.SectionDriver) && len(section.Columns) > 1 {
		labelIdx = 1
	}

	bars := make([]Bar, 0, len(section.Rows))
	for _, row := range section.Rows {
		if labelIdx >= len(row) {
			continue
		}
		value, ok := firstNumeric(row, labelIdx+1)
		if !ok {
			continue
		}
		bars = append(bars, Bar{Label: cell(row[labelIdx], dateDisplay), Value: value})
	}
	if len(bars) == 0 {
		return Page{}, false
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Value > bars[j].Value })
	if len(bars) > chartTopN {
		bars = bars[:chartTopN]
	}
	return Page{Kind: "chart", Title: sectionTitle(section.Key, section.Title), Bars: bars}, true
}

func firstNumeric(row []any, from int) (float64, bool) {
	for i := from; i < len(row); i++ {
		switch v := row[i].(type) {
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case float64:
			return v, true
		}
	}
	return 0, false
}
