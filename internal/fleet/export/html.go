package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

//go:embed report.html
var htmlFS embed.FS

type htmlRenderer struct {
	tmpl *template.Template
}

func newHTMLRenderer() *htmlRenderer {
	return &htmlRenderer{tmpl: template.Must(template.ParseFS(htmlFS, "report.html"))}
}

type htmlPage struct {
	Title    string
	Company  string
	Period   string
	Created  string
	Summary  []htmlField
	Sections []htmlSection
}

type htmlField struct {
	Label string
	Value string
}

type htmlSection struct {
	Title   string
	Columns []string
	Rows    [][]htmlCell
}

type htmlCell struct {
	Text    string
	Numeric bool
}

func (h *htmlRenderer) Render(r report.Report, now time.Time, _ Options) (Artifact, error) {
	w := r.Span()
	page := htmlPage{
		Title:   reportTitle(r.Kind()),
		Company: documentCompany,
		Period:  periodLabel(w.From, w.To),
		Created: now.UTC().Format("02.01.2006 15:04"),
	}

	for _, f := range r.SummaryFields() {
		page.Summary = append(page.Summary, htmlField{Label: label(f.Key), Value: cell(f.Value, dateDisplay)})
	}

	for _, section := range r.Sections() {
		if len(section.Rows) == 0 {
			continue
		}
		hs := htmlSection{Title: sectionTitle(section.Key, section.Title)}
		for _, col := range section.Columns {
			hs.Columns = append(hs.Columns, label(col))
		}
		for _, row := range section.Rows {
			cells := make([]htmlCell, len(row))
			for i, v := range row {
				cells[i] = htmlCell{Text: cell(v, dateDisplay), Numeric: isNumeric(v)}
			}
			hs.Rows = append(hs.Rows, cells)
		}
		page.Sections = append(page.Sections, hs)
	}

	var out bytes.Buffer
	if err := h.tmpl.Execute(&out, page); err != nil {
		return Artifact{}, fmt.Errorf("export: render html: %w", err)
	}
	return artifact(r.Kind(), FormatHTML, now, out.Bytes()), nil
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	}
	return false
}
