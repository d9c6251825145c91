// Package export renders report values into their wire representations.
// Every renderer produces identical numbers for identical reports; only
// the filename and creation metadata depend on the rendering time.
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

// Format identifies one of the five output representations.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatXLSX, FormatPDF, FormatHTML:
		return true
	default:
		return false
	}
}

// Ext returns the filename extension for the format.
func (f Format) Ext() string {
	return string(f)
}

// ContentType returns the MIME type emitted alongside the payload.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv;charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html;charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// ErrUnknownFormat indicates an unsupported export format.
var ErrUnknownFormat = errors.New("export: unknown format")

// Artifact is a rendered report ready for history and dispatch.
type Artifact struct {
	Payload     []byte `json:"-"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
}

// Options tweaks renderer behaviour per export.
type Options struct {
	// IncludeCharts adds bar-chart pages to the PDF document.
	IncludeCharts bool
}

// Renderer converts a report value into one wire representation.
type Renderer interface {
	Render(r report.Report, now time.Time, opts Options) (Artifact, error)
}

// Registry maps formats to their renderers.
type Registry struct {
	renderers map[Format]Renderer
}

// NewRegistry builds a registry with all five renderers installed.
func NewRegistry() *Registry {
	return &Registry{renderers: map[Format]Renderer{
		FormatJSON: jsonRenderer{},
		FormatCSV:  csvRenderer{},
		FormatXLSX: xlsxRenderer{},
		FormatPDF:  pdfRenderer{},
		FormatHTML: newHTMLRenderer(),
	}}
}

// Render dispatches to the renderer registered for the format.
func (reg *Registry) Render(r report.Report, f Format, now time.Time, opts Options) (Artifact, error) {
	renderer, ok := reg.renderers[f]
	if !ok {
		return Artifact{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return renderer.Render(r, now, opts)
}

// filename composes {reportType}_{YYYY-MM-DD}.{ext} from the rendering date.
func filename(t report.ReportType, f Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", t, now.UTC().Format("2006-01-02"), f.Ext())
}

func artifact(t report.ReportType, f Format, now time.Time, payload []byte) Artifact {
	return Artifact{
		Payload:     payload,
		ContentType: f.ContentType(),
		Filename:    filename(t, f, now),
		SizeBytes:   int64(len(payload)),
	}
}
