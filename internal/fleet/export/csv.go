package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

const csvBufferSize = 32 * 1024

type csvStreamer struct {
	buf *bufio.Writer
	csv *csv.Writer
}

func newCSVStreamer(w *bytes.Buffer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	return &csvStreamer{buf: buf, csv: csv.NewWriter(buf)}
}

func (s *csvStreamer) writeComment(line string) error {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, err := s.buf.WriteString(line)
	return err
}

func (s *csvStreamer) writeRow(row []string) error {
	return s.csv.Write(row)
}

func (s *csvStreamer) flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	return s.buf.Flush()
}

type csvRenderer struct{}

func (csvRenderer) Render(r report.Report, now time.Time, _ Options) (Artifact, error) {
	var out bytes.Buffer
	streamer := newCSVStreamer(&out)

	for _, section := range r.Sections() {
		if len(section.Rows) == 0 {
			continue
		}
		if err := streamer.writeComment("# " + section.Title); err != nil {
			return Artifact{}, fmt.Errorf("export: write csv: %w", err)
		}
		if err := streamer.writeRow(section.Columns); err != nil {
			return Artifact{}, fmt.Errorf("export: write csv: %w", err)
		}
		for _, row := range section.Rows {
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = cell(v, dateWire)
			}
			if err := streamer.writeRow(record); err != nil {
				return Artifact{}, fmt.Errorf("export: write csv: %w", err)
			}
		}
		streamer.csv.Flush()
		if err := streamer.writeComment(""); err != nil {
			return Artifact{}, fmt.Errorf("export: write csv: %w", err)
		}
	}

	if fields := r.SummaryFields(); len(fields) > 0 {
		if err := streamer.writeComment("# Summary"); err != nil {
			return Artifact{}, fmt.Errorf("export: write csv: %w", err)
		}
		for _, f := range fields {
			if err := streamer.writeRow([]string{f.Key, cell(f.Value, dateWire)}); err != nil {
				return Artifact{}, fmt.Errorf("export: write csv: %w", err)
			}
		}
	}

	if err := streamer.flush(); err != nil {
		return Artifact{}, fmt.Errorf("export: write csv: %w", err)
	}
	return artifact(r.Kind(), FormatCSV, now, out.Bytes()), nil
}
