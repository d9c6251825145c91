package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fleetworks/fleetworks/internal/fleet/report"
)

type jsonRenderer struct{}

func (jsonRenderer) Render(r report.Report, now time.Time, _ Options) (Artifact, error) {
	payload, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("export: marshal report: %w", err)
	}
	return artifact(r.Kind(), FormatJSON, now, payload), nil
}
