package jobmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestTrackerRecordsSuccessAndFailure(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	if err := metrics.Track("report:sweep").End(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantErr := errors.New("boom")
	if err := metrics.Track("report:sweep").End(wantErr); !errors.Is(err, wantErr) {
		t.Fatalf("expected error passthrough, got: %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	seen := map[string]bool{}
	for _, fam := range families {
		seen[fam.GetName()] = true
	}
	if !seen["fleetworks_jobs_total"] {
		t.Fatalf("expected fleetworks_jobs_total to be recorded, got: %v", seen)
	}
	if !seen["fleetworks_jobs_failures_total"] {
		t.Fatalf("expected fleetworks_jobs_failures_total to be recorded, got: %v", seen)
	}
	if !seen["fleetworks_job_duration_seconds"] {
		t.Fatalf("expected fleetworks_job_duration_seconds to be recorded, got: %v", seen)
	}
}

func TestAddExportsIgnoresNonPositiveCounts(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	metrics.AddExports("fleet_performance", "pdf", 0)
	metrics.AddExports("fleet_performance", "pdf", 2)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != "fleetworks_report_exports_total" {
			continue
		}
		if len(fam.GetMetric()) != 1 {
			t.Fatalf("expected a single labelled series, got %d", len(fam.GetMetric()))
		}
		if got := fam.GetMetric()[0].GetCounter().GetValue(); got != 2 {
			t.Fatalf("expected counter value 2, got %v", got)
		}
		return
	}
	t.Fatalf("fleetworks_report_exports_total not found")
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics
	if err := metrics.Track("report:sweep").End(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metrics.AddExports("fleet_performance", "csv", 1)
}
