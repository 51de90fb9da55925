package services

import (
	"testing"
	"time"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/settings"
	"fleetrecord/internal/usage"
)

func TestMonthlyReportDerivesAndFlags(t *testing.T) {
	SetReportCacheTTL(0)
	defer SetReportCacheTTL(5 * time.Second)

	store := &fakeStore{
		snap: settings.Snapshot{settings.KeyMonthlyHighJump: "100"},
		trips: []models.TripRecord{
			// Stored distance is stale; readings say 90.
			{LogID: 1, Date: "2025-03-01", VehicleID: "V1", OdoStart: f(0), OdoEnd: f(90), Distance: f(5000)},
			{LogID: 2, Date: "2025-03-10", VehicleID: "V1", OdoStart: f(90), OdoEnd: f(120)},
			{LogID: 3, Date: "2025-04-02", VehicleID: "V1", OdoStart: nil, OdoEnd: f(500)},
		},
	}
	svc := ReportService{Store: store}

	aggs, err := svc.MonthlyReport()
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(aggs))
	}
	if aggs[0].Month != "2025-03" || aggs[0].MonthlyDistance == nil || *aggs[0].MonthlyDistance != 120 {
		t.Fatalf("march rollup must use re-derived distances, got %+v", aggs[0])
	}
	if aggs[0].MonthlyFlag != usage.FlagMonthlyHigh {
		t.Fatalf("120 > 100 must flag, got %q", aggs[0].MonthlyFlag)
	}
	if aggs[1].Month != "2025-04" || aggs[1].MonthlyDistance != nil {
		t.Fatalf("april has only an unknown trip, got %+v", aggs[1])
	}
}

func TestMonthlyReportServesWithinStalenessWindow(t *testing.T) {
	SetReportCacheTTL(time.Hour)
	defer SetReportCacheTTL(5 * time.Second)

	store := &fakeStore{
		trips: []models.TripRecord{
			{LogID: 1, Date: "2025-03-01", VehicleID: "V1", OdoStart: f(0), OdoEnd: f(10)},
		},
	}
	svc := ReportService{Store: store}

	if _, err := svc.MonthlyReport(); err != nil {
		t.Fatalf("report error: %v", err)
	}

	// Mutating storage behind the cache's back is not visible until the
	// window lapses or a commit invalidates it.
	store.trips = nil
	aggs, err := svc.MonthlyReport()
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if len(aggs) != 1 {
		t.Fatalf("expected cached rollup, got %d rows", len(aggs))
	}

	InvalidateReportCache()
	aggs, _ = svc.MonthlyReport()
	if len(aggs) != 0 {
		t.Fatalf("invalidation must drop the cached rollup")
	}
}

func TestDashboardSummary(t *testing.T) {
	store := &fakeStore{
		vehicles: []models.Vehicle{
			{VehicleID: "V1", Company: "OEM", Status: "Available"},
			{VehicleID: "V2", Company: "OEM", Status: "In Use"},
			{VehicleID: "V3", Company: "Mitra", Status: "available"},
		},
	}
	svc := ReportService{Store: store}

	sum, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("dashboard error: %v", err)
	}
	if sum.TotalVehicles != 3 || sum.Available != 2 || sum.InUse != 1 {
		t.Fatalf("unexpected totals %+v", sum)
	}
	if len(sum.ByCompany) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(sum.ByCompany))
	}
	// Sorted by company name.
	if sum.ByCompany[0].Company != "Mitra" || sum.ByCompany[0].Available != 1 {
		t.Fatalf("unexpected company row %+v", sum.ByCompany[0])
	}
	if sum.ByCompany[1].Company != "OEM" || sum.ByCompany[1].InUse != 1 {
		t.Fatalf("unexpected company row %+v", sum.ByCompany[1])
	}
}
