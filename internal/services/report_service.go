package services

import (
	"sort"
	"sync"
	"time"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/repositories"
	"fleetrecord/internal/usage"
)

// reportCache holds the monthly rollup with a bounded staleness window.
// A successful trip submit invalidates it immediately, so a caller never
// sees an aggregate that misses the write it just made.
var reportCache = struct {
	mu      sync.Mutex
	ttl     time.Duration
	expires time.Time
	data    []models.MonthlyAggregate
}{ttl: 5 * time.Second}

// SetReportCacheTTL configures the staleness window (zero disables caching).
func SetReportCacheTTL(d time.Duration) {
	reportCache.mu.Lock()
	defer reportCache.mu.Unlock()
	reportCache.ttl = d
	reportCache.data = nil
	reportCache.expires = time.Time{}
}

// InvalidateReportCache drops the cached rollup.
func InvalidateReportCache() {
	reportCache.mu.Lock()
	defer reportCache.mu.Unlock()
	reportCache.data = nil
	reportCache.expires = time.Time{}
}

// CompanyAvailability is one dashboard row: fleet counts for a company.
type CompanyAvailability struct {
	Company   string `json:"company"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	InUse     int    `json:"inUse"`
}

// DashboardSummary aggregates current fleet state for the dashboard.
type DashboardSummary struct {
	TotalVehicles int                   `json:"totalVehicles"`
	Available     int                   `json:"available"`
	InUse         int                   `json:"inUse"`
	ByCompany     []CompanyAvailability `json:"byCompany"`
}

// ReportService derives read-only views: monthly mileage, service alerts and
// the dashboard summary. Everything is recomputed from storage; only the
// monthly rollup is cached, and only within the staleness window.
type ReportService struct {
	Store     repositories.Store
	RequestID string
}

// MonthlyReport returns per-vehicle monthly mileage with anomaly flags.
func (s ReportService) MonthlyReport() ([]models.MonthlyAggregate, error) {
	reportCache.mu.Lock()
	if reportCache.data != nil && time.Now().Before(reportCache.expires) {
		out := make([]models.MonthlyAggregate, len(reportCache.data))
		copy(out, reportCache.data)
		reportCache.mu.Unlock()
		return out, nil
	}
	reportCache.mu.Unlock()

	trips, err := s.Store.LoadTrips()
	if err != nil {
		return nil, err
	}
	snap, err := s.Store.LoadSettings()
	if err != nil {
		return nil, err
	}

	// Distances are re-derived before grouping; stored values are cache only.
	for i := range trips {
		trips[i].Distance = usage.Distance(trips[i].OdoStart, trips[i].OdoEnd)
	}

	aggs, err := usage.ApplyMonthlyFlags(snap, usage.MonthlyDistances(trips))
	if err != nil {
		return nil, err
	}

	reportCache.mu.Lock()
	if reportCache.ttl > 0 {
		cached := make([]models.MonthlyAggregate, len(aggs))
		copy(cached, aggs)
		reportCache.data = cached
		reportCache.expires = time.Now().Add(reportCache.ttl)
	}
	reportCache.mu.Unlock()

	return aggs, nil
}

// ServiceAlertReport lists vehicles due for maintenance. Never cached;
// always computed from current vehicle state.
func (s ReportService) ServiceAlertReport() ([]models.Vehicle, error) {
	vehicles, err := s.Store.LoadVehicles()
	if err != nil {
		return nil, err
	}
	snap, err := s.Store.LoadSettings()
	if err != nil {
		return nil, err
	}
	return usage.ServiceAlerts(snap, vehicles)
}

// Dashboard summarizes fleet availability, overall and per company.
func (s ReportService) Dashboard() (DashboardSummary, error) {
	vehicles, err := s.Store.LoadVehicles()
	if err != nil {
		return DashboardSummary{}, err
	}

	sum := DashboardSummary{TotalVehicles: len(vehicles)}
	byCompany := map[string]*CompanyAvailability{}
	for _, v := range vehicles {
		row := byCompany[v.Company]
		if row == nil {
			row = &CompanyAvailability{Company: v.Company}
			byCompany[v.Company] = row
		}
		row.Total++
		if v.IsAvailable() {
			sum.Available++
			row.Available++
		} else {
			sum.InUse++
			row.InUse++
		}
	}

	for _, row := range byCompany {
		sum.ByCompany = append(sum.ByCompany, *row)
	}
	sort.Slice(sum.ByCompany, func(i, j int) bool {
		return sum.ByCompany[i].Company < sum.ByCompany[j].Company
	})
	return sum, nil
}
