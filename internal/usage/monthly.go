package usage

import (
	"sort"
	"strings"
	"time"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/settings"
)

var tripDateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05"}

// MonthKey truncates a trip date to its calendar month (YYYY-MM). The second
// return is false for blank or unparseable dates; such trips are skipped by
// the aggregator.
func MonthKey(date string) (string, bool) {
	raw := strings.TrimSpace(date)
	if raw == "" {
		return "", false
	}
	for _, layout := range tripDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}

// MonthlyDistances groups trips by (vehicle, month) and sums their distances.
// A group's sum is unknown only when every trip in it has unknown distance;
// one known value is enough to make the sum known. Output is sorted by
// vehicle then month so display order is stable.
func MonthlyDistances(trips []models.TripRecord) []models.MonthlyAggregate {
	type groupKey struct {
		vehicle string
		month   string
	}
	type groupSum struct {
		total float64
		known bool
	}

	groups := map[groupKey]*groupSum{}
	for _, t := range trips {
		month, ok := MonthKey(t.Date)
		if !ok {
			continue
		}
		k := groupKey{vehicle: t.VehicleID, month: month}
		g := groups[k]
		if g == nil {
			g = &groupSum{}
			groups[k] = g
		}
		if t.Distance != nil {
			g.total += *t.Distance
			g.known = true
		}
	}

	out := make([]models.MonthlyAggregate, 0, len(groups))
	for k, g := range groups {
		agg := models.MonthlyAggregate{VehicleID: k.vehicle, Month: k.month}
		if g.known {
			total := g.total
			agg.MonthlyDistance = &total
		}
		out = append(out, agg)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].VehicleID != out[j].VehicleID {
			return out[i].VehicleID < out[j].VehicleID
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// ApplyMonthlyFlags fills MonthlyFlag on each aggregate using the snapshot's
// MONTHLY_HIGH_JUMP threshold.
func ApplyMonthlyFlags(snap settings.Snapshot, aggs []models.MonthlyAggregate) ([]models.MonthlyAggregate, error) {
	for i := range aggs {
		flag, err := MonthlyFlag(snap, aggs[i].MonthlyDistance)
		if err != nil {
			return nil, err
		}
		aggs[i].MonthlyFlag = flag
	}
	return aggs, nil
}
