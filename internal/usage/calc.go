package usage

import (
	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/settings"
)

// Anomaly flag values stored on trip records and monthly rollups.
const (
	FlagDailyHigh   = "DAILY_HIGH"
	FlagMonthlyHigh = "MONTHLY_HIGH"
)

// Distance derives a trip distance from odometer readings. A missing reading
// makes the distance unknown (nil), which callers must treat as distinct from
// zero. The result is signed; rejecting negative mileage is submit policy,
// not a concern of the calculation itself.
func Distance(start, end *float64) *float64 {
	if start == nil || end == nil {
		return nil
	}
	d := *end - *start
	return &d
}

// DailyFlag flags a single trip whose distance exceeds DAILY_TRIP_LIMIT.
// Unknown distance never flags. Strictly greater-than: a trip exactly at the
// limit is not anomalous.
func DailyFlag(snap settings.Snapshot, distance *float64) (string, error) {
	if distance == nil {
		return "", nil
	}
	limit, err := snap.Number(settings.KeyDailyTripLimit, settings.DefaultDailyTripLimit)
	if err != nil {
		return "", err
	}
	if *distance > limit {
		return FlagDailyHigh, nil
	}
	return "", nil
}

// MonthlyFlag flags a vehicle-month whose summed distance exceeds
// MONTHLY_HIGH_JUMP. Same strict greater-than semantics as DailyFlag.
func MonthlyFlag(snap settings.Snapshot, monthlyDistance *float64) (string, error) {
	if monthlyDistance == nil {
		return "", nil
	}
	jump, err := snap.Number(settings.KeyMonthlyHighJump, settings.DefaultMonthlyHighJump)
	if err != nil {
		return "", err
	}
	if *monthlyDistance > jump {
		return FlagMonthlyHigh, nil
	}
	return "", nil
}

// Derive recomputes the cached projection fields (Distance, AnomalyFlag) of a
// trip from its odometer readings. Stored values are never trusted as
// authoritative; this runs on every read and at record construction.
func Derive(snap settings.Snapshot, t models.TripRecord) (models.TripRecord, error) {
	t.Distance = Distance(t.OdoStart, t.OdoEnd)
	flag, err := DailyFlag(snap, t.Distance)
	if err != nil {
		return t, err
	}
	t.AnomalyFlag = flag
	return t, nil
}
