package usage

import (
	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/settings"
)

// ServiceAlerts selects vehicles whose odometer has advanced at least
// SERVICE_INTERVAL_KM since the last recorded service. The boundary is
// inclusive: service is due at the interval, while anomaly flags only fire
// past their limits. Nothing is persisted; callers get a fresh selection
// from current vehicle state every time.
func ServiceAlerts(snap settings.Snapshot, vehicles []models.Vehicle) ([]models.Vehicle, error) {
	interval, err := snap.Number(settings.KeyServiceIntervalKM, settings.DefaultServiceIntervalKM)
	if err != nil {
		return nil, err
	}

	due := []models.Vehicle{}
	for _, v := range vehicles {
		if v.Odometer-v.LastServiceOdo >= interval {
			due = append(due, v)
		}
	}
	return due, nil
}
