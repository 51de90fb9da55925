package repositories

import (
	"database/sql"
	"fmt"

	"fleetrecord/internal/config"
	"fleetrecord/internal/domain"
	"fleetrecord/internal/domain/models"
)

// UsageRepository wraps DB access for the usage_log table (the trip ledger).
type UsageRepository struct {
	DB *sql.DB
}

func (r UsageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// LoadAll returns the full ledger ordered by log_id.
func (r UsageRepository) LoadAll() ([]models.TripRecord, error) {
	rows, err := r.db().Query(`
		SELECT
			log_id,
			COALESCE(trip_date,''),
			COALESCE(user_name,''),
			COALESCE(company,''),
			COALESCE(vehicle_id,''),
			COALESCE(plate_no,''),
			odo_start,
			odo_end,
			distance,
			COALESCE(purpose,''),
			COALESCE(anomaly_flag,''),
			COALESCE(anomaly_note,''),
			COALESCE(approved_by,'')
		FROM usage_log
		ORDER BY log_id ASC
	`)
	if err != nil {
		return nil, domain.PersistenceError{Op: "load trips", Err: err}
	}
	defer rows.Close()

	list := []models.TripRecord{}
	for rows.Next() {
		var t models.TripRecord
		var odoStart, odoEnd, distance sql.NullFloat64
		if err := rows.Scan(
			&t.LogID,
			&t.Date,
			&t.User,
			&t.Company,
			&t.VehicleID,
			&t.PlateNo,
			&odoStart,
			&odoEnd,
			&distance,
			&t.Purpose,
			&t.AnomalyFlag,
			&t.AnomalyNote,
			&t.ApprovedBy,
		); err != nil {
			return nil, domain.PersistenceError{Op: "scan trip", Err: err}
		}
		t.OdoStart = floatPtr(odoStart)
		t.OdoEnd = floatPtr(odoEnd)
		t.Distance = floatPtr(distance)
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError{Op: "iterate trips", Err: err}
	}
	return list, nil
}

// SaveAll replaces the ledger inside one transaction.
func (r UsageRepository) SaveAll(trips []models.TripRecord) error {
	tx, err := r.db().Begin()
	if err != nil {
		return domain.PersistenceError{Op: "begin save trips", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM usage_log`); err != nil {
		return domain.PersistenceError{Op: "clear trips", Err: err}
	}
	for _, t := range trips {
		_, err := tx.Exec(`
			INSERT INTO usage_log
				(log_id, trip_date, user_name, company, vehicle_id, plate_no,
				 odo_start, odo_end, distance, purpose, anomaly_flag, anomaly_note, approved_by)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			t.LogID, t.Date, t.User, t.Company, t.VehicleID, t.PlateNo,
			nullFloat(t.OdoStart), nullFloat(t.OdoEnd), nullFloat(t.Distance),
			t.Purpose, t.AnomalyFlag, t.AnomalyNote, t.ApprovedBy,
		)
		if err != nil {
			return domain.PersistenceError{Op: fmt.Sprintf("insert trip %d", t.LogID), Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.PersistenceError{Op: "commit save trips", Err: err}
	}
	return nil
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
