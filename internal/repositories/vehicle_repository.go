package repositories

import (
	"database/sql"

	"fleetrecord/internal/config"
	"fleetrecord/internal/domain"
	"fleetrecord/internal/domain/models"
)

// VehicleRepository wraps DB access for the vehicles table.
type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// LoadAll returns every vehicle ordered by vehicle_id.
func (r VehicleRepository) LoadAll() ([]models.Vehicle, error) {
	rows, err := r.db().Query(`
		SELECT
			vehicle_id,
			COALESCE(plate_no,''),
			COALESCE(company,''),
			COALESCE(status,''),
			COALESCE(odometer,0),
			COALESCE(last_service_odo,0),
			COALESCE(last_service_date,''),
			COALESCE(notes,'')
		FROM vehicles
		ORDER BY vehicle_id ASC
	`)
	if err != nil {
		return nil, domain.PersistenceError{Op: "load vehicles", Err: err}
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(
			&v.VehicleID,
			&v.PlateNo,
			&v.Company,
			&v.Status,
			&v.Odometer,
			&v.LastServiceOdo,
			&v.LastServiceDate,
			&v.Notes,
		); err != nil {
			return nil, domain.PersistenceError{Op: "scan vehicle", Err: err}
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError{Op: "iterate vehicles", Err: err}
	}
	return list, nil
}

// SaveAll replaces the vehicle set inside one transaction. Either the whole
// new set is visible afterwards or nothing changed.
func (r VehicleRepository) SaveAll(vehicles []models.Vehicle) error {
	tx, err := r.db().Begin()
	if err != nil {
		return domain.PersistenceError{Op: "begin save vehicles", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vehicles`); err != nil {
		return domain.PersistenceError{Op: "clear vehicles", Err: err}
	}
	for _, v := range vehicles {
		_, err := tx.Exec(`
			INSERT INTO vehicles
				(vehicle_id, plate_no, company, status, odometer, last_service_odo, last_service_date, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, v.VehicleID, v.PlateNo, v.Company, v.Status, v.Odometer, v.LastServiceOdo, nullIfEmpty(v.LastServiceDate), v.Notes)
		if err != nil {
			return domain.PersistenceError{Op: "insert vehicle " + v.VehicleID, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.PersistenceError{Op: "commit save vehicles", Err: err}
	}
	return nil
}

// nullIfEmpty stores optional strings as NULL instead of empty text.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
