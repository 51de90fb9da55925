package repositories

import (
	"database/sql"

	"fleetrecord/internal/config"
	"fleetrecord/internal/domain"
	"fleetrecord/internal/settings"
)

// SettingRepository loads the settings table. Settings are read-only from
// the application's point of view; rows are edited out of band.
type SettingRepository struct {
	DB *sql.DB
}

func (r SettingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// LoadAll returns every setting row as an immutable snapshot.
func (r SettingRepository) LoadAll() (settings.Snapshot, error) {
	rows, err := r.db().Query(`SELECT setting_key, COALESCE(setting_value,'') FROM settings`)
	if err != nil {
		return nil, domain.PersistenceError{Op: "load settings", Err: err}
	}
	defer rows.Close()

	snap := settings.Snapshot{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, domain.PersistenceError{Op: "scan setting", Err: err}
		}
		snap[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, domain.PersistenceError{Op: "iterate settings", Err: err}
	}
	return snap, nil
}
