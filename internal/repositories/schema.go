package repositories

import (
	"database/sql"

	"fleetrecord/internal/domain"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id        VARCHAR(32) NOT NULL PRIMARY KEY,
		plate_no          VARCHAR(32) NOT NULL DEFAULT '',
		company           VARCHAR(128) NOT NULL DEFAULT '',
		status            VARCHAR(32) NOT NULL DEFAULT 'Available',
		odometer          DOUBLE NOT NULL DEFAULT 0,
		last_service_odo  DOUBLE NOT NULL DEFAULT 0,
		last_service_date VARCHAR(10) NULL,
		notes             TEXT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS usage_log (
		log_id       BIGINT NOT NULL PRIMARY KEY,
		trip_date    VARCHAR(19) NOT NULL DEFAULT '',
		user_name    VARCHAR(64) NOT NULL DEFAULT '',
		company      VARCHAR(128) NOT NULL DEFAULT '',
		vehicle_id   VARCHAR(32) NOT NULL DEFAULT '',
		plate_no     VARCHAR(32) NOT NULL DEFAULT '',
		odo_start    DOUBLE NULL,
		odo_end      DOUBLE NULL,
		distance     DOUBLE NULL,
		purpose      VARCHAR(255) NOT NULL DEFAULT '',
		anomaly_flag VARCHAR(32) NOT NULL DEFAULT '',
		anomaly_note VARCHAR(255) NOT NULL DEFAULT '',
		approved_by  VARCHAR(64) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		setting_key   VARCHAR(64) NOT NULL PRIMARY KEY,
		setting_value VARCHAR(255) NULL
	)`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return domain.PersistenceError{Op: "ensure schema", Err: err}
		}
	}
	return nil
}
