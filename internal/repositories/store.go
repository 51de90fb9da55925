package repositories

import (
	"database/sql"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/settings"
)

// Store is the persistence collaborator the computation layer depends on.
// Load returns the full record set; Save replaces it wholesale. How a
// backend turns that into updates or appends is its own business, as long
// as save-then-load round-trips every field losslessly.
type Store interface {
	LoadVehicles() ([]models.Vehicle, error)
	LoadTrips() ([]models.TripRecord, error)
	LoadSettings() (settings.Snapshot, error)
	SaveVehicles([]models.Vehicle) error
	SaveTrips([]models.TripRecord) error
}

// MySQLStore composes the per-table repositories into a Store.
type MySQLStore struct {
	Vehicles VehicleRepository
	Usage    UsageRepository
	Settings SettingRepository
}

func NewMySQLStore(db *sql.DB) MySQLStore {
	return MySQLStore{
		Vehicles: VehicleRepository{DB: db},
		Usage:    UsageRepository{DB: db},
		Settings: SettingRepository{DB: db},
	}
}

func (s MySQLStore) LoadVehicles() ([]models.Vehicle, error)  { return s.Vehicles.LoadAll() }
func (s MySQLStore) LoadTrips() ([]models.TripRecord, error)  { return s.Usage.LoadAll() }
func (s MySQLStore) LoadSettings() (settings.Snapshot, error) { return s.Settings.LoadAll() }
func (s MySQLStore) SaveVehicles(v []models.Vehicle) error    { return s.Vehicles.SaveAll(v) }
func (s MySQLStore) SaveTrips(t []models.TripRecord) error    { return s.Usage.SaveAll(t) }
