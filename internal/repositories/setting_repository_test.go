package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSettingRepositoryLoadAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM settings").WillReturnRows(
		sqlmock.NewRows([]string{"setting_key", "setting_value"}).
			AddRow("DAILY_TRIP_LIMIT", "1200").
			AddRow("NEGATIVE_MILEAGE_BLOCK", "FALSE"),
	)

	repo := SettingRepository{DB: db}
	snap, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if snap["DAILY_TRIP_LIMIT"] != "1200" {
		t.Fatalf("unexpected snapshot: %v", snap)
	}
	if snap["NEGATIVE_MILEAGE_BLOCK"] != "FALSE" {
		t.Fatalf("unexpected snapshot: %v", snap)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryLoadAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"vehicle_id", "plate_no", "company", "status",
		"odometer", "last_service_odo", "last_service_date", "notes",
	}
	mock.ExpectQuery("FROM vehicles").WillReturnRows(
		sqlmock.NewRows(cols).
			AddRow("V1", "B 1234 XY", "OEM", "Available", 5000.0, 0.0, "2024-11-01", ""),
	)

	repo := VehicleRepository{DB: db}
	vehicles, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}
	v := vehicles[0]
	if v.VehicleID != "V1" || v.Odometer != 5000 || !v.IsAvailable() {
		t.Fatalf("unexpected vehicle %+v", v)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
