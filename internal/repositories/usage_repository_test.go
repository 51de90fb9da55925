package repositories

import (
	"fmt"
	"testing"

	"fleetrecord/internal/domain"
	"fleetrecord/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func fptr(v float64) *float64 { return &v }

func TestUsageRepositorySaveAllReplacesLedger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM usage_log").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO usage_log").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO usage_log").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := UsageRepository{DB: db}
	trips := []models.TripRecord{
		{LogID: 1, Date: "2025-01-05", VehicleID: "V1", OdoStart: fptr(100), OdoEnd: fptr(220), Distance: fptr(120)},
		{LogID: 2, Date: "2025-01-06", VehicleID: "V1", OdoStart: nil, OdoEnd: fptr(300)},
	}
	if err := repo.SaveAll(trips); err != nil {
		t.Fatalf("save error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUsageRepositorySaveAllRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM usage_log").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO usage_log").
		WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	repo := UsageRepository{DB: db}
	err = repo.SaveAll([]models.TripRecord{{LogID: 1, VehicleID: "V1"}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUsageRepositoryLoadAllKeepsNullReadings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"log_id", "trip_date", "user_name", "company", "vehicle_id", "plate_no",
		"odo_start", "odo_end", "distance", "purpose", "anomaly_flag", "anomaly_note", "approved_by",
	}
	mock.ExpectQuery("FROM usage_log").WillReturnRows(
		sqlmock.NewRows(cols).
			AddRow(1, "2025-01-05", "budi", "OEM", "V1", "B 1234 XY", 100.0, 220.0, 120.0, "delivery", "", "", "admin").
			AddRow(2, "2025-01-06", "budi", "OEM", "V1", "B 1234 XY", nil, 300.0, nil, "", "", "", "admin"),
	)

	repo := UsageRepository{DB: db}
	trips, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	if trips[0].OdoStart == nil || *trips[0].OdoStart != 100 {
		t.Fatalf("known reading lost: %v", trips[0].OdoStart)
	}
	if trips[1].OdoStart != nil || trips[1].Distance != nil {
		t.Fatalf("NULL readings must stay unknown, got %+v", trips[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
