package services

import (
	"testing"

	"fleetrecord/internal/domain"
	"fleetrecord/internal/domain/models"
)

func TestVehicleUpsertCreatesAndUpdates(t *testing.T) {
	store := &fakeStore{}
	svc := VehicleService{Store: store}

	created, err := svc.Upsert(models.Vehicle{VehicleID: "V1", PlateNo: "B 1 A", Odometer: 100})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if !created {
		t.Fatalf("expected create")
	}
	if store.vehicles[0].Status != models.StatusAvailable {
		t.Fatalf("blank status must default to Available, got %q", store.vehicles[0].Status)
	}

	created, err = svc.Upsert(models.Vehicle{VehicleID: "v1", PlateNo: "B 2 B", Status: models.StatusInUse, Odometer: 200})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if created {
		t.Fatalf("matching id must update, not create")
	}
	if len(store.vehicles) != 1 || store.vehicles[0].PlateNo != "B 2 B" || store.vehicles[0].Odometer != 200 {
		t.Fatalf("update not applied: %+v", store.vehicles)
	}
}

func TestVehicleUpsertValidation(t *testing.T) {
	svc := VehicleService{Store: &fakeStore{}}

	if _, err := svc.Upsert(models.Vehicle{PlateNo: "B 1 A"}); !domain.IsValidation(err) {
		t.Fatalf("missing id must be rejected, got %v", err)
	}
	if _, err := svc.Upsert(models.Vehicle{VehicleID: "V1", Odometer: -5}); !domain.IsValidation(err) {
		t.Fatalf("negative odometer must be rejected, got %v", err)
	}
}
