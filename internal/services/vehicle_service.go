package services

import (
	"strings"

	"fleetrecord/internal/domain"
	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/repositories"
	"fleetrecord/internal/utils"
)

// VehicleService owns the vehicle set: listing and the explicit admin upsert.
type VehicleService struct {
	Store     repositories.Store
	RequestID string
}

func (s VehicleService) List() ([]models.Vehicle, error) {
	return s.Store.LoadVehicles()
}

// Upsert adds or replaces a vehicle keyed by VehicleID. It shares the ledger
// write lock so an admin edit cannot interleave with a trip submission
// against the same set. Returns true when the vehicle was newly created.
func (s VehicleService) Upsert(v models.Vehicle) (bool, error) {
	v.VehicleID = strings.TrimSpace(v.VehicleID)
	v.PlateNo = strings.TrimSpace(v.PlateNo)
	if v.VehicleID == "" {
		return false, domain.ValidationError{Field: "vehicleId", Msg: "required"}
	}
	if v.Odometer < 0 {
		return false, domain.ValidationError{Field: "odometer", Msg: "must be non-negative"}
	}
	if v.LastServiceOdo < 0 {
		return false, domain.ValidationError{Field: "lastServiceOdo", Msg: "must be non-negative"}
	}
	if strings.TrimSpace(v.Status) == "" {
		v.Status = models.StatusAvailable
	}

	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	vehicles, err := s.Store.LoadVehicles()
	if err != nil {
		return false, err
	}

	created := true
	updated := make([]models.Vehicle, len(vehicles))
	copy(updated, vehicles)
	for i := range updated {
		if strings.EqualFold(updated[i].VehicleID, v.VehicleID) {
			updated[i] = v
			created = false
			break
		}
	}
	if created {
		updated = append(updated, v)
	}

	if err := s.Store.SaveVehicles(updated); err != nil {
		return false, err
	}

	action := "vehicle_updated"
	if created {
		action = "vehicle_created"
	}
	utils.LogEvent(s.RequestID, "vehicles", action, "vehicle_id="+v.VehicleID)
	return created, nil
}
