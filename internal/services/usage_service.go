package services

import (
	"fmt"
	"strings"
	"sync"

	"fleetrecord/internal/domain"
	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/repositories"
	"fleetrecord/internal/settings"
	"fleetrecord/internal/usage"
	"fleetrecord/internal/utils"
)

// ledgerMu is the global write lock around trip submission. Reads for log-id
// assignment and the vehicle's current odometer must observe all previously
// committed writes, so concurrent submissions are serialized here.
var ledgerMu sync.Mutex

// UsageService owns the trip ledger: listing with the derived projection
// recomputed, and the submit path that appends a record and advances the
// vehicle.
type UsageService struct {
	Store     repositories.Store
	RequestID string
}

// TripSubmission carries the usage-form fields for a new trip.
type TripSubmission struct {
	Date      string
	VehicleID string
	Company   string
	OdoStart  *float64
	OdoEnd    *float64
	Purpose   string
}

// UsageFilter narrows the usage report. Empty fields match everything.
type UsageFilter struct {
	Company   string
	VehicleID string
	User      string
}

func (f UsageFilter) matches(t models.TripRecord) bool {
	if f.Company != "" && !strings.EqualFold(t.Company, f.Company) {
		return false
	}
	if f.VehicleID != "" && !strings.EqualFold(t.VehicleID, f.VehicleID) {
		return false
	}
	if f.User != "" && !strings.EqualFold(t.User, f.User) {
		return false
	}
	return true
}

// ListTrips returns the ledger with Distance and AnomalyFlag recomputed from
// the odometer readings. Stored derived values are only a cache and are never
// returned as-is.
func (s UsageService) ListTrips(filter UsageFilter) ([]models.TripRecord, error) {
	trips, err := s.Store.LoadTrips()
	if err != nil {
		return nil, err
	}
	snap, err := s.Store.LoadSettings()
	if err != nil {
		return nil, err
	}

	out := []models.TripRecord{}
	for _, t := range trips {
		derived, err := usage.Derive(snap, t)
		if err != nil {
			return nil, err
		}
		if filter.matches(derived) {
			out = append(out, derived)
		}
	}
	return out, nil
}

// Submit validates and commits one new trip. On acceptance the record is
// appended to the ledger and the vehicle's odometer and status advance; on
// rejection or persistence failure nothing changes and the error says which.
func (s UsageService) Submit(sub TripSubmission, who models.Identity) (models.TripRecord, error) {
	ledgerMu.Lock()
	defer ledgerMu.Unlock()

	snap, err := s.Store.LoadSettings()
	if err != nil {
		return models.TripRecord{}, err
	}

	dist := usage.Distance(sub.OdoStart, sub.OdoEnd)

	block, err := snap.Bool(settings.KeyNegativeMileageBlock, settings.DefaultNegativeMileageBlock)
	if err != nil {
		return models.TripRecord{}, err
	}
	if block {
		if dist == nil {
			return models.TripRecord{}, domain.ValidationError{
				Field: "odometer",
				Msg:   "start and end readings are required",
			}
		}
		if *dist < 0 {
			return models.TripRecord{}, domain.ValidationError{
				Field: "odoEnd",
				Msg:   "end reading cannot be less than start reading",
			}
		}
	}

	vehicles, err := s.Store.LoadVehicles()
	if err != nil {
		return models.TripRecord{}, err
	}
	vehicleIdx := -1
	for i, v := range vehicles {
		if strings.EqualFold(strings.TrimSpace(v.VehicleID), strings.TrimSpace(sub.VehicleID)) {
			vehicleIdx = i
			break
		}
	}
	if vehicleIdx < 0 {
		return models.TripRecord{}, domain.NotFoundError{Resource: "vehicle"}
	}

	trips, err := s.Store.LoadTrips()
	if err != nil {
		return models.TripRecord{}, err
	}

	// Log ids are one past the current maximum and never reused, gaps or not.
	newID := int64(1)
	for _, t := range trips {
		if t.LogID >= newID {
			newID = t.LogID + 1
		}
	}

	flag, err := usage.DailyFlag(snap, dist)
	if err != nil {
		return models.TripRecord{}, err
	}

	company := strings.TrimSpace(sub.Company)
	if company == "" {
		company = who.Company
	}

	rec := models.TripRecord{
		LogID:       newID,
		Date:        strings.TrimSpace(sub.Date),
		User:        who.Username,
		Company:     company,
		VehicleID:   vehicles[vehicleIdx].VehicleID,
		PlateNo:     vehicles[vehicleIdx].PlateNo,
		OdoStart:    sub.OdoStart,
		OdoEnd:      sub.OdoEnd,
		Distance:    dist,
		Purpose:     strings.TrimSpace(sub.Purpose),
		AnomalyFlag: flag,
		ApprovedBy:  who.Username,
	}

	if err := s.Store.SaveTrips(append(trips, rec)); err != nil {
		utils.LogEvent(s.RequestID, "usage", "submit_failed", err.Error())
		return models.TripRecord{}, err
	}

	// Work on a copy so the loaded set is untouched if the save fails.
	updated := make([]models.Vehicle, len(vehicles))
	copy(updated, vehicles)
	if sub.OdoEnd != nil {
		updated[vehicleIdx].Odometer = *sub.OdoEnd
	}
	updated[vehicleIdx].Status = models.StatusAvailable

	if err := s.Store.SaveVehicles(updated); err != nil {
		// The ledger append went through but the vehicle did not advance;
		// name the partial failure instead of presenting it as success.
		utils.LogEvent(s.RequestID, "usage", "submit_partial_failure", err.Error())
		return models.TripRecord{}, domain.PersistenceError{
			Op:  fmt.Sprintf("vehicle update after ledger append (trip %d saved)", rec.LogID),
			Err: err,
		}
	}

	InvalidateReportCache()
	utils.LogEvent(s.RequestID, "usage", "submit_done",
		fmt.Sprintf("log_id=%d vehicle=%s flag=%s", rec.LogID, rec.VehicleID, rec.AnomalyFlag))
	return rec, nil
}
