package models

// TripRecord is one recorded vehicle use. Distance and AnomalyFlag are derived
// from OdoStart/OdoEnd; the stored values are a cached projection and are
// recomputed whenever the record is read or written back.
type TripRecord struct {
	LogID       int64    `json:"logId"`
	Date        string   `json:"date"` // YYYY-MM-DD
	User        string   `json:"user"`
	Company     string   `json:"company,omitempty"`
	VehicleID   string   `json:"vehicleId"`
	PlateNo     string   `json:"plateNo,omitempty"`
	OdoStart    *float64 `json:"odoStart"`
	OdoEnd      *float64 `json:"odoEnd"`
	Distance    *float64 `json:"distance"`
	Purpose     string   `json:"purpose,omitempty"`
	AnomalyFlag string   `json:"anomalyFlag,omitempty"`
	AnomalyNote string   `json:"anomalyNote,omitempty"`
	ApprovedBy  string   `json:"approvedBy,omitempty"`
}

// MonthlyAggregate is the per-vehicle, per-calendar-month mileage rollup.
// Derived on demand from the full trip set, never persisted.
type MonthlyAggregate struct {
	VehicleID       string   `json:"vehicleId"`
	Month           string   `json:"month"` // YYYY-MM
	MonthlyDistance *float64 `json:"monthlyDistance"`
	MonthlyFlag     string   `json:"monthlyFlag,omitempty"`
}
