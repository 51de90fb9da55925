package models

import "strings"

// Vehicle statuses. Every saved usage record resets the vehicle to Available.
const (
	StatusAvailable = "Available"
	StatusInUse     = "In Use"
)

type Vehicle struct {
	VehicleID       string  `json:"vehicleId"`
	PlateNo         string  `json:"plateNo"`
	Company         string  `json:"company,omitempty"`
	Status          string  `json:"status"`
	Odometer        float64 `json:"odometer"`
	LastServiceOdo  float64 `json:"lastServiceOdo"`
	LastServiceDate string  `json:"lastServiceDate,omitempty"` // YYYY-MM-DD
	Notes           string  `json:"notes,omitempty"`
}

// IsAvailable treats status case-insensitively; legacy rows carry mixed casing.
func (v Vehicle) IsAvailable() bool {
	return strings.EqualFold(strings.TrimSpace(v.Status), StatusAvailable)
}
