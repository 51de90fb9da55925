package usage

import (
	"testing"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/settings"
)

func TestServiceAlertsBoundaryInclusive(t *testing.T) {
	snap := settings.Snapshot{settings.KeyServiceIntervalKM: "10000"}
	vehicles := []models.Vehicle{
		{VehicleID: "V1", Odometer: 5000, LastServiceOdo: 0},
		{VehicleID: "V2", Odometer: 10000, LastServiceOdo: 0},
		{VehicleID: "V3", Odometer: 25000, LastServiceOdo: 14000},
	}

	due, err := ServiceAlerts(snap, vehicles)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 vehicles due, got %d", len(due))
	}
	if due[0].VehicleID != "V2" {
		t.Fatalf("exactly at interval must alert, got %q", due[0].VehicleID)
	}
	if due[1].VehicleID != "V3" {
		t.Fatalf("11000 past service must alert, got %q", due[1].VehicleID)
	}
}

func TestServiceAlertsMonotonic(t *testing.T) {
	snap := settings.Snapshot{}
	v := models.Vehicle{VehicleID: "V1", Odometer: 9999, LastServiceOdo: 0}

	due, _ := ServiceAlerts(snap, []models.Vehicle{v})
	if len(due) != 0 {
		t.Fatalf("below interval must not alert")
	}

	// Advancing the odometer can only move a vehicle into the alert set.
	for _, odo := range []float64{10000, 10001, 50000} {
		v.Odometer = odo
		due, _ = ServiceAlerts(snap, []models.Vehicle{v})
		if len(due) != 1 {
			t.Fatalf("odometer %v must keep alerting", odo)
		}
	}
}
