package settings

import (
	"testing"

	"fleetrecord/internal/domain"
)

func TestBoolAbsentReturnsDefault(t *testing.T) {
	snap := Snapshot{}
	v, err := snap.Bool(KeyNegativeMileageBlock, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !v {
		t.Fatalf("expected default true")
	}
}

func TestBoolCaseInsensitive(t *testing.T) {
	snap := Snapshot{KeyNegativeMileageBlock: " false "}
	v, err := snap.Bool(KeyNegativeMileageBlock, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v {
		t.Fatalf("expected false from literal")
	}
}

func TestBoolMalformedFailsLoudly(t *testing.T) {
	snap := Snapshot{KeyNegativeMileageBlock: "yes"}
	_, err := snap.Bool(KeyNegativeMileageBlock, true)
	if !domain.IsConfig(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestNumberParsesAndDefaults(t *testing.T) {
	snap := Snapshot{KeyDailyTripLimit: "1500"}
	v, err := snap.Number(KeyDailyTripLimit, DefaultDailyTripLimit)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v != 1500 {
		t.Fatalf("expected 1500, got %v", v)
	}

	v, err = snap.Number(KeyMonthlyHighJump, DefaultMonthlyHighJump)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v != DefaultMonthlyHighJump {
		t.Fatalf("expected default %v, got %v", DefaultMonthlyHighJump, v)
	}
}

func TestNumberMalformedNeverZero(t *testing.T) {
	snap := Snapshot{KeyDailyTripLimit: "a lot"}
	_, err := snap.Number(KeyDailyTripLimit, DefaultDailyTripLimit)
	if !domain.IsConfig(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValueCoercion(t *testing.T) {
	snap := Snapshot{
		"FLAG":  "TRUE",
		"LIMIT": "250.5",
		"NOTE":  "hello",
	}

	if v, ok := snap.Value("FLAG", false).(bool); !ok || !v {
		t.Fatalf("expected boolean true, got %v", snap.Value("FLAG", false))
	}
	if v, ok := snap.Value("LIMIT", 0.0).(float64); !ok || v != 250.5 {
		t.Fatalf("expected 250.5, got %v", snap.Value("LIMIT", 0.0))
	}
	if v, ok := snap.Value("NOTE", "").(string); !ok || v != "hello" {
		t.Fatalf("expected text passthrough, got %v", snap.Value("NOTE", ""))
	}
	if v := snap.Value("MISSING", 42); v != 42 {
		t.Fatalf("absent key must return default unchanged, got %v", v)
	}
}

func TestNilSnapshotBehavesAsDefaults(t *testing.T) {
	var snap Snapshot
	v, err := snap.Number(KeyServiceIntervalKM, DefaultServiceIntervalKM)
	if err != nil || v != DefaultServiceIntervalKM {
		t.Fatalf("nil snapshot: got %v, %v", v, err)
	}
}
