package settings

import (
	"strconv"
	"strings"

	"fleetrecord/internal/domain"
)

// Well-known setting keys.
const (
	KeyDailyTripLimit       = "DAILY_TRIP_LIMIT"
	KeyMonthlyHighJump      = "MONTHLY_HIGH_JUMP"
	KeyServiceIntervalKM    = "SERVICE_INTERVAL_KM"
	KeyNegativeMileageBlock = "NEGATIVE_MILEAGE_BLOCK"
)

// Defaults applied when a key is absent from the snapshot.
const (
	DefaultDailyTripLimit    = 1000.0
	DefaultMonthlyHighJump   = 4000.0
	DefaultServiceIntervalKM = 10000.0

	DefaultNegativeMileageBlock = true
)

// Snapshot is an immutable view of the settings set, threaded explicitly into
// each computation instead of being re-read from storage behind the caller's
// back. A nil Snapshot behaves as all-defaults.
type Snapshot map[string]string

func (s Snapshot) raw(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Bool returns the boolean value for key, or def when the key is absent.
// Only the literals TRUE/FALSE (case-insensitive) coerce; anything else is a
// ConfigError so malformed flags fail at the point of use.
func (s Snapshot) Bool(key string, def bool) (bool, error) {
	raw, ok := s.raw(key)
	if !ok {
		return def, nil
	}
	switch strings.ToUpper(raw) {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	}
	return false, domain.ConfigError{Key: key, Value: raw, Want: "boolean"}
}

// Number returns the numeric value for key, or def when the key is absent.
// A present but non-numeric value is a ConfigError, never a silent zero.
func (s Snapshot) Number(key string, def float64) (float64, error) {
	raw, ok := s.raw(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.ConfigError{Key: key, Value: raw, Want: "number"}
	}
	return n, nil
}

// Text returns the raw value for key, or def when absent.
func (s Snapshot) Text(key, def string) string {
	raw, ok := s.raw(key)
	if !ok {
		return def
	}
	return raw
}

// Value is the loose lookup: absent keys return def unchanged, present values
// go through Coerce. Kept for the resolved-settings view; computation paths
// use the typed accessors above.
func (s Snapshot) Value(key string, def any) any {
	raw, ok := s.raw(key)
	if !ok {
		return def
	}
	return Coerce(raw)
}

// Coerce guesses the type of a raw setting value: TRUE/FALSE become booleans,
// numerics become float64, everything else stays text.
func Coerce(raw string) any {
	v := strings.TrimSpace(raw)
	switch strings.ToUpper(v) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}
