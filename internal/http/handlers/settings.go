package handlers

import (
	"net/http"

	"fleetrecord/internal/settings"

	"github.com/gin-gonic/gin"
)

// GET /api/settings — effective values after coercion and defaults.
func GetSettings(c *gin.Context) {
	snap, err := store().LoadSettings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resolved := map[string]any{
		settings.KeyDailyTripLimit:       snap.Value(settings.KeyDailyTripLimit, settings.DefaultDailyTripLimit),
		settings.KeyMonthlyHighJump:      snap.Value(settings.KeyMonthlyHighJump, settings.DefaultMonthlyHighJump),
		settings.KeyServiceIntervalKM:    snap.Value(settings.KeyServiceIntervalKM, settings.DefaultServiceIntervalKM),
		settings.KeyNegativeMileageBlock: snap.Value(settings.KeyNegativeMileageBlock, settings.DefaultNegativeMileageBlock),
	}
	for key, raw := range snap {
		if _, known := resolved[key]; !known {
			resolved[key] = settings.Coerce(raw)
		}
	}

	c.JSON(http.StatusOK, gin.H{"settings": resolved})
}
