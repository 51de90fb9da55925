package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// FormatDate formats a time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}
