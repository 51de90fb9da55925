package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	// ReportCacheTTL bounds how stale the monthly rollup cache may get.
	ReportCacheTTL time.Duration
}

// LoadEnv reads configuration from the environment, layering a local .env
// file underneath when present.
func LoadEnv() Env {
	_ = godotenv.Load()

	ttl := 5 * time.Second
	if raw := getenv("REPORT_CACHE_TTL_SECONDS", ""); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			ttl = time.Duration(n) * time.Second
		}
	}

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", ""),
		JWTSecret: getenv("JWT_SECRET", "change-me"),

		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getenv("DB_NAME", "transport_record"),

		ReportCacheTTL: ttl,
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
