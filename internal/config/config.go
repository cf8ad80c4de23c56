package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the server configuration, read from the environment with
// sensible defaults. PostgresURL empty means the in-memory store.
type Config struct {
	HTTPAddr        string
	PostgresURL     string
	AllowedOrigins  []string
	RoomRetention   time.Duration
	CleanupInterval time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int
}

func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		PostgresURL:     getenv("POSTGRES_URL", ""),
		AllowedOrigins:  getenvList("ALLOWED_ORIGINS"),
		RoomRetention:   getenvDuration("ROOM_RETENTION", 2*time.Hour),
		CleanupInterval: getenvDuration("CLEANUP_INTERVAL", time.Hour),
		RateLimitPerSec: getenvFloat("RATE_LIMIT_PER_SEC", 5),
		RateLimitBurst:  getenvInt("RATE_LIMIT_BURST", 10),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
