package config

import (
	"os"
	"strconv"
)

// EngineConfig tunes the reward/tracking core. Pool sizing heuristics are
// configuration, not contracts.
type EngineConfig struct {
	ProximityBufferMiles     float64
	AttractionProximityMiles float64
	TrackingPoolMultiplier   int
	TrackingPoolMinWorkers   int
	RewardsPoolMultiplier    int
	RewardsPoolMinWorkers    int
	CatalogCacheTTLSeconds   int
}

type ProvidersConfig struct {
	SimulateLatency  bool
	TripPricerAPIKey string
}

type TrackerConfig struct {
	IntervalMinutes   int
	InternalUserCount int
}

type Config struct {
	Engine      EngineConfig
	Providers   ProvidersConfig
	Tracker     TrackerConfig
	ServerPort  string
	MetricsAddr string
	PprofAddr   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Engine: EngineConfig{
			ProximityBufferMiles:     getEnvFloat("PROXIMITY_BUFFER_MILES", 10),
			AttractionProximityMiles: getEnvFloat("ATTRACTION_PROXIMITY_MILES", 200),
			TrackingPoolMultiplier:   getEnvInt("TRACKING_POOL_MULTIPLIER", 8),
			TrackingPoolMinWorkers:   getEnvInt("TRACKING_POOL_MIN_WORKERS", 100),
			RewardsPoolMultiplier:    getEnvInt("REWARDS_POOL_MULTIPLIER", 1),
			RewardsPoolMinWorkers:    getEnvInt("REWARDS_POOL_MIN_WORKERS", 1),
			CatalogCacheTTLSeconds:   getEnvInt("CATALOG_CACHE_TTL_SECONDS", 30),
		},
		Providers: ProvidersConfig{
			SimulateLatency:  getEnvBool("SIMULATE_PROVIDER_LATENCY", true),
			TripPricerAPIKey: getEnvOrDefault("TRIP_PRICER_API_KEY", "test-server-api-key"),
		},
		Tracker: TrackerConfig{
			IntervalMinutes:   getEnvInt("TRACKING_INTERVAL_MINUTES", 5),
			InternalUserCount: getEnvInt("INTERNAL_USER_COUNT", 100),
		},
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8080"),
		MetricsAddr: getEnvOrDefault("METRICS_ADDR", ":9092"),
		PprofAddr:   getEnvOrDefault("PPROF_ADDR", ":6060"),
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
