// README: Config loader with env defaults for HTTP, metered tariff and logging.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type TariffConfig struct {
	StartFee float64
	PerKm    float64
	PerMin   float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Tariff   TariffConfig
	Currency string
	Log      struct {
		Level  string
		Format string
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real env vars take precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var err error
	cfg.HTTP.Addr = envOrDefault("SCT_HTTP_ADDR", ":8080")
	cfg.Currency = envOrDefault("SCT_CURRENCY", "SEK")
	cfg.Log.Level = envOrDefault("LOG_LEVEL", "info")
	cfg.Log.Format = envOrDefault("LOG_FORMAT", "console")

	if cfg.Tariff.StartFee, err = envOrDefaultFloat("SCT_START_FEE", 50); err != nil {
		return Config{}, err
	}
	if cfg.Tariff.PerKm, err = envOrDefaultFloat("SCT_PER_KM", 14.9); err != nil {
		return Config{}, err
	}
	if cfg.Tariff.PerMin, err = envOrDefaultFloat("SCT_PER_MIN", 9.6); err != nil {
		return Config{}, err
	}
	if cfg.Tariff.StartFee < 0 || cfg.Tariff.PerKm < 0 || cfg.Tariff.PerMin < 0 {
		return Config{}, fmt.Errorf("tariff components must be non-negative: %+v", cfg.Tariff)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
