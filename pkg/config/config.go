package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log    LogConfig
	Roster RosterConfig
	Export ExportConfig
	Health HealthConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// RosterConfig tunes roster defaults.
type RosterConfig struct {
	DefaultPageSize int
	SpeakersTarget  int
	SeedCount       int
}

// ExportConfig controls where export artifacts are written.
type ExportConfig struct {
	StorageDir     string
	FilenamePrefix string
	ResultTTL      time.Duration
}

// HealthConfig configures the best-effort startup ping.
type HealthConfig struct {
	URL     string
	Timeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Roster = RosterConfig{
		DefaultPageSize: v.GetInt("ROSTER_PAGE_SIZE"),
		SpeakersTarget:  v.GetInt("ROSTER_SPEAKERS_TARGET"),
		SeedCount:       v.GetInt("ROSTER_SEED_COUNT"),
	}

	cfg.Export = ExportConfig{
		StorageDir:     v.GetString("EXPORT_STORAGE_DIR"),
		FilenamePrefix: v.GetString("EXPORT_FILENAME_PREFIX"),
		ResultTTL:      parseDuration(v.GetString("EXPORT_RESULT_TTL"), 24*time.Hour),
	}

	cfg.Health = HealthConfig{
		URL:     v.GetString("HEALTH_URL"),
		Timeout: parseDuration(v.GetString("HEALTH_TIMEOUT"), 2*time.Second),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ROSTER_PAGE_SIZE", 25)
	v.SetDefault("ROSTER_SPEAKERS_TARGET", 100)
	v.SetDefault("ROSTER_SEED_COUNT", 100)
	v.SetDefault("EXPORT_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORT_FILENAME_PREFIX", "interns")
	v.SetDefault("EXPORT_RESULT_TTL", "24h")
	v.SetDefault("HEALTH_URL", "http://localhost:5000/health")
	v.SetDefault("HEALTH_TIMEOUT", "2s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
