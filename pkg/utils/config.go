package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DataSourceFixture  = "fixture"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Availability AvailabilityConfig
	Redis        RedisConfig
	CORS         CORSConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	DataSource string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AvailabilityConfig struct {
	// Delay emulates the latency of a remote booking service.
	Delay time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled is false when no Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig reads path (usually ".env") when it exists and lets environment
// variables override every key.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "restaurant-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DATA_SOURCE", DataSourceFixture)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("AVAILABILITY_DELAY", "0s")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Port:       v.GetString("PORT"),
			Debug:      v.GetBool("DEBUG"),
			LogPath:    v.GetString("LOG_PATH"),
			DataSource: strings.ToLower(v.GetString("DATA_SOURCE")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Availability: AvailabilityConfig{
			Delay: v.GetDuration("AVAILABILITY_DELAY"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      v.GetDuration("CACHE_TTL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if config.App.DataSource != DataSourcePostgres {
		config.App.DataSource = DataSourceFixture
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
