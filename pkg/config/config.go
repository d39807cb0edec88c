package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingDatabaseURL = errors.New("AQUA_DATABASE_URL is not set")
	ErrMissingAPIKey      = errors.New("AQUA_API_KEY is not set")
)

// Config holds all runtime settings. DatabaseURL and APIKey are required.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	APIKey      string
	AutoMigrate bool
	TokenTTL    time.Duration

	Log LogConfig
	DB  PoolConfig
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console, json
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads .env (when present) and then the AQUA_* environment, failing when a required setting is missing.
func Load() (*Config, error) {
	cfg := Read()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation, for tools that need only part of the settings.
func Read() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("AQUA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "3000")
	v.SetDefault("auto_migrate", true)
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.max_open_conns", 100)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", time.Hour)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env:         v.GetString("env"),
		Port:        v.GetString("port"),
		DatabaseURL: strings.TrimSpace(v.GetString("database_url")),
		APIKey:      strings.TrimSpace(v.GetString("api_key")),
		AutoMigrate: v.GetBool("auto_migrate"),
		TokenTTL:    v.GetDuration("token_ttl"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DB: PoolConfig{
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
	}
}

// Validate checks the two settings the service cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
