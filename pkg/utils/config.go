package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	OMDb      OMDbConfig
	Policy    PolicyConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxConns    int32
	AutoMigrate bool
}

// OMDbConfig holds everything the metadata provider client needs.
// It is passed explicitly to the client constructor.
type OMDbConfig struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
}

// PolicyConfig carries the per-deployment schema and validation choices.
type PolicyConfig struct {
	UniqueTitle           bool
	AllowEmptyCommentBody bool
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file (if present) and the process environment.
// Process environment wins over the file.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movies-db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "movies_db")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("OMDB_BASE_URL", "http://www.omdbapi.com/")
	v.SetDefault("OMDB_TIMEOUT", "10s")
	v.SetDefault("OMDB_USER_AGENT", "movies-db/1.0")
	v.SetDefault("POLICY_UNIQUE_TITLE", true)
	v.SetDefault("POLICY_ALLOW_EMPTY_COMMENT_BODY", false)
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		OMDb: OMDbConfig{
			BaseURL:   v.GetString("OMDB_BASE_URL"),
			APIKey:    v.GetString("OMDB_API_KEY"),
			Timeout:   v.GetDuration("OMDB_TIMEOUT"),
			UserAgent: v.GetString("OMDB_USER_AGENT"),
		},
		Policy: PolicyConfig{
			UniqueTitle:           v.GetBool("POLICY_UNIQUE_TITLE"),
			AllowEmptyCommentBody: v.GetBool("POLICY_ALLOW_EMPTY_COMMENT_BODY"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
