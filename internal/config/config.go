package config

import (
	"fmt"
	"strings"

	apperrors "org-tenancy-backend/internal/errors"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the development signing secret. It must never reach production.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Supported store drivers
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Store selection
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	// MongoDB configuration
	MongoURL               string `mapstructure:"MONGO_URL"`
	MasterDBName           string `mapstructure:"MASTER_DB_NAME"`
	MongoConnectTimeoutSec int    `mapstructure:"MONGO_CONNECT_TIMEOUT_SEC"`

	// Postgres configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	JWTAlgorithm string `mapstructure:"JWT_ALGORITHM"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.StoreDriver = strings.ToLower(strings.TrimSpace(config.StoreDriver))
	config.JWTAlgorithm = strings.ToUpper(strings.TrimSpace(config.JWTAlgorithm))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORE_DRIVER", StoreDriverMongo)

	// MongoDB defaults
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("MASTER_DB_NAME", "master_db")
	v.SetDefault("MONGO_CONNECT_TIMEOUT_SEC", 10)

	// Postgres defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "master_db")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_ALGORITHM", "HS256")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && config.JWTSecret == DefaultJWTSecret {
		return apperrors.ErrDefaultJWTSecret
	}

	switch config.StoreDriver {
	case StoreDriverMongo:
		if config.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required for the %s driver", StoreDriverMongo)
		}
		if config.MasterDBName == "" {
			return fmt.Errorf("master database name is required")
		}
	case StoreDriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedStoreDriver, config.StoreDriver)
	}

	switch config.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedJWTAlgorithm, config.JWTAlgorithm)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesDefaultSecret reports whether the development signing secret is still configured
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
