package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	DBMaxOpenConns   int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns   int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Record locking: "memory" for a single instance, "redis" when scaled out
	LockBackend   string        `mapstructure:"LOCK_BACKEND"`
	LockTTL       time.Duration `mapstructure:"LOCK_TTL"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`

	// LDAP directory, secondary source for site membership
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Check-in policy
	CheckInGraceMinutes      int           `mapstructure:"CHECKIN_GRACE_MINUTES"`
	MinRestHours             float64       `mapstructure:"MIN_REST_HOURS"`
	GeofenceHysteresisMeters float64       `mapstructure:"GEOFENCE_HYSTERESIS_METERS"`
	LookupTimeout            time.Duration `mapstructure:"LOOKUP_TIMEOUT"`
	CertificationHardBlock   bool          `mapstructure:"CERTIFICATION_HARD_BLOCK"`

	// Sweeps and dispatch
	NoShowGraceMinutes         int     `mapstructure:"NO_SHOW_GRACE_MINUTES"`
	EscalationThresholdMinutes int     `mapstructure:"ESCALATION_THRESHOLD_MINUTES"`
	DispatchMinScore           float64 `mapstructure:"DISPATCH_MIN_SCORE"`
	SweepBatchSize             int     `mapstructure:"SWEEP_BATCH_SIZE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "guard_deployment")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Lock defaults
	viper.SetDefault("LOCK_BACKEND", "memory")
	viper.SetDefault("LOCK_TTL", "10s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// LDAP defaults, empty host disables the directory fallback
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 2)

	// Check-in policy defaults
	viper.SetDefault("CHECKIN_GRACE_MINUTES", 15)
	viper.SetDefault("MIN_REST_HOURS", 10.0)
	viper.SetDefault("GEOFENCE_HYSTERESIS_METERS", 20.0)
	viper.SetDefault("LOOKUP_TIMEOUT", "2s")
	viper.SetDefault("CERTIFICATION_HARD_BLOCK", false)

	// Sweep and dispatch defaults
	viper.SetDefault("NO_SHOW_GRACE_MINUTES", 30)
	viper.SetDefault("ESCALATION_THRESHOLD_MINUTES", 15)
	viper.SetDefault("DISPATCH_MIN_SCORE", 60.0)
	viper.SetDefault("SWEEP_BATCH_SIZE", 500)
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
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.LockBackend {
	case "memory":
	case "redis":
		if config.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when LOCK_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unsupported LOCK_BACKEND %q", config.LockBackend)
	}

	if config.LookupTimeout < time.Second || config.LookupTimeout > 3*time.Second {
		return fmt.Errorf("LOOKUP_TIMEOUT must be between 1s and 3s, got %s", config.LookupTimeout)
	}

	if config.CheckInGraceMinutes < 0 || config.MinRestHours < 0 || config.GeofenceHysteresisMeters < 0 {
		return fmt.Errorf("check-in policy values must not be negative")
	}

	return nil
}

// LDAPEnabled reports whether the directory fallback is configured
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != "" && c.LDAPBaseDN != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
