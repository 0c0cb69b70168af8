package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// MigrationsDir is the directory containing goose SQL migrations.
	// The schema-reset endpoint replays these, so the path must be valid
	// at runtime, not only at startup.
	MigrationsDir string `mapstructure:"migrations_dir" validate:"required"`
}

// CacheConfig contains settings for the optional user read cache.
// An empty RedisAddr disables caching entirely.
type CacheConfig struct {
	RedisAddr  string `mapstructure:"redis_addr"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"gte=0"`
}
