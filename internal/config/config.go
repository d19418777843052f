package config

// Config holds all application configuration.
// It is loaded once at startup, validated, and then treated as immutable;
// components receive the sub-structs they need at construction time.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Avatars  AvatarsConfig  `mapstructure:"avatars"  validate:"required"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// BaseURL is the externally reachable address of this service. It is
	// embedded into verification links sent by email.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// DatabaseConfig contains the MongoDB connection settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"  validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the session token lifetime. The default of
	// 1380 minutes matches the 23-hour expiry the service has always used.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// AvatarsConfig contains settings for uploaded avatar storage.
type AvatarsConfig struct {
	// Dir is the directory uploaded avatars are moved into.
	Dir string `mapstructure:"dir" validate:"required"`
}

// SMTPConfig contains outgoing mail settings. When Host is empty the
// application falls back to a logging mailer, which is convenient for
// local development.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
}
