package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Logger is the logger configuration.
	Logger LoggerConfig `mapstructure:"logger"`
	// Server is the HTTP server configuration.
	Server ServerConfig `mapstructure:"server"`
	// Assessment configures how results are ranked.
	Assessment AssessmentConfig `mapstructure:"assessment"`
	// Sessions configures the in-memory estimate history.
	Sessions SessionsConfig `mapstructure:"sessions"`
	// Audit configures the estimate audit log.
	Audit AuditConfig `mapstructure:"audit"`
}

// LoggerConfig defines logging settings.
type LoggerConfig struct {
	// Level is one of debug, info, warn, warning, error (case-insensitive).
	Level string `mapstructure:"level"`
}

// ServerConfig contains HTTP server parameters.
type ServerConfig struct {
	// Address to listen on, e.g. ":8080".
	Address string `mapstructure:"address"`
	// Static is a directory served under /static/. Empty disables it.
	Static string `mapstructure:"static"`
}

// AssessmentConfig selects the ranking rules.
type AssessmentConfig struct {
	// Rules is a YAML file with CEL ranking rules. Empty uses the built-in
	// rules.
	Rules string `mapstructure:"rules"`
}

// SessionsConfig defines the estimate history kept per session.
type SessionsConfig struct {
	// Length is the number of estimates kept per session (default 20).
	Length int `mapstructure:"length"`
	// TTL after which an idle session is dropped, e.g. "30m" (default 1h).
	TTL time.Duration `mapstructure:"ttl"`
}

// AuditConfig defines the estimate audit log.
type AuditConfig struct {
	// File is the audit log path. Empty disables auditing.
	File string `mapstructure:"file"`
	// Size is the maximal file size in megabytes before rotation (default 100).
	Size int `mapstructure:"size"`
	// Backups is the number of rotated files to keep (default 20).
	Backups int `mapstructure:"backups"`
}

// Validate checks the whole configuration and returns the first error.
// Defaults are filled in on the way.
func (c *AppConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	if err := c.Sessions.Validate(); err != nil {
		return err
	}

	if err := c.Audit.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks that the log level is set and supported.
func (l *LoggerConfig) Validate() error {
	if l.Level == "" {
		return errors.New("logger.level: must be specified")
	}

	valid := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !valid[strings.ToLower(l.Level)] {
		return fmt.Errorf("logger.level: unsupported level '%s'", l.Level)
	}

	return nil
}

// Validate checks that the server address is set.
func (s *ServerConfig) Validate() error {
	if s.Address == "" {
		return errors.New("server.address: must be specified")
	}

	return nil
}

// Validate fills in history defaults and rejects negative values.
func (s *SessionsConfig) Validate() error {
	if s.Length < 0 {
		return errors.New("sessions.length: must not be negative")
	}

	if s.TTL < 0 {
		return errors.New("sessions.ttl: must not be negative")
	}

	if s.Length == 0 {
		s.Length = 20
	}

	if s.TTL == 0 {
		s.TTL = time.Hour
	}

	return nil
}

// Validate fills in rotation defaults.
func (a *AuditConfig) Validate() error {
	if a.Size < 0 || a.Backups < 0 {
		return errors.New("audit: size and backups must not be negative")
	}

	if a.Size == 0 {
		a.Size = 100
	}

	if a.Backups == 0 {
		a.Backups = 20
	}

	return nil
}

// setDefaults registers every key so that environment variables override
// keys missing from the file too. Unmarshal only sees keys viper knows.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "")
	v.SetDefault("server.address", "")
	v.SetDefault("server.static", "")
	v.SetDefault("assessment.rules", "")
	v.SetDefault("sessions.length", 20)
	v.SetDefault("sessions.ttl", time.Hour)
	v.SetDefault("audit.file", "")
	v.SetDefault("audit.size", 100)
	v.SetDefault("audit.backups", 20)
}

// LoadConfig loads the YAML configuration at configPath. Environment
// variables override file values, including keys absent from the file
// ("." replaced by "_", e.g. SERVER_ADDRESS or AUDIT_FILE).
//
// It fails when the file is missing or unreadable, malformed, or when a
// section fails validation.
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
