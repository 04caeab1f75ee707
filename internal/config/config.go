// Package config defines all configuration structures for the
// Legal-AI-Analyzer platform.  No I/O or parsing logic lives here, only
// plain data types and validation; loading is handled by loader.go.
package config

import (
	"fmt"
	"time"
)

// Version is the application version injected at build time.
var Version = "1.0.0"

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the analysis cache.
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	DefaultTTL  time.Duration `mapstructure:"default_ttl"`
	KeyPrefix   string        `mapstructure:"key_prefix"`
}

// MinIOConfig holds object-storage parameters for raw document text.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// KafkaConfig holds the event-producer parameters.
type KafkaConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig mirrors logging.LogConfig so that the config package does not
// import the logging package.
type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// AnalysisConfig holds the tunables of the document analysis engine.
// The clause-length thresholds are deliberately asymmetric: the segmenter
// discards fragments of MinClauseLength or less, while the orchestrator
// only analyses fragments longer than MinSubstantialLength.  The second
// check is headroom for alternative segmentation strategies and must not
// be folded into the first.
type AnalysisConfig struct {
	MaxClauses           int    `mapstructure:"max_clauses"`
	MinClauseLength      int    `mapstructure:"min_clause_length"`
	MinSubstantialLength int    `mapstructure:"min_substantial_length"`
	FallbackMaxClauses   int    `mapstructure:"fallback_max_clauses"`
	MaxTextLength        int    `mapstructure:"max_text_length"`
	DefaultJurisdiction  string `mapstructure:"default_jurisdiction"`
}

// Config is the root configuration object.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Log      LogConfig      `mapstructure:"log"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release, or test, got %q", c.Server.Mode)
	}
	if c.Analysis.MaxClauses <= 0 {
		return fmt.Errorf("analysis.max_clauses must be positive, got %d", c.Analysis.MaxClauses)
	}
	if c.Analysis.FallbackMaxClauses <= 0 {
		return fmt.Errorf("analysis.fallback_max_clauses must be positive, got %d", c.Analysis.FallbackMaxClauses)
	}
	if c.Analysis.MinClauseLength < 0 || c.Analysis.MinSubstantialLength < 0 {
		return fmt.Errorf("analysis clause length thresholds must be non-negative")
	}
	if c.Analysis.MaxTextLength <= 0 {
		return fmt.Errorf("analysis.max_text_length must be positive, got %d", c.Analysis.MaxTextLength)
	}
	return nil
}
