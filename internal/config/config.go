package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server Server `mapstructure:"server"`

	// Database Configuration (MySQL, relationship store)
	Database Database `mapstructure:"database"`

	// Mongo Configuration (notification history)
	Mongo Mongo `mapstructure:"mongo"`

	// Sync Configuration (per-session realtime synchronizer)
	Sync Sync `mapstructure:"sync"`

	// Logging Configuration
	Logging Logging `mapstructure:"logging"`
}

// Server contains listener configuration for both binaries.
type Server struct {
	GRPCPort     string `mapstructure:"grpc_port"`
	GatewayPort  string `mapstructure:"gateway_port"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	Environment  string `mapstructure:"environment"` // development, staging, production
}

// Database contains the MySQL connection configuration.
type Database struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DatabaseName string `mapstructure:"database_name"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// Mongo contains the notification history store configuration.
type Mongo struct {
	URI          string `mapstructure:"uri"`
	DatabaseName string `mapstructure:"database_name"`
	Enabled      bool   `mapstructure:"enabled"`
}

// Sync contains tuning for the realtime synchronizer.
type Sync struct {
	EventBufferSize int `mapstructure:"event_buffer_size"` // per-subscription channel buffer
	FetchRetries    int `mapstructure:"fetch_retries"`     // bounded retries for snapshot reads
	RetryDelayMs    int `mapstructure:"retry_delay_ms"`    // base backoff between retries
}

// Logging contains logging configuration.
type Logging struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, text
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// Load reads config.yaml (if present) and environment variables into a
// Config. Environment variables use the FRIENDGRAPH_ prefix with sections
// joined by underscores, e.g. FRIENDGRAPH_DATABASE_PASSWORD.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FRIENDGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// config file is optional, env-only deployments are fine
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_port", "9090")
	v.SetDefault("server.gateway_port", "8080")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.environment", "development")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.username", "friendgraph")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database_name", "friendgraph")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database_name", "friendgraph")
	v.SetDefault("mongo.enabled", false)

	v.SetDefault("sync.event_buffer_size", 64)
	v.SetDefault("sync.fetch_retries", 3)
	v.SetDefault("sync.retry_delay_ms", 200)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output_path", "stdout")
}

// DSN builds the MySQL connection string for the relationship store.
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}
