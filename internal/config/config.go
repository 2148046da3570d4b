// Package config loads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	HTTPServer ServerConfig
	Postgres   PostgresConfig
	Bolt       BoltConfig
	Kafka      KafkaConfig
	Admin      AdminConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:"storefront"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"storefront"`
	DBName   string `envconfig:"POSTGRES_DBNAME" default:"storefront"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

// DSN builds the connection string for lib/pq.
func (pc *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pc.Host, pc.Port, pc.User, pc.Password, pc.DBName, pc.SSLMode)
}

type BoltConfig struct {
	Path string `envconfig:"BOLT_PATH" default:"storefront.db"`
}

// KafkaConfig configures the checkout hand-off. Leaving Brokers empty
// disables publishing.
type KafkaConfig struct {
	Brokers string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string `envconfig:"KAFKA_ORDER_TOPIC" default:"storefront-orders"`
}

// BrokerList splits the comma-separated broker string.
func (kc *KafkaConfig) BrokerList() []string {
	if kc.Brokers == "" {
		return nil
	}
	return strings.Split(kc.Brokers, ",")
}

type AdminConfig struct {
	PasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	JWTSecret    string        `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	TokenExpiry  time.Duration `envconfig:"ADMIN_TOKEN_EXPIRY" default:"2h"`
}

type LoggerConfig struct {
	Mode       string `envconfig:"LOGGER_MODE" default:"development"`
	FileEnable bool   `envconfig:"LOGGER_FILE_ENABLE" default:"false"`
	Filename   string `envconfig:"LOGGER_FILENAME" default:"storefront.log"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.Admin.JWTSecret) < 32 {
		return nil, fmt.Errorf("config: ADMIN_JWT_SECRET must be at least 32 characters")
	}
	return &cfg, nil
}
