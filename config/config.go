package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Session  SessionConfig  `yaml:"session"`
	Storage  StorageConfig  `yaml:"storage"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address               string `yaml:"address"`
	Mode                  string `yaml:"mode"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

func (h HTTPConfig) RequestTimeout() time.Duration {
	return time.Duration(h.RequestTimeoutSeconds) * time.Second
}

type SessionConfig struct {
	Name          string `yaml:"name"`
	Secret        string `yaml:"secret"`
	MaxAgeSeconds int    `yaml:"max_age_seconds"`
	Secure        bool   `yaml:"secure"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
}

type DynamoDBConfig struct {
	Region            string `yaml:"region"`
	Endpoint          string `yaml:"endpoint"`
	UsersTable        string `yaml:"users_table"`
	BookingsTable     string `yaml:"bookings_table"`
	UserBookingsIndex string `yaml:"user_bookings_index"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	HistoryCacheTTLSeconds int `yaml:"history_cache_ttl_seconds"`
}

func (b BookingConfig) HistoryCacheTTL() time.Duration {
	return time.Duration(b.HistoryCacheTTLSeconds) * time.Second
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type AuthConfig struct {
	BcryptCost int        `yaml:"bcrypt_cost"`
	SeedUsers  []SeedUser `yaml:"seed_users"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document, applies defaults and environment overrides,
// and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.RequestTimeoutSeconds <= 0 {
		c.HTTP.RequestTimeoutSeconds = 5
	}
	if c.Session.Name == "" {
		c.Session.Name = "capture_moments"
	}
	if c.Session.MaxAgeSeconds <= 0 {
		c.Session.MaxAgeSeconds = 86400 * 7
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendMemory
	}
	if c.DynamoDB.UsersTable == "" {
		c.DynamoDB.UsersTable = "Users"
	}
	if c.DynamoDB.BookingsTable == "" {
		c.DynamoDB.BookingsTable = "Bookings"
	}
	if c.DynamoDB.UserBookingsIndex == "" {
		c.DynamoDB.UserBookingsIndex = "user_email-booking_date-index"
	}
	if c.Booking.HistoryCacheTTLSeconds <= 0 {
		c.Booking.HistoryCacheTTLSeconds = 60
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "capture-moments-notifier"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendDynamoDB, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Session.Secret == "" {
		return errors.New("session secret is required")
	}
	return nil
}
