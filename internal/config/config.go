package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Поддерживаемые бэкенды кэша
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Availability AvailabilityConfig `toml:"availability"`
	Cache        CacheConfig        `toml:"cache"`
	Redis        RedisConfig        `toml:"redis"`
	StaffService StaffServiceConfig `toml:"staff_service"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type AvailabilityConfig struct {
	WindowDays int    `toml:"window_days"`
	Timezone   string `toml:"timezone"` // IANA, в ней трактуются даты из запросов
}

// Location возвращает часовой пояс для дат из запросов
func (c AvailabilityConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type CacheConfig struct {
	Backend    string `toml:"backend"`
	TTL        int    `toml:"ttl"` // секунды
	MaxEntries int    `toml:"max_entries"`
}

func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type StaffServiceConfig struct {
	URL     string `toml:"url"` // пусто = проверка специалиста отключена
	Timeout int    `toml:"timeout"`
}

// envOverrides значения, которые можно переопределить переменными окружения
type envOverrides struct {
	DBPassword    string `envconfig:"DB_PASSWORD"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
	HTTPPort      int    `envconfig:"HTTP_PORT"`
	CacheBackend  string `envconfig:"CACHE_BACKEND"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "availability-service",
			Path:        "/metrics",
		},
		Availability: AvailabilityConfig{
			WindowDays: domain.DefaultWindowDays,
			Timezone:   "UTC",
		},
		Cache: CacheConfig{
			Backend:    CacheBackendMemory,
			TTL:        60,
			MaxEntries: 10000,
		},
		Redis:        RedisConfig{Addr: "localhost:6379"},
		StaffService: StaffServiceConfig{Timeout: 5},
	}
}

// Load читает TOML файл поверх значений по умолчанию, применяет переменные окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.RedisPassword != "" {
		c.Redis.Password = env.RedisPassword
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.CacheBackend != "" {
		c.Cache.Backend = env.CacheBackend
	}
	return nil
}

// Validate проверяет значения, с которыми сервис не сможет работать
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Availability.WindowDays < 1 || c.Availability.WindowDays > domain.MaxWindowDays {
		return fmt.Errorf("%w: availability.window_days must be between 1 and %d, got %d",
			ErrInvalidConfig, domain.MaxWindowDays, c.Availability.WindowDays)
	}

	if _, err := c.Availability.Location(); err != nil {
		return fmt.Errorf("%w: availability.timezone: %v", ErrInvalidConfig, err)
	}

	switch c.Cache.Backend {
	case CacheBackendMemory:
		if c.Cache.MaxEntries <= 0 {
			return fmt.Errorf("%w: cache.max_entries must be positive", ErrInvalidConfig)
		}
	case CacheBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis cache", ErrInvalidConfig)
		}
	case CacheBackendNone:
	default:
		return fmt.Errorf("%w: unknown cache.backend %q", ErrInvalidConfig, c.Cache.Backend)
	}

	if c.Cache.Backend != CacheBackendNone && c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
