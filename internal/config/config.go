package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// EnvConfigPath путь к конфигурационному файлу
	EnvConfigPath = "LODGEEASE_CONFIG"
	// EnvDatabaseDSN полная строка подключения, перекрывает секцию [database]
	EnvDatabaseDSN = "LODGEEASE_DATABASE_DSN"
	// EnvDatabasePassword пароль базы данных
	EnvDatabasePassword = "LODGEEASE_DATABASE_PASSWORD"
	// EnvHTTPPort порт HTTP сервера
	EnvHTTPPort = "LODGEEASE_HTTP_PORT"

	DefaultConfigPath = "config.toml"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Cache     CacheConfig     `toml:"cache"`
	Forecast  ForecastConfig  `toml:"forecast"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
// Driver: postgres (squirrel-репозитории) или sqlite (встроенное хранилище на gorm)
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	DSNOverride     string `toml:"dsn"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	SQLitePath      string `toml:"sqlite_path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки кэша чтений из репозиториев
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
	TTL     int  `toml:"ttl"` // секунды
}

// ForecastConfig параметры прогноза
type ForecastConfig struct {
	ConfidencePolicy string `toml:"confidence_policy"`
	PaceWindowDays   int    `toml:"pace_window_days"`
	Timezone         string `toml:"timezone"`

	// Окно исторического темпа заканчивается на дате отсчета минус год
	HistoricalPaceYearShift bool `toml:"historical_pace_year_shift"`
}

// SchedulerConfig периодический пересчет прогноза
type SchedulerConfig struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval"` // секунды
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load загружает конфигурацию из TOML файла
// Перед чтением подгружается .env (если есть), затем переменные окружения перекрывают значения файла
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

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

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "lodgeease",
			DBName:          "lodgeease",
			SSLMode:         "disable",
			SQLitePath:      "data/lodgeease.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "lodgeease",
		},
		Cache: CacheConfig{
			TTL: 300,
		},
		Forecast: ForecastConfig{
			ConfidencePolicy: "pace_weighted",
			PaceWindowDays:   30,
			Timezone:         "UTC",
		},
		Scheduler: SchedulerConfig{
			Interval: 300,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             5,
		},
	}
}

func (c *Config) applyEnv() error {
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		c.Database.DSNOverride = dsn
	}
	if password := os.Getenv(EnvDatabasePassword); password != "" {
		c.Database.Password = password
	}
	if port := os.Getenv(EnvHTTPPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, port)
		}
		c.Server.HTTPPort = p
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.DSNOverride == "" && (c.Database.Host == "" || c.Database.DBName == "") {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("%w: database.sqlite_path is required for sqlite", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}

	switch c.Forecast.ConfidencePolicy {
	case "pace_weighted", "coverage_elapsed":
	default:
		return fmt.Errorf("%w: unknown forecast.confidence_policy %q", ErrInvalidConfig, c.Forecast.ConfidencePolicy)
	}

	if _, err := c.Forecast.Location(); err != nil {
		return fmt.Errorf("%w: forecast.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	}

	if c.Scheduler.Enabled && c.Scheduler.Interval <= 0 {
		return fmt.Errorf("%w: scheduler.interval must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}

	return nil
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	if d.DSNOverride != "" {
		return d.DSNOverride
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ConnMaxLifetimeDuration время жизни соединения
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// Location часовой пояс календарных месяцев прогноза
func (f ForecastConfig) Location() (*time.Location, error) {
	if f.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(f.Timezone)
}

// TTLDuration время жизни записей кэша
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// IntervalDuration период пересчета прогноза
func (s SchedulerConfig) IntervalDuration() time.Duration {
	return time.Duration(s.Interval) * time.Second
}
