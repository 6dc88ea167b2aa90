package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	LibCal   LibCalConfig   `toml:"libcal"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig настройки PostgreSQL
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки Redis для блокировок бронирования
type RedisConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	DialTimeout int    `toml:"dial_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-правила бронирования
type BookingConfig struct {
	SemesterStart string `toml:"semester_start"` // YYYY-MM-DD
	SemesterEnd   string `toml:"semester_end"`   // YYYY-MM-DD
	DefaultSource string `toml:"default_source"`
	LockTTL       int    `toml:"lock_ttl"` // секунды
	Timezone      string `toml:"timezone"`
}

// SemesterWindow возвращает границы семестра (включительно)
func (b BookingConfig) SemesterWindow() (types.Date, types.Date, error) {
	start, err := types.ParseDate(b.SemesterStart)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: booking.semester_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.ParseDate(b.SemesterEnd)
	if err != nil {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: booking.semester_end: %v", ErrInvalidConfig, err)
	}
	if end.Before(start) {
		return types.Date{}, types.Date{}, fmt.Errorf("%w: semester ends before it starts", ErrInvalidConfig)
	}
	return start, end, nil
}

// Location часовой пояс кампуса, в котором определяется "сегодня"
func (b BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	return loc, nil
}

// LibCalConfig настройки импорта из LibCal
type LibCalConfig struct {
	Enabled           bool              `toml:"enabled"`
	URL               string            `toml:"url"`
	LocationID        int               `toml:"lid"`
	GroupID           int               `toml:"gid"`
	PageSize          int               `toml:"page_size"`
	Timeout           int               `toml:"timeout"` // секунды
	RequestsPerSecond float64           `toml:"requests_per_second"`
	Burst             int               `toml:"burst"`
	WindowDays        int               `toml:"window_days"`
	Schedule          string            `toml:"schedule"` // cron выражение
	Items             map[string]string `toml:"items"`    // itemId LibCal -> ID комнаты
}

// Load читает TOML-файл, затем .env и переменные окружения поверх него
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			DialTimeout: 5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "room-booking-service",
		},
		Booking: BookingConfig{
			SemesterStart: "2025-08-25",
			SemesterEnd:   "2025-12-05",
			DefaultSource: "BullSpace",
			LockTTL:       10,
		},
		LibCal: LibCalConfig{
			URL:               "https://calendar.lib.usf.edu/spaces/availability/grid",
			LocationID:        1729,
			GroupID:           19125,
			PageSize:          18,
			Timeout:           15,
			RequestsPerSecond: 1,
			Burst:             1,
			WindowDays:        7,
			Schedule:          "0 */2 * * *",
		},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("LIBCAL_URL"); v != "" {
		cfg.LibCal.URL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if _, _, err := c.Booking.SemesterWindow(); err != nil {
		return err
	}
	if _, err := c.Booking.Location(); err != nil {
		return err
	}
	if c.Booking.DefaultSource == "" {
		return fmt.Errorf("%w: booking.default_source is required", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.LibCal.Enabled {
		if c.LibCal.URL == "" {
			return fmt.Errorf("%w: libcal.url is required when libcal is enabled", ErrInvalidConfig)
		}
		if c.LibCal.WindowDays <= 0 {
			return fmt.Errorf("%w: libcal.window_days must be positive", ErrInvalidConfig)
		}
		if c.LibCal.RequestsPerSecond <= 0 {
			return fmt.Errorf("%w: libcal.requests_per_second must be positive", ErrInvalidConfig)
		}
	}
	return nil
}
