package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-PrepRoomService/internal/domain"
)

// Драйверы хранилища
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config конфигурация сервиса
// Значения читаются из TOML файла, затем переопределяются переменными окружения PREPROOM_*
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Storage     StorageConfig     `toml:"storage"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Scheduling  SchedulingConfig  `toml:"scheduling"`
	AutoRelease AutoReleaseConfig `toml:"auto_release"`
	Seed        SeedConfig        `toml:"seed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"PREPROOM_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"PREPROOM_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"PREPROOM_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"PREPROOM_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"PREPROOM_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"PREPROOM_DB_HOST"`
	Port            int    `toml:"port" env:"PREPROOM_DB_PORT"`
	User            string `toml:"user" env:"PREPROOM_DB_USER"`
	Password        string `toml:"password" env:"PREPROOM_DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"PREPROOM_DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"PREPROOM_DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"PREPROOM_DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"PREPROOM_DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"PREPROOM_DB_CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StorageConfig выбор реализации репозитория
type StorageConfig struct {
	Driver string `toml:"driver" env:"PREPROOM_STORAGE_DRIVER"` // postgres | memory
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" env:"PREPROOM_LOG_FILE"`
	Level string `toml:"level" env:"PREPROOM_LOG_LEVEL"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"PREPROOM_METRICS_ENABLED"`
	Path        string `toml:"path" env:"PREPROOM_METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"PREPROOM_METRICS_SERVICE_NAME"`
}

// SchedulingConfig правила планирования
type SchedulingConfig struct {
	BufferMinutes             int  `toml:"buffer_minutes" env:"PREPROOM_BUFFER_MINUTES"`
	AutoReleaseTimeoutMinutes int  `toml:"auto_release_timeout_minutes" env:"PREPROOM_AUTO_RELEASE_TIMEOUT_MINUTES"`
	SlotStepMinutes           int  `toml:"slot_step_minutes" env:"PREPROOM_SLOT_STEP_MINUTES"`
	AlternativesLimit         int  `toml:"alternatives_limit" env:"PREPROOM_ALTERNATIVES_LIMIT"`
	BrowseLimit               int  `toml:"browse_limit" env:"PREPROOM_BROWSE_LIMIT"`
	AlternativesHorizonHours  int  `toml:"alternatives_horizon_hours" env:"PREPROOM_ALTERNATIVES_HORIZON_HOURS"`
	UrgentWindowMinutes       int  `toml:"urgent_window_minutes" env:"PREPROOM_URGENT_WINDOW_MINUTES"`
	AllowSameCaseOverlap      bool `toml:"allow_same_case_overlap" env:"PREPROOM_ALLOW_SAME_CASE_OVERLAP"`
}

// Policy конвертирует настройки в доменную политику планирования
func (s SchedulingConfig) Policy() domain.SchedulingPolicy {
	return domain.SchedulingPolicy{
		Buffer:               time.Duration(s.BufferMinutes) * time.Minute,
		AutoReleaseTimeout:   time.Duration(s.AutoReleaseTimeoutMinutes) * time.Minute,
		SlotStep:             time.Duration(s.SlotStepMinutes) * time.Minute,
		AlternativesLimit:    s.AlternativesLimit,
		BrowseLimit:          s.BrowseLimit,
		AlternativesHorizon:  time.Duration(s.AlternativesHorizonHours) * time.Hour,
		UrgentWindow:         time.Duration(s.UrgentWindowMinutes) * time.Minute,
		AllowSameCaseOverlap: s.AllowSameCaseOverlap,
	}
}

// AutoReleaseConfig настройки фоновой задачи авто-освобождения
type AutoReleaseConfig struct {
	Enabled         bool `toml:"enabled" env:"PREPROOM_AUTO_RELEASE_ENABLED"`
	IntervalSeconds int  `toml:"interval_seconds" env:"PREPROOM_AUTO_RELEASE_INTERVAL_SECONDS"`
}

// SeedConfig комнаты, создаваемые при запуске с драйвером memory
type SeedConfig struct {
	Rooms []SeedRoom `toml:"rooms"`
}

// SeedRoom описание комнаты для in-memory хранилища
type SeedRoom struct {
	ID            string `toml:"id"`
	FuneralHomeID string `toml:"funeral_home_id"`
	RoomNumber    string `toml:"room_number"`
	Capacity      int    `toml:"capacity"`
	Status        string `toml:"status"`
}

// seedCreatedBy автор комнат, созданных из конфигурации
const seedCreatedBy = "config-seed"

// ToDomain конвертирует описание в доменную комнату.
// Без явного id он выводится из funeral_home_id:room_number, поэтому повторный запуск даёт тот же id
func (r SeedRoom) ToDomain(now time.Time) domain.PrepRoom {
	room := domain.PrepRoom{
		ID:            r.ID,
		FuneralHomeID: r.FuneralHomeID,
		RoomNumber:    r.RoomNumber,
		Capacity:      r.Capacity,
		Status:        domain.RoomStatus(r.Status),
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     seedCreatedBy,
	}
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}
	if room.ID == "" {
		room.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(room.BusinessKey())).String()
	}
	return room
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "preproom",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Logs:    LogsConfig{File: "logs/app.log", Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "preproom-service"},
		Scheduling: SchedulingConfig{
			BufferMinutes:             domain.DefaultBufferMinutes,
			AutoReleaseTimeoutMinutes: domain.DefaultAutoReleaseTimeoutMinutes,
			SlotStepMinutes:           domain.DefaultSlotStepMinutes,
			AlternativesLimit:         domain.DefaultAlternativesLimit,
			BrowseLimit:               domain.DefaultBrowseLimit,
			AlternativesHorizonHours:  domain.DefaultAlternativesHorizonHours,
			UrgentWindowMinutes:       domain.DefaultUrgentWindowMinutes,
			AllowSameCaseOverlap:      true,
		},
		AutoRelease: AutoReleaseConfig{Enabled: true, IntervalSeconds: 300},
	}
}

// Load читает конфигурацию из TOML файла и переменных окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	invalid := make([]string, 0)

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		invalid = append(invalid, "server.http_port")
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			invalid = append(invalid, "database.host/dbname")
		}
	case StorageDriverMemory:
	default:
		invalid = append(invalid, "storage.driver")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		invalid = append(invalid, "metrics.path")
	}

	s := c.Scheduling
	if s.BufferMinutes < 0 {
		invalid = append(invalid, "scheduling.buffer_minutes")
	}
	if s.AutoReleaseTimeoutMinutes <= 0 {
		invalid = append(invalid, "scheduling.auto_release_timeout_minutes")
	}
	if s.SlotStepMinutes <= 0 {
		invalid = append(invalid, "scheduling.slot_step_minutes")
	}
	if s.AlternativesLimit < 0 || s.BrowseLimit < 0 {
		invalid = append(invalid, "scheduling.alternatives_limit/browse_limit")
	}
	if s.AlternativesHorizonHours <= 0 {
		invalid = append(invalid, "scheduling.alternatives_horizon_hours")
	}
	if s.UrgentWindowMinutes < 0 {
		invalid = append(invalid, "scheduling.urgent_window_minutes")
	}

	if c.AutoRelease.Enabled && c.AutoRelease.IntervalSeconds <= 0 {
		invalid = append(invalid, "auto_release.interval_seconds")
	}

	for i, room := range c.Seed.Rooms {
		if room.FuneralHomeID == "" || room.RoomNumber == "" || room.Capacity < domain.MinRoomCapacity {
			invalid = append(invalid, fmt.Sprintf("seed.rooms[%d]", i))
		}
		if room.Status != "" && !domain.RoomStatus(room.Status).IsValid() {
			invalid = append(invalid, fmt.Sprintf("seed.rooms[%d].status", i))
		}
	}

	if len(invalid) > 0 {
		return errors.New("invalid config values: " + strings.Join(invalid, ", "))
	}

	return nil
}
