package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
	Wizard   WizardConfig   `toml:"wizard"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig учетные данные администратора
// Фиксированная пара логин/пароль — временное решение до настоящей аутентификации
type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// WhatsAppConfig настройки исходящей ссылки WhatsApp
type WhatsAppConfig struct {
	BaseURL   string `toml:"base_url"`  // например, https://wa.me
	Recipient string `toml:"recipient"` // номер получателя без '+'
}

// WizardConfig настройки сессий мастера бронирования
type WizardConfig struct {
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("config: admin credentials are required")
	}
	if c.WhatsApp.Recipient == "" {
		return fmt.Errorf("config: whatsapp.recipient is required")
	}
	if c.WhatsApp.BaseURL == "" {
		c.WhatsApp.BaseURL = "https://wa.me"
	}
	if c.Wizard.SessionTTLMinutes <= 0 {
		c.Wizard.SessionTTLMinutes = 120
	}
	return nil
}
