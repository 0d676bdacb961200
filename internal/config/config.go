package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

type ServerConfig struct {
	Port         int    `yaml:"port"`
	Timezone     string `yaml:"timezone"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type AuthConfig struct {
	Secret string `yaml:"secret"`
}

type MaintenanceConfig struct {
	Enabled bool                  `yaml:"enabled"`
	Message string                `yaml:"message"`
	Pages   map[string]PageConfig `yaml:"pages"`
}

type PageConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Mode         string `yaml:"mode"`
	Title        string `yaml:"title"`
	Message      string `yaml:"message"`
	Progress     int    `yaml:"progress"`
	ExpectedDate string `yaml:"expected_date"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server:   ServerConfig{Port: 8080, Timezone: "UTC"},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Database: DatabaseConfig{Path: "data/renalog.db"},
		Auth:     AuthConfig{Secret: "change_me_in_production"},
	}

	paths := []string{"etc/config.yaml", "/etc/renalog/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			slog.Warn("config file ignored, running on defaults", "path", path, "error", err)
		}
		break
	}

	envOverride(&c.Auth.Secret, "SECRET_KEY")
	envOverride(&c.Database.Path, "DB_PATH")
	envOverride(&c.Server.Timezone, "TZ")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideBool(&c.Server.CookieSecure, "COOKIE_SECURE")
	envOverrideBool(&c.Maintenance.Enabled, "MAINTENANCE_MODE")
	envOverride(&c.Maintenance.Message, "MAINTENANCE_MESSAGE")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			*dst = true
		case "0", "false", "no", "off":
			*dst = false
		}
	}
}
