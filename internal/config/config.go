package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	Export    ExportConfig    `yaml:"export"`
	LLM       LLMConfig       `yaml:"llm"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type StoreConfig struct {
	SlotKey  string        `yaml:"slot_key"`
	Cooldown time.Duration `yaml:"cooldown"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type LLMConfig struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		DB: DBConfig{
			Path: "proyek.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Store: StoreConfig{
			SlotKey:  "academicProject",
			Cooldown: 15 * time.Second,
		},
		Export: ExportConfig{
			Dir: "exports",
		},
		LLM: LLMConfig{
			Provider: "mock",
			Model:    "gpt-4o-mini",
			Timeout:  2 * time.Minute,
		},
	}

	if path := os.Getenv("PROYEK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PROYEK_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PROYEK_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PROYEK_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("PROYEK_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath := os.Getenv("PROYEK_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PROYEK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("PROYEK_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if key := os.Getenv("PROYEK_SLOT_KEY"); key != "" {
		cfg.Store.SlotKey = key
	}
	if dir := os.Getenv("PROYEK_EXPORT_DIR"); dir != "" {
		cfg.Export.Dir = dir
	}
	if provider := os.Getenv("PROYEK_LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if model := os.Getenv("PROYEK_LLM_MODEL"); model != "" {
		cfg.LLM.Model = model
	}
	if apiKey := os.Getenv("PROYEK_LLM_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("PROYEK_LLM_BASE_URL"); baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}

	if cfg.Transport.Mode != "stdio" && cfg.Transport.Mode != "http" {
		return Config{}, fmt.Errorf("invalid transport mode %q: want stdio or http", cfg.Transport.Mode)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
