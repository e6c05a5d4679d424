package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Gemini GeminiConfig `yaml:"gemini"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type GeminiConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	// Seconds before an in-flight generation call is abandoned and
	// surfaced as an upstream failure.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func Load(configFile string) *Config {
	// A local .env is optional; real deployments set env vars directly.
	godotenv.Load()

	c := &Config{
		Server: ServerConfig{Port: 8790},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Gemini: GeminiConfig{
			BaseURL:        "https://generativelanguage.googleapis.com",
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 30,
		},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/skin-diary/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Gemini.BaseURL, "GEMINI_BASE_URL")
	envOverride(&c.Gemini.APIKey, "GEMINI_API_KEY")
	envOverride(&c.Gemini.Model, "GEMINI_MODEL")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Gemini.TimeoutSeconds, "GEMINI_TIMEOUT_SECONDS")

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
