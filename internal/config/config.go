// Package config loads service settings.
//
// Sources, lowest priority first: built-in defaults, an optional YAML file
// (CONFIG_PATH, default config.yaml), then environment variables. A .env
// file in the working directory is loaded into the environment before that.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

const defaultConfigPath = "config.yaml"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	CORS    CORSConfig    `koanf:"cors"`
	Seed    SeedConfig    `koanf:"seed"`
	Metrics MetricsConfig `koanf:"metrics"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	Mode            string        `koanf:"mode"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Swagger         bool          `koanf:"swagger"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type CORSConfig struct {
	// AllowedOrigins empty or containing "*" allows every origin.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            3000,
			Mode:            "release",
			ShutdownTimeout: 5 * time.Second,
			Swagger:         true,
		},
		Log:     LogConfig{Level: "info", Format: "json"},
		CORS:    CORSConfig{AllowedOrigins: []string{"*"}},
		Seed:    SeedConfig{Enabled: true},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// envKeys maps flat environment variable names onto config keys.
var envKeys = map[string]string{
	"port":             "server.port",
	"gin_mode":         "server.mode",
	"shutdown_timeout": "server.shutdown_timeout",
	"swagger_enabled":  "server.swagger",
	"log_level":        "log.level",
	"log_format":       "log.format",
	"cors_origins":     "cors.allowed_origins",
	"seed_data":        "seed.enabled",
	"metrics_enabled":  "metrics.enabled",
}

// Load reads the configuration. A missing .env or config file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	path := os.Getenv(ConfigPathEnvVar)
	if path == "" {
		path = defaultConfigPath
	}
	return load(path)
}

func load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	if err := splitList(k, "cors.allowed_origins"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envTransform maps a known variable name to its config key; unknown names are skipped.
func envTransform(key string) string {
	return envKeys[strings.ToLower(key)]
}

// splitList turns a comma separated string value at path into a trimmed slice.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c CORSConfig) AllowAllOrigins() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
