// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Arena struct {
		Size int `yaml:"size" validate:"min=1024"`
	} `yaml:"arena"`
	Output struct {
		PrintAlias     string `yaml:"print_alias" validate:"required"`
		PrintPrimitive string `yaml:"print_primitive" validate:"required"`
		Extension      string `yaml:"extension" validate:"required,startswith=."`
	} `yaml:"output"`
	Log struct {
		Level  string `yaml:"level" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" validate:"oneof=json text"`
	} `yaml:"log"`
	Server struct {
		Port           string        `yaml:"port" validate:"required,numeric"`
		ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
		WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
		MaxSourceBytes int64         `yaml:"max_source_bytes" validate:"min=1"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
}

// Defaults returns the configuration used when nothing overrides it
func Defaults() *Config {
	cfg := &Config{}

	cfg.Arena.Size = 8 << 20

	cfg.Output.PrintAlias = "printf"
	cfg.Output.PrintPrimitive = "print"
	cfg.Output.Extension = ".scm"

	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	cfg.Server.Port = "4790"
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.MaxSourceBytes = 1 << 20

	return cfg
}

// Load builds the configuration from defaults, the optional YAML file at
// path, and finally the environment.
func Load(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		data = interpolateEnv(data, getenv)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("CSCM_ARENA_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CSCM_ARENA_SIZE: %w", err)
		}
		cfg.Arena.Size = size
	}

	cfg.Output.PrintAlias = getEnv(getenv, "CSCM_PRINT_ALIAS", cfg.Output.PrintAlias)
	cfg.Output.PrintPrimitive = getEnv(getenv, "CSCM_PRINT_PRIMITIVE", cfg.Output.PrintPrimitive)

	cfg.Log.Level = getEnv(getenv, "CSCM_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv(getenv, "CSCM_LOG_FORMAT", cfg.Log.Format)

	cfg.Server.Port = getEnv(getenv, "SERVER_PORT", cfg.Server.Port)

	cfg.Database.DSN = getEnv(getenv, "DATABASE_URL", cfg.Database.DSN)
	return nil
}

func getEnv(getenv func(string) string, key, defaultValue string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return defaultValue
}

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// interpolateEnv replaces ${VAR} with its value from getenv
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := envPattern.FindSubmatch(match)[1]
		return []byte(getenv(string(name)))
	})
}
