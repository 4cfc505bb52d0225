package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/chiller/stampsim/message"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// envPrefix prefixes every environment override.
const envPrefix = "STAMPSIM_"

// Config holds all stampsim configuration.
type Config struct {
	// Input files
	Frequencies string `yaml:"frequencies" validate:"required"`
	Intervals   string `yaml:"intervals" validate:"required"`

	// Letters per generated message; a message must fit at least one
	// short-form timestamp.
	MessageLength int `yaml:"message_length" validate:"min=3,max=4096"`

	// Random seed; zero picks a fresh seed per run.
	Seed uint64 `yaml:"seed"`

	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// ReportConfig configures progress reporting.
type ReportConfig struct {
	Every  string `yaml:"every"` // duration, e.g. 2s
	Cron   string `yaml:"cron"`  // overrides Every when set
	Counts bool   `yaml:"counts"`
}

// LogConfig configures logging.
type LogConfig struct {
	Backend string `yaml:"backend" validate:"oneof=slog zap zerolog"`
	Level   string `yaml:"level" validate:"oneof=trace debug info warn error off"`
	Format  string `yaml:"format" validate:"oneof=text json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Frequencies:   "letter_frequencies.txt",
		Intervals:     "time_intervals.txt",
		MessageLength: message.DefaultLength,
		Report: ReportConfig{
			Every: "2s",
		},
		Log: LogConfig{
			Backend: "slog",
			Level:   "info",
			Format:  "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := env("FREQUENCIES"); v != "" {
		c.Frequencies = v
	}
	if v := env("INTERVALS"); v != "" {
		c.Intervals = v
	}
	if v := env("SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrInvalidConfig, envPrefix, v)
		}
		c.Seed = seed
	}
	if v := env("REPORT_EVERY"); v != "" {
		c.Report.Every = v
	}
	if v := env("REPORT_CRON"); v != "" {
		c.Report.Cron = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := env("LOG_BACKEND"); v != "" {
		c.Log.Backend = strings.ToLower(v)
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + key))
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Report.Cron == "" {
		if _, err := c.ReportInterval(); err != nil {
			return err
		}
	}
	return nil
}

// ReportInterval returns the parsed report cadence.
func (c *Config) ReportInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Report.Every)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: report.every %q must be a positive duration",
			ErrInvalidConfig, c.Report.Every)
	}
	return d, nil
}
