// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file and TIMBANG_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/timbang/internal/holiday"
)

// Config holds everything the binary needs to wire itself.
type Config struct {
	DBPath   string `yaml:"db_path"`
	Owner    string `yaml:"owner"`
	Timezone string `yaml:"timezone"`
	HTTPAddr string `yaml:"http_addr"`
	// Tokens maps bearer tokens to owners for the HTTP API.
	Tokens map[string]string `yaml:"tokens"`

	HolidayAPIURL  string        `yaml:"holiday_api_url"`
	HolidayTimeout time.Duration `yaml:"holiday_timeout"`
	HolidayRetries int           `yaml:"holiday_retries"`
	HolidayCron    string        `yaml:"holiday_cron"`

	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	LogUseCases bool   `yaml:"log_use_cases"`
}

// DefaultConfig returns a Config with the built-in defaults. DBPath is left
// empty and resolved against the home directory by Load.
func DefaultConfig() Config {
	hc := holiday.DefaultConfig()
	return Config{
		Owner:          "me",
		Timezone:       "Local",
		HTTPAddr:       "127.0.0.1:8080",
		Tokens:         map[string]string{},
		HolidayAPIURL:  hc.BaseURL,
		HolidayTimeout: hc.Timeout,
		HolidayRetries: hc.MaxRetries,
		HolidayCron:    holiday.DefaultSchedule,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load resolves the configuration. A missing config file or .env file is
// not an error; a malformed one is.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}

	path, explicit := configPath()
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".timbang", "timbang.db")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// configPath returns the YAML file to read and whether it was named
// explicitly through TIMBANG_CONFIG.
func configPath() (string, bool) {
	if v := os.Getenv("TIMBANG_CONFIG"); v != "" {
		return v, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".timbang", "config.yaml"), false
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays TIMBANG_* variables. Every unparsable value is reported.
func applyEnv(cfg *Config) error {
	var errs []error
	if cfg.Tokens == nil {
		cfg.Tokens = map[string]string{}
	}
	if v := os.Getenv("TIMBANG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TIMBANG_OWNER"); v != "" {
		cfg.Owner = v
	}
	if v := os.Getenv("TIMBANG_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("TIMBANG_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TIMBANG_TOKENS"); v != "" {
		for token, owner := range parseTokens(v) {
			cfg.Tokens[token] = owner
		}
	}
	if v := os.Getenv("TIMBANG_HOLIDAY_API_URL"); v != "" {
		cfg.HolidayAPIURL = v
	}
	if v := os.Getenv("TIMBANG_HOLIDAY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TIMBANG_HOLIDAY_TIMEOUT: %w", err))
		} else {
			cfg.HolidayTimeout = d
		}
	}
	if v := os.Getenv("TIMBANG_HOLIDAY_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TIMBANG_HOLIDAY_RETRIES: %w", err))
		} else {
			cfg.HolidayRetries = n
		}
	}
	if v := os.Getenv("TIMBANG_HOLIDAY_CRON"); v != "" {
		cfg.HolidayCron = v
	}
	if v := os.Getenv("TIMBANG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TIMBANG_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TIMBANG_LOG_USE_CASES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("TIMBANG_LOG_USE_CASES: %w", err))
		} else {
			cfg.LogUseCases = b
		}
	}
	return errors.Join(errs...)
}

// parseTokens reads "token1=owner1,token2=owner2". Malformed pairs are
// skipped.
func parseTokens(s string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		token, owner, ok := strings.Cut(strings.TrimSpace(pair), "=")
		token, owner = strings.TrimSpace(token), strings.TrimSpace(owner)
		if !ok || token == "" || owner == "" {
			continue
		}
		out[token] = owner
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Owner) == "" {
		return fmt.Errorf("owner must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.HolidayTimeout <= 0 {
		return fmt.Errorf("holiday timeout %s: must be positive", c.HolidayTimeout)
	}
	if c.HolidayRetries < 0 {
		return fmt.Errorf("holiday retries %d: must not be negative", c.HolidayRetries)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: expected text or json", c.LogFormat)
	}
	return nil
}

// Location resolves Timezone. "Local" and "" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// HolidayClientConfig returns the holiday client settings.
func (c Config) HolidayClientConfig() holiday.Config {
	return holiday.Config{
		BaseURL:    c.HolidayAPIURL,
		Timeout:    c.HolidayTimeout,
		MaxRetries: c.HolidayRetries,
	}
}
