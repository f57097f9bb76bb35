package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all LootLogger settings.
type Config struct {
	Theme     string `yaml:"theme" validate:"oneof=classic neon mono"`
	DemoItems int    `yaml:"demo_items" validate:"min=0,max=1000"`
	SeedFile  string `yaml:"seed_file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger. An empty File disables logging.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

func Default() *Config {
	return &Config{
		Theme: "classic",
		Log:   LogConfig{Level: "info"},
	}
}

// DefaultPath is ~/.lootlogger/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".lootlogger", "config.yaml"), nil
}

// Load reads path (or $LOOTLOGGER_CONFIG, or the default path) and applies
// environment overrides. A missing default file is not an error. The
// result is not validated: callers layer flags on top, then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("LOOTLOGGER_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv("LOOTLOGGER_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("LOOTLOGGER_DEMO_ITEMS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOOTLOGGER_DEMO_ITEMS: not a number: %s", v)
		}
		c.DemoItems = n
	}
	if v := strings.TrimSpace(os.Getenv("LOOTLOGGER_SEED")); v != "" {
		c.SeedFile = v
	}
	if v := strings.TrimSpace(os.Getenv("LOOTLOGGER_LOG_FILE")); v != "" {
		c.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("LOOTLOGGER_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	return nil
}

var validate = newValidator()

// newValidator reports fields by their yaml key, the name users write.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks field constraints and reports every failing field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	msgs := make([]string, 0, len(ves))
	for _, e := range ves {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, e.Param(), fmt.Sprint(e.Value()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
