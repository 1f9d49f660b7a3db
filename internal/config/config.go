package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every host.
type Config struct {
	Width      int    `yaml:"width" validate:"min=64"`
	Height     int    `yaml:"height" validate:"min=64"`
	Scale      int    `yaml:"scale" validate:"min=1,max=8"`
	Theme      string `yaml:"theme" validate:"oneof=light dark"`
	Font       string `yaml:"font" validate:"oneof=small medium large"`
	FrameMs    int    `yaml:"frame_ms" validate:"min=5,max=100"`
	LogLevel   string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	PagesDir   string `yaml:"pages_dir"`
	StartPage  string `yaml:"start_page"`
	AutoRedraw bool   `yaml:"auto_redraw"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:    320,
		Height:   240,
		Scale:    2,
		Theme:    "light",
		Font:     "medium",
		FrameMs:  20,
		LogLevel: "warn",
	}
}

// Frame returns the frame interval.
func (c Config) Frame() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used by the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks c against its field rules.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("validate config: %s: %w", strings.Join(msgs, "; "), err)
}

// Load reads a YAML file on top of Default and validates the result. An
// empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
