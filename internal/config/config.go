// Package config provides layered configuration loading for the hetu CLI.
// It merges defaults with HETU_* environment variables and validates the
// result; command-line flags are overlaid by the command layer afterwards.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "HETU_"

// Config holds the merged runtime configuration.
// Order of precedence (lowest → highest): defaults → environment → flags.
type Config struct {
	Locale  string `koanf:"locale" validate:"required,oneof=en fi sv"`
	MinYear int    `koanf:"min_year" validate:"required,supported_year"`
	MaxYear int    `koanf:"max_year" validate:"required,supported_year"`
	Count   int    `koanf:"count" validate:"required,min=1,max=10000"`
}

// DefaultAppConfig is the configuration used when nothing is overridden.
var DefaultAppConfig = Config{
	Locale:  "en",
	MinYear: 1900,
	MaxYear: 2029,
	Count:   10,
}

// Loader hooks are package variables so tests can substitute failing stages.
var (
	defaultLoader = func(k *koanf.Koanf) error {
		return k.Load(structs.Provider(DefaultAppConfig, "koanf"), nil)
	}
	envLoader = func(k *koanf.Koanf) error {
		return k.Load(env.Provider(".", env.Opt{
			Prefix: envPrefix,
			TransformFunc: func(key, value string) (string, any) {
				return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
			},
		}), nil)
	}
	registerValidators = func(v *validator.Validate) error {
		return v.RegisterValidation("supported_year", supportedYear)
	}
)

// supportedYear accepts years that have a century character, i.e. [1800, 2099].
func supportedYear(fl validator.FieldLevel) bool {
	y := fl.Field().Int()
	return y >= 1800 && y <= 2099
}

// Load builds the effective configuration: defaults, then environment,
// then struct validation plus cross-field checks.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	dc := &mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "koanf",
		WeaklyTypedInput: true, // env values arrive as strings
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", DecoderConfig: dc}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	v := validator.New()
	if err := registerValidators(v); err != nil {
		return nil, err
	}
	if err := v.Struct(&cfg); err != nil {
		return nil, err
	}
	if cfg.MinYear > cfg.MaxYear {
		return nil, errors.New("min_year must be less than or equal to max_year")
	}
	return &cfg, nil
}
