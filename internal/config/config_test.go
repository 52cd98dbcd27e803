package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assert.EqualValues(t, DefaultAppConfig, *cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HETU_LOCALE", "fi")
	t.Setenv("HETU_MIN_YEAR", "1850")
	t.Setenv("HETU_MAX_YEAR", "1950")
	t.Setenv("HETU_COUNT", "100")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assert.Equal(t, "fi", cfg.Locale)
	assert.Equal(t, 1850, cfg.MinYear)
	assert.Equal(t, 1950, cfg.MaxYear)
	assert.Equal(t, 100, cfg.Count)
}

func TestInvalidLocale(t *testing.T) {
	for _, loc := range []string{"de", "fi-FI", "FI", "x"} {
		t.Setenv("HETU_LOCALE", loc)
		_, err := Load()
		if err == nil {
			t.Errorf("expected error for locale %q, got nil", loc)
		}
	}
}

func TestSupportedYear(t *testing.T) {
	type sample struct {
		Year int `validate:"supported_year"`
	}

	v := validator.New()
	if err := v.RegisterValidation("supported_year", supportedYear); err != nil {
		t.Fatalf("register validation: %v", err)
	}

	tests := []struct {
		name  string
		year  int
		valid bool
	}{
		{name: "window_start", year: 1800, valid: true},
		{name: "window_end", year: 2099, valid: true},
		{name: "nineteenth_century", year: 1899, valid: true},
		{name: "before_window", year: 1799, valid: false},
		{name: "after_window", year: 2100, valid: false},
		{name: "zero", year: 0, valid: false},
		{name: "negative", year: -1901, valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sample{Year: tc.year}
			err := v.Struct(&s)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestOutOfWindowYears(t *testing.T) {
	t.Setenv("HETU_MIN_YEAR", "1750")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for min_year below window, got nil")
	}
	t.Setenv("HETU_MIN_YEAR", "1900")
	t.Setenv("HETU_MAX_YEAR", "2100")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for max_year above window, got nil")
	}
}

func TestBadCount(t *testing.T) {
	for _, c := range []string{"0", "-5", "10001"} {
		t.Setenv("HETU_COUNT", c)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for count %q, got nil", c)
		}
	}
}

func TestLoadDefaultError(t *testing.T) {
	// swap out the defaultLoader to return an error
	orig := defaultLoader
	t.Cleanup(func() { defaultLoader = orig })
	defaultLoader = func(k *koanf.Koanf) error {
		assert.NotNil(t, k)
		return assert.AnError
	}
	_, err := Load()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, assert.AnError) {
		t.Fatalf("expected assert.AnError, got: %v", err)
	}
}

func TestLoadEnvError(t *testing.T) {
	// swap out the envLoader to return an error
	orig := envLoader
	t.Cleanup(func() { envLoader = orig })
	envLoader = func(k *koanf.Koanf) error {
		assert.NotNil(t, k)
		return assert.AnError
	}
	_, err := Load()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, assert.AnError) {
		t.Fatalf("expected assert.AnError, got: %v", err)
	}
}

func TestRegisterValidationFails(t *testing.T) {
	orig := registerValidators
	t.Cleanup(func() { registerValidators = orig })
	registerValidators = func(v *validator.Validate) error {
		assert.NotNil(t, v)
		return assert.AnError
	}
	_, err := Load()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, assert.AnError) {
		t.Fatalf("expected assert.AnError, got: %v", err)
	}
}

func TestInvertedYearRange(t *testing.T) {
	t.Setenv("HETU_MIN_YEAR", "1990")
	t.Setenv("HETU_MAX_YEAR", "1980")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "min_year must be less than or equal to max_year" {
		t.Fatalf("expected min/max year error, got: %v", err)
	}
}
