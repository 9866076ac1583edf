package ldschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/ldschema/format"
)

// Config carries the site identity used for builder defaults. It is copied
// into a Builder at construction and never mutated afterwards.
type Config struct {
	BaseURL          string `yaml:"baseUrl"`
	OrganizationName string `yaml:"organizationName"`
	OrganizationLogo string `yaml:"organizationLogo"`
	Currency         string `yaml:"currency"`
}

// Environment variables that override file values.
const (
	EnvBaseURL          = "LDSCHEMA_BASE_URL"
	EnvOrganizationName = "LDSCHEMA_ORG_NAME"
	EnvOrganizationLogo = "LDSCHEMA_ORG_LOGO"
	EnvCurrency         = "LDSCHEMA_CURRENCY"
)

// DefaultConfig returns the built-in site identity.
func DefaultConfig() Config {
	return Config{
		BaseURL:          "https://www.purrify.ca",
		OrganizationName: "Purrify",
		OrganizationLogo: "https://www.purrify.ca/purrify-logo.png",
		Currency:         "CAD",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig and then applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("ldschema: read config: %w", err)
		}
		if err := ParseConfig(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg = cfg.withEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig decodes YAML into cfg, leaving fields absent from data untouched.
func ParseConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("ldschema: decode config: %w", err)
	}
	return nil
}

func (c Config) withEnv(getenv func(string) string) Config {
	override := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	override(&c.BaseURL, EnvBaseURL)
	override(&c.OrganizationName, EnvOrganizationName)
	override(&c.OrganizationLogo, EnvOrganizationLogo)
	override(&c.Currency, EnvCurrency)
	return c
}

// Validate checks that the identity fields are usable as builder defaults.
func (c Config) Validate() error {
	var errs []error
	if !format.IsValidURL(c.BaseURL) {
		errs = append(errs, fmt.Errorf("baseUrl %q is not an absolute URL", c.BaseURL))
	}
	if strings.TrimSpace(c.OrganizationName) == "" {
		errs = append(errs, errors.New("organizationName is empty"))
	}
	if c.OrganizationLogo != "" && !format.IsValidURL(c.OrganizationLogo) {
		errs = append(errs, fmt.Errorf("organizationLogo %q is not an absolute URL", c.OrganizationLogo))
	}
	if len(c.Currency) != 3 {
		errs = append(errs, fmt.Errorf("currency %q is not a 3-letter code", c.Currency))
	}
	if len(errs) > 0 {
		return fmt.Errorf("ldschema: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
