package oyifa

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/eringen/oyifa/content"
)

// SiteConfig holds all configuration for an oyifa site.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Oyifa"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000" validate:"required,url"` // canonical origin
	Description string `env:"SITE_DESCRIPTION"`

	Addr  string `env:"ADDR" envDefault:":3000"`
	Debug bool   `env:"DEBUG"`

	// Content identifies the dataset pages are built from.
	Content content.StoreConfig `envPrefix:"SANITY_"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Oyifa"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	c.Content.SetDefaults()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads a SiteConfig from the environment and validates it.
// SANITY_PROJECT_ID is required.
func LoadConfig() (SiteConfig, error) {
	cfg, err := env.ParseAs[SiteConfig]()
	if err != nil {
		return SiteConfig{}, fmt.Errorf("oyifa: load config: %w", err)
	}
	cfg.setDefaults()
	if err := validate.Struct(cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("oyifa: invalid config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are installed.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithQuerier replaces the hosted content store, e.g. with an in-memory
// store in tests.
func WithQuerier(q content.Querier) Option {
	return func(a *App) {
		a.querier = q
	}
}

// WithLogger sets the app logger.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
