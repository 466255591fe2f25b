package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the GUI settings. Environment variables seed the defaults
// and command-line flags override them.
type Config struct {
	Scale   int    `env:"FISCAL_SIM_SCALE"   envDefault:"1"`
	TPS     int    `env:"FISCAL_SIM_TPS"     envDefault:"60"`
	Locale  string `env:"FISCAL_SIM_LOCALE"  envDefault:"en-US"`
	Font    string `env:"FISCAL_SIM_FONT"`
	Dialogs bool   `env:"FISCAL_SIM_DIALOGS"`
}

// NewConfig reads the process environment.
func NewConfig() (*Config, error) {
	return newConfig(env.Options{})
}

func newConfig(opts env.Options) (*Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Locale, "locale", c.Locale, "message locale (en-US, zh-CN)")
	fs.StringVar(&c.Font, "font", c.Font, "OpenType font file for non-Latin text")
	fs.BoolVar(&c.Dialogs, "dialogs", c.Dialogs, "show native dialogs when the game ends")
}

// Validate rejects settings the window cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be at least 1, got %d", c.TPS))
	}
	return errors.Join(errs...)
}
