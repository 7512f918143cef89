// Package config loads the optional YAML rules file
package config

import (
	"bytes"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/lucky-slots/constants"
	"github.com/lixenwraith/lucky-slots/slot"
)

// Config mirrors the rules file, absent keys keep their defaults
type Config struct {
	Credits           int           `yaml:"credits"`
	SpinCost          int           `yaml:"spin_cost"`
	Symbols           int           `yaml:"symbols"`
	JackpotMultiplier int           `yaml:"jackpot_multiplier"`
	PairMultiplier    int           `yaml:"pair_multiplier"`
	SpinDuration      time.Duration `yaml:"spin_duration"`
}

// Default returns the stock machine configuration
func Default() Config {
	return Config{
		Credits:           constants.InitialCredits,
		SpinCost:          constants.SpinCost,
		Symbols:           constants.SymbolCount,
		JackpotMultiplier: constants.JackpotMultiplier,
		PairMultiplier:    constants.PairMultiplier,
		SpinDuration:      constants.SpinDuration,
	}
}

// Load reads path over the defaults and validates the result
// Empty path returns the defaults, a missing explicit file is an error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := Parse(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, only keys present in data are overwritten
func Parse(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrap(err, "decode yaml")
	}
	return nil
}

// Validate reports every violated constraint in one error
func (c Config) Validate() error {
	var errs []string
	if c.Credits <= 0 {
		errs = append(errs, "credits must be > 0")
	}
	if c.SpinCost <= 0 {
		errs = append(errs, "spin_cost must be > 0")
	}
	if c.Symbols < constants.MinSymbolCount || c.Symbols > constants.MaxSymbolCount {
		errs = append(errs, "symbols must be in ["+strconv.Itoa(constants.MinSymbolCount)+","+strconv.Itoa(constants.MaxSymbolCount)+"]")
	}
	if c.JackpotMultiplier < 0 {
		errs = append(errs, "jackpot_multiplier must be >= 0")
	}
	if c.PairMultiplier < 0 {
		errs = append(errs, "pair_multiplier must be >= 0")
	}
	if c.SpinDuration <= 0 {
		errs = append(errs, "spin_duration must be > 0")
	}
	if len(errs) > 0 {
		return errors.New("config validation failed: " + strings.Join(errs, "; "))
	}
	return nil
}

// Rules converts the configuration into machine rules
func (c Config) Rules() slot.Rules {
	return slot.Rules{
		InitialCredits:    c.Credits,
		SpinCost:          c.SpinCost,
		SymbolCount:       c.Symbols,
		JackpotMultiplier: c.JackpotMultiplier,
		PairMultiplier:    c.PairMultiplier,
		SpinDuration:      c.SpinDuration,
	}
}
