// Package config loads the donjon configuration from a TOML file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/donjon-365/donjon/internal/app/probability"
	"github.com/donjon-365/donjon/internal/domain"
)

// FileName is the config file name inside the home directory.
const FileName = "config.toml"

// Config holds all configuration.
type Config struct {
	Logging     LoggingConfig     `toml:"logging"`
	Save        SaveConfig        `toml:"save"`
	Probability ProbabilityConfig `toml:"probability"`
	Simulation  SimulationConfig  `toml:"simulation"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// SaveConfig locates the player's save envelope.
type SaveConfig struct {
	Path   string `toml:"path"`
	Pseudo string `toml:"pseudo"`
}

// ProbabilityConfig holds the reference rates and difficulty discounts.
type ProbabilityConfig struct {
	BronzeRate         float64 `toml:"bronze_rate"`
	ArgentRate         float64 `toml:"argent_rate"`
	OrRate             float64 `toml:"or_rate"`
	BossDiscount       float64 `toml:"boss_discount"`
	EliteDiscount      float64 `toml:"elite_discount"`
	InfluencedDiscount float64 `toml:"influenced_discount"`
	FinalDiscount      float64 `toml:"final_discount"`
}

// SimulationConfig controls Monte-Carlo runs.
type SimulationConfig struct {
	Trials  int    `toml:"trials"`
	Workers int    `toml:"workers"`
	Seed    uint64 `toml:"seed"` // 0 picks a random seed
}

// Default returns the default configuration.
func Default() Config {
	r := probability.DefaultRates()
	d := probability.DefaultDiscounts()
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Save: SaveConfig{
			Path: filepath.Join(Home(), "save.json"),
		},
		Probability: ProbabilityConfig{
			BronzeRate:         r.Bronze,
			ArgentRate:         r.Argent,
			OrRate:             r.Or,
			BossDiscount:       d.Boss,
			EliteDiscount:      d.Elite,
			InfluencedDiscount: d.Influenced,
			FinalDiscount:      d.Final,
		},
		Simulation: SimulationConfig{
			Trials:  2000,
			Workers: 4,
		},
	}
}

// Load reads config.toml from the home directory, falling back to defaults.
func Load() (Config, error) {
	return LoadFile(filepath.Join(Home(), FileName))
}

// LoadFile reads a config file. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to config.toml in the home directory.
func Save(cfg Config) error {
	path := filepath.Join(Home(), FileName)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Encode(f, cfg)
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks that every rate and discount lies in (0, 1].
func (c Config) Validate() error {
	p := c.Probability
	fields := []struct {
		name string
		v    float64
	}{
		{"bronze_rate", p.BronzeRate},
		{"argent_rate", p.ArgentRate},
		{"or_rate", p.OrRate},
		{"boss_discount", p.BossDiscount},
		{"elite_discount", p.EliteDiscount},
		{"influenced_discount", p.InfluencedDiscount},
		{"final_discount", p.FinalDiscount},
	}
	for _, f := range fields {
		if f.v <= 0 || f.v > 1 {
			return fmt.Errorf("probability.%s = %v: %w", f.name, f.v, domain.ErrInvalidRate)
		}
	}
	if c.Simulation.Trials < 0 || c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation trials and workers must not be negative")
	}
	return nil
}

// Rates returns the configured reference rates.
func (p ProbabilityConfig) Rates() probability.Rates {
	return probability.Rates{Bronze: p.BronzeRate, Argent: p.ArgentRate, Or: p.OrRate}
}

// Discounts returns the configured difficulty discounts.
func (p ProbabilityConfig) Discounts() probability.Discounts {
	return probability.Discounts{
		Boss:       p.BossDiscount,
		Elite:      p.EliteDiscount,
		Influenced: p.InfluencedDiscount,
		Final:      p.FinalDiscount,
	}
}

// Logger builds a slog logger writing to w. Unknown levels fall back to info.
func (l LoggingConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Home returns the donjon data directory.
func Home() string {
	if env := os.Getenv("DONJON_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".donjon")
}
