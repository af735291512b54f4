// Package config holds solver- and preprocessor-wide settings: logging,
// search heuristics, and the simplification knobs from SIMP (elim, grow,
// cl-lim, sub-lim). Values can be built up programmatically or loaded from a
// YAML file via Load.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the solver's configuration.
type Config struct {
	// Logger receives progress and diagnostic messages from the solver and
	// preprocessor. logrus.Logger satisfies the same Print/Printf surface
	// the solver used to call on the stdlib *log.Logger.
	Logger     *logrus.Logger `yaml:"-"`
	OutputPath string         `yaml:"outputPath"`
	VarDecay   float64        `yaml:"varDecay"`
	ClaDecay   float64        `yaml:"claDecay"`
	Models     uint           `yaml:"models"`
	Verbose    bool           `yaml:"verbose"`

	// Simp holds the simplification-preprocessor knobs.
	Simp SimpOptions `yaml:"simp"`
}

// SimpOptions are the preprocessor's configuration options, named after the
// SIMP option group they came from.
type SimpOptions struct {
	// Elim is the master switch for variable elimination.
	Elim bool `yaml:"elim"`
	// Grow is the maximum permitted increase in clause count for a single
	// elimination step.
	Grow int `yaml:"grow"`
	// ClauseLim rejects eliminations producing resolvents longer than this;
	// -1 disables the check.
	ClauseLim int `yaml:"clauseLim"`
	// SubsumptionLim skips subsumption candidates larger than this; -1
	// disables the check.
	SubsumptionLim int `yaml:"subsumptionLim"`
	// MaxClausesForPreprocessing skips preprocessing entirely above this
	// many problem clauses. The original solver hard-coded 4,800,000; here
	// it is configurable per the spec's open question.
	MaxClausesForPreprocessing int `yaml:"maxClausesForPreprocessing"`
}

// DefaultSimpOptions mirrors the SIMP option group's documented defaults.
func DefaultSimpOptions() SimpOptions {
	return SimpOptions{
		Elim:                       true,
		Grow:                       0,
		ClauseLim:                  20,
		SubsumptionLim:             1000,
		MaxClausesForPreprocessing: 4_800_000,
	}
}

// New returns a new, default-initialized Config.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &Config{
		Logger:   logger,
		VarDecay: 0.95,
		ClaDecay: 0.999,
		Models:   1,
		Simp:     DefaultSimpOptions(),
	}
}

// Load reads a YAML configuration file at path into a new Config, starting
// from New()'s defaults so a partial file only overrides what it mentions.
func Load(path string) (*Config, error) {
	c := New()
	logger := c.Logger

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config file %s", path)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return nil, errors.Wrapf(err, "decoding config file %s", path)
	}
	c.Logger = logger

	return c, nil
}
