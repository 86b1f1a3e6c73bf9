package chainmap

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	DefaultLoadFactorThreshold  = 10.0
	DefaultInitialChainCount    = 10
	DefaultChainInitialCapacity = 3
)

// Config holds the geometry of a ChainedMap.
type Config struct {
	// The map doubles its chain count when size/chains reaches this value.
	LoadFactorThreshold float64 `toml:"load_factor_threshold"`
	// Number of chains at construction and after Clear.
	InitialChainCount int `toml:"initial_chain_count"`
	// Capacity hint passed to every new chain.
	ChainInitialCapacity int `toml:"chain_initial_capacity"`
}

func DefaultConfig() Config {
	return Config{
		LoadFactorThreshold:  DefaultLoadFactorThreshold,
		InitialChainCount:    DefaultInitialChainCount,
		ChainInitialCapacity: DefaultChainInitialCapacity,
	}
}

func (c Config) Validate() error {
	// !(x > 0) also rejects NaN.
	if !(c.LoadFactorThreshold > 0) {
		return errors.Wrapf(ErrInvalidConfig, "load factor threshold must be > 0, got %v", c.LoadFactorThreshold)
	}

	if c.InitialChainCount <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "initial chain count must be > 0, got %d", c.InitialChainCount)
	}

	if c.ChainInitialCapacity <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "chain initial capacity must be > 0, got %d", c.ChainInitialCapacity)
	}

	return nil
}

// ParseConfig decodes a TOML document on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, errors.Wrap(err, "ParseConfig.Decode")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "LoadConfig.DecodeFile")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
