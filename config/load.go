package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/sling/parameter"
)

// Load builds a Config from defaults, the TOML file at path (skipped when empty) and environment
// Returned warnings are sanity concerns that do not block startup
func Load(path string) (*Config, []string, error) {
	cfg := Default()
	var warnings []string

	if path != "" {
		undecoded, err := decodeFile(path, cfg)
		if err != nil {
			return nil, nil, err
		}
		for _, key := range undecoded {
			warnings = append(warnings, fmt.Sprintf("unknown key %q ignored", key))
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, nil, err
	}

	sanity, err := Validate(cfg)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, sanity...)

	for _, w := range warnings {
		log.Warn().Str("path", path).Msg(w)
	}
	return cfg, warnings, nil
}

// Decode parses TOML bytes over defaults without env or validation
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ParseEnv applies SLING_* environment overrides onto cfg
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: parameter.ConfigEnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func decodeFile(path string, cfg *Config) ([]string, error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}
