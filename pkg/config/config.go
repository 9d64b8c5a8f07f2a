package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bindle-build/bindle/pkg/errors"
	"github.com/bindle-build/bindle/pkg/logging"
	"github.com/bindle-build/bindle/pkg/rules"
)

// configFileNames are tried in order inside the project root.
var configFileNames = []string{".bindle.toml", "bindle.toml"}

// TransformsConfig holds the rule-selection knobs
type TransformsConfig struct {
	FontLoaders       []string `koanf:"font_loaders"`
	ExtraPageExcludes []string `koanf:"extra_page_excludes"`
	FontRuleScope     string   `koanf:"font_rule_scope"`
}

// Config is bindle's loaded configuration
type Config struct {
	Transforms TransformsConfig `koanf:"transforms"`
}

// Load reads configuration for a project: embedded defaults first, then
// the first config file found in projectRoot, if any.
func Load(projectRoot string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if projectRoot == "" {
		projectRoot = "."
	}

	for _, filename := range configFileNames {
		path := filepath.Join(projectRoot, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
		break
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal defaults")
	}
	return &cfg, nil
}

// SelectorOptions converts the loaded configuration into selector options
func (c *Config) SelectorOptions() rules.Options {
	return rules.Options{
		FontLoaders:       c.Transforms.FontLoaders,
		ExtraPageExcludes: c.Transforms.ExtraPageExcludes,
		FontRuleScope:     c.Transforms.FontRuleScope,
	}
}

func (c *Config) validate() error {
	for _, loader := range c.Transforms.FontLoaders {
		if loader == "" {
			return errors.New(errors.ErrConfigValid, "font_loaders entries must be non-empty")
		}
	}
	for _, base := range c.Transforms.ExtraPageExcludes {
		if base == "" {
			return errors.New(errors.ErrConfigValid, "extra_page_excludes entries must be non-empty")
		}
	}
	return nil
}
