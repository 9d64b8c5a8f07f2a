package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/bindle-build/bindle/pkg/errors"
)

// tomlConfig mirrors Config with toml tags for generation
type tomlConfig struct {
	Transforms tomlTransforms `toml:"transforms"`
}

type tomlTransforms struct {
	FontLoaders       []string `toml:"font_loaders"`
	ExtraPageExcludes []string `toml:"extra_page_excludes"`
	FontRuleScope     string   `toml:"font_rule_scope"`
}

// Generate renders the effective configuration as TOML, suitable for
// writing a starter bindle.toml.
func Generate(cfg *Config) (string, error) {
	out := tomlConfig{
		Transforms: tomlTransforms{
			FontLoaders:       cfg.Transforms.FontLoaders,
			ExtraPageExcludes: cfg.Transforms.ExtraPageExcludes,
			FontRuleScope:     cfg.Transforms.FontRuleScope,
		},
	}
	if out.Transforms.FontLoaders == nil {
		out.Transforms.FontLoaders = []string{}
	}
	if out.Transforms.ExtraPageExcludes == nil {
		out.Transforms.ExtraPageExcludes = []string{}
	}

	data, err := gotoml.Marshal(out)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}
	return string(data), nil
}
