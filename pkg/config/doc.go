// Package config loads bindle's build-time configuration: the font-loader
// specifier set and the rule-scope knobs the selector exposes. Defaults
// are embedded; a bindle.toml in the project root overrides them.
package config
