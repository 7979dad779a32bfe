// Package config loads and validates the optional hyprwatch TOML
// configuration. Defaults are usable without any file on disk; the CLI
// overrides individual values with flags.
package config
