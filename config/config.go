// Package config loads the small table of distinguished constants spec.md
// §6 calls out (MAPD_SYSTEM_DB, DEFAULT_FRAGMENT_SIZE, DEFAULT_PAGE_SIZE)
// plus the compression bit-width ceiling, using gopkg.in/yaml.v2 — a
// direct (non-indirect) dependency of the teacher's go.mod, used there the
// same way: an optional on-disk override of a small constant table.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	SystemDB            string `yaml:"system_db"`
	DefaultFragmentSize int    `yaml:"default_fragment_size"`
	DefaultPageSize     int    `yaml:"default_page_size"`
	MaxCompressionBits  int    `yaml:"max_compression_bits"`
}

// Default returns the built-in constant table spec.md §6 names.
func Default() Config {
	return Config{
		SystemDB:            "mapd",
		DefaultFragmentSize: 32000000,
		DefaultPageSize:     1048576,
		MaxCompressionBits:  48,
	}
}

// Load reads a YAML override file and fills in any zero-valued field from
// Default(). A missing file is not an error; it simply yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Config{}, err
	}
	if override.SystemDB != "" {
		cfg.SystemDB = override.SystemDB
	}
	if override.DefaultFragmentSize != 0 {
		cfg.DefaultFragmentSize = override.DefaultFragmentSize
	}
	if override.DefaultPageSize != 0 {
		cfg.DefaultPageSize = override.DefaultPageSize
	}
	if override.MaxCompressionBits != 0 {
		cfg.MaxCompressionBits = override.MaxCompressionBits
	}
	return cfg, nil
}
