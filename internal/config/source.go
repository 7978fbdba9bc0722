package config

import (
	srccfg "rowsift/source"
)

// LoadSourceConfig delegates to the source loader while centralizing
// loader entrypoints under internal/config.
func LoadSourceConfig(path string) (srccfg.Config, error) {
	return srccfg.LoadConfig(path)
}
